/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNoInputProvided is returned when stdin is attached to a terminal
	ErrNoInputProvided = errors.New("swagger json needs to be piped in as stdin")

	// ErrMissingArgument is returned when the definition prefix is not supplied
	ErrMissingArgument = errors.New("definition prefix needs to be provided")

	// ErrTooManyArguments is returned when more than one positional argument is supplied
	ErrTooManyArguments = errors.New("exactly one definition prefix is accepted")

	// ErrInvalidJSON is returned when the input does not parse as JSON
	ErrInvalidJSON = errors.New("not a valid json input")

	// ErrMalformedSchema is returned when the document lacks a usable definitions mapping
	ErrMalformedSchema = errors.New("malformed schema")
)

// ArgumentError represents a problem with the positional arguments
type ArgumentError struct {
	Got int
	err error
}

func (e *ArgumentError) Error() string {
	if e.err == ErrTooManyArguments {
		return fmt.Sprintf("%s, got %d arguments", e.err.Error(), e.Got)
	}
	return e.err.Error()
}

func (e *ArgumentError) Is(target error) bool {
	return target == e.err
}

// InvalidJSONError wraps the underlying parser error
type InvalidJSONError struct {
	Err error
}

func (e *InvalidJSONError) Error() string {
	if e.Err == nil {
		return ErrInvalidJSON.Error()
	}
	return fmt.Sprintf("%s - %v", ErrInvalidJSON.Error(), e.Err)
}

func (e *InvalidJSONError) Is(target error) bool {
	return target == ErrInvalidJSON
}

func (e *InvalidJSONError) Unwrap() error {
	return e.Err
}

// MalformedSchemaError describes where the document deviates from the expected shape
type MalformedSchemaError struct {
	// Path is the location inside the document, for example "definitions".
	Path   string
	Reason string
}

func (e *MalformedSchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %q %s", ErrMalformedSchema.Error(), e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedSchema.Error(), e.Reason)
}

func (e *MalformedSchemaError) Is(target error) bool {
	return target == ErrMalformedSchema
}

// Helper functions for creating errors

// NewMissingArgumentError creates a new ArgumentError for an absent prefix
func NewMissingArgumentError() error {
	return &ArgumentError{err: ErrMissingArgument}
}

// NewTooManyArgumentsError creates a new ArgumentError for surplus arguments
func NewTooManyArgumentsError(got int) error {
	return &ArgumentError{Got: got, err: ErrTooManyArguments}
}

// NewInvalidJSONError creates a new InvalidJSONError
func NewInvalidJSONError(err error) error {
	return &InvalidJSONError{Err: err}
}

// NewMalformedSchemaError creates a new MalformedSchemaError
func NewMalformedSchemaError(path, reason string) error {
	return &MalformedSchemaError{Path: path, Reason: reason}
}

// IsNoInputProvided checks if an error is a no input error
func IsNoInputProvided(err error) bool {
	return errors.Is(err, ErrNoInputProvided)
}

// IsMissingArgument checks if an error is a missing argument error
func IsMissingArgument(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}

// IsTooManyArguments checks if an error is a surplus argument error
func IsTooManyArguments(err error) bool {
	return errors.Is(err, ErrTooManyArguments)
}

// IsInvalidJSON checks if an error is an invalid json error
func IsInvalidJSON(err error) bool {
	return errors.Is(err, ErrInvalidJSON)
}

// IsMalformedSchema checks if an error is a malformed schema error
func IsMalformedSchema(err error) bool {
	return errors.Is(err, ErrMalformedSchema)
}

// ExitCode maps an error to the process exit status.
// Every failure is fatal and reported with status 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
