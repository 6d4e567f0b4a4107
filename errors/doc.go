/*
Package errors provides semantic error types for swaggerfilter.

Every failure the filter can hit maps to one sentinel, which can be checked
with the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNoInputProvided  = errors.New("swagger json needs to be piped in as stdin")
	    ErrMissingArgument  = errors.New("definition prefix needs to be provided")
	    ErrTooManyArguments = errors.New("exactly one definition prefix is accepted")
	    ErrInvalidJSON      = errors.New("not a valid json input")
	    ErrMalformedSchema  = errors.New("malformed schema")
	)

Usage:

	out, err := swaggerfilter.Filter(doc, "io.numaproj.numaflow.v1alpha1.")
	if err != nil {
	    if errors.IsInvalidJSON(err) {
	        // err.Error() carries the parser message
	    }
	    os.Exit(errors.ExitCode(err))
	}

	// Create typed errors
	err := errors.NewInvalidJSONError(syntaxErr)
	err := errors.NewMalformedSchemaError("definitions", "is missing")

All failures are fatal; ExitCode reports 1 for any non-nil error.
*/
package errors
