/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suparena/swaggerfilter/registry"
)

// Options configures a Processor
type Options struct {
	LeafTypes    registry.Set       // Definitions whose allOf is cleared (default: registry.LeafTypes())
	Logger       logrus.FieldLogger // Destination for debug output (default: discarded)
	StatsHandler func(Stats)        // Optional callback invoked after a successful pass
}

// Option is a functional option for configuring a Processor
type Option func(*Options)

// DefaultOptions returns default processor options
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Options{
		LeafTypes: registry.LeafTypes(),
		Logger:    discard,
	}
}

// WithLeafTypes replaces the set of definitions whose allOf is cleared
func WithLeafTypes(set registry.Set) Option {
	return func(opts *Options) {
		opts.LeafTypes = set
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger logrus.FieldLogger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithStatsHandler sets a callback that receives the counts of each pass
func WithStatsHandler(handler func(Stats)) Option {
	return func(opts *Options) {
		opts.StatsHandler = handler
	}
}
