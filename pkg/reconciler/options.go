package reconciler

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/toolshelf/pkg/errors"
)

// options configures a reconciler.
type options struct {
	merger Merger
	logger *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		merger: NewMerger(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithMerger replaces the record merger.
func WithMerger(merger Merger) Option {
	return func(o *options) error {
		if merger == nil {
			return &errors.ValidationError{
				Field:   "merger",
				Message: "cannot be nil",
			}
		}
		o.merger = merger
		return nil
	}
}

// WithLogger sets the logger. When unset the logger is taken from the context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
