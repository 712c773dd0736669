package bootstrap

import (
	"github.com/kbukum/utilkit/filter"
	"github.com/kbukum/utilkit/logger"
	"github.com/kbukum/utilkit/util"
)

// Option configures container construction.
type Option func(*options)

type options struct {
	logger  *logger.Logger
	filters *filter.Registry
	params  *util.ParamRegistry
}

func resolveOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger.
// If not set, the logger is built from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFilters sets the filter registry. The default is filter.NewRegistry().
func WithFilters(r *filter.Registry) Option {
	return func(o *options) {
		o.filters = r
	}
}

// WithParamRegistry sets the parameter-name registry. The default is the
// package registry shared with util.RegisterParamNames.
func WithParamRegistry(r *util.ParamRegistry) Option {
	return func(o *options) {
		o.params = r
	}
}
