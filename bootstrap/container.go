package bootstrap

import (
	"fmt"

	"github.com/kbukum/utilkit/config"
	"github.com/kbukum/utilkit/di"
	"github.com/kbukum/utilkit/filter"
	"github.com/kbukum/utilkit/logger"
	"github.com/kbukum/utilkit/util"
)

// NewContainer applies defaults to cfg, validates it and returns a container
// with every utilkit component registered. A nil cfg uses config.Default().
func NewContainer(cfg *config.Config, opts ...Option) (di.Container, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	o := resolveOptions(opts)
	log := o.logger
	if log == nil {
		log = logger.New(&cfg.Logging, cfg.Name)
	}
	filters := o.filters
	if filters == nil {
		filters = filter.NewRegistry()
	}
	params := o.params
	if params == nil {
		params = util.DefaultParamRegistry()
	}

	c := di.NewContainer()
	singletons := []struct {
		key      string
		instance interface{}
	}{
		{di.Names.Config, cfg},
		{di.Names.Logger, log},
		{di.Names.Filters, filters},
		{di.Names.Params, params},
	}
	for _, s := range singletons {
		if err := c.RegisterSingleton(s.key, s.instance); err != nil {
			return nil, fmt.Errorf("register %s: %w", s.key, err)
		}
	}

	if err := c.Register(di.Names.Util, newUtilService); err != nil {
		return nil, fmt.Errorf("register %s: %w", di.Names.Util, err)
	}
	return c, nil
}

func newUtilService(c di.Container) (*util.Service, error) {
	cfg, err := di.Resolve[*config.Config](c, di.Names.Config)
	if err != nil {
		return nil, err
	}
	log, err := di.Resolve[*logger.Logger](c, di.Names.Logger)
	if err != nil {
		return nil, err
	}
	filters, err := di.Resolve[*filter.Registry](c, di.Names.Filters)
	if err != nil {
		return nil, err
	}
	params, err := di.Resolve[*util.ParamRegistry](c, di.Names.Params)
	if err != nil {
		return nil, err
	}

	return util.NewService(
		util.WithLogger(log),
		util.WithConfig(cfg.Util),
		util.WithParamRegistry(params),
		util.WithTextFilters(
			namedFilter(filters, filter.NameStripTags),
			namedFilter(filters, filter.NameStripNonAlphanumeric),
		),
	), nil
}

// namedFilter looks the filter up on every call so later registrations win.
func namedFilter(r *filter.Registry, name string) util.TextFilter {
	return func(text string) string {
		fn, ok := r.Get(name)
		if !ok {
			return text
		}
		return fn(text)
	}
}

// Util resolves the util service from c.
func Util(c di.Container) (*util.Service, error) {
	return di.Resolve[*util.Service](c, di.Names.Util)
}
