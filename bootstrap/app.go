package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/utilkit/config"
	"github.com/kbukum/utilkit/di"
	"github.com/kbukum/utilkit/logger"
	"github.com/kbukum/utilkit/util"
)

// App bundles a built container with its resolved components.
type App struct {
	Name      string
	Version   string
	Cfg       *config.Config
	Container di.Container
	Logger    *logger.Logger
	Util      *util.Service
}

// NewApp builds the container for cfg and resolves the logger and util
// service from it.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	c, err := NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}

	cfg, err = di.Resolve[*config.Config](c, di.Names.Config)
	if err != nil {
		return nil, err
	}
	log, err := di.Resolve[*logger.Logger](c, di.Names.Logger)
	if err != nil {
		return nil, err
	}
	svc, err := Util(c)
	if err != nil {
		return nil, err
	}

	return &App{
		Name:      cfg.Name,
		Version:   cfg.Version,
		Cfg:       cfg,
		Container: c,
		Logger:    log,
		Util:      svc,
	}, nil
}

// RunTask runs task with a context that is canceled on SIGINT or SIGTERM,
// then closes the container. The task error takes precedence over the
// close error.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context, app *App) error) error {
	taskCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Logger.Debug("Running task", map[string]interface{}{
		"name":    a.Name,
		"version": a.Version,
	})

	taskErr := task(taskCtx, a)
	if closeErr := a.Container.Close(); closeErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return fmt.Errorf("close container: %w", closeErr)
	}
	return taskErr
}
