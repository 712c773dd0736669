// Package bootstrap wires utilkit's components into a container.
//
// NewContainer registers the config, logger, filter registry, parameter
// registry and util service under the keys in di.Names. NewApp builds on it
// for command line use and runs finite tasks with signal-driven
// cancellation.
//
//	app, err := bootstrap.NewApp(cfg)
//	if err != nil {
//	    return err
//	}
//	err = app.RunTask(ctx, func(ctx context.Context, a *bootstrap.App) error {
//	    fmt.Println(a.Util.UUID())
//	    return nil
//	})
package bootstrap
