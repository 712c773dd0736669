// Package di provides a dependency injection container for utilkit.
//
// It supports eager, lazy, and singleton registration modes with type-safe
// resolution using Go generics.
//
// # Registration
//
//	c := di.NewContainer()
//	c.Register(di.Names.Util, func(c di.Container) (*util.Service, error) {
//	    return util.NewService(), nil
//	})
//
// # Resolution
//
//	svc := di.MustResolve[*util.Service](c, di.Names.Util)
package di
