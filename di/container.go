package di

import (
	"context"
	goerrors "errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/kbukum/utilkit/logger"
)

// RegistrationMode determines how a component should be resolved
type RegistrationMode int

const (
	Eager     RegistrationMode = iota // Initialize immediately on registration
	Lazy                              // Initialize on first resolve
	Singleton                         // Pre-created instance
)

func (m RegistrationMode) String() string {
	switch m {
	case Eager:
		return "eager"
	case Lazy:
		return "lazy"
	case Singleton:
		return "singleton"
	default:
		return "unknown"
	}
}

// Container defines the interface for a dependency injection container
type Container interface {
	Register(key string, constructor interface{}) error
	RegisterEager(key string, constructor interface{}) error
	RegisterSingleton(key string, instance interface{}) error
	Resolve(key string) (interface{}, error)
	MustResolve(key string) interface{}
	Registrations() []RegistrationInfo
	Close() error
}

// RegistrationInfo describes a registered component for introspection.
type RegistrationInfo struct {
	Key         string
	Mode        RegistrationMode
	Initialized bool
}

type container struct {
	components map[string]*registration
	mutex      sync.RWMutex
}

type registration struct {
	key         string
	constructor interface{}
	mode        RegistrationMode
	instance    interface{}
	initialized bool
	mutex       sync.Mutex
}

// NewContainer returns an empty container.
func NewContainer() Container {
	return &container{components: make(map[string]*registration)}
}

// Register registers a constructor that runs on first Resolve.
//
// Accepted constructor shapes are func() T, func() (T, error),
// func(context.Context) ..., and func(Container) .... A lazy constructor
// must not resolve its own key.
func (c *container) Register(key string, constructor interface{}) error {
	if err := checkConstructor(key, constructor); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.components[key] = &registration{key: key, constructor: constructor, mode: Lazy}
	logger.Get("di").Debug("Component registered", map[string]interface{}{
		logger.FieldKey: key,
		"mode":          Lazy.String(),
	})
	return nil
}

// RegisterEager runs constructor now and stores its result.
func (c *container) RegisterEager(key string, constructor interface{}) error {
	if err := checkConstructor(key, constructor); err != nil {
		return err
	}

	instance, err := c.callConstructor(constructor)
	if err != nil {
		return fmt.Errorf("failed to initialize eager component '%s': %w", key, err)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.components[key] = &registration{
		key:         key,
		constructor: constructor,
		mode:        Eager,
		instance:    instance,
		initialized: true,
	}
	logger.Get("di").Debug("Component registered", map[string]interface{}{
		logger.FieldKey: key,
		"mode":          Eager.String(),
	})
	return nil
}

// RegisterSingleton registers a pre-created instance
func (c *container) RegisterSingleton(key string, instance interface{}) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.components[key] = &registration{
		key:         key,
		mode:        Singleton,
		instance:    instance,
		initialized: true,
	}
	logger.Get("di").Debug("Component registered", map[string]interface{}{
		logger.FieldKey: key,
		"mode":          Singleton.String(),
	})
	return nil
}

// Resolve gets a component instance
func (c *container) Resolve(key string) (interface{}, error) {
	c.mutex.RLock()
	reg, exists := c.components[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("component not registered: %s", key)
	}

	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	if reg.initialized {
		return reg.instance, nil
	}

	instance, err := c.callConstructor(reg.constructor)
	if err != nil {
		logger.Get("di").Debug("Lazy component initialization failed", map[string]interface{}{
			logger.FieldKey:   key,
			logger.FieldError: err.Error(),
		})
		return nil, fmt.Errorf("failed to initialize lazy component '%s': %w", key, err)
	}

	reg.instance = instance
	reg.initialized = true
	return instance, nil
}

// MustResolve is Resolve that panics on error.
func (c *container) MustResolve(key string) interface{} {
	instance, err := c.Resolve(key)
	if err != nil {
		panic(err)
	}
	return instance
}

// Registrations returns info about all registered components, sorted by key.
func (c *container) Registrations() []RegistrationInfo {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make([]RegistrationInfo, 0, len(c.components))
	for key, reg := range c.components {
		reg.mutex.Lock()
		result = append(result, RegistrationInfo{
			Key:         key,
			Mode:        reg.mode,
			Initialized: reg.initialized,
		})
		reg.mutex.Unlock()
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// Close closes every initialized component that has a Close() error method
// and returns their errors joined.
func (c *container) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var errs []error
	for key, reg := range c.components {
		if !reg.initialized || reg.instance == nil {
			continue
		}
		if closer, ok := reg.instance.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", key, err))
			}
		}
	}
	return goerrors.Join(errs...)
}

var (
	contextType   = reflect.TypeOf((*context.Context)(nil)).Elem()
	containerType = reflect.TypeOf((*Container)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

func checkConstructor(key string, constructor interface{}) error {
	fn := reflect.ValueOf(constructor)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return fmt.Errorf("constructor for '%s' must be a function", key)
	}
	t := fn.Type()
	if t.NumIn() > 1 || (t.NumIn() == 1 && t.In(0) != contextType && t.In(0) != containerType) {
		return fmt.Errorf("constructor for '%s' must take no arguments, a context.Context or a di.Container", key)
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return fmt.Errorf("constructor for '%s' must return (instance) or (instance, error)", key)
		}
	default:
		return fmt.Errorf("constructor for '%s' must return (instance) or (instance, error)", key)
	}
	return nil
}

func (c *container) callConstructor(constructor interface{}) (interface{}, error) {
	fn := reflect.ValueOf(constructor)
	fnType := fn.Type()

	var args []reflect.Value
	if fnType.NumIn() == 1 {
		if fnType.In(0) == contextType {
			args = []reflect.Value{reflect.ValueOf(context.Background())}
		} else {
			args = []reflect.Value{reflect.ValueOf(Container(c))}
		}
	}

	results := fn.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}
