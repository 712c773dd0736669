package async

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/utilkit/errors"
)

// Awaitable is anything that settles once and can report its outcome.
// Every *Promise[T] implements it.
type Awaitable interface {
	// Done is closed once the outcome is available.
	Done() <-chan struct{}
	// AwaitAny blocks until the outcome is available or ctx is done.
	AwaitAny(ctx context.Context) (any, error)
}

// Promise is a pending result that settles to a value or an error exactly once.
type Promise[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// New returns an unsettled promise.
func New[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolved returns a promise already settled with v.
func Resolved[T any](v T) *Promise[T] {
	p := New[T]()
	p.Resolve(v)
	return p
}

// Rejected returns a promise already settled with err.
func Rejected[T any](err error) *Promise[T] {
	p := New[T]()
	p.Reject(err)
	return p
}

// Run calls fn on a new goroutine and settles the promise with its result.
// A panic in fn rejects the promise with an INTERNAL_ERROR.
func Run[T any](fn func() (T, error)) *Promise[T] {
	p := New[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.Reject(errors.Internal(fmt.Errorf("panic: %v", r)))
			}
		}()
		v, err := fn()
		p.settle(v, err)
	}()
	return p
}

// Resolve settles the promise with v. It reports false if already settled.
func (p *Promise[T]) Resolve(v T) bool {
	return p.settle(v, nil)
}

// Reject settles the promise with err. It reports false if already settled.
// A nil err is replaced by an INTERNAL_ERROR so rejection is never silent.
func (p *Promise[T]) Reject(err error) bool {
	if err == nil {
		err = errors.Internal(fmt.Errorf("promise rejected with nil error"))
	}
	var zero T
	return p.settle(zero, err)
}

func (p *Promise[T]) settle(v T, err error) bool {
	settled := false
	p.once.Do(func() {
		p.value = v
		p.err = err
		close(p.done)
		settled = true
	})
	return settled
}

// Done is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has an outcome.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until the promise settles or ctx is done.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitAny is Await with the value boxed, satisfying Awaitable.
func (p *Promise[T]) AwaitAny(ctx context.Context) (any, error) {
	v, err := p.Await(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// outcome returns the settled value; callers must have observed Done.
func (p *Promise[T]) outcome() (T, error) {
	return p.value, p.err
}
