package async

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/kbukum/utilkit/errors"
	"github.com/kbukum/utilkit/observability"
)

const operationSafeAsync = "safe_async"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Waiter carries countdown settings shared across calls. The zero value
// arms a single timer per countdown.
type Waiter struct {
	// PollInterval, when positive, is passed to WithPollInterval.
	PollInterval time.Duration
}

func (w Waiter) options(operation, spanName string) []Option {
	opts := []Option{withOperation(operation, spanName)}
	if w.PollInterval > 0 {
		opts = append(opts, WithPollInterval(w.PollInterval))
	}
	return opts
}

// Countdown bounds a with max using the waiter's settings.
func (w Waiter) Countdown(ctx context.Context, a Awaitable, max time.Duration) *Promise[any] {
	return CountdownAnyContext(ctx, a, max, w.options(operationCountdown, observability.SpanCountdown)...)
}

// SafeAsync normalizes value into a promise:
//   - an Awaitable is bounded by timeout;
//   - a func is called with args; an Awaitable result is bounded by timeout,
//     a non-nil trailing error rejects, anything else resolves;
//   - any other value resolves as-is.
func (w Waiter) SafeAsync(ctx context.Context, value any, timeout time.Duration, args ...any) *Promise[any] {
	opts := w.options(operationSafeAsync, observability.SpanSafeAsync)

	if a, ok := asAwaitable(value); ok {
		return CountdownAnyContext(ctx, a, timeout, opts...)
	}

	fn := reflect.ValueOf(value)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return Resolved(value)
	}

	result, err := invoke(fn, args)
	if err != nil {
		return Rejected[any](err)
	}
	if a, ok := asAwaitable(result); ok {
		return CountdownAnyContext(ctx, a, timeout, opts...)
	}
	return Resolved(result)
}

// SafeAsync is Waiter{}.SafeAsync with a background context.
func SafeAsync(value any, timeout time.Duration, args ...any) *Promise[any] {
	return Waiter{}.SafeAsync(context.Background(), value, timeout, args...)
}

// SafeAsyncContext is Waiter{}.SafeAsync.
func SafeAsyncContext(ctx context.Context, value any, timeout time.Duration, args ...any) *Promise[any] {
	return Waiter{}.SafeAsync(ctx, value, timeout, args...)
}

func asAwaitable(v any) (Awaitable, bool) {
	a, ok := v.(Awaitable)
	if !ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return a, true
}

// invoke calls fn with args, converting a panic into an INTERNAL_ERROR.
func invoke(fn reflect.Value, args []any) (result any, err error) {
	in, err := buildArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.Internal(fmt.Errorf("panic: %v", r))
		}
	}()

	return interpretResults(fn.Call(in))
}

func buildArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, errors.InvalidArgument("args", fmt.Sprintf("func expects at least %d arguments, got %d", n-1, len(args)))
		}
	} else if len(args) != n {
		return nil, errors.InvalidArgument("args", fmt.Sprintf("func expects %d arguments, got %d", n, len(args)))
	}

	in := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		want := paramType(t, i)
		if arg == nil {
			if !nillable(want.Kind()) {
				return nil, errors.InvalidArgument("args", fmt.Sprintf("argument %d: nil is not a valid %s", i, want))
			}
			in = append(in, reflect.Zero(want))
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, errors.InvalidArgument("args", fmt.Sprintf("argument %d: %s is not assignable to %s", i, av.Type(), want))
		}
		in = append(in, av)
	}
	return in, nil
}

func paramType(t reflect.Type, i int) reflect.Type {
	n := t.NumIn()
	if t.IsVariadic() && i >= n-1 {
		return t.In(n - 1).Elem()
	}
	return t.In(i)
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}

// interpretResults maps a call's results onto (value, error). A trailing
// error result is split off; one remaining result is returned as-is and
// several are returned as []any.
func interpretResults(out []reflect.Value) (any, error) {
	if len(out) > 0 && out[len(out)-1].Type() == errorType {
		last := out[len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		values := make([]any, len(out))
		for i, v := range out {
			values[i] = v.Interface()
		}
		return values, nil
	}
}
