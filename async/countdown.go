package async

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/utilkit/errors"
	"github.com/kbukum/utilkit/observability"
)

const operationCountdown = "countdown"

// Option configures a countdown.
type Option func(*options)

type options struct {
	pollInterval time.Duration
	operation    string
	spanName     string
}

// WithPollInterval checks the deadline every d instead of arming one timer.
// The timeout then fires on the first tick at which the accumulated ticks
// reach the maximum, so its precision is d.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) { o.pollInterval = d }
}

func withOperation(name, spanName string) Option {
	return func(o *options) {
		o.operation = name
		o.spanName = spanName
	}
}

func buildOptions(opts []Option) options {
	o := options{operation: operationCountdown, spanName: observability.SpanCountdown}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Countdown returns a promise that settles like p, unless max elapses first,
// in which case it rejects with a TIMEOUT error ("Timed out."). p itself is
// left running. If p has already settled its outcome wins, even for max <= 0.
func Countdown[T any](p *Promise[T], max time.Duration, opts ...Option) *Promise[T] {
	return CountdownContext(context.Background(), p, max, opts...)
}

// CountdownContext is Countdown that also rejects with ctx.Err() once ctx is done.
func CountdownContext[T any](ctx context.Context, p *Promise[T], max time.Duration, opts ...Option) *Promise[T] {
	if p == nil {
		return Rejected[T](errors.InvalidArgument("promise", "cannot count down a nil promise"))
	}
	out := New[T]()
	go mirror(ctx, out, p.Done(), p.outcome, max, buildOptions(opts))
	return out
}

// CountdownAny is Countdown for any Awaitable.
func CountdownAny(a Awaitable, max time.Duration, opts ...Option) *Promise[any] {
	return CountdownAnyContext(context.Background(), a, max, opts...)
}

// CountdownAnyContext is CountdownContext for any Awaitable.
func CountdownAnyContext(ctx context.Context, a Awaitable, max time.Duration, opts ...Option) *Promise[any] {
	if a == nil {
		return Rejected[any](errors.InvalidArgument("awaitable", "cannot count down a nil awaitable"))
	}
	out := New[any]()
	outcome := func() (any, error) {
		// Done has fired, so this returns without blocking.
		return a.AwaitAny(context.Background())
	}
	go mirror(ctx, out, a.Done(), outcome, max, buildOptions(opts))
	return out
}

// mirror waits for done (bounded by max and ctx) and settles out.
func mirror[T any](ctx context.Context, out *Promise[T], done <-chan struct{}, outcome func() (T, error), max time.Duration, o options) {
	spanCtx, span := observability.StartSpan(ctx, o.spanName,
		attribute.String("operation", o.operation),
		attribute.Int64(observability.AttrTimeoutMs, max.Milliseconds()),
		attribute.Int64(observability.AttrPollIntervalMs, o.pollInterval.Milliseconds()),
	)

	var (
		v      T
		err    error
		result string
	)
	if werr := wait(ctx, done, max, o); werr != nil {
		err = werr
		result = observability.OutcomeTimeout
		if ctx.Err() != nil && werr == ctx.Err() {
			result = observability.OutcomeCanceled
		}
	} else {
		v, err = outcome()
		result = observability.OutcomeResolved
		if err != nil {
			result = observability.OutcomeRejected
		}
	}

	observability.RecordSettled(spanCtx, o.operation, result)
	observability.EndSpan(span, result, err)
	out.settle(v, err)
}

// wait returns nil once done is closed, a TIMEOUT error when max elapses,
// or ctx.Err() when ctx ends first. The timer or ticker is always stopped.
func wait(ctx context.Context, done <-chan struct{}, max time.Duration, o options) error {
	select {
	case <-done:
		return nil
	default:
	}

	if o.pollInterval > 0 {
		return poll(ctx, done, max, o)
	}
	if max <= 0 {
		return errors.Timeout(o.operation)
	}

	timer := time.NewTimer(max)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		return errors.Timeout(o.operation)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func poll(ctx context.Context, done <-chan struct{}, max time.Duration, o options) error {
	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

	var elapsed time.Duration
	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			elapsed += o.pollInterval
			if elapsed >= max {
				return errors.Timeout(o.operation)
			}
		}
	}
}
