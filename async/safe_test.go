package async

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/utilkit/errors"
	"github.com/kbukum/utilkit/observability"
)

func TestSafeAsync_PlainValue(t *testing.T) {
	v, err := await(t, SafeAsync(42, time.Second))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = await(t, SafeAsync(nil, time.Second))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSafeAsync_Func(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		args    []any
		want    any
		errCode errors.ErrorCode
	}{
		{name: "no results", value: func() {}, want: nil},
		{name: "single result", value: func() int { return 7 }, want: 7},
		{name: "with args", value: func(a, b int) int { return a + b }, args: []any{2, 3}, want: 5},
		{name: "variadic", value: func(xs ...string) int { return len(xs) }, args: []any{"a", "b"}, want: 2},
		{name: "nil pointer arg", value: func(p *int) bool { return p == nil }, args: []any{nil}, want: true},
		{name: "value and nil error", value: func() (string, error) { return "ok", nil }, want: "ok"},
		{name: "multiple results", value: func() (int, string) { return 1, "a" }, want: []any{1, "a"}},
		{name: "returned error", value: func() (int, error) { return 0, errors.InvalidFormat("x", "y") }, errCode: errors.ErrCodeInvalidFormat},
		{name: "panic", value: func() int { panic("boom") }, errCode: errors.ErrCodeInternal},
		{name: "arity mismatch", value: func(a int) int { return a }, errCode: errors.ErrCodeInvalidArgument},
		{name: "type mismatch", value: func(a int) int { return a }, args: []any{"x"}, errCode: errors.ErrCodeInvalidArgument},
		{name: "nil for value type", value: func(a int) int { return a }, args: []any{nil}, errCode: errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := await(t, SafeAsync(tt.value, time.Second, tt.args...))
			if tt.errCode != "" {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSafeAsync_FuncReturningPromise(t *testing.T) {
	v, err := await(t, SafeAsync(func() *Promise[int] { return Resolved(9) }, time.Second))
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = await(t, SafeAsync(func() *Promise[int] { return New[int]() }, 10*time.Millisecond))
	assert.True(t, errors.HasCode(err, errors.ErrCodeTimeout))
}

func TestSafeAsync_Promise(t *testing.T) {
	v, err := await(t, SafeAsync(Resolved("p"), time.Second))
	require.NoError(t, err)
	assert.Equal(t, "p", v)

	_, err = await(t, SafeAsync(New[string](), 10*time.Millisecond))
	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.TimeoutMessage, appErr.Message)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTimeout))
}

func TestSafeAsync_TypedNilPromise(t *testing.T) {
	var p *Promise[int]
	v, err := await(t, SafeAsync(p, time.Second))
	require.NoError(t, err)
	assert.Equal(t, p, v)
}

func TestWaiter_PollInterval(t *testing.T) {
	w := Waiter{PollInterval: 5 * time.Millisecond}
	_, err := await(t, w.SafeAsync(context.Background(), New[int](), 15*time.Millisecond))
	assert.True(t, errors.HasCode(err, errors.ErrCodeTimeout))

	v, err := await(t, w.Countdown(context.Background(), Resolved(1), time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSafeAsync_RecordsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, err := await(t, SafeAsync(New[int](), 5*time.Millisecond))
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, observability.SpanSafeAsync, spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String(observability.AttrOutcome, observability.OutcomeTimeout))
}

func ExampleSafeAsync() {
	v, err := SafeAsync(func() int { return 7 }, time.Second).Await(context.Background())
	fmt.Println(v, err)
	// Output: 7 <nil>
}
