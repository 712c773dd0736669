package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies utilkit to OpenTelemetry providers.
const InstrumentationName = "github.com/kbukum/utilkit"

// Common span names.
const (
	SpanCountdown = "async.countdown"
	SpanSafeAsync = "async.safe_async"
)

// Common attribute keys.
const (
	AttrTimeoutMs      = "utilkit.timeout_ms"
	AttrPollIntervalMs = "utilkit.poll_interval_ms"
	AttrOutcome        = "utilkit.outcome"
	AttrValueKind      = "utilkit.value_kind"
)

// Outcome values recorded on spans and counters.
const (
	OutcomeResolved = "resolved"
	OutcomeRejected = "rejected"
	OutcomeTimeout  = "timeout"
	OutcomeCanceled = "canceled"
)

// Tracer returns the utilkit tracer from the current global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// StartSpan starts a new span using the utilkit tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records the outcome (and err, when set) on span and ends it.
func EndSpan(span trace.Span, outcome string, err error) {
	span.SetAttributes(attribute.String(AttrOutcome, outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
