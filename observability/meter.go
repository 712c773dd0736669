package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricAsyncSettled  = "utilkit.async.settled"
	MetricAsyncTimeouts = "utilkit.async.timeouts"
)

// Meter returns the utilkit meter from the current global provider.
func Meter() metric.Meter {
	return otel.Meter(InstrumentationName)
}

// RecordSettled counts a settled countdown, tagged with its outcome.
func RecordSettled(ctx context.Context, operation, outcome string) {
	addOne(ctx, MetricAsyncSettled, "Countdowns settled, by outcome",
		attribute.String("operation", operation),
		attribute.String(AttrOutcome, outcome))
	if outcome == OutcomeTimeout {
		addOne(ctx, MetricAsyncTimeouts, "Countdowns that timed out",
			attribute.String("operation", operation))
	}
}

func addOne(ctx context.Context, name, description string, attrs ...attribute.KeyValue) {
	counter, err := Meter().Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(err)
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}
