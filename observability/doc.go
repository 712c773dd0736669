// Package observability exposes the OpenTelemetry tracer and meter that
// utilkit instruments itself with.
//
// Nothing is exported by default: spans and counters go to whatever global
// providers the host process installs with otel.SetTracerProvider and
// otel.SetMeterProvider, and to the no-op providers otherwise.
package observability
