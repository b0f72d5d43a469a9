// Package telemetry wires the engine's OpenTelemetry instrumentation for
// embedding applications that do not run a collector.
//
// The engine's dashboard facade records spans and metrics through the global
// otel providers; this package provides a minimal provider setup whose span
// exporter writes completed spans to a slog.Logger. Consoles that already
// configure their own TracerProvider ignore this package entirely.
package telemetry
