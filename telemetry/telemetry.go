package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ServiceName is the service name recorded on all engine telemetry.
const ServiceName = "farmlogix-compliance"

// LogSpanExporter implements the OpenTelemetry SpanExporter interface and
// writes completed spans to a structured logger. It is a development and
// small-deployment exporter: errors never propagate into the trace pipeline.
type LogSpanExporter struct {
	logger *slog.Logger
}

// NewLogSpanExporter creates an exporter that writes spans to the given
// logger. If logger is nil, slog.Default() is used.
func NewLogSpanExporter(logger *slog.Logger) *LogSpanExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSpanExporter{logger: logger}
}

// ExportSpans logs a batch of completed spans. It always returns nil so a
// logging failure cannot break the trace pipeline.
func (e *LogSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		attrs := make([]any, 0, 2+2*len(span.Attributes()))
		attrs = append(attrs,
			"trace_id", span.SpanContext().TraceID().String(),
			"duration", span.EndTime().Sub(span.StartTime()),
		)
		for _, kv := range span.Attributes() {
			attrs = append(attrs, string(kv.Key), kv.Value.Emit())
		}
		e.logger.Debug("span "+span.Name(), attrs...)
	}
	return nil
}

// Shutdown implements the SpanExporter interface; there is nothing to flush.
func (e *LogSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

// NewTracerProvider creates a TracerProvider that exports spans through a
// LogSpanExporter. The provider uses a SimpleSpanProcessor so spans appear
// in the log as soon as they complete.
//
// Callers own the provider lifecycle:
//
//	tp := telemetry.NewTracerProvider(logger)
//	otel.SetTracerProvider(tp)
//	defer tp.Shutdown(ctx)
func NewTracerProvider(logger *slog.Logger) *sdktrace.TracerProvider {
	exporter := NewLogSpanExporter(logger)
	processor := sdktrace.NewSimpleSpanProcessor(exporter)

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
		),
	)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("failed to create resource, using default", "error", err)
		res = resource.Default()
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithResource(res),
	)
}
