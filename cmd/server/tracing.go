package main

import (
	"context"
	"fmt"

	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/baditaflorin/go_text_heuristic/internal/config"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

const serviceName = "text-heuristic-server"

// newTracerProvider installs the global tracer provider. Finished spans are
// written to the server log. When tracing is disabled a no-op provider is returned.
func newTracerProvider(cfg config.TracingConfig, logger ports.Logger) (trace.TracerProvider, func(context.Context) error, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(newLogExporter(logger)),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate))),
	)
	otel.SetTracerProvider(provider)

	return provider, provider.Shutdown, nil
}

// logExporter writes finished spans through the server logger.
type logExporter struct {
	logger ports.Logger
}

func newLogExporter(logger ports.Logger) *logExporter {
	return &logExporter{logger: logger}
}

func (e *logExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		e.logger.Debug("Span finished",
			"trace_id", span.SpanContext().TraceID().String(),
			"span_id", span.SpanContext().SpanID().String(),
			"name", span.Name(),
			"status", span.Status().Code.String(),
			"duration", span.EndTime().Sub(span.StartTime()),
		)
	}
	return nil
}

func (e *logExporter) Shutdown(context.Context) error {
	return nil
}

// requestHeaderCarrier exposes fasthttp request headers to trace propagators.
type requestHeaderCarrier struct {
	header *fasthttp.RequestHeader
}

func (c requestHeaderCarrier) Get(key string) string {
	return string(c.header.Peek(key))
}

func (c requestHeaderCarrier) Set(key, value string) {
	c.header.Set(key, value)
}

func (c requestHeaderCarrier) Keys() []string {
	keys := make([]string, 0, c.header.Len())
	c.header.VisitAll(func(key, _ []byte) {
		keys = append(keys, string(key))
	})
	return keys
}
