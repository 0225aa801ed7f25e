package trace

import (
	"context"
	"io"
	"os"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "llm-futures-bot"

type tracing struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// active is nil while tracing is off; spans are then the no-op span in ctx.
var active *tracing

// Init exports spans to stdout unless LOG_TRACING_ENABLED=false.
func Init() error {
	if v := os.Getenv("LOG_TRACING_ENABLED"); v != "" && v != "true" {
		active = nil
		return nil
	}
	return InitWithWriter(os.Stdout)
}

// InitWithWriter exports spans to w and installs the global provider.
func InitWithWriter(w io.Writer) error {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion()),
		)),
	)
	otel.SetTracerProvider(provider)

	active = &tracing{provider: provider, tracer: provider.Tracer(serviceName)}
	return nil
}

// serviceVersion is the main module version stamped by the go tool.
func serviceVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// Shutdown flushes pending spans.
func Shutdown(ctx context.Context) error {
	if active == nil {
		return nil
	}
	return active.provider.Shutdown(ctx)
}

func Enabled() bool {
	return active != nil
}

func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if active == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return active.tracer.Start(ctx, name, opts...)
}

// RecordError marks the span in ctx failed. No-op without a recording span.
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func AddEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.AddEvent(name, trace.WithAttributes(attrs...))
	}
}

// GetTraceFields returns the hex trace and span ids of the span in ctx.
func GetTraceFields(ctx context.Context) (traceID, spanID string, ok bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", "", false
	}
	return sc.TraceID().String(), sc.SpanID().String(), true
}
