package commandinit

import (
	"context"
	"fmt"

	"github.com/charj-lang/charj/internal/defaults"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"
)

type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error {
	return nil
}

// NewTracerProvider returns the process-wide no-op provider unless export is
// enabled, in which case spans go to the OTLP endpoint configured through the
// standard OTEL_EXPORTER_OTLP_* variables.
func NewTracerProvider(ctx context.Context, serviceName string, enabled bool) (trace.TracerProvider, ShutdownFunc, error) {
	if !enabled {
		return defaults.TracerProvider, noopShutdown, nil
	}

	return NewOpenTelemetry(ctx, serviceName)
}

func NewOpenTelemetry(ctx context.Context, serviceName string) (trace.TracerProvider, ShutdownFunc, error) {
	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithCompressor("gzip"))
	if err != nil {
		return nil, noopShutdown, fmt.Errorf("create OTEL exporter: %w", err)
	}

	resource, err := sdkresource.New(
		ctx,
		sdkresource.WithTelemetrySDK(),
		sdkresource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(defaults.Version),
		),
	)
	if err != nil {
		return nil, noopShutdown, fmt.Errorf("create OTEL resource: %w", err)
	}

	// checks are short-lived, so spans are exported in small batches
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(
			exporter,
			sdktrace.WithMaxQueueSize(4096),
			sdktrace.WithMaxExportBatchSize(256),
		),
		sdktrace.WithResource(resource),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return tracerProvider, tracerProvider.Shutdown, nil
}
