package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/prefeitura-rio/app-painel-pr/internal/config"
)

const (
	ServiceName    = "app-painel-pr"
	ServiceVersion = "v1.0.0"
)

// Tracer owns the tracer provider so it can be shut down on exit.
type Tracer struct {
	provider *sdktrace.TracerProvider
	logger   *zap.Logger
}

// InitTracer initializes the OpenTelemetry tracer with gRPC OTLP exporter.
// With tracing disabled the global no-op provider stays in place.
func InitTracer(cfg *config.Config, logger *zap.Logger) *Tracer {
	t := &Tracer{logger: logger}
	if !cfg.TracingEnabled {
		logger.Info("tracing is disabled")
		return t
	}

	ctx := context.Background()

	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		logger.Error("failed to create OTLP exporter", zap.Error(err))
		return t
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
		),
	)
	if err != nil {
		logger.Error("failed to create resource", zap.Error(err))
		return t
	}

	t.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(time.Second*10),
			sdktrace.WithMaxQueueSize(2048),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(t.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracer initialized", zap.String("endpoint", cfg.TracingEndpoint))
	return t
}

// Shutdown flushes pending spans.
func (t *Tracer) Shutdown(ctx context.Context) {
	if t == nil || t.provider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := t.provider.Shutdown(ctx); err != nil {
		t.logger.Error("failed to shutdown tracer provider", zap.Error(err))
	}
}
