package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// exportTimeout bounds how long finished spans wait in the batcher. Commands
// are short so most spans are only flushed by Shutdown.
const exportTimeout = 2 * time.Second

type installed struct {
	provider trace.TracerProvider
	shutdown func(context.Context) error
}

var (
	mu      sync.RWMutex
	current = installed{
		provider: noop.NewTracerProvider(),
		shutdown: func(context.Context) error { return nil },
	}
)

// InitProvider installs the process tracer provider, also as otel's global.
// extra options are applied last; tests use them to add a span recorder.
// The returned function flushes and stops the provider.
func InitProvider(ctx context.Context, cfg Config, extra ...sdktrace.TracerProviderOption) (func(context.Context) error, error) {
	next, err := build(ctx, cfg, extra)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	current = next
	mu.Unlock()

	otel.SetTracerProvider(next.provider)
	return next.shutdown, nil
}

func build(ctx context.Context, cfg Config, extra []sdktrace.TracerProviderOption) (installed, error) {
	if !cfg.Enabled {
		return installed{
			provider: noop.NewTracerProvider(),
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(cfg.resource()),
		sdktrace.WithSampler(cfg.sampler()),
	}

	if cfg.Endpoint != "" {
		exporter, err := newExporter(ctx, cfg)
		if err != nil {
			return installed{}, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(exportTimeout)))
	}

	tp := sdktrace.NewTracerProvider(append(opts, extra...)...)
	return installed{provider: tp, shutdown: tp.Shutdown}, nil
}

func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithCompression(otlptracehttp.GzipCompression),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter for %s: %w", cfg.Endpoint, err)
	}
	return exporter, nil
}

// Shutdown flushes whatever provider is installed.
func Shutdown(ctx context.Context) error {
	mu.RLock()
	shutdown := current.shutdown
	mu.RUnlock()
	return shutdown(ctx)
}

func GetTracerProvider() trace.TracerProvider {
	mu.RLock()
	defer mu.RUnlock()
	return current.provider
}

// Tracer returns a named tracer from the installed provider.
func Tracer(name string) trace.Tracer {
	return GetTracerProvider().Tracer(name)
}
