package telemetry

import (
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Config controls tracing for one accountctl run. With Enabled false every
// tracer is a noop. With Enabled true and no Endpoint, spans are sampled
// and recorded but never leave the process.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool

	// Endpoint is the OTLP/HTTP collector as host:port.
	Endpoint string
	Insecure bool

	// SampleRate is clamped to [0, 1] by the caller.
	SampleRate float64
}

func DefaultConfig() Config {
	return Config{
		ServiceName:    "accountctl",
		ServiceVersion: "dev",
		Environment:    "development",
		SampleRate:     1.0,
	}
}

func (c Config) resource() *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(c.ServiceName),
		semconv.ServiceVersionKey.String(c.ServiceVersion),
		semconv.DeploymentEnvironmentKey.String(c.Environment),
	)
}

// sampler keeps whole traces together: a command span decides for the
// API request spans under it.
func (c Config) sampler() sdktrace.Sampler {
	if c.SampleRate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRate))
}
