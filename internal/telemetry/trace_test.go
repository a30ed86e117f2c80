package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer installs an enabled provider that exports to memory
func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	cfg := DefaultConfig()
	cfg.Enabled = true

	shutdown, err := InitProvider(context.Background(), cfg,
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = shutdown(context.Background())
		_, _ = InitProvider(context.Background(), DefaultConfig())
	})
	return exporter
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestStartCommandSpan(t *testing.T) {
	exporter := setupTestTracer(t)

	ctx, span := StartCommandSpan(context.Background(), "auth login")
	require.NotNil(t, span)
	assert.NotEqual(t, context.Background(), ctx)
	RecordSuccess(span, attribute.String("state", "authenticated"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "command.auth login", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)

	v, ok := attrValue(spans[0].Attributes, "command")
	require.True(t, ok)
	assert.Equal(t, "auth login", v.AsString())
}

func TestStartRequestSpan(t *testing.T) {
	exporter := setupTestTracer(t)

	ctx, parent := StartCommandSpan(context.Background(), "profile show")
	_, child := StartRequestSpan(ctx, nil, "GET", "/api/user/profile")
	RecordError(child, errors.New("request failed with status 500"))
	child.End()
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	req := spans[0]
	assert.Equal(t, "GET /api/user/profile", req.Name)
	assert.Equal(t, codes.Error, req.Status.Code)
	assert.Equal(t, spans[1].SpanContext.TraceID(), req.SpanContext.TraceID(), "request span should share the command trace")
	assert.Len(t, req.Events, 1)
}

func TestRecordErrorWithNil(t *testing.T) {
	exporter := setupTestTracer(t)

	_, span := StartCommandSpan(context.Background(), "home")
	RecordError(span, nil)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
}
