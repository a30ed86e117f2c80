package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartCommandSpan opens the root span of one accountctl invocation,
// named "command.<path>" (e.g. "command.auth login").
func StartCommandSpan(ctx context.Context, command string) (context.Context, trace.Span) {
	return Tracer("commands").Start(ctx, "command."+command,
		trace.WithAttributes(
			attribute.String("command", command),
			attribute.String("component", "cli"),
		),
	)
}

// StartRequestSpan opens a client span for one account API call. A nil
// tracer uses the installed provider's "api" tracer.
func StartRequestSpan(ctx context.Context, tracer trace.Tracer, method, path string) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = Tracer("api")
	}
	return tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
			attribute.String("component", "api"),
		),
	)
}

func RecordSuccess(span trace.Span, attrs ...attribute.KeyValue) {
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	span.SetStatus(codes.Ok, "")
}

// RecordError is a no-op for a nil err.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
