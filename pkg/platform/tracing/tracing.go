// Package tracing wraps workflow operations in OpenTelemetry spans. Spans
// go to the global tracer provider, which is a no-op until one is installed.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dErrors "ims/pkg/domain-errors"
	"ims/pkg/result"
)

// Start opens a span named op on the tracer for component.
func Start(ctx context.Context, component, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("ims/"+component).Start(ctx, op, trace.WithAttributes(attrs...))
}

// End records the outcome of r on span, ends it and returns r unchanged.
func End[T any](span trace.Span, r result.Result[T]) result.Result[T] {
	if r.Err != nil {
		span.RecordError(r.Err)
		span.SetAttributes(attribute.String("error.code", string(dErrors.CodeOf(r.Err))))
		span.SetStatus(codes.Error, r.Message)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
	return r
}
