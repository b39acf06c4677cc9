package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("football-portal/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for handler entry points only. Helpers and
// untraced requests such as health probes get a noop span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !isHandlerSpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(handlerSpanAttributes(ctx, name)...))
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

func handlerSpanAttributes(ctx context.Context, name string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("portal.handler", strings.TrimPrefix(name, handlerSpanPrefix)),
	}
	if info := routeInfoFromContext(ctx); info != nil && info.pattern != "" {
		attrs = append(attrs, attribute.String("http.route", info.pattern))
	}
	return attrs
}

// recordSpanFailure marks the active span failed for server-side errors;
// client errors are only recorded as events.
func recordSpanFailure(ctx context.Context, err error, status int) {
	span := trace.SpanFromContext(ctx)
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
	if status >= 500 {
		span.SetStatus(codes.Error, err.Error())
	}
}
