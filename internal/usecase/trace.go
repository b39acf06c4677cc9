package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/football-portal/internal/domain/feed"
)

var (
	usecaseTracer   = otel.Tracer("football-portal/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only opens child spans; cache warm-up and other
// background work without a request span stays untraced.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

// markFeedFallback tags the current span with the provenance of a result
// that was not served by the provider.
func markFeedFallback(ctx context.Context, operation string, source feed.Source) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("feed.operation", operation),
		attribute.String("feed.source", string(source)),
	)
	span.AddEvent("feed.fallback")
}
