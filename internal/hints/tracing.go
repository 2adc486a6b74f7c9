package hints

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "codeberg.org/antivibe/antivibe/internal/hints"

const (
	outcomeLive     = "live"
	outcomeFallback = "fallback"
)

type hintSpan struct {
	span trace.Span
}

func startHintSpan(ctx context.Context, req Request) (context.Context, *hintSpan) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "antivibe.get_hint",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("hint.level", int(req.HintLevel)),
			attribute.Bool("hint.has_error_message", req.ErrorMessage != ""),
		))

	return ctx, &hintSpan{span: span}
}

func (s *hintSpan) end(outcome string, err error) {
	s.span.SetAttributes(
		attribute.String("hint.outcome", outcome),
		attribute.String("hint.error_kind", errorKind(err)),
	)

	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}

	s.span.End()
}
