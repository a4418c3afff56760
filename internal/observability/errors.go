package observability

import (
	"context"
	"net/http"

	"cutdata/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordFailure records err on the span, increments the error counter and
// logs with trace context. The caller writes the response.
func RecordFailure(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", opName)))

	logger.Error(msg,
		zap.String("operation", opName),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)
}

// RecordError centralises error handling across all domains: RecordFailure
// plus a JSON error response. The request ID travels in the X-Request-ID
// header only.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter) {
	RecordFailure(ctx, span, logger, counter, opName, msg, err)
	handlers.WriteError(w, status, msg)
}
