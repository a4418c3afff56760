// Package calculator serves the cutting data calculators over HTTP.
package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cutdata/internal/cutting"
	"cutdata/internal/handlers"
	"cutdata/internal/observability"
	"cutdata/internal/process"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the dedicated OpenTelemetry tracer of the cutting data endpoints.
var tracer = otel.Tracer("cutdata")

// Handler serves calculation requests with one shared calculator.
type Handler struct {
	calc *process.Calculator
}

// NewHandler returns a Handler backed by calc.
func NewHandler(calc *process.Calculator) *Handler {
	return &Handler{calc: calc}
}

// ---------------------------------------------------------------------------
// Handlers: one endpoint per process
// ---------------------------------------------------------------------------

// Milling handles POST /cutting-data/milling
func (h *Handler) Milling(w http.ResponseWriter, r *http.Request) {
	h.handleCalculation(w, r, process.Milling)
}

// Chamfer handles POST /cutting-data/chamfer
func (h *Handler) Chamfer(w http.ResponseWriter, r *http.Request) {
	h.handleCalculation(w, r, process.Chamfer)
}

// FaceMilling handles POST /cutting-data/face-milling
func (h *Handler) FaceMilling(w http.ResponseWriter, r *http.Request) {
	h.handleCalculation(w, r, process.FaceMilling)
}

// TSlot handles POST /cutting-data/tslot
func (h *Handler) TSlot(w http.ResponseWriter, r *http.Request) {
	h.handleCalculation(w, r, process.TSlot)
}

// Drilling handles POST /cutting-data/drilling
func (h *Handler) Drilling(w http.ResponseWriter, r *http.Request) {
	h.handleCalculation(w, r, process.Drilling)
}

// handleCalculation is the shared implementation of the process endpoints:
// child span, body decode, calculation, metrics, trace-correlated log and
// the JSON result.
func (h *Handler) handleCalculation(w http.ResponseWriter, r *http.Request, kind process.Kind) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := string(kind)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("cutting.%s", opName),
		trace.WithAttributes(
			attribute.String("cutting.process", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	in, err := process.NewInput(kind)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "unsupported process", err, http.StatusNotFound, w)
		return
	}
	if err := decodeInput(json.NewDecoder(r.Body), in); err != nil {
		rejectOrFail(ctx, span, logger, opName, err, w)
		return
	}

	out, ok := h.calculate(ctx, span, logger, in, w)
	if !ok {
		return
	}
	handlers.WriteJSON(w, http.StatusOK, out)
}

// decodeInput decodes one input object. A value of the wrong JSON type is
// reported as an input error on its field, any other decode failure as
// errBadBody.
func decodeInput(dec *json.Decoder, in process.Input) error {
	dec.DisallowUnknownFields()
	err := dec.Decode(in)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &cutting.InputError{Field: typeErr.Field, Reason: "has the wrong type"}
	}
	return fmt.Errorf("%w: %v", errBadBody, err)
}

var errBadBody = errors.New("invalid request body")

// calculate runs in and records the outcome. On failure the error response
// is already written and ok is false.
func (h *Handler) calculate(ctx context.Context, span trace.Span, logger *zap.Logger, in process.Input, w http.ResponseWriter) (out process.Output, ok bool) {
	opName := string(in.Kind())

	start := time.Now()
	out, err := h.calc.Calculate(in)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		rejectOrFail(ctx, span, logger, opName, err, w)
		return process.Output{}, false
	}

	recordCalculation(ctx, span, opName, out, elapsed)

	logger.Info("cutting data calculated",
		zap.String("operation", opName),
		zap.String("material", out.Material),
		zap.Float64("spindle_speed_rpm", out.SpindleSpeed),
		zap.Int("feed_rate_mm_min", out.FeedRate),
		zap.Bool("capped", out.Capped),
		zap.Int("warnings", len(out.Warnings)),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)
	return out, true
}

// recordCalculation records metrics and span data of a successful
// calculation.
func recordCalculation(ctx context.Context, span trace.Span, opName string, out process.Output, elapsed float64) {
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	calcCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("material", out.Material),
	))
	calcHistogram.Record(ctx, elapsed, attrs)
	spindleGauge.Record(ctx, out.SpindleSpeed, attrs)
	if out.Capped {
		cappedCounter.Add(ctx, 1, attrs)
	}
	for _, warn := range out.Warnings {
		warningCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", opName),
			attribute.String("code", string(warn.Code)),
		))
		span.AddEvent("calculation.warning", trace.WithAttributes(
			attribute.String("code", string(warn.Code)),
		))
	}

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("spindle_speed_rpm", out.SpindleSpeed),
		attribute.Int("feed_rate_mm_min", out.FeedRate),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.String("cutting.material", out.Material),
		attribute.Float64("cutting.spindle_speed_rpm", out.SpindleSpeed),
		attribute.Int("cutting.feed_rate_mm_min", out.FeedRate),
		attribute.Bool("cutting.capped", out.Capped),
	)
	span.SetStatus(codes.Ok, "")
}

// rejectOrFail answers invalid input with 422 and the offending field,
// a malformed body with 400 and anything else with 500.
func rejectOrFail(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, cutting.ErrInvalidInput):
		observability.RecordFailure(ctx, span, logger, errorCounter, opName, MsgFillInFields, err)
		handlers.WriteFieldError(w, http.StatusUnprocessableEntity, MsgFillInFields, process.ErrorField(err))
	case errors.Is(err, errBadBody):
		observability.RecordError(ctx, span, logger, errorCounter, opName, errBadBody.Error(), err, http.StatusBadRequest, w)
	default:
		observability.RecordError(ctx, span, logger, errorCounter, opName, "calculation failed", err, http.StatusInternalServerError, w)
	}
}
