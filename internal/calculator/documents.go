package calculator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cutdata/internal/handlers"
	"cutdata/internal/observability"
	"cutdata/internal/process"
	"cutdata/internal/report"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	maxUploadBytes = 10 << 20

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

func writeDocument(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Batch handles POST /cutting-data/batch, a multipart upload of an xlsx
// workbook in the "file" field. Each row gets its own child span. Rows
// without a process column use ?process=. The results are JSON unless
// ?format=xlsx asks for a workbook.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "cutting.batch",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var def process.Kind
	if p := r.URL.Query().Get("process"); p != "" {
		kind, err := process.ParseKind(p)
		if err != nil {
			rejectOrFail(ctx, span, logger, "batch", err, w)
			return
		}
		def = kind
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "file required", err, http.StatusBadRequest, w)
		return
	}
	defer file.Close()

	rows, err := report.ReadBatch(file)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.rows", len(rows)))
	logger.Info("starting batch calculation",
		zap.Int("rows", len(rows)),
		zap.String("request_id", requestID),
	)

	resp := BatchResponse{Rows: len(rows), Results: make([]report.Result, 0, len(rows))}
	for _, row := range rows {
		_, rowSpan := tracer.Start(ctx, fmt.Sprintf("cutting.batch.row.%d", row.Line),
			trace.WithAttributes(attribute.Int("batch.row", row.Line)),
		)

		start := time.Now()
		res := report.Evaluate(h.calc, row, def)
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0

		if res.OK() {
			recordCalculation(ctx, rowSpan, string(res.Process), *res.Output, elapsed)
			resp.Succeeded++
		} else {
			rowErr := errors.New(res.Error)
			rowSpan.RecordError(rowErr)
			rowSpan.SetStatus(codes.Error, res.Error)
			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "batch")))
			logger.Warn("batch row rejected",
				zap.Int("row", row.Line),
				zap.String("field", res.Field),
				zap.Error(rowErr),
				zap.String("request_id", requestID),
			)
			resp.Failed++
		}
		rowSpan.End()
		resp.Results = append(resp.Results, res)
	}

	span.SetAttributes(
		attribute.Int("batch.succeeded", resp.Succeeded),
		attribute.Int("batch.failed", resp.Failed),
	)
	span.SetStatus(codes.Ok, "")
	logger.Info("batch calculation completed",
		zap.Int("rows", resp.Rows),
		zap.Int("failed", resp.Failed),
		zap.String("request_id", requestID),
	)

	if r.URL.Query().Get("format") != "xlsx" {
		handlers.WriteJSON(w, http.StatusOK, resp)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteResults(&buf, resp.Results); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "writing workbook failed", err, http.StatusInternalServerError, w)
		return
	}
	writeDocument(w, contentTypeXLSX, "cutting-data.xlsx", buf.Bytes())
}

// Sheet handles POST /cutting-data/sheet and returns the result as a PDF
// set-up sheet.
func (h *Handler) Sheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "cutting.sheet",
		trace.WithAttributes(attribute.String("request.id", observability.RequestIDFromContext(ctx))),
	)
	defer span.End()

	var req SheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sheet", errBadBody.Error(), err, http.StatusBadRequest, w)
		return
	}
	kind, err := process.ParseKind(req.Process)
	if err != nil {
		rejectOrFail(ctx, span, logger, "sheet", err, w)
		return
	}
	in, err := process.NewInput(kind)
	if err != nil {
		rejectOrFail(ctx, span, logger, "sheet", err, w)
		return
	}
	if len(req.Input) == 0 {
		req.Input = json.RawMessage("{}")
	}
	if err := decodeInput(json.NewDecoder(bytes.NewReader(req.Input)), in); err != nil {
		rejectOrFail(ctx, span, logger, "sheet", err, w)
		return
	}

	out, ok := h.calculate(ctx, span, logger, in, w)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteSheet(&buf, out, time.Now()); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sheet", "rendering sheet failed", err, http.StatusInternalServerError, w)
		return
	}
	writeDocument(w, contentTypePDF, fmt.Sprintf("cutting-data-%s.pdf", kind), buf.Bytes())
}

// TablesWorkbook handles GET /cutting-data/tables.xlsx, an export of every
// feed table.
func (h *Handler) TablesWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "cutting.tables")
	defer span.End()

	var buf bytes.Buffer
	if err := report.WriteTables(&buf, process.Tables()); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "tables", "writing workbook failed", err, http.StatusInternalServerError, w)
		return
	}
	span.SetStatus(codes.Ok, "")
	writeDocument(w, contentTypeXLSX, "feed-tables.xlsx", buf.Bytes())
}
