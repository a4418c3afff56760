package calculator

import (
	"errors"
	"net/http"

	"cutdata/internal/cutting"
	"cutdata/internal/handlers"
	"cutdata/internal/observability"
	"cutdata/internal/process"
	"cutdata/internal/tooldata"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Materials handles GET /cutting-data/materials. An optional ?process=
// narrows the list to one calculator.
func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "cutting.materials")
	defer span.End()

	groups := process.Groups()
	if p := r.URL.Query().Get("process"); p != "" {
		kind, err := process.ParseKind(p)
		if err != nil {
			observability.RecordFailure(ctx, span, logger, errorCounter, "materials", "unknown process", err)
			handlers.WriteFieldError(w, http.StatusBadRequest, "unknown process", "process")
			return
		}
		filtered := groups[:0]
		for _, g := range groups {
			if g.Process == kind {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}

	span.SetAttributes(attribute.Int("cutting.groups", len(groups)))
	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, MaterialsResponse{Groups: groups})
}

// Table handles GET /cutting-data/materials/{process}/{material}/table and
// returns the feed table a calculation would read. The query parameters
// tool, mode and class select T-slot and drilling variants.
func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	material := chi.URLParam(r, "material")
	ctx, span := tracer.Start(ctx, "cutting.table",
		trace.WithAttributes(attribute.String("cutting.material", material)),
	)
	defer span.End()

	kind, err := process.ParseKind(chi.URLParam(r, "process"))
	if err == nil {
		span.SetAttributes(attribute.String("cutting.process", string(kind)))
	}

	q := r.URL.Query()
	var table *cutting.FeedTable
	if err == nil {
		table, err = process.FeedTable(kind, process.TableQuery{
			Material:     material,
			ToolMaterial: q.Get("tool"),
			Mode:         tooldata.TSlotMode(q.Get("mode")),
			LengthClass:  q.Get("class"),
		})
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, cutting.ErrInvalidInput) {
			status = http.StatusNotFound
		}
		observability.RecordFailure(ctx, span, logger, errorCounter, "table", "feed table not found", err)
		handlers.WriteFieldError(w, status, "feed table not found", process.ErrorField(err))
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, TableResponse{
		Process:  kind,
		Material: material,
		Policy:   table.Policy().String(),
		Rows:     table.Rows(),
	})
}
