package calculator

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the cutting data endpoints under /cutting-data.
// The middlewares wrap this subtree only.
func RegisterRoutes(r chi.Router, h *Handler, middlewares ...func(http.Handler) http.Handler) {
	r.Route("/cutting-data", func(r chi.Router) {
		r.Use(middlewares...)

		r.Post("/milling", h.Milling)
		r.Post("/chamfer", h.Chamfer)
		r.Post("/face-milling", h.FaceMilling)
		r.Post("/tslot", h.TSlot)
		r.Post("/drilling", h.Drilling)

		r.Post("/batch", h.Batch)
		r.Post("/sheet", h.Sheet)

		r.Get("/materials", h.Materials)
		r.Get("/materials/{process}/{material}/table", h.Table)
		r.Get("/tables.xlsx", h.TablesWorkbook)
	})
}
