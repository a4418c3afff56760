package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cutdata/internal/calculator"
	"cutdata/internal/handlers"
	"cutdata/internal/observability"
	"cutdata/internal/ratelimit"
)

// NewRouter wires the middleware stack, the probes and the cutting data
// endpoints. A nil limiter leaves the endpoints unthrottled.
func NewRouter(h *calculator.Handler, limiter *ratelimit.IPRateLimiter) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler(calculator.CatalogCollector()))

	var mws []func(http.Handler) http.Handler
	if limiter != nil {
		mws = append(mws, limiter.Middleware)
	}
	calculator.RegisterRoutes(r, h, mws...)

	return r
}
