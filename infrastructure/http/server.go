// Package http exposes the service over REST: POST /ask runs the pipeline,
// GET /health reports process and pipeline stats.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"member-qa/contract"
	"member-qa/observability"
)

const serviceName = "member-qa"

// NewRouter wires the handlers. The router owns no state beyond its
// dependencies; concurrency is handled per-request by the pipeline.
func NewRouter(service contract.IQAService, stats *observability.PipelineStats, log *slog.Logger) http.Handler {
	h := NewHandler(service, stats, log)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Post("/ask", h.Ask)
	return r
}
