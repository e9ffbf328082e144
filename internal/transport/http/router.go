// Package httptransport assembles the HTTP router. Transport concerns stay
// here so domain packages never import net/http.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bnpl-gateway/internal/checkout/handler"
	"bnpl-gateway/internal/platform/middleware"
)

// NewRouter wires all public endpoints plus health and metrics.
func NewRouter(h *handler.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.RequestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	h.Register(r)

	return r
}
