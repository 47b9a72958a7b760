package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where metrics are exposed when enabled.
const MetricsPath = "/metrics"

// Init builds the router: built-in middleware first, then the application
// middleware in order, then the routes added by mount. Requests that match
// no route get a NotFound envelope; a known path with an unsupported method
// gets a MethodNotAllowed envelope.
func (h *Handler) Init(middlewares []func(http.Handler) http.Handler, mount func(r chi.Router)) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withRecover)

	if h.metrics != nil {
		router.Use(h.metrics.middleware)
	}
	if h.limiters != nil {
		router.Use(h.withRateLimit)
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(withTimeout(h.cfg.RequestTimeout))
	}
	if h.cfg.Compress {
		router.Use(middleware.Compress(5))
	}

	router.Use(middlewares...)

	if h.metrics != nil {
		router.Method(http.MethodGet, MetricsPath, promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))
	}

	if mount != nil {
		mount(router)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
