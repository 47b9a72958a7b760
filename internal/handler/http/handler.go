package http

import (
	"github.com/MKhiriev/go-r2base/internal/config"
	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/registry"
)

type Handler struct {
	registry *registry.Registry
	cfg      config.Server

	// limiters is nil when rate limiting is disabled.
	limiters *limiterRegistry
	// metrics is nil when metrics are disabled.
	metrics *metrics

	logger *logger.Logger
}

func NewHandler(reg *registry.Registry, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		registry: reg,
		cfg:      cfg,
		logger:   logger,
	}

	if cfg.RateLimit > 0 {
		h.limiters = newLimiterRegistry(cfg.RateLimit, cfg.RateBurst)
	}
	if cfg.MetricsEnabled {
		h.metrics = newMetrics()
	}

	logger.Info().Msg("http handler created")
	return h
}
