package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-r2base/internal/logger"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

// HTTPServer serves one handler until its context is cancelled or the
// process receives a stop signal.
type HTTPServer struct {
	server *http.Server

	// ShutdownTimeout bounds how long in-flight requests may take to finish.
	ShutdownTimeout time.Duration

	logger *logger.Logger
}

func NewHTTPServer(addr string, handler http.Handler, logger *logger.Logger) *HTTPServer {
	logger.Info().Str("addr", addr).Msg("creating new server...")
	return &HTTPServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		ShutdownTimeout: defaultShutdownTimeout,
		logger:          logger,
	}
}

// Run listens on the configured address and serves until ctx is done or a
// stop signal arrives, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. The listener is closed on return.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	if s.server.Handler == nil {
		_ = ln.Close()
		return errNoHandler
	}

	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("Launching HTTP server")
		err := s.server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server Serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	if err := <-serveErr; err != nil {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
