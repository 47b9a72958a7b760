package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-r2base/internal/response"
)

// withTimeout cancels the request context after timeout. When the deadline
// passed and the handler wrote nothing, a GatewayTimeout envelope is sent.
// Handlers must watch r.Context() for this to cut a request short.
func withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !rw.wroteHeader {
				response.Write(rw, r, response.GatewayTimeout(nil).WithCause(ctx.Err()))
			}
		})
	}
}
