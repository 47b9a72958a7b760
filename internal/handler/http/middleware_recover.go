package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/response"
)

// errHandlerPanicked is the cause attached to the envelope of a recovered
// panic. Its text never reaches the client.
var errHandlerPanicked = errors.New("handler panicked")

// withRecover turns a panic in a downstream handler into an
// InternalServerError envelope and logs the panic value with its stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			response.Write(rw, r, response.InternalServerError(nil).WithCause(errHandlerPanicked))
		}()

		next.ServeHTTP(rw, r)
	})
}
