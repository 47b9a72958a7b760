// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/response"
)

// HandlerFunc is a request handler that reports failure by returning an
// error instead of writing it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts fn to http.HandlerFunc. A returned error is rendered by
// response.Write, unless fn already started the response; then the error
// can only be logged.
//
//	r.Get("/users/{id}", Wrap(func(w http.ResponseWriter, r *http.Request) error {
//	    return response.NotFound("no such user")
//	}))
func Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		err := fn(rw, r)
		if err == nil {
			return
		}

		if rw.wroteHeader {
			logger.FromRequest(r).Err(err).
				Int("status", rw.status).
				Msg("handler failed after the response was started")
			return
		}

		response.Write(rw, r, err)
	}
}
