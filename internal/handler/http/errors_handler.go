// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-r2base/internal/response"
)

// notFound is the catch-all for requests no route matched.
func notFound(w http.ResponseWriter, r *http.Request) {
	response.Write(w, r, response.NotFound(nil))
}

// methodNotAllowed answers requests whose path is routed but whose method
// is not.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Write(w, r, response.MethodNotAllowed(nil))
}
