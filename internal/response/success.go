// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"net/http"

	"github.com/MKhiriev/go-r2base/internal/utils"
	"github.com/MKhiriev/go-r2base/models"
)

// Success writes {"name": name, "code": code, "data": data} with status
// code. It is the common path of the named builders below.
func Success(w http.ResponseWriter, name string, code int, data any) error {
	_, err := utils.WriteJSON(w, models.Envelope{Name: name, Code: code, Data: data}, code)
	return err
}

// OK writes a 200 envelope.
func OK(w http.ResponseWriter, data any) error {
	return Success(w, "OK", http.StatusOK, data)
}

// Created writes a 201 envelope.
func Created(w http.ResponseWriter, data any) error {
	return Success(w, "Created", http.StatusCreated, data)
}

// Accepted writes a 202 envelope.
func Accepted(w http.ResponseWriter, data any) error {
	return Success(w, "Accepted", http.StatusAccepted, data)
}

// NoContent sends status 204. A 204 response cannot carry a body, so data
// is never written.
func NoContent(w http.ResponseWriter, data any) error {
	return Success(w, "NoContent", http.StatusNoContent, data)
}
