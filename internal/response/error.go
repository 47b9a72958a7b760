// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-r2base/models"
)

// Error is an HTTP-renderable error.
//
// Message is any JSON-encodable value; nil renders as the standard status
// text of the kind. Type is an optional machine-readable tag rendered as
// "type".
type Error struct {
	Kind    Kind
	Message any
	Type    string

	// cause is kept for logging and errors.Is/As; it is never rendered.
	cause error
}

// New is the error factory for every kind.
func New(kind Kind, message any) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadRequest(message any) *Error           { return New(KindBadRequest, message) }
func Unauthorized(message any) *Error         { return New(KindUnauthorized, message) }
func Forbidden(message any) *Error            { return New(KindForbidden, message) }
func NotFound(message any) *Error             { return New(KindNotFound, message) }
func MethodNotAllowed(message any) *Error     { return New(KindMethodNotAllowed, message) }
func Conflict(message any) *Error             { return New(KindConflict, message) }
func Gone(message any) *Error                 { return New(KindGone, message) }
func UnsupportedMediaType(message any) *Error { return New(KindUnsupportedMediaType, message) }
func UnprocessableEntity(message any) *Error  { return New(KindUnprocessableEntity, message) }
func TooManyRequests(message any) *Error      { return New(KindTooManyRequests, message) }
func InternalServerError(message any) *Error  { return New(KindInternalServerError, message) }
func GatewayTimeout(message any) *Error       { return New(KindGatewayTimeout, message) }

// WithType returns a copy of e tagged with t.
func (e *Error) WithType(t string) *Error {
	c := *e
	c.Type = t
	return &c
}

// WithCause returns a copy of e that wraps err.
func (e *Error) WithCause(err error) *Error {
	c := *e
	c.cause = err
	return &c
}

func (e *Error) Name() string { return e.Kind.Name() }
func (e *Error) Code() int    { return e.Kind.Code() }

func (e *Error) Error() string {
	msg := e.message()
	if e.cause != nil {
		return fmt.Sprintf("%s: %v: %v", e.Name(), msg, e.cause)
	}
	return fmt.Sprintf("%s: %v", e.Name(), msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Envelope returns the body the error stage writes for e.
func (e *Error) Envelope() models.ErrorEnvelope {
	return models.ErrorEnvelope{
		Name:    e.Name(),
		Code:    e.Code(),
		Message: e.message(),
		Type:    e.Type,
	}
}

func (e *Error) message() any {
	if e.Message == nil {
		return http.StatusText(e.Code())
	}
	return e.Message
}
