// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import "net/http"

// Kind enumerates the error categories the error stage can render.
// The zero Kind renders as InternalServerError.
type Kind int

const (
	KindInternalServerError Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindMethodNotAllowed
	KindConflict
	KindGone
	KindUnsupportedMediaType
	KindUnprocessableEntity
	KindTooManyRequests
	KindGatewayTimeout
)

var kinds = [...]struct {
	name string
	code int
}{
	KindInternalServerError:  {"InternalServerError", http.StatusInternalServerError},
	KindBadRequest:           {"BadRequest", http.StatusBadRequest},
	KindUnauthorized:         {"Unauthorized", http.StatusUnauthorized},
	KindForbidden:            {"Forbidden", http.StatusForbidden},
	KindNotFound:             {"NotFound", http.StatusNotFound},
	KindMethodNotAllowed:     {"MethodNotAllowed", http.StatusMethodNotAllowed},
	KindConflict:             {"Conflict", http.StatusConflict},
	KindGone:                 {"Gone", http.StatusGone},
	KindUnsupportedMediaType: {"UnsupportedMediaType", http.StatusUnsupportedMediaType},
	KindUnprocessableEntity:  {"UnprocessableEntity", http.StatusUnprocessableEntity},
	KindTooManyRequests:      {"TooManyRequests", http.StatusTooManyRequests},
	KindGatewayTimeout:       {"GatewayTimeout", http.StatusGatewayTimeout},
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kinds)
}

// Name is the envelope name of k, e.g. "NotFound".
func (k Kind) Name() string {
	if !k.valid() {
		return kinds[KindInternalServerError].name
	}
	return kinds[k].name
}

// Code is the HTTP status code of k.
func (k Kind) Code() int {
	if !k.valid() {
		return kinds[KindInternalServerError].code
	}
	return kinds[k].code
}

func (k Kind) String() string {
	return k.Name()
}

// Kinds lists every error kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}
