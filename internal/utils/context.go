// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides the small helpers the framework is built from:
// access token issuance and decoding, salted hashing, random identifiers,
// expiry arithmetic, the pipe-delimited list splitter, JSON response
// writing and type-safe context keys.
package utils

import (
	"context"

	"github.com/MKhiriev/go-r2base/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TokenPayloadCtxKey is the key under which the auth middleware stores the
// verified [models.TokenPayload] of the current request.
var TokenPayloadCtxKey = contextKey("tokenPayload")

// WithTokenPayload returns a copy of ctx carrying payload.
func WithTokenPayload(ctx context.Context, payload models.TokenPayload) context.Context {
	return context.WithValue(ctx, TokenPayloadCtxKey, payload)
}

// GetTokenPayloadFromContext retrieves the verified token payload.
//
// ok is false when the request did not pass through the auth middleware.
//
//	payload, ok := utils.GetTokenPayloadFromContext(r.Context())
//	if !ok {
//	    // route is not protected
//	}
func GetTokenPayloadFromContext(ctx context.Context) (models.TokenPayload, bool) {
	payload, ok := ctx.Value(TokenPayloadCtxKey).(models.TokenPayload)
	return payload, ok
}
