// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Rejections of the Authorization header. The Auth middleware reports them
// as Unauthorized with the error text as message.
var (
	// ErrInvalidAuthorizationHeader: the header is set but its scheme is
	// not "Bearer".
	ErrInvalidAuthorizationHeader = errors.New("authorization header must use the Bearer scheme")

	// ErrEmptyToken: "Bearer" followed by nothing.
	ErrEmptyToken = errors.New("bearer token is empty")
)
