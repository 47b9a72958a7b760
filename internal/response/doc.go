// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package response builds the JSON envelopes every r2base endpoint answers
// with.
//
// Success bodies have the shape
//
//	{"name": "OK", "code": 200, "data": ...}
//
// and error bodies, written by the terminal error stage [Write], have the
// shape
//
//	{"name": "NotFound", "code": 404, "message": ..., "type": ...}
//
// Errors are values: a handler constructs an [*Error] (or returns any other
// error) and the error stage decides how it is rendered. Constructing an
// error never writes to the response.
package response
