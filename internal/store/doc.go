// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence-backed services of r2base: the redis
// client service and the access-token denylist used for logout.
package store
