// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry implements the service registry of an r2base
// application: a name-to-instance container that is built at startup,
// passed explicitly to everything that needs it, and treated as read-only
// once the server accepts connections.
//
// Services are constructed by a [Factory] that receives the registry
// itself, so a factory can read configuration ([Registry.Config]) or
// depend on services registered before it ([Get]).
//
// Dependency checks are explicit: [Registry.Has] returns a
// [*MissingServicesError] naming every absent service instead of a
// sentinel value.
package registry
