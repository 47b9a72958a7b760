// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles an r2base application: configuration, the service
// registry, middleware, controllers and the HTTP server.
//
// A typical application chains the assembly steps and then listens:
//
//	a := app.New(app.Options{BaseDir: "."})
//	if _, err := a.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	a.Serve(service.AuthServiceName, service.AuthServiceFactory, nil).
//	    Use(myMiddleware).
//	    Load(users.Controller{}, health.Controller{})
//	if err := a.Listen(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Use, Load and Serve never fail on the spot. Their errors are collected
// and reported by Err, Handler and Listen.
package app
