// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-r2base/internal/config"
	httphandler "github.com/MKhiriev/go-r2base/internal/handler/http"
	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/registry"
	"github.com/MKhiriev/go-r2base/internal/server"
	"github.com/MKhiriev/go-r2base/internal/workers"
	"github.com/go-chi/chi/v5"
)

// Options are the programmatic settings of an App. Environment variables
// and flags take precedence over them; zero values fall back to
// config.Defaults.
type Options struct {
	// Env selects the environment file config/<Env>.yaml.
	Env string

	// Port is the TCP port Listen binds.
	Port int

	// BaseDir is the directory config/ is resolved against.
	BaseDir string

	// Args are command-line arguments (without the program name). Nil
	// disables flag parsing.
	Args []string

	// Logger overrides the default JSON logger on stdout.
	Logger *logger.Logger
}

// HandlerFunc is a request handler that returns its error instead of
// writing it; see Handle.
type HandlerFunc = httphandler.HandlerFunc

// App is an r2base application.
type App struct {
	cfg config.StructuredConfig

	registry *registry.Registry
	handler  *httphandler.Handler

	middlewares []func(http.Handler) http.Handler
	controllers []Controller

	buildOnce sync.Once
	router    http.Handler

	mu      sync.Mutex
	errs    []error
	started bool

	logger *logger.Logger
}

// New creates an App. Configuration problems are recorded and reported by
// Err; the App then runs on the defaults.
func New(opts Options) *App {
	defaults := config.Defaults()
	if opts.Env != "" {
		defaults.App.Env = opts.Env
	}
	if opts.Port != 0 {
		defaults.App.Port = opts.Port
	}
	if opts.BaseDir != "" {
		defaults.App.BaseDir = opts.BaseDir
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewLogger("r2base")
	}

	a := &App{cfg: defaults}

	cfg, err := config.GetStructuredConfig(defaults, opts.Args)
	if err != nil {
		a.fail(fmt.Errorf("error getting configs: %w", err))
	} else {
		a.cfg = *cfg
	}

	if leveled, err := log.AtLevel(a.cfg.App.LogLevel); err != nil {
		a.fail(err)
	} else {
		log = leveled
	}
	a.logger = log

	if err := applyTimezone(a.cfg.TZ); err != nil {
		a.fail(err)
	}

	a.registry = registry.New(a.cfg.App.Env, log)
	a.handler = httphandler.NewHandler(a.registry, a.cfg.Server, log)

	log.Debug().Any("config", a.cfg.Redacted()).Msg("app initialized")
	return a
}

// applyTimezone sets the process-wide local time zone.
func applyTimezone(tz string) error {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidTimezone, err)
	}
	time.Local = loc
	return nil
}

// Start loads <BaseDir>/config/<Env>.yaml into the registry as the
// environment configuration service. A missing file yields an empty
// configuration. The "jwt" and "redis" entries are overlaid with the
// settings resolved from environment variables and flags.
func (a *App) Start() (*App, error) {
	values, err := config.LoadEnvFile(a.cfg.App.BaseDir, a.cfg.App.Env)
	if err != nil {
		err = fmt.Errorf("error loading environment file: %w", err)
		a.fail(err)
		return a, err
	}

	overlay(values, "jwt", map[string]any{
		"secret":          a.cfg.JWT.Secret,
		"expires_in_days": a.cfg.JWT.ExpiresInDays,
	})
	overlay(values, "redis", map[string]any{
		"addr":     a.cfg.Redis.Addr,
		"password": a.cfg.Redis.Password,
		"db":       a.cfg.Redis.DB,
	})

	a.registry.SetConfig(values)

	a.mu.Lock()
	a.started = true
	a.mu.Unlock()

	a.logger.Info().
		Str("env", a.cfg.App.Env).
		Str("file", config.EnvFilePath(a.cfg.App.BaseDir, a.cfg.App.Env)).
		Msg("app started")
	return a, nil
}

// overlay writes the non-zero entries of settings into values[key],
// keeping the other keys of an existing map entry.
func overlay(values map[string]any, key string, settings map[string]any) {
	entry, _ := values[key].(map[string]any)
	changed := false
	for k, v := range settings {
		switch v := v.(type) {
		case string:
			if v == "" {
				continue
			}
		case int:
			if v == 0 {
				continue
			}
		}
		if entry == nil {
			entry = make(map[string]any)
		}
		entry[k] = v
		changed = true
	}
	if changed {
		values[key] = entry
	}
}

// Use appends application middleware. Middleware runs in the order added,
// after the built-in middleware and before any controller.
func (a *App) Use(mw ...func(http.Handler) http.Handler) *App {
	if a.built() {
		a.fail(fmt.Errorf("%w: Use", ErrRouterBuilt))
		return a
	}
	a.middlewares = append(a.middlewares, mw...)
	return a
}

// Load appends controllers, mounted in order when the router is built.
func (a *App) Load(controllers ...Controller) *App {
	if a.built() {
		a.fail(fmt.Errorf("%w: Load", ErrRouterBuilt))
		return a
	}
	a.controllers = append(a.controllers, controllers...)
	return a
}

// Serve registers the service produced by factory under name.
func (a *App) Serve(name string, factory registry.Factory, opts registry.Options) *App {
	a.mu.Lock()
	started := a.started
	a.mu.Unlock()

	if !started {
		a.fail(fmt.Errorf("%w: cannot serve %q", ErrNotStarted, name))
		return a
	}

	if err := a.registry.Register(name, factory, opts); err != nil {
		a.fail(fmt.Errorf("error serving %q: %w", name, err))
	}
	return a
}

// Service returns the service registered under name, or nil.
func (a *App) Service(name string) any {
	svc, _ := a.registry.Lookup(name)
	return svc
}

// Config looks up key in the environment configuration; see
// registry.Registry.Config.
func (a *App) Config(key string) (any, error) {
	return a.registry.Config(key)
}

func (a *App) Registry() *registry.Registry      { return a.registry }
func (a *App) Logger() *logger.Logger            { return a.logger }
func (a *App) Settings() config.StructuredConfig { return a.cfg }
func (a *App) Env() string                       { return a.cfg.App.Env }
func (a *App) Port() int                         { return a.cfg.App.Port }

// Auth is the access-token middleware for protected routes:
//
//	r.With(a.Auth()).Get("/me", ...)
func (a *App) Auth() func(http.Handler) http.Handler {
	return a.handler.Auth
}

// Handle adapts an error-returning handler; a returned error is rendered
// by the error stage.
func (a *App) Handle(fn HandlerFunc) http.HandlerFunc {
	return httphandler.Wrap(fn)
}

// Err reports every error recorded so far, joined.
func (a *App) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return errors.Join(a.errs...)
}

// Handler builds the router on first use and returns it. It fails when
// any assembly step failed.
func (a *App) Handler() (http.Handler, error) {
	if err := a.Err(); err != nil {
		return nil, err
	}

	a.buildOnce.Do(func() {
		router := a.handler.Init(a.middlewares, func(r chi.Router) {
			for _, c := range a.controllers {
				c.Mount(r, a)
			}
		})

		a.mu.Lock()
		a.router = router
		a.mu.Unlock()
	})

	return a.router, nil
}

// Listen serves the application on :Port until ctx is done or the process
// receives SIGTERM, SIGINT or SIGQUIT, then closes the services.
// Registered services implementing workers.Worker run for as long as the
// server does.
func (a *App) Listen(ctx context.Context) error {
	h, err := a.Handler()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bg := a.workers()
	done := make(chan struct{})
	go func() {
		defer close(done)
		bg.Run(ctx)
	}()

	srv := server.NewHTTPServer(":"+strconv.Itoa(a.cfg.App.Port), h, a.logger)
	runErr := srv.Run(ctx)

	cancel()
	<-done

	return errors.Join(runErr, a.Close())
}

// workers collects the background tasks: the handler's housekeeping and
// the registered services implementing workers.Worker.
func (a *App) workers() *workers.Workers {
	bg := workers.NewWorkers(a.handler)
	for _, name := range a.registry.Names() {
		svc, _ := a.registry.Lookup(name)
		if w, ok := svc.(workers.Worker); ok {
			bg.Add(w)
		}
	}
	a.logger.Debug().Int("count", bg.Len()).Msg("starting background workers")
	return bg
}

// Close closes every registered service implementing io.Closer.
func (a *App) Close() error {
	var errs []error
	for _, name := range a.registry.Names() {
		svc, _ := a.registry.Lookup(name)
		closer, ok := svc.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errs = append(a.errs, err)
}

func (a *App) built() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router != nil
}
