// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for r2base applications: JSON entries with
// a role, a timestamp and the calling function, plus request-scoped loggers
// that carry the trace id of the request.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger.
type Logger struct {
	zerolog.Logger
}

const (
	// TraceIDField is the field request-scoped loggers carry.
	TraceIDField = "trace_id"
	// ServiceField names the registry service a child logger belongs to.
	ServiceField = "service"
)

// NewLogger returns a JSON logger on os.Stdout tagged with role. Every
// entry has "role", "time" and a "func" field naming the caller. The global
// zerolog level is reset to Debug; use AtLevel to filter.
func NewLogger(role string) *Logger {
	return NewLoggerTo(os.Stdout, role)
}

// NewLoggerTo is NewLogger writing JSON entries to w instead of os.Stdout.
func NewLoggerTo(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// AtLevel returns a copy of l that only emits entries at or above level
// (e.g. "info", "warn"). An empty level keeps the receiver's level.
//
// The global zerolog level set by NewLogger still applies on top of it.
func (l *Logger) AtLevel(level string) (*Logger, error) {
	if level == "" {
		return l, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and tags every entry with service. Service factories hand it to
// the instance they build, so the parent logger is left untouched.
func (l *Logger) GetChildLogger(service string) *Logger {
	return &Logger{l.With().Str(ServiceField, service).Logger()}
}

// WithTraceID returns a copy of ctx carrying a child of l that adds
// traceID to every entry. FromContext and FromRequest retrieve it.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	child := l.With().Str(TraceIDField, traceID).Logger()
	return child.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or a disabled logger
// when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
