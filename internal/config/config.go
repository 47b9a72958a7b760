// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of an r2base
// application. It is populated by merging environment variables,
// command-line flags, the per-environment YAML file and the defaults
// supplied by the caller.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - yaml: key inside the environment file (config/<env>.yaml).
type StructuredConfig struct {
	// App holds the environment name, listening port and base directory.
	App App `envPrefix:"APP_" yaml:"app"`

	// JWT holds the access-token secret and lifetime.
	JWT JWT `envPrefix:"JWT_" yaml:"jwt"`

	// Server holds transport settings: timeouts, rate limiting, metrics.
	Server Server `envPrefix:"SERVER_" yaml:"server"`

	// Redis holds the optional redis connection used by the redis service.
	Redis Redis `envPrefix:"REDIS_" yaml:"redis"`

	// TZ is the IANA time zone applied process-wide at startup
	// (e.g. "UTC", "Europe/Istanbul").
	// Env: TZ
	TZ string `env:"TZ" yaml:"tz"`
}

// App holds application identity settings.
type App struct {
	// Env selects the environment file config/<Env>.yaml.
	// It cannot be set from that file.
	// Env: APP_ENV
	Env string `env:"ENV" yaml:"-"`

	// Port is the TCP port the HTTP server listens on.
	// Env: APP_PORT
	Port int `env:"PORT" yaml:"port"`

	// BaseDir is the directory the config/ folder is resolved against.
	// Env: APP_BASE_DIR
	BaseDir string `env:"BASE_DIR" yaml:"-"`

	// LogLevel is the minimum level of emitted log entries.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level"`
}

// JWT holds access-token settings.
type JWT struct {
	// Secret is the HMAC key used to sign and verify access tokens.
	// Must be kept confidential.
	// Env: JWT_SECRET
	Secret string `env:"SECRET" yaml:"secret"`

	// ExpiresInDays is the lifetime of an issued access token.
	// Env: JWT_EXPIRES_IN_DAYS
	ExpiresInDays int `env:"EXPIRES_IN_DAYS" yaml:"expires_in_days"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled (e.g. "30s", "1m").
	// Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`

	// RateLimit is the number of requests per second accepted from a
	// single client IP. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT" yaml:"rate_limit"`

	// RateBurst is the token bucket size used together with RateLimit.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST" yaml:"rate_burst"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	// Env: SERVER_METRICS_ENABLED
	MetricsEnabled bool `env:"METRICS_ENABLED" yaml:"metrics_enabled"`

	// Compress enables gzip/deflate compression of responses.
	// Env: SERVER_COMPRESS
	Compress bool `env:"COMPRESS" yaml:"compress"`
}

// Redis holds connection settings for the redis service.
type Redis struct {
	// Addr is the redis address in "host:port" form. Empty means no redis.
	// Env: REDIS_ADDR
	Addr string `env:"ADDR" yaml:"addr"`

	// Password is the optional AUTH password.
	// Env: REDIS_PASSWORD
	Password string `env:"PASSWORD" yaml:"password"`

	// DB is the logical database index.
	// Env: REDIS_DB
	DB int `env:"DB" yaml:"db"`
}

// Defaults returns the settings an application starts from when nothing
// else is configured: the development environment on port 3001 with
// seven-day access tokens.
func Defaults() StructuredConfig {
	return StructuredConfig{
		App: App{
			Env:     "development",
			Port:    3001,
			BaseDir: ".",
		},
		JWT: JWT{
			ExpiresInDays: 7,
		},
	}
}

// Redacted returns a copy of cfg that is safe to log.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.JWT.Secret != "" {
		cfg.JWT.Secret = "[REDACTED]"
	}
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = "[REDACTED]"
	}
	return cfg
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (the first source
// that sets a field wins):
//  1. Environment variables
//  2. Command-line flags (only when args is non-nil)
//  3. The environment file <BaseDir>/config/<Env>.yaml
//  4. defaults
//
// Env and BaseDir used to locate the environment file are resolved from
// sources 1, 2 and 4.
func GetStructuredConfig(defaults StructuredConfig, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withYAML(&defaults).
		withDefaults(&defaults).
		build()
}
