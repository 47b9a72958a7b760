package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and the
// environment file loaders.
var (
	// ErrInvalidAppConfigs indicates invalid application settings
	// (for example, an empty environment name or a port out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, a negative rate limit or a zero burst).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTimezone indicates that TZ is not a known IANA zone.
	ErrInvalidTimezone = errors.New("invalid timezone")
	// ErrInvalidEnvVars indicates that an environment variable could not
	// be parsed into its field (for example, APP_PORT=abc).
	ErrInvalidEnvVars = errors.New("invalid environment variables")
	// ErrInvalidEnvFile indicates that config/<env>.yaml is not valid YAML
	// or does not match the expected section types.
	ErrInvalidEnvFile = errors.New("invalid environment file")
)
