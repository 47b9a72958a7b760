// Package config provides configuration loading, merging, and validation
// facilities for r2base applications.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones for non-zero fields):
//  1. Environment variables (APP_ENV, APP_PORT, TZ, JWT_SECRET, ...)
//  2. Command-line flags
//  3. The environment file <BaseDir>/config/<Env>.yaml
//  4. Caller-supplied defaults
//
// The environment file plays two roles: its framework sections populate
// [StructuredConfig], and the whole document, loaded via [LoadEnvFile],
// becomes the backing store for the application's config lookups.
package config
