package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvFilePath returns the location of the environment file for env:
// <baseDir>/config/<env>.yaml.
func EnvFilePath(baseDir, env string) string {
	return filepath.Join(baseDir, "config", env+".yaml")
}

// LoadEnvFile reads the environment file for env as a generic keyed
// structure. It backs the application's config lookups.
//
// A missing file yields an empty map. Nested mappings decode to
// map[string]any and sequences to []any.
func LoadEnvFile(baseDir, env string) (map[string]any, error) {
	data, err := readEnvFile(EnvFilePath(baseDir, env))
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	if data == nil {
		return values, nil
	}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvFile, err)
	}
	if values == nil {
		values = make(map[string]any)
	}

	return values, nil
}

// parseYAML decodes the framework sections (app, jwt, server, redis, tz) of
// the environment file at path. Unknown keys are ignored: the same file also
// holds application settings. A missing file yields nil.
func parseYAML(path string) (*StructuredConfig, error) {
	data, err := readEnvFile(path)
	if err != nil || data == nil {
		return nil, err
	}

	var cfg StructuredConfig
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvFile, err)
	}

	return &cfg, nil
}

func readEnvFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading environment file: %w", err)
	}

	return data, nil
}
