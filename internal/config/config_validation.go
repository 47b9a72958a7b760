// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the sentinel errors from errors.go.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env == "" {
		return fmt.Errorf("%w: empty environment name", ErrInvalidAppConfigs)
	}

	if cfg.App.Port < 1 || cfg.App.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidAppConfigs, cfg.App.Port)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst < 1 {
		return fmt.Errorf("%w: rate limit requires a positive burst", ErrInvalidServerConfigs)
	}

	if cfg.TZ != "" {
		if _, err := time.LoadLocation(cfg.TZ); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
		}
	}

	return nil
}
