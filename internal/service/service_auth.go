// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/registry"
	"github.com/MKhiriev/go-r2base/internal/store"
	"github.com/MKhiriev/go-r2base/internal/utils"
	"github.com/MKhiriev/go-r2base/internal/workers"
	"github.com/MKhiriev/go-r2base/models"
	"github.com/redis/go-redis/v9"
)

// AuthServiceName is the registry name of the AuthService.
const AuthServiceName = "auth"

// DefaultExpiresInDays is the token lifetime used when the "jwt" config
// entry does not set expires_in_days.
const DefaultExpiresInDays = 7

// AuthSettings is the shape of the "jwt" config entry.
type AuthSettings struct {
	// Secret is the HMAC key tokens are signed with.
	Secret string `yaml:"secret"`

	// ExpiresInDays is the lifetime of issued tokens in calendar days.
	ExpiresInDays int `yaml:"expires_in_days"`

	// DenylistPrefix prefixes revoked-token keys in redis.
	DenylistPrefix string `yaml:"denylist_prefix"`
}

// authService is the concrete implementation of AuthService.
// All state is read-only after construction.
type authService struct {
	// settings is nil when no secret is configured; every token operation
	// then fails with ErrNoJWTConfig.
	settings *AuthSettings

	// denylist remembers revoked tokens; nil disables revocation.
	denylist store.TokenDenylist

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. settings may be nil, in which
// case the service is unusable but constructible so that applications
// without auth can still start.
func NewAuthService(settings *AuthSettings, denylist store.TokenDenylist, logger *logger.Logger) AuthService {
	if settings != nil && settings.Secret == "" {
		settings = nil
	}
	return &authService{
		settings: settings,
		denylist: denylist,
		logger:   logger,
	}
}

// AuthServiceFactory is the [registry.Factory] of the AuthService.
//
// Settings come from the "jwt" config entry, overridden by opts. The
// denylist is stored in redis when a *redis.Client is registered under
// store.RedisServiceName and kept in memory otherwise, so register redis
// first.
func AuthServiceFactory(r *registry.Registry, opts registry.Options) (any, error) {
	settings := AuthSettings{ExpiresInDays: DefaultExpiresInDays}

	err := r.DecodeConfig("jwt", &settings)
	if err != nil && !errors.Is(err, registry.ErrConfigKeyNotFound) && !errors.Is(err, registry.ErrNoConfigService) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJWTConfig, err)
	}
	if err := opts.Decode(&settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJWTConfig, err)
	}

	log := r.Logger().GetChildLogger(AuthServiceName)
	if settings.Secret == "" {
		log.Warn().Str("func", "AuthServiceFactory").Msg("jwt secret is not configured, access tokens are disabled")
	}

	denylist := store.NewMemoryTokenDenylist()
	if client, err := registry.Get[*redis.Client](r, store.RedisServiceName); err == nil {
		denylist = store.NewRedisTokenDenylist(client, settings.DenylistPrefix)
	}

	return NewAuthService(&settings, denylist, log), nil
}

// IssueAccessToken signs claims into an access token that expires
// ExpiresInDays from now. An "expires" entry in claims is ignored.
func (a *authService) IssueAccessToken(ctx context.Context, claims map[string]any) (models.IssuedToken, error) {
	if err := ctx.Err(); err != nil {
		return models.IssuedToken{}, err
	}
	if a.settings == nil {
		a.logger.Error().Str("func", "IssueAccessToken").Msg("no jwt config, cannot issue access token")
		return models.IssuedToken{}, ErrNoJWTConfig
	}

	days := a.settings.ExpiresInDays
	if days == 0 {
		days = DefaultExpiresInDays
	}

	payload := models.TokenPayload{
		Expires: utils.ExpiresInDays(days),
		Claims:  maps.Clone(claims),
	}
	delete(payload.Claims, models.ExpiresClaim)
	if len(payload.Claims) == 0 {
		payload.Claims = nil
	}

	issued, err := utils.IssueToken(payload, a.settings.Secret)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return issued, nil
}

// VerifyAccessToken checks token and returns its payload.
//
// Returns:
//   - ctx.Err() if ctx is already done;
//   - ErrNoJWTConfig if no secret is configured;
//   - ErrNoToken for an empty token;
//   - ErrTokenVerificationFailed for a malformed token or a bad signature;
//   - ErrTokenExpired once the expiry has passed;
//   - ErrTokenRevoked for a token passed to RevokeAccessToken.
func (a *authService) VerifyAccessToken(ctx context.Context, token string) (models.TokenPayload, error) {
	if err := ctx.Err(); err != nil {
		return models.TokenPayload{}, err
	}

	log := logger.FromContext(ctx)

	if a.settings == nil {
		a.logger.Error().Str("func", "VerifyAccessToken").Msg("no jwt config, cannot verify access token")
		return models.TokenPayload{}, ErrNoJWTConfig
	}
	if token == "" {
		return models.TokenPayload{}, ErrNoToken
	}

	payload, err := utils.DecodeToken(token, a.settings.Secret)
	if err != nil {
		log.Debug().Err(err).Msg("access token verification failed")
		return models.TokenPayload{}, ErrTokenVerificationFailed
	}

	if payload.Expires <= utils.NowMillis() {
		return models.TokenPayload{}, ErrTokenExpired
	}

	if a.denylist != nil {
		revoked, err := a.denylist.IsRevoked(ctx, token)
		if err != nil {
			log.Err(err).Msg("error checking token denylist")
			return models.TokenPayload{}, fmt.Errorf("error checking token denylist: %w", err)
		}
		if revoked {
			return models.TokenPayload{}, ErrTokenRevoked
		}
	}

	return payload, nil
}

// RevokeAccessToken verifies token and adds it to the denylist until it
// expires. Revoking twice fails with ErrTokenRevoked.
func (a *authService) RevokeAccessToken(ctx context.Context, token string) error {
	payload, err := a.VerifyAccessToken(ctx, token)
	if err != nil {
		return err
	}

	if a.denylist == nil {
		return ErrRevocationDisabled
	}

	if err := a.denylist.Revoke(ctx, token, payload.Expires); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error revoking access token")
		return fmt.Errorf("error revoking access token: %w", err)
	}

	return nil
}

// Run keeps the denylist tidy while the application is serving. It
// returns when ctx is done, or right away if the denylist needs no
// background work.
func (a *authService) Run(ctx context.Context) {
	if w, ok := a.denylist.(workers.Worker); ok {
		w.Run(ctx)
	}
}
