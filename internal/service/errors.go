package service

import "errors"

var (
	// ErrNoJWTConfig is returned when the auth service has no signing
	// secret configured.
	ErrNoJWTConfig = errors.New("jwt is not configured")
	// ErrInvalidJWTConfig is returned by the auth factory when the "jwt"
	// config entry cannot be decoded.
	ErrInvalidJWTConfig = errors.New("invalid jwt config")

	ErrNoToken                 = errors.New("no access token provided")
	ErrTokenVerificationFailed = errors.New("token verification failed")
	ErrTokenExpired            = errors.New("token is expired")
	ErrTokenRevoked            = errors.New("token is revoked")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrRevocationDisabled      = errors.New("token revocation is disabled")
)
