package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-r2base/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by IssueToken when the payload has no
// expiry or the secret is empty.
var ErrInvalidTokenParams = errors.New("invalid params for issuing token")

// now is the clock used by every expiry computation in this package.
// Tests replace it to pin time.
var now = time.Now

// NowMillis returns the current time in epoch milliseconds.
func NowMillis() int64 {
	return now().UnixMilli()
}

// ExpiresInDays returns the absolute timestamp, in epoch milliseconds, that
// lies n calendar days from now. A negative n yields a past timestamp,
// which is handy for building already-expired tokens.
func ExpiresInDays(n int) int64 {
	return now().AddDate(0, 0, n).UnixMilli()
}

// IssueToken signs payload with secret using HMAC-SHA256.
//
// payload.Expires must be set by the caller beforehand (see ExpiresInDays).
// The returned [models.IssuedToken] echoes the expiry next to the signed
// token string.
//
// Example usage:
//
//	issued, err := utils.IssueToken(models.TokenPayload{
//	    Expires: utils.ExpiresInDays(7),
//	    Claims:  map[string]any{"sub": "42"},
//	}, secret)
func IssueToken(payload models.TokenPayload, secret string) (models.IssuedToken, error) {
	if payload.Expires == 0 || secret == "" {
		return models.IssuedToken{}, ErrInvalidTokenParams
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.IssuedToken{Token: signed, Expires: payload.Expires}, nil
}

// DecodeToken verifies the signature of tokenString with secret and returns
// its payload. Verification is all-or-nothing: a malformed token, a
// different signing method or a signature mismatch all fail.
//
// DecodeToken does not look at the expiry; callers that need an access
// check use the auth service.
func DecodeToken(tokenString, secret string) (models.TokenPayload, error) {
	var payload models.TokenPayload
	_, err := jwt.ParseWithClaims(tokenString, &payload, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("error occurred decoding token: %w", err)
	}

	return payload, nil
}
