// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-r2base/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestIssueToken_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload models.TokenPayload
		secret  string
	}{
		{
			name:    "expires only",
			payload: models.TokenPayload{Expires: 1893456000000},
			secret:  "secret",
		},
		{
			name: "custom claims",
			payload: models.TokenPayload{
				Expires: 1893456000000,
				Claims:  map[string]any{"sub": "user-1", "admin": true, "scope": []any{"read", "write"}},
			},
			secret: "another-secret",
		},
		{
			name: "numeric claim decodes as float64",
			payload: models.TokenPayload{
				Expires: 1,
				Claims:  map[string]any{"uid": float64(42)},
			},
			secret: "s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued, err := IssueToken(tt.payload, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.payload.Expires, issued.Expires)
			assert.Len(t, strings.Split(issued.Token, "."), 3)

			decoded, err := DecodeToken(issued.Token, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, decoded)
		})
	}
}

func TestIssueToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		payload models.TokenPayload
		secret  string
	}{
		{"missing expires", models.TokenPayload{Claims: map[string]any{"a": 1}}, "secret"},
		{"empty secret", models.TokenPayload{Expires: 10}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IssueToken(tt.payload, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestDecodeToken_Failures(t *testing.T) {
	issued, err := IssueToken(models.TokenPayload{Expires: ExpiresInDays(1)}, "correct-key")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, models.TokenPayload{Expires: ExpiresInDays(1)})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", issued.Token, "wrong-key"},
		{"malformed", "not-a-token", "correct-key"},
		{"tampered payload", issued.Token[:len(issued.Token)-2] + "xx", "correct-key"},
		{"none algorithm", unsigned, "correct-key"},
		{"empty", "", "correct-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := DecodeToken(tt.token, tt.secret)
			assert.Error(t, err)
			assert.Zero(t, payload)
		})
	}
}

func TestDecodeToken_IgnoresExpiry(t *testing.T) {
	issued, err := IssueToken(models.TokenPayload{Expires: ExpiresInDays(-3)}, "k")
	require.NoError(t, err)

	payload, err := DecodeToken(issued.Token, "k")
	require.NoError(t, err)
	assert.Less(t, payload.Expires, NowMillis())
}

func TestExpiresInDays(t *testing.T) {
	at := time.Date(2026, time.March, 30, 12, 0, 0, 0, time.UTC)
	pinClock(t, at)

	assert.Equal(t, at.UnixMilli(), ExpiresInDays(0))
	assert.Equal(t, time.Date(2026, time.April, 6, 12, 0, 0, 0, time.UTC).UnixMilli(), ExpiresInDays(7))
	assert.Equal(t, time.Date(2026, time.March, 29, 12, 0, 0, 0, time.UTC).UnixMilli(), ExpiresInDays(-1))
	assert.Equal(t, at.UnixMilli(), NowMillis())
}
