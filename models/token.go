// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresClaim is the claim key that carries the absolute expiry of a token
// in milliseconds since the Unix epoch.
const ExpiresClaim = "expires"

// TokenPayload is the claim set signed into an access token.
//
// On the wire it is a flat JSON object: every entry of Claims plus the
// "expires" key. A payload is immutable once issued; it stops being valid
// only when Expires passes.
//
// TokenPayload implements [jwt.Claims] without exposing any registered
// claims, so the JWT parser performs no time-based validation of its own.
// Expiry is checked by the auth service against Expires.
type TokenPayload struct {
	// Expires is the absolute expiry in epoch milliseconds.
	Expires int64

	// Claims holds the arbitrary custom claims. Numbers decoded from a
	// token come back as float64, as with any JSON document.
	Claims map[string]any
}

// IssuedToken is the result of signing a [TokenPayload].
type IssuedToken struct {
	// Token is the compact JWS string.
	Token string `json:"token"`

	// Expires echoes TokenPayload.Expires for the caller's convenience.
	Expires int64 `json:"expires"`
}

// Get returns a custom claim by key.
func (p TokenPayload) Get(key string) (any, bool) {
	v, ok := p.Claims[key]
	return v, ok
}

// MarshalJSON flattens Claims and Expires into a single JSON object.
// The "expires" key always wins over a custom claim with the same name.
func (p TokenPayload) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Claims)+1)
	maps.Copy(out, p.Claims)
	out[ExpiresClaim] = p.Expires

	return json.Marshal(out)
}

// UnmarshalJSON splits a flat claims object back into Expires and Claims.
func (p *TokenPayload) UnmarshalJSON(b []byte) error {
	var head struct {
		Expires int64 `json:"expires"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}

	var claims map[string]any
	if err := json.Unmarshal(b, &claims); err != nil {
		return err
	}
	delete(claims, ExpiresClaim)
	if len(claims) == 0 {
		claims = nil
	}

	p.Expires = head.Expires
	p.Claims = claims
	return nil
}

func (p TokenPayload) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (p TokenPayload) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (p TokenPayload) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (p TokenPayload) GetIssuer() (string, error)                   { return "", nil }
func (p TokenPayload) GetSubject() (string, error)                  { return "", nil }
func (p TokenPayload) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }
