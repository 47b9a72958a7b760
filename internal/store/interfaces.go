package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenDenylist remembers revoked access tokens until they expire on their
// own.
type TokenDenylist interface {
	// Revoke marks token as revoked until expires (epoch milliseconds).
	// Tokens that already expired are ignored.
	Revoke(ctx context.Context, token string, expires int64) error

	// IsRevoked reports whether token was revoked and has not expired yet.
	IsRevoked(ctx context.Context, token string) (bool, error)
}
