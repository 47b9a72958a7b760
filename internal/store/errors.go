package store

import "errors"

// Sentinel errors returned by the store services. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRedisUnavailable is returned when redis cannot be reached, either
	// while connecting or during a denylist operation.
	ErrRedisUnavailable = errors.New("redis unavailable")

	// ErrInvalidRedisConfig is returned by NewRedisService when neither the
	// "redis" config entry nor the options name an address.
	ErrInvalidRedisConfig = errors.New("invalid redis config")
)
