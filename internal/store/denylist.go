// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-r2base/internal/utils"
	"github.com/MKhiriev/go-r2base/internal/workers"
	"github.com/redis/go-redis/v9"
)

// DefaultDenylistPrefix prefixes every denylist key in redis.
const DefaultDenylistPrefix = "r2:revoked"

// SweepInterval is how often the in-memory denylist drops expired entries.
const SweepInterval = time.Minute

var now = time.Now

// ttlUntil returns how long a token expiring at expires (epoch ms) has
// left. Non-positive results mean it already expired.
func ttlUntil(expires int64) time.Duration {
	return time.UnixMilli(expires).Sub(now())
}

// redisTokenDenylist stores revoked tokens as keys that expire together
// with the token. Keys hold a salted hash, never the token itself.
type redisTokenDenylist struct {
	redis  *redis.Client
	prefix string
}

// NewRedisTokenDenylist returns a TokenDenylist backed by client. An empty
// prefix selects DefaultDenylistPrefix.
func NewRedisTokenDenylist(client *redis.Client, prefix string) TokenDenylist {
	if prefix == "" {
		prefix = DefaultDenylistPrefix
	}
	return &redisTokenDenylist{redis: client, prefix: prefix}
}

func (d *redisTokenDenylist) key(token string) string {
	return d.prefix + ":" + utils.Hash(token, d.prefix)
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, token string, expires int64) error {
	ttl := ttlUntil(expires)
	if ttl <= 0 {
		return nil
	}

	if err := d.redis.Set(ctx, d.key(token), expires, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	return nil
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.redis.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	return n > 0, nil
}

// memoryTokenDenylist is the in-process TokenDenylist used when no redis
// service is registered. Expired entries are dropped when looked up and
// by Sweep, which Run calls every SweepInterval.
type memoryTokenDenylist struct {
	mu      sync.Mutex
	revoked map[string]int64
}

// NewMemoryTokenDenylist returns a TokenDenylist local to this process.
func NewMemoryTokenDenylist() TokenDenylist {
	return &memoryTokenDenylist{revoked: make(map[string]int64)}
}

func (d *memoryTokenDenylist) Revoke(ctx context.Context, token string, expires int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ttlUntil(expires) <= 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.revoked[token] = expires
	return nil
}

func (d *memoryTokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	expires, ok := d.revoked[token]
	if !ok {
		return false, nil
	}
	if ttlUntil(expires) <= 0 {
		delete(d.revoked, token)
		return false, nil
	}
	return true, nil
}

// Sweep drops every expired entry and reports how many were dropped.
func (d *memoryTokenDenylist) Sweep() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	dropped := 0
	for token, expires := range d.revoked {
		if ttlUntil(expires) <= 0 {
			delete(d.revoked, token)
			dropped++
		}
	}
	return dropped
}

func (d *memoryTokenDenylist) Run(ctx context.Context) {
	workers.Ticker{
		Interval: SweepInterval,
		Fn:       func(context.Context) { d.Sweep() },
	}.Run(ctx)
}
