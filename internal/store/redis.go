// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/registry"
	"github.com/redis/go-redis/v9"
)

// RedisServiceName is the registry name of the *redis.Client service.
const RedisServiceName = "redis"

// RedisSettings is the shape of the "redis" config entry and of the
// options accepted by NewRedisService. Options win over config.
type RedisSettings struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// PingTimeout bounds the connectivity check; zero means 5s.
	PingTimeout time.Duration `yaml:"ping_timeout"`
}

const defaultPingTimeout = 5 * time.Second

// NewRedisService is a [registry.Factory] producing a connected
// *redis.Client.
//
//	err := reg.Register(store.RedisServiceName, store.NewRedisService, nil)
func NewRedisService(r *registry.Registry, opts registry.Options) (any, error) {
	var settings RedisSettings
	err := r.DecodeConfig("redis", &settings)
	if err != nil && !errors.Is(err, registry.ErrConfigKeyNotFound) && !errors.Is(err, registry.ErrNoConfigService) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRedisConfig, err)
	}
	if err := opts.Decode(&settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRedisConfig, err)
	}
	if settings.Addr == "" {
		return nil, fmt.Errorf("%w: no address", ErrInvalidRedisConfig)
	}

	timeout := settings.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := NewConnectRedis(ctx, settings, r.Logger().GetChildLogger(RedisServiceName))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewConnectRedis opens a client for settings and pings it.
func NewConnectRedis(ctx context.Context, settings RedisSettings, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewConnectRedis").Str("addr", settings.Addr).Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	log.Info().Str("func", "NewConnectRedis").Str("addr", settings.Addr).Msg("connected to redis successfully")

	return client, nil
}
