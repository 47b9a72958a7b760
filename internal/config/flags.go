package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the command-line configuration flags in args
// (typically os.Args[1:]).
//
// Flags:
//
//	-env environment name (selects config/<env>.yaml)
//	-port HTTP port
//	-base-dir directory that contains config/
//	-log-level minimum log level
//	-tz process time zone
//	-jwt-secret access-token signing secret
//	-jwt-expires-in-days access-token lifetime in days
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second, 0 disables
//	-rate-burst rate limiter burst
//	-metrics expose Prometheus metrics on /metrics
//	-compress compress responses
//	-redis-addr redis address host:port
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("r2base", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.App.Env, "env", "", "Environment name")
	fs.IntVar(&cfg.App.Port, "port", 0, "HTTP port")
	fs.StringVar(&cfg.App.BaseDir, "base-dir", "", "Base directory containing config/")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&cfg.TZ, "tz", "", "Process time zone")
	fs.StringVar(&cfg.JWT.Secret, "jwt-secret", "", "Access token signing secret")
	fs.IntVar(&cfg.JWT.ExpiresInDays, "jwt-expires-in-days", 0, "Access token lifetime in days")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Server.RateLimit, "rate-limit", 0, "Requests per second, 0 disables")
	fs.IntVar(&cfg.Server.RateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.BoolVar(&cfg.Server.MetricsEnabled, "metrics", false, "Expose Prometheus metrics")
	fs.BoolVar(&cfg.Server.Compress, "compress", false, "Compress responses")
	fs.StringVar(&cfg.Redis.Addr, "redis-addr", "", "Redis address host:port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
