package config

import "time"

// RateLimitConfig controls the fixed-window rate limiter applied to the
// whole API.  Limits are generous: the point is to stop a misbehaving
// client from burning the Sheets API quota, not to throttle operators.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // requests allowed per window, per client+route
	Window  time.Duration // window length
	Prefix  string        // Redis key prefix
}

// LoadRateLimitConfig reads rate limiter settings from the environment.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   getenvInt("RATE_LIMIT_REQUESTS", 120),
		Window:  getenvDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
