package config

import "time"

// CacheConfig controls the GET response cache.  Only successful JSON
// responses are cached; the TTL is kept short because operators expect
// the dashboard to reflect sheet edits within a minute or so.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads cache settings from the environment, with
// defaults suitable for a single-operator dashboard.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     getenvDur("CACHE_TTL", 30*time.Second),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}

// getenvDur parses a duration environment variable, falling back to the
// default on absence or parse failure.
func getenvDur(key string, def time.Duration) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
