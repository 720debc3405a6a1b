package config

import (
	"strconv"
	"time"
)

// CacheConfig controls the Redis response cache for read endpoints.  When
// Enabled is false or no Redis client is available, caching is disabled and
// requests pass straight through.
type CacheConfig struct {
	Enabled bool          // CACHE_ENABLED
	TTL     time.Duration // CACHE_TTL, upper bound on staleness between change signals
	Prefix  string        // CACHE_PREFIX, key namespace (also purged on invalidation)
}

// LoadCacheConfig reads cache settings from the environment with defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}

// RateLimitConfig controls the Redis fixed-window rate limiter.
type RateLimitConfig struct {
	Enabled  bool          // RATE_LIMIT_ENABLED
	Requests int           // RATE_LIMIT_REQUESTS allowed per window
	Window   time.Duration // RATE_LIMIT_WINDOW
	Prefix   string        // RATE_LIMIT_PREFIX, key namespace
}

// LoadRateLimitConfig reads rate limiter settings with defaults.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:  getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Requests: atoi(getenv("RATE_LIMIT_REQUESTS", "120")),
		Window:   parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:   getenv("RATE_LIMIT_PREFIX", "rl"),
	}
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
