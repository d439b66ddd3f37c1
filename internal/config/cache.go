package config

import "time"

// CacheConfig controls the Redis response cache that fronts the public
// layout endpoint. Only GET responses are cached; a layout save evicts
// the venue's entry, so TTL is just a backstop against stale reads.
type CacheConfig struct {
	Enabled      bool          // master switch, also off when Redis is nil
	TTL          time.Duration // lifetime of a cached response
	Prefix       string        // key namespace, e.g. "layout-cache"
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig builds a CacheConfig from the environment with
// sensible defaults for a read-heavy seat map.
func LoadCacheConfig() CacheConfig {
	cfg := CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "layout-cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Second
	}
	if cfg.MaxBodyBytes < 1024 {
		cfg.MaxBodyBytes = 1024
	}
	return cfg
}
