package config

import (
	"time"

	"github.com/spf13/viper"
)

// CacheConfig defines settings for the response cache middleware.  When
// Enabled is false or no Redis client is configured, caching is disabled.
// Only time-independent listings are cached; see router.Register.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

func loadCacheConfig(v *viper.Viper) CacheConfig {
	c := CacheConfig{
		Enabled:      v.GetBool("cache_enabled"),
		TTL:          v.GetDuration("cache_ttl"),
		Prefix:       v.GetString("cache_prefix"),
		MaxBodyBytes: v.GetInt("cache_max_body_bytes"),
	}
	if c.TTL <= 0 {
		c.TTL = 30 * time.Second
	}
	return c
}
