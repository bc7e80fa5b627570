package config

import (
	"time"

	"github.com/spf13/viper"
)

// RateLimitConfig configures the Redis token bucket applied to write
// endpoints.  Buckets are keyed by client IP and route.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

func loadRateLimitConfig(v *viper.Viper) RateLimitConfig {
	c := RateLimitConfig{
		Enabled:        v.GetBool("rate_limit_enabled"),
		Capacity:       v.GetInt("rate_limit_capacity"),
		RefillTokens:   v.GetInt("rate_limit_refill_tokens"),
		RefillInterval: v.GetDuration("rate_limit_refill_interval"),
		TTL:            v.GetDuration("rate_limit_ttl"),
		Prefix:         v.GetString("rate_limit_prefix"),
	}
	if c.Capacity < 1 {
		c.Capacity = 1
	}
	if c.RefillTokens < 1 {
		c.RefillTokens = 1
	}
	if c.RefillInterval <= 0 {
		c.RefillInterval = time.Second
	}
	if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
		c.TTL = minTTL
	}
	return c
}
