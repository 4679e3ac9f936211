package config

import (
    "os"
    "time"
)

// RateLimitConfig defines settings for the booking rate limiter.  The
// limiter counts requests per user per fixed window; when Redis is not
// available, limiting is disabled and requests pass through.
type RateLimitConfig struct {
    Enabled bool          // master switch
    Limit   int           // max requests per window
    Window  time.Duration // window length
    Prefix  string        // key namespace in Redis
}

// LoadRateLimitConfig reads rate limiter settings from environment
// variables, applying defaults when unset.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled: envBoolDefault("RATE_LIMIT_ENABLED", true),
        Limit:   envIntDefault("RATE_LIMIT_REQUESTS", 30),
        Window:  envDurDefault("RATE_LIMIT_WINDOW", time.Minute),
        Prefix:  envStrDefault("RATE_LIMIT_PREFIX", "rl"),
    }
    if cfg.Limit < 1 {
        cfg.Limit = 1
    }
    if cfg.Window <= 0 {
        cfg.Window = time.Minute
    }
    return cfg
}

func envBoolDefault(k string, d bool) bool {
    switch os.Getenv(k) {
    case "1", "true", "TRUE", "True", "yes", "on":
        return true
    case "0", "false", "FALSE", "False", "no", "off":
        return false
    }
    return d
}
