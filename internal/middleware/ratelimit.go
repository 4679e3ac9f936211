package middleware

import (
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/sepehrad/venue-reservation/internal/config"
)

// NewRateLimiter returns a Redis fixed-window limiter keyed by the
// authenticated user when present, falling back to the client IP.
// When rate limiting is disabled or Redis is unavailable the
// middleware is a pass-through; a broken limiter must never take the
// API down with it.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ctx := c.Request().Context()
            key := rateKey(cfg.Prefix, c)

            // INCR then EXPIRE on first hit. The window is approximate
            // at its edges, which is fine for abuse protection.
            count, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                c.Logger().Warnf("ratelimit: redis error for key=%s: %v", key, err)
                return next(c)
            }
            if count == 1 {
                rdb.Expire(ctx, key, cfg.Window)
            }

            remaining := int64(cfg.Limit) - count
            if remaining < 0 {
                remaining = 0
            }
            c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
            c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

            if count > int64(cfg.Limit) {
                ttl, terr := rdb.TTL(ctx, key).Result()
                retry := int(cfg.Window / time.Second)
                if terr == nil && ttl > 0 {
                    retry = int(ttl / time.Second)
                }
                c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
                return c.JSON(http.StatusTooManyRequests, echo.Map{
                    "error":       "too_many_requests",
                    "retry_after": retry,
                })
            }
            return next(c)
        }
    }
}

// rateKey scopes the counter to the acting user when JWTAuth has run,
// otherwise to the client IP.
func rateKey(prefix string, c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        return fmt.Sprintf("%s:user:%v", prefix, v)
    }
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    return prefix + ":ip:" + ip
}
