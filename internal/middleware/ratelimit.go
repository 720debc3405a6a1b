package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/classroom-booking/internal/config"
)

// NewRedisRateLimit enforces a fixed-window request budget per client IP.
// The window key is INCRed on every request and expires with the window;
// exceeding the budget yields 429.  On Redis errors the request is allowed
// through: the limiter protects against abuse, it must not take the API
// down with it.  Disabled config or a nil client makes it a passthrough.
func NewRedisRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil || cfg.Requests <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			slot := time.Now().Unix() / int64(window.Seconds())
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), slot)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Printf("ratelimit: incr failed, letting request through: %v", err)
				return next(c)
			}
			if n == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					log.Printf("ratelimit: expire failed: %v", err)
				}
			}
			if n > int64(cfg.Requests) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
