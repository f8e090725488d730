package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"contactbook/internal/cache"
)

const keyPrefix = "ratelimit:"

// Limiter enforces a fixed-window request limit per client IP, counted in
// Redis. When Redis is unavailable the limiter fails open.
type Limiter struct {
	cache  *cache.Client
	limit  int64
	window time.Duration
}

// New creates a limiter allowing limit requests per window.
func New(c *cache.Client, limit int64, window time.Duration) *Limiter {
	return &Limiter{cache: c, limit: limit, window: window}
}

// Middleware returns an Echo middleware rejecting requests over the limit
// with 429 Too Many Requests.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s%s:%s", keyPrefix, c.Path(), c.RealIP())
			n, err := l.cache.Incr(c.Request().Context(), key, l.window)
			if err == nil && n > l.limit {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
