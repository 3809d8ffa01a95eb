package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRateLimit is the per-IP limit for contact submissions, per minute.
const DefaultRateLimit = 10

// RateLimitedMessage is the body sent to a client over its limit.
const RateLimitedMessage = "Muitas tentativas. Tente novamente em um minuto."

// RateLimiter limits requests to DefaultRateLimit per minute per IP address.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterPerMinute(DefaultRateLimit)
}

// RateLimiterPerMinute allows a burst of n requests per IP address, refilled
// evenly over a minute. Denied requests are logged with the request logger.
func RateLimiterPerMinute(n int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(float64(n) / 60),
		Burst: n,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client_ip", identifier, "limit_per_minute", n)
			return c.String(http.StatusTooManyRequests, RateLimitedMessage)
		},
	})
}
