package api

import (
	"crypto/subtle"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requireInternalToken guards the /internal/* task endpoints with the
// queue-issued shared secret.
func (s *Server) requireInternalToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		if s.internalToken == "" {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "internal task endpoints are not configured")
		}
		got := c.Request().Header.Get("X-Internal-Auth")
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.internalToken)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid internal auth token")
		}
		return next(c)
	}
}
