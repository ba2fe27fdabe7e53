package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestRequireInternalToken(t *testing.T) {
	newInternalEcho := func(token string) *echo.Echo {
		s := &Server{internalToken: token}
		e := echo.New()
		e.POST("/internal/tasks/execute", func(c *echo.Context) error {
			return c.String(http.StatusOK, "ok")
		}, s.requireInternalToken)
		return e
	}

	t.Run("no token configured returns 503", func(t *testing.T) {
		e := newInternalEcho("")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internal/tasks/execute", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		e := newInternalEcho("secret")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internal/tasks/execute", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token returns 401", func(t *testing.T) {
		e := newInternalEcho("secret")
		req := httptest.NewRequest(http.MethodPost, "/internal/tasks/execute", nil)
		req.Header.Set("X-Internal-Auth", "wrong")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("matching token passes", func(t *testing.T) {
		e := newInternalEcho("secret")
		req := httptest.NewRequest(http.MethodPost, "/internal/tasks/execute", nil)
		req.Header.Set("X-Internal-Auth", "secret")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
