package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestApprovalHandlers_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.GET("/api/v1/approvals", s.listApprovalsHandler)
	e.POST("/api/v1/approvals/:id/approve", s.approveHandler)
	e.POST("/api/v1/approvals/:id/reject", s.rejectHandler)

	t.Run("list without tenant_id returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/approvals", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant_id")
	})

	t.Run("list with invalid limit returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/approvals?tenant_id=t1&limit=0", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid limit")
	})

	t.Run("approve without tenant_id returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/approvals/ap1/approve", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant_id")
	})

	t.Run("reject with malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/approvals/ap1/reject?tenant_id=t1", strings.NewReader("{bad"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExtractResponder(t *testing.T) {
	e := echo.New()

	newCtx := func(headers map[string]string) *echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	assert.Equal(t, "alice", extractResponder(newCtx(map[string]string{"X-Forwarded-User": "alice"})))
	assert.Equal(t, "alice@example.com", extractResponder(newCtx(map[string]string{"X-Forwarded-Email": "alice@example.com"})))
	assert.Equal(t, "bob", extractResponder(newCtx(map[string]string{"X-Remote-User": "bob"})))
	assert.Equal(t, "api-client", extractResponder(newCtx(nil)))

	// oauth2-proxy headers win over kube-rbac-proxy.
	assert.Equal(t, "alice", extractResponder(newCtx(map[string]string{
		"X-Forwarded-User": "alice",
		"X-Remote-User":    "bob",
	})))
}
