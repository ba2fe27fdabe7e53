package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestTaskHandlers_Validation(t *testing.T) {
	// Routed without the auth middleware; token handling is covered in
	// middleware_test.go.
	s := &Server{}
	e := echo.New()
	e.POST("/internal/tasks/execute", s.taskExecuteHandler)
	e.POST("/internal/tasks/send-notification", s.taskSendNotificationHandler)
	e.POST("/internal/tasks/cleanup", s.taskCleanupHandler)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("execute without tenant_id returns 400", func(t *testing.T) {
		rec := post("/internal/tasks/execute", `{"agent_name":"gap_fill"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant_id")
	})

	t.Run("execute without agent_name returns 400", func(t *testing.T) {
		rec := post("/internal/tasks/execute", `{"tenant_id":"t1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("send-notification without outreach_id returns 400", func(t *testing.T) {
		rec := post("/internal/tasks/send-notification", `{"tenant_id":"t1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "outreach_id")
	})

	t.Run("cleanup with unknown task_type returns 400", func(t *testing.T) {
		rec := post("/internal/tasks/cleanup", `{"task_type":"drop_everything"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown cleanup task_type")
	})

	t.Run("cleanup with empty task_type returns 400", func(t *testing.T) {
		rec := post("/internal/tasks/cleanup", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
