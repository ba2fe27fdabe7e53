package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/bookflow/agentplane/pkg/pipeline"
)

func TestInvokeAgentHandler_Validation(t *testing.T) {
	// Only parameter validation is covered here (returns 400 before the
	// pipeline runs). Happy-path goes through integration tests with a
	// real pipeline.
	s := &Server{}
	e := echo.New()
	e.POST("/api/v1/agents/:name/invoke", s.invokeAgentHandler)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/agents/gap_fill/invoke", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		rec := post("{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing tenant_id returns 400", func(t *testing.T) {
		rec := post(`{"context":{},"params":{"query":"hi"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant_id")
	})
}

func TestInvokeStatus(t *testing.T) {
	tests := []struct {
		name string
		res  pipeline.Result
		want int
	}{
		{"success", pipeline.Result{Success: true}, http.StatusOK},
		{"rate limited", pipeline.Result{Message: pipeline.ReasonRateLimited}, http.StatusTooManyRequests},
		{"circuit open", pipeline.Result{Message: pipeline.ReasonCircuitOpen}, http.StatusServiceUnavailable},
		{"provider unavailable", pipeline.Result{Message: "provider_unavailable"}, http.StatusServiceUnavailable},
		{"unknown agent", pipeline.Result{Message: pipeline.ReasonUnknownAgent}, http.StatusNotFound},
		{"internal error", pipeline.Result{Message: pipeline.ReasonInternalError}, http.StatusInternalServerError},
		{"guardrail rejection stays 200", pipeline.Result{Message: "I can only help with salon services."}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invokeStatus(tt.res))
		})
	}
}
