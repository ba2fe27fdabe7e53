package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestListDecisionsHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.GET("/api/v1/decisions", s.listDecisionsHandler)

	get := func(query string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/decisions?"+query, nil))
		return rec
	}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{"missing tenant_id", "", "tenant_id is required"},
		{"invalid kind", "tenant_id=t1&kind=bogus", "invalid kind"},
		{"invalid outcome_status", "tenant_id=t1&outcome_status=bogus", "invalid outcome_status"},
		{"limit too large", "tenant_id=t1&limit=500", "invalid limit"},
		{"limit not a number", "tenant_id=t1&limit=abc", "invalid limit"},
		{"negative offset", "tenant_id=t1&offset=-1", "invalid offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}

func TestGetDecisionHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.GET("/api/v1/decisions/:id", s.getDecisionHandler)

	t.Run("missing tenant_id returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/decisions/d1", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant_id")
	})
}
