package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// Webhooks with incomplete payloads must still answer 200 so the provider
// does not retry; the handlers return before touching any service.
func TestProviderWebhooks_IncompletePayloadsAnswer200(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/webhooks/provider/status", s.providerStatusHandler)
	e.POST("/webhooks/provider/incoming", s.providerIncomingHandler)

	post := func(path string, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("status without MessageSid", func(t *testing.T) {
		rec := post("/webhooks/provider/status", url.Values{"MessageStatus": {"delivered"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("status without MessageStatus", func(t *testing.T) {
		rec := post("/webhooks/provider/status", url.Values{"MessageSid": {"SM123"}})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("incoming without From", func(t *testing.T) {
		rec := post("/webhooks/provider/incoming", url.Values{"Body": {"yes"}})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("incoming without Body", func(t *testing.T) {
		rec := post("/webhooks/provider/incoming", url.Values{"From": {"+919900112233"}})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty form", func(t *testing.T) {
		rec := post("/webhooks/provider/status", url.Values{})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
