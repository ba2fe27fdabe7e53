package outreach

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent"
	entoutreach "github.com/bookflow/agentplane/ent/outreach"
)

func newTestTwilioProvider(srvURL string) *TwilioProvider {
	p := NewTwilioProvider("AC123", "token", "+1500100200", "+1500100200", "https://example.com/webhooks/provider/status", slog.Default())
	p.baseURL = srvURL
	return p
}

func TestTwilioProvider_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "whatsapp:+919900112233", r.PostForm.Get("To"))
		assert.Equal(t, "whatsapp:+1500100200", r.PostForm.Get("From"))
		assert.Equal(t, "Hi Priya!", r.PostForm.Get("Body"))
		assert.Equal(t, "https://example.com/webhooks/provider/status", r.PostForm.Get("StatusCallback"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM900"}`))
	}))
	defer srv.Close()

	p := newTestTwilioProvider(srv.URL)
	sid, err := p.Send(context.Background(), &ent.Outreach{
		ID:            "o1",
		Channel:       entoutreach.ChannelWhatsapp,
		CustomerPhone: "+919900112233",
		Message:       "Hi Priya!",
	})
	require.NoError(t, err)
	assert.Equal(t, "SM900", sid)
}

func TestTwilioProvider_Send_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"invalid 'To' number"}`))
	}))
	defer srv.Close()

	p := newTestTwilioProvider(srv.URL)
	_, err := p.Send(context.Background(), &ent.Outreach{
		ID:            "o1",
		Channel:       entoutreach.ChannelSms,
		CustomerPhone: "not-a-number",
		Message:       "Hi!",
	})
	assert.ErrorIs(t, err, ErrSendRejected)
}

func TestTwilioProvider_Send_TransientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := newTestTwilioProvider(srv.URL)
	_, err := p.Send(context.Background(), &ent.Outreach{
		ID:            "o1",
		Channel:       entoutreach.ChannelSms,
		CustomerPhone: "+919900112233",
		Message:       "Hi!",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSendRejected)
}
