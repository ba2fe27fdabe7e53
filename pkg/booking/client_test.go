package booking

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tenants/t1/bookings", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"booking_id":"bk-1","amount":150000,"status":"confirmed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", slog.Default())
	start := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)
	b, err := client.Create(context.Background(), "t1", Request{
		CustomerID: "c1",
		StaffID:    "st1",
		ServiceID:  "svc1",
		StartTime:  start,
		EndTime:    start.Add(45 * time.Minute),
		Source:     "gap_fill",
		SourceRef:  "ot-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "bk-1", b.ID)
	assert.Equal(t, int64(150000), b.Amount)
	assert.Equal(t, "c1", got.CustomerID)
	assert.Equal(t, "ot-1", got.SourceRef)
}

func TestCreate_RejectsMissingBookingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"confirmed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", slog.Default())
	_, err := client.Create(context.Background(), "t1", Request{CustomerID: "c1"})
	assert.ErrorContains(t, err, "no booking id")
}

func TestCreate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", slog.Default())
	_, err := client.Create(context.Background(), "t1", Request{CustomerID: "c1"})
	assert.ErrorContains(t, err, "HTTP 409")
}
