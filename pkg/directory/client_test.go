package directory

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Contact(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/v1/tenants/t1/customers/c1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"customer_id":"c1","name":"Priya","phone":"+919900112233"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token", slog.Default())

	contact, err := c.Contact(context.Background(), "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Priya", contact.Name)
	assert.Equal(t, "+919900112233", contact.Phone)

	// Second lookup is served from cache.
	_, err = c.Contact(context.Background(), "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())

	_, err = c.Contact(context.Background(), "t1", "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestContactCache_Expiry(t *testing.T) {
	cache := newContactCache(10 * time.Millisecond)
	cache.set("t1/c1", Contact{Name: "Priya"})

	got, ok := cache.get("t1/c1")
	require.True(t, ok)
	assert.Equal(t, "Priya", got.Name)

	time.Sleep(20 * time.Millisecond)
	_, ok = cache.get("t1/c1")
	assert.False(t, ok)
}

func TestStatic_Contact(t *testing.T) {
	d := Static{"t1/c1": {CustomerID: "c1", Name: "Priya", Phone: "+91990011"}}

	contact, err := d.Contact(context.Background(), "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Priya", contact.Name)

	_, err = d.Contact(context.Background(), "t1", "c2")
	assert.Error(t, err)
}
