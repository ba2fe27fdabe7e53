package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/pkg/config"
)

// fakeProvider is an OpenAI-compatible test endpoint. Per-model behavior is
// configured through statusByModel; models not listed succeed.
type fakeProvider struct {
	mu            sync.Mutex
	calls         []string
	statusByModel map[string]int
	errBodyByCode map[int]string
}

func (f *fakeProvider) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		f.mu.Lock()
		f.calls = append(f.calls, body.Model)
		status := f.statusByModel[body.Model]
		f.mu.Unlock()

		if status != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			msg := f.errBodyByCode[status]
			if msg == "" {
				msg = "upstream error"
			}
			fmt.Fprintf(w, `{"error":{"message":%q,"type":"api_error"}}`, msg)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "cmpl-1",
			"model": %q,
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "answered by %s"}}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20}
		}`, body.Model, body.Model)
	}
}

func (f *fakeProvider) models() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newTestClient(t *testing.T, provider *fakeProvider) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(provider.handler(t))
	t.Cleanup(srv.Close)

	t.Setenv("TEST_PROVIDER_KEY", "test-key")
	cfg := config.DefaultProviderConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKeyEnv = "TEST_PROVIDER_KEY"
	cfg.DefaultModel = "primary-model"
	cfg.FallbackModel = "fallback-model"
	cfg.RequestTimeout = 5 * time.Second

	return New(cfg, slog.Default()), srv
}

func TestChat_Success(t *testing.T) {
	provider := &fakeProvider{}
	client, _ := newTestClient(t, provider)

	resp, err := client.Chat(t.Context(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "answered by primary-model", resp.Content)
	assert.Equal(t, "primary-model", resp.Model)
	assert.Equal(t, int64(20), resp.Usage.TotalTokens)
	assert.Equal(t, []string{"primary-model"}, provider.models())
}

func TestChat_FallbackOnPrimaryFailure(t *testing.T) {
	provider := &fakeProvider{statusByModel: map[string]int{"primary-model": 500}}
	client, _ := newTestClient(t, provider)

	resp, err := client.Chat(t.Context(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "answered by fallback-model", resp.Content)
	assert.Equal(t, []string{"primary-model", "fallback-model"}, provider.models())
}

func TestChat_PinnedModelNeverFallsBack(t *testing.T) {
	provider := &fakeProvider{statusByModel: map[string]int{"pinned": 500}}
	client, _ := newTestClient(t, provider)

	_, err := client.Chat(t.Context(), Request{Prompt: "hello", Model: "pinned"})
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, []string{"pinned"}, provider.models())
}

func TestChat_RateLimitNotRetried(t *testing.T) {
	provider := &fakeProvider{statusByModel: map[string]int{"primary-model": 429}}
	client, _ := newTestClient(t, provider)

	_, err := client.Chat(t.Context(), Request{Prompt: "hello"})
	require.ErrorIs(t, err, ErrProviderRateLimited)
	assert.Equal(t, []string{"primary-model"}, provider.models())
}

func TestChat_BothModelsDown(t *testing.T) {
	provider := &fakeProvider{statusByModel: map[string]int{
		"primary-model":  503,
		"fallback-model": 503,
	}}
	client, _ := newTestClient(t, provider)

	_, err := client.Chat(t.Context(), Request{Prompt: "hello"})
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, []string{"primary-model", "fallback-model"}, provider.models())

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 503, perr.Status)
	assert.Equal(t, "fallback-model", perr.Model)
}

func TestChat_ContentTooLong(t *testing.T) {
	provider := &fakeProvider{
		statusByModel: map[string]int{"pinned": 400},
		errBodyByCode: map[int]string{400: "this model's maximum context length is 8192 tokens"},
	}
	client, _ := newTestClient(t, provider)

	_, err := client.Chat(t.Context(), Request{Prompt: "hello", Model: "pinned"})
	require.ErrorIs(t, err, ErrContentTooLong)
}

func TestChat_InvalidModel(t *testing.T) {
	provider := &fakeProvider{statusByModel: map[string]int{"no-such": 404}}
	client, _ := newTestClient(t, provider)

	_, err := client.Chat(t.Context(), Request{Prompt: "hello", Model: "no-such"})
	require.ErrorIs(t, err, ErrInvalidModel)
}

func TestChat_NotConfigured(t *testing.T) {
	t.Setenv("EMPTY_PROVIDER_KEY", "")
	cfg := config.DefaultProviderConfig()
	cfg.APIKeyEnv = "EMPTY_PROVIDER_KEY"

	client := New(cfg, slog.Default())
	assert.False(t, client.Available())

	_, err := client.Chat(t.Context(), Request{Prompt: "hello"})
	require.ErrorIs(t, err, ErrNotConfigured)
	_, err = client.Embed(t.Context(), []string{"hello"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Input, 2)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [
				{"index": 1, "embedding": [0.4, 0.5, 0.6]},
				{"index": 0, "embedding": [0.1, 0.2, 0.3]}
			],
			"model": "text-embedding-3-small",
			"usage": {"prompt_tokens": 4, "total_tokens": 4}
		}`)
	}))
	defer srv.Close()

	t.Setenv("TEST_PROVIDER_KEY", "test-key")
	cfg := config.DefaultProviderConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKeyEnv = "TEST_PROVIDER_KEY"

	client := New(cfg, slog.Default())
	vectors, err := client.Embed(t.Context(), []string{"first", "second"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	// Results land at their declared index regardless of response order.
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vectors[0])
	assert.Equal(t, []float64{0.4, 0.5, 0.6}, vectors[1])
}

func TestStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{
			`{"id":"cmpl-1","choices":[{"index":0,"delta":{"content":"Hel"}}]}`,
			`{"id":"cmpl-1","choices":[{"index":0,"delta":{"content":"lo"}}]}`,
			`{"id":"cmpl-1","choices":[{"index":0,"delta":{},"finish_reason":"stop"}]}`,
		}
		for _, c := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	t.Setenv("TEST_PROVIDER_KEY", "test-key")
	cfg := config.DefaultProviderConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKeyEnv = "TEST_PROVIDER_KEY"

	client := New(cfg, slog.Default())
	fragments, err := client.Stream(t.Context(), Request{Prompt: "hello"})
	require.NoError(t, err)

	var content string
	var done bool
	for f := range fragments {
		require.NoError(t, f.Err)
		content += f.Content
		done = f.Done
	}
	assert.Equal(t, "Hello", content)
	assert.True(t, done)
}
