package concierge

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/llm"
)

func TestConcierge_Identity(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "concierge", c.Name())
	assert.NotEmpty(t, c.Description())
	assert.Contains(t, c.SystemPrompt(), "salon")
}

func TestConcierge_UnconfiguredProvider(t *testing.T) {
	// No API key in the environment: the gateway reports unavailable and
	// Handle surfaces the typed error for the pipeline to classify.
	client := llm.New(&config.ProviderConfig{
		BaseURL:   "http://localhost:0",
		APIKeyEnv: "CONCIERGE_TEST_MISSING_KEY",
	}, slog.Default())

	c := New(client)
	_, err := c.Handle(context.Background(), agent.Input{
		TenantID: "t1",
		Query:    "What time do you open?",
	})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}
