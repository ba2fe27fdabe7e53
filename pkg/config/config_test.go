package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agentplane.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_DefaultsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.Provider.MaxTokens)
	assert.Equal(t, 0.7, cfg.Provider.Temperature)
	assert.Equal(t, 3600*time.Second, cfg.Cache.ExactTTL)
	assert.Equal(t, 7200*time.Second, cfg.Cache.SemanticTTL)
	assert.Equal(t, 0.92, cfg.Cache.SimilarityThreshold)
	assert.Equal(t, 60, cfg.Pipeline.RateLimitPerMinute)
	assert.Equal(t, 1000, cfg.Pipeline.RateLimitPerHour)
	assert.Equal(t, 5, cfg.Breaker.Threshold)
	assert.Equal(t, 10*time.Minute, cfg.Breaker.Window)
	assert.Equal(t, 200, cfg.Outreach.DailyCap)
	assert.Equal(t, 60, cfg.Outreach.CooldownMinutes)

	// Approval expiry windows per priority.
	assert.Equal(t, 30*time.Minute, cfg.Approval.Expiry("low"))
	assert.Equal(t, 15*time.Minute, cfg.Approval.Expiry("medium"))
	assert.Equal(t, 5*time.Minute, cfg.Approval.Expiry("high"))
	assert.Equal(t, 2*time.Minute, cfg.Approval.Expiry("urgent"))
	// Unknown priority falls back to medium.
	assert.Equal(t, 15*time.Minute, cfg.Approval.Expiry("bogus"))

	// Built-in agent catalogue with min run intervals.
	require.Contains(t, cfg.Agents, "gap_fill")
	assert.Equal(t, 5*time.Minute, cfg.Agents["gap_fill"].MinRunInterval)
	assert.Equal(t, 60*time.Minute, cfg.Agents["retention"].MinRunInterval)
}

func TestInitialize_FileOverlay(t *testing.T) {
	dir := writeConfig(t, `
provider:
  default_model: anthropic/claude-sonnet-4
  max_tokens: 2048
pipeline:
  rate_limit_rpm: 10
  rate_limit_rph: 100
agents:
  gap_fill:
    autonomy: full_auto
    max_hourly_actions: 3
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "anthropic/claude-sonnet-4", cfg.Provider.DefaultModel)
	assert.Equal(t, 2048, cfg.Provider.MaxTokens)
	// Untouched fields keep defaults.
	assert.NotEmpty(t, cfg.Provider.FallbackModel)
	assert.Equal(t, 10, cfg.Pipeline.RateLimitPerMinute)

	// Agent overlay merges with the built-in entry.
	gf := cfg.Agents["gap_fill"]
	assert.Equal(t, "full_auto", gf.Autonomy)
	assert.Equal(t, 3, gf.MaxHourlyActions)
	assert.Equal(t, 50, gf.MaxDailyActions, "unset field keeps built-in default")
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_PROVIDER_URL", "https://llm.internal.example")
	dir := writeConfig(t, `
provider:
  base_url: "{{.TEST_PROVIDER_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://llm.internal.example", cfg.Provider.BaseURL)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "bad autonomy",
			yaml: "agents:\n  gap_fill:\n    autonomy: freestyle\n",
		},
		{
			name: "hourly above daily",
			yaml: "agents:\n  gap_fill:\n    max_hourly_actions: 500\n",
		},
		{
			name: "bad cron",
			yaml: "sweep:\n  score_recompute_cron: not-a-cron\n",
		},
		{
			name: "similarity above one",
			yaml: "cache:\n  similarity_threshold: 1.5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestExpandEnv_PassthroughWithoutTemplates(t *testing.T) {
	in := []byte("provider:\n  base_url: https://example.com\n")
	assert.Equal(t, in, ExpandEnv(in))
}
