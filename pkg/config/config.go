// Package config loads and validates the control-plane configuration.
//
// Configuration comes from a single agentplane.yaml in the config directory,
// with {{.ENV_VAR}} template expansion and built-in defaults for everything
// the file omits. Secrets (provider API key, redis password) are resolved
// from environment variables named by the config; a missing secret degrades
// the dependent feature in health checks instead of aborting startup.
package config

import (
	"time"
)

// Config is the umbrella configuration object returned by Initialize()
// and wired explicitly into each component constructor.
type Config struct {
	configDir string

	Provider  *ProviderConfig  `yaml:"provider"`
	Cache     *CacheConfig     `yaml:"cache"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Breaker   *BreakerConfig   `yaml:"circuit_breaker"`
	Outreach  *OutreachConfig  `yaml:"outreach"`
	Approval  *ApprovalConfig  `yaml:"approval"`
	Queue     *QueueConfig     `yaml:"queue"`
	Sweep     *SweepConfig     `yaml:"sweep"`
	Retention *RetentionConfig `yaml:"retention"`

	// Agents maps agent name to its per-agent defaults. Per-tenant
	// overrides live on the AgentState record, seeded from these.
	Agents map[string]*AgentConfig `yaml:"agents"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Agent returns the config block for an agent name, or nil when the agent
// carries no explicit configuration (callers fall back to defaults).
func (c *Config) Agent(name string) *AgentConfig {
	return c.Agents[name]
}

// ProviderConfig configures the external LLM provider endpoint.
type ProviderConfig struct {
	BaseURL        string        `yaml:"base_url"`
	APIKeyEnv      string        `yaml:"api_key_env"`
	DefaultModel   string        `yaml:"default_model"`
	FallbackModel  string        `yaml:"fallback_model"`
	EmbeddingModel string        `yaml:"embedding_model"`
	MaxTokens      int           `yaml:"max_tokens"`
	Temperature    float64       `yaml:"temperature"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`

	// Attribution headers sent with every provider request.
	SiteURL  string `yaml:"site_url"`
	SiteName string `yaml:"site_name"`
}

// CacheConfig configures the two-layer response cache.
type CacheConfig struct {
	RedisAddr           string        `yaml:"redis_addr"`
	RedisPasswordEnv    string        `yaml:"redis_password_env"`
	ExactTTL            time.Duration `yaml:"exact_ttl"`
	SemanticTTL         time.Duration `yaml:"semantic_ttl"`
	SimilarityThreshold float64       `yaml:"similarity_threshold"`
	InvalidateScanLimit int           `yaml:"invalidate_scan_limit"`
}

// PipelineConfig configures the decision pipeline.
type PipelineConfig struct {
	RateLimitPerMinute int           `yaml:"rate_limit_rpm"`
	RateLimitPerHour   int           `yaml:"rate_limit_rph"`
	RequestDeadline    time.Duration `yaml:"request_deadline"`
}

// BreakerConfig configures the per-(tenant, agent) circuit breaker.
type BreakerConfig struct {
	Threshold          int           `yaml:"threshold"`
	Window             time.Duration `yaml:"window"`
	MaxCooldownMinutes int           `yaml:"max_cooldown_minutes"`
}

// OutreachConfig configures outreach creation preconditions and expiry.
type OutreachConfig struct {
	CooldownMinutes int           `yaml:"cooldown_minutes"`
	DailyCap        int           `yaml:"daily_cap"`
	Expiry          time.Duration `yaml:"expiry"`
}

// ApprovalConfig configures approval expiry per priority.
type ApprovalConfig struct {
	// ExpiryMinutes maps priority → minutes until a pending approval expires.
	ExpiryMinutes map[string]int `yaml:"expiry_minutes"`
}

// Expiry returns the expiry duration for a priority, falling back to the
// medium priority window for unknown values.
func (a *ApprovalConfig) Expiry(priority string) time.Duration {
	if m, ok := a.ExpiryMinutes[priority]; ok {
		return time.Duration(m) * time.Minute
	}
	return time.Duration(a.ExpiryMinutes["medium"]) * time.Minute
}

// SweepConfig configures the periodic sweepers and agent tick schedules.
type SweepConfig struct {
	// CleanupInterval drives the expiry sweepers (approvals, outreach,
	// gaps, decisions).
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// TickInterval drives periodic agent run scheduling.
	TickInterval time.Duration `yaml:"tick_interval"`

	// ScoreRecomputeCron is the daily customer-score sweep schedule.
	ScoreRecomputeCron string `yaml:"score_recompute_cron"`
}

// RetentionConfig configures how long event and audit rows are kept before
// the background retention sweeper deletes them.
type RetentionConfig struct {
	EventTTL       time.Duration `yaml:"event_ttl"`
	AuditRetention time.Duration `yaml:"audit_retention"`
	SweepInterval  time.Duration `yaml:"sweep_interval"`
}

// AgentConfig holds per-agent defaults seeded into new AgentState records.
type AgentConfig struct {
	Autonomy         string         `yaml:"autonomy"` // full_auto | supervised | manual_only
	MaxHourlyActions int            `yaml:"max_hourly_actions"`
	MaxDailyActions  int            `yaml:"max_daily_actions"`
	CooldownMinutes  int            `yaml:"cooldown_minutes"`
	MinRunInterval   time.Duration  `yaml:"min_run_interval"`
	Knobs            map[string]any `yaml:"knobs"`
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Agents int
}

// Stats returns configuration statistics for logging.
func (c *Config) Stats() Stats {
	return Stats{Agents: len(c.Agents)}
}
