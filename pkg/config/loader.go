package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the agentplane.yaml file structure. Every section is
// optional; omitted sections fall back to built-in defaults.
type fileConfig struct {
	Provider  *ProviderConfig         `yaml:"provider"`
	Cache     *CacheConfig            `yaml:"cache"`
	Pipeline  *PipelineConfig         `yaml:"pipeline"`
	Breaker   *BreakerConfig          `yaml:"circuit_breaker"`
	Outreach  *OutreachConfig         `yaml:"outreach"`
	Approval  *ApprovalConfig         `yaml:"approval"`
	Queue     *QueueConfig            `yaml:"queue"`
	Sweep     *SweepConfig            `yaml:"sweep"`
	Retention *RetentionConfig        `yaml:"retention"`
	Agents    map[string]*AgentConfig `yaml:"agents"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read agentplane.yaml from configDir (optional — defaults-only runs work)
//  2. Expand {{.ENV_VAR}} templates
//  3. Parse YAML
//  4. Merge over built-in defaults (file wins per field group)
//  5. Validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized", "agents", cfg.Stats().Agents)
	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Provider:  DefaultProviderConfig(),
		Cache:     DefaultCacheConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Breaker:   DefaultBreakerConfig(),
		Outreach:  DefaultOutreachConfig(),
		Approval:  DefaultApprovalConfig(),
		Queue:     DefaultQueueConfig(),
		Sweep:     DefaultSweepConfig(),
		Retention: DefaultRetentionConfig(),
		Agents:    DefaultAgents(),
	}

	path := filepath.Join(configDir, "agentplane.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No agentplane.yaml found, using built-in defaults", "path", path)
			return cfg, nil
		}
		return nil, NewLoadError("agentplane.yaml", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(ExpandEnv(data), &fc); err != nil {
		return nil, NewLoadError("agentplane.yaml", fmt.Errorf("%w: %w", ErrInvalidYAML, err))
	}

	mergeFileConfig(cfg, &fc)
	return cfg, nil
}

// mergeFileConfig overlays file sections on the defaults. Whole sections
// replace; agent entries merge per name so a tenant can override a single
// limit without restating the catalogue.
func mergeFileConfig(cfg *Config, fc *fileConfig) {
	if fc.Provider != nil {
		overlayProvider(cfg.Provider, fc.Provider)
	}
	if fc.Cache != nil {
		overlayCache(cfg.Cache, fc.Cache)
	}
	if fc.Pipeline != nil {
		overlayPipeline(cfg.Pipeline, fc.Pipeline)
	}
	if fc.Breaker != nil {
		overlayBreaker(cfg.Breaker, fc.Breaker)
	}
	if fc.Outreach != nil {
		overlayOutreach(cfg.Outreach, fc.Outreach)
	}
	if fc.Approval != nil && len(fc.Approval.ExpiryMinutes) > 0 {
		for p, m := range fc.Approval.ExpiryMinutes {
			cfg.Approval.ExpiryMinutes[p] = m
		}
	}
	if fc.Queue != nil {
		overlayQueue(cfg.Queue, fc.Queue)
	}
	if fc.Sweep != nil {
		overlaySweep(cfg.Sweep, fc.Sweep)
	}
	if fc.Retention != nil {
		overlayRetention(cfg.Retention, fc.Retention)
	}
	for name, ac := range fc.Agents {
		if base, ok := cfg.Agents[name]; ok {
			overlayAgent(base, ac)
		} else {
			cfg.Agents[name] = ac
		}
	}
}

func overlayProvider(dst, src *ProviderConfig) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.APIKeyEnv != "" {
		dst.APIKeyEnv = src.APIKeyEnv
	}
	if src.DefaultModel != "" {
		dst.DefaultModel = src.DefaultModel
	}
	if src.FallbackModel != "" {
		dst.FallbackModel = src.FallbackModel
	}
	if src.EmbeddingModel != "" {
		dst.EmbeddingModel = src.EmbeddingModel
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.Temperature > 0 {
		dst.Temperature = src.Temperature
	}
	if src.RequestTimeout > 0 {
		dst.RequestTimeout = src.RequestTimeout
	}
	if src.ConnectTimeout > 0 {
		dst.ConnectTimeout = src.ConnectTimeout
	}
	if src.SiteURL != "" {
		dst.SiteURL = src.SiteURL
	}
	if src.SiteName != "" {
		dst.SiteName = src.SiteName
	}
}

func overlayCache(dst, src *CacheConfig) {
	if src.RedisAddr != "" {
		dst.RedisAddr = src.RedisAddr
	}
	if src.RedisPasswordEnv != "" {
		dst.RedisPasswordEnv = src.RedisPasswordEnv
	}
	if src.ExactTTL > 0 {
		dst.ExactTTL = src.ExactTTL
	}
	if src.SemanticTTL > 0 {
		dst.SemanticTTL = src.SemanticTTL
	}
	if src.SimilarityThreshold > 0 {
		dst.SimilarityThreshold = src.SimilarityThreshold
	}
	if src.InvalidateScanLimit > 0 {
		dst.InvalidateScanLimit = src.InvalidateScanLimit
	}
}

func overlayPipeline(dst, src *PipelineConfig) {
	if src.RateLimitPerMinute > 0 {
		dst.RateLimitPerMinute = src.RateLimitPerMinute
	}
	if src.RateLimitPerHour > 0 {
		dst.RateLimitPerHour = src.RateLimitPerHour
	}
	if src.RequestDeadline > 0 {
		dst.RequestDeadline = src.RequestDeadline
	}
}

func overlayBreaker(dst, src *BreakerConfig) {
	if src.Threshold > 0 {
		dst.Threshold = src.Threshold
	}
	if src.Window > 0 {
		dst.Window = src.Window
	}
	if src.MaxCooldownMinutes > 0 {
		dst.MaxCooldownMinutes = src.MaxCooldownMinutes
	}
}

func overlayOutreach(dst, src *OutreachConfig) {
	if src.CooldownMinutes > 0 {
		dst.CooldownMinutes = src.CooldownMinutes
	}
	if src.DailyCap > 0 {
		dst.DailyCap = src.DailyCap
	}
	if src.Expiry > 0 {
		dst.Expiry = src.Expiry
	}
}

func overlayQueue(dst, src *QueueConfig) {
	if src.WorkerCount > 0 {
		dst.WorkerCount = src.WorkerCount
	}
	if src.MaxConcurrentTasks > 0 {
		dst.MaxConcurrentTasks = src.MaxConcurrentTasks
	}
	if src.PollInterval > 0 {
		dst.PollInterval = src.PollInterval
	}
	if src.PollIntervalJitter > 0 {
		dst.PollIntervalJitter = src.PollIntervalJitter
	}
	if src.TaskTimeout > 0 {
		dst.TaskTimeout = src.TaskTimeout
	}
	if src.HeartbeatInterval > 0 {
		dst.HeartbeatInterval = src.HeartbeatInterval
	}
	if src.GracefulShutdownTimeout > 0 {
		dst.GracefulShutdownTimeout = src.GracefulShutdownTimeout
	}
	if src.OrphanDetectionInterval > 0 {
		dst.OrphanDetectionInterval = src.OrphanDetectionInterval
	}
	if src.OrphanThreshold > 0 {
		dst.OrphanThreshold = src.OrphanThreshold
	}
}

func overlaySweep(dst, src *SweepConfig) {
	if src.CleanupInterval > 0 {
		dst.CleanupInterval = src.CleanupInterval
	}
	if src.TickInterval > 0 {
		dst.TickInterval = src.TickInterval
	}
	if src.ScoreRecomputeCron != "" {
		dst.ScoreRecomputeCron = src.ScoreRecomputeCron
	}
}

func overlayRetention(dst, src *RetentionConfig) {
	if src.EventTTL > 0 {
		dst.EventTTL = src.EventTTL
	}
	if src.AuditRetention > 0 {
		dst.AuditRetention = src.AuditRetention
	}
	if src.SweepInterval > 0 {
		dst.SweepInterval = src.SweepInterval
	}
}

func overlayAgent(dst, src *AgentConfig) {
	if src.Autonomy != "" {
		dst.Autonomy = src.Autonomy
	}
	if src.MaxHourlyActions > 0 {
		dst.MaxHourlyActions = src.MaxHourlyActions
	}
	if src.MaxDailyActions > 0 {
		dst.MaxDailyActions = src.MaxDailyActions
	}
	if src.CooldownMinutes > 0 {
		dst.CooldownMinutes = src.CooldownMinutes
	}
	if src.MinRunInterval > 0 {
		dst.MinRunInterval = src.MinRunInterval
	}
	if len(src.Knobs) > 0 {
		if dst.Knobs == nil {
			dst.Knobs = make(map[string]any, len(src.Knobs))
		}
		for k, v := range src.Knobs {
			dst.Knobs[k] = v
		}
	}
}
