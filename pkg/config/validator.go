package config

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
)

var autonomyValues = map[string]bool{
	"full_auto":   true,
	"supervised":  true,
	"manual_only": true,
}

var priorityValues = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
	"urgent": true,
}

// validate checks cross-field constraints after merge. Defaults are already
// applied, so zero values here mean the file explicitly cleared something.
func validate(cfg *Config) error {
	if cfg.Provider.BaseURL == "" {
		return NewValidationError("provider", "base_url", errors.New("must not be empty"))
	}
	if cfg.Provider.DefaultModel == "" {
		return NewValidationError("provider", "default_model", errors.New("must not be empty"))
	}
	if cfg.Provider.MaxTokens <= 0 {
		return NewValidationError("provider", "max_tokens", errors.New("must be positive"))
	}
	if cfg.Provider.Temperature < 0 || cfg.Provider.Temperature > 2 {
		return NewValidationError("provider", "temperature", errors.New("must be in [0, 2]"))
	}

	if cfg.Cache.SimilarityThreshold <= 0 || cfg.Cache.SimilarityThreshold > 1 {
		return NewValidationError("cache", "similarity_threshold", errors.New("must be in (0, 1]"))
	}

	if cfg.Pipeline.RateLimitPerMinute <= 0 || cfg.Pipeline.RateLimitPerHour <= 0 {
		return NewValidationError("pipeline", "rate_limit", errors.New("limits must be positive"))
	}
	if cfg.Pipeline.RateLimitPerHour < cfg.Pipeline.RateLimitPerMinute {
		return NewValidationError("pipeline", "rate_limit_rph",
			errors.New("hourly limit must be >= per-minute limit"))
	}

	if cfg.Breaker.Threshold <= 0 {
		return NewValidationError("circuit_breaker", "threshold", errors.New("must be positive"))
	}
	if cfg.Breaker.Window <= 0 {
		return NewValidationError("circuit_breaker", "window", errors.New("must be positive"))
	}

	if cfg.Outreach.DailyCap <= 0 {
		return NewValidationError("outreach", "daily_cap", errors.New("must be positive"))
	}

	for p := range cfg.Approval.ExpiryMinutes {
		if !priorityValues[p] {
			return NewValidationError("approval", "expiry_minutes",
				fmt.Errorf("unknown priority %q", p))
		}
	}
	for _, p := range []string{"low", "medium", "high", "urgent"} {
		if cfg.Approval.ExpiryMinutes[p] <= 0 {
			return NewValidationError("approval", "expiry_minutes",
				fmt.Errorf("priority %q must have a positive expiry", p))
		}
	}

	if cfg.Queue.WorkerCount <= 0 {
		return NewValidationError("queue", "worker_count", errors.New("must be positive"))
	}
	if cfg.Queue.HeartbeatInterval >= cfg.Queue.OrphanThreshold {
		return NewValidationError("queue", "heartbeat_interval",
			errors.New("must be shorter than orphan_threshold"))
	}

	if cfg.Sweep.ScoreRecomputeCron != "" {
		if _, err := cron.ParseStandard(cfg.Sweep.ScoreRecomputeCron); err != nil {
			return NewValidationError("sweep", "score_recompute_cron", err)
		}
	}

	for name, ac := range cfg.Agents {
		if ac.Autonomy != "" && !autonomyValues[ac.Autonomy] {
			return NewValidationError("agents", name,
				fmt.Errorf("invalid autonomy %q", ac.Autonomy))
		}
		if ac.MaxHourlyActions < 0 || ac.MaxDailyActions < 0 {
			return NewValidationError("agents", name, errors.New("action limits must be >= 0"))
		}
		if ac.MaxDailyActions > 0 && ac.MaxHourlyActions > ac.MaxDailyActions {
			return NewValidationError("agents", name,
				errors.New("max_hourly_actions must be <= max_daily_actions"))
		}
	}

	return nil
}
