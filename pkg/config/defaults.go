package config

import "time"

// Default values applied when agentplane.yaml omits a setting.
// The numbers mirror the platform's operating limits: a 30s pipeline
// deadline, 60/1000 request windows, 5-failure breaker with a 10-minute
// window, and a 200-message daily outreach cap.

// DefaultProviderConfig returns the built-in provider defaults.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		BaseURL:        "https://openrouter.ai/api/v1",
		APIKeyEnv:      "PROVIDER_API_KEY",
		DefaultModel:   "anthropic/claude-3.5-haiku",
		FallbackModel:  "meta-llama/llama-3.1-8b-instruct",
		EmbeddingModel: "text-embedding-3-small",
		MaxTokens:      4096,
		Temperature:    0.7,
		RequestTimeout: 120 * time.Second,
		ConnectTimeout: 30 * time.Second,
		SiteName:       "agentplane",
	}
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		RedisAddr:           "localhost:6379",
		RedisPasswordEnv:    "REDIS_PASSWORD",
		ExactTTL:            3600 * time.Second,
		SemanticTTL:         7200 * time.Second,
		SimilarityThreshold: 0.92,
		InvalidateScanLimit: 1000,
	}
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		RateLimitPerMinute: 60,
		RateLimitPerHour:   1000,
		RequestDeadline:    30 * time.Second,
	}
}

// DefaultBreakerConfig returns the built-in circuit breaker defaults.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		Threshold:          5,
		Window:             10 * time.Minute,
		MaxCooldownMinutes: 30,
	}
}

// DefaultOutreachConfig returns the built-in outreach defaults.
func DefaultOutreachConfig() *OutreachConfig {
	return &OutreachConfig{
		CooldownMinutes: 60,
		DailyCap:        200,
		Expiry:          15 * time.Minute,
	}
}

// DefaultApprovalConfig returns the built-in approval expiry windows.
func DefaultApprovalConfig() *ApprovalConfig {
	return &ApprovalConfig{
		ExpiryMinutes: map[string]int{
			"low":    30,
			"medium": 15,
			"high":   5,
			"urgent": 2,
		},
	}
}

// DefaultQueueConfig returns the built-in task queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTasks:      10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		SaturationDepth:         500,
	}
}

// DefaultSweepConfig returns the built-in sweep/tick schedule defaults.
func DefaultSweepConfig() *SweepConfig {
	return &SweepConfig{
		CleanupInterval:    time.Minute,
		TickInterval:       time.Minute,
		ScoreRecomputeCron: "30 3 * * *",
	}
}

// DefaultRetentionConfig returns the built-in data retention windows.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:       7 * 24 * time.Hour,
		AuditRetention: 90 * 24 * time.Hour,
		SweepInterval:  time.Hour,
	}
}

// DefaultAgents returns the built-in agent catalogue. Tenants can override
// limits per agent in agentplane.yaml; unknown agents configured there are
// rejected at validation.
func DefaultAgents() map[string]*AgentConfig {
	return map[string]*AgentConfig{
		"gap_fill": {
			Autonomy:         "supervised",
			MaxHourlyActions: 10,
			MaxDailyActions:  50,
			CooldownMinutes:  60,
			MinRunInterval:   5 * time.Minute,
		},
		"waitlist": {
			Autonomy:         "supervised",
			MaxHourlyActions: 10,
			MaxDailyActions:  50,
			CooldownMinutes:  60,
			MinRunInterval:   5 * time.Minute,
		},
		"no_show_prevention": {
			Autonomy:         "full_auto",
			MaxHourlyActions: 20,
			MaxDailyActions:  100,
			CooldownMinutes:  60,
			MinRunInterval:   10 * time.Minute,
		},
		"retention": {
			Autonomy:         "supervised",
			MaxHourlyActions: 5,
			MaxDailyActions:  20,
			CooldownMinutes:  120,
			MinRunInterval:   60 * time.Minute,
		},
	}
}
