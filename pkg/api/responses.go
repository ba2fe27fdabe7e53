package api

import (
	"time"

	"github.com/bookflow/agentplane/pkg/queue"
)

// InvokeResponse is returned by POST /api/v1/agents/:name/invoke.
type InvokeResponse struct {
	Success     bool           `json:"success"`
	Data        map[string]any `json:"data,omitempty"`
	Message     string         `json:"message,omitempty"`
	Cached      bool           `json:"cached"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Confidence  float64        `json:"confidence"`
	ModelUsed   string         `json:"model_used,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// ApprovalActionResponse is returned by approval resolution endpoints.
type ApprovalActionResponse struct {
	ApprovalID string `json:"approval_id"`
	Status     string `json:"status"`
	Dispatched bool   `json:"dispatched,omitempty"`
	Message    string `json:"message,omitempty"`
}

// TaskAcceptedResponse is returned by the /internal/tasks endpoints.
type TaskAcceptedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthCheck is one component's health verdict.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Checks     map[string]HealthCheck `json:"checks"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
}
