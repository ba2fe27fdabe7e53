package api

// InvokeContext identifies the caller of an agent invocation.
type InvokeContext struct {
	TenantID  string `json:"tenant_id"`
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Language  string `json:"language,omitempty"`
}

// InvokeRequest is the HTTP request body for POST /api/v1/agents/:name/invoke.
// The query text travels in params under the "query" key.
type InvokeRequest struct {
	Context InvokeContext  `json:"context"`
	Params  map[string]any `json:"params,omitempty"`
}

// ApprovalActionRequest is the optional body for approval resolutions.
type ApprovalActionRequest struct {
	Notes string `json:"notes,omitempty"`
}

// TaskExecuteRequest is the body for POST /internal/tasks/execute.
type TaskExecuteRequest struct {
	TenantID  string         `json:"tenant_id"`
	AgentName string         `json:"agent_name"`
	Action    string         `json:"action,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// TaskSendNotificationRequest is the body for POST /internal/tasks/send-notification.
type TaskSendNotificationRequest struct {
	TenantID   string `json:"tenant_id"`
	OutreachID string `json:"outreach_id"`
	Channel    string `json:"channel,omitempty"`
}

// TaskCleanupRequest is the body for POST /internal/tasks/cleanup.
type TaskCleanupRequest struct {
	TaskType string         `json:"task_type"`
	Data     map[string]any `json:"data,omitempty"`
}
