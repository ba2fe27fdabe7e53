package scheduler

import "fmt"

// Queues.
const (
	QueueAgents      = "agents"
	QueueOutreach    = "outreach"
	QueueMaintenance = "maintenance"
)

// Handler paths dispatched by the worker pool.
const (
	HandlerAgentRun     = "agent_run"
	HandlerOutreachSend = "outreach_send"
	HandlerCleanup      = "cleanup"
)

// Cleanup kinds.
const (
	CleanupExpiredApprovals = "expired_approvals"
	CleanupExpiredOutreach  = "expired_outreach"
	CleanupExpiredGaps      = "expired_gaps"
)

// Task names are deterministic functions of their key inputs; together with
// the partial unique index over live tasks, a duplicate enqueue of the same
// logical work collapses into the existing row.

func agentRunName(tenantID, agentName, action string) string {
	return fmt.Sprintf("agent_run:%s:%s:%s", tenantID, agentName, action)
}

func outreachSendName(outreachID string) string {
	return fmt.Sprintf("outreach_send:%s", outreachID)
}

func cleanupName(kind, tenantID string) string {
	if tenantID == "" {
		return fmt.Sprintf("cleanup:%s", kind)
	}
	return fmt.Sprintf("cleanup:%s:%s", kind, tenantID)
}
