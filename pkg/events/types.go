package events

import (
	"fmt"
	"strings"
	"time"
)

// Event types published to the domain topic.
const (
	TypeDecisionCreated  = "DECISION_CREATED"
	TypeDecisionResolved = "DECISION_RESOLVED"

	TypeGapDetected = "GAP_DETECTED"
	TypeGapFilled   = "GAP_FILLED"
	TypeGapExpired  = "GAP_EXPIRED"

	TypeOutreachSent      = "OUTREACH_SENT"
	TypeOutreachDelivered = "OUTREACH_DELIVERED"
	TypeOutreachRead      = "OUTREACH_READ"
	TypeOutreachResponded = "OUTREACH_RESPONDED"
	TypeOutreachFailed    = "OUTREACH_FAILED"
	TypeOutreachExpired   = "OUTREACH_EXPIRED"

	TypeApprovalRequested = "APPROVAL_REQUESTED"
	TypeApprovalApproved  = "APPROVAL_APPROVED"
	TypeApprovalRejected  = "APPROVAL_REJECTED"
	TypeApprovalExpired   = "APPROVAL_EXPIRED"

	TypeCircuitBreakerTripped = "CIRCUIT_BREAKER_TRIPPED"
	TypeBackpressure          = "BACKPRESSURE"
)

// GlobalChannel receives every event in addition to the tenant channel.
const GlobalChannel = "agentplane_events"

// Envelope is the published wire format.
type Envelope struct {
	EventType string         `json:"event_type"`
	TenantID  string         `json:"tenant_id"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// TenantChannel returns the per-tenant NOTIFY channel name. Postgres channel
// identifiers are sanitized to [a-z0-9_].
func TenantChannel(tenantID string) string {
	return fmt.Sprintf("tenant_%s", sanitizeChannelID(tenantID))
}

func sanitizeChannelID(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
