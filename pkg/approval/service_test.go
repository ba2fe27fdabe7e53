package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookflow/agentplane/ent/approval"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/events"
)

func TestPriorityExpiry(t *testing.T) {
	cfg := config.DefaultApprovalConfig()

	tests := []struct {
		priority string
		want     time.Duration
	}{
		{"low", 30 * time.Minute},
		{"medium", 15 * time.Minute},
		{"high", 5 * time.Minute},
		{"urgent", 2 * time.Minute},
		{"unknown", 15 * time.Minute}, // falls back to medium
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Expiry(tt.priority), "priority=%s", tt.priority)
	}
}

func TestEventTypeFor(t *testing.T) {
	assert.Equal(t, events.TypeApprovalApproved, eventTypeFor(approval.StatusApproved))
	assert.Equal(t, events.TypeApprovalRejected, eventTypeFor(approval.StatusRejected))
	assert.Equal(t, events.TypeApprovalExpired, eventTypeFor(approval.StatusExpired))
	assert.Empty(t, eventTypeFor(approval.StatusCancelled), "cancellations are not broadcast")
}
