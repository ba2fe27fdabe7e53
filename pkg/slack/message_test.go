package slack

import (
	"strings"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent"
	entapproval "github.com/bookflow/agentplane/ent/approval"
)

func testApproval() *ent.Approval {
	return &ent.Approval{
		ID:            "ap-123",
		TenantID:      "t1",
		AgentName:     "gap_fill",
		ActionSummary: "Invite Priya to fill the 14:00 gap with Meera",
		Priority:      entapproval.PriorityHigh,
		ExpiresAt:     time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func sectionTexts(blocks []goslack.Block) string {
	var parts []string
	for _, b := range blocks {
		if section, ok := b.(*goslack.SectionBlock); ok && section.Text != nil {
			parts = append(parts, section.Text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func TestBuildApprovalRequestedMessage(t *testing.T) {
	blocks := BuildApprovalRequestedMessage(testApproval(), "https://dash.example.com")
	require.Len(t, blocks, 3)

	text := sectionTexts(blocks)
	assert.Contains(t, text, ":warning:")
	assert.Contains(t, text, "gap_fill")
	assert.Contains(t, text, "approval:ap-123")
	assert.Contains(t, text, "Invite Priya")
	assert.Contains(t, text, "2026-08-25T12:00:00Z")

	action, ok := blocks[2].(*goslack.ActionBlock)
	require.True(t, ok)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "https://dash.example.com/approvals/ap-123", btn.URL)
}

func TestBuildApprovalRequestedMessage_UnknownPriorityFallsBack(t *testing.T) {
	a := testApproval()
	a.Priority = entapproval.PriorityMedium
	text := sectionTexts(BuildApprovalRequestedMessage(a, "https://dash.example.com"))
	assert.Contains(t, text, ":bell:")
}

func TestBuildApprovalResolvedMessage(t *testing.T) {
	a := testApproval()
	a.Responder = "owner@salon.example"
	a.ResponseNotes = "Go ahead, she asked for this slot"

	text := sectionTexts(BuildApprovalResolvedMessage(a, "approved"))
	assert.Contains(t, text, ":white_check_mark:")
	assert.Contains(t, text, "Approved")
	assert.Contains(t, text, "owner@salon.example")
	assert.Contains(t, text, "she asked for this slot")

	text = sectionTexts(BuildApprovalResolvedMessage(testApproval(), "expired"))
	assert.Contains(t, text, ":hourglass:")
	assert.Contains(t, text, "Expired without response")
}

func TestTruncateForSlack(t *testing.T) {
	short := "short summary"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("x", maxBlockTextLength+100)
	got := truncateForSlack(long)
	assert.True(t, len(got) < len(long))
	assert.Contains(t, got, "truncated")
}
