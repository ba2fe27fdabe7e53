package slack

import (
	"fmt"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/bookflow/agentplane/ent"
)

const maxBlockTextLength = 2900

var priorityEmoji = map[string]string{
	"urgent": ":rotating_light:",
	"high":   ":warning:",
	"medium": ":bell:",
	"low":    ":information_source:",
}

var resolutionEmoji = map[string]string{
	"approved":  ":white_check_mark:",
	"rejected":  ":x:",
	"cancelled": ":no_entry_sign:",
	"expired":   ":hourglass:",
}

var resolutionLabel = map[string]string{
	"approved":  "Approved",
	"rejected":  "Rejected",
	"cancelled": "Cancelled",
	"expired":   "Expired without response",
}

func approvalURL(approvalID, dashboardURL string) string {
	return fmt.Sprintf("%s/approvals/%s", dashboardURL, approvalID)
}

// BuildApprovalRequestedMessage creates Block Kit blocks for a new pending
// approval. The fingerprint travels in the message text so the resolution
// can find the thread later.
func BuildApprovalRequestedMessage(a *ent.Approval, dashboardURL string) []goslack.Block {
	emoji := priorityEmoji[string(a.Priority)]
	if emoji == "" {
		emoji = ":bell:"
	}

	header := fmt.Sprintf("%s *Approval needed* (%s priority) from agent `%s`\n_%s_",
		emoji, a.Priority, a.AgentName, ApprovalFingerprint(a.ID))

	body := fmt.Sprintf("%s\n\nTenant: `%s`\nExpires: %s",
		truncateForSlack(a.ActionSummary),
		a.TenantID,
		a.ExpiresAt.UTC().Format(time.RFC3339))

	btn := goslack.NewButtonBlockElement("", "",
		goslack.NewTextBlockObject(goslack.PlainTextType, "Review in Dashboard", false, false))
	btn.URL = approvalURL(a.ID, dashboardURL)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, body, false, false),
			nil, nil,
		),
		goslack.NewActionBlock("", btn),
	}
}

// BuildApprovalResolvedMessage creates the threaded reply for a resolution.
func BuildApprovalResolvedMessage(a *ent.Approval, status string) []goslack.Block {
	emoji := resolutionEmoji[status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := resolutionLabel[status]
	if label == "" {
		label = status
	}

	text := fmt.Sprintf("%s *%s*", emoji, label)
	if a.Responder != "" {
		text += fmt.Sprintf(" by %s", a.Responder)
	}
	if a.ResponseNotes != "" {
		text += fmt.Sprintf("\n\n*Notes:*\n%s", truncateForSlack(a.ResponseNotes))
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated, view details in dashboard)_"
}
