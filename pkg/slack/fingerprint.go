package slack

import (
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

// ApprovalFingerprint is the stable text embedded in a request message so
// the resolution can be threaded under it later.
func ApprovalFingerprint(approvalID string) string {
	return "approval:" + approvalID
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func collectMessageText(msg goslack.Message) string {
	var parts []string
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, block := range msg.Blocks.BlockSet {
		if section, ok := block.(*goslack.SectionBlock); ok && section.Text != nil {
			parts = append(parts, section.Text.Text)
		}
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}
