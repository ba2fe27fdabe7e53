package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestApprovalFingerprint(t *testing.T) {
	assert.Equal(t, "approval:ap-1", ApprovalFingerprint("ap-1"))
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "approval:ap-1 needs review", normalizeText("  Approval:AP-1 \n\t needs   review "))
	assert.Equal(t, "", normalizeText("   "))
}

func TestCollectMessageText(t *testing.T) {
	msg := goslack.Message{}
	msg.Text = "plain text"
	msg.Attachments = []goslack.Attachment{
		{Text: "attachment text", Fallback: "fallback text"},
	}

	got := collectMessageText(msg)
	assert.Contains(t, got, "plain text")
	assert.Contains(t, got, "attachment text")
	assert.Contains(t, got, "fallback text")
}
