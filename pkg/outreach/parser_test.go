package outreach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"yes", ActionAccept},
		{"YES", ActionAccept},
		{"  Yes  ", ActionAccept},
		{"y", ActionAccept},
		{"confirm", ActionAccept},
		{"book", ActionAccept},
		{"sure", ActionAccept},
		{"ok", ActionAccept},
		{"haan", ActionAccept},
		{"ha", ActionAccept},
		{"ji", ActionAccept},

		{"no", ActionDecline},
		{"N", ActionDecline},
		{"cancel", ActionDecline},
		{"decline", ActionDecline},
		{"nahi", ActionDecline},
		{"na", ActionDecline},
		{"nope", ActionDecline},

		{"1", "select_1"},
		{"3", "select_3"},
		{"5", "select_5"},
		{"0", ActionNone},
		{"6", ActionNone},
		{"12", ActionNone},

		{"", ActionNone},
		{"   ", ActionNone},
		{"maybe later", ActionNone},
		{"yes please", ActionNone}, // multi-word replies go to the conversational flow
		{"what time?", ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseReply(tt.body), "body=%q", tt.body)
	}
}
