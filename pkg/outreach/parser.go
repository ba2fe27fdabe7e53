package outreach

import "strings"

// Reply actions produced by the rule-based parser.
const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
	ActionNone    = ""
)

var acceptWords = map[string]bool{
	"yes": true, "y": true, "confirm": true, "book": true, "sure": true,
	"ok": true, "haan": true, "ha": true, "ji": true,
}

var declineWords = map[string]bool{
	"no": true, "n": true, "cancel": true, "decline": true,
	"nahi": true, "na": true, "nope": true,
}

// ParseReply classifies an inbound message body. Digits 1-5 select a
// numbered offer option ("select_N"). Anything unrecognized returns
// ActionNone and is handed to the conversational flow.
func ParseReply(body string) string {
	normalized := strings.ToLower(strings.TrimSpace(body))
	if normalized == "" {
		return ActionNone
	}

	if acceptWords[normalized] {
		return ActionAccept
	}
	if declineWords[normalized] {
		return ActionDecline
	}
	if len(normalized) == 1 && normalized[0] >= '1' && normalized[0] <= '5' {
		return "select_" + normalized
	}
	return ActionNone
}
