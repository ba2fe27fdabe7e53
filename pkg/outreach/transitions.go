package outreach

import "github.com/bookflow/agentplane/ent/outreach"

// statusRank orders the forward delivery chain. Terminal states carry no
// rank; they are handled explicitly.
var statusRank = map[outreach.Status]int{
	outreach.StatusPending:   0,
	outreach.StatusSent:      1,
	outreach.StatusDelivered: 2,
	outreach.StatusRead:      3,
	outreach.StatusResponded: 4,
}

// IsTerminal reports whether no further transitions are possible.
func IsTerminal(s outreach.Status) bool {
	switch s {
	case outreach.StatusResponded, outreach.StatusFailed, outreach.StatusExpired:
		return true
	}
	return false
}

// Advance decides whether moving from current to incoming is a legal forward
// transition. Backward and duplicate deliveries return false and are ignored;
// the final state is therefore independent of webhook arrival order.
func Advance(current, incoming outreach.Status) bool {
	if IsTerminal(current) {
		return false
	}

	switch incoming {
	case outreach.StatusFailed:
		// Failure is reachable from any non-terminal, non-responded state.
		return true
	case outreach.StatusExpired:
		return true
	default:
		currentRank, ok := statusRank[current]
		if !ok {
			return false
		}
		incomingRank, ok := statusRank[incoming]
		if !ok {
			return false
		}
		return incomingRank > currentRank
	}
}

// ProviderStatus maps a provider callback status onto the outreach status
// it implies. Unknown statuses map to "", meaning ignore.
func ProviderStatus(messageStatus string) outreach.Status {
	switch messageStatus {
	case "sent", "queued":
		// "queued" acks acceptance by the provider; we already moved to sent
		// on enqueue ack, so it collapses into sent.
		return outreach.StatusSent
	case "delivered":
		return outreach.StatusDelivered
	case "read":
		return outreach.StatusRead
	case "failed", "undelivered":
		return outreach.StatusFailed
	default:
		return ""
	}
}
