package agent

import "time"

// Window identifies an action-budget window.
type Window string

// Budget windows.
const (
	WindowHourly Window = "hourly"
	WindowDaily  Window = "daily"
)

// WindowState is one sliding budget window from an AgentState record.
type WindowState struct {
	Start *time.Time
	Count int
}

// BudgetDecision is the result of a budget check.
type BudgetDecision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// CheckBudget evaluates one sliding window against its limit and returns the
// decision plus the window state an admitted action implies (the caller
// persists it only when the action actually runs). An elapsed window
// restarts at the current instant.
func CheckBudget(w WindowState, limit int, length time.Duration, now time.Time) (BudgetDecision, WindowState) {
	if w.Start == nil || now.Sub(*w.Start) >= length {
		start := now
		next := WindowState{Start: &start, Count: 1}
		return BudgetDecision{Allowed: true, Remaining: limit - 1, ResetAt: start.Add(length)}, next
	}

	resetAt := w.Start.Add(length)
	if w.Count >= limit {
		return BudgetDecision{Allowed: false, Remaining: 0, ResetAt: resetAt}, w
	}

	next := w
	next.Count++
	return BudgetDecision{Allowed: true, Remaining: limit - next.Count, ResetAt: resetAt}, next
}
