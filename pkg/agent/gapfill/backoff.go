package gapfill

import "time"

// Backpressure defer delays: 5, 10, 20 seconds, capped at 60.
const (
	deferBase = 5 * time.Second
	deferCap  = 60 * time.Second
)

// DeferDelay returns how long a run should defer after `attempt` consecutive
// saturated-queue deferrals (attempt 0 is the first).
func DeferDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := deferBase
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= deferCap {
			return deferCap
		}
	}
	return d
}
