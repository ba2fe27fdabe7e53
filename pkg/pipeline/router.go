package pipeline

import (
	"sync"
	"time"
)

// Model tiers.
const (
	TierPremium = "premium"
	TierDefault = "default"
	TierFast    = "fast"
)

const (
	longQueryRunes    = 2000
	failureWindow     = 5 * time.Minute
	failureDowngrade  = 3
	premiumTenantPlan = "premium"
)

// RouteTier derives the model tier from request size, tenant plan, and
// recent provider failures. Falls through to the default tier.
func RouteTier(queryRunes int, plan string, recentFailures int) string {
	switch {
	case recentFailures >= failureDowngrade:
		// A struggling provider gets the cheaper, faster model.
		return TierFast
	case queryRunes > longQueryRunes:
		return TierFast
	case plan == premiumTenantPlan:
		return TierPremium
	default:
		return TierDefault
	}
}

// failureTracker counts provider failures per (tenant, agent) within the
// routing window.
type failureTracker struct {
	mu     sync.Mutex
	stamps map[string][]time.Time
	now    func() time.Time
}

func newFailureTracker() *failureTracker {
	return &failureTracker{
		stamps: make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (f *failureTracker) record(tenantID, agentName string) {
	key := tenantID + "/" + agentName
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stamps[key] = append(f.prune(key), f.now())
}

func (f *failureTracker) recent(tenantID, agentName string) int {
	key := tenantID + "/" + agentName
	f.mu.Lock()
	defer f.mu.Unlock()
	pruned := f.prune(key)
	f.stamps[key] = pruned
	return len(pruned)
}

// prune drops stamps outside the window. Caller holds the lock.
func (f *failureTracker) prune(key string) []time.Time {
	cutoff := f.now().Add(-failureWindow)
	kept := f.stamps[key][:0]
	for _, ts := range f.stamps[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
