package pipeline

import (
	"sync"
	"time"
)

// Limiter enforces sliding minute and hour windows per (tenant, agent).
// Timestamps are pruned lazily on each check; memory per key is bounded by
// the hourly limit.
type Limiter struct {
	mu      sync.Mutex
	perKey  map[string][]time.Time
	perMin  int
	perHour int
	now     func() time.Time
}

// NewLimiter creates a limiter with the given sliding-window limits.
func NewLimiter(perMinute, perHour int) *Limiter {
	return &Limiter{
		perKey:  make(map[string][]time.Time),
		perMin:  perMinute,
		perHour: perHour,
		now:     time.Now,
	}
}

// Allow records and admits one request unless either window is full. A
// denied request consumes nothing.
func (l *Limiter) Allow(tenantID, agentName string) bool {
	key := tenantID + "/" + agentName
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := l.perKey[key]
	hourAgo := now.Add(-time.Hour)
	pruned := stamps[:0]
	for _, ts := range stamps {
		if ts.After(hourAgo) {
			pruned = append(pruned, ts)
		}
	}

	if len(pruned) >= l.perHour {
		l.perKey[key] = pruned
		return false
	}

	minuteAgo := now.Add(-time.Minute)
	lastMinute := 0
	for i := len(pruned) - 1; i >= 0; i-- {
		if pruned[i].After(minuteAgo) {
			lastMinute++
		} else {
			break
		}
	}
	if lastMinute >= l.perMin {
		l.perKey[key] = pruned
		return false
	}

	l.perKey[key] = append(pruned, now)
	return true
}
