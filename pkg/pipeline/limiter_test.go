package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(perMin, perHour int) (*Limiter, *time.Time) {
	l := NewLimiter(perMin, perHour)
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_MinuteWindow(t *testing.T) {
	l, now := newTestLimiter(60, 1000)

	for i := 0; i < 60; i++ {
		assert.True(t, l.Allow("t1", "gap_fill"), "request %d", i)
		*now = now.Add(100 * time.Millisecond)
	}
	// 61st within the same minute is shed.
	assert.False(t, l.Allow("t1", "gap_fill"))

	// A denied request consumed nothing: after the window slides the full
	// budget is back.
	*now = now.Add(time.Minute)
	assert.True(t, l.Allow("t1", "gap_fill"))
}

func TestLimiter_HourWindow(t *testing.T) {
	l, now := newTestLimiter(60, 100)

	admitted := 0
	for i := 0; i < 120; i++ {
		if l.Allow("t1", "gap_fill") {
			admitted++
		}
		*now = now.Add(2 * time.Second) // stays under the minute limit
	}
	assert.Equal(t, 100, admitted)

	*now = now.Add(time.Hour)
	assert.True(t, l.Allow("t1", "gap_fill"))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, 10)

	assert.True(t, l.Allow("t1", "gap_fill"))
	assert.False(t, l.Allow("t1", "gap_fill"))
	assert.True(t, l.Allow("t2", "gap_fill"))
	assert.True(t, l.Allow("t1", "retention"))
}

func TestRouteTier(t *testing.T) {
	tests := []struct {
		name     string
		runes    int
		plan     string
		failures int
		want     string
	}{
		{"default", 100, "", 0, TierDefault},
		{"premium plan", 100, "premium", 0, TierPremium},
		{"long query downgrades", 3000, "premium", 0, TierFast},
		{"recent failures downgrade", 100, "premium", 3, TierFast},
		{"two failures keep tier", 100, "", 2, TierDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteTier(tt.runes, tt.plan, tt.failures))
		})
	}
}

func TestFailureTracker_Window(t *testing.T) {
	f := newFailureTracker()
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	f.record("t1", "gap_fill")
	f.record("t1", "gap_fill")
	assert.Equal(t, 2, f.recent("t1", "gap_fill"))
	assert.Equal(t, 0, f.recent("t2", "gap_fill"))

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 0, f.recent("t1", "gap_fill"))
}
