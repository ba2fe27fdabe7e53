package gapfill

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent/customerscore"
)

// A vip with ltv 40000 offered a 90-minute gap worth 800: 20 (duration) +
// 8 (revenue) + 25 (vip) + 0 (churn) + 8 (ltv) = 61.
func TestScore_VipNinetyMinuteGap(t *testing.T) {
	c := Candidate{
		CustomerID: "c1",
		Segment:    customerscore.SegmentVip,
		ChurnScore: 0,
		LTVTotal:   40000_00,
	}
	assert.Equal(t, 61, Score(90, 800_00, c))
}

func TestScore_Components(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		revenue  int64
		cand     Candidate
		want     int
	}{
		{"short gap regular", 20, 0, Candidate{Segment: customerscore.SegmentRegular}, 10},
		{"long gap at risk churner", 130, 0,
			Candidate{Segment: customerscore.SegmentAtRisk, ChurnScore: 85}, 30 + 15 + 8},
		{"revenue capped at 20", 30, 99999_00, Candidate{Segment: customerscore.SegmentNew}, 10 + 20 + 5},
		{"ltv capped at 10", 30, 0,
			Candidate{Segment: customerscore.SegmentHighValue, LTVTotal: 1_000_000_00}, 10 + 20 + 10},
		{"total capped at 100", 130, 99999_00,
			Candidate{Segment: customerscore.SegmentVip, ChurnScore: 100, LTVTotal: 1_000_000_00}, 100},
		{"dormant has no segment points", 60, 0, Candidate{Segment: customerscore.SegmentDormant}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.duration, tt.revenue, tt.cand))
		})
	}
}

func TestRank_TieBreaks(t *testing.T) {
	visit := func(daysAgo int) *time.Time {
		ts := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
		return &ts
	}
	// Equal scores throughout: same segment, no churn, ltv below one divisor
	// step except where the tie-break needs it.
	candidates := []Candidate{
		{CustomerID: "c-late", Segment: customerscore.SegmentRegular, LastVisitAt: visit(30)},
		{CustomerID: "c-recent", Segment: customerscore.SegmentRegular, LastVisitAt: visit(2)},
		{CustomerID: "b-id", Segment: customerscore.SegmentRegular, LastVisitAt: visit(2)},
		{CustomerID: "rich", Segment: customerscore.SegmentRegular, LTVTotal: 4000_00},
	}

	ranked := Rank(45, 0, candidates)
	require.Len(t, ranked, 4)
	// Same score for all four; ltv breaks first, then recency, then id.
	assert.Equal(t, "rich", ranked[0].CustomerID)
	assert.Equal(t, "b-id", ranked[1].CustomerID)
	assert.Equal(t, "c-recent", ranked[2].CustomerID)
	assert.Equal(t, "c-late", ranked[3].CustomerID)
}

// Ordering must be deterministic for the same inputs regardless of the
// order candidates are supplied in.
func TestRank_Deterministic(t *testing.T) {
	base := []Candidate{
		{CustomerID: "a", Segment: customerscore.SegmentVip, LTVTotal: 60000_00, ChurnScore: 10},
		{CustomerID: "b", Segment: customerscore.SegmentHighValue, LTVTotal: 25000_00, ChurnScore: 70},
		{CustomerID: "c", Segment: customerscore.SegmentAtRisk, LTVTotal: 8000_00, ChurnScore: 90},
		{CustomerID: "d", Segment: customerscore.SegmentRegular, LTVTotal: 8000_00, ChurnScore: 90},
		{CustomerID: "e", Segment: customerscore.SegmentNew},
	}

	reference := Rank(75, 500_00, base)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 25; i++ {
		shuffled := make([]Candidate, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Rank(75, 500_00, shuffled)
		require.Len(t, got, len(reference))
		for j := range reference {
			assert.Equal(t, reference[j].CustomerID, got[j].CustomerID, "position %d", j)
			assert.Equal(t, reference[j].Score, got[j].Score, "position %d", j)
		}
	}
}

func TestDeferDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, DeferDelay(0))
	assert.Equal(t, 10*time.Second, DeferDelay(1))
	assert.Equal(t, 20*time.Second, DeferDelay(2))
	assert.Equal(t, 40*time.Second, DeferDelay(3))
	assert.Equal(t, 60*time.Second, DeferDelay(4))
	assert.Equal(t, 60*time.Second, DeferDelay(50))
	assert.Equal(t, 5*time.Second, DeferDelay(-1))
}
