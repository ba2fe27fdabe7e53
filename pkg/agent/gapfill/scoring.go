// Package gapfill fills open schedule gaps: detect today's gaps, pick and
// score outreach candidates, create a decision, dispatch the message, and
// attribute the customer's reply back onto the gap and decision.
package gapfill

import (
	"sort"
	"time"

	"github.com/bookflow/agentplane/ent/customerscore"
)

// maxScore caps a candidate's priority score.
const maxScore = 100

// Monetary contributions divide minor units (paise) so that the table reads
// in whole currency: revenue/100 and ltv/5000.
const (
	revenueDivisor = int64(100_00)
	ltvDivisor     = int64(5000_00)
)

var segmentPoints = map[customerscore.Segment]int{
	customerscore.SegmentVip:       25,
	customerscore.SegmentHighValue: 20,
	customerscore.SegmentAtRisk:    15,
	customerscore.SegmentRegular:   10,
	customerscore.SegmentNew:       5,
}

// Candidate is a customer considered for one gap.
type Candidate struct {
	CustomerID  string
	Name        string
	Phone       string
	Segment     customerscore.Segment
	ChurnScore  int
	LTVTotal    int64
	LastVisitAt *time.Time
}

// ScoredCandidate pairs a candidate with its computed priority score.
type ScoredCandidate struct {
	Candidate
	Score int
}

func durationPoints(minutes int) int {
	switch {
	case minutes >= 120:
		return 30
	case minutes >= 60:
		return 20
	case minutes >= 30:
		return 10
	default:
		return 0
	}
}

// Score computes the priority score for one (gap, candidate) pair, higher is
// better, capped at 100.
func Score(durationMinutes int, potentialRevenue int64, c Candidate) int {
	s := durationPoints(durationMinutes)
	s += minInt(20, int(potentialRevenue/revenueDivisor))
	s += segmentPoints[c.Segment]
	s += minInt(15, c.ChurnScore/10)
	s += minInt(10, int(c.LTVTotal/ltvDivisor))
	if s > maxScore {
		s = maxScore
	}
	return s
}

// Rank scores and orders candidates for one gap. Ordering is deterministic:
// score desc, then LTV desc, then most recent visit, then customer id.
func Rank(durationMinutes int, potentialRevenue int64, candidates []Candidate) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, ScoredCandidate{
			Candidate: c,
			Score:     Score(durationMinutes, potentialRevenue, c),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.LTVTotal != b.LTVTotal {
			return a.LTVTotal > b.LTVTotal
		}
		av, bv := visitUnix(a.LastVisitAt), visitUnix(b.LastVisitAt)
		if av != bv {
			return av > bv
		}
		return a.CustomerID < b.CustomerID
	})
	return scored
}

func visitUnix(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.Unix()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
