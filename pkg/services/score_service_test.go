package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookflow/agentplane/ent/customerscore"
	"github.com/bookflow/agentplane/ent/gap"
)

func TestPriorityForDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    gap.Priority
	}{
		{15, gap.PriorityLow},
		{29, gap.PriorityLow},
		{30, gap.PriorityMedium},
		{59, gap.PriorityMedium},
		{60, gap.PriorityHigh},
		{119, gap.PriorityHigh},
		{120, gap.PriorityCritical},
		{240, gap.PriorityCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityForDuration(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestChurnLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  customerscore.ChurnLevel
	}{
		{0, customerscore.ChurnLevelLow},
		{39, customerscore.ChurnLevelLow},
		{40, customerscore.ChurnLevelMedium},
		{59, customerscore.ChurnLevelMedium},
		{60, customerscore.ChurnLevelHigh},
		{79, customerscore.ChurnLevelHigh},
		{80, customerscore.ChurnLevelCritical},
		{100, customerscore.ChurnLevelCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ChurnLevelForScore(tt.score), "score=%d", tt.score)
	}
}

func TestDeriveSegment(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-7 * 24 * time.Hour)
	longAgo := now.Add(-200 * 24 * time.Hour)
	oldTenure := now.Add(-365 * 24 * time.Hour)

	t.Run("dormancy dominates everything", func(t *testing.T) {
		got := DeriveSegment(vipLTVThreshold*2, customerscore.ChurnLevelCritical, &longAgo, oldTenure, now)
		assert.Equal(t, customerscore.SegmentDormant, got)
	})

	t.Run("churn risk beats value", func(t *testing.T) {
		got := DeriveSegment(vipLTVThreshold*2, customerscore.ChurnLevelHigh, &recent, oldTenure, now)
		assert.Equal(t, customerscore.SegmentAtRisk, got)
	})

	t.Run("vip by lifetime value", func(t *testing.T) {
		got := DeriveSegment(vipLTVThreshold, customerscore.ChurnLevelLow, &recent, oldTenure, now)
		assert.Equal(t, customerscore.SegmentVip, got)
	})

	t.Run("high value band", func(t *testing.T) {
		got := DeriveSegment(highValueLTVThreshold, customerscore.ChurnLevelLow, &recent, oldTenure, now)
		assert.Equal(t, customerscore.SegmentHighValue, got)
	})

	t.Run("recent tenure is new", func(t *testing.T) {
		created := now.Add(-10 * 24 * time.Hour)
		got := DeriveSegment(0, customerscore.ChurnLevelLow, &recent, created, now)
		assert.Equal(t, customerscore.SegmentNew, got)
	})

	t.Run("everyone else is regular", func(t *testing.T) {
		got := DeriveSegment(0, customerscore.ChurnLevelLow, &recent, oldTenure, now)
		assert.Equal(t, customerscore.SegmentRegular, got)
	})
}
