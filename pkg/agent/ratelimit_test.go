package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBudget_FreshWindow(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	decision, next := CheckBudget(WindowState{}, 30, time.Hour, now)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 29, decision.Remaining)
	assert.Equal(t, now.Add(time.Hour), decision.ResetAt)
	require.NotNil(t, next.Start)
	assert.Equal(t, 1, next.Count)
}

func TestCheckBudget_ExhaustsAtLimit(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	w := WindowState{}
	var decision BudgetDecision
	for i := 0; i < 30; i++ {
		decision, w = CheckBudget(w, 30, time.Hour, now.Add(time.Duration(i)*time.Second))
		require.True(t, decision.Allowed, "call %d", i)
	}
	assert.Equal(t, 0, decision.Remaining)

	decision, after := CheckBudget(w, 30, time.Hour, now.Add(time.Minute))
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
	assert.Equal(t, w, after, "denied check must not consume")
	assert.Equal(t, w.Start.Add(time.Hour), decision.ResetAt)
}

func TestCheckBudget_WindowRollover(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	start := now.Add(-61 * time.Minute)

	decision, next := CheckBudget(WindowState{Start: &start, Count: 30}, 30, time.Hour, now)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, next.Count)
	assert.Equal(t, now, *next.Start)
}
