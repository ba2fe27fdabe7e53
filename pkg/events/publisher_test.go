package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantChannel(t *testing.T) {
	assert.Equal(t, "tenant_t1", TenantChannel("t1"))
	assert.Equal(t, "tenant_salon_42", TenantChannel("salon_42"))

	// Characters outside [a-z0-9_] are replaced.
	assert.Equal(t, "tenant_a1b2c3_d4", TenantChannel("A1b2C3-d4"))
	assert.Equal(t, "tenant_t_1_x", TenantChannel("t.1/x"))
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	payload, err := json.Marshal(Envelope{
		EventType: TypeDecisionCreated,
		TenantID:  "t1",
		Data:      map[string]any{"decision_id": "d-1"},
	})
	require.NoError(t, err)

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, TypeDecisionCreated, m["event_type"])
	assert.Equal(t, float64(42), m["db_event_id"])
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(Envelope{EventType: TypeGapFilled, TenantID: "t1"})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, TypeGapFilled)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(Envelope{
			EventType: TypeOutreachResponded,
			TenantID:  "t1",
			Data:      map[string]any{"body": strings.Repeat("a", 8000)},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Contains(t, result, TypeOutreachResponded)
		assert.Contains(t, result, "t1")
		assert.Less(t, len(result), 8000)
	})
}
