package outreach

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	entoutreach "github.com/bookflow/agentplane/ent/outreach"
)

// apply folds a sequence of incoming statuses through Advance the way the
// service does, returning the final state.
func apply(start entoutreach.Status, incoming []entoutreach.Status) entoutreach.Status {
	current := start
	for _, in := range incoming {
		if Advance(current, in) {
			current = in
		}
	}
	return current
}

func TestAdvance_ForwardOnly(t *testing.T) {
	tests := []struct {
		name     string
		current  entoutreach.Status
		incoming entoutreach.Status
		want     bool
	}{
		{"pending to sent", entoutreach.StatusPending, entoutreach.StatusSent, true},
		{"sent to delivered", entoutreach.StatusSent, entoutreach.StatusDelivered, true},
		{"delivered to read", entoutreach.StatusDelivered, entoutreach.StatusRead, true},
		{"read to responded", entoutreach.StatusRead, entoutreach.StatusResponded, true},
		{"skip ahead sent to read", entoutreach.StatusSent, entoutreach.StatusRead, true},
		{"skip ahead pending to responded", entoutreach.StatusPending, entoutreach.StatusResponded, true},
		{"duplicate delivered", entoutreach.StatusDelivered, entoutreach.StatusDelivered, false},
		{"backward read to delivered", entoutreach.StatusRead, entoutreach.StatusDelivered, false},
		{"backward sent to pending", entoutreach.StatusSent, entoutreach.StatusPending, false},
		{"failed from sent", entoutreach.StatusSent, entoutreach.StatusFailed, true},
		{"expired from read", entoutreach.StatusRead, entoutreach.StatusExpired, true},
		{"nothing after responded", entoutreach.StatusResponded, entoutreach.StatusFailed, false},
		{"nothing after failed", entoutreach.StatusFailed, entoutreach.StatusDelivered, false},
		{"nothing after expired", entoutreach.StatusExpired, entoutreach.StatusResponded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advance(tt.current, tt.incoming))
		})
	}
}

// The delivered/read pair may arrive in either order and each may be
// duplicated; the record must converge on read either way.
func TestAdvance_OutOfOrderWebhooksConverge(t *testing.T) {
	orderings := [][]entoutreach.Status{
		{entoutreach.StatusDelivered, entoutreach.StatusRead},
		{entoutreach.StatusRead, entoutreach.StatusDelivered},
		{entoutreach.StatusDelivered, entoutreach.StatusDelivered, entoutreach.StatusRead},
		{entoutreach.StatusRead, entoutreach.StatusDelivered, entoutreach.StatusRead},
	}
	for _, seq := range orderings {
		assert.Equal(t, entoutreach.StatusRead, apply(entoutreach.StatusSent, seq), "sequence %v", seq)
	}
}

// Shuffling the full forward chain must always land on responded: rank
// comparison makes the fold order-independent.
func TestAdvance_ShuffledChainsConverge(t *testing.T) {
	chain := []entoutreach.Status{
		entoutreach.StatusSent,
		entoutreach.StatusDelivered,
		entoutreach.StatusRead,
		entoutreach.StatusResponded,
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		seq := make([]entoutreach.Status, len(chain))
		copy(seq, chain)
		rng.Shuffle(len(seq), func(a, b int) { seq[a], seq[b] = seq[b], seq[a] })
		// Duplicate a random element too.
		seq = append(seq, seq[rng.Intn(len(seq))])

		assert.Equal(t, entoutreach.StatusResponded, apply(entoutreach.StatusPending, seq), "sequence %v", seq)
	}
}

func TestAdvance_FailureBeatsLateDelivery(t *testing.T) {
	got := apply(entoutreach.StatusSent, []entoutreach.Status{
		entoutreach.StatusFailed,
		entoutreach.StatusDelivered, // late webhook after the failure
	})
	assert.Equal(t, entoutreach.StatusFailed, got)
}

func TestProviderStatus(t *testing.T) {
	assert.Equal(t, entoutreach.StatusSent, ProviderStatus("sent"))
	assert.Equal(t, entoutreach.StatusSent, ProviderStatus("queued"))
	assert.Equal(t, entoutreach.StatusDelivered, ProviderStatus("delivered"))
	assert.Equal(t, entoutreach.StatusRead, ProviderStatus("read"))
	assert.Equal(t, entoutreach.StatusFailed, ProviderStatus("failed"))
	assert.Equal(t, entoutreach.StatusFailed, ProviderStatus("undelivered"))
	assert.Equal(t, entoutreach.Status(""), ProviderStatus("accepted"))
}
