package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAgent struct{ name string }

func (f *fakeAgent) Name() string         { return f.name }
func (f *fakeAgent) Description() string  { return "test agent" }
func (f *fakeAgent) SystemPrompt() string { return "you are a test agent" }
func (f *fakeAgent) Handle(_ context.Context, _ Input) (*Output, error) {
	return &Output{Message: "ok"}, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAgent{name: "gap_fill"}))
	require.NoError(t, r.Register(&fakeAgent{name: "retention"}))

	a, ok := r.Get("gap_fill")
	require.True(t, ok)
	assert.Equal(t, "gap_fill", a.Name())

	_, ok = r.Get("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{"gap_fill", "retention"}, r.Names())
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAgent{name: "gap_fill"}))
	assert.Error(t, r.Register(&fakeAgent{name: "gap_fill"}))
}
