package queue

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent"
)

func TestExecutor_Dispatch(t *testing.T) {
	e := NewExecutor(slog.Default())

	var got *ent.Task
	e.Register("agent_run", func(_ context.Context, task *ent.Task) error {
		got = task
		return nil
	})

	task := &ent.Task{ID: "t1", Handler: "agent_run"}
	require.NoError(t, e.Execute(context.Background(), task))
	assert.Equal(t, "t1", got.ID)
}

func TestExecutor_UnknownHandlerIsPermanent(t *testing.T) {
	e := NewExecutor(slog.Default())

	err := e.Execute(context.Background(), &ent.Task{Handler: "nope"})
	require.Error(t, err)

	var perm *PermanentError
	assert.True(t, errors.As(err, &perm))
}

func TestExecutor_DuplicateRegistrationPanics(t *testing.T) {
	e := NewExecutor(slog.Default())
	e.Register("x", func(context.Context, *ent.Task) error { return nil })
	assert.Panics(t, func() {
		e.Register("x", func(context.Context, *ent.Task) error { return nil })
	})
}

func TestPermanent(t *testing.T) {
	base := errors.New("boom")
	wrapped := Permanent(base)

	var perm *PermanentError
	require.True(t, errors.As(wrapped, &perm))
	assert.True(t, errors.Is(wrapped, base))
	assert.Nil(t, Permanent(nil))
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 30*time.Second, retryDelay(1))
	assert.Equal(t, 60*time.Second, retryDelay(2))
	assert.Equal(t, 120*time.Second, retryDelay(3))
}

func TestPayloadHelpers(t *testing.T) {
	task := &ent.Task{Payload: map[string]interface{}{
		"tenant_id":     "t1",
		"defer_attempt": float64(2), // JSON numbers decode as float64
	}}
	assert.Equal(t, "t1", payloadString(task, "tenant_id"))
	assert.Equal(t, "", payloadString(task, "missing"))
	assert.Equal(t, 2, payloadInt(task, "defer_attempt"))
	assert.Equal(t, 0, payloadInt(&ent.Task{}, "defer_attempt"))
}
