package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bookflow/agentplane/ent"
)

// HandlerFunc processes one claimed task. Returning a *PermanentError (via
// Permanent) fails the task immediately; any other error consumes an attempt
// and requeues with backoff.
type HandlerFunc func(ctx context.Context, t *ent.Task) error

// Executor dispatches claimed tasks to registered handlers by handler path.
type Executor struct {
	handlers map[string]HandlerFunc
	logger   *slog.Logger
}

// NewExecutor creates an empty executor.
func NewExecutor(logger *slog.Logger) *Executor {
	return &Executor{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}
}

// Register binds a handler path. Re-registering a path panics; that is a
// wiring bug, not a runtime condition.
func (e *Executor) Register(path string, fn HandlerFunc) {
	if _, dup := e.handlers[path]; dup {
		panic(fmt.Sprintf("queue: handler %q registered twice", path))
	}
	e.handlers[path] = fn
}

// Execute runs the handler for a task.
func (e *Executor) Execute(ctx context.Context, t *ent.Task) error {
	fn, ok := e.handlers[t.Handler]
	if !ok {
		return Permanent(fmt.Errorf("no handler registered for %q", t.Handler))
	}
	return fn(ctx, t)
}
