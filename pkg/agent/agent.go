// Package agent defines the agent contract and the runtime that governs
// every agent action: circuit breaker, action budgets, rate-limit windows,
// and daily counters.
package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Input is the resolved invocation context handed to an agent.
type Input struct {
	TenantID  string
	UserID    string
	SessionID string
	Channel   string
	Language  string
	Query     string
	Params    map[string]any
}

// Output is what an agent produced for one invocation.
type Output struct {
	Data        map[string]any
	Message     string
	Suggestions []string
	Confidence  float64
	ModelUsed   string
}

// Agent is one autonomous capability.
type Agent interface {
	Name() string
	Description() string
	SystemPrompt() string
	Handle(ctx context.Context, in Input) (*Output, error)
}

// Registry is the process-wide agent registry. Registration happens at
// startup; lookups are concurrent.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]Agent)}
}

// Register adds an agent. Duplicate names are a wiring bug.
func (r *Registry) Register(a Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[a.Name()]; exists {
		return fmt.Errorf("agent %q already registered", a.Name())
	}
	r.agents[a.Name()] = a
	return nil
}

// Get resolves an agent by name.
func (r *Registry) Get(name string) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// Names returns the registered agent names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
