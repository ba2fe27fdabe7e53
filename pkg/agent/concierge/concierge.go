// Package concierge is the customer-facing Q&A agent: it answers salon
// questions over whatever channel invoked the pipeline. It holds no state
// and takes no autonomous actions, so it runs unsupervised.
package concierge

import (
	"context"
	"strings"

	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/llm"
)

// AgentName is the registry name of this agent.
const AgentName = "concierge"

const systemPrompt = "You are a friendly salon concierge. Answer questions about services, " +
	"timings, and bookings in the customer's language. Keep answers under 80 words. " +
	"Never invent prices, discounts, or availability; say you will check instead."

var defaultSuggestions = []string{
	"Book an appointment",
	"View services",
	"Talk to the salon",
}

// Concierge answers customer queries with a single LLM call.
type Concierge struct {
	llm *llm.Client
}

// New creates the concierge agent.
func New(llmClient *llm.Client) *Concierge {
	return &Concierge{llm: llmClient}
}

func (c *Concierge) Name() string { return AgentName }

func (c *Concierge) Description() string {
	return "Answers customer questions about services, timings, and bookings."
}

func (c *Concierge) SystemPrompt() string { return systemPrompt }

// Handle answers one query. The pipeline's model router has already pinned
// the model into params.
func (c *Concierge) Handle(ctx context.Context, in agent.Input) (*agent.Output, error) {
	model, _ := in.Params["model"].(string)

	resp, err := c.llm.Chat(ctx, llm.Request{
		System: systemPrompt,
		Prompt: in.Query,
		Model:  model,
	})
	if err != nil {
		return nil, err
	}

	return &agent.Output{
		Message:     strings.TrimSpace(resp.Content),
		Suggestions: defaultSuggestions,
		Confidence:  0.9,
		ModelUsed:   resp.Model,
	}, nil
}
