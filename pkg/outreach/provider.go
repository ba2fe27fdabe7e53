package outreach

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
)

// ErrSendRejected marks a definitive provider rejection: the message will
// never go out (bad number, blocked recipient). Transient transport errors
// are returned as-is and retried by the task queue.
var ErrSendRejected = errors.New("provider rejected message")

// Provider delivers an outreach message over its channel and returns the
// provider's message id for webhook correlation.
type Provider interface {
	Send(ctx context.Context, o *ent.Outreach) (providerMessageID string, err error)
}

// LogProvider is the development fallback when no messaging credentials are
// configured: it logs the message and fabricates a message id so the rest
// of the lifecycle can be exercised.
type LogProvider struct {
	Logger *slog.Logger
}

// Send logs the outreach and returns a generated id.
func (p *LogProvider) Send(_ context.Context, o *ent.Outreach) (string, error) {
	p.Logger.Info("outreach send (log provider)",
		slog.String("outreach_id", o.ID),
		slog.String("channel", string(o.Channel)),
		slog.String("to", o.CustomerPhone))
	return "log-" + uuid.New().String(), nil
}
