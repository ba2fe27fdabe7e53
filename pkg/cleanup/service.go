// Package cleanup enforces data retention on the append-only tables.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/auditlog"
	"github.com/bookflow/agentplane/ent/event"
	"github.com/bookflow/agentplane/pkg/config"
)

// Service periodically deletes rows past their retention window:
//   - Event rows older than EventTTL (consumers follow live NOTIFY, the
//     table only bridges restarts)
//   - AuditLog rows older than AuditRetention
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"event_ttl", s.config.EventTTL,
		"audit_retention", s.config.AuditRetention,
		"interval", s.config.SweepInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeExpiredEvents(ctx)
	s.purgeExpiredAuditLogs(ctx)
}

func (s *Service) purgeExpiredEvents(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.config.EventTTL)
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired events", "count", count)
	}
}

func (s *Service) purgeExpiredAuditLogs(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.config.AuditRetention)
	count, err := s.client.AuditLog.Delete().
		Where(auditlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: audit log purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired audit logs", "count", count)
	}
}
