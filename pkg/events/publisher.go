// Package events publishes domain events to the process topic.
//
// Events are persisted to the events table and broadcast via pg_notify in a
// single transaction, so a delivered notification always has a committed row
// behind it and consumers can catch up from the table after a disconnect.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookflow/agentplane/pkg/metrics"
)

// Publisher persists and broadcasts domain events.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the database pool
// (database.Client.DB()).
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish persists the event and notifies both the tenant channel and the
// global channel. The row insert and both notifies commit atomically.
func (p *Publisher) Publish(ctx context.Context, tenantID, eventType string, data map[string]any) error {
	envelope := Envelope{
		EventType: eventType,
		TenantID:  tenantID,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	payloadJSON, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (tenant_id, event_type, channel, payload, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		tenantID, eventType, TenantChannel(tenantID), payloadJSON, envelope.Timestamp,
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// pg_notify is transactional: both notifications are held until COMMIT.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}
	for _, channel := range []string{TenantChannel(tenantID), GlobalChannel} {
		if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
			return fmt.Errorf("pg_notify failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	metrics.EventsPublishedTotal.WithLabelValues(eventType).Inc()
	return nil
}

// PublishBestEffort publishes and downgrades any failure to a warning log.
// Used where event loss is acceptable but aborting the caller is not.
func (p *Publisher) PublishBestEffort(ctx context.Context, tenantID, eventType string, data map[string]any) {
	if err := p.Publish(ctx, tenantID, eventType, data); err != nil {
		slog.Warn("Failed to publish event",
			"event_type", eventType, "tenant_id", tenantID, "error", err)
	}
}

// injectDBEventIDAndTruncate adds db_event_id to the NOTIFY payload for
// catchup tracking and applies truncation if the result exceeds PostgreSQL's
// NOTIFY payload limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is if it fits within PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with routing fields
// only; consumers fetch the full row by db_event_id.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		EventType string `json:"event_type"`
		TenantID  string `json:"tenant_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"event_type": routing.EventType,
		"tenant_id":  routing.TenantID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
