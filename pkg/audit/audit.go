// Package audit writes the append-only audit trail.
//
// Writes are best-effort: an audit failure is logged and never propagated,
// the audited operation has already happened.
package audit

import (
	"context"
	"log/slog"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/auditlog"
)

// Severity levels for audit entries.
const (
	SeverityInfo     = auditlog.SeverityInfo
	SeverityWarning  = auditlog.SeverityWarning
	SeverityError    = auditlog.SeverityError
	SeverityCritical = auditlog.SeverityCritical
)

// Entry is one audit record.
type Entry struct {
	TenantID     string
	EventType    string
	Severity     auditlog.Severity
	Actor        string
	ResourceType string
	ResourceID   string
	Details      map[string]interface{}
	TraceID      string
}

// Writer appends audit entries.
type Writer struct {
	client *ent.Client
	logger *slog.Logger
}

// NewWriter creates an audit writer.
func NewWriter(client *ent.Client, logger *slog.Logger) *Writer {
	return &Writer{client: client, logger: logger}
}

// Record appends one entry. Severity defaults to info.
func (w *Writer) Record(ctx context.Context, e Entry) {
	severity := e.Severity
	if severity == "" {
		severity = SeverityInfo
	}

	create := w.client.AuditLog.Create().
		SetTenantID(e.TenantID).
		SetEventType(e.EventType).
		SetSeverity(severity).
		SetActor(e.Actor)
	if e.ResourceType != "" {
		create.SetResourceType(e.ResourceType)
	}
	if e.ResourceID != "" {
		create.SetResourceID(e.ResourceID)
	}
	if len(e.Details) > 0 {
		create.SetDetails(e.Details)
	}
	if e.TraceID != "" {
		create.SetTraceID(e.TraceID)
	}

	if _, err := create.Save(ctx); err != nil {
		w.logger.Warn("audit write failed",
			slog.String("tenant_id", e.TenantID),
			slog.String("event_type", e.EventType),
			slog.String("error", err.Error()))
	}
}
