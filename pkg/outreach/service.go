// Package outreach owns outbound customer messages and their monotone
// delivery lifecycle (pending → sent → delivered → read → responded, with
// failed/expired branches). Provider webhooks may arrive late, duplicated,
// or out of order; only forward transitions are applied.
package outreach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/decision"
	entoutreach "github.com/bookflow/agentplane/ent/outreach"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/events"
	"github.com/bookflow/agentplane/pkg/metrics"
	"github.com/bookflow/agentplane/pkg/services"
)

// ErrPreconditionFailed wraps every creation precondition failure; the
// concrete *PreconditionError names the reason. No record is created.
var ErrPreconditionFailed = errors.New("outreach precondition failed")

// Precondition reasons.
const (
	ReasonApprovalPending  = "approval_pending"
	ReasonApprovalDenied   = "approval_denied"
	ReasonCustomerCooldown = "cooldown_active"
	ReasonDailyCapReached  = "daily_cap_reached"
)

// PreconditionError reports which creation precondition failed.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("outreach precondition failed: %s", e.Reason)
}

// Is lets errors.Is match ErrPreconditionFailed.
func (e *PreconditionError) Is(target error) bool { return target == ErrPreconditionFailed }

// CreateInput describes a new outbound message.
type CreateInput struct {
	TenantID      string
	DecisionID    string
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	Type          string
	Channel       entoutreach.Channel
	Message       string
	TriggerID     string
	TriggerKind   string
	Offer         map[string]interface{}
	ExpiresAt     time.Time // optional; defaults to now + configured expiry
}

// Service owns Outreach records.
type Service struct {
	client    *ent.Client
	cfg       *config.OutreachConfig
	publisher *events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates the outreach service.
func NewService(client *ent.Client, cfg *config.OutreachConfig, publisher *events.Publisher, logger *slog.Logger) *Service {
	if client == nil {
		panic("NewService: client must not be nil")
	}
	return &Service{
		client:    client,
		cfg:       cfg,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Create persists a pending outreach after checking every precondition:
// resolved approval on the owning decision, per-customer cooldown, and the
// tenant's daily budget. A failed precondition creates nothing and returns
// a typed reason.
func (s *Service) Create(ctx context.Context, input CreateInput) (*ent.Outreach, error) {
	if input.CustomerPhone == "" {
		return nil, services.NewValidationError("customer_phone", "customer phone is required")
	}
	if input.Message == "" {
		return nil, services.NewValidationError("message", "message body is required")
	}

	if err := s.checkPreconditions(ctx, input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	expiresAt := input.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(s.cfg.Expiry)
	}
	channel := input.Channel
	if channel == "" {
		channel = entoutreach.ChannelWhatsapp
	}

	create := s.client.Outreach.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetCustomerID(input.CustomerID).
		SetCustomerName(input.CustomerName).
		SetCustomerPhone(input.CustomerPhone).
		SetType(input.Type).
		SetChannel(channel).
		SetMessage(input.Message).
		SetTriggerID(input.TriggerID).
		SetTriggerKind(input.TriggerKind).
		SetExpiresAt(expiresAt)
	if len(input.Offer) > 0 {
		create.SetOffer(input.Offer)
	}

	o, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create outreach: %w", err)
	}
	return o, nil
}

func (s *Service) checkPreconditions(ctx context.Context, input CreateInput) error {
	now := s.now().UTC()

	if input.DecisionID != "" {
		d, err := s.client.Decision.Query().
			Where(decision.IDEQ(input.DecisionID), decision.TenantIDEQ(input.TenantID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return services.ErrNotFound
			}
			return fmt.Errorf("failed to load decision for outreach: %w", err)
		}
		if d.ApprovalRequired {
			switch d.ApprovalStatus {
			case decision.ApprovalStatusApproved:
			case decision.ApprovalStatusPending:
				return &PreconditionError{Reason: ReasonApprovalPending}
			default:
				return &PreconditionError{Reason: ReasonApprovalDenied}
			}
		}
	}

	cooldownCutoff := now.Add(-time.Duration(s.cfg.CooldownMinutes) * time.Minute)
	recent, err := s.client.Outreach.Query().
		Where(
			entoutreach.TenantIDEQ(input.TenantID),
			entoutreach.CustomerIDEQ(input.CustomerID),
			entoutreach.CreatedAtGT(cooldownCutoff),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check customer cooldown: %w", err)
	}
	if recent {
		return &PreconditionError{Reason: ReasonCustomerCooldown}
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sentToday, err := s.client.Outreach.Query().
		Where(
			entoutreach.TenantIDEQ(input.TenantID),
			entoutreach.CreatedAtGTE(dayStart),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check daily outreach budget: %w", err)
	}
	if sentToday >= s.cfg.DailyCap {
		return &PreconditionError{Reason: ReasonDailyCapReached}
	}
	return nil
}

// MarkSent moves pending → sent on provider ack and records the provider
// message id for O(1) webhook lookup.
func (s *Service) MarkSent(ctx context.Context, tenantID, outreachID, providerMessageID string) error {
	now := s.now().UTC()
	n, err := s.client.Outreach.Update().
		Where(
			entoutreach.IDEQ(outreachID),
			entoutreach.TenantIDEQ(tenantID),
			entoutreach.StatusEQ(entoutreach.StatusPending),
		).
		SetStatus(entoutreach.StatusSent).
		SetProviderMessageID(providerMessageID).
		SetSentAt(now).
		AddAttempts(1).
		SetLastAttemptAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark outreach sent: %w", err)
	}
	if n == 0 {
		return services.ErrStateConflict
	}

	s.published(ctx, tenantID, events.TypeOutreachSent, outreachID, entoutreach.StatusSent)
	return nil
}

// MarkFailed records a definitive provider send failure (pending → failed).
func (s *Service) MarkFailed(ctx context.Context, tenantID, outreachID, lastError string) error {
	n, err := s.client.Outreach.Update().
		Where(
			entoutreach.IDEQ(outreachID),
			entoutreach.TenantIDEQ(tenantID),
			entoutreach.StatusEQ(entoutreach.StatusPending),
		).
		SetStatus(entoutreach.StatusFailed).
		SetLastError(lastError).
		AddAttempts(1).
		SetLastAttemptAt(s.now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark outreach failed: %w", err)
	}
	if n == 0 {
		return services.ErrStateConflict
	}

	s.published(ctx, tenantID, events.TypeOutreachFailed, outreachID, entoutreach.StatusFailed)
	return nil
}

// ApplyProviderStatus advances an outreach based on a provider status
// callback. Idempotent and forward-only: duplicates and late backward events
// are ignored with a log.
func (s *Service) ApplyProviderStatus(ctx context.Context, providerMessageID, messageStatus, errorCode, errorMessage string) error {
	incoming := ProviderStatus(messageStatus)
	if incoming == "" {
		s.logger.Warn("ignoring unknown provider message status",
			slog.String("provider_message_id", providerMessageID),
			slog.String("status", messageStatus))
		return nil
	}

	o, err := s.ByProviderMessageID(ctx, providerMessageID)
	if err != nil {
		return err
	}

	if !Advance(o.Status, incoming) {
		s.logger.Info("ignoring non-forward provider status",
			slog.String("outreach_id", o.ID),
			slog.String("current", string(o.Status)),
			slog.String("incoming", string(incoming)))
		return nil
	}

	now := s.now().UTC()
	update := s.client.Outreach.Update().
		Where(entoutreach.IDEQ(o.ID), entoutreach.StatusEQ(o.Status)).
		SetStatus(incoming)
	switch incoming {
	case entoutreach.StatusDelivered:
		update.SetDeliveredAt(now)
	case entoutreach.StatusRead:
		update.SetReadAt(now)
	case entoutreach.StatusFailed:
		if errorMessage != "" {
			update.SetLastError(fmt.Sprintf("%s: %s", errorCode, errorMessage))
		}
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply provider status: %w", err)
	}
	if n == 0 {
		// A concurrent webhook advanced the record first. Re-dispatch so an
		// out-of-order pair (read before delivered) still converges.
		return s.ApplyProviderStatus(ctx, providerMessageID, messageStatus, errorCode, errorMessage)
	}

	s.published(ctx, o.TenantID, eventTypeForStatus(incoming), o.ID, incoming)
	return nil
}

// HandleReply classifies an inbound message and, when it parses to an
// action, moves the customer's most recent outreach (any tenant, <=24h old)
// to responded. Returns the parsed action and the affected record; a nil
// record means no eligible outreach was found or the body didn't parse.
func (s *Service) HandleReply(ctx context.Context, fromPhone, body string) (string, *ent.Outreach, error) {
	action := ParseReply(body)
	if action == ActionNone {
		return ActionNone, nil, nil
	}

	now := s.now().UTC()
	o, err := s.client.Outreach.Query().
		Where(
			entoutreach.CustomerPhoneEQ(fromPhone),
			entoutreach.CreatedAtGT(now.Add(-24*time.Hour)),
		).
		Order(ent.Desc(entoutreach.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return action, nil, nil
		}
		return action, nil, fmt.Errorf("failed to find outreach for reply: %w", err)
	}

	if !Advance(o.Status, entoutreach.StatusResponded) {
		s.logger.Info("ignoring reply for terminal outreach",
			slog.String("outreach_id", o.ID),
			slog.String("status", string(o.Status)))
		return action, nil, nil
	}

	n, err := s.client.Outreach.Update().
		Where(entoutreach.IDEQ(o.ID), entoutreach.StatusEQ(o.Status)).
		SetStatus(entoutreach.StatusResponded).
		SetResponseReceived(true).
		SetResponseAction(action).
		SetRespondedAt(now).
		Save(ctx)
	if err != nil {
		return action, nil, fmt.Errorf("failed to record reply: %w", err)
	}
	if n == 0 {
		return action, nil, nil // concurrent transition won
	}

	s.published(ctx, o.TenantID, events.TypeOutreachResponded, o.ID, entoutreach.StatusResponded)

	o.Status = entoutreach.StatusResponded
	return action, o, nil
}

// AttachBooking backfills the booking created from an accepted reply.
func (s *Service) AttachBooking(ctx context.Context, tenantID, outreachID, bookingID string) error {
	_, err := s.client.Outreach.Update().
		Where(entoutreach.IDEQ(outreachID), entoutreach.TenantIDEQ(tenantID)).
		SetResponseBookingID(bookingID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to attach booking to outreach: %w", err)
	}
	return nil
}

// Get returns one outreach within the tenant.
func (s *Service) Get(ctx context.Context, tenantID, outreachID string) (*ent.Outreach, error) {
	o, err := s.client.Outreach.Query().
		Where(entoutreach.IDEQ(outreachID), entoutreach.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get outreach: %w", err)
	}
	return o, nil
}

// ByProviderMessageID resolves an outreach from a provider callback.
func (s *Service) ByProviderMessageID(ctx context.Context, providerMessageID string) (*ent.Outreach, error) {
	o, err := s.client.Outreach.Query().
		Where(entoutreach.ProviderMessageIDEQ(providerMessageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up outreach by provider message id: %w", err)
	}
	return o, nil
}

// HasActiveForTrigger reports whether the customer already has an in-flight
// outreach for the trigger (candidate dedup).
func (s *Service) HasActiveForTrigger(ctx context.Context, tenantID, triggerID, customerID string) (bool, error) {
	exists, err := s.client.Outreach.Query().
		Where(
			entoutreach.TenantIDEQ(tenantID),
			entoutreach.TriggerIDEQ(triggerID),
			entoutreach.CustomerIDEQ(customerID),
			entoutreach.StatusIn(
				entoutreach.StatusPending,
				entoutreach.StatusSent,
				entoutreach.StatusDelivered,
				entoutreach.StatusRead,
			),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check active outreach: %w", err)
	}
	return exists, nil
}

// ExpireByTrigger expires every in-flight outreach for a trigger, used when
// the gap fills through another channel or expires.
func (s *Service) ExpireByTrigger(ctx context.Context, tenantID, triggerID string) (int, error) {
	n, err := s.client.Outreach.Update().
		Where(
			entoutreach.TenantIDEQ(tenantID),
			entoutreach.TriggerIDEQ(triggerID),
			entoutreach.StatusIn(
				entoutreach.StatusPending,
				entoutreach.StatusSent,
				entoutreach.StatusDelivered,
				entoutreach.StatusRead,
			),
		).
		SetStatus(entoutreach.StatusExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire outreach by trigger: %w", err)
	}
	return n, nil
}

// ExpireOverdue sweeps non-terminal outreaches past expiry to expired.
func (s *Service) ExpireOverdue(ctx context.Context) (int, error) {
	now := s.now().UTC()
	overdue, err := s.client.Outreach.Query().
		Where(
			entoutreach.StatusIn(
				entoutreach.StatusPending,
				entoutreach.StatusSent,
				entoutreach.StatusDelivered,
				entoutreach.StatusRead,
			),
			entoutreach.ExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query overdue outreach: %w", err)
	}

	expired := 0
	for _, o := range overdue {
		n, err := s.client.Outreach.Update().
			Where(entoutreach.IDEQ(o.ID), entoutreach.StatusEQ(o.Status)).
			SetStatus(entoutreach.StatusExpired).
			Save(ctx)
		if err != nil {
			return expired, fmt.Errorf("failed to expire outreach %s: %w", o.ID, err)
		}
		if n == 0 {
			continue // responded or failed while sweeping
		}
		expired++
		s.published(ctx, o.TenantID, events.TypeOutreachExpired, o.ID, entoutreach.StatusExpired)
	}
	return expired, nil
}

func (s *Service) published(ctx context.Context, tenantID, eventType, outreachID string, status entoutreach.Status) {
	metrics.OutreachTotal.WithLabelValues("whatsapp", string(status)).Inc()
	if s.publisher != nil {
		s.publisher.PublishBestEffort(ctx, tenantID, eventType, map[string]any{
			"outreach_id": outreachID,
			"status":      string(status),
		})
	}
}

func eventTypeForStatus(status entoutreach.Status) string {
	switch status {
	case entoutreach.StatusSent:
		return events.TypeOutreachSent
	case entoutreach.StatusDelivered:
		return events.TypeOutreachDelivered
	case entoutreach.StatusRead:
		return events.TypeOutreachRead
	case entoutreach.StatusResponded:
		return events.TypeOutreachResponded
	case entoutreach.StatusFailed:
		return events.TypeOutreachFailed
	default:
		return events.TypeOutreachExpired
	}
}
