package gapfill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bookflow/agentplane/ent"
	entapproval "github.com/bookflow/agentplane/ent/approval"
	"github.com/bookflow/agentplane/ent/customerscore"
	"github.com/bookflow/agentplane/ent/decision"
	entgap "github.com/bookflow/agentplane/ent/gap"
	entoutreach "github.com/bookflow/agentplane/ent/outreach"
	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/approval"
	"github.com/bookflow/agentplane/pkg/booking"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/events"
	"github.com/bookflow/agentplane/pkg/llm"
	"github.com/bookflow/agentplane/pkg/metrics"
	"github.com/bookflow/agentplane/pkg/outreach"
	"github.com/bookflow/agentplane/pkg/services"
)

// AgentName is the agent this orchestrator runs as.
const AgentName = "gap_fill"

const (
	triggerKindGap  = "gap"
	minGapMinutes   = 30
	candidateLimit  = 10
	decisionTTL     = 15 * time.Minute
	composeMaxToken = 300
)

// composeSystemPrompt steers the message-drafting LLM call.
const composeSystemPrompt = "You write concise, warm appointment reminders for a salon. Never invent prices or discounts."

// ErrBackpressure signals the run was deferred because the task queue
// reported saturation; the caller reschedules with DeferDelay.
var ErrBackpressure = errors.New("task queue saturated")

// Contact is the customer contact data resolved from the directory.
type Contact struct {
	Name  string
	Phone string
}

// Directory resolves customer contact details. The customer CRUD surface is
// a separate service; this is the slice of it the orchestrator needs.
type Directory interface {
	Contact(ctx context.Context, tenantID, customerID string) (Contact, error)
}

// Dispatcher enqueues deferred work and reports queue pressure.
type Dispatcher interface {
	ScheduleOutreachSend(ctx context.Context, tenantID, outreachID, channel string, delay time.Duration) error
	Saturated(ctx context.Context) (bool, error)
}

// Bookings creates bookings in the scheduling service when a customer
// accepts an offer.
type Bookings interface {
	Create(ctx context.Context, tenantID string, req booking.Request) (booking.Booking, error)
}

// Orchestrator runs the gap-fill agent.
type Orchestrator struct {
	gaps       *services.GapService
	scores     *services.ScoreService
	decisions  *services.DecisionService
	outreaches *outreach.Service
	approvals  *approval.Service
	runtime    *agent.Runtime
	llm        *llm.Client
	directory  Directory
	bookings   Bookings
	dispatcher Dispatcher
	publisher  *events.Publisher
	cfg        *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

// New creates the orchestrator. directory, bookings, and dispatcher may be
// nil in degraded deployments; candidates without contact data are skipped,
// accepted offers wait for a booking, and sends stay pending.
func New(
	gaps *services.GapService,
	scores *services.ScoreService,
	decisions *services.DecisionService,
	outreaches *outreach.Service,
	approvals *approval.Service,
	runtime *agent.Runtime,
	llmClient *llm.Client,
	directory Directory,
	bookings Bookings,
	dispatcher Dispatcher,
	publisher *events.Publisher,
	cfg *config.Config,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		gaps:       gaps,
		scores:     scores,
		decisions:  decisions,
		outreaches: outreaches,
		approvals:  approvals,
		runtime:    runtime,
		llm:        llmClient,
		directory:  directory,
		bookings:   bookings,
		dispatcher: dispatcher,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// RunTenant executes one gap-fill pass for a tenant: today's open gaps of at
// least 30 minutes, best candidate each. Per-gap failures are logged and do
// not stop the pass.
func (o *Orchestrator) RunTenant(ctx context.Context, tenantID string) error {
	if o.dispatcher != nil {
		saturated, err := o.dispatcher.Saturated(ctx)
		if err == nil && saturated {
			if o.publisher != nil {
				o.publisher.PublishBestEffort(ctx, tenantID, events.TypeBackpressure, map[string]any{
					"agent": AgentName,
				})
			}
			return ErrBackpressure
		}
	}

	today := o.now().UTC().Format("2006-01-02")
	open, err := o.gaps.OpenGaps(ctx, tenantID, today, minGapMinutes)
	if err != nil {
		return fmt.Errorf("failed to detect open gaps: %w", err)
	}

	for _, g := range open {
		if err := o.fillGap(ctx, g); err != nil {
			o.logger.Warn("gap fill attempt failed",
				slog.String("tenant_id", tenantID),
				slog.String("gap_id", g.ID),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

func (o *Orchestrator) fillGap(ctx context.Context, g *ent.Gap) error {
	ok, reason, err := o.runtime.CanOperate(ctx, g.TenantID, AgentName)
	if err != nil {
		return err
	}
	if !ok {
		o.logger.Debug("gap fill skipped",
			slog.String("tenant_id", g.TenantID),
			slog.String("reason", reason))
		return nil
	}

	budget, err := o.runtime.CheckRateLimit(ctx, g.TenantID, AgentName, agent.WindowHourly)
	if err != nil {
		return err
	}
	if !budget.Allowed {
		o.logger.Debug("gap fill skipped",
			slog.String("tenant_id", g.TenantID),
			slog.String("reason", "hourly_budget_exhausted"))
		return nil
	}

	candidates := o.candidates(ctx, g)
	if len(candidates) == 0 {
		return nil
	}
	best := Rank(g.DurationMinutes, g.PotentialRevenue, candidates)[0]

	message, modelUsed, err := o.composeMessage(ctx, g, best)
	if err != nil {
		if recErr := o.runtime.RecordFailure(ctx, g.TenantID, AgentName, err); recErr != nil {
			o.logger.Warn("failed to record breaker failure", slog.String("error", recErr.Error()))
		}
		return fmt.Errorf("failed to compose outreach message: %w", err)
	}

	supervised := o.autonomy() == decision.AutonomySupervised
	now := o.now().UTC()
	d, err := o.decisions.Create(ctx, services.CreateDecisionInput{
		TenantID:    g.TenantID,
		AgentName:   AgentName,
		Kind:        decision.KindGapFill,
		Autonomy:    o.autonomy(),
		TriggerID:   g.ID,
		TriggerKind: triggerKindGap,
		CustomerID:  best.CustomerID,
		StaffID:     g.StaffID,
		ActionSummary: fmt.Sprintf("Offer %d min slot with %s at %s to %s",
			g.DurationMinutes, g.StaffName, g.StartTime.Format("15:04"), best.Name),
		ActionDetail: map[string]interface{}{
			"message":        message,
			"model_used":     modelUsed,
			"customer_name":  best.Name,
			"customer_phone": best.Phone,
			"score":          best.Score,
		},
		RevenuePotential: g.PotentialRevenue,
		ApprovalRequired: supervised,
		ExpiresAt:        now.Add(decisionTTL),
	})
	if err != nil {
		return err
	}

	if err := o.gaps.RecordFillAttempt(ctx, g.TenantID, g.ID); err != nil {
		o.logger.Warn("failed to record fill attempt",
			slog.String("gap_id", g.ID),
			slog.String("error", err.Error()))
	}
	if err := o.runtime.RecordAction(ctx, g.TenantID, AgentName, "gap_fill", true, 0); err != nil {
		o.logger.Warn("failed to record agent action", slog.String("error", err.Error()))
	}

	if o.publisher != nil {
		o.publisher.PublishBestEffort(ctx, g.TenantID, events.TypeDecisionCreated, map[string]any{
			"decision_id": d.ID,
			"agent":       AgentName,
			"gap_id":      g.ID,
			"customer_id": best.CustomerID,
		})
	}

	if supervised {
		_, err := o.approvals.Create(ctx, approval.CreateInput{
			TenantID:      g.TenantID,
			DecisionID:    d.ID,
			AgentName:     AgentName,
			ActionType:    "gap_fill_outreach",
			ActionSummary: d.ActionSummary,
			ActionDetail:  d.ActionDetail,
			Priority:      approvalPriority(g.Priority),
		})
		return err
	}
	return o.dispatch(ctx, d, g.ID, best.CustomerID, best.Name, best.Phone, message)
}

// candidates fetches and deduplicates retention and vip candidates. Fetch
// failures degrade to an empty slice, a soft skip rather than a breaker
// error.
func (o *Orchestrator) candidates(ctx context.Context, g *ent.Gap) []Candidate {
	half := candidateLimit / 2

	churn, err := o.scores.ChurnRiskCandidates(ctx, g.TenantID, half)
	if err != nil {
		o.logger.Warn("churn candidate fetch failed", slog.String("error", err.Error()))
		churn = nil
	}
	vips, err := o.scores.SegmentCandidates(ctx, g.TenantID, customerscore.SegmentVip, half)
	if err != nil {
		o.logger.Warn("vip candidate fetch failed", slog.String("error", err.Error()))
		vips = nil
	}

	seen := map[string]bool{}
	out := make([]Candidate, 0, len(churn)+len(vips))
	for _, cs := range append(churn, vips...) {
		if seen[cs.CustomerID] {
			continue
		}
		seen[cs.CustomerID] = true

		active, err := o.outreaches.HasActiveForTrigger(ctx, g.TenantID, g.ID, cs.CustomerID)
		if err != nil || active {
			continue
		}
		contact, err := o.contact(ctx, g.TenantID, cs.CustomerID)
		if err != nil || contact.Phone == "" {
			continue
		}

		out = append(out, Candidate{
			CustomerID:  cs.CustomerID,
			Name:        contact.Name,
			Phone:       contact.Phone,
			Segment:     cs.Segment,
			ChurnScore:  cs.ChurnScore,
			LTVTotal:    cs.LtvTotal,
			LastVisitAt: cs.LastVisitAt,
		})
	}
	return out
}

func (o *Orchestrator) contact(ctx context.Context, tenantID, customerID string) (Contact, error) {
	if o.directory == nil {
		return Contact{}, errors.New("no customer directory configured")
	}
	return o.directory.Contact(ctx, tenantID, customerID)
}

func (o *Orchestrator) composeMessage(ctx context.Context, g *ent.Gap, c ScoredCandidate) (string, string, error) {
	prompt := fmt.Sprintf(
		"Write a short WhatsApp message inviting %s to book a %d minute appointment with %s today at %s. "+
			"Friendly, one emoji at most, under 50 words, end with a yes/no question.",
		c.Name, g.DurationMinutes, g.StaffName, g.StartTime.Format("15:04"))

	resp, err := o.llm.Chat(ctx, llm.Request{
		System:    composeSystemPrompt,
		Prompt:    prompt,
		MaxTokens: composeMaxToken,
	})
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(resp.Content), resp.Model, nil
}

func (o *Orchestrator) dispatch(ctx context.Context, d *ent.Decision, gapID, customerID, name, phone, message string) error {
	ot, err := o.outreaches.Create(ctx, outreach.CreateInput{
		TenantID:      d.TenantID,
		DecisionID:    d.ID,
		CustomerID:    customerID,
		CustomerName:  name,
		CustomerPhone: phone,
		Type:          "gap_fill",
		Message:       message,
		TriggerID:     gapID,
		TriggerKind:   triggerKindGap,
	})
	if err != nil {
		if errors.Is(err, outreach.ErrPreconditionFailed) {
			o.logger.Info("outreach precondition blocked dispatch",
				slog.String("decision_id", d.ID),
				slog.String("reason", err.Error()))
			return nil
		}
		return err
	}

	if o.dispatcher == nil {
		return nil
	}
	return o.dispatcher.ScheduleOutreachSend(ctx, d.TenantID, ot.ID, string(entoutreach.ChannelWhatsapp), 0)
}

// DispatchApproved creates and enqueues the outreach for a supervised
// decision once its approval resolves to approved. The message composed at
// decision time rides in the action detail, so no second LLM call is made.
func (o *Orchestrator) DispatchApproved(ctx context.Context, tenantID, decisionID string) error {
	d, err := o.decisions.Get(ctx, tenantID, decisionID)
	if err != nil {
		return err
	}
	if d.ApprovalStatus != decision.ApprovalStatusApproved {
		return services.ErrStateConflict
	}

	message, _ := d.ActionDetail["message"].(string)
	name, _ := d.ActionDetail["customer_name"].(string)
	phone, _ := d.ActionDetail["customer_phone"].(string)
	if message == "" || phone == "" {
		return services.NewValidationError("action_detail", "decision is missing dispatch detail")
	}
	return o.dispatch(ctx, d, d.TriggerID, d.CustomerID, name, phone, message)
}

// OnReply attributes a customer's reply to the gap and decision behind the
// outreach. On accept the slot is booked in the scheduling service (unless
// the caller already carries a booking id), the gap is marked filled, the
// decision settles as success with the booking's revenue (falling back to
// the original potential), and the agent is credited.
func (o *Orchestrator) OnReply(ctx context.Context, ot *ent.Outreach, action, bookingID string, bookingAmount int64) error {
	if ot.TriggerKind != triggerKindGap {
		return nil
	}

	switch {
	case action == outreach.ActionAccept || strings.HasPrefix(action, "select_"):
		if bookingID == "" {
			b, err := o.createBooking(ctx, ot)
			if err != nil {
				o.logger.Warn("booking creation failed, gap stays open",
					slog.String("outreach_id", ot.ID),
					slog.String("gap_id", ot.TriggerID),
					slog.String("error", err.Error()))
				return err
			}
			bookingID, bookingAmount = b.ID, b.Amount
		}
		return o.attributeFill(ctx, ot, bookingID, bookingAmount)
	case action == outreach.ActionDecline:
		return o.settleDecisions(ctx, ot.TenantID, ot.TriggerID,
			decision.OutcomeStatusFailed, "customer declined", "", 0)
	default:
		return nil
	}
}

// createBooking books the accepted slot. The outreach id rides as source_ref
// so a webhook retry replaying the accept cannot double-book.
func (o *Orchestrator) createBooking(ctx context.Context, ot *ent.Outreach) (booking.Booking, error) {
	if o.bookings == nil {
		return booking.Booking{}, errors.New("no scheduling service configured")
	}

	g, err := o.gaps.Get(ctx, ot.TenantID, ot.TriggerID)
	if err != nil {
		return booking.Booking{}, err
	}

	serviceID := ""
	if ds, err := o.decisions.ByTrigger(ctx, ot.TenantID, ot.TriggerID); err == nil {
		for _, d := range ds {
			if d.CustomerID == ot.CustomerID && d.ServiceID != "" {
				serviceID = d.ServiceID
				break
			}
		}
	}
	if serviceID == "" && len(g.FittableServiceIds) > 0 {
		serviceID = g.FittableServiceIds[0]
	}

	return o.bookings.Create(ctx, ot.TenantID, booking.Request{
		CustomerID: ot.CustomerID,
		StaffID:    g.StaffID,
		ServiceID:  serviceID,
		StartTime:  g.StartTime,
		EndTime:    g.EndTime,
		Source:     "gap_fill",
		SourceRef:  ot.ID,
	})
}

func (o *Orchestrator) attributeFill(ctx context.Context, ot *ent.Outreach, bookingID string, bookingAmount int64) error {
	if err := o.gaps.MarkFilled(ctx, ot.TenantID, ot.TriggerID, bookingID, ot.CustomerID); err != nil {
		if errors.Is(err, services.ErrStateConflict) {
			return nil // already filled through another channel
		}
		return err
	}

	revenue := bookingAmount
	ds, err := o.decisions.ByTrigger(ctx, ot.TenantID, ot.TriggerID)
	if err != nil {
		return err
	}
	for _, d := range ds {
		if revenue == 0 {
			revenue = d.RevenuePotential
		}
		if err := o.decisions.ResolveOutcome(ctx, ot.TenantID, d.ID,
			decision.OutcomeStatusSuccess, "gap filled via outreach", bookingID, revenue); err != nil &&
			!errors.Is(err, services.ErrStateConflict) {
			o.logger.Warn("failed to settle decision outcome",
				slog.String("decision_id", d.ID),
				slog.String("error", err.Error()))
		}
	}

	if err := o.outreaches.AttachBooking(ctx, ot.TenantID, ot.ID, bookingID); err != nil {
		o.logger.Warn("failed to attach booking to outreach", slog.String("error", err.Error()))
	}
	if err := o.runtime.RecordRevenue(ctx, ot.TenantID, AgentName, revenue); err != nil {
		o.logger.Warn("failed to credit agent revenue", slog.String("error", err.Error()))
	}

	metrics.GapsFilledTotal.Inc()
	if o.publisher != nil {
		o.publisher.PublishBestEffort(ctx, ot.TenantID, events.TypeGapFilled, map[string]any{
			"gap_id":      ot.TriggerID,
			"booking_id":  bookingID,
			"customer_id": ot.CustomerID,
			"revenue":     revenue,
		})
	}
	return nil
}

// ReconcileExpired sweeps overdue open gaps: the gap goes expired, every
// in-flight outreach for its trigger expires, and its decisions settle as
// expired.
func (o *Orchestrator) ReconcileExpired(ctx context.Context) (int, error) {
	expired, err := o.gaps.ExpireOverdue(ctx, o.now().UTC())
	if err != nil {
		return 0, err
	}

	for _, g := range expired {
		if _, err := o.outreaches.ExpireByTrigger(ctx, g.TenantID, g.ID); err != nil {
			o.logger.Warn("failed to expire outreach for gap",
				slog.String("gap_id", g.ID),
				slog.String("error", err.Error()))
		}
		if err := o.settleDecisions(ctx, g.TenantID, g.ID,
			decision.OutcomeStatusExpired, "gap expired unfilled", "", 0); err != nil {
			o.logger.Warn("failed to settle decisions for expired gap",
				slog.String("gap_id", g.ID),
				slog.String("error", err.Error()))
		}
		if o.publisher != nil {
			o.publisher.PublishBestEffort(ctx, g.TenantID, events.TypeGapExpired, map[string]any{
				"gap_id":   g.ID,
				"staff_id": g.StaffID,
			})
		}
	}
	return len(expired), nil
}

func (o *Orchestrator) settleDecisions(ctx context.Context, tenantID, triggerID string, status decision.OutcomeStatus, result, bookingID string, revenue int64) error {
	ds, err := o.decisions.ByTrigger(ctx, tenantID, triggerID)
	if err != nil {
		return err
	}
	for _, d := range ds {
		if err := o.decisions.ResolveOutcome(ctx, tenantID, d.ID, status, result, bookingID, revenue); err != nil &&
			!errors.Is(err, services.ErrStateConflict) {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) autonomy() decision.Autonomy {
	if ac, ok := o.cfg.Agents[AgentName]; ok {
		switch ac.Autonomy {
		case "full_auto":
			return decision.AutonomyFullAuto
		case "manual_only":
			return decision.AutonomyManualOnly
		}
	}
	return decision.AutonomySupervised
}

func approvalPriority(p entgap.Priority) entapproval.Priority {
	switch p {
	case entgap.PriorityCritical:
		return entapproval.PriorityUrgent
	case entgap.PriorityHigh:
		return entapproval.PriorityHigh
	case entgap.PriorityLow:
		return entapproval.PriorityLow
	default:
		return entapproval.PriorityMedium
	}
}
