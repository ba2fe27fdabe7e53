package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/gap"
)

// CreateGapInput is the payload of the external detection job.
type CreateGapInput struct {
	TenantID           string
	StaffID            string
	StaffName          string
	Date               string // tenant-local day, YYYY-MM-DD
	StartTime          time.Time
	EndTime            time.Time
	PotentialRevenue   int64
	FittableServiceIDs []string
}

// GapService owns the Gap records.
type GapService struct {
	client *ent.Client
}

// NewGapService creates a new GapService.
func NewGapService(client *ent.Client) *GapService {
	if client == nil {
		panic("NewGapService: client must not be nil")
	}
	return &GapService{client: client}
}

// Create records a detected gap. Priority derives from duration.
func (s *GapService) Create(ctx context.Context, input CreateGapInput) (*ent.Gap, error) {
	if input.TenantID == "" {
		return nil, NewValidationError("tenant_id", "tenant id is required")
	}
	if input.StaffID == "" {
		return nil, NewValidationError("staff_id", "staff id is required")
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, NewValidationError("end_time", "end time must be after start time")
	}

	duration := int(input.EndTime.Sub(input.StartTime).Minutes())

	g, err := s.client.Gap.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetStaffID(input.StaffID).
		SetStaffName(input.StaffName).
		SetDate(input.Date).
		SetStartTime(input.StartTime).
		SetEndTime(input.EndTime).
		SetDurationMinutes(duration).
		SetPriority(PriorityForDuration(duration)).
		SetPotentialRevenue(input.PotentialRevenue).
		SetFittableServiceIds(input.FittableServiceIDs).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create gap: %w", err)
	}
	return g, nil
}

// PriorityForDuration derives gap priority from its length in minutes:
// <30 low, 30-59 medium, 60-119 high, >=120 critical.
func PriorityForDuration(minutes int) gap.Priority {
	switch {
	case minutes >= 120:
		return gap.PriorityCritical
	case minutes >= 60:
		return gap.PriorityHigh
	case minutes >= 30:
		return gap.PriorityMedium
	default:
		return gap.PriorityLow
	}
}

// Get returns one gap within the tenant.
func (s *GapService) Get(ctx context.Context, tenantID, gapID string) (*ent.Gap, error) {
	g, err := s.client.Gap.Query().
		Where(gap.IDEQ(gapID), gap.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gap: %w", err)
	}
	return g, nil
}

// OpenGaps returns a tenant's fillable gaps for the given tenant-local day:
// open, at least minDuration minutes long, longest first.
func (s *GapService) OpenGaps(ctx context.Context, tenantID, date string, minDuration int) ([]*ent.Gap, error) {
	gs, err := s.client.Gap.Query().
		Where(
			gap.TenantIDEQ(tenantID),
			gap.StatusEQ(gap.StatusOpen),
			gap.DateEQ(date),
			gap.DurationMinutesGTE(minDuration),
		).
		Order(ent.Desc(gap.FieldDurationMinutes)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query open gaps: %w", err)
	}
	return gs, nil
}

// RecordFillAttempt bumps the attempt counter on an open gap.
func (s *GapService) RecordFillAttempt(ctx context.Context, tenantID, gapID string) error {
	n, err := s.client.Gap.Update().
		Where(gap.IDEQ(gapID), gap.TenantIDEQ(tenantID), gap.StatusEQ(gap.StatusOpen)).
		AddFillAttempts(1).
		SetLastAttemptAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record fill attempt: %w", err)
	}
	if n == 0 {
		return ErrStateConflict
	}
	return nil
}

// MarkFilled moves an open gap to filled with booking attribution. The first
// fill wins; a second caller gets ErrStateConflict.
func (s *GapService) MarkFilled(ctx context.Context, tenantID, gapID, bookingID, customerID string) error {
	n, err := s.client.Gap.Update().
		Where(gap.IDEQ(gapID), gap.TenantIDEQ(tenantID), gap.StatusEQ(gap.StatusOpen)).
		SetStatus(gap.StatusFilled).
		SetFilledByBookingID(bookingID).
		SetFilledByCustomerID(customerID).
		SetFilledAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark gap filled: %w", err)
	}
	if n == 0 {
		return ErrStateConflict
	}
	return nil
}

// ExpireOverdue moves open gaps whose end time has passed to expired.
// Returns the expired gaps so the caller can reconcile their decisions.
func (s *GapService) ExpireOverdue(ctx context.Context, now time.Time) ([]*ent.Gap, error) {
	overdue, err := s.client.Gap.Query().
		Where(gap.StatusEQ(gap.StatusOpen), gap.EndTimeLT(now)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue gaps: %w", err)
	}
	if len(overdue) == 0 {
		return nil, nil
	}

	ids := make([]string, len(overdue))
	for i, g := range overdue {
		ids[i] = g.ID
	}
	_, err = s.client.Gap.Update().
		Where(gap.IDIn(ids...), gap.StatusEQ(gap.StatusOpen)).
		SetStatus(gap.StatusExpired).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire gaps: %w", err)
	}
	return overdue, nil
}
