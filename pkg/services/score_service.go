package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/customerscore"
)

// Segment thresholds in minor currency units.
const (
	vipLTVThreshold       = int64(50_000_00)
	highValueLTVThreshold = int64(20_000_00)
	dormantAfter          = 120 * 24 * time.Hour
	newCustomerWindow     = 60 * 24 * time.Hour
)

// UpsertScoreInput carries the recomputed scoring inputs for one customer.
type UpsertScoreInput struct {
	TenantID              string
	CustomerID            string
	LTVTotal              int64
	LTVProjected          int64
	AvgVisitValue         int64
	VisitFrequencyMonthly float64
	EstLifespanMonths     float64
	MembershipBonus       bool
	Engagement            map[string]interface{}
	ChurnScore            int
	ChurnFactors          []string
	LastVisitAt           *time.Time
}

// ScoreService owns the CustomerScore projection.
type ScoreService struct {
	client *ent.Client
	now    func() time.Time
}

// NewScoreService creates a new ScoreService.
func NewScoreService(client *ent.Client) *ScoreService {
	if client == nil {
		panic("NewScoreService: client must not be nil")
	}
	return &ScoreService{client: client, now: time.Now}
}

// Upsert writes a customer's score, deriving churn level and segment from the
// numeric inputs. Keyed by the unique (tenant_id, customer_id) index.
func (s *ScoreService) Upsert(ctx context.Context, input UpsertScoreInput) (*ent.CustomerScore, error) {
	if input.TenantID == "" {
		return nil, NewValidationError("tenant_id", "tenant id is required")
	}
	if input.CustomerID == "" {
		return nil, NewValidationError("customer_id", "customer id is required")
	}
	if input.ChurnScore < 0 || input.ChurnScore > 100 {
		return nil, NewValidationError("churn_score", "churn score must be in [0, 100]")
	}

	now := s.now().UTC()
	churnLevel := ChurnLevelForScore(input.ChurnScore)

	existing, err := s.client.CustomerScore.Query().
		Where(
			customerscore.TenantIDEQ(input.TenantID),
			customerscore.CustomerIDEQ(input.CustomerID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query customer score: %w", err)
	}

	var createdAt time.Time
	if existing != nil {
		createdAt = existing.CreatedAt
	} else {
		createdAt = now
	}
	segment := DeriveSegment(input.LTVTotal, churnLevel, input.LastVisitAt, createdAt, now)

	if existing == nil {
		cs, err := s.client.CustomerScore.Create().
			SetID(uuid.New().String()).
			SetTenantID(input.TenantID).
			SetCustomerID(input.CustomerID).
			SetLtvTotal(input.LTVTotal).
			SetLtvProjected(input.LTVProjected).
			SetAvgVisitValue(input.AvgVisitValue).
			SetVisitFrequencyMonthly(input.VisitFrequencyMonthly).
			SetEstLifespanMonths(input.EstLifespanMonths).
			SetMembershipBonus(input.MembershipBonus).
			SetEngagement(input.Engagement).
			SetChurnScore(input.ChurnScore).
			SetChurnLevel(churnLevel).
			SetChurnFactors(input.ChurnFactors).
			SetSegment(segment).
			SetNillableLastVisitAt(input.LastVisitAt).
			SetComputedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create customer score: %w", err)
		}
		return cs, nil
	}

	cs, err := existing.Update().
		SetLtvTotal(input.LTVTotal).
		SetLtvProjected(input.LTVProjected).
		SetAvgVisitValue(input.AvgVisitValue).
		SetVisitFrequencyMonthly(input.VisitFrequencyMonthly).
		SetEstLifespanMonths(input.EstLifespanMonths).
		SetMembershipBonus(input.MembershipBonus).
		SetEngagement(input.Engagement).
		SetChurnScore(input.ChurnScore).
		SetChurnLevel(churnLevel).
		SetChurnFactors(input.ChurnFactors).
		SetSegment(segment).
		SetNillableLastVisitAt(input.LastVisitAt).
		SetComputedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer score: %w", err)
	}
	return cs, nil
}

// ChurnLevelForScore maps a 0-100 churn score onto the level enum.
func ChurnLevelForScore(score int) customerscore.ChurnLevel {
	switch {
	case score >= 80:
		return customerscore.ChurnLevelCritical
	case score >= 60:
		return customerscore.ChurnLevelHigh
	case score >= 40:
		return customerscore.ChurnLevelMedium
	default:
		return customerscore.ChurnLevelLow
	}
}

// DeriveSegment classifies a customer. Dormancy dominates, then churn risk,
// then lifetime value, then tenure.
func DeriveSegment(ltvTotal int64, churnLevel customerscore.ChurnLevel, lastVisitAt *time.Time, createdAt, now time.Time) customerscore.Segment {
	if lastVisitAt != nil && now.Sub(*lastVisitAt) > dormantAfter {
		return customerscore.SegmentDormant
	}
	if churnLevel == customerscore.ChurnLevelHigh || churnLevel == customerscore.ChurnLevelCritical {
		return customerscore.SegmentAtRisk
	}
	if ltvTotal >= vipLTVThreshold {
		return customerscore.SegmentVip
	}
	if ltvTotal >= highValueLTVThreshold {
		return customerscore.SegmentHighValue
	}
	if now.Sub(createdAt) < newCustomerWindow {
		return customerscore.SegmentNew
	}
	return customerscore.SegmentRegular
}

// Get returns one customer's score.
func (s *ScoreService) Get(ctx context.Context, tenantID, customerID string) (*ent.CustomerScore, error) {
	cs, err := s.client.CustomerScore.Query().
		Where(
			customerscore.TenantIDEQ(tenantID),
			customerscore.CustomerIDEQ(customerID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer score: %w", err)
	}
	return cs, nil
}

// ChurnRiskCandidates returns up to limit customers with churn level medium
// or above, most at-risk first.
func (s *ScoreService) ChurnRiskCandidates(ctx context.Context, tenantID string, limit int) ([]*ent.CustomerScore, error) {
	cs, err := s.client.CustomerScore.Query().
		Where(
			customerscore.TenantIDEQ(tenantID),
			customerscore.ChurnLevelIn(
				customerscore.ChurnLevelMedium,
				customerscore.ChurnLevelHigh,
				customerscore.ChurnLevelCritical,
			),
		).
		Order(ent.Desc(customerscore.FieldChurnScore)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query churn candidates: %w", err)
	}
	return cs, nil
}

// SegmentCandidates returns up to limit customers of one segment, highest
// lifetime value first.
func (s *ScoreService) SegmentCandidates(ctx context.Context, tenantID string, segment customerscore.Segment, limit int) ([]*ent.CustomerScore, error) {
	cs, err := s.client.CustomerScore.Query().
		Where(
			customerscore.TenantIDEQ(tenantID),
			customerscore.SegmentEQ(segment),
		).
		Order(ent.Desc(customerscore.FieldLtvTotal)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment candidates: %w", err)
	}
	return cs, nil
}

// RecomputeSweep re-derives churn level and segment for scores not touched
// since the cutoff. Runs on the daily cron; per-visit recomputes come through
// Upsert. Returns the number of records refreshed.
func (s *ScoreService) RecomputeSweep(ctx context.Context, cutoff time.Time) (int, error) {
	stale, err := s.client.CustomerScore.Query().
		Where(customerscore.ComputedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale scores: %w", err)
	}

	now := s.now().UTC()
	refreshed := 0
	for _, cs := range stale {
		churnLevel := ChurnLevelForScore(cs.ChurnScore)
		segment := DeriveSegment(cs.LtvTotal, churnLevel, cs.LastVisitAt, cs.CreatedAt, now)
		_, err := cs.Update().
			SetChurnLevel(churnLevel).
			SetSegment(segment).
			SetComputedAt(now).
			Save(ctx)
		if err != nil {
			return refreshed, fmt.Errorf("failed to refresh score %s: %w", cs.ID, err)
		}
		refreshed++
	}
	return refreshed, nil
}
