// AngelaMos | 2026
// service.go

package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quitwise/api/internal/clock"
	"github.com/quitwise/api/internal/core"
	"github.com/quitwise/api/internal/habit"
	"github.com/quitwise/api/internal/phase"
	"github.com/quitwise/api/internal/plan"
	"github.com/quitwise/api/internal/record"
)

type Service struct {
	plans   plan.Repository
	phases  phase.Repository
	records record.Repository
	habits  habit.Repository
	clk     clock.Clock
}

func NewService(
	plans plan.Repository,
	phases phase.Repository,
	records record.Repository,
	habits habit.Repository,
	clk clock.Clock,
) *Service {
	return &Service{
		plans:   plans,
		phases:  phases,
		records: records,
		habits:  habits,
		clk:     clk,
	}
}

// Submit runs the daily check-in: resolve the active plan, the phase in
// progress and the habit baseline, gate on the date being exactly today
// in the reference timezone, then upsert the day's record with its
// derived fields computed before any write happens. Re-submitting the
// same day overwrites that day's metrics; it never creates a duplicate.
func (s *Service) Submit(
	ctx context.Context,
	userID string,
	req SubmitCheckinRequest,
) (*RecordResponse, error) {
	today := s.clk.Today()

	activePlan, err := s.plans.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("submit check-in: %w", core.ErrNoActivePlan)
		}
		return nil, err
	}

	activePhase, err := s.phases.FindActive(ctx, activePlan.ID, userID, today)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("submit check-in: %w", core.ErrNoActivePhase)
		}
		return nil, err
	}

	baseline, err := s.habits.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf(
				"submit check-in: %w",
				core.ErrMissingHabitProfile,
			)
		}
		return nil, err
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf(
			"submit check-in: bad date %q: %w",
			req.Date,
			core.ErrInvalidInput,
		)
	}

	// Neither backfill nor advance logging: the report must be for
	// today's calendar day in the reference timezone.
	if !clock.SameDay(day, today) {
		return nil, fmt.Errorf("submit check-in: %w", core.ErrInvalidCheckinDate)
	}

	smoked := req.CigaretteSmoke
	if smoked < 0 {
		smoked = 0
	}

	rec := &record.DailyRecord{
		ID:             uuid.New().String(),
		UserID:         userID,
		PlanID:         activePlan.ID,
		PhaseID:        activePhase.ID,
		RecordDate:     clock.DateOnly(day),
		CigaretteSmoke: smoked,
		MoneySaved: record.ComputeMoneySaved(
			smoked,
			baseline.CigarettesPerDay,
			baseline.PricePerPack,
			baseline.CigarettesPerPack,
		),
		CravingLevel: req.CravingLevel,
		HealthStatus: req.HealthStatus,
		IsPass:       record.ComputeIsPass(smoked, activePhase.LimitPerDay),
	}

	if err := s.records.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	response := toRecordResponse(rec, today)
	return &response, nil
}

// ListByPhase projects a phase's records with their derived flags
// recomputed against today.
func (s *Service) ListByPhase(
	ctx context.Context,
	userID, planID, phaseID string,
) ([]RecordResponse, error) {
	records, err := s.records.ListByPhase(ctx, planID, phaseID, userID)
	if err != nil {
		return nil, err
	}

	return toRecordResponseList(records, s.clk.Today()), nil
}

func (s *Service) ListByPlan(
	ctx context.Context,
	userID, planID string,
) ([]RecordResponse, error) {
	records, err := s.records.ListByPlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	return toRecordResponseList(records, s.clk.Today()), nil
}

func (s *Service) ListAll(
	ctx context.Context,
	userID string,
) ([]RecordResponse, error) {
	records, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toRecordResponseList(records, s.clk.Today()), nil
}
