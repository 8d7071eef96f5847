// AngelaMos | 2026
// service.go

package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quitwise/api/internal/clock"
	"github.com/quitwise/api/internal/core"
	"github.com/quitwise/api/internal/phase"
	"github.com/quitwise/api/internal/record"
)

type Service struct {
	db        *sqlx.DB
	plans     Repository
	phases    phase.Repository
	records   record.Repository
	clk       clock.Clock
	threshold float64
}

func NewService(
	db *sqlx.DB,
	plans Repository,
	phases phase.Repository,
	records record.Repository,
	clk clock.Clock,
	threshold float64,
) *Service {
	return &Service{
		db:        db,
		plans:     plans,
		phases:    phases,
		records:   records,
		clk:       clk,
		threshold: threshold,
	}
}

// Create persists a plan together with its pre-generated phases. A user
// can hold at most one active plan; a second one is rejected before any
// write happens.
func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreatePlanRequest,
) (*PlanResponse, error) {
	_, err := s.plans.FindActiveByUser(ctx, userID)
	switch {
	case err == nil:
		return nil, fmt.Errorf(
			"create plan: user already has an active plan: %w",
			core.ErrDuplicateKey,
		)
	case !errors.Is(err, core.ErrNotFound):
		return nil, fmt.Errorf("create plan: %w", err)
	}

	p, phases, err := buildPlanEntities(userID, req)
	if err != nil {
		return nil, err
	}

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return NewRepository(tx).Create(ctx, p, phases)
	})
	if err != nil {
		return nil, err
	}

	return s.assembleView(p, phases, nil), nil
}

func buildPlanEntities(
	userID string,
	req CreatePlanRequest,
) (*Plan, []phase.Phase, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"create plan: bad start date: %w",
			core.ErrInvalidInput,
		)
	}

	endDate, err := time.Parse(dateLayout, req.ExpectedEndDate)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"create plan: bad end date: %w",
			core.ErrInvalidInput,
		)
	}

	if endDate.Before(startDate) {
		return nil, nil, fmt.Errorf(
			"create plan: end date precedes start date: %w",
			core.ErrInvalidInput,
		)
	}

	p := &Plan{
		ID:              uuid.New().String(),
		UserID:          userID,
		StartDate:       startDate,
		ExpectedEndDate: endDate,
		TotalDays:       req.TotalDays,
		TotalPhases:     len(req.Phases),
		Status:          StatusActive,
		Reason:          req.Reason,
		PlanType:        req.PlanType,
	}

	phases := make([]phase.Phase, 0, len(req.Phases))
	for _, phReq := range req.Phases {
		phStart, err := time.Parse(dateLayout, phReq.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"create plan: bad phase %d start date: %w",
				phReq.PhaseNumber,
				core.ErrInvalidInput,
			)
		}

		var phEnd *time.Time
		if phReq.ExpectedEndDate != nil {
			parsed, err := time.Parse(dateLayout, *phReq.ExpectedEndDate)
			if err != nil {
				return nil, nil, fmt.Errorf(
					"create plan: bad phase %d end date: %w",
					phReq.PhaseNumber,
					core.ErrInvalidInput,
				)
			}
			if parsed.Before(phStart) {
				return nil, nil, fmt.Errorf(
					"create plan: phase %d end precedes start: %w",
					phReq.PhaseNumber,
					core.ErrInvalidInput,
				)
			}
			phEnd = &parsed
		}

		phases = append(phases, phase.Phase{
			ID:              uuid.New().String(),
			PlanID:          p.ID,
			UserID:          userID,
			PhaseNumber:     phReq.PhaseNumber,
			LimitPerDay:     phReq.LimitPerDay,
			StartDate:       phStart,
			ExpectedEndDate: phEnd,
			Status:          phase.StatusPending,
		})
	}

	return p, phases, nil
}

func (s *Service) GetActive(
	ctx context.Context,
	userID string,
) (*PlanResponse, error) {
	p, err := s.plans.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.buildView(ctx, p)
}

func (s *Service) Get(
	ctx context.Context,
	id, userID string,
) (*PlanResponse, error) {
	p, err := s.plans.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return s.buildView(ctx, p)
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	id, userID string,
	status Status,
) error {
	return s.plans.UpdateStatus(ctx, id, userID, status)
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return NewRepository(tx).SoftDelete(ctx, id, userID)
	})
}

// RecomputePhaseStatus rederives a phase's status from its records and
// persists the result into the cached label.
func (s *Service) RecomputePhaseStatus(
	ctx context.Context,
	planID, phaseID, userID string,
) (*PhaseResponse, error) {
	ph, err := s.phases.GetByID(ctx, phaseID, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.records.ListByPhase(ctx, planID, phaseID, userID)
	if err != nil {
		return nil, err
	}

	today := s.clk.Today()
	derived := ph.DeriveStatus(records, today, s.threshold)

	if derived != ph.Status {
		if err := s.phases.UpdateStatus(ctx, phaseID, derived); err != nil {
			return nil, err
		}
		ph.Status = derived
	}

	view := s.phaseView(ph, records, today)
	return &view, nil
}

// buildView assembles the full plan view model: every phase carries its
// recomputed status and statistics, never the stored label.
func (s *Service) buildView(
	ctx context.Context,
	p *Plan,
) (*PlanResponse, error) {
	phases, err := s.phases.ListByPlan(ctx, p.ID, p.UserID)
	if err != nil {
		return nil, err
	}

	records, err := s.records.ListByPlan(ctx, p.ID, p.UserID)
	if err != nil {
		return nil, err
	}

	return s.assembleView(p, phases, records), nil
}

func (s *Service) assembleView(
	p *Plan,
	phases []phase.Phase,
	records []record.DailyRecord,
) *PlanResponse {
	today := s.clk.Today()

	byPhase := make(map[string][]record.DailyRecord, len(phases))
	for _, rec := range records {
		byPhase[rec.PhaseID] = append(byPhase[rec.PhaseID], rec)
	}

	phaseViews := make([]PhaseResponse, 0, len(phases))
	for i := range phases {
		ph := &phases[i]
		phaseViews = append(
			phaseViews,
			s.phaseView(ph, byPhase[ph.ID], today),
		)
	}

	return &PlanResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		StartDate:       formatDay(p.StartDate),
		ExpectedEndDate: formatDay(p.ExpectedEndDate),
		TotalDays:       p.TotalDays,
		TotalPhases:     p.TotalPhases,
		Status:          p.Status,
		Reason:          p.Reason,
		PlanType:        p.PlanType,
		Phases:          phaseViews,
		Progress:        p.ComputeProgress(phases, records, today, s.threshold),
		Statistics:      p.ComputeStatistics(records, today),
		CreatedAt:       p.CreatedAt,
	}
}

func (s *Service) phaseView(
	ph *phase.Phase,
	records []record.DailyRecord,
	today time.Time,
) PhaseResponse {
	return PhaseResponse{
		ID:              ph.ID,
		PhaseNumber:     ph.PhaseNumber,
		LimitPerDay:     ph.LimitPerDay,
		StartDate:       formatDay(ph.StartDate),
		ExpectedEndDate: formatDayPtr(ph.ExpectedEndDate),
		Status:          ph.DeriveStatus(records, today, s.threshold),
		Duration:        ph.Duration(),
		RemainingDays:   ph.RemainingDays(today),
		Statistics:      ph.ComputeStatistics(records, today, s.threshold),
	}
}
