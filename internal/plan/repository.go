// AngelaMos | 2026
// repository.go

package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quitwise/api/internal/core"
	"github.com/quitwise/api/internal/phase"
)

type Repository interface {
	Create(ctx context.Context, p *Plan, phases []phase.Phase) error
	GetByID(ctx context.Context, id, userID string) (*Plan, error)
	// FindActiveByUser returns the user's single active plan, or
	// core.ErrNotFound. One active plan per user is enforced on the
	// write path.
	FindActiveByUser(ctx context.Context, userID string) (*Plan, error)
	UpdateStatus(ctx context.Context, id, userID string, status Status) error
	// SoftDelete tombstones the plan together with its phases and
	// records. Callers run it inside a transaction.
	SoftDelete(ctx context.Context, id, userID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const planColumns = `id, user_id, start_date, expected_end_date, total_days,
       total_phases, status, reason, plan_type,
       created_at, updated_at, deleted_at`

func (r *repository) Create(
	ctx context.Context,
	p *Plan,
	phases []phase.Phase,
) error {
	query := `
		INSERT INTO quit_plans (
			id, user_id, start_date, expected_end_date, total_days,
			total_phases, status, reason, plan_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query,
		p.ID,
		p.UserID,
		p.StartDate,
		p.ExpectedEndDate,
		p.TotalDays,
		p.TotalPhases,
		p.Status,
		p.Reason,
		p.PlanType,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("create plan: %w", err)
	}

	phaseQuery := `
		INSERT INTO plan_phases (
			id, plan_id, user_id, phase_number,
			limit_cigarettes_per_day, start_date, expected_end_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	for i := range phases {
		ph := &phases[i]
		row := r.db.QueryRowxContext(ctx, phaseQuery,
			ph.ID,
			ph.PlanID,
			ph.UserID,
			ph.PhaseNumber,
			ph.LimitPerDay,
			ph.StartDate,
			ph.ExpectedEndDate,
			ph.Status,
		)
		if err := row.Scan(&ph.CreatedAt, &ph.UpdatedAt); err != nil {
			return fmt.Errorf("create plan phase %d: %w", ph.PhaseNumber, err)
		}
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id, userID string,
) (*Plan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM quit_plans
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, planColumns)

	var p Plan
	err := r.db.GetContext(ctx, &p, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plan: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	return &p, nil
}

func (r *repository) FindActiveByUser(
	ctx context.Context,
	userID string,
) (*Plan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM quit_plans
		WHERE user_id = $1 AND status = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`, planColumns)

	var p Plan
	err := r.db.GetContext(ctx, &p, query, userID, StatusActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find active plan: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find active plan: %w", err)
	}

	return &p, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, userID string,
	status Status,
) error {
	query := `
		UPDATE quit_plans
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, userID, status)
	if err != nil {
		return fmt.Errorf("update plan status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update plan status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update plan status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SoftDelete(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE quit_plans
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, id, userID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete plan: %w", core.ErrNotFound)
	}

	if _, err := r.db.ExecContext(ctx, `
		UPDATE plan_phases
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE plan_id = $1 AND user_id = $2 AND deleted_at IS NULL`, id, userID); err != nil {
		return fmt.Errorf("delete plan phases: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `
		UPDATE daily_records
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE plan_id = $1 AND user_id = $2 AND deleted_at IS NULL`, id, userID); err != nil {
		return fmt.Errorf("delete plan records: %w", err)
	}

	return nil
}
