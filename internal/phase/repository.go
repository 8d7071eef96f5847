// AngelaMos | 2026
// repository.go

package phase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quitwise/api/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id, userID string) (*Phase, error)
	// FindActive returns the phase whose date window covers the given
	// day, or core.ErrNotFound when no phase is in progress.
	FindActive(
		ctx context.Context,
		planID, userID string,
		day time.Time,
	) (*Phase, error)
	ListByPlan(ctx context.Context, planID, userID string) ([]Phase, error)
	// UpdateStatus persists the recomputed status label. The label is a
	// cache; read paths always rederive.
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const phaseColumns = `id, plan_id, user_id, phase_number,
       limit_cigarettes_per_day, start_date, expected_end_date, status,
       created_at, updated_at, deleted_at`

func (r *repository) GetByID(
	ctx context.Context,
	id, userID string,
) (*Phase, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM plan_phases
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, phaseColumns)

	var p Phase
	err := r.db.GetContext(ctx, &p, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get phase: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get phase: %w", err)
	}

	return &p, nil
}

func (r *repository) FindActive(
	ctx context.Context,
	planID, userID string,
	day time.Time,
) (*Phase, error) {
	// Phase windows within a plan are generated without gaps or
	// overlaps; if that ever breaks, the earliest phase wins.
	query := fmt.Sprintf(`
		SELECT %s
		FROM plan_phases
		WHERE plan_id = $1 AND user_id = $2
		  AND start_date <= $3
		  AND (expected_end_date IS NULL OR expected_end_date >= $3)
		  AND deleted_at IS NULL
		ORDER BY phase_number ASC
		LIMIT 1`, phaseColumns)

	var p Phase
	err := r.db.GetContext(ctx, &p, query, planID, userID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find active phase: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find active phase: %w", err)
	}

	return &p, nil
}

func (r *repository) ListByPlan(
	ctx context.Context,
	planID, userID string,
) ([]Phase, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM plan_phases
		WHERE plan_id = $1 AND user_id = $2 AND deleted_at IS NULL
		ORDER BY phase_number ASC`, phaseColumns)

	var phases []Phase
	if err := r.db.SelectContext(ctx, &phases, query, planID, userID); err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}

	return phases, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id string,
	status Status,
) error {
	query := `
		UPDATE plan_phases
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update phase status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update phase status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update phase status: %w", core.ErrNotFound)
	}

	return nil
}
