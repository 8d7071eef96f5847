// AngelaMos | 2026
// repository.go

package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quitwise/api/internal/core"
)

type Repository interface {
	FindForDate(
		ctx context.Context,
		userID, planID, phaseID string,
		day time.Time,
	) (*DailyRecord, error)
	Upsert(ctx context.Context, rec *DailyRecord) error
	ListByPhase(
		ctx context.Context,
		planID, phaseID, userID string,
	) ([]DailyRecord, error)
	ListByPlan(ctx context.Context, planID, userID string) ([]DailyRecord, error)
	ListByUser(ctx context.Context, userID string) ([]DailyRecord, error)
	SoftDelete(ctx context.Context, id, userID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const recordColumns = `id, user_id, plan_id, phase_id, record_date,
       cigarette_smoke, money_saved, craving_level, health_status, is_pass,
       created_at, updated_at, deleted_at`

func (r *repository) FindForDate(
	ctx context.Context,
	userID, planID, phaseID string,
	day time.Time,
) (*DailyRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM daily_records
		WHERE user_id = $1
		  AND plan_id = $2
		  AND phase_id = $3
		  AND record_date = $4
		  AND deleted_at IS NULL`, recordColumns)

	var rec DailyRecord
	err := r.db.GetContext(ctx, &rec, query, userID, planID, phaseID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find record for date: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find record for date: %w", err)
	}

	return &rec, nil
}

// Upsert writes a day's record under the unique
// (user_id, plan_id, phase_id, record_date) key. A second submission for
// the same day updates the existing row in place, so two concurrent
// check-ins can never produce duplicates.
func (r *repository) Upsert(ctx context.Context, rec *DailyRecord) error {
	query := `
		INSERT INTO daily_records (
			id, user_id, plan_id, phase_id, record_date,
			cigarette_smoke, money_saved, craving_level, health_status, is_pass
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, plan_id, phase_id, record_date)
			WHERE deleted_at IS NULL
		DO UPDATE SET
			cigarette_smoke = EXCLUDED.cigarette_smoke,
			money_saved     = EXCLUDED.money_saved,
			craving_level   = EXCLUDED.craving_level,
			health_status   = EXCLUDED.health_status,
			is_pass         = EXCLUDED.is_pass,
			updated_at      = NOW()
		RETURNING id, created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.PlanID,
		rec.PhaseID,
		rec.RecordDate,
		rec.CigaretteSmoke,
		rec.MoneySaved,
		rec.CravingLevel,
		rec.HealthStatus,
		rec.IsPass,
	)

	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}

	return nil
}

func (r *repository) ListByPhase(
	ctx context.Context,
	planID, phaseID, userID string,
) ([]DailyRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM daily_records
		WHERE plan_id = $1 AND phase_id = $2 AND user_id = $3
		  AND deleted_at IS NULL
		ORDER BY record_date ASC`, recordColumns)

	var records []DailyRecord
	err := r.db.SelectContext(ctx, &records, query, planID, phaseID, userID)
	if err != nil {
		return nil, fmt.Errorf("list records by phase: %w", err)
	}

	return records, nil
}

func (r *repository) ListByPlan(
	ctx context.Context,
	planID, userID string,
) ([]DailyRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM daily_records
		WHERE plan_id = $1 AND user_id = $2 AND deleted_at IS NULL
		ORDER BY record_date ASC`, recordColumns)

	var records []DailyRecord
	err := r.db.SelectContext(ctx, &records, query, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("list records by plan: %w", err)
	}

	return records, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]DailyRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM daily_records
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY record_date ASC`, recordColumns)

	var records []DailyRecord
	err := r.db.SelectContext(ctx, &records, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list records by user: %w", err)
	}

	return records, nil
}

func (r *repository) SoftDelete(ctx context.Context, id, userID string) error {
	query := `
		UPDATE daily_records
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete record: %w", core.ErrNotFound)
	}

	return nil
}
