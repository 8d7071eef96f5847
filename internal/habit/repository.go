// AngelaMos | 2026
// repository.go

package habit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quitwise/api/internal/core"
)

type Repository interface {
	GetByUser(ctx context.Context, userID string) (*SmokingHabit, error)
	Upsert(ctx context.Context, habit *SmokingHabit) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(
	ctx context.Context,
	userID string,
) (*SmokingHabit, error) {
	query := `
		SELECT id, user_id, cigarettes_per_day, cigarettes_per_pack,
		       price_per_pack, smoke_years, created_at, updated_at, deleted_at
		FROM smoking_habits
		WHERE user_id = $1 AND deleted_at IS NULL`

	var habit SmokingHabit
	err := r.db.GetContext(ctx, &habit, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get smoking habit: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get smoking habit: %w", err)
	}

	return &habit, nil
}

func (r *repository) Upsert(ctx context.Context, habit *SmokingHabit) error {
	query := `
		INSERT INTO smoking_habits (
			id, user_id, cigarettes_per_day, cigarettes_per_pack,
			price_per_pack, smoke_years
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) WHERE deleted_at IS NULL
		DO UPDATE SET
			cigarettes_per_day  = EXCLUDED.cigarettes_per_day,
			cigarettes_per_pack = EXCLUDED.cigarettes_per_pack,
			price_per_pack      = EXCLUDED.price_per_pack,
			smoke_years         = EXCLUDED.smoke_years,
			updated_at          = NOW()
		RETURNING id, created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query,
		habit.ID,
		habit.UserID,
		habit.CigarettesPerDay,
		habit.CigarettesPerPack,
		habit.PricePerPack,
		habit.SmokeYears,
	)

	if err := row.Scan(&habit.ID, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		return fmt.Errorf("upsert smoking habit: %w", err)
	}

	return nil
}
