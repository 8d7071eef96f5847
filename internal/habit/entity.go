// AngelaMos | 2026
// entity.go

package habit

import (
	"time"

	"github.com/shopspring/decimal"
)

// SmokingHabit is the user's pre-quit baseline. The check-in engine
// prices every saved cigarette against it.
type SmokingHabit struct {
	ID                string          `db:"id"`
	UserID            string          `db:"user_id"`
	CigarettesPerDay  int             `db:"cigarettes_per_day"`
	CigarettesPerPack int             `db:"cigarettes_per_pack"`
	PricePerPack      decimal.Decimal `db:"price_per_pack"`
	SmokeYears        *int            `db:"smoke_years"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
	DeletedAt         *time.Time      `db:"deleted_at"`
}

func (h *SmokingHabit) IsDeleted() bool {
	return h.DeletedAt != nil
}
