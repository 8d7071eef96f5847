// AngelaMos | 2026
// entity.go

package record

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quitwise/api/internal/clock"
)

// DailyRecord is one user's report for one calendar day within one phase.
// MoneySaved and IsPass are derived at write time from the habit baseline
// and the phase limit; they are stored, but recomputable.
type DailyRecord struct {
	ID             string          `db:"id"`
	UserID         string          `db:"user_id"`
	PlanID         string          `db:"plan_id"`
	PhaseID        string          `db:"phase_id"`
	RecordDate     time.Time       `db:"record_date"`
	CigaretteSmoke int             `db:"cigarette_smoke"`
	MoneySaved     decimal.Decimal `db:"money_saved"`
	CravingLevel   *int            `db:"craving_level"`
	HealthStatus   *string         `db:"health_status"`
	IsPass         bool            `db:"is_pass"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

// ComputeMoneySaved returns the amount not spent on a day where `smoked`
// cigarettes were consumed against a baseline of `baselinePerDay`. The
// result is rounded half-up to two decimal places and never negative.
// Unusable pricing inputs yield zero rather than an error.
func ComputeMoneySaved(
	smoked, baselinePerDay int,
	pricePerPack decimal.Decimal,
	cigarettesPerPack int,
) decimal.Decimal {
	if cigarettesPerPack <= 0 || pricePerPack.IsNegative() {
		return decimal.Zero
	}

	avoided := baselinePerDay - smoked
	if avoided <= 0 {
		return decimal.Zero
	}

	pricePerCigarette := pricePerPack.Div(
		decimal.NewFromInt(int64(cigarettesPerPack)),
	)

	return pricePerCigarette.
		Mul(decimal.NewFromInt(int64(avoided))).
		Round(2)
}

// ComputeIsPass reports whether a day's consumption respected the phase
// limit. A nil limit means no constraint is configured, so the day passes.
func ComputeIsPass(smoked int, limit *int) bool {
	if limit == nil {
		return true
	}
	return smoked <= *limit
}

func (r *DailyRecord) IsDeleted() bool {
	return r.DeletedAt != nil
}

func (r *DailyRecord) IsToday(today time.Time) bool {
	return clock.SameDay(r.RecordDate, today)
}

func (r *DailyRecord) IsFutureDate(today time.Time) bool {
	return clock.DateOnly(r.RecordDate).After(clock.DateOnly(today))
}

// IsValid reports whether the record counts toward statistics: not soft
// deleted, dated, and not dated in the future.
func (r *DailyRecord) IsValid(today time.Time) bool {
	return !r.IsDeleted() && !r.RecordDate.IsZero() && !r.IsFutureDate(today)
}

var cravingLabels = map[int]string{
	1: "Very low",
	2: "Low",
	3: "Moderate",
	4: "High",
	5: "Very high",
}

// CravingLevelText maps the stored craving level onto the fixed 1-5
// display scale.
func (r *DailyRecord) CravingLevelText() string {
	if r.CravingLevel == nil {
		return "Not recorded"
	}
	if label, ok := cravingLabels[*r.CravingLevel]; ok {
		return label
	}
	return "Unknown"
}

func (r *DailyRecord) HealthStatusText() string {
	if r.HealthStatus == nil || *r.HealthStatus == "" {
		return "Not recorded"
	}
	return *r.HealthStatus
}
