// AngelaMos | 2026
// entity.go

package plan

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quitwise/api/internal/clock"
	"github.com/quitwise/api/internal/phase"
	"github.com/quitwise/api/internal/record"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Plan is the aggregate of ordered phases for one user. Its phases are
// pre-generated at creation; after that only the status and tombstone
// fields ever change. The top-level status is caller-set, never derived.
type Plan struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	StartDate       time.Time  `db:"start_date"`
	ExpectedEndDate time.Time  `db:"expected_end_date"`
	TotalDays       int        `db:"total_days"`
	TotalPhases     int        `db:"total_phases"`
	Status          Status     `db:"status"`
	Reason          string     `db:"reason"`
	PlanType        string     `db:"plan_type"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type Progress struct {
	TotalPhases        int `json:"total_phases"`
	CompletedPhases    int `json:"completed_phases"`
	ConcludedPhases    int `json:"concluded_phases"`
	ProgressPercentage int `json:"progress_percentage"`
}

type LifetimeStatistics struct {
	TotalMoneySaved         decimal.Decimal `json:"total_money_saved"`
	TotalRecords            int             `json:"total_records"`
	AverageCigarettesPerDay int             `json:"average_cigarettes_per_day"`
	CurrentStreak           int             `json:"current_streak"`
}

func (p *Plan) IsDeleted() bool {
	return p.DeletedAt != nil
}

// CurrentPhase returns the phase whose window covers today, or nil.
// Windows are generated without overlap; if the generator ever breaks
// that, the first match wins.
func CurrentPhase(phases []phase.Phase, today time.Time) *phase.Phase {
	for i := range phases {
		if phases[i].IsCurrent(today) {
			return &phases[i]
		}
	}
	return nil
}

// ComputeProgress derives cross-phase progress from the full record set.
// A phase counts as completed or concluded per its derived status, never
// its stored label.
func (p *Plan) ComputeProgress(
	phases []phase.Phase,
	records []record.DailyRecord,
	today time.Time,
	threshold float64,
) Progress {
	byPhase := make(map[string][]record.DailyRecord, len(phases))
	for _, rec := range records {
		byPhase[rec.PhaseID] = append(byPhase[rec.PhaseID], rec)
	}

	progress := Progress{TotalPhases: len(phases)}

	for i := range phases {
		status := phases[i].DeriveStatus(byPhase[phases[i].ID], today, threshold)
		switch status {
		case phase.StatusCompleted:
			progress.CompletedPhases++
			progress.ConcludedPhases++
		case phase.StatusFailed:
			progress.ConcludedPhases++
		}
	}

	if progress.TotalPhases > 0 {
		pct := float64(progress.CompletedPhases) /
			float64(progress.TotalPhases) * 100
		progress.ProgressPercentage = int(math.Round(pct))
	}

	return progress
}

// ComputeStatistics folds lifetime totals over all non-deleted records.
func (p *Plan) ComputeStatistics(
	records []record.DailyRecord,
	today time.Time,
) LifetimeStatistics {
	stats := LifetimeStatistics{TotalMoneySaved: decimal.Zero}

	totalSmoked := 0
	for i := range records {
		rec := &records[i]
		if rec.IsDeleted() {
			continue
		}
		stats.TotalRecords++
		stats.TotalMoneySaved = stats.TotalMoneySaved.Add(rec.MoneySaved)
		totalSmoked += rec.CigaretteSmoke
	}

	if stats.TotalRecords > 0 {
		avg := float64(totalSmoked) / float64(stats.TotalRecords)
		stats.AverageCigarettesPerDay = int(math.Round(avg))
	}

	stats.CurrentStreak = currentStreak(records, today)

	return stats
}

// currentStreak counts consecutive passing days backward from the most
// recent valid record. A calendar gap or a failing day breaks the chain.
func currentStreak(records []record.DailyRecord, today time.Time) int {
	passing := make(map[time.Time]bool, len(records))
	var latest time.Time

	for i := range records {
		rec := &records[i]
		if !rec.IsValid(today) {
			continue
		}
		d := clock.DateOnly(rec.RecordDate)
		passing[d] = rec.IsPass
		if d.After(latest) {
			latest = d
		}
	}

	if latest.IsZero() {
		return 0
	}

	streak := 0
	for d := latest; ; d = d.AddDate(0, 0, -1) {
		isPass, ok := passing[d]
		if !ok || !isPass {
			break
		}
		streak++
	}

	return streak
}
