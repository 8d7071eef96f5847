// AngelaMos | 2026
// entity.go

package phase

import (
	"math"
	"time"

	"github.com/quitwise/api/internal/clock"
	"github.com/quitwise/api/internal/record"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// DefaultFailureThreshold is the failure-rate percentage at or above
// which a concluded phase counts as failed.
const DefaultFailureThreshold = 20.0

// Phase is a contiguous dated sub-period of a plan with its own daily
// cigarette limit. The persisted Status column is a cache: the
// authoritative status is always recomputed from the current date and
// the phase's records via DeriveStatus.
type Phase struct {
	ID              string     `db:"id"`
	PlanID          string     `db:"plan_id"`
	UserID          string     `db:"user_id"`
	PhaseNumber     int        `db:"phase_number"`
	LimitPerDay     *int       `db:"limit_cigarettes_per_day"`
	StartDate       time.Time  `db:"start_date"`
	ExpectedEndDate *time.Time `db:"expected_end_date"`
	Status          Status     `db:"status"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

// Statistics summarizes a phase's expected-date window. FailedDays
// counts both unrecorded days and days recorded over the limit.
type Statistics struct {
	TotalDays      int     `json:"total_days"`
	RecordedDays   int     `json:"recorded_days"`
	MissedDays     int     `json:"missed_days"`
	PassedDays     int     `json:"passed_days"`
	FailedDays     int     `json:"failed_days"`
	FailureRate    float64 `json:"failure_rate"`
	ShouldBeFailed bool    `json:"should_be_failed"`
}

func (p *Phase) IsDeleted() bool {
	return p.DeletedAt != nil
}

// ExpectedDays enumerates every calendar day the phase expects a record
// for: start date through the earlier of the expected end date and today.
func (p *Phase) ExpectedDays(today time.Time) []time.Time {
	end := clock.DateOnly(today)
	if p.ExpectedEndDate != nil {
		end = clock.MinDay(*p.ExpectedEndDate, today)
	}
	return clock.EnumerateDays(p.StartDate, end)
}

// ComputeStatistics folds the record set over the expected-date window.
// Records outside the window, soft-deleted records, and future-dated
// records never contribute.
func (p *Phase) ComputeStatistics(
	records []record.DailyRecord,
	today time.Time,
	threshold float64,
) Statistics {
	expected := p.ExpectedDays(today)

	byDay := make(map[time.Time]*record.DailyRecord, len(records))
	for i := range records {
		rec := &records[i]
		if !rec.IsValid(today) {
			continue
		}
		byDay[clock.DateOnly(rec.RecordDate)] = rec
	}

	stats := Statistics{TotalDays: len(expected)}

	for _, day := range expected {
		rec, ok := byDay[day]
		if !ok {
			stats.MissedDays++
			stats.FailedDays++
			continue
		}

		stats.RecordedDays++
		if record.ComputeIsPass(rec.CigaretteSmoke, p.LimitPerDay) {
			stats.PassedDays++
		} else {
			stats.FailedDays++
		}
	}

	if stats.TotalDays > 0 {
		rate := float64(stats.FailedDays) / float64(stats.TotalDays) * 100
		stats.FailureRate = math.Round(rate*100) / 100
	}

	stats.ShouldBeFailed = stats.FailureRate >= threshold

	return stats
}

// FailureRate returns the percentage of expected days that are missing
// a record or recorded over the limit, rounded to two decimal places.
func (p *Phase) FailureRate(
	records []record.DailyRecord,
	today time.Time,
) float64 {
	return p.ComputeStatistics(records, today, DefaultFailureThreshold).FailureRate
}

// DeriveStatus recomputes the authoritative phase status from the
// current date and record set. Conditions are evaluated in order; the
// persisted label is only the final fallback.
func (p *Phase) DeriveStatus(
	records []record.DailyRecord,
	today time.Time,
	threshold float64,
) Status {
	day := clock.DateOnly(today)

	if p.ExpectedEndDate != nil && day.After(clock.DateOnly(*p.ExpectedEndDate)) {
		stats := p.ComputeStatistics(records, today, threshold)
		if stats.ShouldBeFailed {
			return StatusFailed
		}
		return StatusCompleted
	}

	if day.Before(clock.DateOnly(p.StartDate)) {
		return StatusPending
	}

	inWindow := p.ExpectedEndDate == nil ||
		!day.After(clock.DateOnly(*p.ExpectedEndDate))
	if inWindow {
		return StatusInProgress
	}

	if p.Status != "" {
		return p.Status
	}
	return StatusPending
}

// Duration is the whole-day span between start and expected end, zero
// when no end date is set.
func (p *Phase) Duration() int {
	if p.ExpectedEndDate == nil {
		return 0
	}

	days := clock.DaysBetween(p.StartDate, *p.ExpectedEndDate)
	if days < 0 {
		return 0
	}
	return days
}

// RemainingDays counts whole days from today until the expected end,
// floored at zero. A phase already marked completed has none left.
func (p *Phase) RemainingDays(today time.Time) int {
	if p.ExpectedEndDate == nil {
		return 0
	}

	if p.Status == StatusCompleted {
		return 0
	}

	days := clock.DaysBetween(today, *p.ExpectedEndDate)
	if days < 0 {
		return 0
	}
	return days
}

// IsCurrent reports whether today falls inside the phase's window.
func (p *Phase) IsCurrent(today time.Time) bool {
	if p.IsDeleted() {
		return false
	}

	day := clock.DateOnly(today)
	if day.Before(clock.DateOnly(p.StartDate)) {
		return false
	}

	if p.ExpectedEndDate == nil {
		return true
	}
	return !day.After(clock.DateOnly(*p.ExpectedEndDate))
}
