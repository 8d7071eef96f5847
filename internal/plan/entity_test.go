// AngelaMos | 2026
// entity_test.go

package plan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quitwise/api/internal/phase"
	"github.com/quitwise/api/internal/record"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func intPtr(v int) *int { return &v }

func passingRecord(phaseID string, t time.Time, smoked int, saved int64, pass bool) record.DailyRecord {
	return record.DailyRecord{
		ID:             "rec-" + phaseID + "-" + t.Format("2006-01-02"),
		PhaseID:        phaseID,
		RecordDate:     t,
		CigaretteSmoke: smoked,
		MoneySaved:     decimal.NewFromInt(saved),
		IsPass:         pass,
	}
}

func TestCurrentPhase(t *testing.T) {
	phases := []phase.Phase{
		{
			ID:              "p1",
			PhaseNumber:     1,
			StartDate:       day(2026, 4, 1),
			ExpectedEndDate: dayPtr(2026, 4, 7),
		},
		{
			ID:              "p2",
			PhaseNumber:     2,
			StartDate:       day(2026, 4, 8),
			ExpectedEndDate: dayPtr(2026, 4, 14),
		},
	}

	got := CurrentPhase(phases, day(2026, 4, 10))
	if got == nil || got.ID != "p2" {
		t.Fatalf("CurrentPhase() = %v, want p2", got)
	}

	if got := CurrentPhase(phases, day(2026, 4, 20)); got != nil {
		t.Errorf("CurrentPhase() past all windows = %v, want nil", got)
	}

	if got := CurrentPhase(nil, day(2026, 4, 10)); got != nil {
		t.Errorf("CurrentPhase() with no phases = %v, want nil", got)
	}
}

func TestCurrentPhase_FirstMatchWinsOnOverlap(t *testing.T) {
	// The generator should never produce overlapping windows; when it
	// does, the earliest phase is picked deterministically.
	phases := []phase.Phase{
		{
			ID:              "p1",
			PhaseNumber:     1,
			StartDate:       day(2026, 4, 1),
			ExpectedEndDate: dayPtr(2026, 4, 10),
		},
		{
			ID:              "p2",
			PhaseNumber:     2,
			StartDate:       day(2026, 4, 5),
			ExpectedEndDate: dayPtr(2026, 4, 14),
		},
	}

	got := CurrentPhase(phases, day(2026, 4, 7))
	if got == nil || got.ID != "p1" {
		t.Fatalf("CurrentPhase() on overlap = %v, want p1", got)
	}
}

func TestComputeProgress(t *testing.T) {
	p := Plan{ID: "plan-1"}
	limit := 10

	phases := []phase.Phase{
		{
			ID:              "p1",
			LimitPerDay:     &limit,
			StartDate:       day(2026, 4, 1),
			ExpectedEndDate: dayPtr(2026, 4, 2),
		},
		{
			ID:              "p2",
			LimitPerDay:     &limit,
			StartDate:       day(2026, 4, 3),
			ExpectedEndDate: dayPtr(2026, 4, 4),
		},
		{
			ID:              "p3",
			LimitPerDay:     &limit,
			StartDate:       day(2026, 4, 5),
			ExpectedEndDate: dayPtr(2026, 4, 10),
		},
	}

	// p1 fully passed; p2 fully missed; p3 still in progress.
	records := []record.DailyRecord{
		passingRecord("p1", day(2026, 4, 1), 5, 0, true),
		passingRecord("p1", day(2026, 4, 2), 5, 0, true),
	}

	progress := p.ComputeProgress(
		phases,
		records,
		day(2026, 4, 6),
		phase.DefaultFailureThreshold,
	)

	if progress.TotalPhases != 3 {
		t.Errorf("TotalPhases = %d, want 3", progress.TotalPhases)
	}
	if progress.CompletedPhases != 1 {
		t.Errorf("CompletedPhases = %d, want 1", progress.CompletedPhases)
	}
	if progress.ConcludedPhases != 2 {
		t.Errorf("ConcludedPhases = %d, want 2", progress.ConcludedPhases)
	}
	if progress.ProgressPercentage != 33 {
		t.Errorf("ProgressPercentage = %d, want 33", progress.ProgressPercentage)
	}
}

func TestComputeProgress_NoPhases(t *testing.T) {
	p := Plan{ID: "plan-1"}

	progress := p.ComputeProgress(
		nil,
		nil,
		day(2026, 4, 6),
		phase.DefaultFailureThreshold,
	)
	if progress.ProgressPercentage != 0 {
		t.Errorf(
			"ProgressPercentage = %d, want 0 with no phases",
			progress.ProgressPercentage,
		)
	}
}

func TestComputeStatistics(t *testing.T) {
	p := Plan{ID: "plan-1"}
	today := day(2026, 4, 10)

	records := []record.DailyRecord{
		passingRecord("p1", day(2026, 4, 7), 5, 18750, true),
		passingRecord("p1", day(2026, 4, 8), 10, 12500, true),
		passingRecord("p1", day(2026, 4, 9), 3, 21250, true),
	}

	stats := p.ComputeStatistics(records, today)

	if stats.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", stats.TotalRecords)
	}
	if want := decimal.NewFromInt(52500); !stats.TotalMoneySaved.Equal(want) {
		t.Errorf("TotalMoneySaved = %s, want %s", stats.TotalMoneySaved, want)
	}
	// (5+10+3)/3 = 6.
	if stats.AverageCigarettesPerDay != 6 {
		t.Errorf(
			"AverageCigarettesPerDay = %d, want 6",
			stats.AverageCigarettesPerDay,
		)
	}
	if stats.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", stats.CurrentStreak)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	p := Plan{ID: "plan-1"}

	stats := p.ComputeStatistics(nil, day(2026, 4, 10))
	if !stats.TotalMoneySaved.IsZero() {
		t.Errorf("TotalMoneySaved = %s, want 0", stats.TotalMoneySaved)
	}
	if stats.AverageCigarettesPerDay != 0 {
		t.Errorf(
			"AverageCigarettesPerDay = %d, want 0",
			stats.AverageCigarettesPerDay,
		)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", stats.CurrentStreak)
	}
}

func TestCurrentStreak_BreaksOnGapAndFailure(t *testing.T) {
	p := Plan{ID: "plan-1"}
	today := day(2026, 4, 10)

	// Gap on the 7th limits the streak to 8th-9th.
	gapped := []record.DailyRecord{
		passingRecord("p1", day(2026, 4, 5), 5, 0, true),
		passingRecord("p1", day(2026, 4, 6), 5, 0, true),
		passingRecord("p1", day(2026, 4, 8), 5, 0, true),
		passingRecord("p1", day(2026, 4, 9), 5, 0, true),
	}
	if got := p.ComputeStatistics(gapped, today).CurrentStreak; got != 2 {
		t.Errorf("streak with gap = %d, want 2", got)
	}

	// Most recent day failing means no current streak at all.
	failedLast := []record.DailyRecord{
		passingRecord("p1", day(2026, 4, 8), 5, 0, true),
		passingRecord("p1", day(2026, 4, 9), 25, 0, false),
	}
	if got := p.ComputeStatistics(failedLast, today).CurrentStreak; got != 0 {
		t.Errorf("streak with failing last day = %d, want 0", got)
	}
}
