// AngelaMos | 2026
// service_test.go

package checkin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quitwise/api/internal/clock"
	"github.com/quitwise/api/internal/core"
	"github.com/quitwise/api/internal/habit"
	"github.com/quitwise/api/internal/phase"
	"github.com/quitwise/api/internal/plan"
	"github.com/quitwise/api/internal/record"
)

type fakePlanRepo struct {
	active *plan.Plan
}

func (f *fakePlanRepo) Create(context.Context, *plan.Plan, []phase.Phase) error {
	return nil
}

func (f *fakePlanRepo) GetByID(
	_ context.Context,
	id, _ string,
) (*plan.Plan, error) {
	if f.active != nil && f.active.ID == id {
		return f.active, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakePlanRepo) FindActiveByUser(
	_ context.Context,
	_ string,
) (*plan.Plan, error) {
	if f.active == nil {
		return nil, core.ErrNotFound
	}
	return f.active, nil
}

func (f *fakePlanRepo) UpdateStatus(
	context.Context,
	string,
	string,
	plan.Status,
) error {
	return nil
}

func (f *fakePlanRepo) SoftDelete(context.Context, string, string) error {
	return nil
}

type fakePhaseRepo struct {
	phases []phase.Phase
}

func (f *fakePhaseRepo) GetByID(
	_ context.Context,
	id, _ string,
) (*phase.Phase, error) {
	for i := range f.phases {
		if f.phases[i].ID == id {
			return &f.phases[i], nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakePhaseRepo) FindActive(
	_ context.Context,
	planID, _ string,
	day time.Time,
) (*phase.Phase, error) {
	for i := range f.phases {
		if f.phases[i].PlanID == planID && f.phases[i].IsCurrent(day) {
			return &f.phases[i], nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakePhaseRepo) ListByPlan(
	_ context.Context,
	planID, _ string,
) ([]phase.Phase, error) {
	var out []phase.Phase
	for _, p := range f.phases {
		if p.PlanID == planID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhaseRepo) UpdateStatus(
	context.Context,
	string,
	phase.Status,
) error {
	return nil
}

type fakeRecordRepo struct {
	store map[string]record.DailyRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{store: make(map[string]record.DailyRecord)}
}

func recordKey(userID, planID, phaseID string, day time.Time) string {
	return fmt.Sprintf(
		"%s|%s|%s|%s",
		userID, planID, phaseID, day.Format("2006-01-02"),
	)
}

func (f *fakeRecordRepo) FindForDate(
	_ context.Context,
	userID, planID, phaseID string,
	day time.Time,
) (*record.DailyRecord, error) {
	if rec, ok := f.store[recordKey(userID, planID, phaseID, day)]; ok {
		return &rec, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRecordRepo) Upsert(
	_ context.Context,
	rec *record.DailyRecord,
) error {
	key := recordKey(rec.UserID, rec.PlanID, rec.PhaseID, rec.RecordDate)
	if existing, ok := f.store[key]; ok {
		// The conflicting row keeps its identity; only metrics change.
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	f.store[key] = *rec
	return nil
}

func (f *fakeRecordRepo) ListByPhase(
	_ context.Context,
	planID, phaseID, _ string,
) ([]record.DailyRecord, error) {
	var out []record.DailyRecord
	for _, rec := range f.store {
		if rec.PlanID == planID && rec.PhaseID == phaseID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByPlan(
	_ context.Context,
	planID, _ string,
) ([]record.DailyRecord, error) {
	var out []record.DailyRecord
	for _, rec := range f.store {
		if rec.PlanID == planID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByUser(
	_ context.Context,
	userID string,
) ([]record.DailyRecord, error) {
	var out []record.DailyRecord
	for _, rec := range f.store {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) SoftDelete(context.Context, string, string) error {
	return nil
}

type fakeHabitRepo struct {
	habit *habit.SmokingHabit
}

func (f *fakeHabitRepo) GetByUser(
	context.Context,
	string,
) (*habit.SmokingHabit, error) {
	if f.habit == nil {
		return nil, core.ErrNotFound
	}
	return f.habit, nil
}

func (f *fakeHabitRepo) Upsert(context.Context, *habit.SmokingHabit) error {
	return nil
}

const testUserID = "user-1"

func fixture() (*Service, *fakeRecordRepo, *fakePlanRepo, *fakeHabitRepo) {
	limit := 10

	plans := &fakePlanRepo{
		active: &plan.Plan{
			ID:     "plan-1",
			UserID: testUserID,
			Status: plan.StatusActive,
		},
	}

	phases := &fakePhaseRepo{
		phases: []phase.Phase{
			{
				ID:          "phase-1",
				PlanID:      "plan-1",
				UserID:      testUserID,
				PhaseNumber: 1,
				LimitPerDay: &limit,
				StartDate:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
				ExpectedEndDate: func() *time.Time {
					t := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
					return &t
				}(),
			},
		},
	}

	records := newFakeRecordRepo()

	habits := &fakeHabitRepo{
		habit: &habit.SmokingHabit{
			ID:                "habit-1",
			UserID:            testUserID,
			CigarettesPerDay:  20,
			CigarettesPerPack: 20,
			PricePerPack:      decimal.NewFromInt(25000),
		},
	}

	clk := clock.NewFixed(time.Date(2026, 4, 10, 14, 30, 0, 0, time.UTC))

	return NewService(plans, phases, records, habits, clk), records, plans, habits
}

func TestSubmit_ComputesDerivedFieldsBeforePersisting(t *testing.T) {
	svc, records, _, _ := fixture()

	view, err := svc.Submit(context.Background(), testUserID, SubmitCheckinRequest{
		Date:           "2026-04-10",
		CigaretteSmoke: 5,
	})
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	// (20 - 5) * 25000/20 = 18750.
	if want := decimal.NewFromInt(18750); !view.MoneySaved.Equal(want) {
		t.Errorf("MoneySaved = %s, want %s", view.MoneySaved, want)
	}
	if !view.IsPass {
		t.Error("5 smoked against limit 10 should pass")
	}
	if !view.IsToday || !view.IsValid || !view.IsPassing || view.IsFailing {
		t.Errorf(
			"derived flags = today:%v valid:%v passing:%v failing:%v",
			view.IsToday, view.IsValid, view.IsPassing, view.IsFailing,
		)
	}

	if len(records.store) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(records.store))
	}
}

func TestSubmit_SameDayResubmissionUpdatesInPlace(t *testing.T) {
	svc, records, _, _ := fixture()
	ctx := context.Background()

	first, err := svc.Submit(ctx, testUserID, SubmitCheckinRequest{
		Date:           "2026-04-10",
		CigaretteSmoke: 5,
	})
	if err != nil {
		t.Fatalf("first Submit() error: %v", err)
	}

	second, err := svc.Submit(ctx, testUserID, SubmitCheckinRequest{
		Date:           "2026-04-10",
		CigaretteSmoke: 12,
	})
	if err != nil {
		t.Fatalf("second Submit() error: %v", err)
	}

	if len(records.store) != 1 {
		t.Fatalf(
			"resubmission must not duplicate: %d records stored",
			len(records.store),
		)
	}

	if second.ID != first.ID {
		t.Errorf("record identity changed: %s -> %s", first.ID, second.ID)
	}
	if second.CigaretteSmoke != 12 {
		t.Errorf("CigaretteSmoke = %d, want second submission's 12",
			second.CigaretteSmoke)
	}
	if second.IsPass {
		t.Error("12 smoked against limit 10 should fail")
	}
	// (20 - 12) * 1250 = 10000.
	if want := decimal.NewFromInt(10000); !second.MoneySaved.Equal(want) {
		t.Errorf("MoneySaved = %s, want %s", second.MoneySaved, want)
	}
}

func TestSubmit_RejectsNonTodayDates(t *testing.T) {
	svc, records, _, _ := fixture()
	ctx := context.Background()

	for _, date := range []string{"2026-04-09", "2026-04-11"} {
		_, err := svc.Submit(ctx, testUserID, SubmitCheckinRequest{
			Date:           date,
			CigaretteSmoke: 5,
		})
		if !errors.Is(err, core.ErrInvalidCheckinDate) {
			t.Errorf("Submit(%s) error = %v, want ErrInvalidCheckinDate",
				date, err)
		}
	}

	if len(records.store) != 0 {
		t.Errorf("rejected check-ins must not persist anything")
	}
}

func TestSubmit_PreconditionFailures(t *testing.T) {
	t.Run("no active plan", func(t *testing.T) {
		svc, _, plans, _ := fixture()
		plans.active = nil

		_, err := svc.Submit(context.Background(), testUserID,
			SubmitCheckinRequest{Date: "2026-04-10"})
		if !errors.Is(err, core.ErrNoActivePlan) {
			t.Errorf("error = %v, want ErrNoActivePlan", err)
		}
	})

	t.Run("no active phase", func(t *testing.T) {
		svc, _, plans, _ := fixture()
		// Point the plan somewhere without phases.
		plans.active.ID = "plan-without-phases"

		_, err := svc.Submit(context.Background(), testUserID,
			SubmitCheckinRequest{Date: "2026-04-10"})
		if !errors.Is(err, core.ErrNoActivePhase) {
			t.Errorf("error = %v, want ErrNoActivePhase", err)
		}
	})

	t.Run("missing habit profile", func(t *testing.T) {
		svc, _, _, habits := fixture()
		habits.habit = nil

		_, err := svc.Submit(context.Background(), testUserID,
			SubmitCheckinRequest{Date: "2026-04-10"})
		if !errors.Is(err, core.ErrMissingHabitProfile) {
			t.Errorf("error = %v, want ErrMissingHabitProfile", err)
		}
	})
}

func TestSubmit_NoLimitPhaseAlwaysPasses(t *testing.T) {
	svc, _, _, _ := fixture()
	phases := svc.phases.(*fakePhaseRepo)
	phases.phases[0].LimitPerDay = nil

	view, err := svc.Submit(context.Background(), testUserID,
		SubmitCheckinRequest{Date: "2026-04-10", CigaretteSmoke: 99})
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	if !view.IsPass {
		t.Error("a phase without a limit must pass any consumption")
	}
}
