// AngelaMos | 2026
// service_test.go

package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quitwise/api/internal/clock"
	"github.com/quitwise/api/internal/core"
	"github.com/quitwise/api/internal/phase"
)

// stubPlanRepo drives the active-plan guard in Create. Only
// FindActiveByUser matters here; the rest never runs before the guard
// returns.
type stubPlanRepo struct {
	active    *Plan
	activeErr error
}

func (s *stubPlanRepo) Create(context.Context, *Plan, []phase.Phase) error {
	return nil
}

func (s *stubPlanRepo) GetByID(
	context.Context,
	string,
	string,
) (*Plan, error) {
	return nil, core.ErrNotFound
}

func (s *stubPlanRepo) FindActiveByUser(
	context.Context,
	string,
) (*Plan, error) {
	if s.activeErr != nil {
		return nil, s.activeErr
	}
	if s.active == nil {
		return nil, core.ErrNotFound
	}
	return s.active, nil
}

func (s *stubPlanRepo) UpdateStatus(
	context.Context,
	string,
	string,
	Status,
) error {
	return nil
}

func (s *stubPlanRepo) SoftDelete(context.Context, string, string) error {
	return nil
}

func TestCreate_RejectsSecondActivePlan(t *testing.T) {
	repo := &stubPlanRepo{active: &Plan{ID: "plan-1", Status: StatusActive}}
	clk := clock.NewFixed(time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC))
	svc := NewService(nil, repo, nil, nil, clk, phase.DefaultFailureThreshold)

	_, err := svc.Create(context.Background(), "user-1", CreatePlanRequest{})
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Errorf("Create() error = %v, want ErrDuplicateKey", err)
	}
}

func TestCreate_SurfacesActivePlanLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection refused")
	repo := &stubPlanRepo{activeErr: lookupErr}
	clk := clock.NewFixed(time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC))
	svc := NewService(nil, repo, nil, nil, clk, phase.DefaultFailureThreshold)

	_, err := svc.Create(context.Background(), "user-1", CreatePlanRequest{})
	if !errors.Is(err, lookupErr) {
		t.Fatalf("Create() error = %v, want wrapped lookup failure", err)
	}
	if errors.Is(err, core.ErrDuplicateKey) {
		t.Error("a storage failure must not read as an existing active plan")
	}
}
