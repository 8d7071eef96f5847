// AngelaMos | 2026
// dto.go

package plan

import (
	"time"

	"github.com/quitwise/api/internal/phase"
)

const dateLayout = "2006-01-02"

type CreatePhaseRequest struct {
	PhaseNumber     int     `json:"phase_number"              validate:"required,min=1"`
	LimitPerDay     *int    `json:"limit_cigarettes_per_day"  validate:"omitempty,min=0"`
	StartDate       string  `json:"start_date"                validate:"required,datetime=2006-01-02"`
	ExpectedEndDate *string `json:"expected_end_date"         validate:"omitempty,datetime=2006-01-02"`
}

type CreatePlanRequest struct {
	StartDate       string               `json:"start_date"        validate:"required,datetime=2006-01-02"`
	ExpectedEndDate string               `json:"expected_end_date" validate:"required,datetime=2006-01-02"`
	TotalDays       int                  `json:"total_days"        validate:"required,min=1"`
	Reason          string               `json:"reason"            validate:"max=500"`
	PlanType        string               `json:"plan_type"         validate:"max=50"`
	Phases          []CreatePhaseRequest `json:"phases"            validate:"required,min=1,dive"`
}

type UpdatePlanStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed failed"`
}

type PhaseResponse struct {
	ID              string           `json:"id"`
	PhaseNumber     int              `json:"phase_number"`
	LimitPerDay     *int             `json:"limit_cigarettes_per_day"`
	StartDate       string           `json:"start_date"`
	ExpectedEndDate *string          `json:"expected_end_date"`
	Status          phase.Status     `json:"status"`
	Duration        int              `json:"duration"`
	RemainingDays   int              `json:"remaining_days"`
	Statistics      phase.Statistics `json:"statistics"`
}

type PlanResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	StartDate       string             `json:"start_date"`
	ExpectedEndDate string             `json:"expected_end_date"`
	TotalDays       int                `json:"total_days"`
	TotalPhases     int                `json:"total_phases"`
	Status          Status             `json:"status"`
	Reason          string             `json:"reason"`
	PlanType        string             `json:"plan_type"`
	Phases          []PhaseResponse    `json:"phases"`
	Progress        Progress           `json:"progress"`
	Statistics      LifetimeStatistics `json:"statistics"`
	CreatedAt       time.Time          `json:"created_at"`
}

func formatDay(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDayPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
