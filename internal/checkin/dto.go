// AngelaMos | 2026
// dto.go

package checkin

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quitwise/api/internal/record"
)

const dateLayout = "2006-01-02"

type SubmitCheckinRequest struct {
	Date           string  `json:"date"            validate:"required,datetime=2006-01-02"`
	CigaretteSmoke int     `json:"cigarette_smoke" validate:"min=0"`
	CravingLevel   *int    `json:"craving_level"   validate:"omitempty,min=0,max=10"`
	HealthStatus   *string `json:"health_status"   validate:"omitempty,max=500"`
}

type RecordResponse struct {
	ID               string          `json:"id"`
	PlanID           string          `json:"plan_id"`
	PhaseID          string          `json:"phase_id"`
	Date             string          `json:"date"`
	CigaretteSmoke   int             `json:"cigarette_smoke"`
	MoneySaved       decimal.Decimal `json:"money_saved"`
	CravingLevel     *int            `json:"craving_level,omitempty"`
	CravingLevelText string          `json:"craving_level_text"`
	HealthStatus     *string         `json:"health_status,omitempty"`
	HealthStatusText string          `json:"health_status_text"`
	IsPass           bool            `json:"is_pass"`
	IsToday          bool            `json:"is_today"`
	IsValid          bool            `json:"is_valid"`
	IsPassing        bool            `json:"is_passing"`
	IsFailing        bool            `json:"is_failing"`
}

// toRecordResponse projects a stored record plus its derived display
// flags against the given reference-timezone day.
func toRecordResponse(rec *record.DailyRecord, today time.Time) RecordResponse {
	valid := rec.IsValid(today)

	return RecordResponse{
		ID:               rec.ID,
		PlanID:           rec.PlanID,
		PhaseID:          rec.PhaseID,
		Date:             rec.RecordDate.Format(dateLayout),
		CigaretteSmoke:   rec.CigaretteSmoke,
		MoneySaved:       rec.MoneySaved,
		CravingLevel:     rec.CravingLevel,
		CravingLevelText: rec.CravingLevelText(),
		HealthStatus:     rec.HealthStatus,
		HealthStatusText: rec.HealthStatusText(),
		IsPass:           rec.IsPass,
		IsToday:          rec.IsToday(today),
		IsValid:          valid,
		IsPassing:        valid && rec.IsPass,
		IsFailing:        valid && !rec.IsPass,
	}
}

func toRecordResponseList(
	records []record.DailyRecord,
	today time.Time,
) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toRecordResponse(&records[i], today))
	}
	return responses
}
