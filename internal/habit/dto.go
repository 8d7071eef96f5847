// AngelaMos | 2026
// dto.go

package habit

import (
	"github.com/shopspring/decimal"
)

type UpsertHabitRequest struct {
	CigarettesPerDay  int     `json:"cigarettes_per_day"  validate:"required,min=1,max=200"`
	CigarettesPerPack int     `json:"cigarettes_per_pack" validate:"required,min=1,max=100"`
	PricePerPack      float64 `json:"price_per_pack"      validate:"required,gte=0"`
	SmokeYears        *int    `json:"smoke_years"         validate:"omitempty,min=0,max=100"`
}

type HabitResponse struct {
	ID                string          `json:"id"`
	CigarettesPerDay  int             `json:"cigarettes_per_day"`
	CigarettesPerPack int             `json:"cigarettes_per_pack"`
	PricePerPack      decimal.Decimal `json:"price_per_pack"`
	SmokeYears        *int            `json:"smoke_years,omitempty"`
}

func ToHabitResponse(h *SmokingHabit) HabitResponse {
	return HabitResponse{
		ID:                h.ID,
		CigarettesPerDay:  h.CigarettesPerDay,
		CigarettesPerPack: h.CigarettesPerPack,
		PricePerPack:      h.PricePerPack,
		SmokeYears:        h.SmokeYears,
	}
}
