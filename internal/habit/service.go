// AngelaMos | 2026
// service.go

package habit

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByUser(
	ctx context.Context,
	userID string,
) (*SmokingHabit, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *Service) Upsert(
	ctx context.Context,
	userID string,
	req UpsertHabitRequest,
) (*SmokingHabit, error) {
	habit := &SmokingHabit{
		ID:                uuid.New().String(),
		UserID:            userID,
		CigarettesPerDay:  req.CigarettesPerDay,
		CigarettesPerPack: req.CigarettesPerPack,
		PricePerPack:      decimal.NewFromFloat(req.PricePerPack),
		SmokeYears:        req.SmokeYears,
	}

	if err := s.repo.Upsert(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}
