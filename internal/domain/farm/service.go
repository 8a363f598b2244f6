package farm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	farms Repository
}

func NewService(farms Repository) *Service {
	return &Service{farms: farms}
}

func (s *Service) CreateFarm(ctx context.Context, f *Farm) error {
	if f.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if f.Location == "" {
		return fmt.Errorf("location is required")
	}
	if f.AreaAcres != nil && *f.AreaAcres <= 0 {
		return fmt.Errorf("area_acres must be positive")
	}
	return s.farms.Create(ctx, f)
}

func (s *Service) ListFarms(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Farm, int, error) {
	return s.farms.ListByOwner(ctx, userID, limit, offset)
}

func (s *Service) UpdateFarm(ctx context.Context, userID uuid.UUID, f *Farm) error {
	existing, err := s.farms.GetByID(ctx, f.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("farm %s does not belong to user", f.ID)
	}
	if f.AreaAcres != nil && *f.AreaAcres <= 0 {
		return fmt.Errorf("area_acres must be positive")
	}
	f.UserID = existing.UserID
	return s.farms.Update(ctx, f)
}
