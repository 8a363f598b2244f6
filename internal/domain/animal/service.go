package animal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	animals Repository
}

func NewService(animals Repository) *Service {
	return &Service{animals: animals}
}

func (s *Service) CreateAnimal(ctx context.Context, a *Animal) error {
	if a.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	if a.Type == "" {
		return fmt.Errorf("type is required")
	}
	if !ValidType(a.Type) {
		return fmt.Errorf("unsupported animal type: %s", a.Type)
	}
	if a.Gender != nil && !ValidGender(*a.Gender) {
		return fmt.Errorf("invalid gender: %s", *a.Gender)
	}
	return s.animals.Create(ctx, a)
}

// GetOwnedAnimal fetches an animal and verifies it belongs to userID.
func (s *Service) GetOwnedAnimal(ctx context.Context, userID, id uuid.UUID) (*Animal, error) {
	a, err := s.animals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, fmt.Errorf("animal %s does not belong to user", id)
	}
	return a, nil
}

func (s *Service) ListAnimals(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Animal, int, error) {
	return s.animals.ListByOwner(ctx, userID, limit, offset)
}

func (s *Service) UpdateAnimal(ctx context.Context, userID uuid.UUID, a *Animal) error {
	existing, err := s.GetOwnedAnimal(ctx, userID, a.ID)
	if err != nil {
		return err
	}
	if a.Type != "" && !ValidType(a.Type) {
		return fmt.Errorf("unsupported animal type: %s", a.Type)
	}
	if a.Gender != nil && !ValidGender(*a.Gender) {
		return fmt.Errorf("invalid gender: %s", *a.Gender)
	}
	a.UserID = existing.UserID
	return s.animals.Update(ctx, a)
}

func (s *Service) DeleteAnimal(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetOwnedAnimal(ctx, userID, id); err != nil {
		return err
	}
	return s.animals.Delete(ctx, id)
}
