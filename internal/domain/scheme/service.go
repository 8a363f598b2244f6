package scheme

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service holds scheme business rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateScheme validates and stores a new scheme.
func (s *Service) CreateScheme(ctx context.Context, sc *Scheme) error {
	if sc.Title == "" {
		return fmt.Errorf("title is required")
	}
	if sc.Description == "" {
		return fmt.Errorf("description is required")
	}
	if !ValidCategory(sc.Category) {
		return fmt.Errorf("invalid category %q", sc.Category)
	}
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	return s.repo.Create(ctx, sc)
}

// ListSchemes returns schemes, optionally filtered by category.
func (s *Service) ListSchemes(ctx context.Context, category string, limit, offset int) ([]*Scheme, int, error) {
	if category != "" {
		if !ValidCategory(category) {
			return nil, 0, fmt.Errorf("invalid category %q", category)
		}
		return s.repo.ListByCategory(ctx, category, limit, offset)
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) GetScheme(ctx context.Context, id uuid.UUID) (*Scheme, error) {
	sc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, fmt.Errorf("scheme not found")
	}
	return sc, nil
}
