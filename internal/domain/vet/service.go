package vet

import (
	"context"
	"fmt"
)

type Service struct {
	vets Repository
}

func NewService(vets Repository) *Service {
	return &Service{vets: vets}
}

func (s *Service) CreateVet(ctx context.Context, v *Veterinarian) error {
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	if v.Location == "" {
		return fmt.Errorf("location is required")
	}
	if v.Rating < 0 || v.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	return s.vets.Create(ctx, v)
}

// SearchVets lists the directory, optionally filtered by location substring.
// Results are ordered by rating, best first.
func (s *Service) SearchVets(ctx context.Context, location string, limit, offset int) ([]*Veterinarian, int, error) {
	if location == "" {
		return s.vets.List(ctx, limit, offset)
	}
	return s.vets.SearchByLocation(ctx, location, limit, offset)
}
