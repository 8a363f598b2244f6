package vet

import "context"

type Repository interface {
	Create(ctx context.Context, v *Veterinarian) error
	List(ctx context.Context, limit, offset int) ([]*Veterinarian, int, error)
	SearchByLocation(ctx context.Context, location string, limit, offset int) ([]*Veterinarian, int, error)
}
