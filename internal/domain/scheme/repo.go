package scheme

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts scheme storage.
type Repository interface {
	Create(ctx context.Context, s *Scheme) error
	GetByID(ctx context.Context, id uuid.UUID) (*Scheme, error)
	List(ctx context.Context, limit, offset int) ([]*Scheme, int, error)
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*Scheme, int, error)
}
