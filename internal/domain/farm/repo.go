package farm

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, f *Farm) error
	GetByID(ctx context.Context, id uuid.UUID) (*Farm, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Farm, int, error)
	Update(ctx context.Context, f *Farm) error
}
