package animal

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Animal) error
	GetByID(ctx context.Context, id uuid.UUID) (*Animal, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Animal, int, error)
	Update(ctx context.Context, a *Animal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
