package healthrecord

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rec *HealthRecord) error
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthRecord, int, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID, limit, offset int) ([]*HealthRecord, int, error)
}
