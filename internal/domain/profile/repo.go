package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts profile storage.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
