package prediction

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts prediction history storage.
type Repository interface {
	Create(ctx context.Context, e *HistoryEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HistoryEntry, int, error)
}
