package knowledge

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows an article listing. Zero values mean no constraint.
type Filter struct {
	Category string
	Species  string
	Search   string
}

// Repository abstracts article storage.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]*Article, int, error)
}
