package knowledge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service holds article business rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateArticle(ctx context.Context, a *Article) error {
	if a.Title == "" {
		return fmt.Errorf("title is required")
	}
	if a.Category == "" {
		return fmt.Errorf("category is required")
	}
	if a.Content == "" {
		return fmt.Errorf("content is required")
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) ListArticles(ctx context.Context, f Filter, limit, offset int) ([]*Article, int, error) {
	return s.repo.List(ctx, f, limit, offset)
}

func (s *Service) GetArticle(ctx context.Context, id uuid.UUID) (*Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("article not found")
	}
	return a, nil
}
