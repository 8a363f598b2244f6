package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service holds profile business rules. Missing profiles are materialized
// with defaults on first read so callers never see a nil profile.
type Service struct {
	repo            Repository
	defaultTheme    string
	defaultLanguage string
}

func NewService(repo Repository, defaultTheme, defaultLanguage string) *Service {
	if defaultTheme == "" {
		defaultTheme = "light"
	}
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	return &Service{repo: repo, defaultTheme: defaultTheme, defaultLanguage: defaultLanguage}
}

// GetProfile returns the user's profile, synthesizing a default one if none
// has been saved yet.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user_id is required")
	}
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Profile{UserID: userID, Theme: s.defaultTheme, Language: s.defaultLanguage}
	}
	return p, nil
}

// UpdateProfile validates and writes the profile through to storage.
func (s *Service) UpdateProfile(ctx context.Context, p *Profile) error {
	if p.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if p.Theme == "" {
		p.Theme = s.defaultTheme
	}
	if !ValidTheme(p.Theme) {
		return fmt.Errorf("invalid theme %q", p.Theme)
	}
	if p.Language == "" {
		p.Language = s.defaultLanguage
	}
	return s.repo.Upsert(ctx, p)
}
