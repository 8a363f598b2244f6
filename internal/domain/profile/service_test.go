package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	store map[uuid.UUID]*Profile
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Profile)}
}

func (m *mockRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Profile, error) {
	return m.store[userID], nil
}

func (m *mockRepo) Upsert(_ context.Context, p *Profile) error {
	cp := *p
	m.store[p.UserID] = &cp
	return nil
}

func TestGetProfile_DefaultsWhenMissing(t *testing.T) {
	svc := NewService(newMockRepo(), "dark", "hi")
	p, err := svc.GetProfile(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Theme != "dark" || p.Language != "hi" {
		t.Errorf("expected configured defaults, got %+v", p)
	}
}

func TestGetProfile_RequiresUser(t *testing.T) {
	svc := NewService(newMockRepo(), "", "")
	if _, err := svc.GetProfile(context.Background(), uuid.Nil); err == nil {
		t.Fatal("expected error for nil user")
	}
}

func TestUpdateProfile_ThemeValidated(t *testing.T) {
	svc := NewService(newMockRepo(), "", "")
	p := &Profile{UserID: uuid.New(), Theme: "neon"}
	if err := svc.UpdateProfile(context.Background(), p); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, "light", "en")
	userID := uuid.New()
	name := "Asha"

	p := &Profile{UserID: userID, FullName: &name, Theme: "dark", Language: "mr"}
	if err := svc.UpdateProfile(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme != "dark" || got.Language != "mr" || got.FullName == nil || *got.FullName != "Asha" {
		t.Errorf("profile not persisted: %+v", got)
	}
}
