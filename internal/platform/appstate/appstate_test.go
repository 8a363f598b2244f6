package appstate

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/herdwell/herdwell/internal/domain/profile"
)

type memProfileRepo struct {
	store map[uuid.UUID]*profile.Profile
}

func (m *memProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	return m.store[userID], nil
}

func (m *memProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	cp := *p
	m.store[p.UserID] = &cp
	return nil
}

func newTestStore() *Store {
	repo := &memProfileRepo{store: make(map[uuid.UUID]*profile.Profile)}
	return NewStore(profile.NewService(repo, "light", "en"))
}

func TestPreferences_WriteThrough(t *testing.T) {
	s := newTestStore()
	userID := uuid.New()

	prefs, err := s.Preferences(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	if prefs.Theme != "light" || prefs.Language != "en" {
		t.Errorf("expected defaults, got %+v", prefs)
	}

	if err := s.SetPreferences(context.Background(), userID, Preferences{Theme: "dark"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prefs, err = s.Preferences(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	if prefs.Theme != "dark" {
		t.Errorf("theme not written through, got %q", prefs.Theme)
	}
	if prefs.Language != "en" {
		t.Errorf("unset fields must keep prior values, got %q", prefs.Language)
	}
}

func TestNotify_NewestFirstAndCapped(t *testing.T) {
	s := newTestStore()
	userID := uuid.New()

	s.Notify(userID, "info", "first")
	s.Notify(userID, "info", "second")

	feed := s.Notifications(userID)
	if len(feed) != 2 || feed[0].Message != "second" {
		t.Errorf("expected newest first, got %v", feed)
	}

	for i := 0; i < maxNotifications+10; i++ {
		s.Notify(userID, "info", "bulk")
	}
	if got := len(s.Notifications(userID)); got != maxNotifications {
		t.Errorf("expected feed capped at %d, got %d", maxNotifications, got)
	}
}

func TestMarkRead(t *testing.T) {
	s := newTestStore()
	userID := uuid.New()
	n := s.Notify(userID, "info", "hello")

	if !s.MarkRead(userID, n.ID) {
		t.Fatal("expected mark read to succeed")
	}
	if feed := s.Notifications(userID); !feed[0].Read {
		t.Error("notification should be read")
	}
	if s.MarkRead(userID, uuid.New()) {
		t.Error("unknown notification should report false")
	}
}

func TestNotifications_PerUser(t *testing.T) {
	s := newTestStore()
	alice, bob := uuid.New(), uuid.New()
	s.Notify(alice, "info", "for alice")

	if len(s.Notifications(bob)) != 0 {
		t.Error("feeds must be per user")
	}
}
