// Package appstate holds cross-cutting per-user application state: UI
// preferences backed by the profile store and an in-memory notification
// feed. A single Store is constructed at startup and injected into the
// handlers that need it.
package appstate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/herdwell/herdwell/internal/domain/profile"
)

// Preferences are the user-tunable settings shared across the app.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// Notification is a transient in-app message. Notifications are not
// persisted; a restart clears the feed.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

const maxNotifications = 50

// Store manages per-user app state. Preference reads and writes go through
// the profile service so they survive restarts.
type Store struct {
	profiles *profile.Service

	mu    sync.Mutex
	feeds map[uuid.UUID][]Notification
}

func NewStore(profiles *profile.Service) *Store {
	return &Store{
		profiles: profiles,
		feeds:    make(map[uuid.UUID][]Notification),
	}
}

// Preferences loads the user's current preferences.
func (s *Store) Preferences(ctx context.Context, userID uuid.UUID) (Preferences, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return Preferences{}, err
	}
	return Preferences{Theme: p.Theme, Language: p.Language}, nil
}

// SetPreferences writes the preferences through to the profile store. The
// rest of the profile is read first so the update does not clobber it.
func (s *Store) SetPreferences(ctx context.Context, userID uuid.UUID, prefs Preferences) error {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if prefs.Theme != "" {
		p.Theme = prefs.Theme
	}
	if prefs.Language != "" {
		p.Language = prefs.Language
	}
	return s.profiles.UpdateProfile(ctx, p)
}

// Notify appends a notification to the user's feed, dropping the oldest
// entries beyond the cap.
func (s *Store) Notify(userID uuid.UUID, kind, message string) Notification {
	n := Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	feed := append(s.feeds[userID], n)
	if len(feed) > maxNotifications {
		feed = feed[len(feed)-maxNotifications:]
	}
	s.feeds[userID] = feed
	return n
}

// Notifications returns the user's feed, newest first.
func (s *Store) Notifications(userID uuid.UUID) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed := s.feeds[userID]
	out := make([]Notification, len(feed))
	for i, n := range feed {
		out[len(feed)-1-i] = n
	}
	return out
}

// MarkRead flags a single notification as read.
func (s *Store) MarkRead(userID, notificationID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed := s.feeds[userID]
	for i := range feed {
		if feed[i].ID == notificationID {
			feed[i].Read = true
			return true
		}
	}
	return false
}
