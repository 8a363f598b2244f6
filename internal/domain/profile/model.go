package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile maps to the profiles table. The user ID doubles as the primary key,
// so there is at most one profile per account.
type Profile struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	FullName  *string   `db:"full_name" json:"full_name,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Location  *string   `db:"location" json:"location,omitempty"`
	Theme     string    `db:"theme" json:"theme"`
	Language  string    `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

var validThemes = map[string]bool{"light": true, "dark": true}

// ValidTheme reports whether t is a supported UI theme.
func ValidTheme(t string) bool {
	return validThemes[t]
}
