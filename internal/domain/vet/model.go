package vet

import (
	"time"

	"github.com/google/uuid"
)

// Veterinarian maps to the veterinarians table. The directory is shared
// across all users; entries are curated, not user-owned.
type Veterinarian struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	ClinicName     *string   `db:"clinic_name" json:"clinic_name,omitempty"`
	Location       string    `db:"location" json:"location"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Email          *string   `db:"email" json:"email,omitempty"`
	Specialization *string   `db:"specialization" json:"specialization,omitempty"`
	Rating         float64   `db:"rating" json:"rating"`
	Available      bool      `db:"available" json:"available"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
