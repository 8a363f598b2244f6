package animal

import (
	"time"

	"github.com/google/uuid"
)

// Animal maps to the animals table. Every animal belongs to one owner and is
// only visible to that owner.
type Animal struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name"`
	Type         string    `db:"type" json:"type"`
	Breed        *string   `db:"breed" json:"breed,omitempty"`
	AgeYears     *float64  `db:"age_years" json:"age_years,omitempty"`
	Gender       *string   `db:"gender" json:"gender,omitempty"`
	WeightKG     *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	HealthStatus *string   `db:"health_status" json:"health_status,omitempty"`
	TagNumber    *string   `db:"tag_number" json:"tag_number,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Types lists the species accepted by registration and by the
// disease-prediction form.
var Types = []string{
	"Dog", "Cat", "Cow", "Horse", "Buffalo", "Goat", "Sheep", "Chicken", "Pig",
}

var validTypes = func() map[string]bool {
	m := make(map[string]bool, len(Types))
	for _, t := range Types {
		m[t] = true
	}
	return m
}()

// ValidType reports whether t is a recognized animal type.
func ValidType(t string) bool {
	return validTypes[t]
}

var validGenders = map[string]bool{"Male": true, "Female": true}

// ValidGender reports whether g is a recognized gender value.
func ValidGender(g string) bool {
	return validGenders[g]
}
