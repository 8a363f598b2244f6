package scheme

import (
	"time"

	"github.com/google/uuid"
)

// Scheme maps to the schemes table: a government support program farmers can
// apply to (subsidies, insurance, loans, training).
type Scheme struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Title          string     `db:"title" json:"title"`
	Category       string     `db:"category" json:"category"`
	Description    string     `db:"description" json:"description"`
	Eligibility    *string    `db:"eligibility" json:"eligibility,omitempty"`
	Benefit        *string    `db:"benefit" json:"benefit,omitempty"`
	ApplicationURL *string    `db:"application_url" json:"application_url,omitempty"`
	Deadline       *time.Time `db:"deadline" json:"deadline,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

var validCategories = map[string]bool{
	"subsidy": true, "insurance": true, "loan": true, "training": true,
}

// ValidCategory reports whether c is a recognized scheme category.
func ValidCategory(c string) bool {
	return validCategories[c]
}
