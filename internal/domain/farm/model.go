package farm

import (
	"time"

	"github.com/google/uuid"
)

// Farm maps to the farms table: one land parcel owned by a user.
type Farm struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Location  string    `db:"location" json:"location"`
	AreaAcres *float64  `db:"area_acres" json:"area_acres,omitempty"`
	SoilType  *string   `db:"soil_type" json:"soil_type,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
