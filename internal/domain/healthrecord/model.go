package healthrecord

import (
	"time"

	"github.com/google/uuid"
)

// Recorder values identify who produced a record.
const (
	RecordedByOwner = "owner"
	RecordedByVet   = "vet"
	RecordedByAI    = "ai"
)

// HealthRecord maps to the health_records table. Records are append-only:
// once written they are never updated or deleted, so an animal's history is
// an immutable timeline.
type HealthRecord struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	AnimalID   *uuid.UUID `db:"animal_id" json:"animal_id,omitempty"`
	RecordType string     `db:"record_type" json:"record_type"`
	Diagnosis  string     `db:"diagnosis" json:"diagnosis"`
	Severity   *string    `db:"severity" json:"severity,omitempty"`
	Symptoms   []string   `db:"symptoms" json:"symptoms"`
	Treatment  *string    `db:"treatment" json:"treatment,omitempty"`
	Notes      *string    `db:"notes" json:"notes,omitempty"`
	RecordedBy string     `db:"recorded_by" json:"recorded_by"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

var validRecordTypes = map[string]bool{
	"checkup": true, "vaccination": true, "treatment": true,
	"observation": true, "ai_prediction": true,
}

var validRecorders = map[string]bool{
	RecordedByOwner: true, RecordedByVet: true, RecordedByAI: true,
}
