package prediction

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry maps to the voice_predictions table: one completed and
// saved prediction, keeping both the exact request sent and the raw
// response received so past predictions can be re-rendered faithfully.
type HistoryEntry struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	UserID           uuid.UUID       `db:"user_id" json:"user_id"`
	AnimalID         *uuid.UUID      `db:"animal_id" json:"animal_id,omitempty"`
	InputData        json.RawMessage `db:"input_data" json:"input_data"`
	PredictionResult json.RawMessage `db:"prediction_result" json:"prediction_result"`
	ConfidenceScore  float64         `db:"confidence_score" json:"confidence_score"`
	SeverityLevel    string          `db:"severity_level" json:"severity_level"`
	Recommendations  []string        `db:"recommendations" json:"recommendations"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}
