package prediction

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/herdwell/herdwell/internal/domain/animal"
)

// SymptomSlots is the number of ranked symptom inputs the model accepts.
const SymptomSlots = 4

// Flags are the observable yes/no clinical signs.
type Flags struct {
	AppetiteLoss     bool `json:"appetite_loss"`
	Vomiting         bool `json:"vomiting"`
	Diarrhea         bool `json:"diarrhea"`
	Coughing         bool `json:"coughing"`
	LaboredBreathing bool `json:"labored_breathing"`
	Lameness         bool `json:"lameness"`
	SkinLesions      bool `json:"skin_lesions"`
	NasalDischarge   bool `json:"nasal_discharge"`
	EyeDischarge     bool `json:"eye_discharge"`
}

// Observation is the clinical picture collected for one prediction. Only
// AnimalType is mandatory; everything else falls back to model defaults
// when the request is built.
type Observation struct {
	AnimalID        *uuid.UUID           `json:"animal_id,omitempty"`
	AnimalType      string               `json:"animal_type"`
	Breed           string               `json:"breed"`
	AgeYears        float64              `json:"age_years"`
	Gender          string               `json:"gender"`
	WeightKG        float64              `json:"weight_kg"`
	BodyTemperature float64              `json:"body_temperature"`
	HeartRate       float64              `json:"heart_rate"`
	Symptoms        [SymptomSlots]string `json:"symptoms"`
	DurationDays    int                  `json:"duration_days"`
	Flags           Flags                `json:"flags"`
}

// SeedFromAnimal overwrites the observation's identity fields from a stored
// animal record. It always overwrites; already-entered values for these
// fields are discarded, clinical fields are untouched.
func (o *Observation) SeedFromAnimal(a *animal.Animal) {
	if a == nil {
		return
	}
	o.AnimalID = &a.ID
	o.AnimalType = a.Type
	if a.Breed != nil {
		o.Breed = *a.Breed
	} else {
		o.Breed = ""
	}
	if a.AgeYears != nil {
		o.AgeYears = *a.AgeYears
	} else {
		o.AgeYears = 0
	}
	if a.Gender != nil {
		o.Gender = *a.Gender
	} else {
		o.Gender = ""
	}
	if a.WeightKG != nil {
		o.WeightKG = *a.WeightKG
	} else {
		o.WeightKG = 0
	}
}

// Validate checks the observation before a request is built. A missing
// animal type is the one hard failure; everything else is range-checked
// only when the caller actually supplied a value.
func (o *Observation) Validate() error {
	if strings.TrimSpace(o.AnimalType) == "" {
		return &ValidationError{Field: "animal_type", Reason: "animal type is required"}
	}
	if o.AgeYears < 0 {
		return &ValidationError{Field: "age_years", Reason: "age cannot be negative"}
	}
	if o.WeightKG < 0 {
		return &ValidationError{Field: "weight_kg", Reason: "weight cannot be negative"}
	}
	if o.BodyTemperature != 0 && (o.BodyTemperature < 35 || o.BodyTemperature > 45) {
		return &ValidationError{Field: "body_temperature", Reason: "temperature must be between 35 and 45 celsius"}
	}
	if o.HeartRate != 0 && (o.HeartRate < 20 || o.HeartRate > 300) {
		return &ValidationError{Field: "heart_rate", Reason: "heart rate must be between 20 and 300 bpm"}
	}
	if o.DurationDays != 0 && (o.DurationDays < 1 || o.DurationDays > 90) {
		return &ValidationError{Field: "duration_days", Reason: "duration must be between 1 and 90 days"}
	}
	if o.Gender != "" && !animal.ValidGender(o.Gender) {
		return &ValidationError{Field: "gender", Reason: fmt.Sprintf("unknown gender %q", o.Gender)}
	}
	return nil
}
