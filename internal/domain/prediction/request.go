package prediction

import "strings"

// Request is the exact payload the inference service accepts. Field names
// and defaults must match the model's training schema, so they are filled
// here and nowhere else.
type Request struct {
	AnimalType       string  `json:"animal_type"`
	Breed            string  `json:"breed"`
	Age              float64 `json:"age"`
	Gender           string  `json:"gender"`
	Weight           float64 `json:"weight"`
	BodyTemperature  float64 `json:"body_temperature"`
	HeartRate        float64 `json:"heart_rate"`
	Symptom1         string  `json:"symptom1"`
	Symptom2         string  `json:"symptom2"`
	Symptom3         string  `json:"symptom3"`
	Symptom4         string  `json:"symptom4"`
	Duration         int     `json:"duration"`
	AppetiteLoss     string  `json:"appetite_loss"`
	Vomiting         string  `json:"vomiting"`
	Diarrhea         string  `json:"diarrhea"`
	Coughing         string  `json:"coughing"`
	LaboredBreathing string  `json:"labored_breathing"`
	Lameness         string  `json:"lameness"`
	SkinLesions      string  `json:"skin_lesions"`
	NasalDischarge   string  `json:"nasal_discharge"`
	EyeDischarge     string  `json:"eye_discharge"`
}

// Model schema defaults, applied when the observation leaves a field unset.
const (
	defaultBreed       = "Mixed"
	defaultAge         = 3.0
	defaultGender      = "Male"
	defaultWeight      = 50.0
	defaultTemperature = 38.5
	defaultHeartRate   = 80.0
	defaultSymptom     = "none"
	defaultDuration    = 3
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// BuildRequest converts a validated observation into the wire payload.
// Empty symptom slots become "none"; filled slots are passed through in
// rank order, duplicates included, since the model treats each slot
// independently.
func BuildRequest(o Observation) Request {
	req := Request{
		AnimalType:       o.AnimalType,
		Breed:            strings.TrimSpace(o.Breed),
		Age:              o.AgeYears,
		Gender:           o.Gender,
		Weight:           o.WeightKG,
		BodyTemperature:  o.BodyTemperature,
		HeartRate:        o.HeartRate,
		Duration:         o.DurationDays,
		AppetiteLoss:     yesNo(o.Flags.AppetiteLoss),
		Vomiting:         yesNo(o.Flags.Vomiting),
		Diarrhea:         yesNo(o.Flags.Diarrhea),
		Coughing:         yesNo(o.Flags.Coughing),
		LaboredBreathing: yesNo(o.Flags.LaboredBreathing),
		Lameness:         yesNo(o.Flags.Lameness),
		SkinLesions:      yesNo(o.Flags.SkinLesions),
		NasalDischarge:   yesNo(o.Flags.NasalDischarge),
		EyeDischarge:     yesNo(o.Flags.EyeDischarge),
	}
	if req.Breed == "" {
		req.Breed = defaultBreed
	}
	if req.Age == 0 {
		req.Age = defaultAge
	}
	if req.Gender == "" {
		req.Gender = defaultGender
	}
	if req.Weight == 0 {
		req.Weight = defaultWeight
	}
	if req.BodyTemperature == 0 {
		req.BodyTemperature = defaultTemperature
	}
	if req.HeartRate == 0 {
		req.HeartRate = defaultHeartRate
	}
	if req.Duration == 0 {
		req.Duration = defaultDuration
	}

	slots := []*string{&req.Symptom1, &req.Symptom2, &req.Symptom3, &req.Symptom4}
	for i, slot := range slots {
		v := strings.TrimSpace(o.Symptoms[i])
		if v == "" {
			v = defaultSymptom
		}
		*slot = v
	}
	return req
}
