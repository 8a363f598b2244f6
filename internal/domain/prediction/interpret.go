package prediction

// Result is the interpreted inference response. Interpretation is
// tolerant: missing or mistyped fields fall back to zero values so one
// malformed section never discards the rest of the response. Probabilities
// are carried exactly as received, never renormalized.
type Result struct {
	Disease           string          `json:"disease"`
	Confidence        float64         `json:"confidence"`
	Top3              []RankedDisease `json:"top_3"`
	Vitals            VitalsAnalysis  `json:"vitals"`
	Syndromes         SyndromeScores  `json:"syndromes"`
	ConditionSeverity string          `json:"condition_severity"`
}

// RankedDisease is one entry of the top-3 differential.
type RankedDisease struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// VitalsAnalysis carries the service's reading of temperature and heart
// rate. Statuses default to "unspecified" when absent.
type VitalsAnalysis struct {
	TemperatureStatus string `json:"temperature_status"`
	HeartRateStatus   string `json:"heart_rate_status"`
	FeverSeverity     string `json:"fever_severity"`
	HRSeverity        string `json:"hr_severity"`
}

// SyndromeScores groups symptom evidence by body system.
type SyndromeScores struct {
	Respiratory  float64 `json:"respiratory_score"`
	GI           float64 `json:"gi_score"`
	Systemic     float64 `json:"systemic_score"`
	Neurological float64 `json:"neurological_score"`
	MultiSystem  bool    `json:"multi_system"`
}

const unspecified = "unspecified"

func asString(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// Interpret converts the raw service response into a Result.
func Interpret(raw map[string]interface{}) Result {
	r := Result{
		Disease:           asString(raw["predicted_disease"], ""),
		Confidence:        asFloat(raw["confidence"]),
		ConditionSeverity: asString(raw["condition_severity"], unspecified),
	}

	if entries, ok := raw["top_3_predictions"].([]interface{}); ok {
		for _, e := range entries {
			m := asMap(e)
			if m == nil {
				continue
			}
			r.Top3 = append(r.Top3, RankedDisease{
				Disease:     asString(m["disease"], ""),
				Probability: asFloat(m["probability"]),
			})
		}
	}

	vitals := asMap(raw["vital_signs_analysis"])
	r.Vitals = VitalsAnalysis{
		TemperatureStatus: asString(vitals["temperature_status"], unspecified),
		HeartRateStatus:   asString(vitals["heart_rate_status"], unspecified),
		FeverSeverity:     asString(vitals["fever_severity"], unspecified),
		HRSeverity:        asString(vitals["hr_severity"], unspecified),
	}

	syndromes := asMap(raw["syndrome_analysis"])
	r.Syndromes = SyndromeScores{
		Respiratory:  asFloat(syndromes["respiratory_score"]),
		GI:           asFloat(syndromes["gi_score"]),
		Systemic:     asFloat(syndromes["systemic_score"]),
		Neurological: asFloat(syndromes["neurological_score"]),
		MultiSystem:  asBool(syndromes["multi_system"]),
	}

	return r
}

// RecommendedDiseases returns the top-3 disease labels, skipping blanks.
// These double as the stored recommendation list.
func (r Result) RecommendedDiseases() []string {
	out := []string{}
	for _, d := range r.Top3 {
		if d.Disease != "" {
			out = append(out, d.Disease)
		}
	}
	return out
}
