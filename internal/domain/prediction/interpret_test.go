package prediction

import "testing"

func fullResponse() map[string]interface{} {
	return map[string]interface{}{
		"predicted_disease": "Mastitis",
		"confidence":        0.874,
		"top_3_predictions": []interface{}{
			map[string]interface{}{"disease": "Mastitis", "probability": 0.874},
			map[string]interface{}{"disease": "Milk Fever", "probability": 0.081},
			map[string]interface{}{"disease": "Ketosis", "probability": 0.045},
		},
		"vital_signs_analysis": map[string]interface{}{
			"temperature_status": "elevated",
			"heart_rate_status":  "normal",
			"fever_severity":     "moderate",
			"hr_severity":        "none",
		},
		"syndrome_analysis": map[string]interface{}{
			"respiratory_score":  1.0,
			"gi_score":           0.0,
			"systemic_score":     2.0,
			"neurological_score": 0.0,
			"multi_system":       true,
		},
		"condition_severity": "Acute",
	}
}

func TestInterpret_FullResponse(t *testing.T) {
	r := Interpret(fullResponse())

	if r.Disease != "Mastitis" {
		t.Errorf("expected Mastitis, got %q", r.Disease)
	}
	if r.Confidence != 0.874 {
		t.Errorf("expected confidence 0.874, got %v", r.Confidence)
	}
	if len(r.Top3) != 3 {
		t.Fatalf("expected 3 ranked diseases, got %d", len(r.Top3))
	}
	if r.Top3[1].Disease != "Milk Fever" || r.Top3[1].Probability != 0.081 {
		t.Errorf("second differential wrong: %+v", r.Top3[1])
	}
	if r.Vitals.TemperatureStatus != "elevated" || r.Vitals.FeverSeverity != "moderate" {
		t.Errorf("vitals wrong: %+v", r.Vitals)
	}
	if r.Syndromes.Systemic != 2.0 || !r.Syndromes.MultiSystem {
		t.Errorf("syndromes wrong: %+v", r.Syndromes)
	}
	if r.ConditionSeverity != "Acute" {
		t.Errorf("expected Acute, got %q", r.ConditionSeverity)
	}
}

func TestInterpret_EmptyResponse(t *testing.T) {
	r := Interpret(map[string]interface{}{})

	if r.Disease != "" || r.Confidence != 0 {
		t.Errorf("expected zero values, got %+v", r)
	}
	if len(r.Top3) != 0 {
		t.Errorf("expected no differential, got %v", r.Top3)
	}
	if r.Vitals.TemperatureStatus != "unspecified" || r.Vitals.HRSeverity != "unspecified" {
		t.Errorf("missing statuses must read unspecified: %+v", r.Vitals)
	}
	if r.ConditionSeverity != "unspecified" {
		t.Errorf("missing severity must read unspecified, got %q", r.ConditionSeverity)
	}
}

func TestInterpret_MalformedSectionsTolerated(t *testing.T) {
	raw := map[string]interface{}{
		"predicted_disease":    "Foot Rot",
		"confidence":           "not-a-number",
		"top_3_predictions":    "oops",
		"vital_signs_analysis": []interface{}{"wrong shape"},
		"syndrome_analysis":    nil,
		"condition_severity":   42,
	}
	r := Interpret(raw)

	if r.Disease != "Foot Rot" {
		t.Errorf("good fields must survive bad neighbors, got %q", r.Disease)
	}
	if r.Confidence != 0 {
		t.Errorf("mistyped confidence must default to 0, got %v", r.Confidence)
	}
	if len(r.Top3) != 0 {
		t.Errorf("mistyped differential must be empty, got %v", r.Top3)
	}
	if r.Vitals.TemperatureStatus != "unspecified" {
		t.Errorf("bad vitals section must default, got %+v", r.Vitals)
	}
	if r.ConditionSeverity != "unspecified" {
		t.Errorf("mistyped severity must default, got %q", r.ConditionSeverity)
	}
}

func TestInterpret_ProbabilitiesNotRenormalized(t *testing.T) {
	raw := map[string]interface{}{
		"predicted_disease": "Bloat",
		"confidence":        1.2,
		"top_3_predictions": []interface{}{
			map[string]interface{}{"disease": "Bloat", "probability": 1.2},
			map[string]interface{}{"disease": "Colic", "probability": -0.04},
		},
	}
	r := Interpret(raw)

	if r.Confidence != 1.2 {
		t.Errorf("interpretation must carry raw confidence, got %v", r.Confidence)
	}
	if r.Top3[0].Probability != 1.2 || r.Top3[1].Probability != -0.04 {
		t.Errorf("probabilities must not be renormalized: %+v", r.Top3)
	}
}

func TestRecommendedDiseases_SkipsBlanks(t *testing.T) {
	r := Result{Top3: []RankedDisease{
		{Disease: "Mastitis"}, {Disease: ""}, {Disease: "Ketosis"},
	}}
	got := r.RecommendedDiseases()
	if len(got) != 2 || got[0] != "Mastitis" || got[1] != "Ketosis" {
		t.Errorf("unexpected recommendations: %v", got)
	}
}
