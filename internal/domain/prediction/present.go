package prediction

import (
	"fmt"
	"math"
)

// View is the display-ready rendering of a Result. The model reports
// confidence as a fraction in 0..1; the view scales it to a whole
// percentage clamped to 0..100. The underlying Result keeps the raw
// numbers.
type View struct {
	Disease           string         `json:"disease"`
	ConfidencePercent int            `json:"confidence_percent"`
	ConfidenceLabel   string         `json:"confidence_label"`
	ConditionSeverity string         `json:"condition_severity"`
	TopDiseases       []RankedView   `json:"top_diseases"`
	Vitals            VitalsAnalysis `json:"vitals"`
	Syndromes         SyndromeScores `json:"syndromes"`
	Recommendations   []string       `json:"recommendations"`
}

// RankedView is one differential entry formatted for display.
type RankedView struct {
	Disease         string `json:"disease"`
	ProbabilityPct  int    `json:"probability_percent"`
	ProbabilityText string `json:"probability_label"`
}

func clampPercent(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

// Present renders a result for display.
func Present(r Result) View {
	pct := clampPercent(r.Confidence * 100)
	v := View{
		Disease:           r.Disease,
		ConfidencePercent: pct,
		ConfidenceLabel:   fmt.Sprintf("%d%%", pct),
		ConditionSeverity: r.ConditionSeverity,
		Vitals:            r.Vitals,
		Syndromes:         r.Syndromes,
		Recommendations:   r.RecommendedDiseases(),
	}
	for _, d := range r.Top3 {
		p := clampPercent(d.Probability * 100)
		v.TopDiseases = append(v.TopDiseases, RankedView{
			Disease:         d.Disease,
			ProbabilityPct:  p,
			ProbabilityText: fmt.Sprintf("%d%%", p),
		})
	}
	return v
}
