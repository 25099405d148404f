package services

const (
	typicalCycleLengthMin = 21
	typicalCycleLengthMax = 35
)

// baseRecommendations builds the rule-table tips: one per age bucket, one
// when the cycle length falls outside the typical range, plus the two
// always-present generic tips.
func baseRecommendations(ageYears int, cycleLength int) []string {
	recommendations := make([]string, 0, 4)

	switch {
	case ageYears == 0:
		// Age not provided; skip the bucket tip.
	case ageYears < 20:
		recommendations = append(recommendations,
			"Cycles are often irregular in the first years after they begin. Tracking consistently helps establish your personal baseline.")
	case ageYears >= 40:
		recommendations = append(recommendations,
			"Cycle length commonly shifts in the years approaching menopause. Discuss persistent changes with your healthcare provider.")
	case ageYears >= 35:
		recommendations = append(recommendations,
			"Keep an eye on gradual cycle changes after 35; they are common and worth tracking.")
	}

	if cycleLength < typicalCycleLengthMin || cycleLength > typicalCycleLengthMax {
		recommendations = append(recommendations,
			"Your cycle length is outside the typical 21-35 day range. Consider discussing this with a healthcare provider.")
	}

	return append(recommendations, genericRecommendations()...)
}

func genericRecommendations() []string {
	return []string{
		"Track your symptoms daily for more accurate predictions.",
		"Stay hydrated and keep a balanced diet throughout your cycle.",
	}
}
