package services

import (
	"math"
	"sort"
	"time"
)

const (
	minHistoryForRefinement = 3

	// Cycle-start differences outside this open interval are treated as
	// logging gaps, not real cycles.
	minPlausibleCycleDays = 20
	maxPlausibleCycleDays = 40
)

// RefineWithHistory re-anchors the prediction on the average of the logged
// cycle lengths and the profile's stated length. Fewer than three history
// entries, or no plausible logged lengths, leaves the prediction untouched.
func (predictor *Predictor) RefineWithHistory(result PredictionResult, profile CycleProfile) PredictionResult {
	if len(profile.History) < minHistoryForRefinement {
		return result
	}

	observed := observedCycleLengths(profile.History)
	if len(observed) == 0 {
		return result
	}

	statedCycleLength, _ := resolveCycleAndPeriodLengths(profile)
	averagedCycleLength := roundHalfUp((averageInts(observed) + float64(statedCycleLength)) / 2)

	refined := profile
	refined.CycleLength = averagedCycleLength
	refreshed := predictor.ComputeBasePrediction(refined)
	refreshed.Confidence = math.Min(maxConfidence, result.Confidence+0.02*float64(len(profile.History)))
	return refreshed
}

// observedCycleLengths differences consecutive cycle-start entries
// (cycle day 1) and keeps only plausible lengths.
func observedCycleLengths(history []CycleObservation) []int {
	starts := make([]time.Time, 0, len(history))
	for _, observation := range history {
		if observation.CycleDay == 1 && !observation.Date.IsZero() {
			starts = append(starts, dateOnly(observation.Date))
		}
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	lengths := make([]int, 0, len(starts))
	for index := 1; index < len(starts); index++ {
		length := daysBetween(starts[index-1], starts[index])
		if length > minPlausibleCycleDays && length < maxPlausibleCycleDays {
			lengths = append(lengths, length)
		}
	}
	return lengths
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}
