package services

import "github.com/lunahq/luna/internal/models"

const (
	highStressThreshold   = 7
	lowSleepHours         = 6.0
	maxStressDelayDays    = 2
	maxExerciseDelayDays  = 1
	stressConfidenceScale = 0.9
	sleepConfidenceScale  = 0.95
	sportConfidenceScale  = 0.92
)

// RefineWithLifestyle applies the three lifestyle rules in order: high
// stress, short sleep, daily training. Day adjustments shift the anchors
// and the whole result is rebuilt from the shifted anchors, so the window
// and phase list stay consistent.
func (predictor *Predictor) RefineWithLifestyle(result PredictionResult, profile CycleProfile) PredictionResult {
	lifestyle := profile.Lifestyle
	if lifestyle == nil {
		return result
	}

	adjustmentDays := 0
	confidence := result.Confidence
	recommendations := append([]string(nil), result.Recommendations...)

	if lifestyle.StressLevel > highStressThreshold {
		adjustmentDays += predictor.adjustmentDays(maxStressDelayDays, lifestyle.StressLevel-highStressThreshold-1)
		confidence *= stressConfidenceScale
		recommendations = append(recommendations,
			"High stress can delay ovulation. Consider stress management techniques such as meditation or breathing exercises.")
	}

	if lifestyle.SleepHours > 0 && lifestyle.SleepHours < lowSleepHours {
		adjustmentDays++
		confidence *= sleepConfidenceScale
		recommendations = append(recommendations,
			"Short sleep affects hormone production. Aim for 7-9 hours per night.")
	}

	if lifestyle.ExerciseFrequency == models.ExerciseDaily {
		adjustmentDays += predictor.adjustmentDays(maxExerciseDelayDays, maxExerciseDelayDays)
		confidence *= sportConfidenceScale
		recommendations = append(recommendations,
			"Intense daily training can lengthen cycles. Balance hard sessions with recovery days.")
	}

	result.Confidence = confidence
	result.Recommendations = recommendations
	if adjustmentDays == 0 {
		return result
	}

	cycleLength := models.DefaultCycleLength
	periodLength := models.DefaultPeriodLength
	if len(result.Phases) > 0 {
		cycleLength = daysBetween(result.Phases[0].Start, result.NextPeriodStart)
		periodLength = daysBetween(result.Phases[0].Start, result.Phases[0].End) + 1
	}

	result.NextPeriodStart = result.NextPeriodStart.AddDate(0, 0, adjustmentDays)
	cycleStart := result.NextPeriodStart.AddDate(0, 0, -cycleLength)
	result.OvulationDate = result.OvulationDate.AddDate(0, 0, adjustmentDays)
	result.FertilityWindow = fertilityWindowAround(result.OvulationDate)
	result.Phases = phaseSpansForCycle(cycleStart, cycleLength, periodLength)
	return result
}

// adjustmentDays returns the sampler's draw when one is injected, otherwise
// the deterministic value derived from the signal itself. Either way the
// result stays within [0, limit].
func (predictor *Predictor) adjustmentDays(limit int, deterministic int) int {
	if predictor.sampleDays != nil {
		return clampInt(predictor.sampleDays(limit), 0, limit)
	}
	return clampInt(deterministic, 0, limit)
}
