package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/lunahq/luna/internal/models"
)

// ErrPredictionFailed is the single error PredictCycle surfaces; callers
// are expected to fall back to FallbackPrediction rather than show it.
var ErrPredictionFailed = errors.New("failed to generate predictions")

const (
	baseConfidence     = 0.85
	maxConfidence      = 0.95
	fallbackConfidence = 0.5

	minLutealPhaseDays      = 10
	maxLutealPhaseDays      = 14
	fallbackLutealPhaseDays = 14

	fertileDaysBeforeOvulation = 5
	fertileDaysAfterOvulation  = 1
)

type LifestyleFactors struct {
	StressLevel       int     `json:"stress_level"`
	ExerciseFrequency string  `json:"exercise_frequency"`
	SleepHours        float64 `json:"sleep_hours"`
}

type CycleObservation struct {
	Date     time.Time `json:"date"`
	CycleDay int       `json:"cycle_day"`
	Symptoms []string  `json:"symptoms,omitempty"`
	Mood     int       `json:"mood,omitempty"`
	Flow     string    `json:"flow,omitempty"`
}

type CycleProfile struct {
	LastPeriodStart time.Time          `json:"last_period_start"`
	CycleLength     int                `json:"cycle_length"`
	PeriodLength    int                `json:"period_length"`
	History         []CycleObservation `json:"history,omitempty"`
	AgeYears        int                `json:"age_years,omitempty"`
	Lifestyle       *LifestyleFactors  `json:"lifestyle,omitempty"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type PredictionResult struct {
	NextPeriodStart time.Time   `json:"next_period_start"`
	OvulationDate   time.Time   `json:"ovulation_date"`
	FertilityWindow DateRange   `json:"fertility_window"`
	Phases          []PhaseSpan `json:"phases"`
	Confidence      float64     `json:"confidence"`
	Recommendations []string    `json:"recommendations"`
}

// Predictor is a stateless calculator. The clock anchors "today" for
// normalizing stale period dates; the sampler, when set, overrides the
// deterministic lifestyle day adjustments (e.g. with a seeded rand source).
type Predictor struct {
	clock      func() time.Time
	sampleDays func(limit int) int
}

func NewPredictor() *Predictor {
	return &Predictor{clock: time.Now}
}

func NewPredictorWithSampler(sampleDays func(limit int) int) *Predictor {
	return &Predictor{clock: time.Now, sampleDays: sampleDays}
}

// PredictCycle is the public entry point: base prediction, then history
// refinement, then lifestyle refinement.
func (predictor *Predictor) PredictCycle(profile CycleProfile) (PredictionResult, error) {
	if err := validateProfile(profile); err != nil {
		return PredictionResult{}, fmt.Errorf("%w: %v", ErrPredictionFailed, err)
	}

	result := predictor.ComputeBasePrediction(profile)
	result = predictor.RefineWithHistory(result, profile)
	result = predictor.RefineWithLifestyle(result, profile)
	return result, nil
}

func (predictor *Predictor) ComputeBasePrediction(profile CycleProfile) PredictionResult {
	cycleLength, periodLength := resolveCycleAndPeriodLengths(profile)
	cycleStart := predictor.resolveCycleStart(profile.LastPeriodStart, cycleLength)

	return buildPrediction(
		cycleStart,
		cycleLength,
		periodLength,
		baseConfidence,
		baseRecommendations(profile.AgeYears, cycleLength),
	)
}

// FallbackPrediction is the fixed-rule calculation callers use when
// PredictCycle fails: next period one cycle out, ovulation 14 days before it.
func (predictor *Predictor) FallbackPrediction(profile CycleProfile) PredictionResult {
	cycleLength := profile.CycleLength
	if cycleLength <= 0 {
		cycleLength = models.DefaultCycleLength
	}
	periodLength := profile.PeriodLength
	if periodLength <= 0 || periodLength >= cycleLength {
		periodLength = models.DefaultPeriodLength
	}

	cycleStart := dateOnly(profile.LastPeriodStart)
	if cycleStart.IsZero() {
		cycleStart = dateOnly(predictor.clock())
	}

	nextPeriodStart := cycleStart.AddDate(0, 0, cycleLength)
	ovulationDate := nextPeriodStart.AddDate(0, 0, -fallbackLutealPhaseDays)

	return PredictionResult{
		NextPeriodStart: nextPeriodStart,
		OvulationDate:   ovulationDate,
		FertilityWindow: fertilityWindowAround(ovulationDate),
		Phases:          phaseSpansForCycle(cycleStart, cycleLength, periodLength),
		Confidence:      fallbackConfidence,
		Recommendations: genericRecommendations(),
	}
}

// buildPrediction derives every field from the cycle-start anchor in one
// step, so callers that move an anchor can never leave the window or phase
// list out of sync with it.
func buildPrediction(cycleStart time.Time, cycleLength int, periodLength int, confidence float64, recommendations []string) PredictionResult {
	nextPeriodStart := cycleStart.AddDate(0, 0, cycleLength)
	lutealPhaseDays := clampInt(roundHalfUp(float64(cycleLength)*0.5), minLutealPhaseDays, maxLutealPhaseDays)
	ovulationDate := nextPeriodStart.AddDate(0, 0, -lutealPhaseDays)

	return PredictionResult{
		NextPeriodStart: nextPeriodStart,
		OvulationDate:   ovulationDate,
		FertilityWindow: fertilityWindowAround(ovulationDate),
		Phases:          phaseSpansForCycle(cycleStart, cycleLength, periodLength),
		Confidence:      confidence,
		Recommendations: recommendations,
	}
}

func fertilityWindowAround(ovulationDate time.Time) DateRange {
	return DateRange{
		Start: ovulationDate.AddDate(0, 0, -fertileDaysBeforeOvulation),
		End:   ovulationDate.AddDate(0, 0, fertileDaysAfterOvulation),
	}
}

// resolveCycleStart normalizes the anchor to the start of the current
// cycle: a period date several cycles in the past is projected forward, so
// callers that pass raw historical dates and callers that pre-align agree.
func (predictor *Predictor) resolveCycleStart(lastPeriodStart time.Time, cycleLength int) time.Time {
	anchor := dateOnly(lastPeriodStart)
	today := dateOnly(predictor.clock())
	if anchor.IsZero() {
		return today
	}
	if today.Before(anchor) {
		return anchor
	}

	elapsedDays := daysBetween(anchor, today)
	cyclesElapsed := elapsedDays / cycleLength
	return anchor.AddDate(0, 0, cyclesElapsed*cycleLength)
}

func resolveCycleAndPeriodLengths(profile CycleProfile) (int, int) {
	cycleLength := profile.CycleLength
	if !models.IsValidCycleLength(cycleLength) {
		cycleLength = models.DefaultCycleLength
	}

	periodLength := profile.PeriodLength
	if !models.IsValidPeriodLength(periodLength) {
		periodLength = models.DefaultPeriodLength
	}

	return cycleLength, periodLength
}

func validateProfile(profile CycleProfile) error {
	if profile.CycleLength < 0 || profile.PeriodLength < 0 {
		return errors.New("negative cycle or period length")
	}
	if profile.CycleLength > 0 && profile.PeriodLength > 0 && profile.PeriodLength >= profile.CycleLength {
		return fmt.Errorf("period length %d must be shorter than cycle length %d", profile.PeriodLength, profile.CycleLength)
	}
	return nil
}

func roundHalfUp(value float64) int {
	return int(value + 0.5)
}

func clampInt(value int, low int, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func daysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
