package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lunahq/luna/internal/models"
)

// ErrInsufficientData is returned when pattern analysis has nothing to
// work with; callers recover by simply not showing the panel yet.
var ErrInsufficientData = errors.New("insufficient cycle data for pattern analysis")

const topSymptomCount = 5

const (
	veryRegularStdDevDays = 2.0
	irregularStdDevDays   = 5.0
)

type SymptomFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PatternSummary struct {
	AverageCycleLength float64                `json:"average_cycle_length"`
	CycleVariability   float64                `json:"cycle_variability"`
	TopSymptoms        []SymptomFrequency     `json:"top_symptoms"`
	MoodByPhase        map[CyclePhase]float64 `json:"mood_by_phase"`
	Insights           []string               `json:"insights"`
}

// AnalyzeCyclePattern summarizes logged history: cycle-length statistics,
// the most frequent symptoms, mean mood per phase, and insight strings.
func AnalyzeCyclePattern(history []CycleObservation) (PatternSummary, error) {
	if len(history) == 0 {
		return PatternSummary{}, ErrInsufficientData
	}

	lengths := consecutiveCycleStartLengths(history)
	mean, stdDev := meanAndPopulationStdDev(lengths)

	referenceCycleLength := models.DefaultCycleLength
	if mean > 0 {
		referenceCycleLength = roundHalfUp(mean)
	}

	summary := PatternSummary{
		AverageCycleLength: mean,
		CycleVariability:   stdDev,
		TopSymptoms:        topSymptoms(history, topSymptomCount),
		MoodByPhase:        moodByPhase(history, referenceCycleLength),
	}
	summary.Insights = patternInsights(summary, len(lengths))
	return summary, nil
}

// consecutiveCycleStartLengths differences the dates of cycle-start
// entries (cycle day 1) in chronological order.
func consecutiveCycleStartLengths(history []CycleObservation) []int {
	starts := make([]time.Time, 0, len(history))
	for _, observation := range history {
		if observation.CycleDay == 1 && !observation.Date.IsZero() {
			starts = append(starts, dateOnly(observation.Date))
		}
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	lengths := make([]int, 0, len(starts))
	for index := 1; index < len(starts); index++ {
		lengths = append(lengths, daysBetween(starts[index-1], starts[index]))
	}
	return lengths
}

func meanAndPopulationStdDev(values []int) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	mean := averageInts(values)
	var sumSquares float64
	for _, value := range values {
		delta := float64(value) - mean
		sumSquares += delta * delta
	}
	return mean, math.Sqrt(sumSquares / float64(len(values)))
}

// topSymptoms counts raw occurrences; ties keep first-seen order.
func topSymptoms(history []CycleObservation, limit int) []SymptomFrequency {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, observation := range history {
		for _, symptom := range observation.Symptoms {
			name := strings.TrimSpace(symptom)
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				firstSeen[name] = order
				order++
			}
			counts[name]++
		}
	}

	frequencies := make([]SymptomFrequency, 0, len(counts))
	for name, count := range counts {
		frequencies = append(frequencies, SymptomFrequency{Name: name, Count: count})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count == frequencies[j].Count {
			return firstSeen[frequencies[i].Name] < firstSeen[frequencies[j].Name]
		}
		return frequencies[i].Count > frequencies[j].Count
	})

	if len(frequencies) > limit {
		frequencies = frequencies[:limit]
	}
	return frequencies
}

// moodByPhase averages mood scores per phase, assigning each entry's
// phase through the canonical boundary rule. Entries without a cycle day
// or mood score are skipped rather than guessed.
func moodByPhase(history []CycleObservation, cycleLength int) map[CyclePhase]float64 {
	totals := make(map[CyclePhase]int)
	counts := make(map[CyclePhase]int)

	for _, observation := range history {
		if observation.CycleDay < 1 || observation.Mood <= 0 {
			continue
		}
		phase := PhaseForCycleDay(observation.CycleDay, cycleLength, models.DefaultPeriodLength)
		totals[phase] += observation.Mood
		counts[phase]++
	}

	averages := make(map[CyclePhase]float64, len(totals))
	for phase, total := range totals {
		averages[phase] = float64(total) / float64(counts[phase])
	}
	return averages
}

func patternInsights(summary PatternSummary, completedCycles int) []string {
	insights := make([]string, 0, 3)

	if completedCycles > 0 {
		switch {
		case summary.CycleVariability < veryRegularStdDevDays:
			insights = append(insights, "Your cycles are very regular, which makes predictions more reliable.")
		case summary.CycleVariability > irregularStdDevDays:
			insights = append(insights, "Your cycles show significant variability. Predictions carry wider uncertainty.")
		}
	}

	for _, frequency := range summary.TopSymptoms {
		if isMoodRelatedSymptom(frequency.Name) {
			insights = append(insights, "Mood-related symptoms appear frequently in your logs. Tracking them against cycle phases can reveal hormonal patterns.")
			break
		}
	}

	return insights
}

func isMoodRelatedSymptom(name string) bool {
	lowered := strings.ToLower(name)
	for _, marker := range []string{"mood", "irritab", "anxiet", "depress", "emotional"} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
