package services

import (
	"testing"
	"time"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

// newFrozenPredictor pins "today" so normalization is reproducible.
func newFrozenPredictor(t *testing.T, today string) *Predictor {
	t.Helper()
	day := mustParseDay(t, today)
	return &Predictor{clock: func() time.Time { return day }}
}

func assertSameDay(t *testing.T, label string, got time.Time, want string) {
	t.Helper()
	if formatted := got.Format("2006-01-02"); formatted != want {
		t.Fatalf("%s: expected %s, got %s", label, want, formatted)
	}
}

// assertPredictionInvariants checks the ordering and phase-coverage rules
// that must hold for every valid prediction.
func assertPredictionInvariants(t *testing.T, result PredictionResult, cycleLength int) {
	t.Helper()

	if !result.OvulationDate.Before(result.NextPeriodStart) {
		t.Fatalf("expected ovulation %s before next period %s",
			result.OvulationDate.Format("2006-01-02"),
			result.NextPeriodStart.Format("2006-01-02"))
	}
	if !result.FertilityWindow.Start.Before(result.FertilityWindow.End) {
		t.Fatalf("expected fertility window start before end")
	}
	if !result.FertilityWindow.End.Before(result.NextPeriodStart) {
		t.Fatalf("expected fertility window end %s before next period %s",
			result.FertilityWindow.End.Format("2006-01-02"),
			result.NextPeriodStart.Format("2006-01-02"))
	}

	if len(result.Phases) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(result.Phases))
	}
	totalDays := 0
	for index, span := range result.Phases {
		if span.End.Before(span.Start) {
			t.Fatalf("phase %s ends before it starts", span.Phase)
		}
		if index > 0 {
			expectedStart := result.Phases[index-1].End.AddDate(0, 0, 1)
			if !span.Start.Equal(expectedStart) {
				t.Fatalf("phase %s starts %s, expected contiguous start %s",
					span.Phase, span.Start.Format("2006-01-02"), expectedStart.Format("2006-01-02"))
			}
		}
		totalDays += daysBetween(span.Start, span.End) + 1
	}
	if totalDays != cycleLength {
		t.Fatalf("expected phase spans to cover %d days, got %d", cycleLength, totalDays)
	}

	if result.Confidence < 0 || result.Confidence > maxConfidence {
		t.Fatalf("confidence %f outside [0, %f]", result.Confidence, maxConfidence)
	}
}
