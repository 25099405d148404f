package services

import (
	"errors"
	"testing"

	"github.com/lunahq/luna/internal/models"
)

type fakeProfileReader struct {
	profile models.Profile
	found   bool
	err     error
}

func (reader fakeProfileReader) Get() (models.Profile, bool, error) {
	return reader.profile, reader.found, reader.err
}

type fakeDayReader struct {
	logs []models.DailyLog
	err  error
}

func (reader fakeDayReader) ListAll() ([]models.DailyLog, error) {
	return reader.logs, reader.err
}

func TestBuildProfile_StoredBaselineOnly(t *testing.T) {
	t.Parallel()

	lastPeriod := mustParseDay(t, "2024-01-01")
	service := NewPredictionService(
		fakeProfileReader{
			profile: models.Profile{
				CycleLength:     30,
				PeriodLength:    6,
				LastPeriodStart: &lastPeriod,
				AgeYears:        32,
				StressLevel:     8,
			},
			found: true,
		},
		fakeDayReader{},
		newFrozenPredictor(t, "2024-01-10"),
	)

	profile, err := service.BuildProfile()
	if err != nil {
		t.Fatalf("BuildProfile failed: %v", err)
	}

	if profile.CycleLength != 30 || profile.PeriodLength != 6 {
		t.Fatalf("expected stored lengths 30/6, got %d/%d", profile.CycleLength, profile.PeriodLength)
	}
	assertSameDay(t, "last period start", profile.LastPeriodStart, "2024-01-01")
	if profile.Lifestyle == nil || profile.Lifestyle.StressLevel != 8 {
		t.Fatalf("expected lifestyle with stress 8, got %+v", profile.Lifestyle)
	}
}

func TestBuildProfile_LoggedStartOverridesStoredAnchor(t *testing.T) {
	t.Parallel()

	staleAnchor := mustParseDay(t, "2023-11-01")
	service := NewPredictionService(
		fakeProfileReader{
			profile: models.Profile{
				CycleLength:     28,
				PeriodLength:    5,
				LastPeriodStart: &staleAnchor,
			},
			found: true,
		},
		fakeDayReader{logs: []models.DailyLog{
			{Date: mustParseDay(t, "2023-12-04"), IsPeriod: true},
			{Date: mustParseDay(t, "2024-01-01"), IsPeriod: true},
			{Date: mustParseDay(t, "2024-01-02"), IsPeriod: true, Mood: 4},
		}},
		newFrozenPredictor(t, "2024-01-10"),
	)

	profile, err := service.BuildProfile()
	if err != nil {
		t.Fatalf("BuildProfile failed: %v", err)
	}

	assertSameDay(t, "last period start", profile.LastPeriodStart, "2024-01-01")
	if len(profile.History) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(profile.History))
	}
	// Cycle days derive from the detected starts.
	if profile.History[0].CycleDay != 1 || profile.History[2].CycleDay != 2 {
		t.Fatalf("unexpected derived cycle days: %+v", profile.History)
	}
}

func TestBuildProfile_InvalidStoredValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()

	service := NewPredictionService(
		fakeProfileReader{
			profile: models.Profile{CycleLength: 200, PeriodLength: 0},
			found:   true,
		},
		fakeDayReader{},
		newFrozenPredictor(t, "2024-01-10"),
	)

	profile, err := service.BuildProfile()
	if err != nil {
		t.Fatalf("BuildProfile failed: %v", err)
	}
	if profile.CycleLength != models.DefaultCycleLength || profile.PeriodLength != models.DefaultPeriodLength {
		t.Fatalf("expected defaults, got %d/%d", profile.CycleLength, profile.PeriodLength)
	}
	if profile.Lifestyle != nil {
		t.Fatalf("expected no lifestyle factors, got %+v", profile.Lifestyle)
	}
}

func TestPredict_FromStoredData(t *testing.T) {
	t.Parallel()

	lastPeriod := mustParseDay(t, "2024-01-01")
	service := NewPredictionService(
		fakeProfileReader{
			profile: models.Profile{
				CycleLength:     28,
				PeriodLength:    5,
				LastPeriodStart: &lastPeriod,
			},
			found: true,
		},
		fakeDayReader{},
		newFrozenPredictor(t, "2024-01-10"),
	)

	result, usedFallback, err := service.Predict()
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if usedFallback {
		t.Fatalf("expected the full computation, not the fallback")
	}
	assertSameDay(t, "next period", result.NextPeriodStart, "2024-01-29")
	assertPredictionInvariants(t, result, 28)
}

func TestPredict_PropagatesStorageErrors(t *testing.T) {
	t.Parallel()

	storageErr := errors.New("database locked")
	service := NewPredictionService(
		fakeProfileReader{err: storageErr},
		fakeDayReader{},
		newFrozenPredictor(t, "2024-01-10"),
	)

	_, _, err := service.Predict()
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestAnalyzePatterns_NoLogs(t *testing.T) {
	t.Parallel()

	service := NewPredictionService(
		fakeProfileReader{},
		fakeDayReader{},
		newFrozenPredictor(t, "2024-01-10"),
	)

	_, err := service.AnalyzePatterns()
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestAnalyzePatterns_FromLogs(t *testing.T) {
	t.Parallel()

	logs := make([]models.DailyLog, 0, 3)
	start := mustParseDay(t, "2023-10-02")
	for cycle := 0; cycle < 3; cycle++ {
		logs = append(logs, models.DailyLog{
			Date:     start.AddDate(0, 0, cycle*28),
			IsPeriod: true,
			Symptoms: []string{"cramps"},
		})
	}

	service := NewPredictionService(
		fakeProfileReader{},
		fakeDayReader{logs: logs},
		newFrozenPredictor(t, "2024-01-10"),
	)

	summary, err := service.AnalyzePatterns()
	if err != nil {
		t.Fatalf("AnalyzePatterns failed: %v", err)
	}
	if summary.AverageCycleLength != 28 {
		t.Fatalf("expected average 28, got %f", summary.AverageCycleLength)
	}
	if len(summary.TopSymptoms) != 1 || summary.TopSymptoms[0].Name != "cramps" {
		t.Fatalf("expected cramps as top symptom, got %v", summary.TopSymptoms)
	}
}
