package services

import (
	"errors"
	"time"

	"github.com/lunahq/luna/internal/models"
)

type ProfileReader interface {
	Get() (models.Profile, bool, error)
}

type DayReader interface {
	ListAll() ([]models.DailyLog, error)
}

// PredictionService assembles a CycleProfile from stored data and runs the
// predictor over it.
type PredictionService struct {
	profiles  ProfileReader
	days      DayReader
	predictor *Predictor
}

func NewPredictionService(profiles ProfileReader, days DayReader, predictor *Predictor) *PredictionService {
	if predictor == nil {
		predictor = NewPredictor()
	}
	return &PredictionService{
		profiles:  profiles,
		days:      days,
		predictor: predictor,
	}
}

// BuildProfile merges the stored baseline with logged days: the latest
// detected period start wins over the stated one, and every logged day
// becomes a history observation with a derived cycle day.
func (service *PredictionService) BuildProfile() (CycleProfile, error) {
	stored, found, err := service.profiles.Get()
	if err != nil {
		return CycleProfile{}, err
	}

	logs, err := service.days.ListAll()
	if err != nil {
		return CycleProfile{}, err
	}

	profile := CycleProfile{
		CycleLength:  models.DefaultCycleLength,
		PeriodLength: models.DefaultPeriodLength,
	}
	if found {
		if models.IsValidCycleLength(stored.CycleLength) {
			profile.CycleLength = stored.CycleLength
		}
		if models.IsValidPeriodLength(stored.PeriodLength) {
			profile.PeriodLength = stored.PeriodLength
		}
		if stored.LastPeriodStart != nil {
			profile.LastPeriodStart = dateOnly(*stored.LastPeriodStart)
		}
		profile.AgeYears = stored.AgeYears
		profile.Lifestyle = lifestyleFromProfile(stored)
	}

	starts := DetectCycleStarts(logs)
	if len(starts) > 0 {
		profile.LastPeriodStart = starts[len(starts)-1]
	}
	profile.History = historyFromLogs(logs, starts)

	return profile, nil
}

// Predict runs the full pipeline over stored data. When the computation
// fails it returns the fixed-rule fallback and reports that it did so.
func (service *PredictionService) Predict() (PredictionResult, bool, error) {
	profile, err := service.BuildProfile()
	if err != nil {
		return PredictionResult{}, false, err
	}

	result, err := service.predictor.PredictCycle(profile)
	if err != nil {
		if errors.Is(err, ErrPredictionFailed) {
			return service.predictor.FallbackPrediction(profile), true, nil
		}
		return PredictionResult{}, false, err
	}
	return result, false, nil
}

// AnalyzePatterns runs pattern analysis over the stored history.
func (service *PredictionService) AnalyzePatterns() (PatternSummary, error) {
	logs, err := service.days.ListAll()
	if err != nil {
		return PatternSummary{}, err
	}

	starts := DetectCycleStarts(logs)
	return AnalyzeCyclePattern(historyFromLogs(logs, starts))
}

func historyFromLogs(logs []models.DailyLog, starts []time.Time) []CycleObservation {
	history := make([]CycleObservation, 0, len(logs))
	for _, logEntry := range logs {
		cycleDay := logEntry.CycleDay
		if cycleDay <= 0 {
			cycleDay = CycleDayForDate(starts, logEntry.Date)
		}
		history = append(history, CycleObservation{
			Date:     dateOnly(logEntry.Date),
			CycleDay: cycleDay,
			Symptoms: logEntry.Symptoms,
			Mood:     logEntry.Mood,
			Flow:     logEntry.Flow,
		})
	}
	return history
}

func lifestyleFromProfile(stored models.Profile) *LifestyleFactors {
	if stored.StressLevel == 0 && stored.ExerciseFrequency == "" && stored.SleepHours == 0 {
		return nil
	}
	return &LifestyleFactors{
		StressLevel:       stored.StressLevel,
		ExerciseFrequency: stored.ExerciseFrequency,
		SleepHours:        stored.SleepHours,
	}
}
