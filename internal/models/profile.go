package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

const (
	ExerciseNone     = "none"
	ExerciseLight    = "light"
	ExerciseModerate = "moderate"
	ExerciseHigh     = "high"
	ExerciseDaily    = "daily"
)

// Profile stores the single owner's cycle baseline and lifestyle factors.
// The service is single-tenant, so exactly one row exists (id = 1).
type Profile struct {
	ID                uint       `gorm:"primaryKey" json:"-"`
	CycleLength       int        `gorm:"not null;default:28" json:"cycle_length"`
	PeriodLength      int        `gorm:"not null;default:5" json:"period_length"`
	LastPeriodStart   *time.Time `gorm:"type:date" json:"last_period_start,omitempty"`
	AgeYears          int        `json:"age_years,omitempty"`
	StressLevel       int        `json:"stress_level,omitempty"`
	ExerciseFrequency string     `json:"exercise_frequency,omitempty"`
	SleepHours        float64    `json:"sleep_hours,omitempty"`
	CreatedAt         time.Time  `json:"-"`
	UpdatedAt         time.Time  `json:"-"`
}

func IsValidCycleLength(value int) bool {
	return value >= 15 && value <= 90
}

func IsValidPeriodLength(value int) bool {
	return value >= 1 && value <= 14
}

func IsValidExerciseFrequency(value string) bool {
	switch value {
	case "", ExerciseNone, ExerciseLight, ExerciseModerate, ExerciseHigh, ExerciseDaily:
		return true
	}
	return false
}
