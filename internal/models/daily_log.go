package models

import "time"

const (
	FlowNone   = "none"
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

type DailyLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	CycleDay  int       `json:"cycle_day,omitempty"`
	IsPeriod  bool      `gorm:"not null;default:false" json:"is_period"`
	Flow      string    `gorm:"not null;default:none" json:"flow"`
	Mood      int       `json:"mood,omitempty"`
	Symptoms  []string  `gorm:"serializer:json" json:"symptoms,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func IsValidFlow(value string) bool {
	switch value {
	case "", FlowNone, FlowLight, FlowMedium, FlowHeavy:
		return true
	}
	return false
}
