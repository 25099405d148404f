package api

type profileInput struct {
	CycleLength       int     `json:"cycle_length"`
	PeriodLength      int     `json:"period_length"`
	LastPeriodStart   string  `json:"last_period_start"`
	AgeYears          int     `json:"age_years"`
	StressLevel       int     `json:"stress_level"`
	ExerciseFrequency string  `json:"exercise_frequency"`
	SleepHours        float64 `json:"sleep_hours"`
}

type dayInput struct {
	IsPeriod bool     `json:"is_period"`
	Flow     string   `json:"flow"`
	Mood     int      `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type previewInput struct {
	LastPeriodStart string            `json:"last_period_start"`
	CycleLength     int               `json:"cycle_length"`
	PeriodLength    int               `json:"period_length"`
	AgeYears        int               `json:"age_years"`
	Lifestyle       *lifestyleInput   `json:"lifestyle"`
	History         []previewDayInput `json:"history"`
}

type lifestyleInput struct {
	StressLevel       int     `json:"stress_level"`
	ExerciseFrequency string  `json:"exercise_frequency"`
	SleepHours        float64 `json:"sleep_hours"`
}

type previewDayInput struct {
	Date     string   `json:"date"`
	CycleDay int      `json:"cycle_day"`
	Symptoms []string `json:"symptoms"`
	Mood     int      `json:"mood"`
	Flow     string   `json:"flow"`
}

type chatMessageInput struct {
	Content string `json:"content"`
}
