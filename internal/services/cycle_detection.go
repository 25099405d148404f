package services

import (
	"sort"
	"time"

	"github.com/lunahq/luna/internal/models"
)

// A period day starting after at least this many non-period days opens a
// new cycle; shorter gaps are treated as the same bleeding episode.
const newCycleGapDays = 5

// DetectCycleStarts finds period start dates in logged days, in
// chronological order.
func DetectCycleStarts(logs []models.DailyLog) []time.Time {
	if len(logs) == 0 {
		return nil
	}

	sorted := make([]models.DailyLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	starts := make([]time.Time, 0)
	var previousPeriodDay time.Time

	for _, logEntry := range sorted {
		day := dateOnly(logEntry.Date)
		if !logEntry.IsPeriod {
			continue
		}

		if previousPeriodDay.IsZero() {
			starts = append(starts, day)
			previousPeriodDay = day
			continue
		}

		gapDays := daysBetween(previousPeriodDay, day) - 1
		if gapDays >= newCycleGapDays {
			starts = append(starts, day)
		}
		previousPeriodDay = day
	}

	return starts
}

// CycleDayForDate is the 1-based day within the cycle opened by the most
// recent start on or before the given day; zero when no start precedes it.
func CycleDayForDate(starts []time.Time, day time.Time) int {
	day = dateOnly(day)
	for index := len(starts) - 1; index >= 0; index-- {
		if !starts[index].After(day) {
			return daysBetween(starts[index], day) + 1
		}
	}
	return 0
}
