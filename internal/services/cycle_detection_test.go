package services

import (
	"testing"
	"time"

	"github.com/lunahq/luna/internal/models"
)

func periodLog(t *testing.T, day string, isPeriod bool) models.DailyLog {
	t.Helper()
	return models.DailyLog{Date: mustParseDay(t, day), IsPeriod: isPeriod}
}

func TestDetectCycleStarts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		logs []models.DailyLog
		want []string
	}{
		{
			name: "no logs",
			logs: nil,
			want: nil,
		},
		{
			name: "consecutive period days form one start",
			logs: []models.DailyLog{
				periodLog(t, "2024-01-01", true),
				periodLog(t, "2024-01-02", true),
				periodLog(t, "2024-01-03", true),
			},
			want: []string{"2024-01-01"},
		},
		{
			name: "short gap stays in the same episode",
			logs: []models.DailyLog{
				periodLog(t, "2024-01-01", true),
				periodLog(t, "2024-01-04", true),
			},
			want: []string{"2024-01-01"},
		},
		{
			name: "long gap opens a new cycle",
			logs: []models.DailyLog{
				periodLog(t, "2024-01-01", true),
				periodLog(t, "2024-01-02", true),
				periodLog(t, "2024-01-29", true),
				periodLog(t, "2024-01-30", true),
			},
			want: []string{"2024-01-01", "2024-01-29"},
		},
		{
			name: "unsorted input with non-period days",
			logs: []models.DailyLog{
				periodLog(t, "2024-01-29", true),
				periodLog(t, "2024-01-15", false),
				periodLog(t, "2024-01-01", true),
				periodLog(t, "2024-01-02", true),
			},
			want: []string{"2024-01-01", "2024-01-29"},
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			starts := DetectCycleStarts(testCase.logs)
			if len(starts) != len(testCase.want) {
				t.Fatalf("expected %d starts, got %d (%v)", len(testCase.want), len(starts), starts)
			}
			for index, want := range testCase.want {
				assertSameDay(t, "start", starts[index], want)
			}
		})
	}
}

func TestCycleDayForDate(t *testing.T) {
	t.Parallel()

	starts := []time.Time{
		mustParseDay(t, "2024-01-01"),
		mustParseDay(t, "2024-01-29"),
	}

	cases := []struct {
		day  string
		want int
	}{
		{day: "2023-12-31", want: 0},
		{day: "2024-01-01", want: 1},
		{day: "2024-01-15", want: 15},
		{day: "2024-01-29", want: 1},
		{day: "2024-02-05", want: 8},
	}

	for _, testCase := range cases {
		if got := CycleDayForDate(starts, mustParseDay(t, testCase.day)); got != testCase.want {
			t.Fatalf("day %s: expected cycle day %d, got %d", testCase.day, testCase.want, got)
		}
	}
}
