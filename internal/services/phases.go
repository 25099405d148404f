package services

import "time"

type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulatory  CyclePhase = "ovulatory"
	PhaseLuteal     CyclePhase = "luteal"
)

type PhaseSpan struct {
	Phase           CyclePhase `json:"phase"`
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	TypicalSymptoms []string   `json:"typical_symptoms"`
	MoodTrend       int        `json:"mood_trend"`
}

// Percentage split of the cycle after the bleeding days. This is the one
// canonical boundary rule; both prediction and pattern analysis use it.
const (
	follicularShare = 0.45
	ovulatoryShare  = 0.15
)

// phaseDayCounts splits a cycle into the four phase lengths. The counts
// always sum to cycleLength and every phase keeps at least one day.
func phaseDayCounts(cycleLength int, periodLength int) (int, int, int, int) {
	// A period consuming nearly the whole cycle leaves no room for the
	// other phases; cap it so each phase keeps at least one day.
	menstrualDays := clampInt(periodLength, 1, cycleLength-3)
	follicularDays := roundHalfUp(float64(cycleLength) * follicularShare)
	ovulatoryDays := roundHalfUp(float64(cycleLength) * ovulatoryShare)
	lutealDays := cycleLength - menstrualDays - follicularDays - ovulatoryDays

	for lutealDays < 1 && follicularDays > 1 {
		follicularDays--
		lutealDays++
	}
	for lutealDays < 1 && ovulatoryDays > 1 {
		ovulatoryDays--
		lutealDays++
	}

	return menstrualDays, follicularDays, ovulatoryDays, lutealDays
}

// phaseSpansForCycle walks forward from the cycle start, producing four
// contiguous spans with inclusive end dates.
func phaseSpansForCycle(cycleStart time.Time, cycleLength int, periodLength int) []PhaseSpan {
	menstrualDays, follicularDays, ovulatoryDays, lutealDays := phaseDayCounts(cycleLength, periodLength)

	spans := make([]PhaseSpan, 0, 4)
	cursor := cycleStart
	for _, segment := range []struct {
		phase CyclePhase
		days  int
	}{
		{PhaseMenstrual, menstrualDays},
		{PhaseFollicular, follicularDays},
		{PhaseOvulatory, ovulatoryDays},
		{PhaseLuteal, lutealDays},
	} {
		symptoms, moodTrend := phaseProfile(segment.phase)
		spans = append(spans, PhaseSpan{
			Phase:           segment.phase,
			Start:           cursor,
			End:             cursor.AddDate(0, 0, segment.days-1),
			TypicalSymptoms: symptoms,
			MoodTrend:       moodTrend,
		})
		cursor = cursor.AddDate(0, 0, segment.days)
	}

	return spans
}

// PhaseForCycleDay maps a 1-based cycle day onto a phase using the same
// split as phaseSpansForCycle.
func PhaseForCycleDay(cycleDay int, cycleLength int, periodLength int) CyclePhase {
	menstrualDays, follicularDays, ovulatoryDays, _ := phaseDayCounts(cycleLength, periodLength)

	switch {
	case cycleDay <= menstrualDays:
		return PhaseMenstrual
	case cycleDay <= menstrualDays+follicularDays:
		return PhaseFollicular
	case cycleDay <= menstrualDays+follicularDays+ovulatoryDays:
		return PhaseOvulatory
	default:
		return PhaseLuteal
	}
}

// Static phase content shown alongside predictions.
func phaseProfile(phase CyclePhase) ([]string, int) {
	switch phase {
	case PhaseMenstrual:
		return []string{"cramps", "fatigue", "back pain", "low energy"}, 4
	case PhaseFollicular:
		return []string{"rising energy", "improved mood", "clearer skin"}, 7
	case PhaseOvulatory:
		return []string{"increased libido", "mild pelvic pain", "discharge changes"}, 8
	case PhaseLuteal:
		return []string{"bloating", "mood swings", "breast tenderness", "food cravings"}, 5
	default:
		return nil, 0
	}
}
