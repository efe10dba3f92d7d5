package calculator

import "github.com/mmynk/clubhouse/internal/models"

// Tally is the attendance count for one activity.
type Tally struct {
	// Expected counts RSVPs with intent ATTENDING.
	Expected int
	// Present and Absent count check-ins.
	Present int
	Absent  int
}

// TallyAttendance groups records by activity ID and counts them.
// Intent and actual are counted independently; a record can add to both
// Expected and Absent.
func TallyAttendance(records []models.AttendanceRecord) map[string]Tally {
	tallies := make(map[string]Tally)
	for _, r := range records {
		t := tallies[r.ActivityID]
		if r.Intent == models.IntentAttending {
			t.Expected++
		}
		switch r.Actual {
		case models.ActualPresent:
			t.Present++
		case models.ActualAbsent:
			t.Absent++
		}
		tallies[r.ActivityID] = t
	}
	return tallies
}

// Summarize attaches tallies to activities, preserving their order.
func Summarize(activities []models.Activity, tallies map[string]Tally) []models.ActivitySummary {
	out := make([]models.ActivitySummary, len(activities))
	for i, a := range activities {
		t := tallies[a.ID]
		out[i] = models.ActivitySummary{
			Activity:      a,
			ExpectedCount: t.Expected,
			PresentCount:  t.Present,
			AbsentCount:   t.Absent,
		}
	}
	return out
}
