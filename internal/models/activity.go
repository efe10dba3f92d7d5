package models

// Activity is a scheduled event owned by a group.
type Activity struct {
	// ID is the unique identifier for the activity (UUID format).
	ID      string
	GroupID string
	Title   string

	// StartsAt is the Unix timestamp the activity begins.
	StartsAt int64
	// EndsAt is the Unix timestamp the activity ends, or 0 when open-ended.
	EndsAt int64

	Location string
	Content  string

	// Fee is the participation fee in whole currency units. Never negative.
	Fee int64

	CreatedBy string
	CreatedAt int64
}

// ActivitySummary is an activity with its attendance tallies.
type ActivitySummary struct {
	Activity

	// ExpectedCount counts RSVPs with intent ATTENDING. It is a pre-event
	// figure; check-ins are reported separately.
	ExpectedCount int
	PresentCount  int
	AbsentCount   int
}

// Intent is a pre-event RSVP answer.
type Intent string

const (
	IntentAttending    Intent = "ATTENDING"
	IntentNotAttending Intent = "NOT_ATTENDING"
	IntentUndecided    Intent = "UNDECIDED"
)

// ParseIntent reports whether s names a known RSVP intent.
func ParseIntent(s string) (Intent, bool) {
	i := Intent(s)
	switch i {
	case IntentAttending, IntentNotAttending, IntentUndecided:
		return i, true
	}
	return "", false
}

// Actual is the post-event check-in result.
type Actual string

const (
	ActualUnchecked Actual = "UNCHECKED"
	ActualPresent   Actual = "PRESENT"
	ActualAbsent    Actual = "ABSENT"
)

// ParseActual reports whether s names a known check-in result.
func ParseActual(s string) (Actual, bool) {
	a := Actual(s)
	switch a {
	case ActualUnchecked, ActualPresent, ActualAbsent:
		return a, true
	}
	return "", false
}

// AttendanceRecord holds one user's answer for one activity.
// Intent and Actual are independent: setting one never touches the other.
type AttendanceRecord struct {
	ActivityID string
	UserID     string
	Intent     Intent
	Actual     Actual

	// CheckedBy is the operator who recorded Actual, empty if unchecked or
	// the operator's account is gone.
	CheckedBy string
	// CheckedAt is when Actual was recorded, 0 if never.
	CheckedAt int64

	UpdatedAt int64

	// Nickname is filled in by roster queries.
	Nickname string
}
