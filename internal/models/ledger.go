package models

// SystemActor labels ledger lines whose recording user no longer exists.
const SystemActor = "system"

// LedgerEntry is an immutable amount recorded against a group.
type LedgerEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID      string
	GroupID string

	// Amount is signed: income positive, expense negative.
	Amount      int64
	Description string

	// ActorID is the user who recorded the entry. Empty once that user is deleted.
	ActorID string

	// RecordedAt is the server-assigned Unix timestamp.
	RecordedAt int64
}

// LedgerLine is a ledger entry prepared for display.
type LedgerLine struct {
	LedgerEntry

	// ActorName is the recorder's nickname, or SystemActor.
	ActorName string

	// Balance is the group's running balance right after this entry.
	Balance int64
}
