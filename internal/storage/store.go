// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/clubhouse/internal/models"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// Store defines the interface for club storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the engine.
type Store interface {
	Queries

	// WithTx runs fn inside a single transaction. The Queries passed to fn
	// must be used for every read and write that belongs to the unit of work.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(q Queries) error) error

	// Close releases any resources held by the store.
	Close() error
}

// Queries is the full set of reads and writes, available both on the store
// and inside a transaction.
type Queries interface {
	UserStore
	GroupStore
	MembershipStore
	ActivityStore
	LedgerStore
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns ErrNotFound if no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns ErrNotFound if the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateNickname(ctx context.Context, userID, nickname string, updatedAt int64) error
	// DeleteUser removes the user. Memberships and RSVPs cascade; ledger
	// actors and check-in operators are nulled.
	DeleteUser(ctx context.Context, userID string) error
}

// GroupStore persists groups.
type GroupStore interface {
	// CreateGroup inserts the group, populating ID and CreatedAt if unset.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	// ListGroups returns listed (recruiting or operating) groups matching the
	// filter, newest first.
	ListGroups(ctx context.Context, filter models.GroupFilter) ([]models.Group, error)
	// UpdateGroup overwrites every mutable column of the group.
	UpdateGroup(ctx context.Context, group *models.Group) error
}

// MembershipStore persists memberships.
type MembershipStore interface {
	// CreateMembership inserts the membership, populating ID and timestamps if unset.
	CreateMembership(ctx context.Context, m *models.Membership) error
	// GetMembership looks the membership up scoped to its group.
	GetMembership(ctx context.Context, groupID, membershipID string) (*models.Membership, error)
	GetMembershipByUser(ctx context.Context, groupID, userID string) (*models.Membership, error)
	UpdateMembershipRole(ctx context.Context, membershipID string, role models.GroupRole, updatedAt int64) error
	DeleteMembership(ctx context.Context, membershipID string) error
	// ListMembers returns the group's memberships with nicknames, leader first.
	ListMembers(ctx context.Context, groupID string) ([]models.Member, error)
	// CountMembers returns the confirmed and pending membership counts.
	CountMembers(ctx context.Context, groupID string) (members, pending int, err error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]models.Membership, error)
}

// ActivityStore persists activities and attendance records.
type ActivityStore interface {
	// CreateActivity inserts the activity, populating ID and CreatedAt if unset.
	CreateActivity(ctx context.Context, activity *models.Activity) error
	GetActivity(ctx context.Context, activityID string) (*models.Activity, error)
	// ListActivities returns the group's activities by start time, ascending.
	ListActivities(ctx context.Context, groupID string) ([]models.Activity, error)
	// UpsertIntent sets only the intent of the (activity, user) record.
	UpsertIntent(ctx context.Context, rec *models.AttendanceRecord) error
	// UpsertActual sets only the check-in fields of the (activity, user) record.
	UpsertActual(ctx context.Context, rec *models.AttendanceRecord) error
	// GetAttendance returns the (activity, user) record with nickname.
	GetAttendance(ctx context.Context, activityID, userID string) (*models.AttendanceRecord, error)
	// ListAttendance returns one activity's records with nicknames.
	ListAttendance(ctx context.Context, activityID string) ([]models.AttendanceRecord, error)
	// ListAttendanceByGroup returns the records of every activity in the group.
	ListAttendanceByGroup(ctx context.Context, groupID string) ([]models.AttendanceRecord, error)
}

// LedgerStore persists ledger entries. There is intentionally no update or delete.
type LedgerStore interface {
	// AppendLedgerEntry inserts the entry, populating ID and RecordedAt if unset.
	AppendLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error
	// ListLedger returns the group's entries oldest first, with ActorName
	// resolved (SystemActor when the actor is gone). Balance is left zero.
	ListLedger(ctx context.Context, groupID string) ([]models.LedgerLine, error)
	// SumLedger returns the sum of the group's amounts, 0 when empty.
	SumLedger(ctx context.Context, groupID string) (int64, error)
	// LedgerTotals returns the sum of the group's positive amounts and the
	// magnitude of the sum of its negative amounts, 0 and 0 when empty.
	LedgerTotals(ctx context.Context, groupID string) (income, expenses int64, err error)
}
