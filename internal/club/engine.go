// Package club is the group operations engine: the group registry, the
// membership state machine, activity scheduling with attendance, and the
// group ledger.
//
// Every mutating operation runs in one storage transaction that first
// resolves the caller's GroupRole, checks it, and then writes. Errors
// returned by the engine wrap one of ErrValidation, ErrForbidden,
// ErrNotFound or ErrConflict; anything else is an unexpected storage
// failure. Repeated requests that change nothing are reported through an
// Outcome, never as an error.
package club

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage"
)

var (
	// ErrValidation means the input was missing or malformed.
	ErrValidation = errors.New("invalid argument")
	// ErrForbidden means the caller's role does not allow the operation.
	ErrForbidden = errors.New("permission denied")
	// ErrNotFound means a referenced group, membership, activity or user is absent.
	ErrNotFound = errors.New("does not exist")
	// ErrConflict means a concurrent writer already claimed a unique value.
	ErrConflict = errors.New("already exists")
)

// Outcome describes what a membership operation did.
type Outcome string

const (
	// Applied means the requested transition happened.
	Applied Outcome = "applied"
	// AlreadyPending means a join request was already waiting.
	AlreadyPending Outcome = "already_pending"
	// AlreadyMember means the user already belongs to the group.
	AlreadyMember Outcome = "already_member"
	// AlreadyProcessed means the target membership was not in a state the
	// operation applies to, so nothing changed.
	AlreadyProcessed Outcome = "already_processed"
)

// MembershipResult is the membership after (or, for deletions, before) an
// operation, with what the operation did.
type MembershipResult struct {
	Membership models.Membership
	Outcome    Outcome
}

// Engine implements the group operations on top of a storage.Store.
type Engine struct {
	store storage.Store
	now   func() time.Time
	loc   *time.Location
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the zone used to read activity times given without an offset.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// New creates an Engine backed by store.
func New(store storage.Store, opts ...Option) *Engine {
	e := &Engine{store: store, now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func forbidden(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// translate maps storage sentinels onto engine errors. Errors that already
// carry an engine sentinel pass through.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation), errors.Is(err, ErrForbidden),
		errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict):
		return err
	case errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

// loadGroup reads a group, reporting a missing one as ErrNotFound.
func loadGroup(ctx context.Context, q storage.Queries, groupID string) (*models.Group, error) {
	if groupID == "" {
		return nil, invalid("group id is required")
	}
	group, err := q.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	return group, err
}

// roleIn returns the user's role in the group, or false if the user has no membership.
func roleIn(ctx context.Context, q storage.Queries, groupID, userID string) (*models.Membership, bool, error) {
	m, err := q.GetMembershipByUser(ctx, groupID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

// authorize loads the group and the caller's membership inside q and checks
// the membership's role with allow. action names the operation in the
// denial message.
func authorize(ctx context.Context, q storage.Queries, groupID string, p models.Principal,
	allow func(models.GroupRole) bool, action string) (*models.Group, *models.Membership, error) {
	if !p.Authenticated() {
		return nil, nil, forbidden("sign in to %s", action)
	}
	group, err := loadGroup(ctx, q, groupID)
	if err != nil {
		return nil, nil, err
	}
	m, ok, err := roleIn(ctx, q, groupID, p.UserID)
	if err != nil {
		return nil, nil, err
	}
	if !ok || !allow(m.Role) {
		return nil, nil, forbidden("not allowed to %s in this group", action)
	}
	return group, m, nil
}

// RoleOf returns the user's role in a group and whether the user has a
// membership at all. It is the authorization query other components use.
func (e *Engine) RoleOf(ctx context.Context, groupID, userID string) (models.GroupRole, bool, error) {
	if _, err := loadGroup(ctx, e.store, groupID); err != nil {
		return "", false, translate(err)
	}
	m, ok, err := roleIn(ctx, e.store, groupID, userID)
	if err != nil || !ok {
		return "", false, translate(err)
	}
	return m.Role, true, nil
}
