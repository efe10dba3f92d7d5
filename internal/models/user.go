package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteRole is the site-wide administrative role of a user.
// It never grants anything inside a group; see GroupRole for that.
type SiteRole string

const (
	SiteRoleGeneral SiteRole = "general"
	SiteRoleManager SiteRole = "manager"
	SiteRoleAdmin   SiteRole = "admin"
)

// Valid reports whether r is a known site role.
func (r SiteRole) Valid() bool {
	switch r {
	case SiteRoleGeneral, SiteRoleManager, SiteRoleAdmin:
		return true
	}
	return false
}

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// Nickname is the unique display name. The only identity field that may
	// change after signup.
	Nickname string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed over the API.
	PasswordHash string

	// SiteRole is the site-wide administrative role.
	SiteRole SiteRole

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change (nickname edits).
	UpdatedAt int64
}

// NewUser creates a new general user with a generated ID and timestamps.
func NewUser(email, nickname, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		Nickname:     nickname,
		PasswordHash: passwordHash,
		SiteRole:     SiteRoleGeneral,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Principal is the authenticated caller as handed to the engine by the
// identity collaborator. The zero value is an anonymous caller.
type Principal struct {
	UserID   string
	Email    string
	Nickname string
	SiteRole SiteRole
}

// Authenticated reports whether the principal identifies a user.
func (p Principal) Authenticated() bool {
	return p.UserID != ""
}
