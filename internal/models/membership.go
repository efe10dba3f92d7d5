package models

// GroupRole is a user's role inside one group.
type GroupRole string

const (
	RolePending GroupRole = "PENDING"
	RoleMember  GroupRole = "MEMBER"
	// RoleAdmin is a manager/treasurer: an operator below the leader.
	RoleAdmin  GroupRole = "ADMIN"
	RoleLeader GroupRole = "LEADER"
)

// AllGroupRoles lists every GroupRole, lowest privilege first.
var AllGroupRoles = []GroupRole{RolePending, RoleMember, RoleAdmin, RoleLeader}

// ParseGroupRole reports whether s names a known group role.
func ParseGroupRole(s string) (GroupRole, bool) {
	r := GroupRole(s)
	switch r {
	case RolePending, RoleMember, RoleAdmin, RoleLeader:
		return r, true
	}
	return "", false
}

// IsMember reports whether the role is a confirmed (non-pending) membership.
func (r GroupRole) IsMember() bool {
	switch r {
	case RoleMember, RoleAdmin, RoleLeader:
		return true
	}
	return false
}

// IsLeader reports whether the role is the group's leader.
func (r GroupRole) IsLeader() bool {
	return r == RoleLeader
}

// IsOperator reports whether the role may schedule activities and write the ledger.
func (r GroupRole) IsOperator() bool {
	switch r {
	case RoleLeader, RoleAdmin:
		return true
	}
	return false
}

// Label returns the human-readable name of the role.
func (r GroupRole) Label() string {
	switch r {
	case RolePending:
		return "Pending approval"
	case RoleMember:
		return "Member"
	case RoleAdmin:
		return "Manager"
	case RoleLeader:
		return "Leader"
	}
	return ""
}

// Membership links a user to a group with a role.
// Exactly one membership may exist per (group, user).
type Membership struct {
	// ID is the unique identifier for the membership (UUID format).
	ID      string
	GroupID string
	UserID  string
	Role    GroupRole

	// JoinedAt is when the request (or the group) was created.
	JoinedAt int64
	// UpdatedAt is when the role last changed.
	UpdatedAt int64
}

// Member is a membership joined with the user's nickname for rosters.
type Member struct {
	Membership
	Nickname string
}
