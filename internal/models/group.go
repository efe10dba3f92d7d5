package models

import "strings"

// Category classifies what a group does.
type Category string

const (
	CategorySports  Category = "sports"
	CategoryArt     Category = "art"
	CategoryMusic   Category = "music"
	CategoryCooking Category = "cooking"
	CategoryReading Category = "reading"
	CategoryOther   Category = "other"
)

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategorySports, CategoryArt, CategoryMusic, CategoryCooking, CategoryReading, CategoryOther:
		return c, true
	}
	return "", false
}

// GroupStatus is the lifecycle state of a group.
type GroupStatus string

const (
	// GroupRecruiting is the initial status: open for join requests.
	GroupRecruiting GroupStatus = "recruiting"
	// GroupClosed groups are hidden from listings and refuse join requests.
	GroupClosed GroupStatus = "closed"
	// GroupOperating groups are active and still listed.
	GroupOperating GroupStatus = "operating"
)

// ParseGroupStatus normalizes s and reports whether it names a known status.
func ParseGroupStatus(s string) (GroupStatus, bool) {
	st := GroupStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case GroupRecruiting, GroupClosed, GroupOperating:
		return st, true
	}
	return "", false
}

// Listed reports whether groups in this status appear in discovery listings.
func (s GroupStatus) Listed() bool {
	return s == GroupRecruiting || s == GroupOperating
}

// Group represents a club that users can join.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is unique (case-insensitive) among groups that are not closed.
	Name string

	Category    Category
	Region      string
	Status      GroupStatus
	Description string

	// MaxMembers is the advertised capacity. Advisory only.
	MaxMembers int

	// LeaderID is the user holding the group's single LEADER membership.
	LeaderID string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// GroupFilter narrows a group listing. Empty fields match everything.
type GroupFilter struct {
	// Query matches name or description, case-insensitive substring.
	Query string
	// Category matches exactly.
	Category Category
	// Region matches case-insensitive substring.
	Region string
}

// GroupDetail is a group plus the membership figures shown on its page.
type GroupDetail struct {
	Group
	MemberCount    int
	PendingCount   int
	LeaderNickname string
}
