// Package clubapi holds the request and response messages of the
// clubhouse.v1 Connect services. Messages travel as JSON; field names use
// lowerCamelCase on the wire.
package clubapi

// User is a registered account. The password hash is never sent.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	SiteRole  string `json:"siteRole"`
	CreatedAt int64  `json:"createdAt"`
}

// Group is a club as listed in discovery.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Region      string `json:"region,omitempty"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	MaxMembers  int32  `json:"maxMembers"`
	LeaderID    string `json:"leaderId"`
	CreatedAt   int64  `json:"createdAt"`
}

// GroupDetail is a group with its membership figures.
type GroupDetail struct {
	Group          *Group `json:"group"`
	MemberCount    int32  `json:"memberCount"`
	PendingCount   int32  `json:"pendingCount"`
	LeaderNickname string `json:"leaderNickname"`
}

// Membership is a user's place in a group.
type Membership struct {
	ID        string `json:"id"`
	GroupID   string `json:"groupId"`
	UserID    string `json:"userId"`
	Nickname  string `json:"nickname,omitempty"`
	Role      string `json:"role"`
	RoleLabel string `json:"roleLabel"`
	JoinedAt  int64  `json:"joinedAt"`
}

// Activity is a scheduled event with its attendance figures.
type Activity struct {
	ID            string `json:"id"`
	GroupID       string `json:"groupId"`
	Title         string `json:"title"`
	StartsAt      int64  `json:"startsAt"`
	EndsAt        int64  `json:"endsAt,omitempty"`
	Location      string `json:"location"`
	Content       string `json:"content,omitempty"`
	Fee           int64  `json:"fee"`
	CreatedBy     string `json:"createdBy,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
	ExpectedCount int32  `json:"expectedCount"`
	PresentCount  int32  `json:"presentCount"`
	AbsentCount   int32  `json:"absentCount"`
}

// Attendance is one member's RSVP and check-in for an activity.
type Attendance struct {
	ActivityID string `json:"activityId"`
	UserID     string `json:"userId"`
	Nickname   string `json:"nickname"`
	Intent     string `json:"intent"`
	Actual     string `json:"actual"`
	CheckedBy  string `json:"checkedBy,omitempty"`
	CheckedAt  int64  `json:"checkedAt,omitempty"`
}

// LedgerLine is a ledger entry with its recorder and running balance.
type LedgerLine struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	ActorID     string `json:"actorId,omitempty"`
	ActorName   string `json:"actorName"`
	RecordedAt  int64  `json:"recordedAt"`
	Balance     int64  `json:"balance"`
}
