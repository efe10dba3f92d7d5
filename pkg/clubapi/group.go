package clubapi

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Region      string `json:"region"`
	Description string `json:"description"`
	MaxMembers  int32  `json:"maxMembers"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Region   string `json:"region,omitempty"`
}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupResponse struct {
	Group *GroupDetail `json:"group"`
}

type UpdateGroupRequest struct {
	GroupID     string `json:"groupId"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Region      string `json:"region"`
	Description string `json:"description"`
	MaxMembers  int32  `json:"maxMembers"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type SetGroupStatusRequest struct {
	GroupID string `json:"groupId"`
	Status  string `json:"status"`
}

type SetGroupStatusResponse struct {
	Group *Group `json:"group"`
}

type RequestJoinRequest struct {
	GroupID string `json:"groupId"`
}

type ApproveRequest struct {
	GroupID      string `json:"groupId"`
	MembershipID string `json:"membershipId"`
}

type RejectRequest struct {
	GroupID      string `json:"groupId"`
	MembershipID string `json:"membershipId"`
}

type AssignRoleRequest struct {
	GroupID      string `json:"groupId"`
	MembershipID string `json:"membershipId"`
	Role         string `json:"role"`
}

type TransferLeadershipRequest struct {
	GroupID      string `json:"groupId"`
	MembershipID string `json:"membershipId"`
}

// MembershipResponse answers every membership transition. Outcome is
// "applied" when something changed, otherwise "already_pending",
// "already_member" or "already_processed".
type MembershipResponse struct {
	Membership *Membership `json:"membership"`
	Outcome    string      `json:"outcome"`
}

type LeaveRequest struct {
	GroupID string `json:"groupId"`
}

type LeaveResponse struct{}

type ListMembersRequest struct {
	GroupID        string `json:"groupId"`
	IncludePending bool   `json:"includePending,omitempty"`
}

type ListMembersResponse struct {
	Members []*Membership `json:"members"`
}
