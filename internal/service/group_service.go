package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/pkg/clubapi"
	"github.com/mmynk/clubhouse/pkg/clubapi/clubapiconnect"
)

// GroupService implements the Connect GroupService: the group registry
// and the membership state machine.
type GroupService struct {
	engine *club.Engine
}

var _ clubapiconnect.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService backed by the engine.
func NewGroupService(engine *club.Engine) *GroupService {
	return &GroupService{engine: engine}
}

func groupForm(name, category, region, description string, maxMembers int32) club.GroupForm {
	return club.GroupForm{
		Name:        name,
		Category:    category,
		Region:      region,
		Description: description,
		MaxMembers:  int(maxMembers),
	}
}

// CreateGroup creates a new group led by the caller.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[clubapi.CreateGroupRequest]) (*connect.Response[clubapi.CreateGroupResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateGroup request received", "name", req.Msg.Name, "category", req.Msg.Category)

	m := req.Msg
	group, err := s.engine.CreateGroup(ctx, p, groupForm(m.Name, m.Category, m.Region, m.Description, m.MaxMembers))
	if err != nil {
		return nil, fail("CreateGroup", err, "name", m.Name)
	}

	return connect.NewResponse(&clubapi.CreateGroupResponse{Group: toGroup(group)}), nil
}

// ListGroups retrieves recruiting and operating groups. Anonymous callers may list.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[clubapi.ListGroupsRequest]) (*connect.Response[clubapi.ListGroupsResponse], error) {
	slog.Info("ListGroups request received", "query", req.Msg.Query, "category", req.Msg.Category)

	groups, err := s.engine.ListGroups(ctx, models.GroupFilter{
		Query:    req.Msg.Query,
		Category: models.Category(req.Msg.Category),
		Region:   req.Msg.Region,
	})
	if err != nil {
		return nil, fail("ListGroups", err)
	}

	out := make([]*clubapi.Group, len(groups))
	for i := range groups {
		out[i] = toGroup(&groups[i])
	}

	slog.Info("ListGroups successful", "count", len(out))
	return connect.NewResponse(&clubapi.ListGroupsResponse{Groups: out}), nil
}

// GetGroup retrieves a group with its membership figures.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[clubapi.GetGroupRequest]) (*connect.Response[clubapi.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	detail, err := s.engine.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, fail("GetGroup", err, "group_id", req.Msg.GroupID)
	}

	return connect.NewResponse(&clubapi.GetGroupResponse{Group: &clubapi.GroupDetail{
		Group:          toGroup(&detail.Group),
		MemberCount:    int32(detail.MemberCount),
		PendingCount:   int32(detail.PendingCount),
		LeaderNickname: detail.LeaderNickname,
	}}), nil
}

// UpdateGroup replaces a group's descriptive fields.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[clubapi.UpdateGroupRequest]) (*connect.Response[clubapi.UpdateGroupResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateGroup request received", "group_id", req.Msg.GroupID)

	m := req.Msg
	group, err := s.engine.UpdateGroup(ctx, p, m.GroupID, groupForm(m.Name, m.Category, m.Region, m.Description, m.MaxMembers))
	if err != nil {
		return nil, fail("UpdateGroup", err, "group_id", m.GroupID)
	}

	return connect.NewResponse(&clubapi.UpdateGroupResponse{Group: toGroup(group)}), nil
}

// SetGroupStatus moves a group between recruiting, operating and closed.
func (s *GroupService) SetGroupStatus(ctx context.Context, req *connect.Request[clubapi.SetGroupStatusRequest]) (*connect.Response[clubapi.SetGroupStatusResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.engine.SetGroupStatus(ctx, p, req.Msg.GroupID, req.Msg.Status)
	if err != nil {
		return nil, fail("SetGroupStatus", err, "group_id", req.Msg.GroupID, "status", req.Msg.Status)
	}

	return connect.NewResponse(&clubapi.SetGroupStatusResponse{Group: toGroup(group)}), nil
}

// RequestJoin asks to join a group.
func (s *GroupService) RequestJoin(ctx context.Context, req *connect.Request[clubapi.RequestJoinRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.RequestJoin(ctx, p, req.Msg.GroupID)
	if err != nil {
		return nil, fail("RequestJoin", err, "group_id", req.Msg.GroupID)
	}
	return connect.NewResponse(toMembershipResponse(res)), nil
}

// Approve accepts a pending join request.
func (s *GroupService) Approve(ctx context.Context, req *connect.Request[clubapi.ApproveRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Approve(ctx, p, req.Msg.GroupID, req.Msg.MembershipID)
	if err != nil {
		return nil, fail("Approve", err, "group_id", req.Msg.GroupID, "membership_id", req.Msg.MembershipID)
	}
	return connect.NewResponse(toMembershipResponse(res)), nil
}

// Reject discards a pending join request.
func (s *GroupService) Reject(ctx context.Context, req *connect.Request[clubapi.RejectRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Reject(ctx, p, req.Msg.GroupID, req.Msg.MembershipID)
	if err != nil {
		return nil, fail("Reject", err, "group_id", req.Msg.GroupID, "membership_id", req.Msg.MembershipID)
	}
	return connect.NewResponse(toMembershipResponse(res)), nil
}

// Leave removes the caller from a group.
func (s *GroupService) Leave(ctx context.Context, req *connect.Request[clubapi.LeaveRequest]) (*connect.Response[clubapi.LeaveResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Leave(ctx, p, req.Msg.GroupID); err != nil {
		return nil, fail("Leave", err, "group_id", req.Msg.GroupID)
	}
	return connect.NewResponse(&clubapi.LeaveResponse{}), nil
}

// AssignRole moves a member between MEMBER and ADMIN.
func (s *GroupService) AssignRole(ctx context.Context, req *connect.Request[clubapi.AssignRoleRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.AssignRole(ctx, p, req.Msg.GroupID, req.Msg.MembershipID, req.Msg.Role)
	if err != nil {
		return nil, fail("AssignRole", err, "group_id", req.Msg.GroupID, "role", req.Msg.Role)
	}
	return connect.NewResponse(toMembershipResponse(res)), nil
}

// TransferLeadership hands the group to another member.
func (s *GroupService) TransferLeadership(ctx context.Context, req *connect.Request[clubapi.TransferLeadershipRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.TransferLeadership(ctx, p, req.Msg.GroupID, req.Msg.MembershipID)
	if err != nil {
		return nil, fail("TransferLeadership", err, "group_id", req.Msg.GroupID)
	}
	return connect.NewResponse(toMembershipResponse(res)), nil
}

// ListMembers returns the group's roster.
func (s *GroupService) ListMembers(ctx context.Context, req *connect.Request[clubapi.ListMembersRequest]) (*connect.Response[clubapi.ListMembersResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.engine.ListMembers(ctx, p, req.Msg.GroupID, req.Msg.IncludePending)
	if err != nil {
		return nil, fail("ListMembers", err, "group_id", req.Msg.GroupID)
	}

	out := make([]*clubapi.Membership, len(members))
	for i, m := range members {
		out[i] = toMembership(m.Membership, m.Nickname)
	}
	return connect.NewResponse(&clubapi.ListMembersResponse{Members: out}), nil
}
