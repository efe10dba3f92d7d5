package clubapiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/pkg/clubapi"
)

// GroupServiceName is the fully-qualified name of the GroupService.
const GroupServiceName = "clubhouse.v1.GroupService"

// Procedure paths of the GroupService.
const (
	GroupServiceCreateGroupProcedure        = "/clubhouse.v1.GroupService/CreateGroup"
	GroupServiceListGroupsProcedure         = "/clubhouse.v1.GroupService/ListGroups"
	GroupServiceGetGroupProcedure           = "/clubhouse.v1.GroupService/GetGroup"
	GroupServiceUpdateGroupProcedure        = "/clubhouse.v1.GroupService/UpdateGroup"
	GroupServiceSetGroupStatusProcedure     = "/clubhouse.v1.GroupService/SetGroupStatus"
	GroupServiceRequestJoinProcedure        = "/clubhouse.v1.GroupService/RequestJoin"
	GroupServiceApproveProcedure            = "/clubhouse.v1.GroupService/Approve"
	GroupServiceRejectProcedure             = "/clubhouse.v1.GroupService/Reject"
	GroupServiceLeaveProcedure              = "/clubhouse.v1.GroupService/Leave"
	GroupServiceAssignRoleProcedure         = "/clubhouse.v1.GroupService/AssignRole"
	GroupServiceTransferLeadershipProcedure = "/clubhouse.v1.GroupService/TransferLeadership"
	GroupServiceListMembersProcedure        = "/clubhouse.v1.GroupService/ListMembers"
)

// GroupServiceClient is a client for the clubhouse.v1.GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[clubapi.CreateGroupRequest]) (*connect.Response[clubapi.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[clubapi.ListGroupsRequest]) (*connect.Response[clubapi.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[clubapi.GetGroupRequest]) (*connect.Response[clubapi.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[clubapi.UpdateGroupRequest]) (*connect.Response[clubapi.UpdateGroupResponse], error)
	SetGroupStatus(context.Context, *connect.Request[clubapi.SetGroupStatusRequest]) (*connect.Response[clubapi.SetGroupStatusResponse], error)
	RequestJoin(context.Context, *connect.Request[clubapi.RequestJoinRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	Approve(context.Context, *connect.Request[clubapi.ApproveRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	Reject(context.Context, *connect.Request[clubapi.RejectRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	Leave(context.Context, *connect.Request[clubapi.LeaveRequest]) (*connect.Response[clubapi.LeaveResponse], error)
	AssignRole(context.Context, *connect.Request[clubapi.AssignRoleRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	TransferLeadership(context.Context, *connect.Request[clubapi.TransferLeadershipRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	ListMembers(context.Context, *connect.Request[clubapi.ListMembersRequest]) (*connect.Response[clubapi.ListMembersResponse], error)
}

// NewGroupServiceClient constructs a client for the clubhouse.v1.GroupService.
// baseURL is the server's URL without a trailing procedure path.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &groupServiceClient{
		createGroup:        connect.NewClient[clubapi.CreateGroupRequest, clubapi.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		listGroups:         connect.NewClient[clubapi.ListGroupsRequest, clubapi.ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		getGroup:           connect.NewClient[clubapi.GetGroupRequest, clubapi.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		updateGroup:        connect.NewClient[clubapi.UpdateGroupRequest, clubapi.UpdateGroupResponse](httpClient, baseURL+GroupServiceUpdateGroupProcedure, opts...),
		setGroupStatus:     connect.NewClient[clubapi.SetGroupStatusRequest, clubapi.SetGroupStatusResponse](httpClient, baseURL+GroupServiceSetGroupStatusProcedure, opts...),
		requestJoin:        connect.NewClient[clubapi.RequestJoinRequest, clubapi.MembershipResponse](httpClient, baseURL+GroupServiceRequestJoinProcedure, opts...),
		approve:            connect.NewClient[clubapi.ApproveRequest, clubapi.MembershipResponse](httpClient, baseURL+GroupServiceApproveProcedure, opts...),
		reject:             connect.NewClient[clubapi.RejectRequest, clubapi.MembershipResponse](httpClient, baseURL+GroupServiceRejectProcedure, opts...),
		leave:              connect.NewClient[clubapi.LeaveRequest, clubapi.LeaveResponse](httpClient, baseURL+GroupServiceLeaveProcedure, opts...),
		assignRole:         connect.NewClient[clubapi.AssignRoleRequest, clubapi.MembershipResponse](httpClient, baseURL+GroupServiceAssignRoleProcedure, opts...),
		transferLeadership: connect.NewClient[clubapi.TransferLeadershipRequest, clubapi.MembershipResponse](httpClient, baseURL+GroupServiceTransferLeadershipProcedure, opts...),
		listMembers:        connect.NewClient[clubapi.ListMembersRequest, clubapi.ListMembersResponse](httpClient, baseURL+GroupServiceListMembersProcedure, opts...),
	}
}

type groupServiceClient struct {
	createGroup        *connect.Client[clubapi.CreateGroupRequest, clubapi.CreateGroupResponse]
	listGroups         *connect.Client[clubapi.ListGroupsRequest, clubapi.ListGroupsResponse]
	getGroup           *connect.Client[clubapi.GetGroupRequest, clubapi.GetGroupResponse]
	updateGroup        *connect.Client[clubapi.UpdateGroupRequest, clubapi.UpdateGroupResponse]
	setGroupStatus     *connect.Client[clubapi.SetGroupStatusRequest, clubapi.SetGroupStatusResponse]
	requestJoin        *connect.Client[clubapi.RequestJoinRequest, clubapi.MembershipResponse]
	approve            *connect.Client[clubapi.ApproveRequest, clubapi.MembershipResponse]
	reject             *connect.Client[clubapi.RejectRequest, clubapi.MembershipResponse]
	leave              *connect.Client[clubapi.LeaveRequest, clubapi.LeaveResponse]
	assignRole         *connect.Client[clubapi.AssignRoleRequest, clubapi.MembershipResponse]
	transferLeadership *connect.Client[clubapi.TransferLeadershipRequest, clubapi.MembershipResponse]
	listMembers        *connect.Client[clubapi.ListMembersRequest, clubapi.ListMembersResponse]
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[clubapi.CreateGroupRequest]) (*connect.Response[clubapi.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[clubapi.ListGroupsRequest]) (*connect.Response[clubapi.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[clubapi.GetGroupRequest]) (*connect.Response[clubapi.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[clubapi.UpdateGroupRequest]) (*connect.Response[clubapi.UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) SetGroupStatus(ctx context.Context, req *connect.Request[clubapi.SetGroupStatusRequest]) (*connect.Response[clubapi.SetGroupStatusResponse], error) {
	return c.setGroupStatus.CallUnary(ctx, req)
}

func (c *groupServiceClient) RequestJoin(ctx context.Context, req *connect.Request[clubapi.RequestJoinRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return c.requestJoin.CallUnary(ctx, req)
}

func (c *groupServiceClient) Approve(ctx context.Context, req *connect.Request[clubapi.ApproveRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return c.approve.CallUnary(ctx, req)
}

func (c *groupServiceClient) Reject(ctx context.Context, req *connect.Request[clubapi.RejectRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return c.reject.CallUnary(ctx, req)
}

func (c *groupServiceClient) Leave(ctx context.Context, req *connect.Request[clubapi.LeaveRequest]) (*connect.Response[clubapi.LeaveResponse], error) {
	return c.leave.CallUnary(ctx, req)
}

func (c *groupServiceClient) AssignRole(ctx context.Context, req *connect.Request[clubapi.AssignRoleRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return c.assignRole.CallUnary(ctx, req)
}

func (c *groupServiceClient) TransferLeadership(ctx context.Context, req *connect.Request[clubapi.TransferLeadershipRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return c.transferLeadership.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListMembers(ctx context.Context, req *connect.Request[clubapi.ListMembersRequest]) (*connect.Response[clubapi.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

// GroupServiceHandler is implemented by servers of the clubhouse.v1.GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[clubapi.CreateGroupRequest]) (*connect.Response[clubapi.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[clubapi.ListGroupsRequest]) (*connect.Response[clubapi.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[clubapi.GetGroupRequest]) (*connect.Response[clubapi.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[clubapi.UpdateGroupRequest]) (*connect.Response[clubapi.UpdateGroupResponse], error)
	SetGroupStatus(context.Context, *connect.Request[clubapi.SetGroupStatusRequest]) (*connect.Response[clubapi.SetGroupStatusResponse], error)
	RequestJoin(context.Context, *connect.Request[clubapi.RequestJoinRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	Approve(context.Context, *connect.Request[clubapi.ApproveRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	Reject(context.Context, *connect.Request[clubapi.RejectRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	Leave(context.Context, *connect.Request[clubapi.LeaveRequest]) (*connect.Response[clubapi.LeaveResponse], error)
	AssignRole(context.Context, *connect.Request[clubapi.AssignRoleRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	TransferLeadership(context.Context, *connect.Request[clubapi.TransferLeadershipRequest]) (*connect.Response[clubapi.MembershipResponse], error)
	ListMembers(context.Context, *connect.Request[clubapi.ListMembersRequest]) (*connect.Response[clubapi.ListMembersResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]*connect.Handler{
		GroupServiceCreateGroupProcedure:        connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		GroupServiceListGroupsProcedure:         connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...),
		GroupServiceGetGroupProcedure:           connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceUpdateGroupProcedure:        connect.NewUnaryHandler(GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...),
		GroupServiceSetGroupStatusProcedure:     connect.NewUnaryHandler(GroupServiceSetGroupStatusProcedure, svc.SetGroupStatus, opts...),
		GroupServiceRequestJoinProcedure:        connect.NewUnaryHandler(GroupServiceRequestJoinProcedure, svc.RequestJoin, opts...),
		GroupServiceApproveProcedure:            connect.NewUnaryHandler(GroupServiceApproveProcedure, svc.Approve, opts...),
		GroupServiceRejectProcedure:             connect.NewUnaryHandler(GroupServiceRejectProcedure, svc.Reject, opts...),
		GroupServiceLeaveProcedure:              connect.NewUnaryHandler(GroupServiceLeaveProcedure, svc.Leave, opts...),
		GroupServiceAssignRoleProcedure:         connect.NewUnaryHandler(GroupServiceAssignRoleProcedure, svc.AssignRole, opts...),
		GroupServiceTransferLeadershipProcedure: connect.NewUnaryHandler(GroupServiceTransferLeadershipProcedure, svc.TransferLeadership, opts...),
		GroupServiceListMembersProcedure:        connect.NewUnaryHandler(GroupServiceListMembersProcedure, svc.ListMembers, opts...),
	}
	return "/" + GroupServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[clubapi.CreateGroupRequest]) (*connect.Response[clubapi.CreateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceCreateGroupProcedure))
}

func (UnimplementedGroupServiceHandler) ListGroups(context.Context, *connect.Request[clubapi.ListGroupsRequest]) (*connect.Response[clubapi.ListGroupsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceListGroupsProcedure))
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[clubapi.GetGroupRequest]) (*connect.Response[clubapi.GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceGetGroupProcedure))
}

func (UnimplementedGroupServiceHandler) UpdateGroup(context.Context, *connect.Request[clubapi.UpdateGroupRequest]) (*connect.Response[clubapi.UpdateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceUpdateGroupProcedure))
}

func (UnimplementedGroupServiceHandler) SetGroupStatus(context.Context, *connect.Request[clubapi.SetGroupStatusRequest]) (*connect.Response[clubapi.SetGroupStatusResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceSetGroupStatusProcedure))
}

func (UnimplementedGroupServiceHandler) RequestJoin(context.Context, *connect.Request[clubapi.RequestJoinRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceRequestJoinProcedure))
}

func (UnimplementedGroupServiceHandler) Approve(context.Context, *connect.Request[clubapi.ApproveRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceApproveProcedure))
}

func (UnimplementedGroupServiceHandler) Reject(context.Context, *connect.Request[clubapi.RejectRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceRejectProcedure))
}

func (UnimplementedGroupServiceHandler) Leave(context.Context, *connect.Request[clubapi.LeaveRequest]) (*connect.Response[clubapi.LeaveResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceLeaveProcedure))
}

func (UnimplementedGroupServiceHandler) AssignRole(context.Context, *connect.Request[clubapi.AssignRoleRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceAssignRoleProcedure))
}

func (UnimplementedGroupServiceHandler) TransferLeadership(context.Context, *connect.Request[clubapi.TransferLeadershipRequest]) (*connect.Response[clubapi.MembershipResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceTransferLeadershipProcedure))
}

func (UnimplementedGroupServiceHandler) ListMembers(context.Context, *connect.Request[clubapi.ListMembersRequest]) (*connect.Response[clubapi.ListMembersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(GroupServiceListMembersProcedure))
}
