package clubapiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/pkg/clubapi"
)

// ScheduleServiceName is the fully-qualified name of the ScheduleService.
const ScheduleServiceName = "clubhouse.v1.ScheduleService"

// Procedure paths of the ScheduleService.
const (
	ScheduleServiceCreateActivityProcedure        = "/clubhouse.v1.ScheduleService/CreateActivity"
	ScheduleServiceListActivitiesProcedure        = "/clubhouse.v1.ScheduleService/ListActivities"
	ScheduleServiceRecordRSVPProcedure            = "/clubhouse.v1.ScheduleService/RecordRSVP"
	ScheduleServiceRecordAttendanceCheckProcedure = "/clubhouse.v1.ScheduleService/RecordAttendanceCheck"
	ScheduleServiceListAttendanceProcedure        = "/clubhouse.v1.ScheduleService/ListAttendance"
)

// ScheduleServiceClient is a client for the clubhouse.v1.ScheduleService.
type ScheduleServiceClient interface {
	CreateActivity(context.Context, *connect.Request[clubapi.CreateActivityRequest]) (*connect.Response[clubapi.CreateActivityResponse], error)
	ListActivities(context.Context, *connect.Request[clubapi.ListActivitiesRequest]) (*connect.Response[clubapi.ListActivitiesResponse], error)
	RecordRSVP(context.Context, *connect.Request[clubapi.RecordRSVPRequest]) (*connect.Response[clubapi.AttendanceResponse], error)
	RecordAttendanceCheck(context.Context, *connect.Request[clubapi.RecordAttendanceCheckRequest]) (*connect.Response[clubapi.AttendanceResponse], error)
	ListAttendance(context.Context, *connect.Request[clubapi.ListAttendanceRequest]) (*connect.Response[clubapi.ListAttendanceResponse], error)
}

// NewScheduleServiceClient constructs a client for the clubhouse.v1.ScheduleService.
// baseURL is the server's URL without a trailing procedure path.
func NewScheduleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ScheduleServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &scheduleServiceClient{
		createActivity:        connect.NewClient[clubapi.CreateActivityRequest, clubapi.CreateActivityResponse](httpClient, baseURL+ScheduleServiceCreateActivityProcedure, opts...),
		listActivities:        connect.NewClient[clubapi.ListActivitiesRequest, clubapi.ListActivitiesResponse](httpClient, baseURL+ScheduleServiceListActivitiesProcedure, opts...),
		recordRSVP:            connect.NewClient[clubapi.RecordRSVPRequest, clubapi.AttendanceResponse](httpClient, baseURL+ScheduleServiceRecordRSVPProcedure, opts...),
		recordAttendanceCheck: connect.NewClient[clubapi.RecordAttendanceCheckRequest, clubapi.AttendanceResponse](httpClient, baseURL+ScheduleServiceRecordAttendanceCheckProcedure, opts...),
		listAttendance:        connect.NewClient[clubapi.ListAttendanceRequest, clubapi.ListAttendanceResponse](httpClient, baseURL+ScheduleServiceListAttendanceProcedure, opts...),
	}
}

type scheduleServiceClient struct {
	createActivity        *connect.Client[clubapi.CreateActivityRequest, clubapi.CreateActivityResponse]
	listActivities        *connect.Client[clubapi.ListActivitiesRequest, clubapi.ListActivitiesResponse]
	recordRSVP            *connect.Client[clubapi.RecordRSVPRequest, clubapi.AttendanceResponse]
	recordAttendanceCheck *connect.Client[clubapi.RecordAttendanceCheckRequest, clubapi.AttendanceResponse]
	listAttendance        *connect.Client[clubapi.ListAttendanceRequest, clubapi.ListAttendanceResponse]
}

func (c *scheduleServiceClient) CreateActivity(ctx context.Context, req *connect.Request[clubapi.CreateActivityRequest]) (*connect.Response[clubapi.CreateActivityResponse], error) {
	return c.createActivity.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) ListActivities(ctx context.Context, req *connect.Request[clubapi.ListActivitiesRequest]) (*connect.Response[clubapi.ListActivitiesResponse], error) {
	return c.listActivities.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) RecordRSVP(ctx context.Context, req *connect.Request[clubapi.RecordRSVPRequest]) (*connect.Response[clubapi.AttendanceResponse], error) {
	return c.recordRSVP.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) RecordAttendanceCheck(ctx context.Context, req *connect.Request[clubapi.RecordAttendanceCheckRequest]) (*connect.Response[clubapi.AttendanceResponse], error) {
	return c.recordAttendanceCheck.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) ListAttendance(ctx context.Context, req *connect.Request[clubapi.ListAttendanceRequest]) (*connect.Response[clubapi.ListAttendanceResponse], error) {
	return c.listAttendance.CallUnary(ctx, req)
}

// ScheduleServiceHandler is implemented by servers of the clubhouse.v1.ScheduleService.
type ScheduleServiceHandler interface {
	CreateActivity(context.Context, *connect.Request[clubapi.CreateActivityRequest]) (*connect.Response[clubapi.CreateActivityResponse], error)
	ListActivities(context.Context, *connect.Request[clubapi.ListActivitiesRequest]) (*connect.Response[clubapi.ListActivitiesResponse], error)
	RecordRSVP(context.Context, *connect.Request[clubapi.RecordRSVPRequest]) (*connect.Response[clubapi.AttendanceResponse], error)
	RecordAttendanceCheck(context.Context, *connect.Request[clubapi.RecordAttendanceCheckRequest]) (*connect.Response[clubapi.AttendanceResponse], error)
	ListAttendance(context.Context, *connect.Request[clubapi.ListAttendanceRequest]) (*connect.Response[clubapi.ListAttendanceResponse], error)
}

// NewScheduleServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewScheduleServiceHandler(svc ScheduleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]*connect.Handler{
		ScheduleServiceCreateActivityProcedure:        connect.NewUnaryHandler(ScheduleServiceCreateActivityProcedure, svc.CreateActivity, opts...),
		ScheduleServiceListActivitiesProcedure:        connect.NewUnaryHandler(ScheduleServiceListActivitiesProcedure, svc.ListActivities, opts...),
		ScheduleServiceRecordRSVPProcedure:            connect.NewUnaryHandler(ScheduleServiceRecordRSVPProcedure, svc.RecordRSVP, opts...),
		ScheduleServiceRecordAttendanceCheckProcedure: connect.NewUnaryHandler(ScheduleServiceRecordAttendanceCheckProcedure, svc.RecordAttendanceCheck, opts...),
		ScheduleServiceListAttendanceProcedure:        connect.NewUnaryHandler(ScheduleServiceListAttendanceProcedure, svc.ListAttendance, opts...),
	}
	return "/" + ScheduleServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedScheduleServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedScheduleServiceHandler struct{}

func (UnimplementedScheduleServiceHandler) CreateActivity(context.Context, *connect.Request[clubapi.CreateActivityRequest]) (*connect.Response[clubapi.CreateActivityResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(ScheduleServiceCreateActivityProcedure))
}

func (UnimplementedScheduleServiceHandler) ListActivities(context.Context, *connect.Request[clubapi.ListActivitiesRequest]) (*connect.Response[clubapi.ListActivitiesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(ScheduleServiceListActivitiesProcedure))
}

func (UnimplementedScheduleServiceHandler) RecordRSVP(context.Context, *connect.Request[clubapi.RecordRSVPRequest]) (*connect.Response[clubapi.AttendanceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(ScheduleServiceRecordRSVPProcedure))
}

func (UnimplementedScheduleServiceHandler) RecordAttendanceCheck(context.Context, *connect.Request[clubapi.RecordAttendanceCheckRequest]) (*connect.Response[clubapi.AttendanceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(ScheduleServiceRecordAttendanceCheckProcedure))
}

func (UnimplementedScheduleServiceHandler) ListAttendance(context.Context, *connect.Request[clubapi.ListAttendanceRequest]) (*connect.Response[clubapi.ListAttendanceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(ScheduleServiceListAttendanceProcedure))
}
