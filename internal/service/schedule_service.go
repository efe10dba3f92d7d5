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

// ScheduleService implements the Connect ScheduleService.
type ScheduleService struct {
	engine *club.Engine
}

var _ clubapiconnect.ScheduleServiceHandler = (*ScheduleService)(nil)

// NewScheduleService creates a new ScheduleService backed by the engine.
func NewScheduleService(engine *club.Engine) *ScheduleService {
	return &ScheduleService{engine: engine}
}

// CreateActivity schedules an activity in a group.
func (s *ScheduleService) CreateActivity(ctx context.Context, req *connect.Request[clubapi.CreateActivityRequest]) (*connect.Response[clubapi.CreateActivityResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateActivity request received", "group_id", req.Msg.GroupID, "title", req.Msg.Title)

	m := req.Msg
	activity, err := s.engine.CreateActivity(ctx, p, m.GroupID, club.ActivityForm{
		Title:    m.Title,
		StartsAt: m.StartsAt,
		EndsAt:   m.EndsAt,
		Location: m.Location,
		Content:  m.Content,
		Fee:      m.Fee,
	})
	if err != nil {
		return nil, fail("CreateActivity", err, "group_id", m.GroupID)
	}

	return connect.NewResponse(&clubapi.CreateActivityResponse{
		Activity: toActivity(models.ActivitySummary{Activity: *activity}),
	}), nil
}

// ListActivities returns a group's activities in start order.
func (s *ScheduleService) ListActivities(ctx context.Context, req *connect.Request[clubapi.ListActivitiesRequest]) (*connect.Response[clubapi.ListActivitiesResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.engine.ListActivities(ctx, p, req.Msg.GroupID)
	if err != nil {
		return nil, fail("ListActivities", err, "group_id", req.Msg.GroupID)
	}

	out := make([]*clubapi.Activity, len(summaries))
	for i, a := range summaries {
		out[i] = toActivity(a)
	}
	return connect.NewResponse(&clubapi.ListActivitiesResponse{Activities: out}), nil
}

// RecordRSVP sets the caller's intent for an activity.
func (s *ScheduleService) RecordRSVP(ctx context.Context, req *connect.Request[clubapi.RecordRSVPRequest]) (*connect.Response[clubapi.AttendanceResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.engine.RecordRSVP(ctx, p, req.Msg.ActivityID, req.Msg.Intent)
	if err != nil {
		return nil, fail("RecordRSVP", err, "activity_id", req.Msg.ActivityID)
	}
	return connect.NewResponse(&clubapi.AttendanceResponse{Attendance: toAttendance(rec)}), nil
}

// RecordAttendanceCheck records whether a member attended.
func (s *ScheduleService) RecordAttendanceCheck(ctx context.Context, req *connect.Request[clubapi.RecordAttendanceCheckRequest]) (*connect.Response[clubapi.AttendanceResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.engine.RecordAttendanceCheck(ctx, p, req.Msg.ActivityID, req.Msg.UserID, req.Msg.Actual)
	if err != nil {
		return nil, fail("RecordAttendanceCheck", err, "activity_id", req.Msg.ActivityID, "user_id", req.Msg.UserID)
	}
	return connect.NewResponse(&clubapi.AttendanceResponse{Attendance: toAttendance(rec)}), nil
}

// ListAttendance returns an activity's roster.
func (s *ScheduleService) ListAttendance(ctx context.Context, req *connect.Request[clubapi.ListAttendanceRequest]) (*connect.Response[clubapi.ListAttendanceResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.engine.ListAttendance(ctx, p, req.Msg.ActivityID)
	if err != nil {
		return nil, fail("ListAttendance", err, "activity_id", req.Msg.ActivityID)
	}

	out := make([]*clubapi.Attendance, len(records))
	for i := range records {
		out[i] = toAttendance(&records[i])
	}
	return connect.NewResponse(&clubapi.ListAttendanceResponse{Records: out}), nil
}
