package club

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/clubhouse/internal/calculator"
	"github.com/mmynk/clubhouse/internal/metrics"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage"
)

// timeLayouts are accepted for activity times, most specific first.
// Layouts without an offset are read in the engine's location.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ActivityForm is the caller-supplied part of an activity, as entered.
type ActivityForm struct {
	Title    string
	StartsAt string
	EndsAt   string
	Location string
	Content  string
	Fee      string
}

func (e *Engine) parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, e.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

// parseFee reads a fee leniently: blank, malformed or negative input is 0.
func parseFee(s string) int64 {
	fee, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || fee < 0 {
		return 0
	}
	return fee
}

func (e *Engine) buildActivity(form ActivityForm) (*models.Activity, error) {
	title := strings.TrimSpace(form.Title)
	location := strings.TrimSpace(form.Location)
	startsAt := strings.TrimSpace(form.StartsAt)
	if title == "" {
		return nil, invalid("title is required")
	}
	if startsAt == "" {
		return nil, invalid("start time is required")
	}
	if location == "" {
		return nil, invalid("location is required")
	}

	start, err := e.parseTime(startsAt)
	if err != nil {
		return nil, invalid("start time: %v", err)
	}
	a := &models.Activity{
		Title:    title,
		StartsAt: start.Unix(),
		Location: location,
		Content:  strings.TrimSpace(form.Content),
		Fee:      parseFee(form.Fee),
	}

	if endsAt := strings.TrimSpace(form.EndsAt); endsAt != "" {
		end, err := e.parseTime(endsAt)
		if err != nil {
			return nil, invalid("end time: %v", err)
		}
		if end.Before(start) {
			return nil, invalid("end time is before start time")
		}
		a.EndsAt = end.Unix()
	}
	return a, nil
}

// loadActivity reads an activity, reporting a missing one as ErrNotFound.
func loadActivity(ctx context.Context, q storage.Queries, activityID string) (*models.Activity, error) {
	if activityID == "" {
		return nil, invalid("activity id is required")
	}
	a, err := q.GetActivity(ctx, activityID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: activity %s", ErrNotFound, activityID)
	}
	return a, err
}

// CreateActivity schedules an activity. Leader or admin only.
func (e *Engine) CreateActivity(ctx context.Context, p models.Principal, groupID string, form ActivityForm) (*models.Activity, error) {
	var activity *models.Activity
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsOperator, "schedule activities"); err != nil {
			return err
		}
		a, err := e.buildActivity(form)
		if err != nil {
			return err
		}
		a.GroupID = groupID
		a.CreatedBy = p.UserID
		a.CreatedAt = e.now().Unix()
		if err := q.CreateActivity(ctx, a); err != nil {
			return err
		}
		activity = a
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	metrics.RecordActivityCreated()
	slog.Info("Activity created", "group_id", groupID, "activity_id", activity.ID, "starts_at", activity.StartsAt)
	return activity, nil
}

// ListActivities returns the group's activities in start order with their
// attendance tallies. Members only.
func (e *Engine) ListActivities(ctx context.Context, p models.Principal, groupID string) ([]models.ActivitySummary, error) {
	var summaries []models.ActivitySummary
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsMember, "view activities"); err != nil {
			return err
		}
		activities, err := q.ListActivities(ctx, groupID)
		if err != nil {
			return err
		}
		records, err := q.ListAttendanceByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		summaries = calculator.Summarize(activities, calculator.TallyAttendance(records))
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return summaries, nil
}

// RecordRSVP sets the caller's intent for an activity. The caller must be
// a confirmed member of the activity's group. Any check-in is kept.
func (e *Engine) RecordRSVP(ctx context.Context, p models.Principal, activityID, intent string) (*models.AttendanceRecord, error) {
	in, ok := models.ParseIntent(intent)
	if !ok {
		return nil, invalid("unknown rsvp %q", intent)
	}

	var rec *models.AttendanceRecord
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if !p.Authenticated() {
			return forbidden("sign in to answer")
		}
		a, err := loadActivity(ctx, q, activityID)
		if err != nil {
			return err
		}
		if _, _, err := authorize(ctx, q, a.GroupID, p, models.GroupRole.IsMember, "answer for activities"); err != nil {
			return err
		}
		if err := q.UpsertIntent(ctx, &models.AttendanceRecord{
			ActivityID: activityID,
			UserID:     p.UserID,
			Intent:     in,
			UpdatedAt:  e.now().Unix(),
		}); err != nil {
			return err
		}
		rec, err = q.GetAttendance(ctx, activityID, p.UserID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("RSVP recorded", "activity_id", activityID, "user_id", p.UserID, "intent", in)
	return rec, nil
}

// RecordAttendanceCheck records whether a member actually attended.
// Leader or admin only; the target must be a confirmed member. Setting
// UNCHECKED clears the check-in. The RSVP is kept.
func (e *Engine) RecordAttendanceCheck(ctx context.Context, p models.Principal, activityID, userID, actual string) (*models.AttendanceRecord, error) {
	act, ok := models.ParseActual(actual)
	if !ok {
		return nil, invalid("unknown attendance %q", actual)
	}
	if userID == "" {
		return nil, invalid("user id is required")
	}

	var rec *models.AttendanceRecord
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if !p.Authenticated() {
			return forbidden("sign in to check attendance")
		}
		a, err := loadActivity(ctx, q, activityID)
		if err != nil {
			return err
		}
		if _, _, err := authorize(ctx, q, a.GroupID, p, models.GroupRole.IsOperator, "check attendance"); err != nil {
			return err
		}
		target, ok, err := roleIn(ctx, q, a.GroupID, userID)
		if err != nil {
			return err
		}
		if !ok || !target.Role.IsMember() {
			return invalid("user %s is not a member of this group", userID)
		}

		now := e.now().Unix()
		check := &models.AttendanceRecord{
			ActivityID: activityID,
			UserID:     userID,
			Actual:     act,
			UpdatedAt:  now,
		}
		if act != models.ActualUnchecked {
			check.CheckedBy = p.UserID
			check.CheckedAt = now
		}
		if err := q.UpsertActual(ctx, check); err != nil {
			return err
		}
		rec, err = q.GetAttendance(ctx, activityID, userID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("Attendance checked", "activity_id", activityID, "user_id", userID, "actual", act, "checked_by", p.UserID)
	return rec, nil
}

// ListAttendance returns an activity's roster. Members only.
func (e *Engine) ListAttendance(ctx context.Context, p models.Principal, activityID string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if !p.Authenticated() {
			return forbidden("sign in to view attendance")
		}
		a, err := loadActivity(ctx, q, activityID)
		if err != nil {
			return err
		}
		if _, _, err := authorize(ctx, q, a.GroupID, p, models.GroupRole.IsMember, "view attendance"); err != nil {
			return err
		}
		records, err = q.ListAttendance(ctx, activityID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return records, nil
}
