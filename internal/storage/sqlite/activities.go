package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/clubhouse/internal/models"
)

const activityColumns = `id, group_id, title, starts_at, ends_at, location, content, fee, created_by, created_at`

// CreateActivity persists a new activity.
func (s queries) CreateActivity(ctx context.Context, a *models.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO activities (`+activityColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.GroupID, a.Title, a.StartsAt, a.EndsAt, a.Location, a.Content, a.Fee,
		nullString(a.CreatedBy), a.CreatedAt,
	)
	return translate(err, "insert activity")
}

// GetActivity retrieves an activity by ID.
func (s queries) GetActivity(ctx context.Context, activityID string) (*models.Activity, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, activityID)
	a := &models.Activity{}
	if err := scanActivity(row, a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("activity", activityID)
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return a, nil
}

// ListActivities retrieves a group's activities ordered by start time.
func (s queries) ListActivities(ctx context.Context, groupID string) ([]models.Activity, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE group_id = ? ORDER BY starts_at ASC, rowid ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return activities, nil
}

// UpsertIntent records an RSVP, leaving any check-in untouched.
func (s queries) UpsertIntent(ctx context.Context, rec *models.AttendanceRecord) error {
	if rec.UpdatedAt == 0 {
		rec.UpdatedAt = time.Now().Unix()
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO attendance (activity_id, user_id, intent, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (activity_id, user_id) DO UPDATE SET
		   intent = excluded.intent,
		   updated_at = excluded.updated_at`,
		rec.ActivityID, rec.UserID, string(rec.Intent), rec.UpdatedAt,
	)
	return translate(err, "upsert rsvp")
}

// UpsertActual records a check-in, leaving any RSVP untouched.
func (s queries) UpsertActual(ctx context.Context, rec *models.AttendanceRecord) error {
	if rec.UpdatedAt == 0 {
		rec.UpdatedAt = time.Now().Unix()
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO attendance (activity_id, user_id, actual, checked_by, checked_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (activity_id, user_id) DO UPDATE SET
		   actual = excluded.actual,
		   checked_by = excluded.checked_by,
		   checked_at = excluded.checked_at,
		   updated_at = excluded.updated_at`,
		rec.ActivityID, rec.UserID, string(rec.Actual), nullString(rec.CheckedBy),
		nullInt(rec.CheckedAt), rec.UpdatedAt,
	)
	return translate(err, "upsert attendance check")
}

// GetAttendance retrieves one user's record for an activity.
func (s queries) GetAttendance(ctx context.Context, activityID, userID string) (*models.AttendanceRecord, error) {
	recs, err := s.listAttendance(ctx,
		`WHERE a.activity_id = ? AND a.user_id = ?`,
		activityID, userID,
	)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, notFound("attendance for user", userID)
	}
	return &recs[0], nil
}

// ListAttendance retrieves the roster of one activity.
func (s queries) ListAttendance(ctx context.Context, activityID string) ([]models.AttendanceRecord, error) {
	return s.listAttendance(ctx,
		`WHERE a.activity_id = ? ORDER BY u.nickname`,
		activityID,
	)
}

// ListAttendanceByGroup retrieves the records of all activities in a group.
func (s queries) ListAttendanceByGroup(ctx context.Context, groupID string) ([]models.AttendanceRecord, error) {
	return s.listAttendance(ctx,
		`JOIN activities act ON act.id = a.activity_id WHERE act.group_id = ? ORDER BY a.activity_id`,
		groupID,
	)
}

func (s queries) listAttendance(ctx context.Context, tail string, args ...any) ([]models.AttendanceRecord, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT a.activity_id, a.user_id, a.intent, a.actual, a.checked_by, a.checked_at, a.updated_at, u.nickname
		 FROM attendance a JOIN users u ON u.id = a.user_id `+tail,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var out []models.AttendanceRecord
	for rows.Next() {
		var (
			rec            models.AttendanceRecord
			intent, actual string
			checkedBy      sql.NullString
			checkedAt      sql.NullInt64
		)
		if err := rows.Scan(&rec.ActivityID, &rec.UserID, &intent, &actual,
			&checkedBy, &checkedAt, &rec.UpdatedAt, &rec.Nickname); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		rec.Intent = models.Intent(intent)
		rec.Actual = models.Actual(actual)
		rec.CheckedBy = checkedBy.String
		rec.CheckedAt = checkedAt.Int64
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return out, nil
}

func scanActivity(row scanner, a *models.Activity) error {
	var createdBy sql.NullString
	if err := row.Scan(&a.ID, &a.GroupID, &a.Title, &a.StartsAt, &a.EndsAt, &a.Location,
		&a.Content, &a.Fee, &createdBy, &a.CreatedAt); err != nil {
		return err
	}
	a.CreatedBy = createdBy.String
	return nil
}
