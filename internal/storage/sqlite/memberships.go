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

const membershipColumns = `id, group_id, user_id, role, joined_at, updated_at`

// CreateMembership persists a new membership. A second membership for the
// same (group, user), or a second LEADER, fails with ErrConflict.
func (s queries) CreateMembership(ctx context.Context, m *models.Membership) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.JoinedAt == 0 {
		m.JoinedAt = time.Now().Unix()
	}
	if m.UpdatedAt == 0 {
		m.UpdatedAt = m.JoinedAt
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO memberships (`+membershipColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.GroupID, m.UserID, string(m.Role), m.JoinedAt, m.UpdatedAt,
	)
	return translate(err, "insert membership")
}

// GetMembership retrieves a membership by ID within a group.
func (s queries) GetMembership(ctx context.Context, groupID, membershipID string) (*models.Membership, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = ? AND group_id = ?`,
		membershipID, groupID,
	)
	m := &models.Membership{}
	if err := scanMembership(row, m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("membership", membershipID)
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}

// GetMembershipByUser retrieves the user's membership in a group.
func (s queries) GetMembershipByUser(ctx context.Context, groupID, userID string) (*models.Membership, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE group_id = ? AND user_id = ?`,
		groupID, userID,
	)
	m := &models.Membership{}
	if err := scanMembership(row, m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("membership for user", userID)
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}

// UpdateMembershipRole changes a membership's role.
func (s queries) UpdateMembershipRole(ctx context.Context, membershipID string, role models.GroupRole, updatedAt int64) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE memberships SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), updatedAt, membershipID,
	)
	if err != nil {
		return translate(err, "update membership role")
	}
	return requireRow(res, "membership", membershipID)
}

// DeleteMembership removes a membership by ID.
func (s queries) DeleteMembership(ctx context.Context, membershipID string) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM memberships WHERE id = ?`, membershipID)
	if err != nil {
		return translate(err, "delete membership")
	}
	return requireRow(res, "membership", membershipID)
}

// ListMembers retrieves a group's memberships with nicknames.
// Leader first, then operators, members and pending requests, each by join time.
func (s queries) ListMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT m.id, m.group_id, m.user_id, m.role, m.joined_at, m.updated_at, u.nickname
		 FROM memberships m JOIN users u ON u.id = m.user_id
		 WHERE m.group_id = ?
		 ORDER BY CASE m.role WHEN 'LEADER' THEN 0 WHEN 'ADMIN' THEN 1 WHEN 'MEMBER' THEN 2 ELSE 3 END,
		          m.joined_at, m.rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		var role string
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &role, &m.JoinedAt, &m.UpdatedAt, &m.Nickname); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.Role = models.GroupRole(role)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// CountMembers returns confirmed and pending membership counts for a group.
func (s queries) CountMembers(ctx context.Context, groupID string) (members, pending int, err error) {
	err = s.q.QueryRowContext(ctx,
		`SELECT
		   COALESCE(SUM(CASE WHEN role <> 'PENDING' THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN role = 'PENDING' THEN 1 ELSE 0 END), 0)
		 FROM memberships WHERE group_id = ?`,
		groupID,
	).Scan(&members, &pending)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count members: %w", err)
	}
	return members, pending, nil
}

// ListMembershipsByUser retrieves every membership a user holds.
func (s queries) ListMembershipsByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = ? ORDER BY joined_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships by user: %w", err)
	}
	defer rows.Close()

	var out []models.Membership
	for rows.Next() {
		var m models.Membership
		if err := scanMembership(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}
	return out, nil
}

func scanMembership(row scanner, m *models.Membership) error {
	var role string
	if err := row.Scan(&m.ID, &m.GroupID, &m.UserID, &role, &m.JoinedAt, &m.UpdatedAt); err != nil {
		return err
	}
	m.Role = models.GroupRole(role)
	return nil
}
