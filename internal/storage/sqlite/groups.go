package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/clubhouse/internal/models"
)

const groupColumns = `id, name, category, region, status, description, max_members, leader_id, created_at`

// CreateGroup persists a new group to the database.
func (s queries) CreateGroup(ctx context.Context, group *models.Group) error {
	// Generate ID if not set
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	if group.Status == "" {
		group.Status = models.GroupRecruiting
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO groups (`+groupColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		group.ID, group.Name, string(group.Category), group.Region, string(group.Status),
		group.Description, group.MaxMembers, group.LeaderID, group.CreatedAt,
	)
	return translate(err, "insert group")
}

// GetGroup retrieves a group by ID.
func (s queries) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = ?`, groupID)
	group := &models.Group{}
	if err := scanGroup(row, group); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("group", groupID)
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListGroups retrieves listed groups matching the filter, newest first.
func (s queries) ListGroups(ctx context.Context, filter models.GroupFilter) ([]models.Group, error) {
	var (
		where = []string{"status IN (?, ?)"}
		args  = []any{string(models.GroupRecruiting), string(models.GroupOperating)}
	)
	if q := strings.TrimSpace(filter.Query); q != "" {
		where = append(where, `(`+foldFunc+`(name) LIKE ? ESCAPE '\' OR `+foldFunc+`(description) LIKE ? ESCAPE '\')`)
		args = append(args, likePattern(q), likePattern(q))
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(filter.Category))
	}
	if r := strings.TrimSpace(filter.Region); r != "" {
		where = append(where, foldFunc+`(region) LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(r))
	}

	rows, err := s.q.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE `+strings.Join(where, " AND ")+
			` ORDER BY created_at DESC, rowid DESC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := scanGroup(rows, &g); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}

// UpdateGroup updates an existing group's mutable columns.
func (s queries) UpdateGroup(ctx context.Context, group *models.Group) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE groups SET name = ?, category = ?, region = ?, status = ?, description = ?,
		 max_members = ?, leader_id = ? WHERE id = ?`,
		group.Name, string(group.Category), group.Region, string(group.Status), group.Description,
		group.MaxMembers, group.LeaderID, group.ID,
	)
	if err != nil {
		return translate(err, "update group")
	}
	return requireRow(res, "group", group.ID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGroup(row scanner, g *models.Group) error {
	var category, status string
	if err := row.Scan(&g.ID, &g.Name, &category, &g.Region, &status,
		&g.Description, &g.MaxMembers, &g.LeaderID, &g.CreatedAt); err != nil {
		return err
	}
	g.Category = models.Category(category)
	g.Status = models.GroupStatus(status)
	return nil
}
