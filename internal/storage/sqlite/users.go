package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage"
)

const userColumns = `id, email, nickname, password_hash, site_role, created_at, updated_at`

// CreateUser inserts a new user into the database.
func (s queries) CreateUser(ctx context.Context, user *models.User) error {
	if user.SiteRole == "" {
		user.SiteRole = models.SiteRoleGeneral
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.Nickname,
		user.PasswordHash,
		string(user.SiteRole),
		user.CreatedAt,
		user.UpdatedAt,
	)
	return translate(err, "create user")
}

// GetUserByEmail retrieves a user by their email address.
func (s queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s queries) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// UpdateNickname changes a user's nickname.
func (s queries) UpdateNickname(ctx context.Context, userID, nickname string, updatedAt int64) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE users SET nickname = ?, updated_at = ? WHERE id = ?`,
		nickname, updatedAt, userID,
	)
	if err != nil {
		return translate(err, "update nickname")
	}
	return requireRow(res, "user", userID)
}

// DeleteUser removes a user. The groups.leader_id reference has no ON DELETE
// action, so deleting a sitting leader fails with ErrConflict.
func (s queries) DeleteUser(ctx context.Context, userID string) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		err = translate(err, "delete user")
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: user %s is still referenced", storage.ErrConflict, userID)
		}
		return err
	}
	return requireRow(res, "user", userID)
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var role string
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Nickname,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.SiteRole = models.SiteRole(role)
	return user, nil
}

// requireRow turns a zero-row update or delete into ErrNotFound.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}
