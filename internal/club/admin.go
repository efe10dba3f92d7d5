package club

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage"
)

// maxNicknameLength bounds nicknames in runes.
const maxNicknameLength = 30

// ValidateNickname trims a nickname and checks its length.
func ValidateNickname(nickname string) (string, error) {
	n := strings.TrimSpace(nickname)
	if n == "" {
		return "", invalid("nickname is required")
	}
	if utf8.RuneCountInString(n) > maxNicknameLength {
		return "", invalid("nickname must be at most %d characters", maxNicknameLength)
	}
	return n, nil
}

// SetNickname changes the caller's nickname. A taken nickname is a conflict.
func (e *Engine) SetNickname(ctx context.Context, p models.Principal, nickname string) (*models.User, error) {
	if !p.Authenticated() {
		return nil, forbidden("sign in to change your nickname")
	}
	n, err := ValidateNickname(nickname)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = e.store.WithTx(ctx, func(q storage.Queries) error {
		if err := q.UpdateNickname(ctx, p.UserID, n, e.now().Unix()); err != nil {
			return err
		}
		var err error
		user, err = q.GetUserByID(ctx, p.UserID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("Nickname changed", "user_id", p.UserID)
	return user, nil
}

// RemoveUser deletes an account. Only a site admin may do this, judged by
// the stored SiteRole, never by any group role. A user who still leads a
// group cannot be removed until leadership is transferred.
func (e *Engine) RemoveUser(ctx context.Context, p models.Principal, userID string) error {
	if !p.Authenticated() {
		return forbidden("sign in to manage users")
	}
	if userID == "" {
		return invalid("user id is required")
	}

	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		actor, err := q.GetUserByID(ctx, p.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return forbidden("unknown caller")
			}
			return err
		}
		if actor.SiteRole != models.SiteRoleAdmin {
			return forbidden("only site administrators can remove users")
		}

		if _, err := q.GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: user %s", ErrNotFound, userID)
			}
			return err
		}
		memberships, err := q.ListMembershipsByUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, m := range memberships {
			if m.Role.IsLeader() {
				return fmt.Errorf("%w: user %s still leads group %s", ErrConflict, userID, m.GroupID)
			}
		}
		return q.DeleteUser(ctx, userID)
	})
	if err != nil {
		return translate(err)
	}

	slog.Info("User removed", "user_id", userID, "removed_by", p.UserID)
	return nil
}
