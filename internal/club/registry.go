package club

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage"
)

// GroupForm is the caller-supplied part of a group.
type GroupForm struct {
	Name        string
	Category    string
	Region      string
	Description string
	MaxMembers  int
}

// apply validates the form and copies it onto g.
func (f GroupForm) apply(g *models.Group) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return invalid("name is required")
	}
	if strings.TrimSpace(f.Category) == "" {
		return invalid("category is required")
	}
	category, ok := models.ParseCategory(f.Category)
	if !ok {
		return invalid("unknown category %q", f.Category)
	}
	if f.MaxMembers <= 0 {
		return invalid("max members must be positive")
	}
	g.Name = name
	g.Category = category
	g.Region = strings.TrimSpace(f.Region)
	g.Description = strings.TrimSpace(f.Description)
	g.MaxMembers = f.MaxMembers
	return nil
}

// CreateGroup creates a recruiting group led by the caller. The group and
// the caller's LEADER membership are written in one transaction.
func (e *Engine) CreateGroup(ctx context.Context, p models.Principal, form GroupForm) (*models.Group, error) {
	if !p.Authenticated() {
		return nil, forbidden("sign in to create a group")
	}
	group := &models.Group{Status: models.GroupRecruiting, LeaderID: p.UserID}
	if err := form.apply(group); err != nil {
		return nil, err
	}

	now := e.now().Unix()
	group.CreatedAt = now
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if err := q.CreateGroup(ctx, group); err != nil {
			return err
		}
		return q.CreateMembership(ctx, &models.Membership{
			GroupID:   group.ID,
			UserID:    p.UserID,
			Role:      models.RoleLeader,
			JoinedAt:  now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "leader_id", p.UserID)
	return group, nil
}

// ListGroups returns recruiting and operating groups matching the filter,
// newest first. An unknown category is a validation error.
func (e *Engine) ListGroups(ctx context.Context, filter models.GroupFilter) ([]models.Group, error) {
	if filter.Category != "" {
		c, ok := models.ParseCategory(string(filter.Category))
		if !ok {
			return nil, invalid("unknown category %q", filter.Category)
		}
		filter.Category = c
	}
	groups, err := e.store.ListGroups(ctx, filter)
	return groups, translate(err)
}

// GetGroup returns a group with its membership figures.
func (e *Engine) GetGroup(ctx context.Context, groupID string) (*models.GroupDetail, error) {
	var detail models.GroupDetail
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		group, err := loadGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		detail.Group = *group

		detail.MemberCount, detail.PendingCount, err = q.CountMembers(ctx, groupID)
		if err != nil {
			return err
		}

		leader, err := q.GetUserByID(ctx, group.LeaderID)
		if err != nil {
			return err
		}
		detail.LeaderNickname = leader.Nickname
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &detail, nil
}

// UpdateGroup replaces a group's descriptive fields. Leader only.
func (e *Engine) UpdateGroup(ctx context.Context, p models.Principal, groupID string, form GroupForm) (*models.Group, error) {
	var updated *models.Group
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		group, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsLeader, "edit the group")
		if err != nil {
			return err
		}
		if err := form.apply(group); err != nil {
			return err
		}
		if err := q.UpdateGroup(ctx, group); err != nil {
			return err
		}
		updated = group
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("Group updated", "group_id", groupID)
	return updated, nil
}

// SetGroupStatus moves a group through its lifecycle. Leader only.
func (e *Engine) SetGroupStatus(ctx context.Context, p models.Principal, groupID, status string) (*models.Group, error) {
	st, ok := models.ParseGroupStatus(status)
	if !ok {
		return nil, invalid("unknown status %q", status)
	}

	var updated *models.Group
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		group, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsLeader, "change the group status")
		if err != nil {
			return err
		}
		group.Status = st
		if err := q.UpdateGroup(ctx, group); err != nil {
			return err
		}
		updated = group
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("Group status changed", "group_id", groupID, "status", st)
	return updated, nil
}
