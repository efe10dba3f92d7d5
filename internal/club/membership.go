package club

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/clubhouse/internal/metrics"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage"
)

// loadMembership reads a membership scoped to its group.
func loadMembership(ctx context.Context, q storage.Queries, groupID, membershipID string) (*models.Membership, error) {
	if membershipID == "" {
		return nil, invalid("membership id is required")
	}
	m, err := q.GetMembership(ctx, groupID, membershipID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: membership %s", ErrNotFound, membershipID)
	}
	return m, err
}

// RequestJoin asks to join a group. A new request is created PENDING;
// repeating the call changes nothing and reports AlreadyPending or
// AlreadyMember.
func (e *Engine) RequestJoin(ctx context.Context, p models.Principal, groupID string) (*MembershipResult, error) {
	if !p.Authenticated() {
		return nil, forbidden("sign in to join a group")
	}

	var result MembershipResult
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		group, err := loadGroup(ctx, q, groupID)
		if err != nil {
			return err
		}

		existing, ok, err := roleIn(ctx, q, groupID, p.UserID)
		if err != nil {
			return err
		}
		if ok {
			result.Membership = *existing
			result.Outcome = AlreadyMember
			if existing.Role == models.RolePending {
				result.Outcome = AlreadyPending
			}
			return nil
		}

		if group.Status == models.GroupClosed {
			return forbidden("group is not accepting members")
		}

		now := e.now().Unix()
		m := models.Membership{
			GroupID:   groupID,
			UserID:    p.UserID,
			Role:      models.RolePending,
			JoinedAt:  now,
			UpdatedAt: now,
		}
		if err := q.CreateMembership(ctx, &m); err != nil {
			return err
		}
		result = MembershipResult{Membership: m, Outcome: Applied}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	metrics.RecordMembership("join", string(result.Outcome))
	slog.Info("Join requested", "group_id", groupID, "user_id", p.UserID, "outcome", result.Outcome)
	return &result, nil
}

// Approve turns a pending request into a MEMBER. Only the group's leader
// may approve; operators may not. A non-pending target is left unchanged
// and reported as AlreadyProcessed.
func (e *Engine) Approve(ctx context.Context, p models.Principal, groupID, membershipID string) (*MembershipResult, error) {
	return e.decide(ctx, p, groupID, membershipID, "approve", func(q storage.Queries, m *models.Membership) error {
		m.Role = models.RoleMember
		m.UpdatedAt = e.now().Unix()
		return q.UpdateMembershipRole(ctx, m.ID, m.Role, m.UpdatedAt)
	})
}

// Reject deletes a pending request. Same rules as Approve.
func (e *Engine) Reject(ctx context.Context, p models.Principal, groupID, membershipID string) (*MembershipResult, error) {
	return e.decide(ctx, p, groupID, membershipID, "reject", func(q storage.Queries, m *models.Membership) error {
		return q.DeleteMembership(ctx, m.ID)
	})
}

// decide runs the shared leader-only flow of Approve and Reject.
func (e *Engine) decide(ctx context.Context, p models.Principal, groupID, membershipID, event string,
	apply func(q storage.Queries, m *models.Membership) error) (*MembershipResult, error) {
	var result MembershipResult
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsLeader, event+" join requests"); err != nil {
			return err
		}
		m, err := loadMembership(ctx, q, groupID, membershipID)
		if err != nil {
			return err
		}
		if m.Role != models.RolePending {
			result = MembershipResult{Membership: *m, Outcome: AlreadyProcessed}
			return nil
		}
		if err := apply(q, m); err != nil {
			return err
		}
		result = MembershipResult{Membership: *m, Outcome: Applied}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	metrics.RecordMembership(event, string(result.Outcome))
	slog.Info("Join request decided",
		"event", event,
		"group_id", groupID,
		"membership_id", membershipID,
		"outcome", result.Outcome,
	)
	return &result, nil
}

// Leave removes the caller's own membership, withdrawing a pending request
// or leaving the group. The leader must transfer leadership first.
func (e *Engine) Leave(ctx context.Context, p models.Principal, groupID string) error {
	if !p.Authenticated() {
		return forbidden("sign in to leave a group")
	}
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, err := loadGroup(ctx, q, groupID); err != nil {
			return err
		}
		m, ok, err := roleIn(ctx, q, groupID, p.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no membership in group %s", ErrNotFound, groupID)
		}
		if m.Role.IsLeader() {
			return forbidden("the leader must transfer leadership before leaving")
		}
		return q.DeleteMembership(ctx, m.ID)
	})
	if err != nil {
		return translate(err)
	}

	metrics.RecordMembership("leave", string(Applied))
	slog.Info("Member left", "group_id", groupID, "user_id", p.UserID)
	return nil
}

// AssignRole moves a confirmed member between MEMBER and ADMIN. Leader only.
func (e *Engine) AssignRole(ctx context.Context, p models.Principal, groupID, membershipID, role string) (*MembershipResult, error) {
	target, ok := models.ParseGroupRole(role)
	if !ok || (target != models.RoleMember && target != models.RoleAdmin) {
		return nil, invalid("role must be %s or %s", models.RoleMember, models.RoleAdmin)
	}

	var result MembershipResult
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsLeader, "assign roles"); err != nil {
			return err
		}
		m, err := loadMembership(ctx, q, groupID, membershipID)
		if err != nil {
			return err
		}
		switch m.Role {
		case models.RolePending:
			return invalid("approve the join request before assigning a role")
		case models.RoleLeader:
			return invalid("transfer leadership to change the leader's role")
		case target:
			result = MembershipResult{Membership: *m, Outcome: AlreadyProcessed}
			return nil
		}
		m.Role = target
		m.UpdatedAt = e.now().Unix()
		if err := q.UpdateMembershipRole(ctx, m.ID, m.Role, m.UpdatedAt); err != nil {
			return err
		}
		result = MembershipResult{Membership: *m, Outcome: Applied}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	metrics.RecordMembership("assign_role", string(result.Outcome))
	slog.Info("Role assigned", "group_id", groupID, "membership_id", membershipID, "role", target, "outcome", result.Outcome)
	return &result, nil
}

// TransferLeadership hands the group to another confirmed member. The old
// leader becomes ADMIN, the target becomes LEADER and the group's leader
// reference follows, all in one transaction.
func (e *Engine) TransferLeadership(ctx context.Context, p models.Principal, groupID, membershipID string) (*MembershipResult, error) {
	var result MembershipResult
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		group, current, err := authorize(ctx, q, groupID, p, models.GroupRole.IsLeader, "transfer leadership")
		if err != nil {
			return err
		}
		m, err := loadMembership(ctx, q, groupID, membershipID)
		if err != nil {
			return err
		}
		if m.ID == current.ID {
			result = MembershipResult{Membership: *m, Outcome: AlreadyProcessed}
			return nil
		}
		if !m.Role.IsMember() {
			return invalid("leadership can only go to a confirmed member")
		}

		now := e.now().Unix()
		// Demote first: the one-leader index rejects two leaders even inside a transaction.
		if err := q.UpdateMembershipRole(ctx, current.ID, models.RoleAdmin, now); err != nil {
			return err
		}
		m.Role = models.RoleLeader
		m.UpdatedAt = now
		if err := q.UpdateMembershipRole(ctx, m.ID, m.Role, now); err != nil {
			return err
		}
		group.LeaderID = m.UserID
		if err := q.UpdateGroup(ctx, group); err != nil {
			return err
		}
		result = MembershipResult{Membership: *m, Outcome: Applied}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	metrics.RecordMembership("transfer_leadership", string(result.Outcome))
	slog.Info("Leadership transferred", "group_id", groupID, "new_leader_id", result.Membership.UserID, "outcome", result.Outcome)
	return &result, nil
}

// ListMembers returns the group's confirmed roster. With includePending
// the leader also gets pending requests; for anyone else the flag is ignored.
func (e *Engine) ListMembers(ctx context.Context, p models.Principal, groupID string, includePending bool) ([]models.Member, error) {
	var members []models.Member
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		_, caller, err := authorize(ctx, q, groupID, p, models.GroupRole.IsMember, "view members")
		if err != nil {
			return err
		}
		all, err := q.ListMembers(ctx, groupID)
		if err != nil {
			return err
		}
		for _, m := range all {
			if m.Role == models.RolePending && !(includePending && caller.Role.IsLeader()) {
				continue
			}
			members = append(members, m)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return members, nil
}
