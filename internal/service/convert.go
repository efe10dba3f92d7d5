package service

import (
	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/pkg/clubapi"
)

func toUser(u *models.User) *clubapi.User {
	return &clubapi.User{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		SiteRole:  string(u.SiteRole),
		CreatedAt: u.CreatedAt,
	}
}

func toGroup(g *models.Group) *clubapi.Group {
	return &clubapi.Group{
		ID:          g.ID,
		Name:        g.Name,
		Category:    string(g.Category),
		Region:      g.Region,
		Status:      string(g.Status),
		Description: g.Description,
		MaxMembers:  int32(g.MaxMembers),
		LeaderID:    g.LeaderID,
		CreatedAt:   g.CreatedAt,
	}
}

func toMembership(m models.Membership, nickname string) *clubapi.Membership {
	return &clubapi.Membership{
		ID:        m.ID,
		GroupID:   m.GroupID,
		UserID:    m.UserID,
		Nickname:  nickname,
		Role:      string(m.Role),
		RoleLabel: m.Role.Label(),
		JoinedAt:  m.JoinedAt,
	}
}

func toMembershipResponse(r *club.MembershipResult) *clubapi.MembershipResponse {
	return &clubapi.MembershipResponse{
		Membership: toMembership(r.Membership, ""),
		Outcome:    string(r.Outcome),
	}
}

func toActivity(s models.ActivitySummary) *clubapi.Activity {
	return &clubapi.Activity{
		ID:            s.ID,
		GroupID:       s.GroupID,
		Title:         s.Title,
		StartsAt:      s.StartsAt,
		EndsAt:        s.EndsAt,
		Location:      s.Location,
		Content:       s.Content,
		Fee:           s.Fee,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		ExpectedCount: int32(s.ExpectedCount),
		PresentCount:  int32(s.PresentCount),
		AbsentCount:   int32(s.AbsentCount),
	}
}

func toAttendance(r *models.AttendanceRecord) *clubapi.Attendance {
	return &clubapi.Attendance{
		ActivityID: r.ActivityID,
		UserID:     r.UserID,
		Nickname:   r.Nickname,
		Intent:     string(r.Intent),
		Actual:     string(r.Actual),
		CheckedBy:  r.CheckedBy,
		CheckedAt:  r.CheckedAt,
	}
}

func toLedgerLine(l models.LedgerLine) *clubapi.LedgerLine {
	return &clubapi.LedgerLine{
		ID:          l.ID,
		Amount:      l.Amount,
		Description: l.Description,
		ActorID:     l.ActorID,
		ActorName:   l.ActorName,
		RecordedAt:  l.RecordedAt,
		Balance:     l.Balance,
	}
}
