package club_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
)

func TestCreateGroupValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")

	tests := []struct {
		name string
		form club.GroupForm
	}{
		{"blank name", club.GroupForm{Name: "  ", Category: "reading", MaxMembers: 5}},
		{"missing category", club.GroupForm{Name: "Readers", MaxMembers: 5}},
		{"unknown category", club.GroupForm{Name: "Readers", Category: "knitting", MaxMembers: 5}},
		{"zero max members", club.GroupForm{Name: "Readers", Category: "reading"}},
		{"negative max members", club.GroupForm{Name: "Readers", Category: "reading", MaxMembers: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.CreateGroup(ctx, a, tt.form)
			assert.ErrorIs(t, err, club.ErrValidation)
		})
	}

	groups, err := f.engine.ListGroups(ctx, models.GroupFilter{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCreateGroupRequiresSignIn(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.CreateGroup(context.Background(), models.Principal{}, club.GroupForm{
		Name: "Readers", Category: "reading", MaxMembers: 5,
	})
	assert.ErrorIs(t, err, club.ErrForbidden)
}

func TestCreateGroupNameConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	b := f.user(t, "bob")
	f.group(t, a, "Book Club")

	_, err := f.engine.CreateGroup(ctx, b, club.GroupForm{Name: "BOOK CLUB", Category: "reading", MaxMembers: 5})
	assert.ErrorIs(t, err, club.ErrConflict)

	// The failed insert left no stray membership for bob.
	memberships, err := f.store.ListMembershipsByUser(ctx, b.UserID)
	require.NoError(t, err)
	assert.Empty(t, memberships)
}

func TestListAndGetGroups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	b := f.user(t, "bob")

	books := f.group(t, a, "Book Club")
	runners, err := f.engine.CreateGroup(ctx, a, club.GroupForm{
		Name: "Trail Runners", Category: "Sports", Region: "Busan", Description: "weekend runs", MaxMembers: 30,
	})
	require.NoError(t, err)

	groups, err := f.engine.ListGroups(ctx, models.GroupFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, runners.ID, groups[0].ID, "newest first")

	groups, err = f.engine.ListGroups(ctx, models.GroupFilter{Query: "WEEKEND"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, runners.ID, groups[0].ID)

	_, err = f.engine.ListGroups(ctx, models.GroupFilter{Category: "knitting"})
	assert.ErrorIs(t, err, club.ErrValidation)

	ecole, err := f.engine.CreateGroup(ctx, b, club.GroupForm{
		Name: "École de Musique", Category: "music", Region: "ÎLE-DE-FRANCE", MaxMembers: 12,
	})
	require.NoError(t, err)
	for _, filter := range []models.GroupFilter{
		{Query: "École"},
		{Query: "école"},
		{Query: "ÉCOLE DE"},
		{Region: "île-de"},
	} {
		groups, err = f.engine.ListGroups(ctx, filter)
		require.NoError(t, err)
		require.Len(t, groups, 1, "filter %+v", filter)
		assert.Equal(t, ecole.ID, groups[0].ID)
	}
	_, err = f.engine.CreateGroup(ctx, a, club.GroupForm{Name: "école de musique", Category: "music", MaxMembers: 5})
	assert.ErrorIs(t, err, club.ErrConflict, "names differing only in non-ASCII case collide")

	_, err = f.engine.RequestJoin(ctx, b, books.ID)
	require.NoError(t, err)
	detail, err := f.engine.GetGroup(ctx, books.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.MemberCount)
	assert.Equal(t, 1, detail.PendingCount)
	assert.Equal(t, "alice", detail.LeaderNickname)

	_, err = f.engine.GetGroup(ctx, "missing")
	assert.ErrorIs(t, err, club.ErrNotFound)
}

func TestUpdateGroupAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	b := f.user(t, "bob")
	group := f.group(t, a, "Book Club")
	f.operator(t, a, b, group.ID)

	_, err := f.engine.UpdateGroup(ctx, b, group.ID, club.GroupForm{Name: "Hijacked", Category: "reading", MaxMembers: 5})
	assert.ErrorIs(t, err, club.ErrForbidden)

	updated, err := f.engine.UpdateGroup(ctx, a, group.ID, club.GroupForm{
		Name: "Book Club", Category: "reading", Description: "monthly novels", MaxMembers: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.MaxMembers)
	assert.Equal(t, models.GroupRecruiting, updated.Status)

	_, err = f.engine.SetGroupStatus(ctx, a, group.ID, "paused")
	assert.ErrorIs(t, err, club.ErrValidation)

	closed, err := f.engine.SetGroupStatus(ctx, a, group.ID, "closed")
	require.NoError(t, err)
	assert.Equal(t, models.GroupClosed, closed.Status)

	groups, err := f.engine.ListGroups(ctx, models.GroupFilter{})
	require.NoError(t, err)
	assert.Empty(t, groups, "closed groups are not listed")
}
