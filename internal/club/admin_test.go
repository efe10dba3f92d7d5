package club_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
)

func TestSetNickname(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	f.user(t, "bob")

	u, err := f.engine.SetNickname(ctx, a, "  ally ")
	require.NoError(t, err)
	assert.Equal(t, "ally", u.Nickname)

	_, err = f.engine.SetNickname(ctx, a, "bob")
	assert.ErrorIs(t, err, club.ErrConflict)

	_, err = f.engine.SetNickname(ctx, a, "")
	assert.ErrorIs(t, err, club.ErrValidation)

	_, err = f.engine.SetNickname(ctx, models.Principal{}, "ghost")
	assert.ErrorIs(t, err, club.ErrForbidden)
}

func TestRemoveUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	root := f.userWithRole(t, "root", models.SiteRoleAdmin)
	manager := f.userWithRole(t, "manny", models.SiteRoleManager)
	a := f.user(t, "alice")
	b := f.user(t, "bob")
	group := f.group(t, a, "Book Club")
	f.operator(t, a, b, group.ID)

	_, err := f.engine.RecordTransaction(ctx, b, group.ID, club.TransactionForm{Amount: "7000", Description: "snacks"})
	require.NoError(t, err)

	t.Run("group roles do not grant site administration", func(t *testing.T) {
		assert.ErrorIs(t, f.engine.RemoveUser(ctx, a, b.UserID), club.ErrForbidden)
		assert.ErrorIs(t, f.engine.RemoveUser(ctx, manager, b.UserID), club.ErrForbidden)
	})

	t.Run("a principal claiming admin is checked against the store", func(t *testing.T) {
		forged := a
		forged.SiteRole = models.SiteRoleAdmin
		assert.ErrorIs(t, f.engine.RemoveUser(ctx, forged, b.UserID), club.ErrForbidden)
	})

	t.Run("leaders cannot be removed", func(t *testing.T) {
		assert.ErrorIs(t, f.engine.RemoveUser(ctx, root, a.UserID), club.ErrConflict)
	})

	t.Run("removal keeps the ledger", func(t *testing.T) {
		require.NoError(t, f.engine.RemoveUser(ctx, root, b.UserID))

		_, ok, err := f.engine.RoleOf(ctx, group.ID, b.UserID)
		require.NoError(t, err)
		assert.False(t, ok)

		view, err := f.engine.GetLedger(ctx, a, group.ID)
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, models.SystemActor, view.Lines[0].ActorName)
		assert.Equal(t, int64(7000), view.Balance)
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.ErrorIs(t, f.engine.RemoveUser(ctx, root, b.UserID), club.ErrNotFound)
	})
}
