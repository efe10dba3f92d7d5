package club_test

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
)

func TestRecordTransactionValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	group := f.group(t, a, "Book Club")

	tests := []struct {
		name string
		form club.TransactionForm
	}{
		{"zero", club.TransactionForm{Amount: "0", Description: "nothing"}},
		{"not an integer", club.TransactionForm{Amount: "12.50", Description: "coffee"}},
		{"blank amount", club.TransactionForm{Description: "coffee"}},
		{"blank description", club.TransactionForm{Amount: "1000", Description: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.RecordTransaction(ctx, a, group.ID, tt.form)
			assert.ErrorIs(t, err, club.ErrValidation)
		})
	}

	balance, err := f.engine.GetBalance(ctx, a, group.ID)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestLedgerOperatorsOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	admin := f.user(t, "adam")
	member := f.user(t, "mia")
	stranger := f.user(t, "sam")
	group := f.group(t, a, "Book Club")
	f.operator(t, a, admin, group.ID)
	f.member(t, a, member, group.ID)

	form := club.TransactionForm{Amount: "3000", Description: "tea"}
	for _, p := range []models.Principal{member, stranger, {}} {
		_, err := f.engine.RecordTransaction(ctx, p, group.ID, form)
		assert.ErrorIs(t, err, club.ErrForbidden)
	}

	entry, err := f.engine.RecordTransaction(ctx, admin, group.ID, form)
	require.NoError(t, err)
	assert.Equal(t, admin.UserID, entry.ActorID)
	assert.NotZero(t, entry.RecordedAt)

	balance, err := f.engine.GetBalance(ctx, member, group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), balance)

	_, err = f.engine.GetBalance(ctx, stranger, group.ID)
	assert.ErrorIs(t, err, club.ErrForbidden)
	_, err = f.engine.GetLedger(ctx, stranger, group.ID)
	assert.ErrorIs(t, err, club.ErrForbidden)
}

func TestRecordTransactionKeepsTotalsInRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	group := f.group(t, a, "Book Club")

	record := func(amount int64) error {
		_, err := f.engine.RecordTransaction(ctx, a, group.ID, club.TransactionForm{
			Amount: strconv.FormatInt(amount, 10), Description: "entry",
		})
		return err
	}

	require.NoError(t, record(math.MaxInt64))
	assert.ErrorIs(t, record(1), club.ErrValidation, "income total is full")
	require.NoError(t, record(-math.MaxInt64))
	assert.ErrorIs(t, record(-1), club.ErrValidation, "expense total is full")
	assert.ErrorIs(t, record(math.MinInt64), club.ErrValidation)

	balance, err := f.engine.GetBalance(ctx, a, group.ID)
	require.NoError(t, err)
	assert.Zero(t, balance)

	view, err := f.engine.GetLedger(ctx, a, group.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, balance, view.Balance)
	assert.Equal(t, int64(math.MaxInt64), view.Income)
	assert.Equal(t, int64(math.MaxInt64), view.Expenses)
	assert.Equal(t, int64(math.MaxInt64), view.Lines[1].Balance)
}

func TestGetLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "alice")
	b := f.user(t, "bob")
	group := f.group(t, a, "Book Club")
	f.operator(t, a, b, group.ID)

	for _, tx := range []struct {
		by     models.Principal
		amount string
		desc   string
	}{
		{a, "50000", "dues"},
		{b, "-12000", "venue"},
		{a, "2500", "donation"},
	} {
		_, err := f.engine.RecordTransaction(ctx, tx.by, group.ID, club.TransactionForm{Amount: tx.amount, Description: tx.desc})
		require.NoError(t, err)
	}

	view, err := f.engine.GetLedger(ctx, b, group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40500), view.Balance)
	assert.Equal(t, int64(52500), view.Income)
	assert.Equal(t, int64(12000), view.Expenses)

	require.Len(t, view.Lines, 3)
	assert.Equal(t, "donation", view.Lines[0].Description, "newest first")
	assert.Equal(t, int64(40500), view.Lines[0].Balance)
	assert.Equal(t, "bob", view.Lines[1].ActorName)
	assert.Equal(t, int64(38000), view.Lines[1].Balance)
	assert.Equal(t, int64(50000), view.Lines[2].Balance)
}
