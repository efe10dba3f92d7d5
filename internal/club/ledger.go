package club

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/clubhouse/internal/calculator"
	"github.com/mmynk/clubhouse/internal/metrics"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage"
)

// TransactionForm is a ledger entry as entered. Amount is a signed integer:
// income positive, expense negative.
type TransactionForm struct {
	Amount      string
	Description string
}

// LedgerView is a group's ledger prepared for display.
type LedgerView struct {
	// Lines are newest first, each with its running balance.
	Lines    []models.LedgerLine
	Balance  int64
	Income   int64
	Expenses int64
}

// RecordTransaction appends an entry to the group's ledger. Leader or admin only.
func (e *Engine) RecordTransaction(ctx context.Context, p models.Principal, groupID string, form TransactionForm) (*models.LedgerEntry, error) {
	var entry *models.LedgerEntry
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsOperator, "record transactions"); err != nil {
			return err
		}

		amount, err := strconv.ParseInt(strings.TrimSpace(form.Amount), 10, 64)
		if err != nil {
			return invalid("amount must be a whole number")
		}
		if amount == 0 {
			return invalid("amount must not be zero")
		}
		description := strings.TrimSpace(form.Description)
		if description == "" {
			return invalid("description is required")
		}

		income, expenses, err := q.LedgerTotals(ctx, groupID)
		if err != nil {
			return err
		}
		if !calculator.Fits(income, expenses, amount) {
			return invalid("amount %d would overflow the ledger totals", amount)
		}

		entry = &models.LedgerEntry{
			GroupID:     groupID,
			Amount:      amount,
			Description: description,
			ActorID:     p.UserID,
			RecordedAt:  e.now().Unix(),
		}
		return q.AppendLedgerEntry(ctx, entry)
	})
	if err != nil {
		return nil, translate(err)
	}

	metrics.RecordLedgerEntry(entry.Amount)
	slog.Info("Transaction recorded", "group_id", groupID, "entry_id", entry.ID, "amount", entry.Amount)
	return entry, nil
}

// GetBalance returns the sum of the group's ledger. Members only.
func (e *Engine) GetBalance(ctx context.Context, p models.Principal, groupID string) (int64, error) {
	var balance int64
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsMember, "view the ledger"); err != nil {
			return err
		}
		var err error
		balance, err = q.SumLedger(ctx, groupID)
		return err
	})
	if err != nil {
		return 0, translate(err)
	}
	return balance, nil
}

// GetLedger returns the group's entries newest first with running balances
// and recorder names. Members only.
func (e *Engine) GetLedger(ctx context.Context, p models.Principal, groupID string) (*LedgerView, error) {
	var view LedgerView
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		if _, _, err := authorize(ctx, q, groupID, p, models.GroupRole.IsMember, "view the ledger"); err != nil {
			return err
		}
		lines, err := q.ListLedger(ctx, groupID)
		if err != nil {
			return err
		}
		view.Balance = calculator.Balance(lines)
		view.Income, view.Expenses = calculator.Totals(lines)
		view.Lines = calculator.RunningBalances(lines)
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &view, nil
}
