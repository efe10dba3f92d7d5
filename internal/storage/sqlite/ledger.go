package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/clubhouse/internal/models"
)

// AppendLedgerEntry persists a new ledger entry.
func (s queries) AppendLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	// Generate ID if not set
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.RecordedAt == 0 {
		entry.RecordedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO ledger_entries (id, group_id, amount, description, actor_id, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.GroupID, entry.Amount, entry.Description,
		nullString(entry.ActorID), entry.RecordedAt,
	)
	return translate(err, "insert ledger entry")
}

// ListLedger retrieves all entries for a group in recording order.
func (s queries) ListLedger(ctx context.Context, groupID string) ([]models.LedgerLine, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT e.id, e.group_id, e.amount, e.description, e.actor_id, e.recorded_at, u.nickname
		 FROM ledger_entries e LEFT JOIN users u ON u.id = e.actor_id
		 WHERE e.group_id = ?
		 ORDER BY e.recorded_at ASC, e.rowid ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var lines []models.LedgerLine
	for rows.Next() {
		var (
			line     models.LedgerLine
			actorID  sql.NullString
			nickname sql.NullString
		)
		if err := rows.Scan(&line.ID, &line.GroupID, &line.Amount, &line.Description,
			&actorID, &line.RecordedAt, &nickname); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		line.ActorID = actorID.String
		line.ActorName = models.SystemActor
		if nickname.Valid {
			line.ActorName = nickname.String
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return lines, nil
}

// SumLedger returns the group's balance.
func (s queries) SumLedger(ctx context.Context, groupID string) (int64, error) {
	var total int64
	err := s.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE group_id = ?`,
		groupID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum ledger: %w", err)
	}
	return total, nil
}

// LedgerTotals returns the group's income and the magnitude of its expenses.
func (s queries) LedgerTotals(ctx context.Context, groupID string) (income, expenses int64, err error) {
	err = s.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(CASE WHEN amount > 0 THEN amount END), 0),
		        COALESCE(-SUM(CASE WHEN amount < 0 THEN amount END), 0)
		 FROM ledger_entries WHERE group_id = ?`,
		groupID,
	).Scan(&income, &expenses)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to total ledger: %w", err)
	}
	return income, expenses, nil
}
