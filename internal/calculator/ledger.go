// Package calculator holds the pure aggregations over stored rows:
// ledger balances and attendance tallies.
package calculator

import (
	"math"
	"slices"

	"github.com/mmynk/clubhouse/internal/models"
)

// Balance sums the amounts of the given lines. An empty ledger balances to 0.
func Balance(lines []models.LedgerLine) int64 {
	var total int64
	for _, e := range lines {
		total += e.Amount
	}
	return total
}

// RunningBalances fills in the Balance of each line, which must be in
// recording order (oldest first), and returns the lines newest first for
// display. The input slice is modified in place.
//
// The final balance is therefore lines[0].Balance of the result.
func RunningBalances(lines []models.LedgerLine) []models.LedgerLine {
	var running int64
	for i := range lines {
		running += lines[i].Amount
		lines[i].Balance = running
	}
	slices.Reverse(lines)
	return lines
}

// Totals splits a ledger into income (sum of positive amounts) and
// expenses (sum of negative amounts, reported as a positive magnitude).
func Totals(lines []models.LedgerLine) (income, expenses int64) {
	for _, e := range lines {
		if e.Amount > 0 {
			income += e.Amount
		} else {
			expenses -= e.Amount
		}
	}
	return income, expenses
}

// Fits reports whether amount can join a ledger whose current Totals are
// income and expenses. Keeping both totals within int64 bounds every partial
// sum of the ledger, in any order, so balances never overflow.
func Fits(income, expenses, amount int64) bool {
	if amount >= 0 {
		return amount <= math.MaxInt64-income
	}
	return amount >= expenses-math.MaxInt64
}
