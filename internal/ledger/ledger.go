// Package ledger provides the operations on the transaction collection. The
// collection is caller-owned: every operation is a transformation from
// (collection, input) to a resulting collection, and the surrounding
// application serializes mutations with a single-writer discipline.
package ledger

import (
	"paisaparse/internal/models"

	"github.com/shopspring/decimal"
)

// Prepend places newly produced transactions ahead of the existing
// collection, keeping the most recent ingestion first. Order inside the new
// batch is preserved, so an import batch keeps its row order.
func Prepend(collection []models.Transaction, batch ...models.Transaction) []models.Transaction {
	if len(batch) == 0 {
		return collection
	}
	result := make([]models.Transaction, 0, len(batch)+len(collection))
	result = append(result, batch...)
	return append(result, collection...)
}

// Confirm marks the transaction with the given id as verified. Confirming a
// missing id or an already-verified record is a no-op; other records are
// never touched or reordered, so the operation is idempotent.
func Confirm(collection []models.Transaction, id string) []models.Transaction {
	for i := range collection {
		if collection[i].ID == id && collection[i].IsPending() {
			collection[i].Status = models.StatusVerified
			break
		}
	}
	return collection
}

// Find returns the transaction with the given id, if present.
func Find(collection []models.Transaction, id string) (models.Transaction, bool) {
	for _, tx := range collection {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// Summary aggregates the collection for display.
type Summary struct {
	Income  decimal.Decimal
	Spent   decimal.Decimal
	Balance decimal.Decimal
}

// Summarize totals income (the Income category) and spend (everything else)
// over the collection. Balance is the opening balance plus income minus
// spend.
func Summarize(collection []models.Transaction, openingBalance decimal.Decimal) Summary {
	income := decimal.Zero
	spent := decimal.Zero
	for _, tx := range collection {
		if tx.Category == models.CategoryIncome {
			income = income.Add(tx.Amount)
		} else {
			spent = spent.Add(tx.Amount)
		}
	}

	return Summary{
		Income:  income,
		Spent:   spent,
		Balance: openingBalance.Add(income).Sub(spent),
	}
}

// CategoryTotals sums amounts per category label.
func CategoryTotals(collection []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range collection {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}
