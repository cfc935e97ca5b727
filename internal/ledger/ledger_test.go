package ledger

import (
	"testing"

	"paisaparse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id, category, amount, status string) models.Transaction {
	return models.Transaction{
		ID:       id,
		Vendor:   "VENDOR",
		Amount:   decimal.RequireFromString(amount),
		Date:     "03.11.2025",
		Category: category,
		Status:   status,
	}
}

func TestPrependKeepsMostRecentFirst(t *testing.T) {
	existing := []models.Transaction{
		tx("sms-1-a", models.CategoryFood, "350", models.StatusVerified),
	}
	batch := []models.Transaction{
		tx("imp-2-0", models.CategoryShopping, "2499", models.StatusPending),
		tx("imp-2-1", models.CategoryTransport, "820", models.StatusPending),
	}

	result := Prepend(existing, batch...)

	require.Len(t, result, 3)
	assert.Equal(t, "imp-2-0", result[0].ID)
	assert.Equal(t, "imp-2-1", result[1].ID)
	assert.Equal(t, "sms-1-a", result[2].ID)
}

func TestPrependEmptyBatch(t *testing.T) {
	existing := []models.Transaction{
		tx("sms-1-a", models.CategoryFood, "350", models.StatusVerified),
	}
	assert.Equal(t, existing, Prepend(existing))
}

func TestConfirmPendingTransaction(t *testing.T) {
	collection := []models.Transaction{
		tx("imp-1-0", models.CategoryShopping, "2499", models.StatusPending),
		tx("imp-1-1", models.CategoryFood, "350", models.StatusPending),
	}

	result := Confirm(collection, "imp-1-0")

	assert.Equal(t, models.StatusVerified, result[0].Status)
	// Other records are untouched and order is preserved.
	assert.Equal(t, models.StatusPending, result[1].Status)
	assert.Equal(t, "imp-1-1", result[1].ID)
}

func TestConfirmIsIdempotent(t *testing.T) {
	collection := []models.Transaction{
		tx("imp-1-0", models.CategoryShopping, "2499", models.StatusPending),
	}

	once := Confirm(collection, "imp-1-0")
	twice := Confirm(once, "imp-1-0")

	assert.Equal(t, once, twice)
	assert.Equal(t, models.StatusVerified, twice[0].Status)
}

func TestConfirmUnknownIDIsNoOp(t *testing.T) {
	collection := []models.Transaction{
		tx("imp-1-0", models.CategoryShopping, "2499", models.StatusPending),
	}

	result := Confirm(collection, "missing")

	require.Len(t, result, 1)
	assert.Equal(t, models.StatusPending, result[0].Status)
}

func TestFind(t *testing.T) {
	collection := []models.Transaction{
		tx("sms-1-a", models.CategoryFood, "350", models.StatusVerified),
	}

	found, ok := Find(collection, "sms-1-a")
	assert.True(t, ok)
	assert.Equal(t, "sms-1-a", found.ID)

	_, ok = Find(collection, "missing")
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	collection := []models.Transaction{
		tx("sms-1-a", models.CategoryIncome, "50000", models.StatusVerified),
		tx("sms-1-b", models.CategoryFood, "350", models.StatusVerified),
		tx("imp-1-0", models.CategoryShopping, "2499", models.StatusPending),
	}

	summary := Summarize(collection, decimal.NewFromInt(10000))

	assert.True(t, summary.Income.Equal(decimal.NewFromInt(50000)))
	assert.True(t, summary.Spent.Equal(decimal.NewFromInt(2849)))
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(57151)))
}

func TestSummarizeEmptyCollection(t *testing.T) {
	summary := Summarize(nil, decimal.Zero)

	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Spent.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestCategoryTotals(t *testing.T) {
	collection := []models.Transaction{
		tx("a", models.CategoryFood, "350", models.StatusVerified),
		tx("b", models.CategoryFood, "150", models.StatusVerified),
		tx("c", models.CategoryTransport, "820", models.StatusPending),
	}

	totals := CategoryTotals(collection)

	assert.True(t, totals[models.CategoryFood].Equal(decimal.NewFromInt(500)))
	assert.True(t, totals[models.CategoryTransport].Equal(decimal.NewFromInt(820)))
	assert.Len(t, totals, 2)
}
