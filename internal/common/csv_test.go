package common

import (
	"os"
	"path/filepath"
	"testing"

	"paisaparse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadLedgerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")

	in := []models.Transaction{
		{
			ID:       "sms-1700000000000-ab12cd34",
			Vendor:   "STARBUCKS",
			Amount:   decimal.RequireFromString("500"),
			Date:     "03.11.2025",
			Category: models.CategoryFood,
			Status:   models.StatusVerified,
		},
		{
			ID:       "imp-1700000000000-0",
			Vendor:   "AMAZON PURCHASE",
			Amount:   decimal.RequireFromString("2499.00"),
			Date:     "03.11.2025",
			Category: models.CategoryShopping,
			Status:   models.StatusPending,
		},
	}
	require.NoError(t, WriteLedgerFile(in, path))

	out, err := ReadLedgerFile(path)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "sms-1700000000000-ab12cd34", out[0].ID)
	assert.Equal(t, "STARBUCKS", out[0].Vendor)
	assert.True(t, out[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, models.StatusVerified, out[0].Status)
	assert.True(t, out[1].Amount.Equal(decimal.RequireFromString("2499")))
	assert.Equal(t, models.StatusPending, out[1].Status)
}

func TestReadLedgerFileMissingIsEmpty(t *testing.T) {
	out, err := ReadLedgerFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWriteLedgerFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.csv")

	require.NoError(t, WriteLedgerFile(nil, path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLedgerFileCustomDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	path := filepath.Join(t.TempDir(), "ledger.csv")
	in := []models.Transaction{
		{
			ID:       "sms-1-a",
			Vendor:   "CAFE, THE CORNER",
			Amount:   decimal.RequireFromString("120"),
			Date:     "03.11.2025",
			Category: models.CategoryFood,
			Status:   models.StatusVerified,
		},
	}
	require.NoError(t, WriteLedgerFile(in, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sms-1-a;CAFE, THE CORNER;")

	out, err := ReadLedgerFile(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "CAFE, THE CORNER", out[0].Vendor)
}
