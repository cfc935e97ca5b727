package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewMessageID(t *testing.T) {
	now := time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC)

	id := NewMessageID(now)

	assert.True(t, strings.HasPrefix(id, "sms-1762165800000-"))
	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
}

func TestNewMessageIDUniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewMessageID(now)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewImportID(t *testing.T) {
	now := time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "imp-1762165800000-0", NewImportID(now, 0))
	assert.Equal(t, "imp-1762165800000-41", NewImportID(now, 41))
}

func TestIngestionDate(t *testing.T) {
	now := time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "03.11.2025", IngestionDate(now))
}

func TestIsPending(t *testing.T) {
	tx := Transaction{Status: StatusPending}
	assert.True(t, tx.IsPending())

	tx.Status = StatusVerified
	assert.False(t, tx.IsPending())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "500", "500"},
		{"thousands separator", "2,499.00", "2499"},
		{"indian grouping", "1,23,456.78", "123456.78"},
		{"negative debit", "-1250.50", "-1250.5"},
		{"currency noise", "INR 350", "350"},
		{"unparsable", "abc", "0"},
		{"empty", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			assert.NoError(t, err)
			assert.True(t, ParseAmount(tt.raw).Equal(want),
				"ParseAmount(%q) = %s, want %s", tt.raw, ParseAmount(tt.raw), want)
		})
	}
}
