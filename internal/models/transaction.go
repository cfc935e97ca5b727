// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a financial record derived from an unstructured source,
// either a single bank notification message or one row of a bulk CSV export.
type Transaction struct {
	ID       string          `csv:"ID"`       // Opaque unique identifier, assigned at creation
	Vendor   string          `csv:"Vendor"`   // Normalized display name, never empty
	Amount   decimal.Decimal `csv:"Amount"`   // Non-negative, at most 2 fractional digits
	Date     string          `csv:"Date"`     // Ingestion date in DD.MM.YYYY format
	Category string          `csv:"Category"` // One of the Category* constants
	Status   string          `csv:"Status"`   // StatusPending or StatusVerified
}

// IsPending reports whether the transaction still awaits user confirmation.
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// GetAmountAsFloat returns the Amount as a float64.
// Use direct decimal operations instead for financial calculations.
func (t *Transaction) GetAmountAsFloat() float64 {
	f, _ := t.Amount.Float64()
	return f
}

// NewMessageID builds an identifier for a transaction produced by the text
// pipeline. The time component plus a random suffix makes collisions
// practically impossible for the lifetime of the collection.
func NewMessageID(now time.Time) string {
	return fmt.Sprintf("sms-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// NewImportID builds an identifier for a transaction produced by the tabular
// import pipeline. The row index keeps IDs unique within one import batch.
func NewImportID(now time.Time, rowIndex int) string {
	return fmt.Sprintf("imp-%d-%d", now.UnixMilli(), rowIndex)
}

// IngestionDate formats the wall-clock ingestion time as a DD.MM.YYYY date.
// The engine records when a transaction was ingested, not any date embedded
// in the source text.
func IngestionDate(now time.Time) string {
	return now.Format("02.01.2006")
}
