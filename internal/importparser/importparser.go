// Package importparser converts a bulk spreadsheet export into zero or more
// structured transactions. Tabular sources are treated as lower-trust and
// higher-volume than single messages: malformed rows are dropped silently and
// unparsable amounts degrade to zero, because partial success is success.
package importparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"paisaparse/internal/categorizer"
	"paisaparse/internal/logging"
	"paisaparse/internal/models"
)

// Column discovery keyword lists, matched case-insensitively by substring
// against header names in original column order.
var (
	descriptionKeywords = []string{"desc", "narration", "particular", "remark", "memo", "detail"}
	amountKeywords      = []string{"amount", "debit", "withdraw", "value", "inr"}
)

// Parser is the tabular import pipeline. Rows are processed independently
// with no cross-row state, so processing order never changes the result.
type Parser struct {
	categorizer *categorizer.Categorizer
	logger      logging.Logger
	now         func() time.Time

	// Delimiter used when reading CSV input.
	Delimiter rune
}

// New creates a Parser using the given categorizer.
func New(cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if cat == nil {
		cat = categorizer.New(nil, logger)
	}

	return &Parser{
		categorizer: cat,
		logger:      logger,
		now:         time.Now,
		Delimiter:   ',',
	}
}

// Import converts header→value rows into transactions, preserving input row
// order. Rows that lack a recognizable description or amount column are
// skipped; the only observable signal is fewer outputs than inputs.
func (p *Parser) Import(headers []string, rows []map[string]string) []models.Transaction {
	now := p.now()
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		descKey, ok := findColumn(headers, row, descriptionKeywords)
		if !ok {
			p.logger.WithField(logging.FieldReason, "no description column").
				Debug("Row skipped")
			continue
		}
		amountKey, ok := findColumn(headers, row, amountKeywords)
		if !ok {
			p.logger.WithField(logging.FieldReason, "no amount column").
				Debug("Row skipped")
			continue
		}

		// Keep the signed value for categorization: the categorizer only
		// inspects magnitude for its fallback bucket, but the pass-through
		// mirrors the sources that report debits as negative values.
		signed := models.ParseAmount(row[amountKey])

		vendor := row[descKey]
		if vendor == "" {
			vendor = models.VendorUnknown
		}

		transactions = append(transactions, models.Transaction{
			ID:       models.NewImportID(now, i),
			Vendor:   vendor,
			Amount:   signed.Abs(),
			Date:     models.IngestionDate(now),
			Category: p.categorizer.Categorize(vendor, signed),
			// Bulk-imported rows are unreviewed until the user confirms them.
			Status: models.StatusPending,
		})
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: "rows", Value: len(rows)},
	).Info("Imported tabular rows")

	return transactions
}

// Parse reads CSV data with a header row and runs the import pipeline over
// every data row.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return p.Import(headers, rows), nil
}

// ParseFile runs the import pipeline over a CSV file.
func (p *Parser) ParseFile(filePath string) ([]models.Transaction, error) {
	p.logger.WithField(logging.FieldFile, filePath).Info("Importing CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return p.Parse(file)
}

// findColumn locates the first header, in original column order, whose name
// contains any of the keywords and which is present in the row.
func findColumn(headers []string, row map[string]string, keywords []string) (string, bool) {
	for _, header := range headers {
		if _, present := row[header]; !present {
			continue
		}
		lower := strings.ToLower(header)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return header, true
			}
		}
	}
	return "", false
}
