// Package common provides the shared CSV read/write surface used by the CLI
// layer to persist and reload transaction collections between invocations.
// The engine itself owns no persistence; these helpers belong to the chrome.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"paisaparse/internal/logging"
	"paisaparse/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.NewLogrusAdapter("info", "text")

// Delimiter for ledger CSV output, configurable via application config.
var delimiter rune = ','

// SetDelimiter sets the delimiter for ledger CSV files.
func SetDelimiter(delim rune) {
	delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

func configureCSV() {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delimiter
		return r
	})
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delimiter
		return gocsv.NewSafeCSVWriter(w)
	})
}

// ReadLedgerFile loads a previously written ledger CSV. A missing file is not
// an error: it yields an empty collection so the first import starts fresh.
func ReadLedgerFile(filePath string) ([]models.Transaction, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		log.WithField(logging.FieldFile, filePath).Debug("Ledger file not found, starting empty")
		return nil, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	configureCSV()
	var transactions []models.Transaction
	if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
		return nil, fmt.Errorf("error parsing ledger file: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Loaded ledger file")

	return transactions, nil
}

// WriteLedgerFile writes the transaction collection to a CSV file, creating
// parent directories as needed.
func WriteLedgerFile(transactions []models.Transaction, filePath string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	dir := filepath.Dir(filePath)
	if dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	configureCSV()
	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Wrote ledger file")

	return nil
}
