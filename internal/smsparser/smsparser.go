// Package smsparser converts one free-text bank notification message into at
// most one structured transaction. Every stage is a hard gate: a message that
// fails any of them yields no transaction, which callers must treat as a
// normal "not a transaction" outcome rather than an error.
package smsparser

import (
	"strings"
	"time"

	"paisaparse/internal/categorizer"
	"paisaparse/internal/logging"
	"paisaparse/internal/models"

	"github.com/shopspring/decimal"
)

// Parser is the text extraction pipeline. Matching, cleaning and
// categorization are pure functions of the input text; wall-clock time only
// reaches the generated ID and ingestion date. Safe for concurrent use.
type Parser struct {
	patterns    *patterns
	categorizer *categorizer.Categorizer
	logger      logging.Logger
	now         func() time.Time
}

// New creates a Parser with the given vocabulary override (nil keeps the
// built-in word lists) and categorizer.
func New(vocab *models.Vocabulary, cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if cat == nil {
		cat = categorizer.New(nil, logger)
	}

	return &Parser{
		patterns:    compilePatterns(mergeVocabulary(vocab)),
		categorizer: cat,
		logger:      logger,
		now:         time.Now,
	}
}

// Extract runs the pipeline over one raw message. The second return value is
// false when the text contains no recognizable transaction.
func (p *Parser) Extract(rawText string) (models.Transaction, bool) {
	// Authentication codes share numeric-and-brand shape with transaction
	// alerts and must never be recorded as spending.
	if p.patterns.spam.MatchString(rawText) {
		p.logger.WithField(logging.FieldReason, "spam or verification message").
			Debug("Message rejected")
		return models.Transaction{}, false
	}

	// No currency-prefixed amount means the message is not a transaction.
	amountMatch := p.patterns.amount.FindStringSubmatch(rawText)
	if amountMatch == nil {
		p.logger.WithField(logging.FieldReason, "no currency-prefixed amount").
			Debug("Message rejected")
		return models.Transaction{}, false
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(amountMatch[1], ",", ""))
	if err != nil {
		p.logger.WithError(err).WithField(logging.FieldReason, "unparsable amount token").
			Debug("Message rejected")
		return models.Transaction{}, false
	}

	// Credit vocabulary flags incoming money; absence defaults to outgoing.
	isCredit := p.patterns.credit.MatchString(rawText)

	rawVendor := p.extractVendor(rawText)
	cleanVendor := p.cleanVendor(rawVendor)

	// The prepositional fallback sometimes captures only the preposition
	// itself; a stub or one-letter vendor is replaced by a direction
	// sentinel instead of surfacing as garbage.
	if p.patterns.blacklist.MatchString(cleanVendor) || len(cleanVendor) < 2 {
		if isCredit {
			cleanVendor = models.VendorIncomingTransfer
		} else {
			cleanVendor = models.VendorTransferToAccount
		}
	}

	category := models.CategoryIncome
	if !isCredit {
		category = p.categorizer.Categorize(cleanVendor, amount)
	}

	now := p.now()
	tx := models.Transaction{
		ID:       models.NewMessageID(now),
		Vendor:   strings.ToUpper(cleanVendor),
		Amount:   amount,
		Date:     models.IngestionDate(now),
		Category: category,
		// The user supplied the text deliberately (or it arrived via the
		// trusted listener), so no review step is needed.
		Status: models.StatusVerified,
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldVendor, Value: tx.Vendor},
		logging.Field{Key: logging.FieldCategory, Value: tx.Category},
	).Debug("Transaction extracted from message")

	return tx, true
}

// extractVendor captures the vendor text, preferring the payment-network
// prefix pattern over the prepositional fallback.
func (p *Parser) extractVendor(text string) string {
	if match := p.patterns.upiVendor.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	if match := p.patterns.prepVendor.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	return models.VendorUnknown
}

// cleanVendor applies the normalization passes in order: strip banking
// boilerplate, strip masked digit runs, collapse whitespace, trim.
func (p *Parser) cleanVendor(raw string) string {
	cleaned := p.patterns.boilerplate.ReplaceAllString(raw, "")
	cleaned = p.patterns.digitRuns.ReplaceAllString(cleaned, "")
	cleaned = p.patterns.whitespace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
