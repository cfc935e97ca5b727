// Package categorizer provides the pure rule engine that maps vendor text
// plus an amount to one label from a fixed category set. Rules are an
// ordered sequence of (label, matcher) pairs evaluated first-match-wins, so
// overlaps between keyword groups resolve deterministically.
package categorizer

import (
	"regexp"
	"strings"

	"paisaparse/internal/logging"
	"paisaparse/internal/models"

	"github.com/shopspring/decimal"
)

// majorExpenseThreshold is the amount above which an unmatched vendor is
// labeled Major Expense instead of General.
var majorExpenseThreshold = decimal.NewFromInt(10000)

// rule pairs a category label with its compiled keyword matcher.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

// Categorizer assigns category labels to vendor text. It is stateless after
// construction and safe for concurrent use.
type Categorizer struct {
	rules  []rule
	logger logging.Logger
}

// New creates a Categorizer from the given rule list. An empty list falls
// back to the built-in defaults.
func New(rules []models.CategoryRule, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if len(rules) == 0 {
		rules = defaultRules
	}

	return &Categorizer{
		rules:  compileRules(rules),
		logger: logger,
	}
}

// compileRules turns keyword lists into case-insensitive alternation
// matchers, preserving rule order.
func compileRules(configs []models.CategoryRule) []rule {
	compiled := make([]rule, 0, len(configs))
	for _, cfg := range configs {
		if len(cfg.Keywords) == 0 {
			continue
		}
		quoted := make([]string, len(cfg.Keywords))
		for i, kw := range cfg.Keywords {
			quoted[i] = regexp.QuoteMeta(strings.ToLower(kw))
		}
		compiled = append(compiled, rule{
			name:    cfg.Name,
			pattern: regexp.MustCompile(strings.Join(quoted, "|")),
		})
	}
	return compiled
}

// Categorize maps normalized vendor text and an amount to a category label.
// Empty text short-circuits to Uncategorized before any pattern test. When no
// group matches, amounts above the major-expense threshold become Major
// Expense and everything else General, so a label is always returned.
func (c *Categorizer) Categorize(vendorText string, amount decimal.Decimal) string {
	if strings.TrimSpace(vendorText) == "" {
		return models.CategoryUncategorized
	}

	text := strings.ToLower(vendorText)
	for _, r := range c.rules {
		if r.pattern.MatchString(text) {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldVendor, Value: vendorText},
				logging.Field{Key: logging.FieldCategory, Value: r.name},
			).Debug("Vendor matched category rule")
			return r.name
		}
	}

	if amount.GreaterThan(majorExpenseThreshold) {
		return models.CategoryMajorExpense
	}
	return models.CategoryGeneral
}
