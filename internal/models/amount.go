package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonAmountChars = regexp.MustCompile(`[^0-9.\-]+`)

// ParseAmount converts a raw amount cell to a decimal value. Every character
// that is not a digit, period, or minus sign is stripped before parsing, so
// values like "Rs. 2,499.00" or "INR 1'200" survive intact. An unparsable
// result yields zero rather than an error: tabular sources are bulk and
// lower-trust, and partial data is preferred over data loss.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := nonAmountChars.ReplaceAllString(strings.TrimSpace(raw), "")
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
