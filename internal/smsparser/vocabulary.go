package smsparser

import (
	"regexp"
	"strings"

	"paisaparse/internal/models"
)

// defaultVocabulary is the built-in banking-SMS word set, tuned to Indian
// bank notification formats. Any field can be overridden through the rules
// file without touching the extraction algorithm.
var defaultVocabulary = models.Vocabulary{
	SpamKeywords:    []string{"otp", "login", "auth", "code", "verification"},
	CurrencyMarkers: []string{"Rs", "INR", "₹"},
	CreditKeywords:  []string{"credited", "received", "deposited", "added"},
	BoilerplateTokens: []string{
		"a/c", "acct", "account", "*", "xx", "ending", "card", "pos", "txn",
		"info", "ref", "no.", "bsnl", "bank", "neft", "imps", "rtgs", "upi",
		"pvt", "ltd",
	},
	VendorPrepositions: []string{"at", "to", "via", "from", "merchant", "paid"},
}

// mergeVocabulary fills any empty override field from the defaults, so a
// rules file may replace a single word list without restating the rest.
func mergeVocabulary(override *models.Vocabulary) models.Vocabulary {
	merged := defaultVocabulary
	if override == nil {
		return merged
	}
	if len(override.SpamKeywords) > 0 {
		merged.SpamKeywords = override.SpamKeywords
	}
	if len(override.CurrencyMarkers) > 0 {
		merged.CurrencyMarkers = override.CurrencyMarkers
	}
	if len(override.CreditKeywords) > 0 {
		merged.CreditKeywords = override.CreditKeywords
	}
	if len(override.BoilerplateTokens) > 0 {
		merged.BoilerplateTokens = override.BoilerplateTokens
	}
	if len(override.VendorPrepositions) > 0 {
		merged.VendorPrepositions = override.VendorPrepositions
	}
	return merged
}

// patterns holds the matchers compiled from a vocabulary. Compiling once at
// construction keeps Extract itself allocation-light and deterministic.
type patterns struct {
	spam        *regexp.Regexp
	amount      *regexp.Regexp
	credit      *regexp.Regexp
	upiVendor   *regexp.Regexp
	prepVendor  *regexp.Regexp
	boilerplate *regexp.Regexp
	digitRuns   *regexp.Regexp
	whitespace  *regexp.Regexp
	blacklist   *regexp.Regexp
}

func compilePatterns(vocab models.Vocabulary) *patterns {
	spamAlt := quoteJoin(vocab.SpamKeywords)
	currencyAlt := quoteJoin(vocab.CurrencyMarkers)
	creditAlt := quoteJoin(vocab.CreditKeywords)
	prepAlt := quoteJoin(vocab.VendorPrepositions)

	return &patterns{
		spam: regexp.MustCompile(`(?i)` + spamAlt),
		// A currency marker (optionally dotted, as in "Rs.") followed by a
		// numeric token with thousands separators and up to 2 decimals.
		amount: regexp.MustCompile(`(?i)(?:` + currencyAlt + `)\.?\s*([\d,]+(?:\.\d{0,2})?)`),
		credit: regexp.MustCompile(`(?i)` + creditAlt),
		// Preferred capture: the token run after a payment-network prefix.
		upiVendor: regexp.MustCompile(`(?i)UPI-([A-Za-z0-9\s\-.&]+)`),
		// Fallback capture: preposition, then a token run, terminated by an
		// explicit stop marker or end of string.
		prepVendor: regexp.MustCompile(`(?i)(?:` + prepAlt + `)\s+([A-Za-z0-9\s\-.*/&@]+?)(?:\s+on|\s+ref|\s+txn|\.|\(|$)`),
		boilerplate: regexp.MustCompile(`(?i)` + quoteJoin(vocab.BoilerplateTokens)),
		digitRuns:   regexp.MustCompile(`[0-9]{4,}`),
		whitespace:  regexp.MustCompile(`\s+`),
		// Leftover preposition stubs that must never surface as a vendor.
		blacklist: regexp.MustCompile(`(?i)^(at|to|via|from|unknown)$`),
	}
}

// quoteJoin builds a regex alternation of literal words.
func quoteJoin(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
