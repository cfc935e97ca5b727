package models

// CategoryRule configures one keyword group of the categorizer. Groups are
// evaluated in slice order, first match wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Vocabulary holds the regional banking-SMS vocabulary the text pipeline
// matches against. Keeping it as data rather than inline logic lets the
// extraction algorithm stay generic while the word lists are swapped out.
type Vocabulary struct {
	// SpamKeywords reject a message outright (one-time passwords, login codes).
	SpamKeywords []string `yaml:"spam_keywords"`
	// CurrencyMarkers prefix a numeric token for it to count as an amount.
	CurrencyMarkers []string `yaml:"currency_markers"`
	// CreditKeywords flag a message as incoming money.
	CreditKeywords []string `yaml:"credit_keywords"`
	// BoilerplateTokens are banking jargon fragments scrubbed from vendors.
	BoilerplateTokens []string `yaml:"boilerplate_tokens"`
	// VendorPrepositions introduce the fallback vendor capture.
	VendorPrepositions []string `yaml:"vendor_prepositions"`
}

// RuleFile is the on-disk shape of a rules override file. Either section may
// be omitted, in which case the built-in defaults stay in effect.
type RuleFile struct {
	Categories []CategoryRule `yaml:"categories"`
	Vocabulary *Vocabulary    `yaml:"vocabulary"`
}
