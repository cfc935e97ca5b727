// Package store provides loading and saving of rule and vocabulary data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"paisaparse/internal/models"

	"gopkg.in/yaml.v3"
)

// RuleStore manages loading and saving of category rules and the SMS
// vocabulary from a YAML override file.
type RuleStore struct {
	RulesFile string
}

// NewRuleStore creates a new store for rule-related data.
func NewRuleStore(rulesFile string) *RuleStore {
	return &RuleStore{RulesFile: rulesFile}
}

// FindRulesFile looks for the rules file in standard locations.
func (s *RuleStore) FindRulesFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "paisaparse", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the rule override file. A missing or unconfigured file is
// not an error: it returns an empty RuleFile so built-in defaults apply.
func (s *RuleStore) LoadRules() (*models.RuleFile, error) {
	if s.RulesFile == "" {
		return &models.RuleFile{}, nil
	}

	filePath, err := s.FindRulesFile(s.RulesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.RuleFile{}, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rules models.RuleFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	return &rules, nil
}

// SaveRules writes the rule file back to disk, creating parent directories
// as needed.
func (s *RuleStore) SaveRules(rules *models.RuleFile) error {
	if s.RulesFile == "" {
		return fmt.Errorf("no rules file configured")
	}

	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("error serializing rules: %w", err)
	}

	dir := filepath.Dir(s.RulesFile)
	if dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating rules directory: %w", err)
		}
	}

	if err := os.WriteFile(s.RulesFile, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	return nil
}
