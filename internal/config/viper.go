// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		// File points at an optional YAML file overriding the built-in
		// category rules and SMS vocabulary.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Ledger struct {
		OpeningBalance string `mapstructure:"opening_balance" yaml:"opening_balance"`
	} `mapstructure:"ledger" yaml:"ledger"`
}

// OpeningBalance returns the configured opening balance as a decimal.
// An unparsable value falls back to zero.
func (c *Config) OpeningBalance() decimal.Decimal {
	dec, err := decimal.NewFromString(c.Ledger.OpeningBalance)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then PAISA_-prefixed environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.paisaparse")
	v.AddConfigPath(".paisaparse")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PAISA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("rules.file", "")

	v.SetDefault("ledger.opening_balance", "0")
}

// validateConfig checks configuration values for consistency.
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("unknown log format: %s", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	if config.Ledger.OpeningBalance != "" {
		if _, err := decimal.NewFromString(config.Ledger.OpeningBalance); err != nil {
			return fmt.Errorf("invalid opening balance %q: %w", config.Ledger.OpeningBalance, err)
		}
	}

	return nil
}
