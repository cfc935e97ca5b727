// Package root contains the root command for the application
package root

import (
	"strings"

	"paisaparse/internal/categorizer"
	"paisaparse/internal/common"
	"paisaparse/internal/config"
	"paisaparse/internal/importparser"
	"paisaparse/internal/logging"
	"paisaparse/internal/smsparser"
	"paisaparse/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "paisaparse",
		Short: "A CLI tool to turn bank notification messages and CSV exports into categorized transactions.",
		Long: `paisaparse extracts structured, categorized transactions from unstructured
bank notification text and from loosely-structured CSV statement exports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to paisaparse!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			configureLog()
			common.SetLogger(Logger())
			common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific sms command flags
	MessageText string

	// Specific confirm command flags
	TransactionID string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output ledger file")
}

// Logger returns the shared logger wrapped in the engine's logging interface.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// BuildEngine constructs the two pipelines from the loaded configuration,
// applying any rule and vocabulary overrides from the rules file.
func BuildEngine() (*smsparser.Parser, *importparser.Parser, error) {
	rules, err := store.NewRuleStore(Cfg.Rules.File).LoadRules()
	if err != nil {
		return nil, nil, err
	}

	cat := categorizer.New(rules.Categories, Logger())
	sms := smsparser.New(rules.Vocabulary, cat, Logger())
	imp := importparser.New(cat, Logger())
	imp.Delimiter = []rune(Cfg.CSV.Delimiter)[0]

	return sms, imp, nil
}

func configureLog() {
	logLevel, err := logrus.ParseLevel(strings.ToLower(Cfg.Log.Level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Log.SetLevel(logLevel)

	if Cfg.Log.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}
