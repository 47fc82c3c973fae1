package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rezonia/vatin-checker/internal/config"
	"github.com/rezonia/vatin-checker/internal/logger"
	"github.com/rezonia/vatin-checker/internal/validation"
)

var (
	version = "1.0.0"

	// Global flags
	verbose         bool
	outputFormat    string
	logLevel        string
	logFormat       string
	displayLanguage string
	envFiles        []string

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vatin-checker",
	Short: "Check VAT identification numbers (VATINs)",
	Long: `VATIN Checker validates European VAT identification numbers offline.

Every identifier is checked against the syntax and check digit rules of its
country prefix. Identifiers of countries without a published rule are accepted.

Examples:
  # Check identifiers given as arguments
  vatin-checker check ATU13585627 DE136695976

  # Check a file with one identifier per line
  vatin-checker check --file customers.txt -f table

  # Show the expected structure of a country
  vatin-checker structure IE

  # Start the HTTP API
  vatin-checker serve --address :8080`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, csv, table)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env: VATIN_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json (env: VATIN_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&displayLanguage, "lang", "", "Language of country names (env: VATIN_DISPLAY_LANGUAGE)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load environment from these files instead of .env")
}

// initConfig reads the environment, then lets flags override it
func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if logFormat != "" {
		loaded.LogFormat = logFormat
	}
	if displayLanguage != "" {
		loaded.DisplayLanguage = displayLanguage
	}
	if verbose {
		loaded.Debug = true
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	switch outputFormat {
	case "json", "table", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	format, err := logger.ParseFormat(loaded.LogFormat)
	if err != nil {
		return err
	}
	cfg = loaded
	log = logger.New(
		logger.WithLevel(cfg.Level()),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
	log.Debug("config loaded", slog.String("language", cfg.DisplayLanguage), slog.String("log_level", cfg.LogLevel))
	return nil
}

func newValidator() *validation.Validator {
	tag := language.English
	if cfg != nil {
		tag = cfg.Language()
	}
	return validation.New(validation.WithDisplayLanguage(tag))
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
