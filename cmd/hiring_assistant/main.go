// Package main provides the entry point for the Hiring Assistant server and CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-assistant/internal/config"
	"github.com/jonathan/hiring-assistant/internal/logging"
)

var (
	configPath string
	apiKeyFlag string
	apiKeyFile string
	modelFlag  string
	logLevel   string
	logFormat  string
	settings   config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hiring_assistant",
	Short: "Intelligent Hiring Assistant",
	Long:  "Hiring Assistant collects a candidate profile, asks Gemini for tailored interview questions, and evaluates the candidate's answers.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		settings, err = loadSettings()
		if err != nil {
			return err
		}
		logger, err = logging.New(settings.LogLevel, settings.LogFormat, os.Stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	flags.StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides --api-key-file and GEMINI_API_KEY)")
	flags.StringVar(&apiKeyFile, "api-key-file", "", "File containing the Gemini API key")
	flags.StringVar(&modelFlag, "model", "", "Gemini model name (default "+config.DefaultModel+")")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
