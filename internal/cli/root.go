// Package cli assembles the projgen command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iPascal619/python-project-generator/internal/config"
	"github.com/iPascal619/python-project-generator/internal/generator"
	"github.com/iPascal619/python-project-generator/internal/llm"
	"github.com/iPascal619/python-project-generator/internal/logging"
	"github.com/iPascal619/python-project-generator/internal/project"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "projgen",
	Short: "Generate runnable Python starter projects with a language model",
	Long: `projgen asks an OpenAI-compatible completion endpoint (Groq by default)
for a small, complete Python project and writes the result as main.py,
requirements.txt, README.md and .gitignore into a dated directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on any fatal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text|json)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newServeCmd())
}

// setup loads configuration and builds the process logger shared by the
// subcommands. Flag values win over environment configuration.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	return cfg, logger, nil
}

// buildGenerator wires the concrete pipeline from configuration.
func buildGenerator(cfg *config.Config, logger *slog.Logger) *generator.Generator {
	client := llm.NewGroqClient(cfg.GroqAPIKey, cfg.BaseURL, cfg.Model,
		cfg.RequestTimeout(), logger)
	attribution := fmt.Sprintf("projgen (%s)", cfg.Model)
	mat := project.NewMaterializer(cfg.OutputDir, attribution, logger)
	return generator.NewGenerator(client, mat, logger)
}
