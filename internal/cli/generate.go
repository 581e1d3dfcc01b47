package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iPascal619/python-project-generator/internal/config"
	"github.com/iPascal619/python-project-generator/internal/errs"
	"github.com/iPascal619/python-project-generator/internal/generator"
	"github.com/iPascal619/python-project-generator/internal/prompt"
)

func newGenerateCmd() *cobra.Command {
	var (
		projectType string
		difficulty  string
		name        string
		maxTokens   int
		temperature float64
		outputDir   string
		gitInit     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one Python project and write it to disk",
		Example: `  projgen generate
  projgen generate --type utility --difficulty beginner
  projgen generate --type web --name my_api --git-init`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-tokens") {
				cfg.MaxTokens = maxTokens
			}
			if cmd.Flags().Changed("temperature") {
				cfg.Temperature = temperature
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = outputDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			gen := buildGenerator(cfg, logger)
			r, err := gen.Run(cmd.Context(), generator.Params{
				ProjectType: projectType,
				Difficulty:  difficulty,
				Name:        name,
				MaxTokens:   cfg.MaxTokens,
				Temperature: float32(cfg.Temperature),
				GitInit:     gitInit,
			})
			if err != nil {
				logger.Error("generation failed",
					"run_id", r.ID, "kind", errs.KindOf(err).String(), "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated %s\n", r.ProjectName)
			fmt.Fprintf(out, "  Directory: %s\n", r.ProjectDir)
			for _, f := range r.Files {
				fmt.Fprintf(out, "  - %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectType, "type", "t", prompt.TypeGeneral,
		"project type ("+strings.Join(prompt.Types(), "|")+")")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", prompt.DifficultyIntermediate,
		"difficulty ("+strings.Join(prompt.Difficulties(), "|")+")")
	cmd.Flags().StringVarP(&name, "name", "n", "", "project name override")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", config.DefaultMaxTokens, "maximum completion tokens")
	cmd.Flags().Float64Var(&temperature, "temperature", config.DefaultTemperature, "sampling temperature")
	cmd.Flags().StringVarP(&outputDir, "output", "o", config.DefaultOutputDir, "output root directory")
	cmd.Flags().BoolVar(&gitInit, "git-init", false, "initialize a git repository with an initial commit")

	return cmd
}
