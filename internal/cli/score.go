package cli

import (
	"fmt"

	"resumelens/internal/ats"
	"resumelens/internal/common"
	"resumelens/internal/parser"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-description-file]",
	Short: "Score a resume against a job description",
	Long: `Score a resume for ATS compatibility against a specific job description.
The command takes two arguments: the path to your resume file and the path
to the job description file. The resume may be plain text, Markdown, PDF,
or DOCX. Scoring runs entirely locally and needs no network access.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	scorer := ats.NewScorer(cfg.ATS.ScoringWeights(), cfg.ATS.ScoringThresholds())

	createInput := func(contents []string) (types.ScoreResumeInput, error) {
		if len(contents) != 2 {
			return types.ScoreResumeInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.ScoreResumeInput{
			ResumeText:     contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input types.ScoreResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(input types.ScoreResumeInput) (types.ScoreResumeOutput, error) {
		doc := parser.Parse(input.ResumeText)
		score := scorer.Score(input.ResumeText, input.JobDescription, &doc)
		return types.ScoreResumeOutput{Document: &doc, Score: score}, nil
	}

	err := common.RunCommand(
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
