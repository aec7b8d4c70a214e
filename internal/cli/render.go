package cli

import (
	"fmt"
	"os"

	"resumelens/internal/common"
	"resumelens/internal/parser"
	"resumelens/internal/render"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [resume-file]",
	Short: "Render a resume as HTML, PDF, or DOCX",
	Long: `Render a resume as a formatted document. The resume file is parsed
into a structured document and rendered in the requested format and style.
PDF output requires a Chromium-based browser on the machine (the path can
be set in the render configuration).`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if renderStyle == "" {
			renderStyle = cfg.Render.DefaultStyle
		}
		if err := common.ValidateRenderStyle(renderStyle); err != nil {
			return err
		}
		if _, err := render.ForFormat(renderFormat, cfg.Render, nil); err != nil {
			return err
		}
		return nil
	},
	RunE: runRender,
}

var (
	renderFormat string
	renderStyle  string
	renderOutput string
)

func init() {
	renderCmd.Flags().StringVar(&renderFormat, "format", "html", "Render format: html, pdf, or docx")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "Render style: professional or modern (default from config)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (default: resume.<format>)")

	_ = renderCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.SupportedFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = renderCmd.RegisterFlagCompletionFunc("style", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"professional", "modern"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}

	outputFile := renderOutput
	if outputFile == "" {
		outputFile = "resume." + renderFormat
	}

	logger.Info("Starting resume rendering",
		"resume_chars", len(contents[0]),
		"render_format", renderFormat,
		"render_style", renderStyle,
		"output_file", outputFile)

	renderer, err := render.ForFormat(renderFormat, cfg.Render, logger)
	if err != nil {
		return err
	}

	doc := parser.Parse(contents[0])
	output, err := renderer.Render(&doc, types.RenderStyle(renderStyle))
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if err := os.WriteFile(outputFile, output, 0600); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
	}

	logger.Info("Resume rendering completed successfully",
		"output_file", outputFile,
		"output_bytes", len(output))
	return nil
}
