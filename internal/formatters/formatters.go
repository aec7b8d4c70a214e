package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ParsedResume", &ParsedResumeTextFormatter{})
	registry.RegisterFormatter("markdown", "ParsedResume", &ParsedResumeMarkdownFormatter{})
	registry.RegisterFormatter("text", "ScoreResumeOutput", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreResumeOutput", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "TailorResumeOutput", &TailorTextFormatter{})
	registry.RegisterFormatter("markdown", "TailorResumeOutput", &TailorMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ParsedResume:
		return "ParsedResume"
	case types.ScoreResumeOutput:
		return "ScoreResumeOutput"
	case types.TailorResumeOutput:
		return "TailorResumeOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ParsedResumeTextFormatter handles text formatting for parsed documents
type ParsedResumeTextFormatter struct{}

func (ptf *ParsedResumeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ParsedResume)
	if !ok {
		return "", fmt.Errorf("expected ParsedResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CONTACT ===\n")
	writeContactText(&output, result.Contact)
	output.WriteString("\n")

	for _, section := range result.Sections {
		output.WriteString(fmt.Sprintf("=== %s ===\n", strings.ToUpper(section.Title)))

		switch section.Type {
		case types.SectionExperience:
			for _, job := range section.Jobs {
				output.WriteString(fmt.Sprintf("%s at %s", job.Title, job.Company))
				if job.DateRange != "" {
					output.WriteString(fmt.Sprintf(" (%s)", job.DateRange))
				}
				output.WriteString("\n")
				for _, bullet := range job.Bullets {
					output.WriteString(fmt.Sprintf("  - %s\n", bullet))
				}
			}
		case types.SectionEducation:
			for _, entry := range section.Education {
				output.WriteString(entry.School)
				if entry.DateRange != "" {
					output.WriteString(fmt.Sprintf(" (%s)", entry.DateRange))
				}
				output.WriteString("\n")
				if entry.Degree != "" {
					output.WriteString(fmt.Sprintf("  %s\n", entry.Degree))
				}
				for _, detail := range entry.Details {
					output.WriteString(fmt.Sprintf("  %s\n", detail))
				}
			}
		default:
			for _, line := range section.Content {
				output.WriteString(line)
				output.WriteString("\n")
			}
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (ptf *ParsedResumeTextFormatter) SupportedType() string {
	return "ParsedResume"
}

func writeContactText(output *strings.Builder, contact types.ContactInfo) {
	fields := []struct {
		label string
		value string
	}{
		{"Name", contact.Name},
		{"Email", contact.Email},
		{"Phone", contact.Phone},
		{"Location", contact.Location},
		{"LinkedIn", contact.LinkedIn},
		{"GitHub", contact.GitHub},
		{"Website", contact.Website},
	}

	for _, field := range fields {
		if field.value != "" {
			output.WriteString(fmt.Sprintf("%s: %s\n", field.label, field.value))
		}
	}
}

// ParsedResumeMarkdownFormatter handles markdown formatting for parsed documents
type ParsedResumeMarkdownFormatter struct{}

func (pmf *ParsedResumeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ParsedResume)
	if !ok {
		return "", fmt.Errorf("expected ParsedResume, got %T", data)
	}

	var output strings.Builder

	if result.Contact.Name != "" {
		output.WriteString(fmt.Sprintf("# %s\n\n", result.Contact.Name))
	} else {
		output.WriteString("# Resume\n\n")
	}

	contactParts := []string{}
	for _, value := range []string{
		result.Contact.Email, result.Contact.Phone, result.Contact.Location,
		result.Contact.LinkedIn, result.Contact.GitHub, result.Contact.Website,
	} {
		if value != "" {
			contactParts = append(contactParts, value)
		}
	}
	if len(contactParts) > 0 {
		output.WriteString(strings.Join(contactParts, " | "))
		output.WriteString("\n\n")
	}

	for _, section := range result.Sections {
		output.WriteString(fmt.Sprintf("## %s\n\n", section.Title))

		switch section.Type {
		case types.SectionExperience:
			for _, job := range section.Jobs {
				output.WriteString(fmt.Sprintf("### %s, %s", job.Title, job.Company))
				if job.DateRange != "" {
					output.WriteString(fmt.Sprintf(" (%s)", job.DateRange))
				}
				output.WriteString("\n\n")
				for _, bullet := range job.Bullets {
					output.WriteString(fmt.Sprintf("- %s\n", bullet))
				}
				if len(job.Bullets) > 0 {
					output.WriteString("\n")
				}
			}
		case types.SectionEducation:
			for _, entry := range section.Education {
				output.WriteString(fmt.Sprintf("### %s", entry.School))
				if entry.DateRange != "" {
					output.WriteString(fmt.Sprintf(" (%s)", entry.DateRange))
				}
				output.WriteString("\n\n")
				if entry.Degree != "" {
					output.WriteString(fmt.Sprintf("%s\n\n", entry.Degree))
				}
				for _, detail := range entry.Details {
					output.WriteString(fmt.Sprintf("- %s\n", detail))
				}
				if len(entry.Details) > 0 {
					output.WriteString("\n")
				}
			}
		default:
			for _, line := range section.Content {
				output.WriteString(line)
				output.WriteString("\n")
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (pmf *ParsedResumeMarkdownFormatter) SupportedType() string {
	return "ParsedResume"
}

// ScoreTextFormatter handles text formatting for scoring results
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected ScoreResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100 (%s)\n\n", result.Score.OverallScore, result.Score.Grade))
	output.WriteString(result.Score.Summary)
	output.WriteString("\n\n")

	output.WriteString("=== CATEGORY BREAKDOWN ===\n\n")
	writeCategoryText(&output, "Formatting", result.Score.Breakdown.Formatting)

	keywords := result.Score.Breakdown.Keywords
	output.WriteString(fmt.Sprintf("Keywords: %d/100 (%d of %d matched)\n", keywords.Score, keywords.Matched, keywords.Total))
	writeIssuesAndSuggestionsText(&output, keywords.CategoryScore)

	sections := result.Score.Breakdown.Sections
	output.WriteString(fmt.Sprintf("Sections: %d/100\n", sections.Score))
	if len(sections.Present) > 0 {
		output.WriteString(fmt.Sprintf("  Present: %s\n", strings.Join(sections.Present, ", ")))
	}
	if len(sections.Missing) > 0 {
		output.WriteString(fmt.Sprintf("  Missing: %s\n", strings.Join(sections.Missing, ", ")))
	}
	writeIssuesAndSuggestionsText(&output, sections.CategoryScore)

	writeCategoryText(&output, "Readability", result.Score.Breakdown.Readability)
	writeCategoryText(&output, "File Format", result.Score.Breakdown.FileFormat)

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreResumeOutput"
}

func writeCategoryText(output *strings.Builder, name string, category types.CategoryScore) {
	output.WriteString(fmt.Sprintf("%s: %d/100\n", name, category.Score))
	writeIssuesAndSuggestionsText(output, category)
}

func writeIssuesAndSuggestionsText(output *strings.Builder, category types.CategoryScore) {
	for _, issue := range category.Issues {
		output.WriteString(fmt.Sprintf("  ! %s\n", issue))
	}
	for _, suggestion := range category.Suggestions {
		output.WriteString(fmt.Sprintf("  > %s\n", suggestion))
	}
	output.WriteString("\n")
}

// ScoreMarkdownFormatter handles markdown formatting for scoring results
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected ScoreResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Score\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100 (%s)\n\n", result.Score.OverallScore, result.Score.Grade))
	output.WriteString(result.Score.Summary)
	output.WriteString("\n\n")

	output.WriteString("## Category Breakdown\n\n")
	writeCategoryMarkdown(&output, "Formatting", result.Score.Breakdown.Formatting)

	keywords := result.Score.Breakdown.Keywords
	output.WriteString(fmt.Sprintf("### Keywords: %d/100\n\n", keywords.Score))
	output.WriteString(fmt.Sprintf("%d of %d job description keywords matched.\n\n", keywords.Matched, keywords.Total))
	writeIssuesAndSuggestionsMarkdown(&output, keywords.CategoryScore)

	sections := result.Score.Breakdown.Sections
	output.WriteString(fmt.Sprintf("### Sections: %d/100\n\n", sections.Score))
	if len(sections.Present) > 0 {
		output.WriteString(fmt.Sprintf("**Present:** %s\n\n", strings.Join(sections.Present, ", ")))
	}
	if len(sections.Missing) > 0 {
		output.WriteString(fmt.Sprintf("**Missing:** %s\n\n", strings.Join(sections.Missing, ", ")))
	}
	writeIssuesAndSuggestionsMarkdown(&output, sections.CategoryScore)

	writeCategoryMarkdown(&output, "Readability", result.Score.Breakdown.Readability)
	writeCategoryMarkdown(&output, "File Format", result.Score.Breakdown.FileFormat)

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreResumeOutput"
}

func writeCategoryMarkdown(output *strings.Builder, name string, category types.CategoryScore) {
	output.WriteString(fmt.Sprintf("### %s: %d/100\n\n", name, category.Score))
	writeIssuesAndSuggestionsMarkdown(output, category)
}

func writeIssuesAndSuggestionsMarkdown(output *strings.Builder, category types.CategoryScore) {
	if len(category.Issues) > 0 {
		output.WriteString("**Issues:**\n")
		for _, issue := range category.Issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		output.WriteString("\n")
	}
	if len(category.Suggestions) > 0 {
		output.WriteString("**Suggestions:**\n")
		for _, suggestion := range category.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
		output.WriteString("\n")
	}
}

// TailorTextFormatter handles text formatting for tailor results
type TailorTextFormatter struct{}

func (ttf *TailorTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TailorResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected TailorResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== TAILORED RESUME ===\n\n")
	output.WriteString(result.TailoredResume)
	output.WriteString("\n\n")

	if len(result.KeyChanges) > 0 {
		output.WriteString("=== KEY CHANGES ===\n")
		for i, change := range result.KeyChanges {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, change))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== ATS SCORE ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n\n", result.Score.OverallScore, result.Score.Grade))
	output.WriteString(result.Score.Summary)
	output.WriteString("\n")

	return output.String(), nil
}

func (ttf *TailorTextFormatter) SupportedType() string {
	return "TailorResumeOutput"
}

// TailorMarkdownFormatter handles markdown formatting for tailor results
type TailorMarkdownFormatter struct{}

func (tmf *TailorMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TailorResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected TailorResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Tailored Resume\n\n")
	output.WriteString(result.TailoredResume)
	output.WriteString("\n\n")

	if len(result.KeyChanges) > 0 {
		output.WriteString("## Key Changes\n\n")
		for i, change := range result.KeyChanges {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, change))
		}
		output.WriteString("\n")
	}

	output.WriteString("## ATS Score\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", result.Score.OverallScore, result.Score.Grade))
	output.WriteString(result.Score.Summary)
	output.WriteString("\n")

	return output.String(), nil
}

func (tmf *TailorMarkdownFormatter) SupportedType() string {
	return "TailorResumeOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
