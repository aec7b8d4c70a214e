// Package ats scores resume text against a job description for
// applicant-tracking-system compatibility. Five category analyzers
// each produce a 0-100 score with issues and suggestions; the overall
// score is their weighted sum. Scoring is deterministic and never
// fails, regardless of input.
package ats

import (
	"fmt"
	"math"
	"strings"

	"resumelens/internal/types"
)

// Weights controls how much each category contributes to the overall
// score. The default weights sum to 1.0.
type Weights struct {
	Formatting  float64
	Keywords    float64
	Sections    float64
	Readability float64
	FileFormat  float64
}

// DefaultWeights returns the standard category weighting
func DefaultWeights() Weights {
	return Weights{
		Formatting:  0.15,
		Keywords:    0.35,
		Sections:    0.25,
		Readability: 0.15,
		FileFormat:  0.10,
	}
}

// Scorer evaluates resumes using a fixed set of weights and
// thresholds. The zero value is not usable; construct with NewScorer.
type Scorer struct {
	weights    Weights
	thresholds Thresholds
}

// NewScorer returns a Scorer with the given weights and thresholds
func NewScorer(weights Weights, thresholds Thresholds) *Scorer {
	return &Scorer{weights: weights, thresholds: thresholds}
}

// Score evaluates resumeText against jobDescription using the default
// weights and thresholds. doc may be nil when no structured document
// is available; the sections category then reports everything missing.
func Score(resumeText, jobDescription string, doc *types.ParsedResume) types.ATSScore {
	return NewScorer(DefaultWeights(), DefaultThresholds()).Score(resumeText, jobDescription, doc)
}

// Score evaluates resumeText against jobDescription, consulting doc
// for the sections category when present.
func (s *Scorer) Score(resumeText, jobDescription string, doc *types.ParsedResume) types.ATSScore {
	breakdown := types.ScoreBreakdown{
		Formatting:  s.analyzeFormatting(resumeText),
		Keywords:    s.analyzeKeywords(resumeText, jobDescription),
		Sections:    s.analyzeSections(doc),
		Readability: s.analyzeReadability(resumeText),
		FileFormat:  s.analyzeFileFormat(),
	}

	overall := int(math.Round(
		float64(breakdown.Formatting.Score)*s.weights.Formatting +
			float64(breakdown.Keywords.Score)*s.weights.Keywords +
			float64(breakdown.Sections.Score)*s.weights.Sections +
			float64(breakdown.Readability.Score)*s.weights.Readability +
			float64(breakdown.FileFormat.Score)*s.weights.FileFormat))

	return types.ATSScore{
		OverallScore: overall,
		Breakdown:    breakdown,
		Grade:        gradeFor(overall),
		Summary:      summarize(overall, breakdown),
	}
}

// gradeFor maps an overall score to its ordinal grade label
func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 40:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

// summarize builds the human-readable report: a grade-tier opening
// sentence, then the categories that scored well and the ones that
// need work.
func summarize(score int, breakdown types.ScoreBreakdown) string {
	categories := []struct {
		name  string
		score int
	}{
		{"formatting", breakdown.Formatting.Score},
		{"keywords", breakdown.Keywords.Score},
		{"sections", breakdown.Sections.Score},
		{"readability", breakdown.Readability.Score},
		{"fileFormat", breakdown.FileFormat.Score},
	}

	var strengths, weaknesses []string
	for _, c := range categories {
		if c.score >= 80 {
			strengths = append(strengths, c.name)
		} else if c.score < 60 {
			weaknesses = append(weaknesses, c.name)
		}
	}

	var sb strings.Builder
	switch {
	case score >= 90:
		sb.WriteString("Your resume is highly optimized for ATS systems! ")
	case score >= 75:
		sb.WriteString("Your resume has good ATS compatibility with some room for improvement. ")
	case score >= 60:
		sb.WriteString("Your resume has fair ATS compatibility but needs optimization. ")
	default:
		sb.WriteString("Your resume needs significant improvements for better ATS compatibility. ")
	}

	if len(strengths) > 0 {
		fmt.Fprintf(&sb, "Strong areas: %s. ", strings.Join(strengths, ", "))
	}
	if len(weaknesses) > 0 {
		fmt.Fprintf(&sb, "Focus on improving: %s.", strings.Join(weaknesses, ", "))
	}
	return strings.TrimSpace(sb.String())
}
