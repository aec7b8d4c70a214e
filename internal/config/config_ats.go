package config

import (
	"fmt"
	"math"

	"resumelens/internal/ats"
)

// ATSConfig holds ATS scoring configuration
type ATSConfig struct {
	Weights    ATSWeightsConfig    `mapstructure:"weights"`
	Thresholds ATSThresholdsConfig `mapstructure:"thresholds"`
}

// ATSWeightsConfig holds the per-category score weights.
// The five weights must sum to 1.0.
type ATSWeightsConfig struct {
	Formatting  float64 `mapstructure:"formatting"`
	Keywords    float64 `mapstructure:"keywords"`
	Sections    float64 `mapstructure:"sections"`
	Readability float64 `mapstructure:"readability"`
	FileFormat  float64 `mapstructure:"fileFormat"`
}

// ATSThresholdsConfig holds the tunable scoring heuristics
type ATSThresholdsConfig struct {
	AllCapsLineMin    int     `mapstructure:"allCapsLineMin"`
	AllCapsLineLimit  int     `mapstructure:"allCapsLineLimit"`
	MinWordCount      int     `mapstructure:"minWordCount"`
	MaxWordCount      int     `mapstructure:"maxWordCount"`
	MinActionVerbs    int     `mapstructure:"minActionVerbs"`
	LongLineLength    int     `mapstructure:"longLineLength"`
	LongLineRatio     float64 `mapstructure:"longLineRatio"`
	KeywordMinLength  int     `mapstructure:"keywordMinLength"`
	KeywordMinCount   int     `mapstructure:"keywordMinCount"`
	KeywordLimit      int     `mapstructure:"keywordLimit"`
	LowMatchRate      float64 `mapstructure:"lowMatchRate"`
	StrongMatchRate   float64 `mapstructure:"strongMatchRate"`
	MissingKeywordCap int     `mapstructure:"missingKeywordCap"`
}

// ScoringWeights converts the configuration into the weight set the scorer consumes
func (c *ATSConfig) ScoringWeights() ats.Weights {
	return ats.Weights{
		Formatting:  c.Weights.Formatting,
		Keywords:    c.Weights.Keywords,
		Sections:    c.Weights.Sections,
		Readability: c.Weights.Readability,
		FileFormat:  c.Weights.FileFormat,
	}
}

// ScoringThresholds converts the configuration into the threshold set the scorer consumes
func (c *ATSConfig) ScoringThresholds() ats.Thresholds {
	return ats.Thresholds{
		AllCapsLineMin:    c.Thresholds.AllCapsLineMin,
		AllCapsLineLimit:  c.Thresholds.AllCapsLineLimit,
		MinWordCount:      c.Thresholds.MinWordCount,
		MaxWordCount:      c.Thresholds.MaxWordCount,
		MinActionVerbs:    c.Thresholds.MinActionVerbs,
		LongLineLength:    c.Thresholds.LongLineLength,
		LongLineRatio:     c.Thresholds.LongLineRatio,
		KeywordMinLength:  c.Thresholds.KeywordMinLength,
		KeywordMinCount:   c.Thresholds.KeywordMinCount,
		KeywordLimit:      c.Thresholds.KeywordLimit,
		LowMatchRate:      c.Thresholds.LowMatchRate,
		StrongMatchRate:   c.Thresholds.StrongMatchRate,
		MissingKeywordCap: c.Thresholds.MissingKeywordCap,
	}
}

// ValidateATSConfig checks that scoring weights and thresholds are sane
func (c *Config) ValidateATSConfig() error {
	w := c.ATS.Weights
	for name, weight := range map[string]float64{
		"formatting":  w.Formatting,
		"keywords":    w.Keywords,
		"sections":    w.Sections,
		"readability": w.Readability,
		"fileFormat":  w.FileFormat,
	} {
		if weight < 0 || weight > 1 {
			return fmt.Errorf("weight %s must be between 0 and 1, got %v", name, weight)
		}
	}

	sum := w.Formatting + w.Keywords + w.Sections + w.Readability + w.FileFormat
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("category weights must sum to 1.0, got %v", sum)
	}

	t := c.ATS.Thresholds
	if t.KeywordMinLength < 1 {
		return fmt.Errorf("keywordMinLength must be at least 1, got %d", t.KeywordMinLength)
	}
	if t.KeywordLimit < 1 {
		return fmt.Errorf("keywordLimit must be at least 1, got %d", t.KeywordLimit)
	}
	if t.MinWordCount < 0 || t.MaxWordCount < t.MinWordCount {
		return fmt.Errorf("word count bounds are invalid: min %d, max %d", t.MinWordCount, t.MaxWordCount)
	}
	if t.LongLineRatio < 0 || t.LongLineRatio > 1 {
		return fmt.Errorf("longLineRatio must be between 0 and 1, got %v", t.LongLineRatio)
	}
	if t.LowMatchRate < 0 || t.StrongMatchRate > 100 || t.LowMatchRate > t.StrongMatchRate {
		return fmt.Errorf("match rate bounds are invalid: low %v, strong %v", t.LowMatchRate, t.StrongMatchRate)
	}

	return nil
}
