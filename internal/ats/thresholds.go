package ats

// Thresholds collects the heuristic cutoffs used by the category
// analyzers. The defaults reproduce long-observed ATS behavior; they
// are grouped here so deployments can tune them without touching the
// analyzers.
type Thresholds struct {
	// Formatting
	AllCapsLineMin   int // line length above which an all-caps line counts
	AllCapsLineLimit int // all-caps lines tolerated before the deduction

	// Readability
	MinWordCount   int     // below this the resume is too brief
	MaxWordCount   int     // above this the resume is too lengthy
	MinActionVerbs int     // distinct action verbs expected
	LongLineLength int     // characters before a line counts as long
	LongLineRatio  float64 // share of long lines tolerated

	// Keywords
	KeywordMinLength  int     // shortest job-description token kept
	KeywordMinCount   int     // occurrences before a plain word is a keyword
	KeywordLimit      int     // job-description keywords considered
	LowMatchRate      float64 // below this, suggest adding more skills
	StrongMatchRate   float64 // at or above this, affirm the match
	MissingKeywordCap int     // missing keywords named in the suggestion
}

// DefaultThresholds returns the standard heuristic cutoffs
func DefaultThresholds() Thresholds {
	return Thresholds{
		AllCapsLineMin:   10,
		AllCapsLineLimit: 5,

		MinWordCount:   200,
		MaxWordCount:   1000,
		MinActionVerbs: 3,
		LongLineLength: 150,
		LongLineRatio:  0.3,

		KeywordMinLength:  3,
		KeywordMinCount:   2,
		KeywordLimit:      20,
		LowMatchRate:      50,
		StrongMatchRate:   80,
		MissingKeywordCap: 3,
	}
}
