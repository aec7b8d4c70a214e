package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var (
	decorativeGlyphRegex = regexp.MustCompile(`[★☆●○■□▪▫◆◇]`)
	tableLayoutRegex     = regexp.MustCompile(`\t{2,}|\s{5,}`)
	bulletLineRegex      = regexp.MustCompile(`(?m)^[\-•*]\s`)
	quantifiableRegex    = regexp.MustCompile(`(?i)\d+%|\d+\+|\$\d+|increased by|decreased by|reduced by`)
)

var actionVerbs = []string{
	"led", "managed", "developed", "created", "implemented", "designed",
	"increased", "decreased", "improved", "achieved", "delivered",
	"established", "launched", "optimized", "streamlined", "coordinated",
}

// analyzeFormatting starts from a perfect score and deducts for layout
// artifacts that confuse automated parsers: decorative glyphs, heavy
// ALL CAPS use, table-like spacing and page-number lines. Standard
// bullet markers earn a small bonus.
func (s *Scorer) analyzeFormatting(resumeText string) types.CategoryScore {
	result := types.CategoryScore{Score: 100, Issues: []string{}, Suggestions: []string{}}

	if decorativeGlyphRegex.MatchString(resumeText) {
		result.Issues = append(result.Issues, "Contains special characters that ATS may not recognize")
		result.Suggestions = append(result.Suggestions, "Replace bullet points with standard hyphens or asterisks")
		result.Score -= 10
	}

	allCaps := 0
	for _, line := range strings.Split(resumeText, "\n") {
		if len(line) > s.thresholds.AllCapsLineMin && line == strings.ToUpper(line) {
			allCaps++
		}
	}
	if allCaps > s.thresholds.AllCapsLineLimit {
		result.Issues = append(result.Issues, "Excessive use of ALL CAPS")
		result.Suggestions = append(result.Suggestions, "Use title case for section headers instead of ALL CAPS")
		result.Score -= 5
	}

	if tableLayoutRegex.MatchString(resumeText) {
		result.Issues = append(result.Issues, "May contain tables or complex formatting")
		result.Suggestions = append(result.Suggestions, "Avoid tables and columns; use simple linear layout")
		result.Score -= 15
	}

	lines := nonBlankLines(resumeText)
	if len(lines) > 0 {
		first := strings.ToLower(lines[0])
		last := strings.ToLower(lines[len(lines)-1])
		if strings.Contains(first, "page") || strings.Contains(last, "page") {
			result.Issues = append(result.Issues, "May contain page numbers that confuse ATS")
			result.Suggestions = append(result.Suggestions, "Remove headers and footers with page numbers")
			result.Score -= 5
		}
	}

	if bulletLineRegex.MatchString(resumeText) {
		result.Score = min(100, result.Score+5)
	}

	result.Score = max(0, result.Score)
	return result
}

// analyzeKeywords extracts the significant terms from the job
// description and scores the share of them found in the resume.
func (s *Scorer) analyzeKeywords(resumeText, jobDescription string) types.KeywordScore {
	result := types.KeywordScore{
		CategoryScore: types.CategoryScore{Issues: []string{}, Suggestions: []string{}},
	}

	kws := s.jobKeywords(jobDescription)
	resumeLower := strings.ToLower(resumeText)

	var missing []string
	for _, kw := range kws {
		if strings.Contains(resumeLower, kw) {
			result.Matched++
		} else {
			missing = append(missing, kw)
		}
	}
	result.Total = len(kws)

	matchRate := 0.0
	if result.Total > 0 {
		matchRate = float64(result.Matched) / float64(result.Total) * 100
	}
	result.Score = min(100, int(math.Round(matchRate)))

	if len(missing) > 0 {
		top := missing
		if len(top) > s.thresholds.MissingKeywordCap {
			top = top[:s.thresholds.MissingKeywordCap]
		}
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Add these key terms from the job posting: %s", strings.Join(top, ", ")))
	}
	if matchRate < s.thresholds.LowMatchRate {
		result.Suggestions = append(result.Suggestions,
			"Include more skills and qualifications mentioned in the job description")
	}
	if matchRate >= s.thresholds.StrongMatchRate {
		result.Suggestions = append(result.Suggestions,
			"Excellent keyword match! Your resume aligns well with the job requirements")
	}
	return result
}

// analyzeSections checks the structured document for the four required
// section categories, each worth an equal share, with a bonus for a
// professional summary.
func (s *Scorer) analyzeSections(doc *types.ParsedResume) types.SectionScore {
	result := types.SectionScore{
		CategoryScore: types.CategoryScore{Issues: []string{}, Suggestions: []string{}},
		Present:       []string{},
		Missing:       []string{},
	}

	required := []struct {
		name    string
		present bool
	}{
		{"Contact Information", doc != nil && doc.Contact != (types.ContactInfo{})},
		{"Work Experience", countJobs(doc) > 0},
		{"Education", countEducation(doc) > 0},
		{"Skills", hasSkillContent(doc)},
	}

	score := 0.0
	weight := 100.0 / float64(len(required))
	for _, req := range required {
		if req.present {
			result.Present = append(result.Present, req.name)
			score += weight
		} else {
			result.Missing = append(result.Missing, req.name)
			result.Suggestions = append(result.Suggestions, fmt.Sprintf("Add a clear %s section", req.name))
		}
	}

	if len(result.Missing) == 0 {
		result.Suggestions = append(result.Suggestions, "All essential sections are present")
	}

	if hasProfileSection(doc) {
		result.Present = append(result.Present, "Professional Summary")
		score = math.Min(100, score+10)
	} else {
		result.Suggestions = append(result.Suggestions, "Consider adding a professional summary at the top")
	}

	result.Score = int(math.Round(math.Max(0, math.Min(100, score))))
	return result
}

// analyzeReadability judges content quality: overall length, action
// verb use, quantified achievements and line length.
func (s *Scorer) analyzeReadability(resumeText string) types.CategoryScore {
	result := types.CategoryScore{Score: 100, Issues: []string{}, Suggestions: []string{}}

	lines := nonBlankLines(resumeText)
	words := strings.Fields(resumeText)

	if len(words) < s.thresholds.MinWordCount {
		result.Issues = append(result.Issues, "Resume is too brief")
		result.Suggestions = append(result.Suggestions,
			"Expand your resume with more details about your experience and achievements")
		result.Score -= 20
	} else if len(words) > s.thresholds.MaxWordCount {
		result.Issues = append(result.Issues, "Resume is too lengthy")
		result.Suggestions = append(result.Suggestions,
			"Condense to 1-2 pages (300-800 words) for better ATS processing")
		result.Score -= 10
	}

	resumeLower := strings.ToLower(resumeText)
	verbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(resumeLower, verb) {
			verbCount++
		}
	}
	if verbCount < s.thresholds.MinActionVerbs {
		result.Issues = append(result.Issues, "Limited use of action verbs")
		result.Suggestions = append(result.Suggestions,
			"Start bullet points with strong action verbs (led, developed, achieved, etc.)")
		result.Score -= 10
	}

	if !quantifiableRegex.MatchString(resumeText) {
		result.Issues = append(result.Issues, "Lacks quantifiable achievements")
		result.Suggestions = append(result.Suggestions,
			`Include numbers and metrics to demonstrate impact (e.g., "increased sales by 25%")`)
		result.Score -= 15
	}

	longLines := 0
	for _, line := range lines {
		if len(line) > s.thresholds.LongLineLength {
			longLines++
		}
	}
	if float64(longLines) > float64(len(lines))*s.thresholds.LongLineRatio {
		result.Issues = append(result.Issues, "Some lines are too long")
		result.Suggestions = append(result.Suggestions,
			"Break long lines into bullet points for better readability")
		result.Score -= 5
	}

	result.Score = max(0, result.Score)
	return result
}

// analyzeFileFormat is a fixed category: by the time text reaches the
// scorer the file already parsed, so only general advice is offered.
func (s *Scorer) analyzeFileFormat() types.CategoryScore {
	return types.CategoryScore{
		Score:  100,
		Issues: []string{},
		Suggestions: []string{
			"Using DOCX or PDF format is recommended for best ATS compatibility",
			`Ensure your file name is professional (e.g., "FirstName_LastName_Resume.pdf")`,
		},
	}
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func countJobs(doc *types.ParsedResume) int {
	if doc == nil {
		return 0
	}
	total := 0
	for _, section := range doc.Sections {
		total += len(section.Jobs)
	}
	return total
}

func countEducation(doc *types.ParsedResume) int {
	if doc == nil {
		return 0
	}
	total := 0
	for _, section := range doc.Sections {
		total += len(section.Education)
	}
	return total
}

func hasSkillContent(doc *types.ParsedResume) bool {
	if doc == nil {
		return false
	}
	for _, section := range doc.Sections {
		if section.Type == types.SectionSkills && len(section.Content) > 0 {
			return true
		}
	}
	return false
}

func hasProfileSection(doc *types.ParsedResume) bool {
	if doc == nil {
		return false
	}
	for _, section := range doc.Sections {
		if section.Type == types.SectionProfile {
			return true
		}
	}
	return false
}
