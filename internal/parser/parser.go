// Package parser converts free-form resume text into a structured
// document: a contact block plus an ordered list of typed sections,
// with experience and education sections broken down further into
// job and education entries. The heuristics are line based and never
// fail; unrecognizable input simply yields an emptier document.
package parser

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

const (
	// contactScanLines is how many leading lines form the header blob
	// searched for email, phone and profile URLs.
	contactScanLines = 10
	// nameScanLines is how many leading lines are considered when
	// looking for the candidate's name.
	nameScanLines = 5

	headerMaxLen = 50
	headerMinLen = 3
)

var (
	emailRegex    = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)
	phoneRegex    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRegex = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRegex   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	urlRegex      = regexp.MustCompile(`(?i)(https?://)?(www\.)?[\w-]+\.[\w.]+(/[\w-]*)*`)

	dateRangeRegex = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`)
	monthYearRegex = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}`)
	bareYearRegex  = regexp.MustCompile(`\d{4}`)
)

// sectionHeaders maps a section type to the pattern recognizing its
// header line. Order of evaluation is fixed so classification is
// deterministic when a line would match more than one pattern.
var sectionHeaders = []struct {
	sectionType types.SectionType
	pattern     *regexp.Regexp
}{
	{types.SectionExperience, regexp.MustCompile(`(?i)^(work\s+)?experience|^employment|^professional\s+experience|^career`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)^education|^academic|^qualifications`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)^skills|^technical\s+skills|^competencies|^technologies|^tools`)},
	{types.SectionProfile, regexp.MustCompile(`(?i)^profile|^summary|^about|^objective|^professional\s+summary`)},
}

var (
	skillsHintRegex     = regexp.MustCompile(`(?i)skill|tech|tool|language`)
	experienceHintRegex = regexp.MustCompile(`(?i)work|employ|experience|career`)
	educationHintRegex  = regexp.MustCompile(`(?i)educat|school|university|degree`)
	profileHintRegex    = regexp.MustCompile(`(?i)profile|summary|about|objective`)
)

// Parse builds a structured document from raw resume text. It accepts
// any string, including the empty string, and never returns an error:
// fields that cannot be detected are simply left empty. RawText on the
// result preserves the input verbatim.
func Parse(text string) types.ParsedResume {
	lines := splitLines(text)

	doc := types.ParsedResume{
		Sections: []types.ResumeSection{},
		RawText:  text,
	}
	doc.Contact = extractContact(lines)
	doc.Sections = segmentSections(lines)
	return doc
}

// splitLines breaks text into trimmed, non-blank lines
func splitLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractContact scans the top of the resume for contact details.
// Email, phone and profile URLs are matched against a blob of the
// first lines; the name is the first short line near the top that
// carries no contact data and looks like a person's name.
func extractContact(lines []string) types.ContactInfo {
	var contact types.ContactInfo

	header := strings.Join(firstN(lines, contactScanLines), " ")
	contact.Email = emailRegex.FindString(header)
	contact.Phone = strings.TrimSpace(phoneRegex.FindString(header))
	contact.LinkedIn = linkedinRegex.FindString(header)
	contact.GitHub = githubRegex.FindString(header)

	for _, line := range firstN(lines, nameScanLines) {
		if emailRegex.MatchString(line) || phoneRegex.MatchString(line) || urlRegex.MatchString(line) {
			continue
		}
		if len(line) <= headerMinLen || len(line) >= headerMaxLen {
			continue
		}
		if line == strings.ToUpper(line) || titleCaseNameRegex.MatchString(line) {
			contact.Name = line
			break
		}
	}
	return contact
}

var titleCaseNameRegex = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)

// segmentSections walks the lines once, opening a new section at every
// detected header and accumulating the lines in between. Lines before
// the first header are dropped, and a section that gathered no content
// before the next header is discarded.
func segmentSections(lines []string) []types.ResumeSection {
	sections := []types.ResumeSection{}

	var current *types.ResumeSection
	var buffer []string

	flush := func() {
		if current == nil || len(buffer) == 0 {
			return
		}
		current.Content = buffer
		switch current.Type {
		case types.SectionExperience:
			current.Jobs = parseExperienceSection(buffer)
		case types.SectionEducation:
			current.Education = parseEducationSection(buffer)
		}
		sections = append(sections, *current)
	}

	for _, line := range lines {
		sectionType, isHeader := classifyHeader(line)
		if isHeader {
			flush()
			current = &types.ResumeSection{
				Title:   line,
				Type:    sectionType,
				Content: []string{},
			}
			buffer = nil
			continue
		}
		if current != nil {
			buffer = append(buffer, line)
		}
	}
	flush()

	return sections
}

// classifyHeader reports whether line is a section header and, if so,
// which type it opens. The known header patterns are tried first; a
// short all-caps line is also accepted as a header, its type inferred
// from keyword hints in the line itself.
func classifyHeader(line string) (types.SectionType, bool) {
	for _, h := range sectionHeaders {
		if h.pattern.MatchString(line) {
			return h.sectionType, true
		}
	}

	if line == strings.ToUpper(line) && len(line) < headerMaxLen && len(line) > headerMinLen {
		switch {
		case skillsHintRegex.MatchString(line):
			return types.SectionSkills, true
		case experienceHintRegex.MatchString(line):
			return types.SectionExperience, true
		case educationHintRegex.MatchString(line):
			return types.SectionEducation, true
		case profileHintRegex.MatchString(line):
			return types.SectionProfile, true
		default:
			return types.SectionOther, true
		}
	}
	return types.SectionOther, false
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}
