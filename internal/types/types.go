package types

// ContactInfo holds the contact details extracted from the top of a resume.
// All fields are optional; absent data is represented by the empty string.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// JobEntry represents one position inside an experience section
type JobEntry struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	DateRange string   `json:"dateRange,omitempty"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry represents one entry inside an education section
type EducationEntry struct {
	School    string   `json:"school"`
	Degree    string   `json:"degree,omitempty"`
	DateRange string   `json:"dateRange,omitempty"`
	Details   []string `json:"details"`
}

// SectionType classifies a resume section by its header
type SectionType string

const (
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionProfile    SectionType = "profile"
	SectionOther      SectionType = "other"
)

// ResumeSection is one titled block of the resume. Content always carries
// the raw lines; Jobs is populated only for experience sections and
// Education only for education sections.
type ResumeSection struct {
	Title     string           `json:"title"`
	Type      SectionType      `json:"type"`
	Content   []string         `json:"content"`
	Jobs      []JobEntry       `json:"jobs,omitempty"`
	Education []EducationEntry `json:"education,omitempty"`
}

// ParsedResume is the structured document produced by a single parse pass.
// RawText preserves the original input verbatim so it can be re-scored.
type ParsedResume struct {
	Contact  ContactInfo     `json:"contact"`
	Sections []ResumeSection `json:"sections"`
	RawText  string          `json:"rawText"`
}

// CategoryScore is the common shape shared by every scoring category
type CategoryScore struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// KeywordScore extends CategoryScore with match counts against the
// job description's keyword set.
type KeywordScore struct {
	CategoryScore
	Matched int `json:"matched"`
	Total   int `json:"total"`
}

// SectionScore extends CategoryScore with the names of the required
// section categories that were found and those that were not.
type SectionScore struct {
	CategoryScore
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// ScoreBreakdown carries the five fixed category sub-scores
type ScoreBreakdown struct {
	Formatting  CategoryScore `json:"formatting"`
	Keywords    KeywordScore  `json:"keywords"`
	Sections    SectionScore  `json:"sections"`
	Readability CategoryScore `json:"readability"`
	FileFormat  CategoryScore `json:"fileFormat"`
}

// ATSScore is the full compatibility report for a resume against a
// job description. It is a pure computed value with no identity.
type ATSScore struct {
	OverallScore int            `json:"overallScore"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Grade        string         `json:"grade"`
	Summary      string         `json:"summary"`
}

// ParseResumeInput represents the input for parsing a resume
type ParseResumeInput struct {
	ResumeText string `json:"resumeText"`
}

// ScoreResumeInput represents the input for scoring a resume
type ScoreResumeInput struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

// ScoreResumeOutput bundles the structured document with its score
type ScoreResumeOutput struct {
	Document *ParsedResume `json:"document,omitempty"`
	Score    ATSScore      `json:"score"`
}

// TailorResumeInput represents the input for tailoring a resume
type TailorResumeInput struct {
	BaseResume     string `json:"baseResume"`
	JobDescription string `json:"jobDescription"`
}

// TailoredDraft is the raw rewriting result returned by the AI provider.
// The tailored text is parsed and scored locally after the call.
type TailoredDraft struct {
	TailoredResume string   `json:"tailoredResume"`
	KeyChanges     []string `json:"keyChanges"`
}

// TailorResumeOutput represents the output from tailoring a resume:
// the rewritten text plus a locally computed document and score.
type TailorResumeOutput struct {
	TailoredResume string        `json:"tailoredResume"`
	KeyChanges     []string      `json:"keyChanges"`
	Document       *ParsedResume `json:"document,omitempty"`
	Score          ATSScore      `json:"score"`
}

// RenderStyle selects a visual style for document renderers
type RenderStyle string

const (
	StyleProfessional RenderStyle = "professional"
	StyleModern       RenderStyle = "modern"
)

// RenderInput represents the input for rendering a structured resume
type RenderInput struct {
	Document ParsedResume `json:"document"`
	Style    RenderStyle  `json:"style"`
	Format   string       `json:"format"`
}
