package parser

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"resumelens/internal/types"
)

func findSection(sections []types.ResumeSection, t types.SectionType) *types.ResumeSection {
	for i := range sections {
		if sections[i].Type == t {
			return &sections[i]
		}
	}
	return nil
}

func TestParseContactInfo(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		doc := Parse("John Doe\njohn.doe@example.com\nSoftware Engineer")
		if doc.Contact.Email != "john.doe@example.com" {
			t.Errorf("email = %q, expected john.doe@example.com", doc.Contact.Email)
		}
	})

	t.Run("phone formats", func(t *testing.T) {
		phones := []string{
			"(555) 123-4567",
			"555-123-4567",
			"555.123.4567",
			"+1 555 123 4567",
		}
		for _, phone := range phones {
			doc := Parse("John Doe\n" + phone + "\njohn@example.com")
			if doc.Contact.Phone == "" {
				t.Errorf("phone not detected in %q", phone)
			}
			if !strings.Contains(doc.Contact.Phone, "555") {
				t.Errorf("phone = %q, expected it to contain 555", doc.Contact.Phone)
			}
		}
	})

	t.Run("linkedin and github", func(t *testing.T) {
		doc := Parse("John Doe\nlinkedin.com/in/johndoe\ngithub.com/johndoe\njohn@example.com")
		if doc.Contact.LinkedIn != "linkedin.com/in/johndoe" {
			t.Errorf("linkedin = %q", doc.Contact.LinkedIn)
		}
		if doc.Contact.GitHub != "github.com/johndoe" {
			t.Errorf("github = %q", doc.Contact.GitHub)
		}
	})

	t.Run("title case name", func(t *testing.T) {
		doc := Parse("John Doe\njohn.doe@example.com\n(555) 123-4567")
		if doc.Contact.Name != "John Doe" {
			t.Errorf("name = %q, expected John Doe", doc.Contact.Name)
		}
	})

	t.Run("all caps name", func(t *testing.T) {
		doc := Parse("JOHN DOE\njohn.doe@example.com\n(555) 123-4567")
		if doc.Contact.Name != "JOHN DOE" {
			t.Errorf("name = %q, expected JOHN DOE", doc.Contact.Name)
		}
	})

	t.Run("missing contact info", func(t *testing.T) {
		doc := Parse("summary of qualifications\nseasoned developer with strong fundamentals")
		if doc.Contact.Email != "" || doc.Contact.Phone != "" || doc.Contact.Name != "" {
			t.Errorf("expected empty contact, got %+v", doc.Contact)
		}
	})

	t.Run("complete header", func(t *testing.T) {
		doc := Parse("John Doe\njohn.doe@example.com | (555) 123-4567 | linkedin.com/in/johndoe | github.com/johndoe\nNew York, NY\n\nSUMMARY\nVersatile software engineer")
		if doc.Contact.Name != "John Doe" {
			t.Errorf("name = %q", doc.Contact.Name)
		}
		if doc.Contact.Email != "john.doe@example.com" {
			t.Errorf("email = %q", doc.Contact.Email)
		}
		if !strings.Contains(doc.Contact.Phone, "555") {
			t.Errorf("phone = %q", doc.Contact.Phone)
		}
		if doc.Contact.LinkedIn != "linkedin.com/in/johndoe" {
			t.Errorf("linkedin = %q", doc.Contact.LinkedIn)
		}
		if doc.Contact.GitHub != "github.com/johndoe" {
			t.Errorf("github = %q", doc.Contact.GitHub)
		}
	})
}

func TestParseSectionDetection(t *testing.T) {
	tests := []struct {
		header   string
		body     string
		expected types.SectionType
	}{
		{"EXPERIENCE", "Engineer | Company | 2020 - Present", types.SectionExperience},
		{"WORK EXPERIENCE", "Engineer | Company | 2020 - Present", types.SectionExperience},
		{"PROFESSIONAL EXPERIENCE", "Engineer | Company | 2020 - Present", types.SectionExperience},
		{"EMPLOYMENT", "Engineer | Company | 2020 - Present", types.SectionExperience},
		{"CAREER", "Engineer | Company | 2020 - Present", types.SectionExperience},
		{"EDUCATION", "University | 2018", types.SectionEducation},
		{"ACADEMIC", "University | 2018", types.SectionEducation},
		{"QUALIFICATIONS", "University | 2018", types.SectionEducation},
		{"SKILLS", "Go, Python, SQL", types.SectionSkills},
		{"TECHNICAL SKILLS", "Go, Python, SQL", types.SectionSkills},
		{"COMPETENCIES", "Go, Python, SQL", types.SectionSkills},
		{"TECHNOLOGIES", "Go, Python, SQL", types.SectionSkills},
		{"SUMMARY", "Seasoned engineer", types.SectionProfile},
		{"PROFILE", "Seasoned engineer", types.SectionProfile},
		{"PROFESSIONAL SUMMARY", "Seasoned engineer", types.SectionProfile},
		{"ABOUT", "Seasoned engineer", types.SectionProfile},
		{"OBJECTIVE", "Seasoned engineer", types.SectionProfile},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			doc := Parse("John Doe\n\n" + tt.header + "\n" + tt.body)
			section := findSection(doc.Sections, tt.expected)
			if section == nil {
				t.Fatalf("section of type %s not detected for header %q", tt.expected, tt.header)
			}
			if section.Title != tt.header {
				t.Errorf("title = %q, expected %q", section.Title, tt.header)
			}
		})
	}
}

func TestParseSectionOrder(t *testing.T) {
	resume := strings.Join([]string{
		"John Doe",
		"john@example.com",
		"",
		"SUMMARY",
		"Versatile software engineer",
		"",
		"EXPERIENCE",
		"Software Engineer | Company | 2020 - Present",
		"",
		"EDUCATION",
		"BS Computer Science | University | 2020",
		"",
		"SKILLS",
		"Go, TypeScript, React",
	}, "\n")

	doc := Parse(resume)
	if len(doc.Sections) != 4 {
		t.Fatalf("sections = %d, expected 4", len(doc.Sections))
	}
	expectedOrder := []types.SectionType{
		types.SectionProfile,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	}
	for i, want := range expectedOrder {
		if doc.Sections[i].Type != want {
			t.Errorf("sections[%d].Type = %s, expected %s", i, doc.Sections[i].Type, want)
		}
	}
}

func TestParseExperience(t *testing.T) {
	t.Run("job header with title, company, and date range", func(t *testing.T) {
		doc := Parse("John Doe\n\nWORK EXPERIENCE\nSenior Software Engineer | Tech Corp | 2020 - Present\n- Developed scalable applications\n- Led team of 4 engineers")
		section := findSection(doc.Sections, types.SectionExperience)
		if section == nil {
			t.Fatal("experience section not detected")
		}
		if len(section.Jobs) != 1 {
			t.Fatalf("jobs = %d, expected 1", len(section.Jobs))
		}
		job := section.Jobs[0]
		if !strings.Contains(job.Title, "Senior Software Engineer") {
			t.Errorf("title = %q", job.Title)
		}
		if !strings.Contains(job.Company, "Tech Corp") {
			t.Errorf("company = %q", job.Company)
		}
		if matched, _ := regexp.MatchString(`(?i)2020.*Present`, job.DateRange); !matched {
			t.Errorf("dateRange = %q", job.DateRange)
		}
	})

	t.Run("bullets", func(t *testing.T) {
		doc := Parse("EXPERIENCE\nEngineer | Company | 2020 - 2023\n• Bullet with dot\n- Bullet with dash\n* Bullet with asterisk")
		section := findSection(doc.Sections, types.SectionExperience)
		if section == nil || len(section.Jobs) != 1 {
			t.Fatalf("expected one job, got %+v", doc.Sections)
		}
		bullets := section.Jobs[0].Bullets
		expected := []string{"Bullet with dot", "Bullet with dash", "Bullet with asterisk"}
		if len(bullets) != len(expected) {
			t.Fatalf("bullets = %v", bullets)
		}
		for i := range expected {
			if bullets[i] != expected[i] {
				t.Errorf("bullets[%d] = %q, expected %q", i, bullets[i], expected[i])
			}
		}
	})

	t.Run("multiple jobs", func(t *testing.T) {
		doc := Parse("WORK EXPERIENCE\nSenior Engineer | Company A | 2020 - Present\n- Led development team\n\nSoftware Engineer | Company B | 2018 - 2020\n- Built REST APIs")
		section := findSection(doc.Sections, types.SectionExperience)
		if section == nil {
			t.Fatal("experience section not detected")
		}
		if len(section.Jobs) != 2 {
			t.Fatalf("jobs = %d, expected 2", len(section.Jobs))
		}
		if !strings.Contains(section.Jobs[0].Company, "Company A") {
			t.Errorf("jobs[0].company = %q", section.Jobs[0].Company)
		}
		if !strings.Contains(section.Jobs[1].Company, "Company B") {
			t.Errorf("jobs[1].company = %q", section.Jobs[1].Company)
		}
	})

	t.Run("date formats", func(t *testing.T) {
		formats := []string{
			"2020 - 2023",
			"Jan 2020 - Dec 2023",
			"2020 - Present",
			"2020 - Current",
		}
		for _, format := range formats {
			doc := Parse("EXPERIENCE\nEngineer | Company | " + format + "\n- Did work")
			section := findSection(doc.Sections, types.SectionExperience)
			if section == nil || len(section.Jobs) == 0 {
				t.Errorf("no job detected for date format %q", format)
				continue
			}
			if section.Jobs[0].DateRange == "" {
				t.Errorf("empty dateRange for format %q", format)
			}
		}
	})

	t.Run("title backfill from following line", func(t *testing.T) {
		doc := Parse("EXPERIENCE\nTech Corp 2020 - Present\nSenior Engineer\n- Shipped things")
		section := findSection(doc.Sections, types.SectionExperience)
		if section == nil || len(section.Jobs) != 1 {
			t.Fatalf("expected one job, got %+v", doc.Sections)
		}
		if !strings.Contains(section.Jobs[0].Company, "Tech Corp") {
			t.Errorf("company = %q", section.Jobs[0].Company)
		}
		if section.Jobs[0].Title != "Senior Engineer" {
			t.Errorf("title = %q", section.Jobs[0].Title)
		}
	})

	t.Run("incomplete job is dropped", func(t *testing.T) {
		doc := Parse("EXPERIENCE\nSome Company 2020 - 2021\n- Orphan bullet")
		section := findSection(doc.Sections, types.SectionExperience)
		if section == nil {
			t.Fatal("experience section not detected")
		}
		if len(section.Jobs) != 0 {
			t.Errorf("expected incomplete job to be dropped, got %+v", section.Jobs)
		}
	})
}

func TestParseEducation(t *testing.T) {
	t.Run("school and date", func(t *testing.T) {
		doc := Parse("John Doe\n\nEDUCATION\nUniversity of Technology | 2014 - 2018")
		section := findSection(doc.Sections, types.SectionEducation)
		if section == nil || len(section.Education) != 1 {
			t.Fatalf("expected one education entry, got %+v", doc.Sections)
		}
		entry := section.Education[0]
		if !strings.Contains(entry.School, "University of Technology") {
			t.Errorf("school = %q", entry.School)
		}
		if !strings.Contains(entry.DateRange, "2014") {
			t.Errorf("dateRange = %q", entry.DateRange)
		}
	})

	t.Run("degree on following line", func(t *testing.T) {
		doc := Parse("EDUCATION\nUniversity of California\nBachelor of Science in Computer Science")
		section := findSection(doc.Sections, types.SectionEducation)
		if section == nil || len(section.Education) != 1 {
			t.Fatalf("expected one education entry, got %+v", doc.Sections)
		}
		if !strings.Contains(section.Education[0].Degree, "Bachelor of Science") {
			t.Errorf("degree = %q", section.Education[0].Degree)
		}
	})

	t.Run("degree types", func(t *testing.T) {
		degrees := []string{"Bachelor", "Master", "PhD", "BS", "BA", "MS", "MA"}
		for _, degree := range degrees {
			doc := Parse("EDUCATION\nState University\n" + degree + " in Computer Science")
			section := findSection(doc.Sections, types.SectionEducation)
			if section == nil || len(section.Education) == 0 {
				t.Errorf("no education entry for degree %q", degree)
				continue
			}
			if !strings.Contains(section.Education[0].Degree, degree) {
				t.Errorf("degree = %q, expected it to contain %q", section.Education[0].Degree, degree)
			}
		}
	})

	t.Run("multiple entries", func(t *testing.T) {
		doc := Parse("EDUCATION\nStanford University | 2020 - 2022\nMaster of Science in Computer Science\nCarnegie Mellon University | 2016 - 2020\nBachelor of Science in Computer Science")
		section := findSection(doc.Sections, types.SectionEducation)
		if section == nil {
			t.Fatal("education section not detected")
		}
		if len(section.Education) != 2 {
			t.Fatalf("education entries = %d, expected 2", len(section.Education))
		}
		if section.Education[0].School != "Stanford University" || section.Education[1].School != "Carnegie Mellon University" {
			t.Errorf("schools = %q, %q", section.Education[0].School, section.Education[1].School)
		}
	})

	t.Run("short all-caps school line starts a new section", func(t *testing.T) {
		doc := Parse("EDUCATION\nStanford University | 2020 - 2022\nMaster of Science in Computer Science\nMIT | 2016 - 2020\nBachelor of Science in Computer Science")
		section := findSection(doc.Sections, types.SectionEducation)
		if section == nil || len(section.Education) != 1 {
			t.Fatalf("expected one education entry, got %+v", doc.Sections)
		}
		other := findSection(doc.Sections, types.SectionOther)
		if other == nil || !strings.Contains(other.Title, "MIT") {
			t.Errorf("expected the all-caps line to open a new section, got %+v", doc.Sections)
		}
	})

	t.Run("detail lines accumulate", func(t *testing.T) {
		doc := Parse("EDUCATION\nState University\nBachelor of Arts\nDean's List\nGraduated with honors")
		section := findSection(doc.Sections, types.SectionEducation)
		if section == nil || len(section.Education) != 1 {
			t.Fatalf("expected one education entry, got %+v", doc.Sections)
		}
		entry := section.Education[0]
		if len(entry.Details) != 2 {
			t.Errorf("details = %v", entry.Details)
		}
	})
}

func TestParseEdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		doc := Parse("")
		if doc.Contact != (types.ContactInfo{}) {
			t.Errorf("contact = %+v, expected zero value", doc.Contact)
		}
		if len(doc.Sections) != 0 {
			t.Errorf("sections = %d, expected 0", len(doc.Sections))
		}
		if doc.RawText != "" {
			t.Errorf("rawText = %q", doc.RawText)
		}
	})

	t.Run("contact only", func(t *testing.T) {
		doc := Parse("John Doe\njohn.doe@example.com\n(555) 123-4567")
		if doc.Contact.Name != "John Doe" {
			t.Errorf("name = %q", doc.Contact.Name)
		}
		if len(doc.Sections) != 0 {
			t.Errorf("sections = %d, expected 0", len(doc.Sections))
		}
	})

	t.Run("raw text preserved", func(t *testing.T) {
		original := "John Doe\njohn@example.com\n\nEXPERIENCE\nEngineer | Company | 2020"
		doc := Parse(original)
		if doc.RawText != original {
			t.Errorf("rawText = %q, expected original input", doc.RawText)
		}
	})

	t.Run("lowercase section header", func(t *testing.T) {
		doc := Parse("John Doe\n\nwork experience (2020-present)\nEngineer | Company | 2020 - Present\n- Did work")
		if findSection(doc.Sections, types.SectionExperience) == nil {
			t.Error("lowercase experience header not detected")
		}
	})

	t.Run("lines before first header are dropped", func(t *testing.T) {
		doc := Parse("Random preamble line\nAnother stray line\nSKILLS\nGo, SQL")
		if len(doc.Sections) != 1 {
			t.Fatalf("sections = %d, expected 1", len(doc.Sections))
		}
		if doc.Sections[0].Type != types.SectionSkills {
			t.Errorf("type = %s", doc.Sections[0].Type)
		}
	})

	t.Run("header with no content is discarded", func(t *testing.T) {
		doc := Parse("SUMMARY\nEXPERIENCE\nEngineer | Company | 2020 - 2021\n- Did work")
		if len(doc.Sections) != 1 {
			t.Fatalf("sections = %d, expected 1 (empty section discarded)", len(doc.Sections))
		}
		if doc.Sections[0].Type != types.SectionExperience {
			t.Errorf("type = %s", doc.Sections[0].Type)
		}
	})

	t.Run("many sections", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("John Doe\njohn@example.com\n")
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&sb, "SECTION HEADING %c\ncontent for block %d\nmore content\n", 'A'+i, i)
		}
		doc := Parse(sb.String())
		if doc.Contact.Email != "john@example.com" {
			t.Errorf("email = %q", doc.Contact.Email)
		}
		if len(doc.Sections) == 0 {
			t.Error("expected sections to be detected")
		}
	})
}

func TestParseCompleteResume(t *testing.T) {
	resume := strings.Join([]string{
		"John Doe",
		"john.doe@example.com | (555) 123-4567 | linkedin.com/in/johndoe | github.com/johndoe",
		"",
		"SUMMARY",
		"Versatile software engineer with 5+ years of full-stack development expertise.",
		"Specialized in building scalable web applications.",
		"",
		"WORK EXPERIENCE",
		"Senior Software Engineer | Tech Corp | Jan 2020 - Present",
		"- Developed scalable web applications using React and Node.js",
		"- Led a team of 4 engineers in delivering critical features",
		"- Improved application performance by 40%",
		"- Implemented CI/CD pipelines",
		"",
		"Software Engineer | StartupXYZ | Jun 2018 - Dec 2019",
		"- Built RESTful APIs using Express.js and PostgreSQL",
		"- Implemented authentication and authorization systems",
		"- Collaborated with cross-functional teams",
		"- Reduced API response time by 50%",
		"",
		"EDUCATION",
		"University of Technology | 2014 - 2018",
		"Bachelor of Science in Computer Science",
		"",
		"SKILLS",
		"JavaScript, TypeScript, React, Node.js, Express, PostgreSQL, MongoDB, Git, Docker, AWS",
	}, "\n")

	doc := Parse(resume)

	if doc.Contact.Name != "John Doe" {
		t.Errorf("name = %q", doc.Contact.Name)
	}
	if doc.Contact.Email != "john.doe@example.com" {
		t.Errorf("email = %q", doc.Contact.Email)
	}
	if doc.Contact.Phone == "" {
		t.Error("phone not detected")
	}
	if doc.Contact.LinkedIn != "linkedin.com/in/johndoe" {
		t.Errorf("linkedin = %q", doc.Contact.LinkedIn)
	}
	if doc.Contact.GitHub != "github.com/johndoe" {
		t.Errorf("github = %q", doc.Contact.GitHub)
	}

	if len(doc.Sections) != 4 {
		t.Fatalf("sections = %d, expected 4", len(doc.Sections))
	}

	summary := findSection(doc.Sections, types.SectionProfile)
	if summary == nil || !strings.Contains(strings.Join(summary.Content, " "), "full-stack") {
		t.Error("summary section missing or incomplete")
	}

	experience := findSection(doc.Sections, types.SectionExperience)
	if experience == nil {
		t.Fatal("experience section not detected")
	}
	if len(experience.Jobs) != 2 {
		t.Fatalf("jobs = %d, expected 2", len(experience.Jobs))
	}
	for i, job := range experience.Jobs {
		if len(job.Bullets) != 4 {
			t.Errorf("jobs[%d].bullets = %d, expected 4", i, len(job.Bullets))
		}
	}

	education := findSection(doc.Sections, types.SectionEducation)
	if education == nil {
		t.Fatal("education section not detected")
	}
	if len(education.Education) != 1 {
		t.Fatalf("education entries = %d, expected 1", len(education.Education))
	}
	if !strings.Contains(education.Education[0].Degree, "Bachelor") {
		t.Errorf("degree = %q", education.Education[0].Degree)
	}

	skills := findSection(doc.Sections, types.SectionSkills)
	if skills == nil {
		t.Fatal("skills section not detected")
	}
	joined := strings.Join(skills.Content, " ")
	if !strings.Contains(joined, "JavaScript") || !strings.Contains(joined, "TypeScript") {
		t.Errorf("skills content = %q", joined)
	}
}
