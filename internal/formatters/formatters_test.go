package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"resumelens/internal/types"
)

func fixtureDocument() types.ParsedResume {
	return types.ParsedResume{
		Contact: types.ContactInfo{
			Name:     "Jane Doe",
			Email:    "jane.doe@example.com",
			Phone:    "(555) 123-4567",
			Location: "Austin, TX",
		},
		Sections: []types.ResumeSection{
			{
				Type:    types.SectionProfile,
				Title:   "Summary",
				Content: []string{"Senior engineer with 8 years of Go experience."},
			},
			{
				Type:  types.SectionExperience,
				Title: "Experience",
				Jobs: []types.JobEntry{
					{
						Title:     "Senior Engineer",
						Company:   "Acme Corp",
						DateRange: "2019 - Present",
						Bullets:   []string{"Built a distributed ingestion pipeline"},
					},
				},
			},
			{
				Type:  types.SectionEducation,
				Title: "Education",
				Education: []types.EducationEntry{
					{
						School:    "State University",
						Degree:    "B.S. Computer Science",
						DateRange: "2011 - 2015",
					},
				},
			},
		},
	}
}

func fixtureScore() types.ScoreResumeOutput {
	doc := fixtureDocument()
	return types.ScoreResumeOutput{
		Document: &doc,
		Score: types.ATSScore{
			OverallScore: 82,
			Grade:        "B",
			Summary:      "Good ATS compatibility with room for improvement.",
			Breakdown: types.ScoreBreakdown{
				Formatting: types.CategoryScore{Score: 90},
				Keywords: types.KeywordScore{
					CategoryScore: types.CategoryScore{
						Score:       75,
						Suggestions: []string{"Add more role-specific keywords"},
					},
					Matched: 12,
					Total:   16,
				},
				Sections: types.SectionScore{
					CategoryScore: types.CategoryScore{Score: 85},
					Present:       []string{"summary", "experience", "education"},
					Missing:       []string{"skills"},
				},
				Readability: types.CategoryScore{Score: 80},
				FileFormat:  types.CategoryScore{Score: 95},
			},
		},
	}
}

func TestParsedResumeFormatters(t *testing.T) {
	doc := fixtureDocument()

	tests := []struct {
		format string
		want   []string
	}{
		{"json", []string{`"name": "Jane Doe"`, `"sections"`}},
		{"text", []string{"Name: Jane Doe", "=== EXPERIENCE ===", "Senior Engineer at Acme Corp (2019 - Present)", "State University"}},
		{"markdown", []string{"# Jane Doe", "## Experience", "### Senior Engineer, Acme Corp", "### State University"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			output, err := GlobalRegistry.Format(doc, tt.format)
			if err != nil {
				t.Fatalf("Format(%s) failed: %v", tt.format, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestScoreFormatters(t *testing.T) {
	score := fixtureScore()

	tests := []struct {
		format string
		want   []string
	}{
		{"json", []string{`"overallScore": 82`, `"grade": "B"`}},
		{"text", []string{"Overall Score: 82/100 (B)", "Keywords: 75/100 (12 of 16 matched)", "Missing: skills"}},
		{"markdown", []string{"# ATS Compatibility Score", "**Overall Score:** 82/100 (B)", "**Missing:** skills"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			output, err := GlobalRegistry.Format(score, tt.format)
			if err != nil {
				t.Fatalf("Format(%s) failed: %v", tt.format, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestTailorFormatters(t *testing.T) {
	result := types.TailorResumeOutput{
		TailoredResume: "Jane Doe\nSenior Go Engineer",
		KeyChanges:     []string{"Emphasized Go experience in the summary"},
		Score:          fixtureScore().Score,
	}

	for _, format := range []string{"text", "markdown"} {
		output, err := GlobalRegistry.Format(result, format)
		if err != nil {
			t.Fatalf("Format(%s) failed: %v", format, err)
		}
		if !strings.Contains(output, "Senior Go Engineer") {
			t.Errorf("%s output missing tailored text", format)
		}
		if !strings.Contains(output, "Emphasized Go experience in the summary") {
			t.Errorf("%s output missing key changes", format)
		}
		if !strings.Contains(output, "82/100") {
			t.Errorf("%s output missing score", format)
		}
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	doc := fixtureDocument()

	output, err := GlobalRegistry.Format(doc, "json")
	if err != nil {
		t.Fatalf("Format(json) failed: %v", err)
	}

	var decoded types.ParsedResume
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("json output is not valid: %v", err)
	}
	if decoded.Contact.Name != doc.Contact.Name {
		t.Errorf("expected name %q, got %q", doc.Contact.Name, decoded.Contact.Name)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	_, err := GlobalRegistry.Format(fixtureDocument(), "yaml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	for _, want := range []string{"json", "text", "markdown"} {
		found := false
		for _, f := range formats {
			if f == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q in supported formats, got %v", want, formats)
		}
	}
}
