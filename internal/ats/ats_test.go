package ats

import (
	"reflect"
	"strings"
	"testing"

	"resumelens/internal/parser"
	"resumelens/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com | (555) 123-4567

SUMMARY
Versatile engineer who developed and delivered cloud products.

WORK EXPERIENCE
Senior Engineer | Tech Corp | 2020 - Present
- Led migration to kubernetes, reduced costs by 30%
- Developed internal tooling in python and go
- Improved deployment frequency by 50%

EDUCATION
State University | 2014 - 2018
Bachelor of Science in Computer Science

SKILLS
Kubernetes, Docker, Python, Go, PostgreSQL`

const sampleJob = `We need a senior engineer with kubernetes experience.
Kubernetes and docker are used daily. Docker knowledge required.
Familiarity with python and python tooling is expected.`

func TestScoreIdempotent(t *testing.T) {
	doc := parser.Parse(sampleResume)
	first := Score(sampleResume, sampleJob, &doc)
	second := Score(sampleResume, sampleJob, &doc)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different scores")
	}
}

func TestScoreKeywordsEmptyJobDescription(t *testing.T) {
	score := Score(sampleResume, "", nil)
	if score.Breakdown.Keywords.Score != 0 {
		t.Errorf("keywords score = %d, expected 0 for empty job description", score.Breakdown.Keywords.Score)
	}
	if score.Breakdown.Keywords.Total != 0 {
		t.Errorf("total = %d, expected 0", score.Breakdown.Keywords.Total)
	}
}

func TestScoreKeywordMatching(t *testing.T) {
	s := NewScorer(DefaultWeights(), DefaultThresholds())

	job := "Kubernetes experience required. Kubernetes and Docker. Docker daily. Python3 helpful."
	kws := s.jobKeywords(job)
	expected := []string{"kubernetes", "docker", "python3"}
	if !reflect.DeepEqual(kws, expected) {
		t.Fatalf("jobKeywords = %v, expected %v", kws, expected)
	}

	result := s.analyzeKeywords("I run kubernetes clusters with docker", job)
	if result.Matched != 2 || result.Total != 3 {
		t.Errorf("matched/total = %d/%d, expected 2/3", result.Matched, result.Total)
	}
	if result.Score != 67 {
		t.Errorf("score = %d, expected 67", result.Score)
	}
	found := false
	for _, sug := range result.Suggestions {
		if strings.Contains(sug, "python3") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a suggestion naming the missing keyword, got %v", result.Suggestions)
	}
}

func TestScoreKeywordMonotonic(t *testing.T) {
	doc := parser.Parse(sampleResume)

	unrelated := Score(sampleResume, "Haskell and erlang. Haskell and prolog. Prolog focus. Erlang forever.", &doc)
	aligned := Score(sampleResume, sampleJob, &doc)

	if aligned.Breakdown.Keywords.Score < unrelated.Breakdown.Keywords.Score {
		t.Fatalf("aligned keyword score %d below unrelated %d",
			aligned.Breakdown.Keywords.Score, unrelated.Breakdown.Keywords.Score)
	}
	if aligned.OverallScore < unrelated.OverallScore {
		t.Errorf("overall score decreased (%d -> %d) when a category score increased",
			unrelated.OverallScore, aligned.OverallScore)
	}
}

func TestAnalyzeFormatting(t *testing.T) {
	s := NewScorer(DefaultWeights(), DefaultThresholds())

	t.Run("clean text with bullets earns bonus capped at 100", func(t *testing.T) {
		result := s.analyzeFormatting("Simple resume\n- did a thing\n- did another")
		if result.Score != 100 {
			t.Errorf("score = %d, expected 100", result.Score)
		}
	})

	t.Run("decorative glyphs deduct", func(t *testing.T) {
		result := s.analyzeFormatting("Resume\n★ fancy bullet\n★ another")
		if result.Score != 90 {
			t.Errorf("score = %d, expected 90", result.Score)
		}
		if len(result.Issues) != 1 {
			t.Errorf("issues = %v", result.Issues)
		}
	})

	t.Run("table spacing deducts", func(t *testing.T) {
		result := s.analyzeFormatting("Name\t\tRole\t\tDates")
		if result.Score != 85 {
			t.Errorf("score = %d, expected 85", result.Score)
		}
	})

	t.Run("page markers deduct", func(t *testing.T) {
		result := s.analyzeFormatting("Resume content here\nmore content\nPage 1 of 2")
		if result.Score != 95 {
			t.Errorf("score = %d, expected 95", result.Score)
		}
	})

	t.Run("score floors at zero", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("Page 1\n")
		for i := 0; i < 7; i++ {
			sb.WriteString("THIS LINE IS ALL CAPITALS\n")
		}
		sb.WriteString("★ glyph     and wide   spacing\t\there\nPage 2\n")
		result := s.analyzeFormatting(sb.String())
		if result.Score < 0 {
			t.Errorf("score = %d, must not go negative", result.Score)
		}
	})
}

func TestAnalyzeSections(t *testing.T) {
	s := NewScorer(DefaultWeights(), DefaultThresholds())

	t.Run("nil document reports everything missing", func(t *testing.T) {
		result := s.analyzeSections(nil)
		if result.Score != 0 {
			t.Errorf("score = %d, expected 0", result.Score)
		}
		if len(result.Missing) != 4 {
			t.Errorf("missing = %v, expected 4 entries", result.Missing)
		}
	})

	t.Run("complete document with summary caps at 100", func(t *testing.T) {
		doc := parser.Parse(sampleResume)
		result := s.analyzeSections(&doc)
		if result.Score != 100 {
			t.Errorf("score = %d, expected 100", result.Score)
		}
		if len(result.Missing) != 0 {
			t.Errorf("missing = %v, expected none", result.Missing)
		}
		foundSummary := false
		for _, name := range result.Present {
			if name == "Professional Summary" {
				foundSummary = true
			}
		}
		if !foundSummary {
			t.Errorf("present = %v, expected Professional Summary bonus", result.Present)
		}
	})

	t.Run("partial document scores per category", func(t *testing.T) {
		doc := types.ParsedResume{
			Contact: types.ContactInfo{Email: "a@b.com"},
			Sections: []types.ResumeSection{
				{Type: types.SectionSkills, Content: []string{"Go, SQL"}},
			},
		}
		result := s.analyzeSections(&doc)
		if result.Score != 50 {
			t.Errorf("score = %d, expected 50", result.Score)
		}
		if len(result.Missing) != 2 {
			t.Errorf("missing = %v", result.Missing)
		}
	})
}

func TestAnalyzeReadability(t *testing.T) {
	s := NewScorer(DefaultWeights(), DefaultThresholds())

	t.Run("brief text without verbs or metrics", func(t *testing.T) {
		result := s.analyzeReadability("short resume text")
		// -20 brief, -10 verbs, -15 metrics
		if result.Score != 55 {
			t.Errorf("score = %d, expected 55", result.Score)
		}
	})

	t.Run("solid content keeps full score", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < 60; i++ {
			sb.WriteString("Led a project. Developed features. Improved throughput by 20%.\n")
		}
		result := s.analyzeReadability(sb.String())
		if result.Score != 100 {
			t.Errorf("score = %d, expected 100, issues %v", result.Score, result.Issues)
		}
	})
}

func TestGrades(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{89, "Good"},
		{75, "Good"},
		{74, "Fair"},
		{60, "Fair"},
		{59, "Needs Improvement"},
		{40, "Needs Improvement"},
		{39, "Poor"},
		{0, "Poor"},
	}
	for _, tt := range tests {
		if got := gradeFor(tt.score); got != tt.expected {
			t.Errorf("gradeFor(%d) = %q, expected %q", tt.score, got, tt.expected)
		}
	}
}

func TestSummaryContent(t *testing.T) {
	doc := parser.Parse(sampleResume)
	score := Score(sampleResume, sampleJob, &doc)

	if score.Summary == "" {
		t.Fatal("summary is empty")
	}
	if score.Breakdown.Sections.Score >= 80 && !strings.Contains(score.Summary, "sections") {
		t.Errorf("summary %q does not name sections as a strength", score.Summary)
	}
}
