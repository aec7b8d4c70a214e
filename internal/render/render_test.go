package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

func fixtureResume() *types.ParsedResume {
	return &types.ParsedResume{
		Contact: types.ContactInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "(555) 123-4567",
		},
		Sections: []types.ResumeSection{
			{
				Title: "Experience",
				Type:  types.SectionExperience,
				Jobs: []types.JobEntry{
					{
						Company:   "Acme Corp",
						Title:     "Senior Engineer",
						DateRange: "2020 - Present",
						Bullets:   []string{"Led migration to Kubernetes", "Reduced costs by 30%"},
					},
				},
			},
			{
				Title: "Education",
				Type:  types.SectionEducation,
				Education: []types.EducationEntry{
					{School: "State University", Degree: "B.S. Computer Science", DateRange: "2012 - 2016"},
				},
			},
			{
				Title:   "Skills",
				Type:    types.SectionSkills,
				Content: []string{"Go, Python, SQL"},
			},
		},
	}
}

func TestHTMLRenderer(t *testing.T) {
	renderer := NewHTMLRenderer()

	for _, style := range []types.RenderStyle{types.StyleProfessional, types.StyleModern} {
		t.Run(string(style), func(t *testing.T) {
			out, err := renderer.Render(fixtureResume(), style)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			html := string(out)
			for _, want := range []string{
				"<h1>Jane Doe</h1>",
				"jane@example.com",
				"<h2>Experience</h2>",
				"Senior Engineer",
				"Acme Corp",
				"<li>Led migration to Kubernetes</li>",
				"<h2>Education</h2>",
				"State University",
				"Go, Python, SQL",
			} {
				if !strings.Contains(html, want) {
					t.Errorf("HTML output missing %q", want)
				}
			}
		})
	}
}

func TestHTMLRendererStylesDiffer(t *testing.T) {
	renderer := NewHTMLRenderer()

	professional, err := renderer.Render(fixtureResume(), types.StyleProfessional)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	modern, err := renderer.Render(fixtureResume(), types.StyleModern)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if bytes.Equal(professional, modern) {
		t.Error("Professional and modern styles should produce different output")
	}
}

func TestHTMLRendererEscapesContent(t *testing.T) {
	doc := &types.ParsedResume{
		Contact: types.ContactInfo{Name: "Jane <script>alert(1)</script>"},
	}

	out, err := NewHTMLRenderer().Render(doc, types.StyleProfessional)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Error("HTML renderer should escape markup in resume content")
	}
}

func TestDOCXRenderer(t *testing.T) {
	out, err := NewDOCXRenderer().Render(fixtureResume(), types.StyleProfessional)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("Output is not a valid ZIP archive: %v", err)
	}

	var document string
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("Cannot open document.xml: %v", err)
			}
			data, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				t.Fatalf("Cannot read document.xml: %v", err)
			}
			document = string(data)
		}
	}

	if document == "" {
		t.Fatal("word/document.xml not found in archive")
	}
	for _, want := range []string{
		"Jane Doe",
		"Experience",
		"Senior Engineer - Acme Corp",
		"State University",
	} {
		if !strings.Contains(document, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestDOCXRendererEscapesContent(t *testing.T) {
	doc := &types.ParsedResume{
		Sections: []types.ResumeSection{
			{Title: "Skills", Type: types.SectionSkills, Content: []string{"C++ & <templates>"}},
		},
	}

	out, err := NewDOCXRenderer().Render(doc, types.StyleProfessional)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("Output is not a valid ZIP archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, _ := f.Open()
		data, _ := io.ReadAll(rc)
		_ = rc.Close()
		if !strings.Contains(string(data), "C++ &amp; &lt;templates&gt;") {
			t.Error("document.xml should escape XML metacharacters")
		}
	}
}

func TestForFormat(t *testing.T) {
	cfg := config.RenderConfig{DefaultStyle: "professional"}

	tests := []struct {
		format  string
		wantErr bool
	}{
		{"html", false},
		{"pdf", false},
		{"docx", false},
		{"odt", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("format_"+tt.format, func(t *testing.T) {
			renderer, err := ForFormat(tt.format, cfg, nil)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for format %q", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for format %q: %v", tt.format, err)
			}
			if renderer == nil {
				t.Errorf("Expected renderer for format %q", tt.format)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType("pdf"); got != "application/pdf" {
		t.Errorf("Expected application/pdf, got %q", got)
	}
	if got := ContentType("unknown"); got != "application/octet-stream" {
		t.Errorf("Expected octet-stream fallback, got %q", got)
	}
}
