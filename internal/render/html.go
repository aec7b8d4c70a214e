package render

import (
	"bytes"
	"html/template"
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// HTMLRenderer renders a parsed resume as a self-contained HTML page.
// The page carries its stylesheet inline so it can be printed to PDF
// without external assets.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates an HTML renderer with the built-in page template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("resume").Parse(resumePageTemplate)),
	}
}

type htmlPageData struct {
	Doc         *types.ParsedResume
	Style       template.CSS
	ContactLine string
}

// Render implements the Renderer interface.
func (r *HTMLRenderer) Render(doc *types.ParsedResume, style types.RenderStyle) ([]byte, error) {
	css := professionalCSS
	if style == types.StyleModern {
		css = modernCSS
	}

	data := htmlPageData{
		Doc:         doc,
		Style:       template.CSS(css),
		ContactLine: contactLine(doc.Contact),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, errors.NewRenderError(errors.ErrCodeRenderFailed,
			"Failed to render HTML document", err)
	}
	return buf.Bytes(), nil
}

// contactLine joins the present contact fields into one separator-delimited line.
func contactLine(c types.ContactInfo) string {
	var parts []string
	for _, v := range []string{c.Email, c.Phone, c.Location, c.LinkedIn, c.GitHub, c.Website} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "  |  ")
}

const resumePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{with .Doc.Contact.Name}}{{.}}{{else}}Resume{{end}}</title>
<style>{{.Style}}</style>
</head>
<body>
<header>
{{- with .Doc.Contact.Name}}
  <h1>{{.}}</h1>
{{- end}}
{{- with .ContactLine}}
  <p class="contact">{{.}}</p>
{{- end}}
</header>
{{- range .Doc.Sections}}
<section>
  <h2>{{.Title}}</h2>
{{- if .Jobs}}
{{- range .Jobs}}
  <div class="entry">
    <h3>{{.Title}}{{if .Company}} <span class="org">{{.Company}}</span>{{end}}</h3>
{{- with .DateRange}}
    <p class="dates">{{.}}</p>
{{- end}}
{{- if .Bullets}}
    <ul>
{{- range .Bullets}}
      <li>{{.}}</li>
{{- end}}
    </ul>
{{- end}}
  </div>
{{- end}}
{{- else if .Education}}
{{- range .Education}}
  <div class="entry">
    <h3>{{.School}}</h3>
{{- with .Degree}}
    <p class="degree">{{.}}</p>
{{- end}}
{{- with .DateRange}}
    <p class="dates">{{.}}</p>
{{- end}}
{{- if .Details}}
    <ul>
{{- range .Details}}
      <li>{{.}}</li>
{{- end}}
    </ul>
{{- end}}
  </div>
{{- end}}
{{- else}}
{{- range .Content}}
  <p>{{.}}</p>
{{- end}}
{{- end}}
</section>
{{- end}}
</body>
</html>
`

const professionalCSS = `
body { font-family: Georgia, "Times New Roman", serif; color: #1a1a1a; max-width: 50rem; margin: 2rem auto; line-height: 1.45; }
header { text-align: center; border-bottom: 2px solid #1a1a1a; padding-bottom: 0.75rem; margin-bottom: 1.25rem; }
h1 { margin: 0; font-size: 1.8rem; letter-spacing: 0.05em; }
.contact { margin: 0.4rem 0 0; font-size: 0.85rem; color: #444; }
h2 { font-size: 1.05rem; text-transform: uppercase; letter-spacing: 0.08em; border-bottom: 1px solid #999; padding-bottom: 0.2rem; margin: 1.2rem 0 0.6rem; }
h3 { margin: 0.6rem 0 0.1rem; font-size: 0.95rem; }
.org { font-weight: normal; font-style: italic; }
.org::before { content: "\2014  "; }
.dates, .degree { margin: 0; font-size: 0.8rem; color: #555; }
ul { margin: 0.3rem 0 0.5rem; padding-left: 1.3rem; }
li { margin-bottom: 0.15rem; font-size: 0.9rem; }
p { margin: 0.2rem 0; font-size: 0.9rem; }
@page { size: A4; margin: 18mm; }
`

const modernCSS = `
body { font-family: "Helvetica Neue", Arial, sans-serif; color: #222; max-width: 52rem; margin: 2rem auto; line-height: 1.5; }
header { padding-bottom: 0.75rem; margin-bottom: 1.25rem; }
h1 { margin: 0; font-size: 2rem; font-weight: 700; color: #0b5394; }
.contact { margin: 0.4rem 0 0; font-size: 0.85rem; color: #555; }
h2 { font-size: 0.95rem; text-transform: uppercase; letter-spacing: 0.12em; color: #0b5394; margin: 1.3rem 0 0.5rem; }
h3 { margin: 0.6rem 0 0.1rem; font-size: 0.95rem; }
.org { font-weight: normal; color: #555; }
.org::before { content: "\00b7  "; }
.dates, .degree { margin: 0; font-size: 0.8rem; color: #777; }
ul { margin: 0.3rem 0 0.5rem; padding-left: 1.2rem; list-style: square; }
li { margin-bottom: 0.15rem; font-size: 0.9rem; }
p { margin: 0.2rem 0; font-size: 0.9rem; }
@page { size: A4; margin: 16mm; }
`
