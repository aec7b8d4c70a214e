package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// DOCXRenderer writes a minimal WordprocessingML package: the content
// types manifest, the package relationships, and word/document.xml with
// one paragraph per resume line. Word and LibreOffice both accept this
// shape without a styles part.
type DOCXRenderer struct{}

// NewDOCXRenderer creates a DOCX renderer.
func NewDOCXRenderer() *DOCXRenderer {
	return &DOCXRenderer{}
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Render implements the Renderer interface.
func (r *DOCXRenderer) Render(doc *types.ParsedResume, style types.RenderStyle) ([]byte, error) {
	document := buildDocumentXML(doc, style)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", document},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, errors.NewRenderError(errors.ErrCodeRenderFailed,
				"Failed to render DOCX document", err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, errors.NewRenderError(errors.ErrCodeRenderFailed,
				"Failed to render DOCX document", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, errors.NewRenderError(errors.ErrCodeRenderFailed,
			"Failed to render DOCX document", err)
	}
	return buf.Bytes(), nil
}

// docxWriter accumulates WordprocessingML paragraphs.
type docxWriter struct {
	buf          strings.Builder
	headingColor string
}

func buildDocumentXML(doc *types.ParsedResume, style types.RenderStyle) string {
	w := &docxWriter{}
	if style == types.StyleModern {
		w.headingColor = "0B5394"
	}

	w.buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	if doc.Contact.Name != "" {
		w.heading(doc.Contact.Name, 36)
	}
	if line := contactLine(doc.Contact); line != "" {
		w.paragraph(line, false, false)
	}

	for _, section := range doc.Sections {
		w.heading(section.Title, 26)
		switch {
		case len(section.Jobs) > 0:
			for _, job := range section.Jobs {
				title := job.Title
				if job.Company != "" {
					title += " - " + job.Company
				}
				w.paragraph(title, true, false)
				if job.DateRange != "" {
					w.paragraph(job.DateRange, false, true)
				}
				for _, bullet := range job.Bullets {
					w.bullet(bullet)
				}
			}
		case len(section.Education) > 0:
			for _, edu := range section.Education {
				w.paragraph(edu.School, true, false)
				if edu.Degree != "" {
					w.paragraph(edu.Degree, false, false)
				}
				if edu.DateRange != "" {
					w.paragraph(edu.DateRange, false, true)
				}
				for _, detail := range edu.Details {
					w.bullet(detail)
				}
			}
		default:
			for _, line := range section.Content {
				w.paragraph(line, false, false)
			}
		}
	}

	w.buf.WriteString(`</w:body></w:document>`)
	return w.buf.String()
}

func (w *docxWriter) heading(text string, halfPointSize int) {
	w.buf.WriteString(`<w:p><w:r><w:rPr><w:b/>`)
	if w.headingColor != "" {
		w.buf.WriteString(`<w:color w:val="` + w.headingColor + `"/>`)
	}
	w.buf.WriteString(`<w:sz w:val="` + strconv.Itoa(halfPointSize) + `"/></w:rPr><w:t xml:space="preserve">`)
	w.escape(text)
	w.buf.WriteString(`</w:t></w:r></w:p>`)
}

func (w *docxWriter) paragraph(text string, bold, italic bool) {
	w.buf.WriteString(`<w:p><w:r>`)
	if bold || italic {
		w.buf.WriteString(`<w:rPr>`)
		if bold {
			w.buf.WriteString(`<w:b/>`)
		}
		if italic {
			w.buf.WriteString(`<w:i/>`)
		}
		w.buf.WriteString(`</w:rPr>`)
	}
	w.buf.WriteString(`<w:t xml:space="preserve">`)
	w.escape(text)
	w.buf.WriteString(`</w:t></w:r></w:p>`)
}

func (w *docxWriter) bullet(text string) {
	w.paragraph("• "+text, false, false)
}

func (w *docxWriter) escape(text string) {
	_ = xml.EscapeText(&w.buf, []byte(text))
}
