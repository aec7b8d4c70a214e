package render

import (
	"fmt"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Renderer produces a document in one output format from a parsed resume.
type Renderer interface {
	Render(doc *types.ParsedResume, style types.RenderStyle) ([]byte, error)
}

// SupportedFormats lists the render output formats in display order.
var SupportedFormats = []string{"html", "pdf", "docx"}

// ForFormat returns the renderer for the requested output format.
func ForFormat(format string, cfg config.RenderConfig, logger *errors.Logger) (Renderer, error) {
	switch format {
	case "html":
		return NewHTMLRenderer(), nil
	case "pdf":
		return NewPDFRenderer(cfg, logger), nil
	case "docx":
		return NewDOCXRenderer(), nil
	default:
		return nil, errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Unsupported render format '%s'. Supported formats: %v", format, SupportedFormats), nil)
	}
}

// ContentType returns the MIME type for a render format.
func ContentType(format string) string {
	switch format {
	case "html":
		return "text/html; charset=utf-8"
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
