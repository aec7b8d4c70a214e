package render

import (
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// PDFRenderer prints the HTML rendering through a headless Chromium
// instance. A browser is launched per render; serve mode is expected to
// render rarely enough that keeping a warm browser is not worth the
// lifecycle handling.
type PDFRenderer struct {
	html        *HTMLRenderer
	browserPath string
	timeout     time.Duration
	logger      *errors.Logger
}

// NewPDFRenderer creates a PDF renderer using the configured browser
// binary, falling back to rod's own lookup when none is configured.
func NewPDFRenderer(cfg config.RenderConfig, logger *errors.Logger) *PDFRenderer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PDFRenderer{
		html:        NewHTMLRenderer(),
		browserPath: cfg.BrowserPath,
		timeout:     timeout,
		logger:      logger,
	}
}

// Render implements the Renderer interface.
func (r *PDFRenderer) Render(doc *types.ParsedResume, style types.RenderStyle) ([]byte, error) {
	htmlContent, err := r.html.Render(doc, style)
	if err != nil {
		return nil, err
	}

	data, err := r.printToPDF(string(htmlContent))
	if err != nil {
		return nil, errors.NewRenderError(errors.ErrCodeRenderFailed,
			"Failed to render PDF document", err)
	}
	return data, nil
}

func (r *PDFRenderer) printToPDF(htmlContent string) ([]byte, error) {
	launch := launcher.New().
		Headless(true).
		NoSandbox(true)

	if r.browserPath != "" {
		launch = launch.Bin(r.browserPath)
	} else if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, err
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, err
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Timeout(r.timeout).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(r.timeout)
	if err := page.SetDocumentContent(htmlContent); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("PDF rendered",
		"bytes", len(data),
		"timeout", r.timeout)

	return data, nil
}
