package printing

import (
	"bytes"
	"context"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/domain/printing"
)

const (
	gofpdfFont       = "Helvetica"
	gofpdfFontSize   = 11
	gofpdfLineHeight = 0.22 // inches
)

var (
	pageBreakPattern = regexp.MustCompile(`<div[^>]*page-break-before:\s*always[^>]*>\s*</div>`)
	blockEndPattern  = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|h[1-6]|li|tr|ul|ol|table)>`)
	cellEndPattern   = regexp.MustCompile(`(?i)</t[dh]>`)
	spacePattern     = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// GofpdfRenderer lays out the text of a letter with gofpdf.
// It needs no external binary or browser; styling, tables and images are dropped.
type GofpdfRenderer struct {
	policy *bluemonday.Policy
	logger *zap.Logger
}

// NewGofpdfRenderer creates the text-only renderer
func NewGofpdfRenderer(logger *zap.Logger) *GofpdfRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GofpdfRenderer{
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// Name returns the strategy name
func (r *GofpdfRenderer) Name() string {
	return StrategyGofpdf
}

// Render converts the text content of the HTML to PDF
func (r *GofpdfRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
	}

	startTime := time.Now()

	orientation := "P"
	if req.Orientation == printing.OrientationLandscape {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "in", pageSizeArg(req.PaperSize), "")
	pdf.SetMargins(req.Margins.Left, req.Margins.Top, req.Margins.Right)
	pdf.SetAutoPageBreak(true, req.Margins.Bottom)
	if req.Title != "" {
		pdf.SetTitle(req.Title, true)
	}
	pdf.SetFont(gofpdfFont, "", gofpdfFontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, pageText := range r.extractPages(req.HTML) {
		pdf.AddPage()
		for _, para := range pageText {
			pdf.MultiCell(0, gofpdfLineHeight, tr(para), "", "L", false)
			pdf.Ln(gofpdfLineHeight / 2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "gofpdf output failed", err)
	}

	pdfData := buf.Bytes()
	renderDuration := time.Since(startTime)

	r.logger.Info("PDF rendered successfully",
		zap.String("renderer", r.Name()),
		zap.Int("bytes", len(pdfData)),
		zap.Int("pages", pdf.PageCount()),
		zap.Duration("duration", renderDuration))

	return &RenderResult{
		PDFData:        pdfData,
		PageCount:      pdf.PageCount(),
		RenderDuration: renderDuration,
		Renderer:       r.Name(),
	}, nil
}

// extractPages splits the document on page-break markers and returns the
// non-empty text paragraphs of each page
func (r *GofpdfRenderer) extractPages(doc string) [][]string {
	var pages [][]string
	for _, chunk := range pageBreakPattern.Split(doc, -1) {
		marked := blockEndPattern.ReplaceAllString(chunk, "$0\n")
		marked = cellEndPattern.ReplaceAllString(marked, "$0 ")
		text := html.UnescapeString(r.policy.Sanitize(marked))

		var paras []string
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(spacePattern.ReplaceAllString(line, " "))
			if line != "" {
				paras = append(paras, line)
			}
		}
		if len(paras) > 0 {
			pages = append(pages, paras)
		}
	}
	if len(pages) == 0 {
		pages = [][]string{{}}
	}
	return pages
}

// Close releases resources (no-op for gofpdf)
func (r *GofpdfRenderer) Close() error {
	return nil
}

// Ensure GofpdfRenderer implements PDFRenderer
var _ PDFRenderer = (*GofpdfRenderer)(nil)
