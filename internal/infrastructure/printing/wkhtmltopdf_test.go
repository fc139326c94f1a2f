package printing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboarding/backend/internal/domain/printing"
)

func TestWkhtmltopdfRenderer_BuildArgs(t *testing.T) {
	r := NewWkhtmltopdfRenderer(nil)

	req := NewRenderRequest("<p>x</p>", "Offer Letter")
	args := r.buildArgs(req)

	assert.Equal(t, []string{
		"--quiet",
		"--encoding", "UTF-8",
		"--no-outline",
		"--dpi", "96",
		"--image-quality", "94",
		"--page-size", "A4",
		"--orientation", "Portrait",
		"--margin-top", "0.75in",
		"--margin-right", "0.75in",
		"--margin-bottom", "0.75in",
		"--margin-left", "0.75in",
		"--disable-javascript",
		"--disable-local-file-access",
		"--title", "Offer Letter",
		"-", "-",
	}, args)
}

func TestWkhtmltopdfRenderer_BuildArgs_Options(t *testing.T) {
	r := NewWkhtmltopdfRenderer(&WkhtmltopdfConfig{EnableJavaScript: true, DPI: 300})

	req := NewRenderRequest("<p>x</p>", "")
	req.Orientation = printing.OrientationLandscape
	req.EnableLocalFileAccess = true
	req.Margins = printing.Margins{Top: 1, Right: 0.5, Bottom: 1.25, Left: 0}

	args := r.buildArgs(req)

	assert.Contains(t, args, "Landscape")
	assert.Contains(t, args, "--enable-javascript")
	assert.Contains(t, args, "--enable-local-file-access")
	assert.Contains(t, args, "300")
	assert.Contains(t, args, "1.25in")
	assert.Contains(t, args, "0in")
	assert.NotContains(t, args, "--title")
	assert.Equal(t, []string{"-", "-"}, args[len(args)-2:])
}

func TestWkhtmltopdfRenderer_MissingBinary(t *testing.T) {
	r := NewWkhtmltopdfRenderer(&WkhtmltopdfConfig{BinaryPath: "/nonexistent/wkhtmltopdf"})

	_, err := r.Render(context.Background(), NewRenderRequest("<p>x</p>", ""))
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeBinaryNotFound, renderErr.Code)
}

func TestWkhtmltopdfRenderer_FailingBinary(t *testing.T) {
	r := NewWkhtmltopdfRenderer(&WkhtmltopdfConfig{BinaryPath: "false"})

	_, err := r.Render(context.Background(), NewRenderRequest("<p>x</p>", ""))
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRenderFailed, renderErr.Code)
}

func TestPageCount(t *testing.T) {
	data := []byte("<< /Type /Pages /Count 2 >> << /Type /Page >> << /Type /Page >>")
	assert.Equal(t, 2, pageCount(data))
	assert.Equal(t, 1, pageCount([]byte("garbage")))
}

func TestInches(t *testing.T) {
	assert.Equal(t, "0.75in", inches(0.75))
	assert.Equal(t, "1in", inches(1))
}
