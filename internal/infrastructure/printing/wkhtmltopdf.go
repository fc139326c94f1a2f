package printing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/domain/printing"
)

const (
	defaultBinaryPath   = "wkhtmltopdf"
	defaultTimeout      = 30 * time.Second
	defaultDPI          = 96
	defaultImageQuality = 94
)

// WkhtmltopdfConfig contains configuration for the wkhtmltopdf renderer
type WkhtmltopdfConfig struct {
	// BinaryPath is the wkhtmltopdf binary; a bare name is looked up in PATH
	BinaryPath     string
	DefaultTimeout time.Duration
	// EnableJavaScript is off unless a letter needs it
	EnableJavaScript bool
	DPI              int
	ImageQuality     int // 0-100
	Logger           *zap.Logger
}

// WkhtmltopdfRenderer pipes the letter HTML through wkhtmltopdf on stdin and
// reads the PDF back from stdout.
type WkhtmltopdfRenderer struct {
	config *WkhtmltopdfConfig
	logger *zap.Logger
}

// NewWkhtmltopdfRenderer creates a new wkhtmltopdf-based PDF renderer.
// The binary is looked up on each Render, so a missing install only fails that call.
func NewWkhtmltopdfRenderer(config *WkhtmltopdfConfig) *WkhtmltopdfRenderer {
	if config == nil {
		config = &WkhtmltopdfConfig{}
	}
	if config.BinaryPath == "" {
		config.BinaryPath = defaultBinaryPath
	}
	if config.DefaultTimeout == 0 {
		config.DefaultTimeout = defaultTimeout
	}
	if config.DPI == 0 {
		config.DPI = defaultDPI
	}
	if config.ImageQuality == 0 {
		config.ImageQuality = defaultImageQuality
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WkhtmltopdfRenderer{
		config: config,
		logger: logger,
	}
}

func resolveBinaryPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return exec.LookPath(path)
}

// Name returns the strategy name
func (r *WkhtmltopdfRenderer) Name() string {
	return StrategyWkhtmltopdf
}

// Render converts HTML content to PDF
func (r *WkhtmltopdfRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	binaryPath, err := resolveBinaryPath(r.config.BinaryPath)
	if err != nil {
		return nil, NewRenderError(ErrCodeBinaryNotFound,
			fmt.Sprintf("wkhtmltopdf binary not found: %s", r.config.BinaryPath), err)
	}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = r.config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	args := r.buildArgs(req)
	r.logger.Debug("executing wkhtmltopdf",
		zap.String("binary", binaryPath),
		zap.Strings("args", args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Stdin = strings.NewReader(req.HTML)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", timeout), err)
		case errors.Is(ctx.Err(), context.Canceled):
			return nil, NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
		}
		r.logger.Warn("wkhtmltopdf failed",
			zap.Error(err),
			zap.String("stderr", stderr.String()))
		return nil, NewRenderError(ErrCodeRenderFailed,
			"wkhtmltopdf execution failed: "+strings.TrimSpace(stderr.String()), err)
	}

	// wkhtmltopdf can exit 0 after a network error on an image; only an empty body is fatal
	data := stdout.Bytes()
	if len(data) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	result := &RenderResult{
		PDFData:        data,
		PageCount:      pageCount(data),
		RenderDuration: time.Since(start),
		Renderer:       r.Name(),
	}
	r.logger.Info("PDF rendered",
		zap.String("renderer", result.Renderer),
		zap.Int("bytes", len(data)),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.RenderDuration))
	return result, nil
}

// buildArgs mirrors the letter page setup: A4, 0.75in margins, UTF-8, no outline.
// Input and output are stdin and stdout.
func (r *WkhtmltopdfRenderer) buildArgs(req *RenderRequest) []string {
	orientation := "Portrait"
	if req.Orientation == printing.OrientationLandscape {
		orientation = "Landscape"
	}

	args := []string{
		"--quiet",
		"--encoding", "UTF-8",
		"--no-outline",
		"--dpi", strconv.Itoa(r.config.DPI),
		"--image-quality", strconv.Itoa(r.config.ImageQuality),
		"--page-size", pageSizeArg(req.PaperSize),
		"--orientation", orientation,
		"--margin-top", inches(req.Margins.Top),
		"--margin-right", inches(req.Margins.Right),
		"--margin-bottom", inches(req.Margins.Bottom),
		"--margin-left", inches(req.Margins.Left),
	}

	if r.config.EnableJavaScript {
		args = append(args, "--enable-javascript")
	} else {
		args = append(args, "--disable-javascript")
	}
	// Letters inline their images as data URIs
	if req.EnableLocalFileAccess {
		args = append(args, "--enable-local-file-access")
	} else {
		args = append(args, "--disable-local-file-access")
	}
	if req.Title != "" {
		args = append(args, "--title", req.Title)
	}

	return append(args, "-", "-")
}

func pageSizeArg(p printing.PaperSize) string {
	if !p.IsValid() {
		return string(printing.PaperSizeA4)
	}
	return string(p)
}

// inches formats a margin for the command line: 0.75 -> "0.75in"
func inches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "in"
}

// Close is a no-op; each Render runs its own process
func (r *WkhtmltopdfRenderer) Close() error {
	return nil
}

var _ PDFRenderer = (*WkhtmltopdfRenderer)(nil)
