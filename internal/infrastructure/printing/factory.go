package printing

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Strategy names accepted in configuration
const (
	StrategyWkhtmltopdf = "wkhtmltopdf"
	StrategyChromedp    = "chromedp"
	StrategyGofpdf      = "gofpdf"
)

// DefaultStrategies is the chain order used when none is configured
func DefaultStrategies() []string {
	return []string{StrategyWkhtmltopdf, StrategyChromedp, StrategyGofpdf}
}

// IsKnownStrategy reports whether name selects a renderer
func IsKnownStrategy(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyWkhtmltopdf, StrategyChromedp, StrategyGofpdf:
		return true
	}
	return false
}

// ChainConfig configures the renderer chain
type ChainConfig struct {
	// Strategies in the order they are tried
	Strategies []string
	// Timeout per backend attempt
	Timeout time.Duration
	// WkhtmltopdfPath is the wkhtmltopdf binary (default: looked up in PATH)
	WkhtmltopdfPath string
	// ChromeRemoteURL connects to a running Chrome instead of launching one
	ChromeRemoteURL string
	// ChromeNoSandbox is required when Chrome runs as root in containers
	ChromeNoSandbox bool
}

// NewRendererChain builds a FallbackRenderer from configuration.
// An empty strategy list uses DefaultStrategies.
func NewRendererChain(cfg ChainConfig, logger *zap.Logger) (*FallbackRenderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	strategies := cfg.Strategies
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}

	renderers := make([]PDFRenderer, 0, len(strategies))
	seen := make(map[string]bool, len(strategies))
	for _, raw := range strategies {
		name := strings.ToLower(strings.TrimSpace(raw))
		if seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case StrategyWkhtmltopdf:
			renderers = append(renderers, NewWkhtmltopdfRenderer(&WkhtmltopdfConfig{
				BinaryPath:     cfg.WkhtmltopdfPath,
				DefaultTimeout: cfg.Timeout,
				Logger:         logger,
			}))
		case StrategyChromedp:
			renderers = append(renderers, NewChromedpRenderer(&ChromedpConfig{
				DefaultTimeout: cfg.Timeout,
				RemoteURL:      cfg.ChromeRemoteURL,
				NoSandbox:      cfg.ChromeNoSandbox,
				Logger:         logger,
			}))
		case StrategyGofpdf:
			renderers = append(renderers, NewGofpdfRenderer(logger))
		default:
			for _, r := range renderers {
				_ = r.Close()
			}
			return nil, fmt.Errorf("unknown PDF strategy %q", raw)
		}
	}

	logger.Info("PDF renderer chain ready", zap.Strings("strategies", strategies))
	return NewFallbackRenderer(logger, renderers...), nil
}
