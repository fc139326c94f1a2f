package printing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/infrastructure/telemetry"
)

// FallbackRenderer tries each renderer in order and returns the first success unchanged.
// When every renderer fails it returns ALL_BACKENDS_FAILED and no result.
type FallbackRenderer struct {
	renderers []PDFRenderer
	logger    *zap.Logger
}

// NewFallbackRenderer creates a chain over renderers, tried in the given order
func NewFallbackRenderer(logger *zap.Logger, renderers ...PDFRenderer) *FallbackRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackRenderer{
		renderers: renderers,
		logger:    logger,
	}
}

// Name returns the strategy names joined in chain order
func (f *FallbackRenderer) Name() string {
	names := make([]string, 0, len(f.renderers))
	for _, r := range f.renderers {
		names = append(names, r.Name())
	}
	return "fallback(" + strings.Join(names, ",") + ")"
}

// Strategies returns the renderer names in the order they are tried
func (f *FallbackRenderer) Strategies() []string {
	names := make([]string, 0, len(f.renderers))
	for _, r := range f.renderers {
		names = append(names, r.Name())
	}
	return names
}

// Render converts HTML to PDF with the first renderer that succeeds
func (f *FallbackRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if len(f.renderers) == 0 {
		return nil, NewRenderError(ErrCodeAllBackendsFailed, "no PDF backends configured", nil)
	}

	ctx, span := telemetry.StartSpan(ctx, "pdf.render",
		telemetry.WithAttribute(telemetry.SpanAttrDocumentTitle, req.Title))
	defer span.End()

	var errs []error
	for i, r := range f.renderers {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		result, err := f.try(ctx, r, req)
		if err == nil {
			telemetry.SetAttribute(span, telemetry.SpanAttrRenderer, r.Name())
			if i > 0 {
				f.logger.Info("PDF rendered by fallback backend",
					zap.String("renderer", r.Name()),
					zap.Int("attempt", i+1))
			}
			return result, nil
		}

		f.logger.Warn("PDF backend failed, trying next",
			zap.String("renderer", r.Name()),
			zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))
	}

	err := NewRenderError(ErrCodeAllBackendsFailed, "all PDF backends failed", errors.Join(errs...))
	telemetry.RecordError(span, err)
	f.logger.Error("PDF conversion failed", zap.Error(err))
	return nil, err
}

func (f *FallbackRenderer) try(ctx context.Context, r PDFRenderer, req *RenderRequest) (*RenderResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "pdf.render."+r.Name(),
		telemetry.WithAttribute(telemetry.SpanAttrRenderer, r.Name()))
	defer span.End()

	result, err := r.Render(ctx, req)
	if err == nil && (result == nil || len(result.PDFData) == 0) {
		err = NewRenderError(ErrCodeRenderFailed, "renderer returned no PDF data", nil)
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrBytes, len(result.PDFData))
	return result, nil
}

// Close closes every renderer in the chain
func (f *FallbackRenderer) Close() error {
	var errs []error
	for _, r := range f.renderers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ensure FallbackRenderer implements PDFRenderer
var _ PDFRenderer = (*FallbackRenderer)(nil)
