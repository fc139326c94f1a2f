package printing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboarding/backend/internal/domain/printing"
)

func TestNewChromedpRenderer_Defaults(t *testing.T) {
	r := NewChromedpRenderer(nil)
	defer r.Close()

	assert.Equal(t, StrategyChromedp, r.Name())
	assert.Equal(t, defaultChromeTimeout, r.config.DefaultTimeout)
	assert.Equal(t, defaultScale, r.config.Scale)
	assert.NotNil(t, r.allocCtx)
}

func TestChromedpRenderer_BuildPrintParams(t *testing.T) {
	r := NewChromedpRenderer(&ChromedpConfig{Scale: 0.9})
	defer r.Close()

	t.Run("A4 portrait with letter margins", func(t *testing.T) {
		params := r.buildPrintParams(NewRenderRequest("<p>x</p>", ""))

		assert.InDelta(t, 210/25.4, params.paperWidth, 0.001)
		assert.InDelta(t, 297/25.4, params.paperHeight, 0.001)
		assert.Equal(t, 0.75, params.marginTop)
		assert.Equal(t, 0.75, params.marginRight)
		assert.Equal(t, 0.75, params.marginBottom)
		assert.Equal(t, 0.75, params.marginLeft)
		assert.Equal(t, 0.9, params.scale)
		assert.False(t, params.landscape)
	})

	t.Run("letter landscape", func(t *testing.T) {
		req := NewRenderRequest("<p>x</p>", "")
		req.PaperSize = printing.PaperSizeLetter
		req.Orientation = printing.OrientationLandscape
		req.Margins = printing.Margins{Top: 1, Right: 0.5, Bottom: 1, Left: 0.5}

		params := r.buildPrintParams(req)

		assert.InDelta(t, 8.5, params.paperWidth, 0.001)
		assert.InDelta(t, 11, params.paperHeight, 0.001)
		assert.Equal(t, 1.0, params.marginTop)
		assert.Equal(t, 0.5, params.marginLeft)
		assert.True(t, params.landscape)
	})
}

func TestChromedpRenderer_RejectsInvalidRequest(t *testing.T) {
	r := NewChromedpRenderer(nil)
	defer r.Close()

	_, err := r.Render(context.Background(), &RenderRequest{PaperSize: printing.PaperSizeA4})
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
}
