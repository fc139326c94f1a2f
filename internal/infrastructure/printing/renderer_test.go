package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboarding/backend/internal/domain/printing"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      *RenderRequest
		wantCode string
	}{
		{"nil request", nil, ErrCodeInvalidHTML},
		{"empty HTML", &RenderRequest{PaperSize: printing.PaperSizeA4}, ErrCodeInvalidHTML},
		{"whitespace HTML", &RenderRequest{HTML: " \n\t ", PaperSize: printing.PaperSizeA4}, ErrCodeInvalidHTML},
		{"invalid paper size", &RenderRequest{HTML: "<p>x</p>", PaperSize: "B5"}, ErrCodeInvalidPaperSize},
		{"valid request", NewRenderRequest("<p>x</p>", "Offer"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var renderErr *RenderError
			require.ErrorAs(t, err, &renderErr)
			assert.Equal(t, tt.wantCode, renderErr.Code)
		})
	}
}

func TestNewRenderRequest_Defaults(t *testing.T) {
	req := NewRenderRequest("<p>Hello</p>", "Offer Letter")

	assert.Equal(t, printing.PaperSizeA4, req.PaperSize)
	assert.Equal(t, printing.OrientationPortrait, req.Orientation)
	assert.Equal(t, printing.UniformMargins(0.75), req.Margins)
	assert.Equal(t, "Offer Letter", req.Title)
	assert.False(t, req.EnableLocalFileAccess)
}

func TestRenderError(t *testing.T) {
	cause := assert.AnError
	err := NewRenderError(ErrCodeRenderFailed, "render failed", cause)

	assert.Equal(t, "render failed: "+cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "plain", NewRenderError(ErrCodeRenderFailed, "plain", nil).Error())
}
