package printing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectPDF_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"plain text", []byte("hello, this is not a pdf")},
		{"png header", []byte("\x89PNG\r\n\x1a\n0000")},
		{"truncated pdf", []byte("%PDF-1.4\n%broken")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := InspectPDF(tt.data)
			assert.Nil(t, info)
			var renderErr *RenderError
			require.ErrorAs(t, err, &renderErr)
			assert.Equal(t, ErrCodeInvalidPDF, renderErr.Code)
		})
	}
}

func TestInspectPDF_Accepts(t *testing.T) {
	result, err := NewGofpdfRenderer(nil).Render(context.Background(),
		NewRenderRequest("<html><body><p>Page one</p></body></html>", "Inspect"))
	require.NoError(t, err)

	info, err := InspectPDF(result.PDFData)
	require.NoError(t, err)
	assert.Equal(t, MIMETypePDF, info.MIMEType)
	assert.Equal(t, 1, info.PageCount)
	assert.Equal(t, len(result.PDFData), info.Size)
}
