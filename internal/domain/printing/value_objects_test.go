package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMargins(t *testing.T) {
	tests := []struct {
		name        string
		top         float64
		right       float64
		bottom      float64
		left        float64
		expectError bool
	}{
		{"valid margins", 0.75, 0.75, 0.75, 0.75, false},
		{"zero margins", 0, 0, 0, 0, false},
		{"max margins", 4, 4, 4, 4, false},
		{"mixed margins", 0.5, 1, 1.5, 2, false},
		{"negative top", -0.1, 1, 1, 1, true},
		{"negative left", 1, 1, 1, -1, true},
		{"exceeds max bottom", 1, 1, 4.5, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margins, err := NewMargins(tt.top, tt.right, tt.bottom, tt.left)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.top, margins.Top)
				assert.Equal(t, tt.right, margins.Right)
				assert.Equal(t, tt.bottom, margins.Bottom)
				assert.Equal(t, tt.left, margins.Left)
			}
		})
	}
}

func TestDefaultMargins(t *testing.T) {
	m := DefaultMargins()
	assert.Equal(t, UniformMargins(0.75), m)
	assert.False(t, m.IsZero())
	assert.True(t, m.Equals(Margins{Top: 0.75, Right: 0.75, Bottom: 0.75, Left: 0.75}))
	assert.True(t, Margins{}.IsZero())

	top, _, _, left := m.Millimeters()
	assert.InDelta(t, 19.05, top, 0.001)
	assert.InDelta(t, 19.05, left, 0.001)
}
