package printing

import "github.com/onboarding/backend/internal/domain/shared"

// MillimetersPerInch converts between the two margin units
const MillimetersPerInch = 25.4

// DefaultMarginInches is applied on every side unless a request overrides it
const DefaultMarginInches = 0.75

// Margins represents the page margins in inches
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// NewMargins creates a new Margins value object
func NewMargins(top, right, bottom, left float64) (Margins, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot be negative")
	}
	if top > 4 || right > 4 || bottom > 4 || left > 4 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot exceed 4 inches")
	}
	return Margins{
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Left:   left,
	}, nil
}

// UniformMargins returns the same margin on every side
func UniformMargins(inches float64) Margins {
	return Margins{Top: inches, Right: inches, Bottom: inches, Left: inches}
}

// DefaultMargins returns the default page margins for letters
func DefaultMargins() Margins {
	return UniformMargins(DefaultMarginInches)
}

// IsZero returns true if all margins are zero
func (m Margins) IsZero() bool {
	return m.Top == 0 && m.Right == 0 && m.Bottom == 0 && m.Left == 0
}

// Equals checks if two Margins are equal
func (m Margins) Equals(other Margins) bool {
	return m.Top == other.Top &&
		m.Right == other.Right &&
		m.Bottom == other.Bottom &&
		m.Left == other.Left
}

// Millimeters returns the margins converted to millimeters (top, right, bottom, left)
func (m Margins) Millimeters() (top, right, bottom, left float64) {
	return m.Top * MillimetersPerInch, m.Right * MillimetersPerInch,
		m.Bottom * MillimetersPerInch, m.Left * MillimetersPerInch
}
