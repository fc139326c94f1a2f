package onboarding

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/onboarding/backend/internal/domain/shared"
)

// DateLayout is the wire format of dates submitted by forms and the API
const DateLayout = "2006-01-02"

// Validation errors surfaced inline to the submitter
var (
	ErrMissingFields    = shared.NewDomainError(shared.CodeValidation, "Please fill in all required fields.")
	ErrInvalidEmail     = shared.NewDomainError(shared.CodeValidation, "Please enter a valid email address.")
	ErrInvalidDateRange = shared.NewDomainError(shared.CodeValidation, "End date must be after start date!")
)

var validate = validator.New()

// ValidateEmail reports whether s is a syntactically valid email address
func ValidateEmail(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required,email") == nil
}

// RequireEmail returns ErrInvalidEmail unless s is a valid address
func RequireEmail(s string) error {
	if !ValidateEmail(s) {
		return ErrInvalidEmail
	}
	return nil
}

// RequireFields returns ErrMissingFields if any value is blank
func RequireFields(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// ParseCCList splits a one-address-per-line list, dropping blank and invalid lines
func ParseCCList(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		addr := strings.TrimSpace(line)
		if addr == "" || !ValidateEmail(addr) {
			continue
		}
		out = append(out, addr)
	}
	return out
}

// ValidateDateRange rejects end dates on or before the start date
func ValidateDateRange(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD form value
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, shared.WrapDomainError(shared.CodeValidation, "Invalid date: "+s, err)
	}
	return t, nil
}

// ParseOptionalDate returns nil for a blank value
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseAmount parses a non-negative whole-unit amount.
// A blank value is zero; thousands separators are tolerated.
func ParseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, shared.WrapDomainError(shared.CodeValidation, "Invalid amount: "+s, err)
	}
	if n < 0 {
		return 0, shared.NewDomainError(shared.CodeValidation, "Amounts cannot be negative")
	}
	return n, nil
}
