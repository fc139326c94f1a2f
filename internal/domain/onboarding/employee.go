package onboarding

import (
	"strings"
	"time"

	"github.com/onboarding/backend/internal/domain/shared"
)

// Category is the employment category an offer or exit flow is issued for
type Category string

const (
	CategoryIntern     Category = "Intern"
	CategoryFullTime   Category = "Full-time Employee"
	CategoryContractor Category = "Contractor"
)

// IsValid checks if the Category is a valid value
func (c Category) IsValid() bool {
	switch c {
	case CategoryIntern, CategoryFullTime, CategoryContractor:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Slug returns the lower-case, underscore separated form used in file names
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "_")
}

// AllCategories returns all categories in the order they are offered on forms
func AllCategories() []Category {
	return []Category{CategoryIntern, CategoryFullTime, CategoryContractor}
}

// ParseCategory resolves a form or API value into a Category.
// "Full-time" and "full_time" are accepted as aliases of the full-time category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intern":
		return CategoryIntern, nil
	case "full-time employee", "full-time", "full_time", "fulltime":
		return CategoryFullTime, nil
	case "contractor":
		return CategoryContractor, nil
	}
	return "", shared.NewDomainError(shared.CodeValidation, "Unknown employee category: "+s)
}

// Title is the honorific prefixed to an employee's name
type Title string

const (
	TitleNone Title = ""
	TitleMr   Title = "Mr."
	TitleMs   Title = "Ms."
)

// IsValid checks if the Title is a valid value
func (t Title) IsValid() bool {
	switch t {
	case TitleNone, TitleMr, TitleMs:
		return true
	}
	return false
}

// ParseTitle accepts "Mr", "Mr.", "Ms", "Ms." in any case; blank means no honorific
func ParseTitle(s string) (Title, error) {
	switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ".")) {
	case "":
		return TitleNone, nil
	case "mr":
		return TitleMr, nil
	case "ms":
		return TitleMs, nil
	}
	return TitleNone, shared.NewDomainError(shared.CodeValidation, "Unknown title: "+s)
}

// Pronouns is the pronoun set substituted into letter bodies
type Pronouns struct {
	Subject       string // He / She / They
	Possessive    string // his / her / their
	PossessiveCap string // His / Her / Their
	Object        string // him / her / them
}

var (
	MalePronouns    = Pronouns{Subject: "He", Possessive: "his", PossessiveCap: "His", Object: "him"}
	FemalePronouns  = Pronouns{Subject: "She", Possessive: "her", PossessiveCap: "Her", Object: "her"}
	NeutralPronouns = Pronouns{Subject: "They", Possessive: "their", PossessiveCap: "Their", Object: "them"}
)

// PronounsFor selects the pronoun set from the honorific a display name starts with.
// Names without a recognised honorific get the neutral set.
func PronounsFor(displayName string) Pronouns {
	switch {
	case strings.HasPrefix(displayName, string(TitleMr)):
		return MalePronouns
	case strings.HasPrefix(displayName, string(TitleMs)):
		return FemalePronouns
	default:
		return NeutralPronouns
	}
}

// EmployeeRecord is the transient payload a document is generated from
type EmployeeRecord struct {
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Title     Title      `json:"title,omitempty"`
	Category  Category   `json:"category,omitempty"`
}

// DisplayName returns the name as printed on documents, honorific included
func (r EmployeeRecord) DisplayName() string {
	if r.Title == TitleNone {
		return r.Name
	}
	return string(r.Title) + " " + r.Name
}

// Pronouns returns the pronoun set matching the record's display name
func (r EmployeeRecord) Pronouns() Pronouns {
	return PronounsFor(r.DisplayName())
}

// TenureMonths returns the month count between start and end dates.
// The second return value is false when the record has no end date.
func (r EmployeeRecord) TenureMonths() (int, bool) {
	if r.EndDate == nil {
		return 0, false
	}
	return MonthsBetween(r.StartDate, *r.EndDate), true
}

// MonthsBetween counts calendar months from start to end.
// Day-of-month is ignored: Jan 31 to Feb 1 counts as one month.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
