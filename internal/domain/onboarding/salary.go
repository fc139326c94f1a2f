package onboarding

import (
	"fmt"

	"github.com/onboarding/backend/internal/domain/shared"
)

// MonthsPerYear converts monthly amounts to annual ones
const MonthsPerYear = 12

// MaxMonthlyAmount caps every component and the PF contribution so totals stay within int64
const MaxMonthlyAmount int64 = 1_000_000_000_000

// SalaryComponent names one line of the compensation table
type SalaryComponent string

const (
	ComponentBasic             SalaryComponent = "Basic Salary"
	ComponentHRA               SalaryComponent = "HRA"
	ComponentSpecialAllowance  SalaryComponent = "Special Allowance"
	ComponentMedicalAllowance  SalaryComponent = "Medical Allowance"
	ComponentBooksPeriodical   SalaryComponent = "Books & Periodical"
	ComponentHealthClub        SalaryComponent = "Health Club Facility"
	ComponentInternetTelephone SalaryComponent = "Internet & Telephone"
)

// Components returns the salary components in table order
func Components() []SalaryComponent {
	return []SalaryComponent{
		ComponentBasic,
		ComponentHRA,
		ComponentSpecialAllowance,
		ComponentMedicalAllowance,
		ComponentBooksPeriodical,
		ComponentHealthClub,
		ComponentInternetTelephone,
	}
}

// String returns the label printed in the compensation table
func (c SalaryComponent) String() string {
	return string(c)
}

// Annual converts a monthly amount to its annual value
func Annual(monthly int64) int64 {
	return monthly * MonthsPerYear
}

// SalaryLine is one component with its monthly amount in whole currency units
type SalaryLine struct {
	Component SalaryComponent `json:"component"`
	Monthly   int64           `json:"monthly"`
}

// Annual returns the line's annual amount
func (l SalaryLine) Annual() int64 {
	return Annual(l.Monthly)
}

// SalaryBreakdown is the ordered set of salary components plus the employer PF contribution
type SalaryBreakdown struct {
	Lines     []SalaryLine `json:"lines"`
	PFMonthly int64        `json:"pf_monthly"`
}

// NewSalaryBreakdown builds a breakdown in table order.
// Components missing from monthly are zero; negative amounts and amounts above
// MaxMonthlyAmount are rejected.
func NewSalaryBreakdown(monthly map[SalaryComponent]int64, pfMonthly int64) (*SalaryBreakdown, error) {
	for component, amount := range monthly {
		if !isKnownComponent(component) {
			return nil, shared.NewDomainError(shared.CodeValidation, fmt.Sprintf("Unknown salary component: %s", component))
		}
		if amount < 0 {
			return nil, shared.NewDomainError(shared.CodeValidation, fmt.Sprintf("%s cannot be negative", component))
		}
		if amount > MaxMonthlyAmount {
			return nil, amountTooLarge(string(component))
		}
	}
	if pfMonthly < 0 {
		return nil, shared.NewDomainError(shared.CodeValidation, "PF Employer Contribution cannot be negative")
	}
	if pfMonthly > MaxMonthlyAmount {
		return nil, amountTooLarge("PF Employer Contribution")
	}

	components := Components()
	lines := make([]SalaryLine, 0, len(components))
	for _, component := range components {
		lines = append(lines, SalaryLine{Component: component, Monthly: monthly[component]})
	}
	return &SalaryBreakdown{Lines: lines, PFMonthly: pfMonthly}, nil
}

func amountTooLarge(label string) error {
	return shared.NewDomainError(shared.CodeValidation, fmt.Sprintf("%s cannot exceed %d per month", label, MaxMonthlyAmount))
}

// DefaultSalaryBreakdown returns the amounts pre-filled on the offer form
func DefaultSalaryBreakdown() *SalaryBreakdown {
	b, _ := NewSalaryBreakdown(map[SalaryComponent]int64{
		ComponentBasic:             19934,
		ComponentHRA:               9967,
		ComponentSpecialAllowance:  4716,
		ComponentMedicalAllowance:  1250,
		ComponentBooksPeriodical:   500,
		ComponentHealthClub:        1000,
		ComponentInternetTelephone: 2500,
	}, 1800)
	return b
}

func isKnownComponent(c SalaryComponent) bool {
	for _, known := range Components() {
		if c == known {
			return true
		}
	}
	return false
}

// Monthly returns the monthly amount of a component, zero if absent
func (b *SalaryBreakdown) Monthly(c SalaryComponent) int64 {
	for _, line := range b.Lines {
		if line.Component == c {
			return line.Monthly
		}
	}
	return 0
}

// GrossMonthly is the sum of all component monthly amounts
func (b *SalaryBreakdown) GrossMonthly() int64 {
	var sum int64
	for _, line := range b.Lines {
		sum += line.Monthly
	}
	return sum
}

// GrossAnnual is GrossMonthly × 12
func (b *SalaryBreakdown) GrossAnnual() int64 {
	return Annual(b.GrossMonthly())
}

// PFAnnual is the employer PF contribution × 12
func (b *SalaryBreakdown) PFAnnual() int64 {
	return Annual(b.PFMonthly)
}

// TotalMonthly is gross CTC plus the employer PF contribution
func (b *SalaryBreakdown) TotalMonthly() int64 {
	return b.GrossMonthly() + b.PFMonthly
}

// TotalAnnual is TotalMonthly × 12
func (b *SalaryBreakdown) TotalAnnual() int64 {
	return Annual(b.TotalMonthly())
}

// SalaryRow is a precomputed table row
type SalaryRow struct {
	Label   string
	Monthly int64
	Annual  int64
}

// SalaryTable holds every figure the compensation table prints
type SalaryTable struct {
	Components []SalaryRow
	Gross      SalaryRow
	PF         SalaryRow
	Total      SalaryRow
}

// Table computes the rows of the compensation table
func (b *SalaryBreakdown) Table() SalaryTable {
	rows := make([]SalaryRow, 0, len(b.Lines))
	for _, line := range b.Lines {
		rows = append(rows, SalaryRow{Label: line.Component.String(), Monthly: line.Monthly, Annual: line.Annual()})
	}
	return SalaryTable{
		Components: rows,
		Gross:      SalaryRow{Label: "Gross CTC", Monthly: b.GrossMonthly(), Annual: b.GrossAnnual()},
		PF:         SalaryRow{Label: "PF Employer Contribution", Monthly: b.PFMonthly, Annual: b.PFAnnual()},
		Total:      SalaryRow{Label: "Total CTC", Monthly: b.TotalMonthly(), Annual: b.TotalAnnual()},
	}
}
