package onboarding

import (
	"strings"

	"github.com/onboarding/backend/internal/domain/shared"
)

// AssetType is the company device an exiting employee returns
type AssetType string

const (
	AssetMacbook       AssetType = "Macbook"
	AssetWindowsLaptop AssetType = "Windows Laptop"
	AssetOther         AssetType = "Other"
)

// AllAssetTypes returns the asset types in form order
func AllAssetTypes() []AssetType {
	return []AssetType{AssetMacbook, AssetWindowsLaptop, AssetOther}
}

// ParseAssetType accepts an asset type name, case-insensitively
func ParseAssetType(s string) (AssetType, error) {
	for _, t := range AllAssetTypes() {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", shared.NewDomainError(shared.CodeValidation, "Unknown asset type: "+s)
}

// NeedsInsurance reports whether the courier shipment must be insured
func (t AssetType) NeedsInsurance() bool {
	return t == AssetMacbook
}

// AccessPlatforms lists the systems whose credentials are revoked on exit
func AccessPlatforms() []string {
	return []string{
		"Company Email",
		"Slack",
		"TeamLogger",
		"Project Management Tools",
		"Internal Drives/Servers",
		"GitHub/GitLab",
		"Software Licenses",
		"VPN Access",
		"Other Platforms",
	}
}

// AccessRemoval is the outcome of the access-removal checklist
type AccessRemoval struct {
	Employee string
	Removed  []string
}

// NewAccessRemoval keeps the checked platforms in checklist order and drops unknown names
func NewAccessRemoval(employee string, checked []string) AccessRemoval {
	selected := make(map[string]bool, len(checked))
	for _, c := range checked {
		selected[strings.TrimSpace(c)] = true
	}

	r := AccessRemoval{Employee: strings.TrimSpace(employee)}
	for _, p := range AccessPlatforms() {
		if selected[p] {
			r.Removed = append(r.Removed, p)
		}
	}
	return r
}

// Complete reports whether at least one platform was checked
func (r AccessRemoval) Complete() bool {
	return len(r.Removed) > 0
}

// Report returns the summary line shown after the checklist is submitted
func (r AccessRemoval) Report() string {
	if !r.Complete() {
		return "No platforms selected for access removal."
	}
	return "Access removed from: " + strings.Join(r.Removed, ", ")
}
