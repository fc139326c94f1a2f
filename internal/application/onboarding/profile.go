package onboarding

// CompanyProfile is the company identity and defaults used when composing emails
type CompanyProfile struct {
	Name     string
	FullName string
	Team     string
	// DefaultCC prefills the CC box of every form
	DefaultCC string

	JoiningFormURL string

	AssetReturnAddress string
	AssetContactName   string
	AssetContactPhone  string
}

// DefaultCompanyProfile returns the profile used when configuration leaves fields blank
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:               "Rapid Innovation",
		FullName:           "Rapid Innovation Pvt. Ltd.",
		Team:               "Team HR",
		DefaultCC:          "hr@rapidinnovation.com",
		JoiningFormURL:     "https://docs.google.com/forms/d/1TVQyWZzwzIGxIB6opxZxk8GJOI_HoF15-4Oa7Q4zEjA/edit?ts=61fb8f9f",
		AssetReturnAddress: "Hotel North 39, Junas Wada, near River Bridge, Mandrem, Goa 403524",
		AssetContactName:   "Armond Fernandes",
		AssetContactPhone:  "9823268663",
	}
}

// WithDefaults fills blank fields from DefaultCompanyProfile
func (p CompanyProfile) WithDefaults() CompanyProfile {
	d := DefaultCompanyProfile()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&p.Name, d.Name)
	fill(&p.FullName, d.FullName)
	fill(&p.Team, d.Team)
	fill(&p.DefaultCC, d.DefaultCC)
	fill(&p.JoiningFormURL, d.JoiningFormURL)
	fill(&p.AssetReturnAddress, d.AssetReturnAddress)
	fill(&p.AssetContactName, d.AssetContactName)
	fill(&p.AssetContactPhone, d.AssetContactPhone)
	return p
}
