package document

import (
	"encoding/base64"
	"html/template"
	"io/fs"

	"go.uber.org/zap"
)

// Branding carries the company identity and style constants shared by every letter
type Branding struct {
	CompanyName     string
	CompanyFullName string
	HRManagerName   string
	HRManagerTitle  string

	PrimaryColor   string
	SecondaryColor string
	FontFamily     string
	LineHeight     string

	HeaderImage    string
	FooterImage    string
	SignatureImage string

	ProbationPeriod string
	NoticePeriod    string
}

// DefaultBranding returns the branding used when configuration leaves fields blank
func DefaultBranding() Branding {
	return Branding{
		CompanyName:     "Rapid Innovation",
		CompanyFullName: "Rapid Innovation Pvt. Ltd.",
		HRManagerName:   "Aarushi Sharma",
		HRManagerTitle:  "Assistant Manager HR",
		PrimaryColor:    "#1e3c72",
		SecondaryColor:  "#2a5298",
		FontFamily:      "Arial, sans-serif",
		LineHeight:      "1.6",
		HeaderImage:     "images/header.png",
		FooterImage:     "images/footer.png",
		SignatureImage:  "images/signature.png",
		ProbationPeriod: "3 months",
		NoticePeriod:    "30 days",
	}
}

// WithDefaults fills blank fields from DefaultBranding
func (b Branding) WithDefaults() Branding {
	d := DefaultBranding()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&b.CompanyName, d.CompanyName)
	fill(&b.CompanyFullName, d.CompanyFullName)
	fill(&b.HRManagerName, d.HRManagerName)
	fill(&b.HRManagerTitle, d.HRManagerTitle)
	fill(&b.PrimaryColor, d.PrimaryColor)
	fill(&b.SecondaryColor, d.SecondaryColor)
	fill(&b.FontFamily, d.FontFamily)
	fill(&b.LineHeight, d.LineHeight)
	fill(&b.HeaderImage, d.HeaderImage)
	fill(&b.FooterImage, d.FooterImage)
	fill(&b.SignatureImage, d.SignatureImage)
	fill(&b.ProbationPeriod, d.ProbationPeriod)
	fill(&b.NoticePeriod, d.NoticePeriod)
	return b
}

// style is the branding projected into CSS-typed values for the templates
type style struct {
	PrimaryColor   template.CSS
	SecondaryColor template.CSS
	FontFamily     template.CSS
	LineHeight     template.CSS
}

func (b Branding) style() style {
	return style{
		PrimaryColor:   template.CSS(b.PrimaryColor),
		SecondaryColor: template.CSS(b.SecondaryColor),
		FontFamily:     template.CSS(b.FontFamily),
		LineHeight:     template.CSS(b.LineHeight),
	}
}

// Images are the branding images as inline data URLs
type Images struct {
	Header    template.URL
	Footer    template.URL
	Signature template.URL
}

// LoadImages reads the three branding images from fsys.
// An unreadable image becomes an empty URL rather than an error.
func LoadImages(fsys fs.FS, b Branding, logger *zap.Logger) Images {
	return Images{
		Header:    loadImage(fsys, b.HeaderImage, logger),
		Footer:    loadImage(fsys, b.FooterImage, logger),
		Signature: loadImage(fsys, b.SignatureImage, logger),
	}
}

func loadImage(fsys fs.FS, path string, logger *zap.Logger) template.URL {
	if fsys == nil || path == "" {
		return ""
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		logger.Debug("Branding image unavailable", zap.String("path", path), zap.Error(err))
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
}
