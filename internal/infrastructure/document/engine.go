package document

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Document template files, each defining "styles" and "body" over the shared layout
const (
	tmplOffer         = "offer.html"
	tmplOfferFullTime = "offer_fulltime.html"
	tmplBasicOffer    = "basic_offer.html"
	tmplCertificate   = "certificate.html"
	tmplAppointment   = "appointment.html"
)

var documentTemplates = []string{
	tmplOffer,
	tmplOfferFullTime,
	tmplBasicOffer,
	tmplCertificate,
	tmplAppointment,
}

// TemplateEngine composes document templates over the shared layout.
// Each document is parsed once into its own clone of the layout set.
type TemplateEngine struct {
	funcMap   template.FuncMap
	templates map[string]*template.Template
}

// NewTemplateEngine parses the embedded layout and document templates
func NewTemplateEngine() (*TemplateEngine, error) {
	e := &TemplateEngine{
		funcMap: template.FuncMap{
			"amount": FormatAmount,
			"words":  AmountInWords,
		},
		templates: make(map[string]*template.Template, len(documentTemplates)),
	}
	base, err := template.New("layout.html").Funcs(e.funcMap).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	for _, name := range documentTemplates {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		tmpl, err := clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		e.templates[name] = tmpl
	}

	return e, nil
}

// Render executes the layout of the named document with data
func (e *TemplateEngine) Render(name string, data any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown document template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.String(), nil
}
