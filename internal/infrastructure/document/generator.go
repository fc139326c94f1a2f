package document

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/domain/shared"
)

// Placeholders in the plain-text appointment template
const (
	appointmentNameToken     = "Naman Nagi"
	appointmentPositionToken = "Associate Engineer"
	appointmentDateToken     = "18th June 2025"
)

// DefaultAppointmentTemplate is the template path used when none is configured
const DefaultAppointmentTemplate = "appointment_letter.txt"

// offerResponseDays is how long a candidate has to return the basic offer
const offerResponseDays = 7

// ErrTemplateNotFound is returned when the appointment template resource is missing
var ErrTemplateNotFound = shared.NewDomainError(shared.CodeTemplateNotFound, "appointment_letter.txt file not found!")

// Rendered is a generated letter, owned by the caller and never cached
type Rendered struct {
	Kind           onboarding.DocumentKind `json:"kind"`
	Title          string                  `json:"title"`
	HTML           string                  `json:"html"`
	AttachmentName string                  `json:"attachment_name"`
}

// Options configures a Generator
type Options struct {
	// Assets holds the branding images and the appointment template
	Assets              fs.FS
	Branding            Branding
	AppointmentTemplate string
	Clock               func() time.Time
	Logger              *zap.Logger
}

// Generator builds self-contained HTML letters.
// It holds no per-call state: images and the appointment template are read on every call.
type Generator struct {
	assets              fs.FS
	branding            Branding
	appointmentTemplate string
	clock               func() time.Time
	logger              *zap.Logger
	engine              *TemplateEngine
	converter           *Converter
}

// NewGenerator creates a document generator
func NewGenerator(opts Options) (*Generator, error) {
	engine, err := NewTemplateEngine()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		assets:              opts.Assets,
		branding:            opts.Branding.WithDefaults(),
		appointmentTemplate: opts.AppointmentTemplate,
		clock:               opts.Clock,
		logger:              opts.Logger,
		engine:              engine,
	}
	if g.appointmentTemplate == "" {
		g.appointmentTemplate = DefaultAppointmentTemplate
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	g.converter = NewConverter("ACCEPTED AND AGREED TO:", g.branding.CompanyName, g.branding.HRManagerTitle)

	return g, nil
}

// Branding returns the branding the generator renders with
func (g *Generator) Branding() Branding {
	return g.branding
}

// page is the data every layout slot reads
type page struct {
	Title      string
	Brand      Branding
	Style      style
	Images     Images
	AcceptedBy string
}

func (g *Generator) newPage(title, acceptedBy string) page {
	return page{
		Title:      title,
		Brand:      g.branding,
		Style:      g.branding.style(),
		Images:     LoadImages(g.assets, g.branding, g.logger),
		AcceptedBy: acceptedBy,
	}
}

type offerData struct {
	page
	Heading     string
	Name        string
	Position    string
	Role        string
	Engagement  string
	StartDate   string
	Salary      *onboarding.SalaryTable
	Placeholder string
}

// OfferLetter renders the offer for the record's category.
// Full-time offers span two pages and print the salary breakdown; a nil
// breakdown prints a placeholder instead of the CTC and omits the table.
func (g *Generator) OfferLetter(rec onboarding.EmployeeRecord, salary *onboarding.SalaryBreakdown) (*Rendered, error) {
	name := rec.DisplayName()
	data := offerData{
		Name:        name,
		Position:    rec.Position,
		StartDate:   FormatLetterDate(rec.StartDate),
		Placeholder: PlaceholderUnspecified,
	}

	tmpl := tmplOffer
	switch rec.Category {
	case onboarding.CategoryFullTime:
		tmpl = tmplOfferFullTime
		data.Heading = "Offer Letter"
		if salary != nil {
			table := salary.Table()
			data.Salary = &table
		}
	case onboarding.CategoryContractor:
		data.Heading = "Contract Letter"
		data.Role = "Contractor"
		data.Engagement = "contract"
	default:
		data.Heading = "Internship Letter"
		data.Role = "Intern"
		data.Engagement = "internship"
	}
	data.page = g.newPage(data.Heading+" - "+name, name)

	return g.render(tmpl, data.Title, data, onboarding.KindOffer, onboarding.OfferAttachmentName(categoryOrIntern(rec.Category), rec.Name))
}

func categoryOrIntern(c onboarding.Category) onboarding.Category {
	if c.IsValid() {
		return c
	}
	return onboarding.CategoryIntern
}

type basicOfferData struct {
	page
	Name      string
	Position  string
	StartDate string
	IssuedOn  string
	RespondBy string
	AnnualCTC int64
}

// BasicOfferLetter renders the single-template offer with terms and an acceptance section.
// A zero annualCTC omits the CTC line.
func (g *Generator) BasicOfferLetter(rec onboarding.EmployeeRecord, annualCTC int64) (*Rendered, error) {
	now := g.clock()
	name := rec.DisplayName()
	data := basicOfferData{
		page:      g.newPage("Offer Letter - "+name, ""),
		Name:      name,
		Position:  rec.Position,
		StartDate: FormatLetterDate(rec.StartDate),
		IssuedOn:  FormatLetterDate(now),
		RespondBy: FormatLetterDate(now.AddDate(0, 0, offerResponseDays)),
		AnnualCTC: annualCTC,
	}
	return g.render(tmplBasicOffer, data.Title, data, onboarding.KindOffer, onboarding.OfferAttachmentName(categoryOrIntern(rec.Category), rec.Name))
}

type certificateData struct {
	page
	Mode      onboarding.CertificateMode
	Name      string
	Position  string
	StartDate string
	EndDate   string
	IssuedOn  string
	Pronouns  onboarding.Pronouns
}

// Certificate renders an experience letter or internship certificate.
// A missing end date prints a placeholder.
func (g *Generator) Certificate(rec onboarding.EmployeeRecord, mode onboarding.CertificateMode) (*Rendered, error) {
	if !mode.IsValid() {
		mode = onboarding.CertificateStandard
	}

	name := rec.DisplayName()
	endDate := PlaceholderUnspecified
	if rec.EndDate != nil {
		endDate = FormatTenureDate(*rec.EndDate)
	}
	if months, ok := rec.TenureMonths(); ok {
		g.logger.Debug("Certificate tenure",
			zap.String("mode", string(mode)),
			zap.Int("months", months),
		)
	}

	data := certificateData{
		page:      g.newPage(mode.Label()+" - "+name, ""),
		Mode:      mode,
		Name:      name,
		Position:  rec.Position,
		StartDate: FormatTenureDate(rec.StartDate),
		EndDate:   endDate,
		IssuedOn:  FormatLetterDate(g.clock()),
		Pronouns:  onboarding.PronounsFor(name),
	}
	return g.render(tmplCertificate, data.Title, data, mode.Kind(), mode.AttachmentName())
}

type appointmentData struct {
	page
	Body template.HTML
}

// AppointmentLetter fills the plain-text appointment template and converts it to HTML.
// A missing template file fails the call with ErrTemplateNotFound and no output.
func (g *Generator) AppointmentLetter(rec onboarding.EmployeeRecord) (*Rendered, error) {
	text, err := g.readAppointmentTemplate()
	if err != nil {
		return nil, err
	}

	name := rec.DisplayName()
	text = strings.ReplaceAll(text, appointmentNameToken, name)
	text = strings.ReplaceAll(text, appointmentPositionToken, rec.Position)
	text = strings.ReplaceAll(text, appointmentDateToken, FormatLetterDate(rec.StartDate))

	data := appointmentData{
		page: g.newPage("Appointment Letter - "+name, name),
		Body: template.HTML(g.converter.Convert(text)),
	}
	return g.render(tmplAppointment, data.Title, data, onboarding.KindAppointment, onboarding.AppointmentAttachmentName(rec.Name))
}

func (g *Generator) readAppointmentTemplate() (string, error) {
	if g.assets == nil {
		return "", ErrTemplateNotFound
	}
	content, err := fs.ReadFile(g.assets, g.appointmentTemplate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.logger.Warn("Appointment template missing", zap.String("path", g.appointmentTemplate), zap.Error(err))
			return "", ErrTemplateNotFound
		}
		return "", fmt.Errorf("read appointment template: %w", err)
	}
	return string(content), nil
}

func (g *Generator) render(tmpl, title string, data any, kind onboarding.DocumentKind, attachment string) (*Rendered, error) {
	out, err := g.engine.Render(tmpl, data)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Document generated",
		zap.String("kind", kind.String()),
		zap.String("template", tmpl),
		zap.Int("bytes", len(out)),
	)

	return &Rendered{
		Kind:           kind,
		Title:          title,
		HTML:           out,
		AttachmentName: attachment,
	}, nil
}
