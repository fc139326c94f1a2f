package onboarding

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/infrastructure/document"
	"github.com/onboarding/backend/internal/infrastructure/mail"
)

//go:embed templates/*.html
var emailTemplates embed.FS

// offerEmailDateLayout is the start date format used in offer emails
const offerEmailDateLayout = "January 02, 2006"

// Platform is a system a new joiner is enrolled in
type Platform struct {
	Name        string
	Description string
}

// EnrollmentPlatforms returns the platforms listed in the welcome email
func EnrollmentPlatforms() []Platform {
	return []Platform{
		{Name: "Gmail/Email", Description: "Official company email ID (already created)"},
		{Name: "Slack", Description: "Communication and collaboration platform"},
		{Name: "TeamLogger", Description: "Time tracking and work management"},
		{Name: "Razorpay", Description: "Payment and expense management (if applicable)"},
	}
}

// Composer renders the subject and HTML body of every workflow email
type Composer struct {
	tmpl    *template.Template
	profile CompanyProfile
}

// NewComposer parses the embedded email templates
func NewComposer(profile CompanyProfile) (*Composer, error) {
	profile = profile.WithDefaults()

	tmpl, err := template.New("emails").Funcs(template.FuncMap{
		"company": func() CompanyProfile { return profile },
	}).ParseFS(emailTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	return &Composer{tmpl: tmpl, profile: profile}, nil
}

// Profile returns the company profile the composer renders with
func (c *Composer) Profile() CompanyProfile {
	return c.profile
}

func (c *Composer) render(name, subject string, data any) (*mail.Message, error) {
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return &mail.Message{Subject: subject, HTMLBody: buf.String()}, nil
}

// TestEmail is sent to check the SMTP settings
func (c *Composer) TestEmail() (*mail.Message, error) {
	return c.render("email_test", "Test Email - "+c.profile.Name+" Onboarding System", nil)
}

type personView struct {
	Name     string
	Position string
}

// DocumentRequest asks a new joiner for their joining documents
func (c *Composer) DocumentRequest(category onboarding.Category, name, position string) (*mail.Message, error) {
	view := personView{Name: name, Position: position}
	prefix := c.profile.Name + " - Important Documents Required - "
	if category == onboarding.CategoryIntern {
		return c.render("email_documents_intern", prefix+`"`+position+`" Intern`, view)
	}
	return c.render("email_documents_full_time", prefix+position, view)
}

type offerView struct {
	Name      string
	Position  string
	StartDate string
}

// OfferEmail accompanies the offer letter PDF
func (c *Composer) OfferEmail(draft *onboarding.OfferDraft) (*mail.Message, error) {
	rec := draft.Record
	view := offerView{
		Name:      rec.Name,
		Position:  rec.Position,
		StartDate: rec.StartDate.Format(offerEmailDateLayout),
	}

	switch rec.Category {
	case onboarding.CategoryFullTime:
		return c.render("email_offer_full_time", c.profile.Name+" - Offer letter - "+rec.Position, view)
	case onboarding.CategoryContractor:
		return c.render("email_offer_contractor", c.profile.Name+" - Contractor's Agreement - "+rec.Name, view)
	default:
		return c.render("email_offer_intern", c.profile.Name+` - Letter of Internship - "`+rec.Position+`" Intern`, view)
	}
}

// AppointmentUpload wraps a free-text message sent with an uploaded appointment letter
func (c *Composer) AppointmentUpload(subject, message string) *mail.Message {
	return &mail.Message{Subject: subject, HTMLBody: mail.FormatPlainBody(message)}
}

// DefaultAppointmentSubject prefills the upload form
func (c *Composer) DefaultAppointmentSubject() string {
	return "Appointment Letter - " + c.profile.Name
}

// DefaultAppointmentMessage prefills the upload form
func (c *Composer) DefaultAppointmentMessage() string {
	return "Dear Employee,\n\n" +
		"Please find attached your appointment letter for your position at " + c.profile.Name + ".\n\n" +
		"We are excited to have you join our team!\n\n" +
		"Best regards,\nHR Team\n" + c.profile.Name
}

type welcomeView struct {
	Name      string
	FormURL   string
	Platforms []Platform
}

// Welcome greets a new joiner with the joining form and the platforms they will be enrolled in.
// An empty formURL uses the configured joining form.
func (c *Composer) Welcome(name, formURL string) (*mail.Message, error) {
	if strings.TrimSpace(formURL) == "" {
		formURL = c.profile.JoiningFormURL
	}
	return c.render("email_welcome", "Welcome On Board - "+name, welcomeView{
		Name:      name,
		FormURL:   formURL,
		Platforms: EnrollmentPlatforms(),
	})
}

// BGVDetails are the candidate-provided facts sent to a previous employer
type BGVDetails struct {
	Name        string
	EmployeeID  string
	Designation string
	Period      string
	Manager     string
}

type bgvRow struct {
	Label string
	Note  string
	Value string
}

type bgvView struct {
	Name string
	Rows []bgvRow
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return document.PlaceholderUnspecified
	}
	return s
}

// BackgroundVerification asks a previous employer's HR to verify the candidate's details
func (c *Composer) BackgroundVerification(d BGVDetails) (*mail.Message, error) {
	unspecified := document.PlaceholderUnspecified
	rows := []bgvRow{
		{Label: "Employee Name", Value: d.Name},
		{Label: "Employee ID", Value: orUnspecified(d.EmployeeID)},
		{Label: "Designation", Note: "In case of a mismatch, please clarify with reason", Value: d.Designation},
		{Label: "Period of Employment", Value: d.Period},
		{Label: "Reporting to", Note: "In case of a mismatch, please confirm if the employee ever reported to the stated supervisor-directly or indirectly", Value: orUnspecified(d.Manager)},
		{Label: "Character & Conduct", Value: unspecified},
		{Label: "Reason for Leaving", Value: unspecified},
		{Label: "Eligible for rehire", Note: "If No, kindly specify the reason", Value: unspecified},
		{Label: "Status of Exit Formalities", Note: "In case of pending; please specify from whose side- candidate or company", Value: unspecified},
		{Label: "Are the Attached Documents Genuine?", Note: "If No, kindly Specify the reason – for e.g. is the document forged or fake or manipulated or any other reason", Value: "Attached"},
		{Label: "Additional Comments", Value: unspecified},
		{Label: "Name and Job title of the verifying Authority", Value: unspecified},
	}

	subject := "Employee Background Verification - " + d.Name + " - " + c.profile.Name
	return c.render("email_bgv", subject, bgvView{Name: d.Name, Rows: rows})
}

type managerView struct {
	ManagerName    string
	Name           string
	LastWorkingDay string
	Pronouns       onboarding.Pronouns
	SubjectIs      string
}

// ManagerConfirmation asks the manager to confirm knowledge transfer before exit formalities
func (c *Composer) ManagerConfirmation(employee onboarding.EmployeeRecord, managerName string, lastWorkingDay time.Time) (*mail.Message, error) {
	pronouns := employee.Pronouns()
	subjectIs := strings.ToLower(pronouns.Subject) + " is"
	if pronouns == onboarding.NeutralPronouns {
		subjectIs = "they are"
	}

	return c.render("email_exit_manager", "Confirmation for proceeding with the Exit formalities - "+employee.Name, managerView{
		ManagerName:    managerName,
		Name:           employee.Name,
		LastWorkingDay: document.FormatLetterDate(lastWorkingDay),
		Pronouns:       pronouns,
		SubjectIs:      subjectIs,
	})
}

type exitView struct {
	Name           string
	LastWorkingDay string
	TransferTo     string
}

// ExitNotice confirms the last working day and lists the exit checklist for the category.
// A blank manager email falls back to a generic instruction.
func (c *Composer) ExitNotice(category onboarding.Category, name string, lastWorkingDay time.Time, managerEmail string) (*mail.Message, error) {
	transferTo := strings.TrimSpace(managerEmail)
	if transferTo == "" {
		transferTo = "your manager's email ID"
	}

	view := exitView{
		Name:           name,
		LastWorkingDay: document.FormatWeekdayDate(lastWorkingDay),
		TransferTo:     transferTo,
	}
	subject := "Exit Formalities - " + name + " - " + document.FormatLetterDate(lastWorkingDay)

	if category == onboarding.CategoryIntern {
		return c.render("email_exit_employee_intern", subject, view)
	}
	return c.render("email_exit_employee_full_time", subject, view)
}

// AssetDispatch is where and to whom a company device is shipped back
type AssetDispatch struct {
	Name         string
	AssetType    onboarding.AssetType
	Address      string
	ContactName  string
	ContactPhone string
}

type assetView struct {
	AssetDispatch
	Insure bool
}

// AssetReturn asks an exiting employee to ship back their device.
// Blank dispatch fields use the configured defaults.
func (c *Composer) AssetReturn(d AssetDispatch) (*mail.Message, error) {
	if strings.TrimSpace(d.Address) == "" {
		d.Address = c.profile.AssetReturnAddress
	}
	if strings.TrimSpace(d.ContactName) == "" {
		d.ContactName = c.profile.AssetContactName
	}
	if strings.TrimSpace(d.ContactPhone) == "" {
		d.ContactPhone = c.profile.AssetContactPhone
	}
	return c.render("email_asset_return", "Asset Dispatch Details", assetView{
		AssetDispatch: d,
		Insure:        d.AssetType.NeedsInsurance(),
	})
}

type certificateView struct {
	Name  string
	Intro string
}

// CertificateEmail accompanies an experience letter or internship certificate
func (c *Composer) CertificateEmail(draft *onboarding.CertificateDraft) (*mail.Message, error) {
	return c.render("email_certificate", draft.Subject(c.profile.Name), certificateView{
		Name:  draft.Record.Name,
		Intro: draft.Intro(),
	})
}
