package onboarding

import (
	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/infrastructure/document"
	"github.com/onboarding/backend/internal/infrastructure/mail"
)

// =============================================================================
// Email configuration DTOs
// =============================================================================

// EmailSettingsRequest overrides the SMTP account of the current session
type EmailSettingsRequest struct {
	SMTPServer     string `form:"smtp_server" json:"smtp_server"`
	SMTPPort       int    `form:"smtp_port" json:"smtp_port"`
	SenderEmail    string `form:"sender_email" json:"sender_email"`
	SenderPassword string `form:"sender_password" json:"sender_password"`
	SenderName     string `form:"sender_name" json:"sender_name"`
}

// TestEmailRequest sends the test email to one address
type TestEmailRequest struct {
	To string `form:"test_email" json:"to"`
}

// =============================================================================
// Onboarding phase DTOs
// =============================================================================

// DocumentRequest is the Phase 1 form
type DocumentRequest struct {
	Category string `form:"category" json:"category"`
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Position string `form:"position" json:"position"`
	CC       string `form:"cc" json:"cc"`
}

// SalaryInput carries the monthly component amounts as typed on the form
type SalaryInput struct {
	Basic             string `form:"basic" json:"basic"`
	HRA               string `form:"hra" json:"hra"`
	SpecialAllowance  string `form:"special_allowance" json:"special_allowance"`
	MedicalAllowance  string `form:"medical_allowance" json:"medical_allowance"`
	BooksPeriodical   string `form:"books_periodical" json:"books_periodical"`
	HealthClub        string `form:"health_club" json:"health_club"`
	InternetTelephone string `form:"internet_telephone" json:"internet_telephone"`
	PFContribution    string `form:"pf_contribution" json:"pf_contribution"`
}

// IsEmpty reports whether no amount was entered
func (in SalaryInput) IsEmpty() bool {
	return in == SalaryInput{}
}

// SalaryInputFrom prefills the form from a breakdown
func SalaryInputFrom(b *onboarding.SalaryBreakdown) SalaryInput {
	if b == nil {
		return SalaryInput{}
	}
	amount := func(c onboarding.SalaryComponent) string {
		return document.FormatAmount(b.Monthly(c))
	}
	return SalaryInput{
		Basic:             amount(onboarding.ComponentBasic),
		HRA:               amount(onboarding.ComponentHRA),
		SpecialAllowance:  amount(onboarding.ComponentSpecialAllowance),
		MedicalAllowance:  amount(onboarding.ComponentMedicalAllowance),
		BooksPeriodical:   amount(onboarding.ComponentBooksPeriodical),
		HealthClub:        amount(onboarding.ComponentHealthClub),
		InternetTelephone: amount(onboarding.ComponentInternetTelephone),
		PFContribution:    document.FormatAmount(b.PFMonthly),
	}
}

// Breakdown parses every amount into a SalaryBreakdown
func (in SalaryInput) Breakdown() (*onboarding.SalaryBreakdown, error) {
	fields := []struct {
		component onboarding.SalaryComponent
		value     string
	}{
		{onboarding.ComponentBasic, in.Basic},
		{onboarding.ComponentHRA, in.HRA},
		{onboarding.ComponentSpecialAllowance, in.SpecialAllowance},
		{onboarding.ComponentMedicalAllowance, in.MedicalAllowance},
		{onboarding.ComponentBooksPeriodical, in.BooksPeriodical},
		{onboarding.ComponentHealthClub, in.HealthClub},
		{onboarding.ComponentInternetTelephone, in.InternetTelephone},
	}

	monthly := make(map[onboarding.SalaryComponent]int64, len(fields))
	for _, f := range fields {
		v, err := onboarding.ParseAmount(f.value)
		if err != nil {
			return nil, err
		}
		monthly[f.component] = v
	}

	pf, err := onboarding.ParseAmount(in.PFContribution)
	if err != nil {
		return nil, err
	}
	return onboarding.NewSalaryBreakdown(monthly, pf)
}

// OfferRequest is the Phase 2 form
type OfferRequest struct {
	Category  string      `form:"category" json:"category"`
	Title     string      `form:"title" json:"title"`
	Name      string      `form:"name" json:"name"`
	Email     string      `form:"email" json:"email"`
	Position  string      `form:"position" json:"position"`
	StartDate string      `form:"start_date" json:"start_date"`
	CC        string      `form:"cc" json:"cc"`
	Salary    SalaryInput `json:"salary"`
	// AnnualCTC selects the single-page offer with a CTC line; API only
	AnnualCTC string `form:"-" json:"annual_ctc"`
}

// AppointmentUploadRequest sends an appointment letter prepared elsewhere
type AppointmentUploadRequest struct {
	Email    string `form:"email" json:"email"`
	Subject  string `form:"subject" json:"subject"`
	Message  string `form:"message" json:"message"`
	CC       string `form:"cc" json:"cc"`
	Filename string `form:"-" json:"-"`
	Data     []byte `form:"-" json:"-"`
}

// AppointmentRequest generates an appointment letter from the text template
type AppointmentRequest struct {
	Title       string `form:"title" json:"title"`
	Name        string `form:"name" json:"name"`
	Position    string `form:"position" json:"position"`
	JoiningDate string `form:"joining_date" json:"joining_date"`
}

// WelcomeRequest is the Phase 4 form
type WelcomeRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	FormURL string `form:"form_url" json:"form_url"`
	CC      string `form:"cc" json:"cc"`
}

// BGVRequest is the Phase 5 form
type BGVRequest struct {
	Name        string `form:"name" json:"name"`
	EmployeeID  string `form:"employee_id" json:"employee_id"`
	Designation string `form:"designation" json:"designation"`
	Period      string `form:"period" json:"period"`
	Manager     string `form:"manager" json:"manager"`
	HREmail     string `form:"hr_email" json:"hr_email"`
	CC          string `form:"cc" json:"cc"`
}

// =============================================================================
// Exit DTOs
// =============================================================================

// ManagerConfirmationRequest asks a manager to confirm knowledge transfer
type ManagerConfirmationRequest struct {
	Title          string `form:"title" json:"title"`
	Name           string `form:"name" json:"name"`
	ManagerName    string `form:"manager_name" json:"manager_name"`
	ManagerEmail   string `form:"manager_email" json:"manager_email"`
	LastWorkingDay string `form:"last_working_day" json:"last_working_day"`
	CC             string `form:"cc" json:"cc"`
}

// ExitNoticeRequest notifies the exiting employee
type ExitNoticeRequest struct {
	Category       string `form:"category" json:"category"`
	Name           string `form:"name" json:"name"`
	Email          string `form:"email" json:"email"`
	LastWorkingDay string `form:"last_working_day" json:"last_working_day"`
	ManagerEmail   string `form:"manager_email" json:"manager_email"`
	CC             string `form:"cc" json:"cc"`
}

// AssetReturnRequest asks the exiting employee to ship back a device
type AssetReturnRequest struct {
	Name          string `form:"name" json:"name"`
	Email         string `form:"email" json:"email"`
	PersonalEmail string `form:"personal_email" json:"personal_email"`
	AssetType     string `form:"asset_type" json:"asset_type"`
	Address       string `form:"address" json:"address"`
	ContactName   string `form:"contact_name" json:"contact_name"`
	ContactPhone  string `form:"contact_phone" json:"contact_phone"`
}

// AccessRemovalRequest is the access checklist
type AccessRemovalRequest struct {
	Name      string   `form:"name" json:"name"`
	Platforms []string `form:"platforms" json:"platforms"`
}

// CertificateRequest generates an experience letter or internship certificate
type CertificateRequest struct {
	Title     string `form:"title" json:"title"`
	Name      string `form:"name" json:"name"`
	Email     string `form:"email" json:"email"`
	Position  string `form:"position" json:"position"`
	StartDate string `form:"start_date" json:"start_date"`
	EndDate   string `form:"end_date" json:"end_date"`
	Mode      string `form:"mode" json:"mode"`
}

// =============================================================================
// Output DTOs
// =============================================================================

// Document is a rendered PDF ready to download or attach
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
	PageCount   int
	Renderer    string
}

// SendOutcome is what a form shows after a send attempt
type SendOutcome struct {
	Result  mail.Result `json:"result"`
	To      string      `json:"to"`
	CC      []string    `json:"cc,omitempty"`
	Subject string      `json:"subject"`
	// Attachment names the attached file, empty when none
	Attachment string `json:"attachment,omitempty"`
}
