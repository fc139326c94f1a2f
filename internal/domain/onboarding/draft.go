package onboarding

// OfferDraft holds the Phase 2 form inputs between generate, edit, download and send
type OfferDraft struct {
	Record EmployeeRecord   `json:"record"`
	Email  string           `json:"email"`
	CC     []string         `json:"cc,omitempty"`
	Salary *SalaryBreakdown `json:"salary,omitempty"`
}

// CertificateDraft holds the exit certificate form inputs
type CertificateDraft struct {
	Record EmployeeRecord  `json:"record"`
	Email  string          `json:"email"`
	Mode   CertificateMode `json:"mode"`
}

// Subject returns the email subject the certificate is sent under
func (d CertificateDraft) Subject(company string) string {
	if d.Mode == CertificateInternship {
		return company + " - Internship Certificate - " + d.Record.Name
	}
	return company + " - Experience Letter - " + d.Record.Name
}

// Intro returns the one-line message accompanying the certificate
func (d CertificateDraft) Intro() string {
	if d.Mode == CertificateInternship {
		return "PFA: Internship Certificate"
	}
	return "PFA, your Experience Letter."
}

// AppointmentDraft holds the inputs of a generated appointment letter
type AppointmentDraft struct {
	Record EmployeeRecord `json:"record"`
}
