package onboarding

import (
	"strings"

	"github.com/onboarding/backend/internal/domain/shared"
)

// DocumentKind identifies which letter a generator produced
type DocumentKind string

const (
	KindOffer          DocumentKind = "offer"
	KindAppointment    DocumentKind = "appointment"
	KindExperience     DocumentKind = "experience"
	KindInternship     DocumentKind = "internship"
	KindDuesNotSettled DocumentKind = "dues_not_settled"
)

// String returns the string representation of DocumentKind
func (k DocumentKind) String() string {
	return string(k)
}

// CertificateMode selects the closing wording of an exit certificate
type CertificateMode string

const (
	CertificateStandard       CertificateMode = "standard"
	CertificateInternship     CertificateMode = "internship"
	CertificateDuesNotSettled CertificateMode = "dues_not_settled"
)

// Labels shown on the certificate form
const (
	labelStandard       = "Standard Experience Letter"
	labelInternship     = "Internship Certificate"
	labelDuesNotSettled = "Experience Letter (Dues Not Settled)"
)

// AllCertificateModes returns the modes in the order offered on forms
func AllCertificateModes() []CertificateMode {
	return []CertificateMode{CertificateStandard, CertificateInternship, CertificateDuesNotSettled}
}

// IsValid checks if the CertificateMode is a valid value
func (m CertificateMode) IsValid() bool {
	switch m {
	case CertificateStandard, CertificateInternship, CertificateDuesNotSettled:
		return true
	}
	return false
}

// Label returns the form label of the mode
func (m CertificateMode) Label() string {
	switch m {
	case CertificateInternship:
		return labelInternship
	case CertificateDuesNotSettled:
		return labelDuesNotSettled
	default:
		return labelStandard
	}
}

// Kind maps the mode to the document kind it produces
func (m CertificateMode) Kind() DocumentKind {
	switch m {
	case CertificateInternship:
		return KindInternship
	case CertificateDuesNotSettled:
		return KindDuesNotSettled
	default:
		return KindExperience
	}
}

// AttachmentName returns the fixed file name the certificate is mailed under
func (m CertificateMode) AttachmentName() string {
	switch m {
	case CertificateInternship:
		return "internship_certificate.pdf"
	case CertificateDuesNotSettled:
		return "experience_letter_dues_not_settled.pdf"
	default:
		return "experience_letter.pdf"
	}
}

// ParseCertificateMode accepts either the mode value or its form label
func ParseCertificateMode(s string) (CertificateMode, error) {
	switch strings.TrimSpace(s) {
	case string(CertificateStandard), labelStandard:
		return CertificateStandard, nil
	case string(CertificateInternship), labelInternship:
		return CertificateInternship, nil
	case string(CertificateDuesNotSettled), labelDuesNotSettled:
		return CertificateDuesNotSettled, nil
	}
	return "", shared.NewDomainError(shared.CodeValidation, "Unknown certificate type: "+s)
}

func underscored(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// OfferAttachmentName returns {category}_letter_{name}.pdf with spaces replaced by underscores
func OfferAttachmentName(category Category, name string) string {
	return category.Slug() + "_letter_" + underscored(name) + ".pdf"
}

// AppointmentAttachmentName returns appointment_letter_{name}.pdf
func AppointmentAttachmentName(name string) string {
	return "appointment_letter_" + underscored(name) + ".pdf"
}
