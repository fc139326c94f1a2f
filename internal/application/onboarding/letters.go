package onboarding

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/domain/shared"
	"github.com/onboarding/backend/internal/infrastructure/document"
	"github.com/onboarding/backend/internal/infrastructure/printing"
	"github.com/onboarding/backend/internal/infrastructure/session"
)

// =============================================================================
// Phase 2: offer letters
// =============================================================================

// PrepareOffer validates the offer form into a draft.
// Full-time offers carry a salary breakdown, the form defaults when no amount is entered.
func PrepareOffer(req OfferRequest) (*onboarding.OfferDraft, error) {
	if err := onboarding.RequireFields(req.Name, req.Email, req.Position, req.StartDate); err != nil {
		return nil, err
	}
	if err := requireEmail(req.Email, "candidate"); err != nil {
		return nil, err
	}

	category, err := onboarding.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	title, err := onboarding.ParseTitle(req.Title)
	if err != nil {
		return nil, err
	}
	start, err := onboarding.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	draft := &onboarding.OfferDraft{
		Record: onboarding.EmployeeRecord{
			Name:      strings.TrimSpace(req.Name),
			Position:  strings.TrimSpace(req.Position),
			StartDate: start,
			Title:     title,
			Category:  category,
		},
		Email: strings.TrimSpace(req.Email),
		CC:    onboarding.ParseCCList(req.CC),
	}

	if category == onboarding.CategoryFullTime {
		if req.Salary.IsEmpty() {
			draft.Salary = onboarding.DefaultSalaryBreakdown()
		} else if draft.Salary, err = req.Salary.Breakdown(); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// GenerateOffer stores the offer draft in the session and returns its preview
func (s *Service) GenerateOffer(sess *session.Session, req OfferRequest) (*document.Rendered, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	draft, err := PrepareOffer(req)
	if err != nil {
		return nil, err
	}

	rendered, err := s.generator.OfferLetter(draft.Record, draft.Salary)
	if err != nil {
		return nil, err
	}
	sess.Offer = draft

	s.logger.Info("Offer letter generated",
		zap.String("session_id", sess.ID),
		zap.String("category", draft.Record.Category.String()),
	)
	return rendered, nil
}

// UpdateOfferSalary replaces the salary breakdown of a full-time offer draft
func (s *Service) UpdateOfferSalary(sess *session.Session, in SalaryInput) (*document.Rendered, error) {
	if sess.Offer == nil {
		return nil, ErrNoOfferDraft
	}
	if sess.Offer.Record.Category != onboarding.CategoryFullTime {
		return nil, ErrSalaryNotEditable
	}

	breakdown, err := in.Breakdown()
	if err != nil {
		return nil, err
	}
	rendered, err := s.generator.OfferLetter(sess.Offer.Record, breakdown)
	if err != nil {
		return nil, err
	}
	sess.Offer.Salary = breakdown
	return rendered, nil
}

// PreviewOffer regenerates the offer from the session draft
func (s *Service) PreviewOffer(sess *session.Session) (*document.Rendered, error) {
	if sess.Offer == nil {
		return nil, ErrNoOfferDraft
	}
	return s.generator.OfferLetter(sess.Offer.Record, sess.Offer.Salary)
}

// OfferPDF renders the session's offer draft to PDF
func (s *Service) OfferPDF(ctx context.Context, sess *session.Session) (*Document, error) {
	rendered, err := s.PreviewOffer(sess)
	if err != nil {
		return nil, err
	}
	return s.RenderPDF(ctx, rendered)
}

// SendOffer mails the offer PDF to the candidate with the draft's CC list
func (s *Service) SendOffer(ctx context.Context, sess *session.Session) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	doc, err := s.OfferPDF(ctx, sess)
	if err != nil {
		return nil, err
	}

	msg, err := s.composer.OfferEmail(sess.Offer)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "offer", sess.Offer.Email, sess.Offer.CC, attach(msg, doc)), nil
}

// RenderOffer generates an offer without touching any session.
// A positive AnnualCTC selects the single-page offer letter.
func (s *Service) RenderOffer(req OfferRequest) (*document.Rendered, error) {
	draft, err := PrepareOffer(req)
	if err != nil {
		return nil, err
	}

	ctc, err := onboarding.ParseAmount(req.AnnualCTC)
	if err != nil {
		return nil, err
	}
	if ctc > 0 {
		return s.generator.BasicOfferLetter(draft.Record, ctc)
	}
	return s.generator.OfferLetter(draft.Record, draft.Salary)
}

// =============================================================================
// Phase 3: appointment letters
// =============================================================================

// SendAppointmentUpload mails an uploaded appointment letter with a free-text message
func (s *Service) SendAppointmentUpload(ctx context.Context, sess *session.Session, req AppointmentUploadRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if len(req.Data) == 0 || onboarding.RequireFields(req.Email, req.Subject, req.Message) != nil {
		return nil, ErrUploadMissing
	}
	if err := requireEmail(req.Email, "recipient"); err != nil {
		return nil, err
	}

	info, err := printing.InspectPDF(req.Data)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeValidation, "The uploaded file is not a valid PDF.", err)
	}

	filename := req.Filename
	if filename == "" {
		filename = "appointment_letter.pdf"
	}

	msg := s.composer.AppointmentUpload(req.Subject, req.Message)
	msg = attach(msg, &Document{
		Filename:    filename,
		ContentType: info.MIMEType,
		Data:        req.Data,
		PageCount:   info.PageCount,
	})
	return s.send(ctx, sess, "appointment_upload", strings.TrimSpace(req.Email), onboarding.ParseCCList(req.CC), msg), nil
}

// PrepareAppointment validates the appointment form into a draft
func PrepareAppointment(req AppointmentRequest) (*onboarding.AppointmentDraft, error) {
	if err := onboarding.RequireFields(req.Name, req.Position, req.JoiningDate); err != nil {
		return nil, err
	}
	title, err := onboarding.ParseTitle(req.Title)
	if err != nil {
		return nil, err
	}
	joining, err := onboarding.ParseDate(req.JoiningDate)
	if err != nil {
		return nil, err
	}

	return &onboarding.AppointmentDraft{
		Record: onboarding.EmployeeRecord{
			Name:      strings.TrimSpace(req.Name),
			Position:  strings.TrimSpace(req.Position),
			StartDate: joining,
			Title:     title,
		},
	}, nil
}

// GenerateAppointment stores the appointment draft and returns its preview
func (s *Service) GenerateAppointment(sess *session.Session, req AppointmentRequest) (*document.Rendered, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	draft, err := PrepareAppointment(req)
	if err != nil {
		return nil, err
	}

	rendered, err := s.generator.AppointmentLetter(draft.Record)
	if err != nil {
		return nil, err
	}
	sess.Appointment = draft
	return rendered, nil
}

// PreviewAppointment regenerates the appointment letter from the session draft
func (s *Service) PreviewAppointment(sess *session.Session) (*document.Rendered, error) {
	if sess.Appointment == nil {
		return nil, ErrNoAppointmentDraft
	}
	return s.generator.AppointmentLetter(sess.Appointment.Record)
}

// AppointmentPDF renders the session's appointment draft to PDF
func (s *Service) AppointmentPDF(ctx context.Context, sess *session.Session) (*Document, error) {
	rendered, err := s.PreviewAppointment(sess)
	if err != nil {
		return nil, err
	}
	return s.RenderPDF(ctx, rendered)
}

// RenderAppointment generates an appointment letter without touching any session
func (s *Service) RenderAppointment(req AppointmentRequest) (*document.Rendered, error) {
	draft, err := PrepareAppointment(req)
	if err != nil {
		return nil, err
	}
	return s.generator.AppointmentLetter(draft.Record)
}

// =============================================================================
// Phase 6: certificates
// =============================================================================

// PrepareCertificate validates the certificate form into a draft
func PrepareCertificate(req CertificateRequest) (*onboarding.CertificateDraft, error) {
	if err := onboarding.RequireFields(req.Name, req.Email, req.Position, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	start, err := onboarding.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := onboarding.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := onboarding.ValidateDateRange(start, end); err != nil {
		return nil, err
	}
	if err := onboarding.RequireEmail(req.Email); err != nil {
		return nil, err
	}

	title, err := onboarding.ParseTitle(req.Title)
	if err != nil {
		return nil, err
	}
	mode := onboarding.CertificateStandard
	if strings.TrimSpace(req.Mode) != "" {
		if mode, err = onboarding.ParseCertificateMode(req.Mode); err != nil {
			return nil, err
		}
	}

	return &onboarding.CertificateDraft{
		Record: onboarding.EmployeeRecord{
			Name:      strings.TrimSpace(req.Name),
			Position:  strings.TrimSpace(req.Position),
			StartDate: start,
			EndDate:   &end,
			Title:     title,
		},
		Email: strings.TrimSpace(req.Email),
		Mode:  mode,
	}, nil
}

// GenerateCertificate stores the certificate draft and returns its preview
func (s *Service) GenerateCertificate(sess *session.Session, req CertificateRequest) (*document.Rendered, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	draft, err := PrepareCertificate(req)
	if err != nil {
		return nil, err
	}

	rendered, err := s.generator.Certificate(draft.Record, draft.Mode)
	if err != nil {
		return nil, err
	}
	sess.Certificate = draft

	s.logger.Info("Certificate generated",
		zap.String("session_id", sess.ID),
		zap.String("mode", string(draft.Mode)),
	)
	return rendered, nil
}

// PreviewCertificate regenerates the certificate from the session draft
func (s *Service) PreviewCertificate(sess *session.Session) (*document.Rendered, error) {
	if sess.Certificate == nil {
		return nil, ErrNoCertificateDraft
	}
	return s.generator.Certificate(sess.Certificate.Record, sess.Certificate.Mode)
}

// CertificatePDF renders the session's certificate draft to PDF
func (s *Service) CertificatePDF(ctx context.Context, sess *session.Session) (*Document, error) {
	rendered, err := s.PreviewCertificate(sess)
	if err != nil {
		return nil, err
	}
	return s.RenderPDF(ctx, rendered)
}

// SendCertificate mails the certificate PDF to the employee's personal address, without CC
func (s *Service) SendCertificate(ctx context.Context, sess *session.Session) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	doc, err := s.CertificatePDF(ctx, sess)
	if err != nil {
		return nil, err
	}

	msg, err := s.composer.CertificateEmail(sess.Certificate)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "certificate", sess.Certificate.Email, nil, attach(msg, doc)), nil
}

// RenderCertificate generates a certificate without touching any session
func (s *Service) RenderCertificate(req CertificateRequest) (*document.Rendered, error) {
	draft, err := PrepareCertificate(req)
	if err != nil {
		return nil, err
	}
	return s.generator.Certificate(draft.Record, draft.Mode)
}
