package onboarding

import (
	"context"

	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/domain/shared"
	"github.com/onboarding/backend/internal/infrastructure/document"
	"github.com/onboarding/backend/internal/infrastructure/mail"
	"github.com/onboarding/backend/internal/infrastructure/printing"
	"github.com/onboarding/backend/internal/infrastructure/session"
	"github.com/onboarding/backend/internal/infrastructure/telemetry"
)

const serviceName = "onboarding"

// Errors shown inline on the workflow pages
var (
	ErrPDFFailed          = shared.NewDomainError(shared.CodePDFFailed, "Failed to generate PDF. Please check if wkhtmltopdf is installed.")
	ErrNoOfferDraft       = shared.NewDomainError(shared.CodeInvalidState, "Please generate the offer letter first.")
	ErrNoCertificateDraft = shared.NewDomainError(shared.CodeInvalidState, "Please generate the certificate first.")
	ErrNoAppointmentDraft = shared.NewDomainError(shared.CodeInvalidState, "Please generate the appointment letter first.")
	ErrSalaryNotEditable  = shared.NewDomainError(shared.CodeInvalidState, "Salary breakdown applies to full-time offers only.")
	ErrUploadMissing      = shared.NewDomainError(shared.CodeValidation, "Please fill in all required fields and upload a PDF file.")
	ErrInvalidEmails      = shared.NewDomainError(shared.CodeValidation, "Please enter valid email addresses.")
)

// DocumentGenerator builds the HTML of every letter
type DocumentGenerator interface {
	OfferLetter(rec onboarding.EmployeeRecord, salary *onboarding.SalaryBreakdown) (*document.Rendered, error)
	BasicOfferLetter(rec onboarding.EmployeeRecord, annualCTC int64) (*document.Rendered, error)
	Certificate(rec onboarding.EmployeeRecord, mode onboarding.CertificateMode) (*document.Rendered, error)
	AppointmentLetter(rec onboarding.EmployeeRecord) (*document.Rendered, error)
}

var _ DocumentGenerator = (*document.Generator)(nil)

// Service runs the onboarding and exit workflows for one session at a time.
// It mutates the session it is given; the caller persists it.
type Service struct {
	generator DocumentGenerator
	renderer  printing.PDFRenderer
	sender    mail.Sender
	composer  *Composer
	logger    *zap.Logger
}

// NewService creates a new Service
func NewService(
	generator DocumentGenerator,
	renderer printing.PDFRenderer,
	sender mail.Sender,
	composer *Composer,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator: generator,
		renderer:  renderer,
		sender:    sender,
		composer:  composer,
		logger:    logger,
	}
}

// Composer returns the email composer, used by pages to prefill defaults
func (s *Service) Composer() *Composer {
	return s.composer
}

func invalidEmail(who string) error {
	return shared.NewDomainError(shared.CodeValidation, "Please enter a valid "+who+" email address.")
}

func requireEmail(addr, who string) error {
	if !onboarding.ValidateEmail(addr) {
		return invalidEmail(who)
	}
	return nil
}

func requireConfigured(sess *session.Session) error {
	if sess == nil || !sess.EmailConfigured() {
		return shared.ErrNotConfigured
	}
	return nil
}

// =============================================================================
// Email configuration
// =============================================================================

// SaveEmailSettings replaces the session's SMTP account.
// A blank sender name or port keeps the current value.
func (s *Service) SaveEmailSettings(sess *session.Session, req EmailSettingsRequest) error {
	if err := onboarding.RequireFields(req.SMTPServer, req.SenderEmail, req.SenderPassword); err != nil {
		return err
	}
	if err := onboarding.RequireEmail(req.SenderEmail); err != nil {
		return err
	}
	if req.SMTPPort < 0 || req.SMTPPort > 65535 {
		return shared.NewDomainError(shared.CodeValidation, "SMTP port must be between 1 and 65535")
	}

	settings := mail.Settings{
		Host:        req.SMTPServer,
		Port:        sess.Email.Port,
		SenderEmail: req.SenderEmail,
		Password:    req.SenderPassword,
		SenderName:  sess.Email.SenderName,
	}
	if req.SMTPPort != 0 {
		settings.Port = req.SMTPPort
	}
	if req.SenderName != "" {
		settings.SenderName = req.SenderName
	}
	sess.Email = settings

	s.logger.Info("Email settings saved",
		zap.String("session_id", sess.ID),
		zap.String("smtp", settings.Address()),
		zap.String("sender", settings.SenderEmail),
	)
	return nil
}

// SendTestEmail checks the session's SMTP account
func (s *Service) SendTestEmail(ctx context.Context, sess *session.Session, req TestEmailRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if err := requireEmail(req.To, "test"); err != nil {
		return nil, err
	}

	msg, err := s.composer.TestEmail()
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "email_test", req.To, nil, msg), nil
}

// send delivers msg once; transport failures are reported in the outcome, never retried
func (s *Service) send(ctx context.Context, sess *session.Session, phase, to string, cc []string, msg *mail.Message) *SendOutcome {
	ctx, span := telemetry.StartServiceSpan(ctx, serviceName, "Send",
		telemetry.WithAttribute(telemetry.SpanAttrPhase, phase),
	)
	defer span.End()

	msg.To = to
	msg.Cc = cc

	attachment := ""
	attachments := 0
	if msg.Attachment != nil {
		attachment = msg.Attachment.Filename
		attachments = 1
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrSMTPHost, sess.Email.Host,
		telemetry.SpanAttrCCCount, len(cc),
		telemetry.SpanAttrAttachments, attachments,
	)

	result := s.sender.Send(ctx, sess.Email, msg)
	if result.OK {
		telemetry.SetOK(span)
		s.logger.Info("Email sent",
			zap.String("phase", phase),
			zap.String("session_id", sess.ID),
			zap.Int("cc", len(cc)),
			zap.String("attachment", attachment),
		)
	} else {
		telemetry.AddEvent(span, "send_failed", "reason", result.Reason)
		s.logger.Warn("Email not sent",
			zap.String("phase", phase),
			zap.String("session_id", sess.ID),
			zap.String("reason", result.Reason),
		)
	}

	return &SendOutcome{
		Result:     result,
		To:         to,
		CC:         cc,
		Subject:    msg.Subject,
		Attachment: attachment,
	}
}

// RenderPDF converts a rendered letter to PDF through the configured strategy chain
func (s *Service) RenderPDF(ctx context.Context, r *document.Rendered) (*Document, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, serviceName, "RenderPDF",
		telemetry.WithAttribute(telemetry.SpanAttrDocumentKind, r.Kind.String()),
		telemetry.WithAttribute(telemetry.SpanAttrDocumentTitle, r.Title),
	)
	defer span.End()

	result, err := s.renderer.Render(ctx, printing.NewRenderRequest(r.HTML, r.Title))
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("PDF generation failed",
			zap.String("kind", r.Kind.String()),
			zap.String("title", r.Title),
			zap.Error(err),
		)
		return nil, shared.WrapDomainError(ErrPDFFailed.Code, ErrPDFFailed.Message, err)
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrRenderer, result.Renderer,
		telemetry.SpanAttrBytes, len(result.PDFData),
		telemetry.SpanAttrPageCount, result.PageCount,
	)
	telemetry.SetOK(span)

	return &Document{
		Filename:    r.AttachmentName,
		ContentType: printing.MIMETypePDF,
		Data:        result.PDFData,
		PageCount:   result.PageCount,
		Renderer:    result.Renderer,
	}, nil
}

func attach(msg *mail.Message, doc *Document) *mail.Message {
	msg.Attachment = &mail.Attachment{
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Data:        doc.Data,
	}
	return msg
}
