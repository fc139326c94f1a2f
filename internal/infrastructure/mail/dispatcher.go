package mail

import (
	"bytes"
	"context"
	"time"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/infrastructure/telemetry"
)

const defaultSendTimeout = 30 * time.Second

// Sender delivers a message with the given account settings.
type Sender interface {
	Send(ctx context.Context, settings Settings, msg *Message) Result
}

// transport is the part of a go-mail client the dispatcher uses
type transport interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type transportFactory func(settings Settings, timeout time.Duration) (transport, error)

// DispatcherConfig configures the SMTP dispatcher
type DispatcherConfig struct {
	// Timeout bounds connect, handshake and send (default: 30s)
	Timeout time.Duration
	Logger  *zap.Logger
}

// Dispatcher sends each message in one blocking SMTP session:
// connect, mandatory STARTTLS, PLAIN auth, send, quit.
type Dispatcher struct {
	timeout      time.Duration
	logger       *zap.Logger
	newTransport transportFactory
}

// NewDispatcher creates an SMTP dispatcher
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultSendTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Dispatcher{
		timeout:      cfg.Timeout,
		logger:       cfg.Logger,
		newTransport: newSMTPTransport,
	}
}

func newSMTPTransport(settings Settings, timeout time.Duration) (transport, error) {
	return gomail.NewClient(settings.Host,
		gomail.WithPort(settings.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(settings.SenderEmail),
		gomail.WithPassword(settings.Password),
		gomail.WithTimeout(timeout),
	)
}

// Send delivers msg and reports the outcome; it never returns an error value
func (d *Dispatcher) Send(ctx context.Context, settings Settings, msg *Message) Result {
	ctx, span := telemetry.StartSpan(ctx, "mail.send",
		telemetry.WithAttribute(telemetry.SpanAttrSMTPHost, settings.Host))
	defer span.End()

	if err := d.send(ctx, settings, msg); err != nil {
		telemetry.RecordError(span, err)
		d.logger.Warn("Email send failed",
			zap.String("smtp_host", settings.Host),
			zap.String("subject", subjectOf(msg)),
			zap.Error(err))
		return Failed(err)
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCCCount, len(msg.Cc),
		telemetry.SpanAttrAttachments, msg.Attachment != nil)
	d.logger.Info("Email sent",
		zap.String("to", msg.To),
		zap.Int("cc", len(msg.Cc)),
		zap.String("subject", msg.Subject))
	return Sent()
}

func (d *Dispatcher) send(ctx context.Context, settings Settings, msg *Message) error {
	if !settings.Configured() {
		return ErrNotConfigured
	}
	if err := msg.validate(); err != nil {
		return err
	}

	m, err := BuildMessage(settings, msg)
	if err != nil {
		return err
	}

	client, err := d.newTransport(settings, d.timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return client.DialAndSendWithContext(ctx, m)
}

// BuildMessage converts msg into a MIME message sent from settings.SenderEmail
func BuildMessage(settings Settings, msg *Message) (*gomail.Msg, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	m := gomail.NewMsg()
	if settings.SenderName != "" {
		if err := m.FromFormat(settings.SenderName, settings.SenderEmail); err != nil {
			return nil, err
		}
	} else if err := m.From(settings.SenderEmail); err != nil {
		return nil, err
	}
	if err := m.To(msg.To); err != nil {
		return nil, err
	}
	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return nil, err
		}
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	if a := msg.Attachment; a != nil && len(a.Data) > 0 {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		m.AttachReadSeeker(a.Filename, bytes.NewReader(a.Data),
			gomail.WithFileContentType(gomail.ContentType(contentType)))
	}

	return m, nil
}

func subjectOf(msg *Message) string {
	if msg == nil {
		return ""
	}
	return msg.Subject
}

// Ensure Dispatcher implements Sender
var _ Sender = (*Dispatcher)(nil)
