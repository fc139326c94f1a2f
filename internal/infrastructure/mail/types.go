// Package mail delivers onboarding emails over SMTP.
package mail

import (
	"errors"
	"strconv"
)

// Reasons reported back to the form after a send attempt
const (
	ReasonSent         = "Email sent successfully!"
	reasonFailedPrefix = "Error sending email: "
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have a recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNotConfigured indicates the sender address or password is missing.
	ErrNotConfigured = errors.New("email settings are not configured")
)

// Settings is the SMTP account a message is sent from.
// Each browser session holds its own copy.
type Settings struct {
	Host        string `json:"smtp_server"`
	Port        int    `json:"smtp_port"`
	SenderEmail string `json:"sender_email"`
	Password    string `json:"sender_password"`
	SenderName  string `json:"sender_name"`
}

// Configured reports whether the sender address and password are both set
func (s Settings) Configured() bool {
	return s.SenderEmail != "" && s.Password != ""
}

// Address returns host:port for display
func (s Settings) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// Attachment is a file sent with a message
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a single HTML email with at most one attachment
type Message struct {
	To         string
	Cc         []string
	Subject    string
	HTMLBody   string
	Attachment *Attachment
}

// Recipients returns To followed by every Cc address
func (m *Message) Recipients() []string {
	out := make([]string, 0, 1+len(m.Cc))
	out = append(out, m.To)
	return append(out, m.Cc...)
}

func (m *Message) validate() error {
	if m == nil || m.To == "" {
		return ErrNoRecipient
	}
	if m.Subject == "" {
		return ErrNoSubject
	}
	return nil
}

// Result is the outcome shown to the user; failures are never retried
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

// Sent returns the success result
func Sent() Result {
	return Result{OK: true, Reason: ReasonSent}
}

// Failed wraps err in the failure result
func Failed(err error) Result {
	return Result{OK: false, Reason: reasonFailedPrefix + err.Error()}
}
