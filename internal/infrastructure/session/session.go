// Package session keeps per-browser onboarding state: the SMTP settings and
// the form drafts of the letters being prepared. Rendered documents are never stored.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/domain/shared"
	"github.com/onboarding/backend/internal/infrastructure/mail"
)

// ErrSessionNotFound is returned when an id is unknown or expired
var ErrSessionNotFound = shared.NewDomainError(shared.CodeNotFound, "session not found")

// Session is the state of one browser session
type Session struct {
	ID          string                       `json:"id"`
	Email       mail.Settings                `json:"email"`
	Offer       *onboarding.OfferDraft       `json:"offer,omitempty"`
	Certificate *onboarding.CertificateDraft `json:"certificate,omitempty"`
	Appointment *onboarding.AppointmentDraft `json:"appointment,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// New creates a session with a random id and the given email defaults
func New(defaults mail.Settings) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Email:     defaults,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EmailConfigured reports whether the session can send mail
func (s *Session) EmailConfigured() bool {
	return s.Email.Configured()
}

// Store persists sessions between requests
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// ValidID rejects ids that were not issued by New
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
