package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/infrastructure/logger"
	"github.com/onboarding/backend/internal/infrastructure/mail"
	"github.com/onboarding/backend/internal/infrastructure/session"
	"github.com/onboarding/backend/internal/interfaces/http/dto"
)

const ginSessionKey = "session"

// SessionConfig holds the cookie settings and the defaults of new sessions
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	// Defaults is the SMTP account every new session starts with
	Defaults mail.Settings
}

// Sessions loads the browser session for each request and persists it on demand
type Sessions struct {
	store  session.Store
	cfg    SessionConfig
	logger *zap.Logger
}

// NewSessions creates the session middleware
func NewSessions(store session.Store, cfg SessionConfig, logger *zap.Logger) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "onboarding_session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = session.DefaultTTL
	}
	return &Sessions{store: store, cfg: cfg, logger: logger}
}

// Handler resolves the session cookie, creating a session when it is
// missing, malformed or expired. New sessions are saved before the handler runs.
func (s *Sessions) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *session.Session
		if id, err := c.Cookie(s.cfg.CookieName); err == nil && session.ValidID(id) {
			loaded, err := s.store.Get(ctx, id)
			switch {
			case err == nil:
				sess = loaded
			case errors.Is(err, session.ErrSessionNotFound):
			default:
				s.logger.Error("Failed to load session", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponseWithRequestID(
					dto.ErrCodeInternal, "Session storage is unavailable", getRequestID(c)))
				return
			}
		}

		if sess == nil {
			sess = session.New(s.cfg.Defaults)
			if err := s.store.Save(ctx, sess); err != nil {
				s.logger.Error("Failed to create session", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponseWithRequestID(
					dto.ErrCodeInternal, "Session storage is unavailable", getRequestID(c)))
				return
			}
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(s.cfg.CookieName, sess.ID, int(s.cfg.TTL.Seconds()), "/", "", s.cfg.Secure, true)

		c.Set(ginSessionKey, sess)
		c.Set(logger.GinSessionIDKey, sess.ID)
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(attribute.String("session_id", sess.ID))
		}
		ctx, _ = logger.WithSessionID(ctx, logger.FromContext(ctx), sess.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Save persists the session of the current request.
// Handlers call it after changing drafts or settings, before responding.
func (s *Sessions) Save(c *gin.Context, sess *session.Session) error {
	if err := s.store.Save(c.Request.Context(), sess); err != nil {
		s.logger.Error("Failed to save session",
			zap.String("session_id", sess.ID),
			zap.Error(err))
		return err
	}
	return nil
}

// CurrentSession returns the session loaded by Sessions.Handler, or nil
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(ginSessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}
