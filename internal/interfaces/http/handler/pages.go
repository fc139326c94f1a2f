package handler

import (
	"embed"
	"html/template"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/gin-gonic/gin"

	onboardingapp "github.com/onboarding/backend/internal/application/onboarding"
	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/infrastructure/document"
	"github.com/onboarding/backend/internal/infrastructure/mail"
	"github.com/onboarding/backend/internal/infrastructure/session"
	"github.com/onboarding/backend/internal/interfaces/http/middleware"
)

//go:embed templates/*.html
var pageTemplates embed.FS

// Messages shown after a successful form submission
const (
	msgSettingsSaved        = "Email configuration saved successfully!"
	msgOfferGenerated       = "Offer letter generated successfully! Please review below."
	msgOfferUpdated         = "Offer letter updated successfully!"
	msgAppointmentGenerated = "Appointment letter generated successfully! Please review below."
	msgCertificateGenerated = "Certificate generated successfully! See preview below."
	msgInvalidForm          = "Please check the submitted values."
	msgSessionNotSaved      = "Your changes could not be saved. Please try again."
)

// PageTemplates parses the embedded workflow pages for engine.SetHTMLTemplate
func PageTemplates(profile onboardingapp.CompanyProfile) (*template.Template, error) {
	return template.New("pages").Funcs(template.FuncMap{
		"company":          func() onboardingapp.CompanyProfile { return profile },
		"categories":       onboarding.AllCategories,
		"titles":           func() []onboarding.Title { return []onboarding.Title{onboarding.TitleMr, onboarding.TitleMs} },
		"assetTypes":       onboarding.AllAssetTypes,
		"accessPlatforms":  onboarding.AccessPlatforms,
		"certificateModes": onboarding.AllCertificateModes,
		"enrollment":       onboardingapp.EnrollmentPlatforms,
	}).ParseFS(pageTemplates, "templates/*.html")
}

// SessionSaver persists the session after a handler changed it
type SessionSaver interface {
	Save(c *gin.Context, sess *session.Session) error
}

// PageHandler serves the HTML workflow pages
type PageHandler struct {
	BaseHandler
	service  *onboardingapp.Service
	sessions SessionSaver
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(service *onboardingapp.Service, sessions SessionSaver) *PageHandler {
	return &PageHandler{
		service:  service,
		sessions: sessions,
	}
}

type flash struct {
	Success bool
	Message string
}

// pageData is the view model of every page. Section names the form that was submitted.
type pageData struct {
	Title      string
	Active     string
	Section    string
	Configured bool
	Email      mail.Settings
	Flash      *flash
	Form       url.Values
	Preview    *document.Rendered
	Salary     *onboardingapp.SalaryInput

	Offer       *onboarding.OfferDraft
	Appointment *onboarding.AppointmentDraft
	Certificate *onboarding.CertificateDraft

	AppointmentSubject string
	AppointmentMessage string

	defaultCC string
}

// Value returns the submitted value of a field of the given form
func (d *pageData) Value(section, name string) string {
	if d.Section != section {
		return ""
	}
	return d.Form.Get(name)
}

// Selected reports whether value was submitted for a select, radio or checkbox field
func (d *pageData) Selected(section, name, value string) bool {
	if d.Section != section {
		return false
	}
	for _, v := range d.Form[name] {
		if v == value {
			return true
		}
	}
	return false
}

// CC returns the submitted CC list, or the company default before the form was posted
func (d *pageData) CC(section string) string {
	if d.Section == section {
		if v, ok := d.Form["cc"]; ok && len(v) > 0 {
			return v[0]
		}
	}
	return d.defaultCC
}

// FlashFor returns the flash message when it belongs to the given form
func (d *pageData) FlashFor(section string) *flash {
	if d.Section != section {
		return nil
	}
	return d.Flash
}

func (d *pageData) success(message string) {
	d.Flash = &flash{Success: true, Message: message}
}

// fail shows err on the page and returns the status to respond with
func (d *pageData) fail(err error) int {
	status, _, message := ErrorStatus(err)
	d.Flash = &flash{Message: message}
	return status
}

func (d *pageData) outcome(o *onboardingapp.SendOutcome) {
	d.Flash = &flash{Success: o.Result.OK, Message: o.Result.Reason}
}

func (h *PageHandler) page(c *gin.Context, active, title string) *pageData {
	d := &pageData{
		Title:     title,
		Active:    active,
		defaultCC: h.service.Composer().Profile().DefaultCC,
	}
	if sess := middleware.CurrentSession(c); sess != nil {
		d.Configured = sess.EmailConfigured()
		d.Email = sess.Email
		d.Offer = sess.Offer
		d.Appointment = sess.Appointment
		d.Certificate = sess.Certificate
	}
	return d
}

// bind parses the submitted form into obj and remembers the raw values for redisplay
func (h *PageHandler) bind(c *gin.Context, d *pageData, section string, obj any) bool {
	d.Section = section
	err := c.ShouldBind(obj)
	d.Form = c.Request.PostForm
	if err != nil {
		d.Flash = &flash{Message: msgInvalidForm}
		return false
	}
	return true
}

// save persists the session; on failure the page shows an error instead
func (h *PageHandler) save(c *gin.Context, d *pageData, sess *session.Session) bool {
	if err := h.sessions.Save(c, sess); err != nil {
		d.Flash = &flash{Message: msgSessionNotSaved}
		return false
	}
	return true
}

func (h *PageHandler) download(c *gin.Context, doc *onboardingapp.Document) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func (h *PageHandler) sessionOf(c *gin.Context) *session.Session {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		sess = session.New(mail.Settings{})
	}
	return sess
}

// =============================================================================
// Home and email configuration
// =============================================================================

// Home renders the phase overview
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page(c, "home", "HR Onboarding"))
}

// EmailConfig shows the session's SMTP settings
func (h *PageHandler) EmailConfig(c *gin.Context) {
	c.HTML(http.StatusOK, "email_config.html", h.page(c, "email-config", "Email Configuration"))
}

// SaveEmailConfig overrides the session's SMTP settings
func (h *PageHandler) SaveEmailConfig(c *gin.Context) {
	d := h.page(c, "email-config", "Email Configuration")
	sess := h.sessionOf(c)

	var req onboardingapp.EmailSettingsRequest
	if !h.bind(c, d, "settings", &req) {
		c.HTML(http.StatusBadRequest, "email_config.html", d)
		return
	}
	if err := h.service.SaveEmailSettings(sess, req); err != nil {
		c.HTML(d.fail(err), "email_config.html", d)
		return
	}
	if !h.save(c, d, sess) {
		c.HTML(http.StatusInternalServerError, "email_config.html", d)
		return
	}

	d.Configured = sess.EmailConfigured()
	d.Email = sess.Email
	d.success(msgSettingsSaved)
	c.HTML(http.StatusOK, "email_config.html", d)
}

// SendTestEmail mails the test message with the session's settings
func (h *PageHandler) SendTestEmail(c *gin.Context) {
	d := h.page(c, "email-config", "Email Configuration")

	var req onboardingapp.TestEmailRequest
	if !h.bind(c, d, "test", &req) {
		c.HTML(http.StatusBadRequest, "email_config.html", d)
		return
	}
	outcome, err := h.service.SendTestEmail(c.Request.Context(), h.sessionOf(c), req)
	if err != nil {
		c.HTML(d.fail(err), "email_config.html", d)
		return
	}
	d.outcome(outcome)
	c.HTML(http.StatusOK, "email_config.html", d)
}

// =============================================================================
// Phase 1: initial documents
// =============================================================================

// DocumentRequestPage renders the document request form
func (h *PageHandler) DocumentRequestPage(c *gin.Context) {
	c.HTML(http.StatusOK, "phase1.html", h.page(c, "phase1", "Phase 1: Initial Documents"))
}

// SendDocumentRequest asks the candidate for their documents
func (h *PageHandler) SendDocumentRequest(c *gin.Context) {
	d := h.page(c, "phase1", "Phase 1: Initial Documents")

	var req onboardingapp.DocumentRequest
	if !h.bind(c, d, "documents", &req) {
		c.HTML(http.StatusBadRequest, "phase1.html", d)
		return
	}
	outcome, err := h.service.SendDocumentRequest(c.Request.Context(), h.sessionOf(c), req)
	if err != nil {
		c.HTML(d.fail(err), "phase1.html", d)
		return
	}
	d.outcome(outcome)
	c.HTML(http.StatusOK, "phase1.html", d)
}

// =============================================================================
// Phase 2: offer letters
// =============================================================================

// renderOffer shows phase 2 with the preview and salary form of the current draft
func (h *PageHandler) renderOffer(c *gin.Context, status int, d *pageData) {
	sess := middleware.CurrentSession(c)
	if sess != nil && sess.Offer != nil {
		if d.Preview == nil {
			rendered, err := h.service.PreviewOffer(sess)
			if err != nil && d.Flash == nil {
				status = d.fail(err)
			}
			d.Preview = rendered
		}
		if sess.Offer.Record.Category == onboarding.CategoryFullTime && d.Salary == nil {
			salary := onboardingapp.SalaryInputFrom(sess.Offer.Salary)
			d.Salary = &salary
		}
		d.Offer = sess.Offer
	}
	c.HTML(status, "phase2.html", d)
}

// OfferPage renders the offer form
func (h *PageHandler) OfferPage(c *gin.Context) {
	h.renderOffer(c, http.StatusOK, h.page(c, "phase2", "Phase 2: Offer Letters"))
}

// GenerateOffer stores the offer draft and shows its preview
func (h *PageHandler) GenerateOffer(c *gin.Context) {
	d := h.page(c, "phase2", "Phase 2: Offer Letters")
	sess := h.sessionOf(c)

	var req onboardingapp.OfferRequest
	if !h.bind(c, d, "offer", &req) {
		h.renderOffer(c, http.StatusBadRequest, d)
		return
	}
	rendered, err := h.service.GenerateOffer(sess, req)
	if err != nil {
		h.renderOffer(c, d.fail(err), d)
		return
	}
	if !h.save(c, d, sess) {
		h.renderOffer(c, http.StatusInternalServerError, d)
		return
	}

	d.Preview = rendered
	d.success(msgOfferGenerated)
	h.renderOffer(c, http.StatusOK, d)
}

// UpdateOfferSalary replaces the salary breakdown of the offer draft
func (h *PageHandler) UpdateOfferSalary(c *gin.Context) {
	d := h.page(c, "phase2", "Phase 2: Offer Letters")
	sess := h.sessionOf(c)

	var in onboardingapp.SalaryInput
	if !h.bind(c, d, "salary", &in) {
		h.renderOffer(c, http.StatusBadRequest, d)
		return
	}
	rendered, err := h.service.UpdateOfferSalary(sess, in)
	if err != nil {
		d.Salary = &in
		h.renderOffer(c, d.fail(err), d)
		return
	}
	if !h.save(c, d, sess) {
		h.renderOffer(c, http.StatusInternalServerError, d)
		return
	}

	d.Preview = rendered
	d.success(msgOfferUpdated)
	h.renderOffer(c, http.StatusOK, d)
}

// OfferPDF downloads the offer draft as PDF
func (h *PageHandler) OfferPDF(c *gin.Context) {
	doc, err := h.service.OfferPDF(c.Request.Context(), h.sessionOf(c))
	if err != nil {
		d := h.page(c, "phase2", "Phase 2: Offer Letters")
		d.Section = "send"
		h.renderOffer(c, d.fail(err), d)
		return
	}
	h.download(c, doc)
}

// SendOffer mails the offer PDF to the candidate
func (h *PageHandler) SendOffer(c *gin.Context) {
	d := h.page(c, "phase2", "Phase 2: Offer Letters")
	d.Section = "send"

	outcome, err := h.service.SendOffer(c.Request.Context(), h.sessionOf(c))
	if err != nil {
		h.renderOffer(c, d.fail(err), d)
		return
	}
	d.outcome(outcome)
	h.renderOffer(c, http.StatusOK, d)
}

// =============================================================================
// Phase 3: appointment letters
// =============================================================================

func (h *PageHandler) appointmentPage(c *gin.Context) *pageData {
	d := h.page(c, "phase3", "Phase 3: Appointment Letters")
	d.AppointmentSubject = h.service.Composer().DefaultAppointmentSubject()
	d.AppointmentMessage = h.service.Composer().DefaultAppointmentMessage()
	return d
}

func (h *PageHandler) renderAppointment(c *gin.Context, status int, d *pageData) {
	sess := middleware.CurrentSession(c)
	if sess != nil && sess.Appointment != nil && d.Preview == nil {
		rendered, err := h.service.PreviewAppointment(sess)
		if err != nil && d.Flash == nil {
			d.Section = "generate"
			status = d.fail(err)
		}
		d.Preview = rendered
	}
	c.HTML(status, "phase3.html", d)
}

// AppointmentPage renders the upload and generate forms
func (h *PageHandler) AppointmentPage(c *gin.Context) {
	h.renderAppointment(c, http.StatusOK, h.appointmentPage(c))
}

// SendAppointmentUpload mails an uploaded appointment letter
func (h *PageHandler) SendAppointmentUpload(c *gin.Context) {
	d := h.appointmentPage(c)

	var req onboardingapp.AppointmentUploadRequest
	if !h.bind(c, d, "upload", &req) {
		h.renderAppointment(c, http.StatusBadRequest, d)
		return
	}
	if fh, err := c.FormFile("file"); err == nil {
		data, err := readUpload(fh)
		if err != nil {
			h.renderAppointment(c, d.fail(onboardingapp.ErrUploadMissing), d)
			return
		}
		req.Filename = filepath.Base(fh.Filename)
		req.Data = data
	}

	outcome, err := h.service.SendAppointmentUpload(c.Request.Context(), h.sessionOf(c), req)
	if err != nil {
		h.renderAppointment(c, d.fail(err), d)
		return
	}
	d.outcome(outcome)
	h.renderAppointment(c, http.StatusOK, d)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// GenerateAppointment stores the appointment draft and shows its preview
func (h *PageHandler) GenerateAppointment(c *gin.Context) {
	d := h.appointmentPage(c)
	sess := h.sessionOf(c)

	var req onboardingapp.AppointmentRequest
	if !h.bind(c, d, "generate", &req) {
		h.renderAppointment(c, http.StatusBadRequest, d)
		return
	}
	rendered, err := h.service.GenerateAppointment(sess, req)
	if err != nil {
		h.renderAppointment(c, d.fail(err), d)
		return
	}
	if !h.save(c, d, sess) {
		h.renderAppointment(c, http.StatusInternalServerError, d)
		return
	}

	d.Appointment = sess.Appointment
	d.Preview = rendered
	d.success(msgAppointmentGenerated)
	h.renderAppointment(c, http.StatusOK, d)
}

// AppointmentPDF downloads the appointment draft as PDF
func (h *PageHandler) AppointmentPDF(c *gin.Context) {
	doc, err := h.service.AppointmentPDF(c.Request.Context(), h.sessionOf(c))
	if err != nil {
		d := h.appointmentPage(c)
		d.Section = "generate"
		h.renderAppointment(c, d.fail(err), d)
		return
	}
	h.download(c, doc)
}

// =============================================================================
// Phases 4 and 5: welcome and background verification
// =============================================================================

// WelcomePage renders the welcome email form
func (h *PageHandler) WelcomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "phase4.html", h.page(c, "phase4", "Phase 4: Welcome"))
}

// SendWelcome mails the welcome email to the new joiner
func (h *PageHandler) SendWelcome(c *gin.Context) {
	d := h.page(c, "phase4", "Phase 4: Welcome")

	var req onboardingapp.WelcomeRequest
	if !h.bind(c, d, "welcome", &req) {
		c.HTML(http.StatusBadRequest, "phase4.html", d)
		return
	}
	outcome, err := h.service.SendWelcome(c.Request.Context(), h.sessionOf(c), req)
	if err != nil {
		c.HTML(d.fail(err), "phase4.html", d)
		return
	}
	d.outcome(outcome)
	c.HTML(http.StatusOK, "phase4.html", d)
}

// BackgroundVerificationPage renders the BGV form
func (h *PageHandler) BackgroundVerificationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "phase5.html", h.page(c, "phase5", "Phase 5: Background Verification"))
}

// SendBackgroundVerification mails the verification request to the previous employer
func (h *PageHandler) SendBackgroundVerification(c *gin.Context) {
	d := h.page(c, "phase5", "Phase 5: Background Verification")

	var req onboardingapp.BGVRequest
	if !h.bind(c, d, "bgv", &req) {
		c.HTML(http.StatusBadRequest, "phase5.html", d)
		return
	}
	outcome, err := h.service.SendBackgroundVerification(c.Request.Context(), h.sessionOf(c), req)
	if err != nil {
		c.HTML(d.fail(err), "phase5.html", d)
		return
	}
	d.outcome(outcome)
	c.HTML(http.StatusOK, "phase5.html", d)
}

// =============================================================================
// Phase 6: exit
// =============================================================================

func (h *PageHandler) exitPage(c *gin.Context) *pageData {
	return h.page(c, "phase6", "Phase 6: Exit Formalities")
}

func (h *PageHandler) renderExit(c *gin.Context, status int, d *pageData) {
	sess := middleware.CurrentSession(c)
	if sess != nil && sess.Certificate != nil && d.Preview == nil {
		rendered, err := h.service.PreviewCertificate(sess)
		if err != nil && d.Flash == nil {
			d.Section = "certificate"
			status = d.fail(err)
		}
		d.Preview = rendered
	}
	c.HTML(status, "phase6.html", d)
}

// ExitPage renders every exit form
func (h *PageHandler) ExitPage(c *gin.Context) {
	h.renderExit(c, http.StatusOK, h.exitPage(c))
}

// sendExit binds one exit form and shows the send outcome in its section
func sendExit[T any](h *PageHandler, c *gin.Context, section string, send func(*session.Session, T) (*onboardingapp.SendOutcome, error)) {
	d := h.exitPage(c)

	var req T
	if !h.bind(c, d, section, &req) {
		h.renderExit(c, http.StatusBadRequest, d)
		return
	}
	outcome, err := send(h.sessionOf(c), req)
	if err != nil {
		h.renderExit(c, d.fail(err), d)
		return
	}
	d.outcome(outcome)
	h.renderExit(c, http.StatusOK, d)
}

// SendManagerConfirmation asks the manager to confirm the handover
func (h *PageHandler) SendManagerConfirmation(c *gin.Context) {
	sendExit(h, c, "manager", func(sess *session.Session, req onboardingapp.ManagerConfirmationRequest) (*onboardingapp.SendOutcome, error) {
		return h.service.SendManagerConfirmation(c.Request.Context(), sess, req)
	})
}

// SendExitNotice mails the exit formalities to the employee
func (h *PageHandler) SendExitNotice(c *gin.Context) {
	sendExit(h, c, "employee", func(sess *session.Session, req onboardingapp.ExitNoticeRequest) (*onboardingapp.SendOutcome, error) {
		return h.service.SendExitNotice(c.Request.Context(), sess, req)
	})
}

// SendAssetReturn mails the asset dispatch details
func (h *PageHandler) SendAssetReturn(c *gin.Context) {
	sendExit(h, c, "assets", func(sess *session.Session, req onboardingapp.AssetReturnRequest) (*onboardingapp.SendOutcome, error) {
		return h.service.SendAssetReturn(c.Request.Context(), sess, req)
	})
}

// RecordAccessRemoval reports which platforms were revoked
func (h *PageHandler) RecordAccessRemoval(c *gin.Context) {
	d := h.exitPage(c)

	var req onboardingapp.AccessRemovalRequest
	if !h.bind(c, d, "access", &req) {
		h.renderExit(c, http.StatusBadRequest, d)
		return
	}
	removal := h.service.RecordAccessRemoval(h.sessionOf(c), req)
	d.Flash = &flash{Success: removal.Complete(), Message: removal.Report()}
	h.renderExit(c, http.StatusOK, d)
}

// GenerateCertificate stores the certificate draft and shows its preview
func (h *PageHandler) GenerateCertificate(c *gin.Context) {
	d := h.exitPage(c)
	sess := h.sessionOf(c)

	var req onboardingapp.CertificateRequest
	if !h.bind(c, d, "certificate", &req) {
		h.renderExit(c, http.StatusBadRequest, d)
		return
	}
	rendered, err := h.service.GenerateCertificate(sess, req)
	if err != nil {
		h.renderExit(c, d.fail(err), d)
		return
	}
	if !h.save(c, d, sess) {
		h.renderExit(c, http.StatusInternalServerError, d)
		return
	}

	d.Certificate = sess.Certificate
	d.Preview = rendered
	d.success(msgCertificateGenerated)
	h.renderExit(c, http.StatusOK, d)
}

// CertificatePDF downloads the certificate draft as PDF
func (h *PageHandler) CertificatePDF(c *gin.Context) {
	doc, err := h.service.CertificatePDF(c.Request.Context(), h.sessionOf(c))
	if err != nil {
		d := h.exitPage(c)
		d.Section = "certificate"
		h.renderExit(c, d.fail(err), d)
		return
	}
	h.download(c, doc)
}

// SendCertificate mails the certificate PDF to the employee
func (h *PageHandler) SendCertificate(c *gin.Context) {
	d := h.exitPage(c)
	d.Section = "certificate"

	outcome, err := h.service.SendCertificate(c.Request.Context(), h.sessionOf(c))
	if err != nil {
		h.renderExit(c, d.fail(err), d)
		return
	}
	d.outcome(outcome)
	h.renderExit(c, http.StatusOK, d)
}
