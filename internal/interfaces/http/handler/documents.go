package handler

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	onboardingapp "github.com/onboarding/backend/internal/application/onboarding"
	"github.com/onboarding/backend/internal/infrastructure/document"
	"github.com/onboarding/backend/internal/interfaces/http/dto"
	"github.com/onboarding/backend/internal/interfaces/http/middleware"
)

// Output formats of the document API
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// DocumentHandler generates letters without a browser session
type DocumentHandler struct {
	BaseHandler
	service *onboardingapp.Service
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(service *onboardingapp.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// RenderOffer handles POST /api/v1/documents/offer
func (h *DocumentHandler) RenderOffer(c *gin.Context) {
	var req OfferDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	rendered, err := h.service.RenderOffer(req.toApp())
	h.respond(c, rendered, err)
}

// RenderCertificate handles POST /api/v1/documents/certificate
func (h *DocumentHandler) RenderCertificate(c *gin.Context) {
	var req CertificateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	rendered, err := h.service.RenderCertificate(req.toApp())
	h.respond(c, rendered, err)
}

// RenderAppointment handles POST /api/v1/documents/appointment
func (h *DocumentHandler) RenderAppointment(c *gin.Context) {
	var req AppointmentDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	rendered, err := h.service.RenderAppointment(req.toApp())
	h.respond(c, rendered, err)
}

// respond writes the letter as JSON, or as PDF bytes when ?format=pdf
func (h *DocumentHandler) respond(c *gin.Context, rendered *document.Rendered, err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", FormatHTML) {
	case FormatHTML:
		h.Success(c, dto.DocumentResponse{
			Kind:           rendered.Kind.String(),
			Title:          rendered.Title,
			AttachmentName: rendered.AttachmentName,
			HTML:           rendered.HTML,
		})
	case FormatPDF:
		doc, err := h.service.RenderPDF(c.Request.Context(), rendered)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
		c.Data(http.StatusOK, doc.ContentType, doc.Data)
	default:
		h.BadRequest(c, "format must be html or pdf")
	}
}
