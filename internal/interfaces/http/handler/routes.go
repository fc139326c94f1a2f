package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/onboarding/backend/internal/interfaces/http/router"
)

// PageRoutes creates the route group of the workflow pages.
// sessions loads the browser session for every page; sendLimit guards every
// route that sends mail or renders a PDF.
func PageRoutes(handler *PageHandler, sessions, sendLimit gin.HandlerFunc) *router.DomainGroup {
	group := router.NewDomainGroup("pages", "")
	group.Use(sessions)

	group.GET("/", handler.Home)

	settings := group.Group("email-config", "/email-config")
	settings.GET("", handler.EmailConfig)
	settings.POST("", handler.SaveEmailConfig)
	settings.POST("/test", sendLimit, handler.SendTestEmail)

	group.GET("/phase1", handler.DocumentRequestPage)
	group.POST("/phase1", sendLimit, handler.SendDocumentRequest)

	offer := group.Group("offer", "/phase2")
	offer.GET("", handler.OfferPage)
	offer.POST("", handler.GenerateOffer)
	offer.POST("/salary", handler.UpdateOfferSalary)
	offer.GET("/pdf", sendLimit, handler.OfferPDF)
	offer.POST("/send", sendLimit, handler.SendOffer)

	appointment := group.Group("appointment", "/phase3")
	appointment.GET("", handler.AppointmentPage)
	appointment.POST("", sendLimit, handler.SendAppointmentUpload)
	appointment.POST("/generate", handler.GenerateAppointment)
	appointment.GET("/pdf", sendLimit, handler.AppointmentPDF)

	group.GET("/phase4", handler.WelcomePage)
	group.POST("/phase4", sendLimit, handler.SendWelcome)

	group.GET("/phase5", handler.BackgroundVerificationPage)
	group.POST("/phase5", sendLimit, handler.SendBackgroundVerification)

	exit := group.Group("exit", "/phase6")
	exit.GET("", handler.ExitPage)
	exit.POST("/manager", sendLimit, handler.SendManagerConfirmation)
	exit.POST("/employee", sendLimit, handler.SendExitNotice)
	exit.POST("/assets", sendLimit, handler.SendAssetReturn)
	exit.POST("/access", handler.RecordAccessRemoval)
	exit.POST("/certificate", handler.GenerateCertificate)
	exit.GET("/certificate/pdf", sendLimit, handler.CertificatePDF)
	exit.POST("/certificate/send", sendLimit, handler.SendCertificate)

	return group
}

// DocumentRoutes creates the route group of the JSON document API
func DocumentRoutes(handler *DocumentHandler) *router.DomainGroup {
	group := router.NewDomainGroup("documents", "/documents")

	group.POST("/offer", handler.RenderOffer)
	group.POST("/certificate", handler.RenderCertificate)
	group.POST("/appointment", handler.RenderAppointment)

	return group
}

// SystemRoutes creates the route group of the health endpoints
func SystemRoutes(handler *SystemHandler) *router.DomainGroup {
	group := router.NewDomainGroup("system", "")

	group.GET("/health", handler.Health)
	group.GET("/ping", handler.Ping)

	return group
}
