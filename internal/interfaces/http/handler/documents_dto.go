package handler

import (
	"strconv"

	onboardingapp "github.com/onboarding/backend/internal/application/onboarding"
)

// OfferDocumentRequest generates an offer letter through the API.
// A positive annual_ctc selects the single-page letter; otherwise full-time offers use salary.
type OfferDocumentRequest struct {
	Category  string                    `json:"category" binding:"required"`
	Title     string                    `json:"title" binding:"omitempty,oneof=Mr. Ms. Mr Ms"`
	Name      string                    `json:"name" binding:"required,max=200"`
	Email     string                    `json:"email" binding:"required,email"`
	Position  string                    `json:"position" binding:"required,max=200"`
	StartDate string                    `json:"start_date" binding:"required,datetime=2006-01-02"`
	AnnualCTC int64                     `json:"annual_ctc" binding:"omitempty,min=1"`
	Salary    onboardingapp.SalaryInput `json:"salary"`
}

func (r OfferDocumentRequest) toApp() onboardingapp.OfferRequest {
	req := onboardingapp.OfferRequest{
		Category:  r.Category,
		Title:     r.Title,
		Name:      r.Name,
		Email:     r.Email,
		Position:  r.Position,
		StartDate: r.StartDate,
		Salary:    r.Salary,
	}
	if r.AnnualCTC > 0 {
		req.AnnualCTC = strconv.FormatInt(r.AnnualCTC, 10)
	}
	return req
}

// CertificateDocumentRequest generates an experience letter or internship certificate
type CertificateDocumentRequest struct {
	Title     string `json:"title" binding:"omitempty,oneof=Mr. Ms. Mr Ms"`
	Name      string `json:"name" binding:"required,max=200"`
	Email     string `json:"email" binding:"required,email"`
	Position  string `json:"position" binding:"required,max=200"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Mode      string `json:"mode" binding:"omitempty,oneof=standard internship dues_not_settled"`
}

func (r CertificateDocumentRequest) toApp() onboardingapp.CertificateRequest {
	return onboardingapp.CertificateRequest{
		Title:     r.Title,
		Name:      r.Name,
		Email:     r.Email,
		Position:  r.Position,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Mode:      r.Mode,
	}
}

// AppointmentDocumentRequest generates an appointment letter from the text template
type AppointmentDocumentRequest struct {
	Title       string `json:"title" binding:"omitempty,oneof=Mr. Ms. Mr Ms"`
	Name        string `json:"name" binding:"required,max=200"`
	Position    string `json:"position" binding:"required,max=200"`
	JoiningDate string `json:"joining_date" binding:"required,datetime=2006-01-02"`
}

func (r AppointmentDocumentRequest) toApp() onboardingapp.AppointmentRequest {
	return onboardingapp.AppointmentRequest{
		Title:       r.Title,
		Name:        r.Name,
		Position:    r.Position,
		JoiningDate: r.JoiningDate,
	}
}
