package document

import (
	"encoding/base64"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/onboarding/backend/internal/domain/onboarding"
)

var (
	headerPNG    = []byte("header-image-bytes")
	footerPNG    = []byte("footer-image-bytes")
	signaturePNG = []byte("signature-image-bytes")
)

const appointmentText = `Naman Nagi 18th June 2025
Confidential
Subject: Letter of Appointment
Dear Naman Nagi,
We are pleased to appoint you as Associate Engineer effective 18th June 2025.
TERMS AND CONDITIONS OF EMPLOYMENT
1. Probation
● Six months from joining

(Signature of Employee)
Assistant Manager HR`

func fixedClock() time.Time {
	return time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"images/header.png":      {Data: headerPNG},
		"images/footer.png":      {Data: footerPNG},
		"images/signature.png":   {Data: signaturePNG},
		"appointment_letter.txt": {Data: []byte(appointmentText)},
	}
}

func newTestGenerator(t *testing.T, assets fstest.MapFS) *Generator {
	t.Helper()
	g, err := NewGenerator(Options{Assets: assets, Clock: fixedClock})
	require.NoError(t, err)
	return g
}

func dateOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func experienceRecord() onboarding.EmployeeRecord {
	end := dateOf(2023, time.December, 31)
	return onboarding.EmployeeRecord{
		Name:      "Singh",
		Title:     onboarding.TitleMr,
		Position:  "Analyst",
		StartDate: dateOf(2023, time.January, 1),
		EndDate:   &end,
	}
}

func TestGenerator_Certificate_Standard(t *testing.T) {
	g := newTestGenerator(t, testAssets())

	doc, err := g.Certificate(experienceRecord(), onboarding.CertificateStandard)
	require.NoError(t, err)

	assert.Equal(t, onboarding.KindExperience, doc.Kind)
	assert.Equal(t, "experience_letter.pdf", doc.AttachmentName)
	assert.Contains(t, doc.HTML, "worked as a Analyst")
	assert.Contains(t, doc.HTML, "<strong>Mr. Singh</strong>")
	assert.Contains(t, doc.HTML, "from <strong>January 01, 2023</strong> to <strong>December 31, 2023</strong>")
	assert.Contains(t, doc.HTML, "During his employment")
	assert.Contains(t, doc.HTML, "We wish him success in his future endeavors.")
	assert.Contains(t, doc.HTML, "All dues are settled.")
	assert.Contains(t, doc.HTML, "EXPERIENCE - CERTIFICATE")
	assert.Contains(t, doc.HTML, "04 March 2025", "issue date comes from the clock")
	assert.NotContains(t, doc.HTML, "their")
	assert.NotContains(t, doc.HTML, " her ")

	again, err := g.Certificate(experienceRecord(), onboarding.CertificateStandard)
	require.NoError(t, err)
	assert.Equal(t, doc.HTML, again.HTML)
}

func TestGenerator_Certificate_OnlyTimestampVaries(t *testing.T) {
	first := newTestGenerator(t, testAssets())
	later, err := NewGenerator(Options{
		Assets: testAssets(),
		Clock:  func() time.Time { return dateOf(2025, time.April, 10) },
	})
	require.NoError(t, err)

	a, err := first.Certificate(experienceRecord(), onboarding.CertificateStandard)
	require.NoError(t, err)
	b, err := later.Certificate(experienceRecord(), onboarding.CertificateStandard)
	require.NoError(t, err)

	assert.Equal(t, a.HTML, strings.Replace(b.HTML, "10 April 2025", "04 March 2025", 1))
}

func TestGenerator_Certificate_Modes(t *testing.T) {
	g := newTestGenerator(t, testAssets())
	end := dateOf(2024, time.June, 30)
	rec := onboarding.EmployeeRecord{
		Name:      "Kapoor",
		Title:     onboarding.TitleMs,
		Position:  "ML Intern",
		StartDate: dateOf(2024, time.January, 1),
		EndDate:   &end,
	}

	t.Run("internship", func(t *testing.T) {
		doc, err := g.Certificate(rec, onboarding.CertificateInternship)
		require.NoError(t, err)
		assert.Equal(t, onboarding.KindInternship, doc.Kind)
		assert.Equal(t, "internship_certificate.pdf", doc.AttachmentName)
		assert.Contains(t, doc.HTML, "To Whom It May Concern")
		assert.Contains(t, doc.HTML, "has completed her internship")
		assert.Contains(t, doc.HTML, "Her internship tenure was from")
		assert.Contains(t, doc.HTML, "She was working with us as an <strong>ML Intern</strong>")
		assert.Contains(t, doc.HTML, "We wish her a bright future.")
	})

	t.Run("dues not settled", func(t *testing.T) {
		doc, err := g.Certificate(rec, onboarding.CertificateDuesNotSettled)
		require.NoError(t, err)
		assert.Equal(t, onboarding.KindDuesNotSettled, doc.Kind)
		assert.Equal(t, "experience_letter_dues_not_settled.pdf", doc.AttachmentName)
		assert.Contains(t, doc.HTML, "However, there are pending dues to be settled.")
		assert.NotContains(t, doc.HTML, "All dues are settled.")
	})

	t.Run("neutral pronouns without honorific", func(t *testing.T) {
		plain := rec
		plain.Title = onboarding.TitleNone
		doc, err := g.Certificate(plain, onboarding.CertificateInternship)
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, "They was working with us")
		assert.Contains(t, doc.HTML, "We wish them a bright future.")
	})

	t.Run("missing end date uses placeholder", func(t *testing.T) {
		open := rec
		open.EndDate = nil
		doc, err := g.Certificate(open, onboarding.CertificateStandard)
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, "to <strong>Please specify</strong>")
	})
}

func TestGenerator_Certificate_TenureMonths(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g, err := NewGenerator(Options{Assets: testAssets(), Clock: fixedClock, Logger: zap.New(core)})
	require.NoError(t, err)

	for _, mode := range onboarding.AllCertificateModes() {
		_, err := g.Certificate(experienceRecord(), mode)
		require.NoError(t, err)
	}

	entries := logs.FilterMessage("Certificate tenure").All()
	require.Len(t, entries, len(onboarding.AllCertificateModes()))
	for _, entry := range entries {
		assert.Equal(t, int64(11), entry.ContextMap()["months"])
	}

	t.Run("no end date logs nothing", func(t *testing.T) {
		rec := experienceRecord()
		rec.EndDate = nil
		before := logs.FilterMessage("Certificate tenure").Len()

		_, err := g.Certificate(rec, onboarding.CertificateStandard)
		require.NoError(t, err)
		assert.Equal(t, before, logs.FilterMessage("Certificate tenure").Len())
	})
}

func TestGenerator_OfferLetter_FullTime(t *testing.T) {
	g := newTestGenerator(t, testAssets())
	rec := onboarding.EmployeeRecord{
		Name:      "Asha Rao",
		Position:  "Backend Engineer",
		StartDate: dateOf(2025, time.March, 17),
		Category:  onboarding.CategoryFullTime,
	}

	doc, err := g.OfferLetter(rec, onboarding.DefaultSalaryBreakdown())
	require.NoError(t, err)

	assert.Equal(t, onboarding.KindOffer, doc.Kind)
	assert.Equal(t, "full-time_employee_letter_Asha_Rao.pdf", doc.AttachmentName)
	assert.Contains(t, doc.HTML, "Date: 17 March 2025")
	assert.Contains(t, doc.HTML, "<strong>Rs. 500,004/-</strong> (Rupees 5 Lakh 4 Only) per annum.")
	assert.Contains(t, doc.HTML, `<div style="page-break-before: always;"></div>`)
	assert.Contains(t, doc.HTML, "COMPENSATION DETAILS (SALARY AND APPLICABLE BENEFITS)")
	assert.Contains(t, doc.HTML, "<td>Books &amp; Periodical</td>")
	assert.Contains(t, doc.HTML, `<td class="amount">19,934</td><td class="amount">239,208</td>`)
	assert.Contains(t, doc.HTML, `<td>Gross CTC</td><td class="amount">39,867</td><td class="amount">478,404</td>`)
	assert.Contains(t, doc.HTML, `<td>PF Employer Contribution</td><td class="amount">1,800</td><td class="amount">21,600</td>`)
	assert.Contains(t, doc.HTML, `<td>Total CTC</td><td class="amount">41,667</td><td class="amount">500,004</td>`)

	pages := strings.Split(doc.HTML, "page-break-before: always;")
	require.Len(t, pages, 2)
	assert.Contains(t, pages[0], "Accepted By")
	assert.NotContains(t, pages[0], "COMPENSATION DETAILS")
	assert.Contains(t, pages[1], "Please Note:")
}

func TestGenerator_OfferLetter_FullTimeWithoutSalary(t *testing.T) {
	g := newTestGenerator(t, testAssets())
	rec := onboarding.EmployeeRecord{
		Name:      "Asha Rao",
		Position:  "Backend Engineer",
		StartDate: dateOf(2025, time.March, 17),
		Category:  onboarding.CategoryFullTime,
	}

	doc, err := g.OfferLetter(rec, nil)
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "<strong>Please specify</strong> per annum.")
	assert.NotContains(t, doc.HTML, "COMPENSATION DETAILS")
	assert.Contains(t, doc.HTML, "Please Note:")
}

func TestGenerator_OfferLetter_InternAndContractor(t *testing.T) {
	g := newTestGenerator(t, testAssets())
	rec := onboarding.EmployeeRecord{
		Name:      "Asha Rao",
		Position:  "Data Analyst",
		StartDate: dateOf(2025, time.March, 17),
		Category:  onboarding.CategoryIntern,
	}

	intern, err := g.OfferLetter(rec, onboarding.DefaultSalaryBreakdown())
	require.NoError(t, err)
	assert.Equal(t, "intern_letter_Asha_Rao.pdf", intern.AttachmentName)
	assert.Contains(t, intern.HTML, "Internship Letter")
	assert.Contains(t, intern.HTML, `<strong>"Data Analyst" Intern</strong> at Rapid Innovation.`)
	assert.Contains(t, intern.HTML, "Your internship will start from <strong>17 March 2025</strong>")
	assert.NotContains(t, intern.HTML, "COMPENSATION DETAILS")
	assert.NotContains(t, intern.HTML, "page-break-before")

	rec.Category = onboarding.CategoryContractor
	contract, err := g.OfferLetter(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, "contractor_letter_Asha_Rao.pdf", contract.AttachmentName)
	assert.Contains(t, contract.HTML, "Contract Letter")
	assert.Contains(t, contract.HTML, `<strong>"Data Analyst" Contractor</strong>`)
	assert.Contains(t, contract.HTML, "This contract is a remote opportunity.")
}

func TestGenerator_BasicOfferLetter(t *testing.T) {
	g := newTestGenerator(t, testAssets())
	rec := onboarding.EmployeeRecord{
		Name:      "Asha Rao",
		Position:  "Designer",
		StartDate: dateOf(2025, time.April, 1),
		Category:  onboarding.CategoryFullTime,
	}

	doc, err := g.BasicOfferLetter(rec, 600000)
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "<strong>Date:</strong> 04 March 2025")
	assert.Contains(t, doc.HTML, "by 11 March 2025.")
	assert.Contains(t, doc.HTML, "starting on 01 April 2025")
	assert.Contains(t, doc.HTML, "<strong>Annual CTC:</strong> ₹600,000")
	assert.Contains(t, doc.HTML, "Probation period: 3 months")
	assert.Contains(t, doc.HTML, "Notice period: 30 days after confirmation")
	assert.Contains(t, doc.HTML, "(Signature of Employee)<br>(Asha Rao)")

	noCTC, err := g.BasicOfferLetter(rec, 0)
	require.NoError(t, err)
	assert.NotContains(t, noCTC.HTML, "Annual CTC")
}

func TestGenerator_AppointmentLetter(t *testing.T) {
	g := newTestGenerator(t, testAssets())
	rec := onboarding.EmployeeRecord{
		Name:      "Asha Rao",
		Position:  "Platform Engineer",
		StartDate: dateOf(2025, time.July, 7),
	}

	doc, err := g.AppointmentLetter(rec)
	require.NoError(t, err)
	assert.Equal(t, onboarding.KindAppointment, doc.Kind)
	assert.Equal(t, "appointment_letter_Asha_Rao.pdf", doc.AttachmentName)
	assert.Contains(t, doc.HTML, `<p class="confidential">Confidential</p>`)
	assert.Contains(t, doc.HTML, "<p>Dear Asha Rao,</p>")
	assert.Contains(t, doc.HTML, "<p>We are pleased to appoint you as Platform Engineer effective 07 July 2025.</p>")
	assert.Contains(t, doc.HTML, "<h3>TERMS AND CONDITIONS OF EMPLOYMENT</h3>")
	assert.Contains(t, doc.HTML, "<ol><li><strong>Probation</strong></li></ol><ul><li>Six months from joining</li></ul><br>")
	assert.Contains(t, doc.HTML, "<p style='text-align: center;'>(Signature of Employee)</p>")
	assert.Contains(t, doc.HTML, "<p style='text-align: center;'><strong>Assistant Manager HR</strong></p>")
	assert.NotContains(t, doc.HTML, "Naman Nagi")
	assert.NotContains(t, doc.HTML, "18th June 2025")
}

func TestGenerator_AppointmentLetter_MissingTemplate(t *testing.T) {
	assets := testAssets()
	delete(assets, "appointment_letter.txt")
	g := newTestGenerator(t, assets)

	doc, err := g.AppointmentLetter(onboarding.EmployeeRecord{Name: "Asha"})
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestGenerator_Images(t *testing.T) {
	t.Run("embeds images as data URLs", func(t *testing.T) {
		g := newTestGenerator(t, testAssets())
		doc, err := g.Certificate(experienceRecord(), onboarding.CertificateStandard)
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, `src="data:image/png;base64,`+base64.StdEncoding.EncodeToString(headerPNG)+`"`)
		assert.Contains(t, doc.HTML, `src="data:image/png;base64,`+base64.StdEncoding.EncodeToString(footerPNG)+`"`)
		assert.Contains(t, doc.HTML, `src="data:image/png;base64,`+base64.StdEncoding.EncodeToString(signaturePNG)+`"`)
	})

	t.Run("missing images degrade to empty sources", func(t *testing.T) {
		g := newTestGenerator(t, fstest.MapFS{})
		doc, err := g.Certificate(experienceRecord(), onboarding.CertificateStandard)
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, `src=""`)
		assert.NotContains(t, doc.HTML, "data:image/png")
	})
}

func TestGenerator_Branding(t *testing.T) {
	g, err := NewGenerator(Options{
		Assets:   testAssets(),
		Clock:    fixedClock,
		Branding: Branding{CompanyName: "Acme Corp", PrimaryColor: "#000000"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Aarushi Sharma", g.Branding().HRManagerName, "blank fields fall back to defaults")

	doc, err := g.Certificate(experienceRecord(), onboarding.CertificateStandard)
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "with Acme Corp from")
	assert.Contains(t, doc.HTML, "color: #000000;")
	assert.Contains(t, doc.HTML, "font-family: Arial, sans-serif;")
}
