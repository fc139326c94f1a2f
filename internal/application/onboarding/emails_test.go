package onboarding

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboarding/backend/internal/domain/onboarding"
)

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(DefaultCompanyProfile())
	require.NoError(t, err)
	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewComposer_FillsProfileDefaults(t *testing.T) {
	c, err := NewComposer(CompanyProfile{Name: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "Acme", c.Profile().Name)
	assert.Equal(t, "Team HR", c.Profile().Team)

	msg, err := c.TestEmail()
	require.NoError(t, err)
	assert.Equal(t, "Test Email - Acme Onboarding System", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "from the Acme Onboarding System")
}

func TestComposer_DocumentRequest(t *testing.T) {
	c := newTestComposer(t)

	t.Run("intern", func(t *testing.T) {
		msg, err := c.DocumentRequest(onboarding.CategoryIntern, "Asha", "Designer")
		require.NoError(t, err)
		assert.Equal(t, `Rapid Innovation - Important Documents Required - "Designer" Intern`, msg.Subject)
		assert.Contains(t, msg.HTMLBody, "Asha")
		assert.Contains(t, msg.HTMLBody, "<ol>")
	})

	t.Run("full-time", func(t *testing.T) {
		msg, err := c.DocumentRequest(onboarding.CategoryFullTime, "Asha", "Designer")
		require.NoError(t, err)
		assert.Equal(t, "Rapid Innovation - Important Documents Required - Designer", msg.Subject)
		assert.Contains(t, msg.HTMLBody, "<ul>")
	})
}

func TestComposer_OfferEmail(t *testing.T) {
	c := newTestComposer(t)

	tests := []struct {
		category  onboarding.Category
		subject   string
		signature string
	}{
		{onboarding.CategoryIntern, `Rapid Innovation - Letter of Internship - "Engineer" Intern`, "<p>Regards<br>"},
		{onboarding.CategoryFullTime, "Rapid Innovation - Offer letter - Engineer", "<p>Best regards,<br>"},
		{onboarding.CategoryContractor, "Rapid Innovation - Contractor's Agreement - Asha Rao", "<p>Thanks &amp; Regards<br>"},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			draft := &onboarding.OfferDraft{Record: onboarding.EmployeeRecord{
				Name:      "Asha Rao",
				Position:  "Engineer",
				StartDate: day(2025, time.March, 3),
				Category:  tt.category,
			}}

			msg, err := c.OfferEmail(draft)
			require.NoError(t, err)
			assert.Equal(t, tt.subject, msg.Subject)
			assert.Contains(t, msg.HTMLBody, "Hello Asha Rao,")
			assert.Contains(t, msg.HTMLBody, "March 03, 2025")
			assert.Contains(t, msg.HTMLBody, tt.signature)
			assert.Contains(t, msg.HTMLBody, "Team HR<br>\nRapid Innovation</p>")
		})
	}
}

func TestComposer_EscapesUserInput(t *testing.T) {
	c := newTestComposer(t)

	msg, err := c.Welcome("<script>alert(1)</script>", "")
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "<script>")
	assert.Contains(t, msg.HTMLBody, "&lt;script&gt;")
}

func TestComposer_Welcome(t *testing.T) {
	c := newTestComposer(t)

	msg, err := c.Welcome("Asha", "")
	require.NoError(t, err)
	assert.Equal(t, "Welcome On Board - Asha", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "docs.google.com/forms")
	for _, p := range EnrollmentPlatforms() {
		assert.Contains(t, msg.HTMLBody, p.Description)
	}

	msg, err = c.Welcome("Asha", "https://forms.example.com/join")
	require.NoError(t, err)
	assert.Contains(t, msg.HTMLBody, `href="https://forms.example.com/join"`)
}

func TestComposer_BackgroundVerification(t *testing.T) {
	c := newTestComposer(t)

	msg, err := c.BackgroundVerification(BGVDetails{
		Name:        "Asha",
		Designation: "Analyst",
		Period:      "Jan 2020 - Dec 2022",
	})
	require.NoError(t, err)

	assert.Equal(t, "Employee Background Verification - Asha - Rapid Innovation", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Analyst")
	assert.Contains(t, msg.HTMLBody, "Jan 2020 - Dec 2022")
	assert.Contains(t, msg.HTMLBody, "<br>(If No, kindly specify the reason)")
	// Employee ID and manager were blank, plus the rows HR fills in
	assert.Equal(t, 8, strings.Count(msg.HTMLBody, "<td>Please specify</td>"))
}

func TestComposer_ManagerConfirmation(t *testing.T) {
	c := newTestComposer(t)
	lwd := day(2025, time.June, 30)

	tests := []struct {
		title      onboarding.Title
		possessive string
		subjectIs  string
	}{
		{onboarding.TitleMr, "all his knowledge transfer", "software he is using"},
		{onboarding.TitleMs, "all her knowledge transfer", "software she is using"},
		{onboarding.TitleNone, "all their knowledge transfer", "software they are using"},
	}

	for _, tt := range tests {
		t.Run(string(tt.title), func(t *testing.T) {
			employee := onboarding.EmployeeRecord{Name: "Rao", Title: tt.title}
			msg, err := c.ManagerConfirmation(employee, "Priya", lwd)
			require.NoError(t, err)

			assert.Equal(t, "Confirmation for proceeding with the Exit formalities - Rao", msg.Subject)
			assert.Contains(t, msg.HTMLBody, "Hi Priya,")
			assert.Contains(t, msg.HTMLBody, "<strong>30 June 2025</strong>")
			assert.Contains(t, msg.HTMLBody, tt.possessive)
			assert.Contains(t, msg.HTMLBody, tt.subjectIs)
		})
	}
}

func TestComposer_ExitNotice(t *testing.T) {
	c := newTestComposer(t)
	lwd := day(2025, time.June, 30)

	msg, err := c.ExitNotice(onboarding.CategoryIntern, "Asha", lwd, "")
	require.NoError(t, err)
	assert.Equal(t, "Exit Formalities - Asha - 30 June 2025", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Monday, 30 June 2025")
	assert.Contains(t, msg.HTMLBody, "invoices will be considered as payslips")
	assert.Contains(t, msg.HTMLBody, "your manager&#39;s email ID")
	assert.NotContains(t, msg.HTMLBody, "Rapid Innovation</p>")

	msg, err = c.ExitNotice(onboarding.CategoryFullTime, "Asha", lwd, "lead@example.com")
	require.NoError(t, err)
	assert.Contains(t, msg.HTMLBody, "payslips are available on Razorpay")
	assert.Contains(t, msg.HTMLBody, "ownership to lead@example.com")
	assert.Contains(t, msg.HTMLBody, "Rapid Innovation</p>")
}

func TestComposer_AssetReturn(t *testing.T) {
	c := newTestComposer(t)

	msg, err := c.AssetReturn(AssetDispatch{Name: "Asha", AssetType: onboarding.AssetMacbook})
	require.NoError(t, err)
	assert.Equal(t, "Asset Dispatch Details", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "<strong>Macbook</strong>")
	assert.Contains(t, msg.HTMLBody, "Armond Fernandes")
	assert.Contains(t, msg.HTMLBody, "9823268663")
	assert.Contains(t, msg.HTMLBody, "Please take insurance in case of Macbook.")

	msg, err = c.AssetReturn(AssetDispatch{
		Name:         "Asha",
		AssetType:    onboarding.AssetWindowsLaptop,
		Address:      "12 Park Street",
		ContactName:  "Ravi",
		ContactPhone: "12345",
	})
	require.NoError(t, err)
	assert.Contains(t, msg.HTMLBody, "12 Park Street")
	assert.Contains(t, msg.HTMLBody, "Ravi")
	assert.NotContains(t, msg.HTMLBody, "insurance")
}

func TestComposer_CertificateEmail(t *testing.T) {
	c := newTestComposer(t)

	draft := &onboarding.CertificateDraft{
		Record: onboarding.EmployeeRecord{Name: "Asha"},
		Mode:   onboarding.CertificateInternship,
	}
	msg, err := c.CertificateEmail(draft)
	require.NoError(t, err)
	assert.Equal(t, "Rapid Innovation - Internship Certificate - Asha", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "PFA: Internship Certificate")
}

func TestComposer_AppointmentUpload(t *testing.T) {
	c := newTestComposer(t)

	assert.Equal(t, "Appointment Letter - Rapid Innovation", c.DefaultAppointmentSubject())
	assert.True(t, strings.HasPrefix(c.DefaultAppointmentMessage(), "Dear Employee,\n\n"))

	msg := c.AppointmentUpload("Your letter", "Hello\nWorld")
	assert.Equal(t, "Your letter", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Hello")
	assert.Contains(t, msg.HTMLBody, "<br")
}
