package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboarding/backend/internal/domain/shared"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPronounsFor(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    Pronouns
	}{
		{"male honorific", "Mr. Rao", MalePronouns},
		{"female honorific", "Ms. Rao", FemalePronouns},
		{"no honorific", "Rao", NeutralPronouns},
		{"honorific not at start", "Rao Mr.", NeutralPronouns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PronounsFor(tt.display))
		})
	}

	assert.Equal(t, "He", PronounsFor("Mr. Rao").Subject)
	assert.Equal(t, "She", PronounsFor("Ms. Rao").Subject)
	assert.Equal(t, "They", PronounsFor("Rao").Subject)
}

func TestEmployeeRecord_DisplayName(t *testing.T) {
	t.Run("keeps honorific in displayed name", func(t *testing.T) {
		rec := EmployeeRecord{Name: "Singh", Title: TitleMr}
		assert.Equal(t, "Mr. Singh", rec.DisplayName())
		assert.Equal(t, MalePronouns, rec.Pronouns())
	})

	t.Run("plain name without title", func(t *testing.T) {
		rec := EmployeeRecord{Name: "Singh"}
		assert.Equal(t, "Singh", rec.DisplayName())
		assert.Equal(t, NeutralPronouns, rec.Pronouns())
	})

	t.Run("honorific typed into name", func(t *testing.T) {
		rec := EmployeeRecord{Name: "Ms. Kapoor"}
		assert.Equal(t, FemalePronouns, rec.Pronouns())
	})
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"day of month ignored", date(2024, 1, 15), date(2024, 4, 10), 3},
		{"month boundary counts as a month", date(2024, 1, 31), date(2024, 2, 1), 1},
		{"across years", date(2023, 1, 1), date(2023, 12, 31), 11},
		{"same month", date(2024, 5, 1), date(2024, 5, 30), 0},
		{"multi-year", date(2021, 11, 1), date(2024, 2, 1), 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.start, tt.end))
		})
	}
}

func TestEmployeeRecord_TenureMonths(t *testing.T) {
	end := date(2024, 4, 10)
	rec := EmployeeRecord{StartDate: date(2024, 1, 15), EndDate: &end}

	months, ok := rec.TenureMonths()
	assert.True(t, ok)
	assert.Equal(t, 3, months)

	rec.EndDate = nil
	_, ok = rec.TenureMonths()
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"Intern", CategoryIntern},
		{"intern", CategoryIntern},
		{"Full-time Employee", CategoryFullTime},
		{"full_time", CategoryFullTime},
		{" Full-time ", CategoryFullTime},
		{"Contractor", CategoryContractor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		_, err := ParseCategory("Consultant")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidation, domainErr.Code)
	})
}

func TestCategory_Slug(t *testing.T) {
	assert.Equal(t, "intern", CategoryIntern.Slug())
	assert.Equal(t, "full-time_employee", CategoryFullTime.Slug())
	assert.Equal(t, "contractor", CategoryContractor.Slug())
}

func TestTitle_IsValid(t *testing.T) {
	assert.True(t, TitleNone.IsValid())
	assert.True(t, TitleMr.IsValid())
	assert.True(t, TitleMs.IsValid())
	assert.False(t, Title("Dr.").IsValid())
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		input string
		want  Title
	}{
		{"", TitleNone},
		{"Mr.", TitleMr},
		{"mr", TitleMr},
		{" Ms. ", TitleMs},
		{"MS", TitleMs},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTitle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseTitle("Dr.")
	assert.Error(t, err)
}
