package document

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Date layouts used on letters
const (
	LetterDateLayout  = "02 January 2006"         // 04 March 2025
	TenureDateLayout  = "January 02, 2006"        // March 04, 2025
	WeekdayDateLayout = "Monday, 02 January 2006" // Tuesday, 04 March 2025
)

// PlaceholderUnspecified replaces optional values a letter needs but the caller did not provide
const PlaceholderUnspecified = "Please specify"

// lakh is 100,000 units
const lakh = 100000

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount groups digits in threes: 150000 -> "150,000"
func FormatAmount(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

// AmountInWords is the simplified figure printed after "Rupees" on offer letters.
// Amounts of one lakh or more become "{n} Lakh" plus the grouped remainder;
// smaller amounts are only grouped. Crore is not handled.
func AmountInWords(n int64) string {
	if n < lakh {
		return FormatAmount(n)
	}
	lakhs, remainder := n/lakh, n%lakh
	if remainder == 0 {
		return fmt.Sprintf("%d Lakh", lakhs)
	}
	return fmt.Sprintf("%d Lakh %s", lakhs, FormatAmount(remainder))
}

// FormatLetterDate formats t as "02 January 2006"
func FormatLetterDate(t time.Time) string {
	return t.Format(LetterDateLayout)
}

// FormatTenureDate formats t as "January 02, 2006"
func FormatTenureDate(t time.Time) string {
	return t.Format(TenureDateLayout)
}

// FormatWeekdayDate formats t as "Monday, 02 January 2006"
func FormatWeekdayDate(t time.Time) string {
	return t.Format(WeekdayDateLayout)
}
