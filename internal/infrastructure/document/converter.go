package document

import (
	"html"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	bulletMarker       = "●"
	confidentialLine   = "Confidential"
	maxSubheadingRunes = 80
	maxOrdinal         = 13
)

var sectionTitles = []string{
	"TERMS AND CONDITIONS OF EMPLOYMENT",
	"EMPLOYEE PROPRIETARY INFORMATION",
	"NON-COMPETITION AND NON-SOLICITATION AGREEMENT",
}

type listKind int

const (
	listNone listKind = iota
	listBullet
	listNumbered
)

// Converter turns a plain-text letter into structured HTML, one line at a time
type Converter struct {
	closingPhrases []string
}

// NewConverter creates a converter that centres and bolds lines containing any closing phrase
func NewConverter(closingPhrases ...string) *Converter {
	return &Converter{closingPhrases: closingPhrases}
}

var defaultConverter = NewConverter("ACCEPTED AND AGREED TO:", "Rapid Innovation", "Assistant Manager HR")

// ConvertText converts text with the default closing phrases
func ConvertText(text string) string {
	return defaultConverter.Convert(text)
}

// Convert classifies each line of text and emits the matching HTML.
// The first line carries the name and date and is skipped.
func (c *Converter) Convert(text string) string {
	var b strings.Builder
	open := listNone

	closeList := func() {
		switch open {
		case listBullet:
			b.WriteString("</ul>")
		case listNumbered:
			b.WriteString("</ol>")
		}
		open = listNone
	}
	openList := func(kind listKind) {
		if open == kind {
			return
		}
		closeList()
		if kind == listBullet {
			b.WriteString("<ul>")
		} else {
			b.WriteString("<ol>")
		}
		open = kind
	}

	for i, raw := range strings.Split(text, "\n") {
		if i == 0 {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			closeList()
			b.WriteString("<br>")
			continue
		}
		escaped := html.EscapeString(line)

		switch {
		case strings.HasPrefix(line, bulletMarker):
			openList(listBullet)
			b.WriteString("<li>" + html.EscapeString(strings.TrimSpace(strings.TrimPrefix(line, bulletMarker))) + "</li>")
		case line == confidentialLine:
			closeList()
			b.WriteString(`<p class="confidential">` + escaped + "</p>")
		case strings.HasPrefix(line, "Subject:"):
			closeList()
			b.WriteString("<p><strong>" + escaped + "</strong></p>")
		case strings.HasPrefix(line, "Dear "):
			closeList()
			b.WriteString("<p>" + escaped + "</p>")
		case containsAny(line, sectionTitles):
			closeList()
			b.WriteString("<h3>" + escaped + "</h3>")
		case hasOrdinalPrefix(line):
			openList(listNumbered)
			_, rest, _ := strings.Cut(line, ".")
			b.WriteString("<li><strong>" + html.EscapeString(strings.TrimSpace(rest)) + "</strong></li>")
		case isSubheading(line):
			closeList()
			b.WriteString("<h4>" + escaped + "</h4>")
		case strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")"):
			closeList()
			b.WriteString("<p style='text-align: center;'>" + escaped + "</p>")
		case containsAny(line, c.closingPhrases):
			closeList()
			b.WriteString("<p style='text-align: center;'><strong>" + escaped + "</strong></p>")
		default:
			closeList()
			b.WriteString("<p>" + escaped + "</p>")
		}
	}
	closeList()

	return b.String()
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// hasOrdinalPrefix matches "1." through "13."
func hasOrdinalPrefix(line string) bool {
	for n := 1; n <= maxOrdinal; n++ {
		if strings.HasPrefix(line, strconv.Itoa(n)+".") {
			return true
		}
	}
	return false
}

func isSubheading(line string) bool {
	if strings.HasSuffix(line, ":") && utf8.RuneCountInString(line) < maxSubheadingRunes {
		return true
	}
	return isUpper(line)
}

// isUpper reports whether line has at least one cased letter and no lower or title case letters
func isUpper(line string) bool {
	cased := false
	for _, r := range line {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
