package mail

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	plainBodyMarkdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))
	plainBodyPolicy   = bluemonday.UGCPolicy()
)

// FormatPlainBody turns a message typed into a form into an HTML email body.
// Line breaks are kept and any markup the user typed is sanitised.
func FormatPlainBody(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var buf bytes.Buffer
	if err := plainBodyMarkdown.Convert([]byte(text), &buf); err != nil {
		buf.Reset()
		buf.WriteString(strings.ReplaceAll(text, "\n", "<br>"))
	}

	return "<html>\n<body>\n" + plainBodyPolicy.Sanitize(buf.String()) + "</body>\n</html>\n"
}
