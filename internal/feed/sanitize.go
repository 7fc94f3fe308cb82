package feed

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// cleanText strips markup, decodes entities, and collapses whitespace in a
// feed text field. Descriptions frequently arrive as HTML fragments.
func cleanText(text string) string {
	if text == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// Degraded path: plain tag removal and entity decoding.
		return collapseWhitespace(html.UnescapeString(tagPattern.ReplaceAllString(text, "")))
	}

	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
