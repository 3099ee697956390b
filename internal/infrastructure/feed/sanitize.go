package feed

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanTitle strips markup some publishers embed in feed titles, unescapes
// HTML entities, and collapses whitespace so the text drops cleanly into
// Slack Markdown.
func CleanTitle(raw string) string {
	text := raw
	if strings.ContainsRune(raw, '<') {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
			text = doc.Text()
		}
	} else {
		text = html.UnescapeString(text)
	}

	return strings.Join(strings.Fields(text), " ")
}
