// ABOUTME: Display formatting for search results
// ABOUTME: Builds markdown-stripped comment excerpts and relative update times

package format

import (
	"regexp"
	"time"

	"talk-search-api/pkg/utils/duration"
	"talk-search-api/pkg/utils/html"
	timeutil "talk-search-api/pkg/utils/time"
)

// ExcerptLength is the number of characters kept before "..." is appended
const ExcerptLength = 78

var (
	markdownImage = regexp.MustCompile(`!\[([^\]]+)\]\(([^)]+)\)`)
	markdownLink  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Excerpt turns a markdown comment body into a short preview: images are
// dropped, links are replaced by their titles, inline HTML is reduced to its
// text, and the result is cut at ExcerptLength characters.
func Excerpt(body string) string {
	text := markdownImage.ReplaceAllString(body, "")
	text = markdownLink.ReplaceAllString(text, "$1")
	text = html.StripHTML(text)

	runes := []rune(text)
	if len(runes) <= ExcerptLength {
		return text
	}
	return string(runes[:ExcerptLength]) + "..."
}

// RelativeTime renders an update timestamp relative to now, e.g. "3 hours ago".
// Unparseable timestamps yield "".
func RelativeTime(updatedAt string, now time.Time) string {
	t := timeutil.ParseFlexibleTime(updatedAt)
	if t.IsZero() {
		return ""
	}
	return duration.Ago(now.Sub(t))
}
