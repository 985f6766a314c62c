// ABOUTME: HTML utilities for stripping tags from user-written text
// ABOUTME: Uses goquery to extract the text content of inline HTML found in comment bodies

package html

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tagPattern detects something that looks like an HTML tag, comment or doctype
var tagPattern = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)

// ContainsTags reports whether text contains anything that looks like markup
func ContainsTags(text string) bool {
	return tagPattern.MatchString(text)
}

// StripHTML removes HTML tags and decodes entities, keeping the text content.
// Text without markup is returned unchanged so that a bare "<" in prose survives.
func StripHTML(text string) string {
	if !ContainsTags(text) {
		return text
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return tagPattern.ReplaceAllString(text, "")
	}

	// script and style bodies are not display text
	doc.Find("script, style").Remove()

	return strings.TrimSpace(doc.Text())
}
