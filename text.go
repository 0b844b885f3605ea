package regcheck

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	blankLinesRe = regexp.MustCompile(`\n\s*\n+`)
)

// NormalizeText collapses all whitespace runs into single spaces and
// trims the result. Extracted document text is normalized this way before
// being sent to the language model.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// CollapseBlankLines reduces runs of blank lines to a single blank line
// and trims the result. Scraped rule text keeps its line structure but
// loses the vertical padding left behind by stripped markup.
func CollapseBlankLines(s string) string {
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(s, "\n\n"))
}

// Truncate shortens s to at most max bytes without splitting a
// multi-byte rune, so capped prompt sections stay valid UTF-8.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
