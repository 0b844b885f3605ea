package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tkarwowski/regcheck"
)

// Compile-time interface verification.
var _ regcheck.TextScraper = (*TextScraper)(nil)

// nonContentSelector matches markup that never contributes rule text.
const nonContentSelector = "script, style, header, footer, nav, aside"

// TextScraper extracts the readable text of an HTML page for rule
// indexing. It strips non-content elements and collapses the blank
// lines left behind.
type TextScraper struct{}

// NewTextScraper creates a new TextScraper.
func NewTextScraper() *TextScraper {
	return &TextScraper{}
}

// ScrapeText returns the page's readable text, one block element per
// line, with runs of blank lines collapsed.
func (s *TextScraper) ScrapeText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", regcheck.Errorf(regcheck.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(nonContentSelector).Remove()

	var lines []string
	doc.Find("body").Find("h1, h2, h3, h4, h5, h6, p, li, td, th, blockquote, pre").
		Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if text != "" {
				lines = append(lines, text)
			}
		})

	// Pages without recognizable block structure still carry text.
	if len(lines) == 0 {
		if text := strings.TrimSpace(doc.Find("body").Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return regcheck.CollapseBlankLines(strings.Join(lines, "\n")), nil
}
