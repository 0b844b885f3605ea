// Package goquery provides HTML scraping: document link extraction for
// the crawler and readable-text extraction for the rule indexer.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tkarwowski/regcheck"
)

// Ensure LinkExtractor implements regcheck.LinkExtractor at compile time.
var _ regcheck.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor classifies a page's anchors into downloadable document
// candidates and same-host pages worth crawling further.
type LinkExtractor struct {
	extensions []string
}

// NewLinkExtractor creates a LinkExtractor for the standard document
// extension set (.pdf, .doc, .docx).
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{extensions: regcheck.DocumentExtensions}
}

// ExtractLinks parses HTML and returns the page's links. Relative hrefs
// are resolved against baseURL. Links whose path ends in a document
// extension become candidates titled by their anchor text (falling back
// to the file name); other links sharing baseURL's host are returned as
// pages to crawl.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) (*regcheck.PageLinks, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, regcheck.Errorf(regcheck.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, regcheck.Errorf(regcheck.EINVALID, "failed to parse HTML: %v", err)
	}

	links := &regcheck.PageLinks{}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			// Malformed href; skip rather than resolve to the base URL.
			return
		}

		resolved := base.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}

		if e.isDocumentLink(resolved) {
			title := strings.TrimSpace(sel.Text())
			if title == "" {
				title = path.Base(resolved.Path)
			}
			links.Documents = append(links.Documents, regcheck.Candidate{
				Title: title,
				URL:   resolved.String(),
			})
			return
		}

		if resolved.Host == base.Host {
			links.Pages = append(links.Pages, resolved.String())
		}
	})

	return links, nil
}

// isDocumentLink reports whether the URL path ends in one of the
// configured document extensions.
func (e *LinkExtractor) isDocumentLink(u *url.URL) bool {
	lower := strings.ToLower(u.Path)
	for _, ext := range e.extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// isNonHTTPLink reports whether an href uses a non-navigable scheme.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "#")
}
