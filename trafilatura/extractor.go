// Package trafilatura extracts main content from HTML checklist pages,
// removing boilerplate before the page is converted for comparison.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/tkarwowski/regcheck"
)

// Ensure Extractor implements regcheck.Extractor at compile time.
var _ regcheck.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main
// content with navigation, footers, and sidebars removed.
func (e *Extractor) Extract(rawHTML string) (*regcheck.ExtractResult, error) {
	if rawHTML == "" {
		return nil, regcheck.Errorf(regcheck.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &regcheck.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
