package regcheck

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Used to turn web-hosted checklists into clean text for comparison.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts clean HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
