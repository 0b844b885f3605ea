package regcheck

import "context"

// PageLinks holds the links discovered on a single HTML page, split into
// downloadable document candidates and same-host pages to crawl further.
type PageLinks struct {
	Documents []Candidate
	Pages     []string
}

// LinkExtractor parses HTML and classifies its links. The baseURL is used
// to resolve relative hrefs and to decide which pages share the start
// URL's host.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) (*PageLinks, error)
}

// TextScraper extracts readable text from an HTML page, dropping
// structural and non-content markup (scripts, styles, headers, footers,
// navigation, asides) and collapsing the blank lines left behind.
type TextScraper interface {
	ScrapeText(html string) (string, error)
}

// CandidateSource discovers candidate documents reachable from a start
// URL. Implementations hide the crawl strategy.
type CandidateSource interface {
	// Discover crawls breadth-first from startURL up to maxDepth levels
	// of internal links, collecting document links. Candidates are
	// deduplicated by URL; the last-seen title wins.
	Discover(ctx context.Context, startURL string, maxDepth int) ([]Candidate, error)

	// DiscoverPage scrapes only the given page for direct document links.
	DiscoverPage(ctx context.Context, url string) ([]Candidate, error)
}
