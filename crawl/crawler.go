package crawl

import (
	"context"
	"net/url"

	"github.com/tkarwowski/regcheck"
)

// Default crawl parameters.
const (
	DefaultExpectedURLs  = 10000
	DefaultFalsePositive = 0.001
)

// Compile-time interface verification.
var _ regcheck.CandidateSource = (*Crawler)(nil)

// Crawler discovers candidate checklist documents by breadth-first
// crawling a registry site. Pages that fail to fetch or parse are
// skipped, the start URL included; an unreachable site yields zero
// candidates, not an error.
type Crawler struct {
	fetcher regcheck.Fetcher
	links   regcheck.LinkExtractor
	limiter regcheck.DomainLimiter
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithDomainLimiter sets a per-domain rate limiter. Crawls are
// unthrottled by default.
func WithDomainLimiter(l regcheck.DomainLimiter) Option {
	return func(c *Crawler) {
		c.limiter = l
	}
}

// NewCrawler creates a Crawler over the given fetcher and link
// extractor.
func NewCrawler(fetcher regcheck.Fetcher, links regcheck.LinkExtractor, opts ...Option) *Crawler {
	c := &Crawler{
		fetcher: fetcher,
		links:   links,
		limiter: unlimited{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover crawls breadth-first from startURL, following same-host
// links up to maxDepth levels deep, and returns the document candidates
// found. Candidates are deduplicated by URL: the first occurrence fixes
// the position, the last-seen title wins.
func (c *Crawler) Discover(ctx context.Context, startURL string, maxDepth int) ([]regcheck.Candidate, error) {
	if maxDepth < 0 {
		return nil, regcheck.Errorf(regcheck.EINVALID, "maxDepth must be non-negative")
	}

	frontier := NewFrontier(DefaultExpectedURLs, DefaultFalsePositive)
	frontier.Push(startURL, 0)

	collector := newCandidateCollector()

	for {
		page, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		links, err := c.crawlPage(ctx, page.URL)
		if err != nil {
			// Unreachable pages contribute nothing; the fetcher logs them.
			continue
		}

		collector.addAll(links.Documents)

		if page.Depth < maxDepth {
			for _, next := range links.Pages {
				frontier.Push(next, page.Depth+1)
			}
		}
	}

	return collector.candidates(), nil
}

// DiscoverPage scrapes a single page for document links without
// following any further links. An unreachable page yields zero
// candidates, not an error.
func (c *Crawler) DiscoverPage(ctx context.Context, pageURL string) ([]regcheck.Candidate, error) {
	links, err := c.crawlPage(ctx, pageURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return []regcheck.Candidate{}, nil
	}

	collector := newCandidateCollector()
	collector.addAll(links.Documents)
	return collector.candidates(), nil
}

// crawlPage fetches one page, respecting the domain limiter, and
// extracts its links.
func (c *Crawler) crawlPage(ctx context.Context, pageURL string) (*regcheck.PageLinks, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, regcheck.Errorf(regcheck.EINVALID, "invalid URL %q: %v", pageURL, err)
	}

	if err := c.limiter.Wait(ctx, u.Host); err != nil {
		return nil, err
	}

	html, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return c.links.ExtractLinks(html, pageURL)
}

// candidateCollector deduplicates candidates by URL while preserving
// first-occurrence order. When the same URL appears again the stored
// title is replaced, so the last-seen title wins.
type candidateCollector struct {
	order []string
	byURL map[string]regcheck.Candidate
}

func newCandidateCollector() *candidateCollector {
	return &candidateCollector{byURL: make(map[string]regcheck.Candidate)}
}

func (cc *candidateCollector) addAll(candidates []regcheck.Candidate) {
	for _, cand := range candidates {
		if _, ok := cc.byURL[cand.URL]; !ok {
			cc.order = append(cc.order, cand.URL)
		}
		cc.byURL[cand.URL] = cand
	}
}

func (cc *candidateCollector) candidates() []regcheck.Candidate {
	out := make([]regcheck.Candidate, 0, len(cc.order))
	for _, u := range cc.order {
		out = append(out, cc.byURL[u])
	}
	return out
}
