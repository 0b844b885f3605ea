// Package checklist locates the official checklist documents that apply
// to a classified document: a mapping table points each document type at
// either a direct document or a site to crawl, and an LLM filter keeps
// only the crawled candidates relevant to the uploaded document.
package checklist

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

// DefaultCrawlDepth is how many levels of internal links the deep crawl
// follows from the official site root.
const DefaultCrawlDepth = 2

// DirectDocumentSummary marks candidates that came straight from the
// mapping table rather than from a crawl.
const DirectDocumentSummary = "Direct official document (no scraping needed)."

// Ensure Service implements regcheck.ChecklistFinder at compile time.
var _ regcheck.ChecklistFinder = (*Service)(nil)

// Service resolves a classification to checklist documents. A type
// without a mapping entry yields an empty result, not an error.
type Service struct {
	mapping    regcheck.Mapping
	source     regcheck.CandidateSource
	filter     regcheck.CandidateFilter
	crawlDepth int
	deepCrawl  bool
}

// Option configures a Service.
type Option func(*Service)

// WithCrawlDepth sets the deep-crawl depth. Defaults to
// DefaultCrawlDepth.
func WithCrawlDepth(depth int) Option {
	return func(s *Service) {
		s.crawlDepth = depth
	}
}

// WithSinglePageScrape disables the deep crawl: only the mapped site
// root itself is scraped for document links.
func WithSinglePageScrape() Option {
	return func(s *Service) {
		s.deepCrawl = false
	}
}

// NewService creates a checklist Service.
func NewService(mapping regcheck.Mapping, source regcheck.CandidateSource, filter regcheck.CandidateFilter, opts ...Option) *Service {
	s := &Service{
		mapping:    mapping,
		source:     source,
		filter:     filter,
		crawlDepth: DefaultCrawlDepth,
		deepCrawl:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindChecklists returns the checklist documents for the classified
// type. Direct document mappings skip the crawl and the filter; crawled
// candidates pass through the relevance filter before being returned.
func (s *Service) FindChecklists(ctx context.Context, cls regcheck.Classification, docText string) (*regcheck.ChecklistResult, error) {
	source, ok := s.mapping.Lookup(cls.Type())
	if !ok {
		return &regcheck.ChecklistResult{}, nil
	}

	if regcheck.IsDirectDocument(source) {
		return &regcheck.ChecklistResult{
			OfficialURL: &source,
			Documents: []regcheck.Candidate{{
				Title:   regcheck.DocumentBasename(source),
				URL:     source,
				Summary: DirectDocumentSummary,
			}},
		}, nil
	}

	var candidates []regcheck.Candidate
	var err error
	if s.deepCrawl {
		candidates, err = s.source.Discover(ctx, source, s.crawlDepth)
	} else {
		candidates, err = s.source.DiscoverPage(ctx, source)
	}
	if err != nil {
		return nil, err
	}

	filtered, err := s.filter.FilterCandidates(ctx, candidates, docText)
	if err != nil {
		return nil, err
	}

	return &regcheck.ChecklistResult{
		OfficialURL: &source,
		Documents:   filtered,
	}, nil
}
