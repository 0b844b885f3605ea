package mock

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of regcheck.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) (*regcheck.PageLinks, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) (*regcheck.PageLinks, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ regcheck.TextScraper = (*TextScraper)(nil)

// TextScraper is a mock implementation of regcheck.TextScraper.
type TextScraper struct {
	ScrapeTextFn func(html string) (string, error)
}

func (s *TextScraper) ScrapeText(html string) (string, error) {
	return s.ScrapeTextFn(html)
}

var _ regcheck.CandidateSource = (*CandidateSource)(nil)

// CandidateSource is a mock implementation of regcheck.CandidateSource.
type CandidateSource struct {
	DiscoverFn     func(ctx context.Context, startURL string, maxDepth int) ([]regcheck.Candidate, error)
	DiscoverPageFn func(ctx context.Context, url string) ([]regcheck.Candidate, error)
}

func (s *CandidateSource) Discover(ctx context.Context, startURL string, maxDepth int) ([]regcheck.Candidate, error) {
	return s.DiscoverFn(ctx, startURL, maxDepth)
}

func (s *CandidateSource) DiscoverPage(ctx context.Context, url string) ([]regcheck.Candidate, error) {
	return s.DiscoverPageFn(ctx, url)
}
