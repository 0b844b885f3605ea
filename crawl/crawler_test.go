package crawl_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkarwowski/regcheck"
	"github.com/tkarwowski/regcheck/crawl"
	"github.com/tkarwowski/regcheck/goquery"
	"github.com/tkarwowski/regcheck/mock"
)

// siteFetcher serves a fixed map of URL -> HTML and records every fetch.
type siteFetcher struct {
	mu      sync.Mutex
	pages   map[string]string
	fetched []string
}

func (f *siteFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, url)
	f.mu.Unlock()

	html, ok := f.pages[url]
	if !ok {
		return "", regcheck.Errorf(regcheck.EUNPROCESSABLE, "HTTP 404 for %s", url)
	}
	return html, nil
}

func (f *siteFetcher) Close() error { return nil }

func newCrawler(fetcher regcheck.Fetcher) *crawl.Crawler {
	return crawl.NewCrawler(fetcher, goquery.NewLinkExtractor())
}

func TestCrawler_Discover_CollectsDocumentsAcrossDepths(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{
		"https://www.example.gov/start": `
			<a href="/forms/a.pdf">Form A</a>
			<a href="/level1">Level 1</a>`,
		"https://www.example.gov/level1": `
			<a href="/forms/b.docx">Form B</a>
			<a href="/level2">Level 2</a>`,
		"https://www.example.gov/level2": `
			<a href="/forms/c.pdf">Form C</a>
			<a href="/level3">Level 3</a>`,
		"https://www.example.gov/level3": `
			<a href="/forms/d.pdf">Form D</a>`,
	}}

	got, err := newCrawler(fetcher).Discover(context.Background(), "https://www.example.gov/start", 2)

	require.NoError(t, err)

	urls := make([]string, len(got))
	for i, c := range got {
		urls[i] = c.URL
	}
	// Depth 2 reaches level2 but never follows its links to level3.
	assert.Equal(t, []string{
		"https://www.example.gov/forms/a.pdf",
		"https://www.example.gov/forms/b.docx",
		"https://www.example.gov/forms/c.pdf",
	}, urls)
	assert.NotContains(t, fetcher.fetched, "https://www.example.gov/level3")
}

func TestCrawler_Discover_NeverRevisitsPages(t *testing.T) {
	t.Parallel()

	// start and loop link to each other; every page links back to start.
	fetcher := &siteFetcher{pages: map[string]string{
		"https://www.example.gov/start": `
			<a href="/loop">Loop</a>
			<a href="/start">Self</a>`,
		"https://www.example.gov/loop": `
			<a href="/start">Back</a>
			<a href="/start#section">Back anchored</a>`,
	}}

	_, err := newCrawler(fetcher).Discover(context.Background(), "https://www.example.gov/start", 5)

	require.NoError(t, err)

	counts := make(map[string]int)
	for _, u := range fetcher.fetched {
		counts[u]++
	}
	for u, n := range counts {
		assert.Equal(t, 1, n, "page %s fetched %d times", u, n)
	}
}

func TestCrawler_Discover_DedupesByURLLastTitleWins(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{
		"https://www.example.gov/start": `
			<a href="/forms/a.pdf">Draft title</a>
			<a href="/other">Other</a>`,
		"https://www.example.gov/other": `
			<a href="/forms/a.pdf">Final title</a>`,
	}}

	got, err := newCrawler(fetcher).Discover(context.Background(), "https://www.example.gov/start", 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Final title", got[0].Title)
	assert.Equal(t, "https://www.example.gov/forms/a.pdf", got[0].URL)
}

func TestCrawler_Discover_SkipsUnreachableInnerPages(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{
		"https://www.example.gov/start": `
			<a href="/forms/a.pdf">Form A</a>
			<a href="/gone">Broken</a>
			<a href="/alive">Alive</a>`,
		"https://www.example.gov/alive": `
			<a href="/forms/b.pdf">Form B</a>`,
	}}

	got, err := newCrawler(fetcher).Discover(context.Background(), "https://www.example.gov/start", 1)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCrawler_Discover_StartURLFailureYieldsNoCandidates(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{}}

	got, err := newCrawler(fetcher).Discover(context.Background(), "https://www.example.gov/missing", 2)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCrawler_DiscoverPage_FetchFailureYieldsNoCandidates(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{}}

	got, err := newCrawler(fetcher).DiscoverPage(context.Background(), "https://www.example.gov/missing")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCrawler_Discover_DepthZeroScrapesOnlyStartPage(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{
		"https://www.example.gov/start": `
			<a href="/forms/a.pdf">Form A</a>
			<a href="/level1">Level 1</a>`,
	}}

	got, err := newCrawler(fetcher).Discover(context.Background(), "https://www.example.gov/start", 0)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, []string{"https://www.example.gov/start"}, fetcher.fetched)
}

func TestCrawler_DiscoverPage(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{
		"https://www.example.gov/checklists": `
			<a href="/forms/a.pdf">Form A</a>
			<a href="/forms/a.pdf">Form A again</a>
			<a href="/deeper">Deeper</a>`,
	}}

	got, err := newCrawler(fetcher).DiscoverPage(context.Background(), "https://www.example.gov/checklists")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Form A again", got[0].Title)
	// No recursion into linked pages.
	assert.Equal(t, []string{"https://www.example.gov/checklists"}, fetcher.fetched)
}

func TestCrawler_Discover_RespectsDomainLimiter(t *testing.T) {
	t.Parallel()

	fetcher := &siteFetcher{pages: map[string]string{
		"https://www.example.gov/start": `<a href="/forms/a.pdf">Form A</a>`,
	}}

	var domains []string
	limiter := &mock.DomainLimiter{
		WaitFn: func(_ context.Context, domain string) error {
			domains = append(domains, domain)
			return nil
		},
	}

	c := crawl.NewCrawler(fetcher, goquery.NewLinkExtractor(), crawl.WithDomainLimiter(limiter))

	_, err := c.Discover(context.Background(), "https://www.example.gov/start", 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"www.example.gov"}, domains)
}
