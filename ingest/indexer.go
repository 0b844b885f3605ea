// Package ingest builds and queries the regulatory rule index: it
// scrapes the official ruleset, chunks it, embeds the chunks, and
// serves semantic retrieval over the stored vectors.
package ingest

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/tkarwowski/regcheck"
)

// Default ingestion parameters.
const (
	DefaultRulesURL     = "https://en.adgm.thomsonreuters.com/entiresection/1"
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// Ensure Indexer implements regcheck.RuleIndexer at compile time.
var _ regcheck.RuleIndexer = (*Indexer)(nil)

// Indexer populates the rule vector store from the official ruleset
// page. Ingestion is idempotent: a store that already holds records is
// left untouched, and concurrent in-process calls share one ingestion.
type Indexer struct {
	store    regcheck.VectorStore
	fetcher  regcheck.Fetcher
	scraper  regcheck.TextScraper
	embedder regcheck.Embedder

	rulesURL     string
	chunkSize    int
	chunkOverlap int

	group singleflight.Group
}

// IndexerOption configures an Indexer.
type IndexerOption func(*Indexer)

// WithRulesURL overrides the ruleset page URL.
func WithRulesURL(url string) IndexerOption {
	return func(i *Indexer) {
		i.rulesURL = url
	}
}

// WithChunking overrides the chunk size and overlap (in words).
func WithChunking(size, overlap int) IndexerOption {
	return func(i *Indexer) {
		i.chunkSize = size
		i.chunkOverlap = overlap
	}
}

// NewIndexer creates an Indexer.
func NewIndexer(store regcheck.VectorStore, fetcher regcheck.Fetcher, scraper regcheck.TextScraper, embedder regcheck.Embedder, opts ...IndexerOption) *Indexer {
	i := &Indexer{
		store:        store,
		fetcher:      fetcher,
		scraper:      scraper,
		embedder:     embedder,
		rulesURL:     DefaultRulesURL,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// EnsureIndexed makes sure the store is populated, ingesting the
// ruleset on first use.
func (i *Indexer) EnsureIndexed(ctx context.Context) error {
	_, err, _ := i.group.Do("ingest", func() (any, error) {
		return nil, i.ingest(ctx)
	})
	return err
}

func (i *Indexer) ingest(ctx context.Context) error {
	count, err := i.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	html, err := i.fetcher.Fetch(ctx, i.rulesURL)
	if err != nil {
		return err
	}

	text, err := i.scraper.ScrapeText(html)
	if err != nil {
		return err
	}

	chunks, err := regcheck.ChunkWords(text, i.chunkSize, i.chunkOverlap)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return regcheck.Errorf(regcheck.EUNPROCESSABLE, "ruleset page %s yielded no text", i.rulesURL)
	}

	texts := make([]string, len(chunks))
	for n, chunk := range chunks {
		texts[n] = chunk.Text
	}

	embeddings, err := i.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return err
	}

	return i.store.Insert(ctx, chunks, embeddings)
}
