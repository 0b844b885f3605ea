package ingest

import (
	"context"
	"strings"

	"github.com/tkarwowski/regcheck"
)

// DefaultTopK is how many rule chunks retrieval returns.
const DefaultTopK = 5

// Ensure Retriever implements regcheck.RuleRetriever at compile time.
var _ regcheck.RuleRetriever = (*Retriever)(nil)

// Retriever answers semantic queries over the indexed rule chunks.
type Retriever struct {
	store    regcheck.VectorStore
	embedder regcheck.Embedder
	topK     int
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithTopK overrides how many chunks are retrieved.
func WithTopK(k int) RetrieverOption {
	return func(r *Retriever) {
		r.topK = k
	}
}

// NewRetriever creates a Retriever.
func NewRetriever(store regcheck.VectorStore, embedder regcheck.Embedder, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		store:    store,
		embedder: embedder,
		topK:     DefaultTopK,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RetrieveRules embeds the query and returns the nearest rule chunks
// concatenated in rank order, separated by blank lines.
func (r *Retriever) RetrieveRules(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", regcheck.Errorf(regcheck.EINVALID, "query text required")
	}

	embeddings, err := r.embedder.EmbedBatch(ctx, []string{query})
	if err != nil {
		return "", err
	}
	if len(embeddings) != 1 {
		return "", regcheck.Errorf(regcheck.EINTERNAL, "expected 1 query embedding, got %d", len(embeddings))
	}

	chunks, err := r.store.Query(ctx, embeddings[0], r.topK)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	return strings.Join(texts, "\n\n"), nil
}
