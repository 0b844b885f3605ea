package regcheck

import "context"

// VectorStore persists embedded rule chunks and answers nearest-neighbor
// queries. The store, once populated, is treated as append-never:
// ingestion runs only when Count reports zero records.
type VectorStore interface {
	// Count returns the number of stored rule chunks.
	Count(ctx context.Context) (int, error)

	// Insert stores chunks with their embeddings. The two slices must
	// have equal length; embeddings must share one dimension.
	Insert(ctx context.Context, chunks []RuleChunk, embeddings [][]float32) error

	// Query returns the k chunks nearest to the embedding, most similar
	// first.
	Query(ctx context.Context, embedding []float32, k int) ([]RuleChunk, error)
}
