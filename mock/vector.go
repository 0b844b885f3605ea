package mock

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.VectorStore = (*VectorStore)(nil)

// VectorStore is a mock implementation of regcheck.VectorStore.
type VectorStore struct {
	CountFn  func(ctx context.Context) (int, error)
	InsertFn func(ctx context.Context, chunks []regcheck.RuleChunk, embeddings [][]float32) error
	QueryFn  func(ctx context.Context, embedding []float32, k int) ([]regcheck.RuleChunk, error)
}

func (s *VectorStore) Count(ctx context.Context) (int, error) {
	return s.CountFn(ctx)
}

func (s *VectorStore) Insert(ctx context.Context, chunks []regcheck.RuleChunk, embeddings [][]float32) error {
	return s.InsertFn(ctx, chunks, embeddings)
}

func (s *VectorStore) Query(ctx context.Context, embedding []float32, k int) ([]regcheck.RuleChunk, error) {
	return s.QueryFn(ctx, embedding, k)
}
