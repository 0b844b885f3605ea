package mock

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.Generator = (*Generator)(nil)

// Generator is a mock implementation of regcheck.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}

var _ regcheck.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of regcheck.Embedder.
type Embedder struct {
	EmbedBatchFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedBatchFn(ctx, texts)
}
