package regcheck

import "context"

// Generator is the language model collaborator. A request is a single
// prompt; the response is raw text with no structured schema enforced by
// the API itself. Callers parse free text or JSON-in-text themselves.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder converts text strings into fixed-dimension float vectors.
// Implementations batch requests to respect API limits.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
