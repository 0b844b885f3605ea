package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"math"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/tkarwowski/regcheck"
)

// Compile-time interface verification.
var _ regcheck.VectorStore = (*RuleStore)(nil)

// RuleStore implements regcheck.VectorStore over a SQLite table.
// Nearest-neighbor queries are answered by brute-force cosine similarity
// over all stored embeddings, which is adequate for a single ruleset of
// a few thousand chunks.
type RuleStore struct {
	db *DB
}

// NewRuleStore creates a new RuleStore.
func NewRuleStore(db *DB) *RuleStore {
	return &RuleStore{db: db}
}

// Count returns the number of stored rule chunks.
func (s *RuleStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rule_chunks`).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Insert stores chunks with their embeddings under sequential positions.
func (s *RuleStore) Insert(ctx context.Context, chunks []regcheck.RuleChunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return regcheck.Errorf(regcheck.EINVALID,
			"got %d chunks but %d embeddings", len(chunks), len(embeddings))
	}

	for i, chunk := range chunks {
		if chunk.ID == "" {
			return regcheck.Errorf(regcheck.EINVALID, "chunk %d has no id", i)
		}
		if len(embeddings[i]) == 0 {
			return regcheck.Errorf(regcheck.EINVALID, "chunk %q has an empty embedding", chunk.ID)
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO rule_chunks (id, seq, content, content_hash, embedding, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, chunk.ID, i, chunk.Text, hashContent(chunk.Text),
			encodeVector(embeddings[i]), time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return nil
}

// Query returns the k chunks nearest to the embedding, most similar first.
func (s *RuleStore) Query(ctx context.Context, embedding []float32, k int) ([]regcheck.RuleChunk, error) {
	if k <= 0 {
		return nil, regcheck.Errorf(regcheck.EINVALID, "k must be positive")
	}
	if len(embedding) == 0 {
		return nil, regcheck.Errorf(regcheck.EINVALID, "query embedding required")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, content, embedding FROM rule_chunks ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type scored struct {
		chunk regcheck.RuleChunk
		score float64
	}

	var candidates []scored
	for rows.Next() {
		var chunk regcheck.RuleChunk
		var blob []byte
		if err := rows.Scan(&chunk.ID, &chunk.Text, &blob); err != nil {
			return nil, err
		}

		stored := decodeVector(blob)
		if len(stored) != len(embedding) {
			return nil, regcheck.Errorf(regcheck.EINTERNAL,
				"stored embedding for %q has dimension %d, query has %d",
				chunk.ID, len(stored), len(embedding))
		}

		candidates = append(candidates, scored{chunk: chunk, score: cosineSimilarity(embedding, stored)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	chunks := make([]regcheck.RuleChunk, 0, k)
	for _, c := range candidates[:k] {
		chunks = append(chunks, c.chunk)
	}
	return chunks, nil
}

// cosineSimilarity returns the cosine similarity of two equal-length
// vectors. Zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// encodeVector serializes a float32 vector as little-endian bytes.
func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

// decodeVector deserializes a little-endian float32 vector.
func decodeVector(buf []byte) []float32 {
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return v
}

// hashContent computes the xxHash of chunk text as a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}
