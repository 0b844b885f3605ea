package regcheck

import (
	"fmt"
	"strings"
)

// RuleChunk is a fixed-size, overlapping slice of the reference ruleset
// prepared for embedding and retrieval. Chunks are immutable once stored
// and keyed by sequential id ("rule_0", "rule_1", ...).
type RuleChunk struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ChunkWords splits text into word-based chunks of size words with the
// given overlap between consecutive chunks. Chunking is deterministic:
// the same text and parameters always yield the same chunk sequence.
func ChunkWords(text string, size, overlap int) ([]RuleChunk, error) {
	if size <= 0 {
		return nil, Errorf(EINVALID, "chunk size must be positive")
	}
	if overlap < 0 || overlap >= size {
		return nil, Errorf(EINVALID, "chunk overlap must be in [0, size)")
	}

	words := strings.Fields(text)
	stride := size - overlap

	var chunks []RuleChunk
	for i := 0; i < len(words); i += stride {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if chunk == "" {
			continue
		}
		chunks = append(chunks, RuleChunk{
			ID:   fmt.Sprintf("rule_%d", len(chunks)),
			Text: chunk,
		})
	}
	return chunks, nil
}
