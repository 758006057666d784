package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

// termFreqDimensions is the fixed vector length of the local embedder.
const termFreqDimensions = 512

// TermFrequencyEmbedder is a local, deterministic embedding backend: each
// token is hashed into a fixed-size bucket vector weighted by occurrence
// count. It captures word overlap rather than semantics and exists as an
// offline fallback when no model-backed embedder is configured, and as a
// deterministic backend for tests.
type TermFrequencyEmbedder struct {
	dims int
}

// NewTermFrequency returns a local hashed term-frequency embedder.
func NewTermFrequency() *TermFrequencyEmbedder {
	return &TermFrequencyEmbedder{dims: termFreqDimensions}
}

// Embed never fails; empty text yields the zero vector.
func (t *TermFrequencyEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, t.dims)

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		h := fnv.New32a()
		h.Write([]byte(w))
		vec[h.Sum32()%uint32(t.dims)]++
	}

	return vec, nil
}
