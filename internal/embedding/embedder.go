// Package embedding computes semantic similarity between documents using
// dense vector embeddings. The embedding capability itself is external and
// modeled as a single-method interface so any backend can be substituted
// without touching the scoring logic.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnavailable indicates the embedding backend failed or timed out.
// Callers recover by treating the semantic component as zero and flagging
// the result as degraded.
var ErrUnavailable = errors.New("embedding backend unavailable")

// Embedder produces a fixed-length dense vector for a text. Implementations
// must be deterministic for identical input text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Similarity returns the semantic closeness of two texts as a percentage in
// [0, 100]. Negative cosine values clamp to zero: they have no meaningful
// "percent match" interpretation here. Empty text on either side yields 0
// without calling the backend.
func Similarity(ctx context.Context, e Embedder, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	va, err := e.Embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("embedding first text: %w", err)
	}
	vb, err := e.Embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("embedding second text: %w", err)
	}

	cos := Cosine(va, vb)
	if cos < 0 {
		cos = 0
	}
	return cos * 100, nil
}

// Cosine returns the cosine similarity of two vectors in [-1, 1]. Mismatched
// lengths or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

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
