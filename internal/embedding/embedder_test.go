package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder returns canned vectors keyed by input text.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length mismatch", []float32{1}, []float32{1, 2}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Rescaling(t *testing.T) {
	e := &stubEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {1, 0},
		"c": {0, 1},
		"d": {-1, 0},
	}}
	ctx := context.Background()

	got, err := Similarity(ctx, e, "a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 100, got, 1e-9)

	got, err = Similarity(ctx, e, "a", "c")
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-9)

	// Negative cosine clamps to zero rather than going below.
	got, err = Similarity(ctx, e, "a", "d")
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-9)
}

func TestSimilarity_EmptyTextSkipsBackend(t *testing.T) {
	e := &stubEmbedder{err: errors.New("backend must not be called")}
	ctx := context.Background()

	got, err := Similarity(ctx, e, "", "some text")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = Similarity(ctx, e, "some text", "   \n ")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestSimilarity_BackendFailurePropagates(t *testing.T) {
	e := &stubEmbedder{err: ErrUnavailable}

	_, err := Similarity(context.Background(), e, "resume", "job")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTermFrequencyEmbedder(t *testing.T) {
	e := NewTermFrequency()
	ctx := context.Background()

	first, err := e.Embed(ctx, "python flask sql")
	require.NoError(t, err)
	second, err := e.Embed(ctx, "python flask sql")
	require.NoError(t, err)
	assert.Equal(t, first, second, "embedding must be deterministic")

	// Similar texts score higher than unrelated ones.
	overlapping, err := Similarity(ctx, e, "python flask developer", "python flask engineer")
	require.NoError(t, err)
	unrelated, err := Similarity(ctx, e, "python flask developer", "pastry chef bakery croissants")
	require.NoError(t, err)
	assert.Greater(t, overlapping, unrelated)

	identical, err := Similarity(ctx, e, "go developer", "go developer")
	require.NoError(t, err)
	assert.InDelta(t, 100, identical, 1e-6)
}
