package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the embedding model used when none is configured.
const DefaultGeminiModel = "text-embedding-004"

// GeminiEmbedder produces embeddings via the Google Gemini API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed embedder. Pass an empty model to use
// DefaultGeminiModel.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Embed returns the embedding vector for text. Backend failures are wrapped
// in ErrUnavailable so callers can degrade instead of aborting the request.
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.model)

	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("%w: empty embedding response", ErrUnavailable)
	}

	return resp.Embedding.Values, nil
}

// Close releases the underlying API client.
func (g *GeminiEmbedder) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
