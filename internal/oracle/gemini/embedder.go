package gemini

import (
	"context"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

// Embedder implements oracle.Embedder using the Gemini embedding model.
type Embedder struct {
	client *Client
}

// NewEmbedder creates an Embedder backed by the shared client.
func NewEmbedder(client *Client) *Embedder {
	return &Embedder{client: client}
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return e.client.embed(ctx, text)
}

var _ oracle.Embedder = (*Embedder)(nil)
