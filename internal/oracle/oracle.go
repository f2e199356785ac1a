// Package oracle defines the external model capabilities consumed by the
// analysis pipeline. Implementations are loaded once at startup and must be
// safe for concurrent read-only use.
package oracle

import "context"

// Entity is a single named entity found in a text.
type Entity struct {
	Text     string
	Category string
	Start    int
}

// Entity categories produced by taggers.
const (
	CategoryOrganization  = "ORG"
	CategoryMiscellaneous = "MISC"
	CategoryPerson        = "PER"
	CategoryLocation      = "LOC"
)

// Embedder produces a fixed-length vector representation of a text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// EntityTagger extracts named entities from a text.
type EntityTagger interface {
	Tag(ctx context.Context, text string) ([]Entity, error)
}

// Summarizer generates a short summary of the input text within the
// given output token range.
type Summarizer interface {
	Summarize(ctx context.Context, text string, minTokens, maxTokens int) (string, error)
}
