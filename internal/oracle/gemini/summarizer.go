package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

const summarizerInstruction = "You are an HR analyst. Summarize the provided job match analysis " +
	"into a short professional assessment of the candidate's suitability. " +
	"Write at least %d and at most %d words of plain prose. " +
	"Do not use markdown, lists, or headings."

// Summarizer implements oracle.Summarizer using the generative model with
// deterministic decoding.
type Summarizer struct {
	client *Client
}

// NewSummarizer creates a Summarizer backed by the shared client.
func NewSummarizer(client *Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize asks the model for a summary of text within the given output range.
func (s *Summarizer) Summarize(ctx context.Context, text string, minTokens, maxTokens int) (string, error) {
	if minTokens <= 0 {
		minTokens = 50
	}
	if maxTokens <= minTokens {
		maxTokens = minTokens + 100
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0)),
		MaxOutputTokens: int32(maxTokens * 2),
		SystemInstruction: genai.NewContentFromText(
			fmt.Sprintf(summarizerInstruction, minTokens, maxTokens), genai.RoleUser,
		),
	}

	return s.client.generate(ctx, text, config)
}

var _ oracle.Summarizer = (*Summarizer)(nil)
