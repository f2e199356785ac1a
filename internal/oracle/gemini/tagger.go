package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

const taggerPrompt = `Extract named entities from the text below.

Label each entity with one of these categories:
- "ORG" for companies, institutions, and products
- "MISC" for technologies, tools, certifications, and other proper nouns
- "PER" for people
- "LOC" for places

Return ONLY a JSON array, no markdown and no explanation:
[{"text": "<entity>", "category": "<ORG|MISC|PER|LOC>", "start": <character offset>}]

Text:
%s`

// Tagger implements oracle.EntityTagger with a generative model prompted to
// return structured entities.
type Tagger struct {
	client *Client
}

// NewTagger creates a Tagger backed by the shared client.
func NewTagger(client *Client) *Tagger {
	return &Tagger{client: client}
}

// Tag extracts named entities from the text.
func (t *Tagger) Tag(ctx context.Context, text string) ([]oracle.Entity, error) {
	raw, err := t.client.generate(ctx, fmt.Sprintf(taggerPrompt, text), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	})
	if err != nil {
		return nil, err
	}

	return parseEntities(raw)
}

func parseEntities(raw string) ([]oracle.Entity, error) {
	cleaned := stripCodeFence(raw)

	var items []struct {
		Text     string  `json:"text"`
		Category string  `json:"category"`
		Start    float64 `json:"start"`
	}
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("parse entities response: %w", err)
	}

	entities := make([]oracle.Entity, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		entities = append(entities, oracle.Entity{
			Text:     text,
			Category: strings.ToUpper(strings.TrimSpace(item.Category)),
			Start:    int(item.Start),
		})
	}

	return entities, nil
}

// stripCodeFence removes a surrounding markdown code block the model sometimes
// wraps around JSON output.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

var _ oracle.EntityTagger = (*Tagger)(nil)
