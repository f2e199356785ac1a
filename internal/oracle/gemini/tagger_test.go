package gemini

import (
	"context"
	"testing"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

func TestTaggerParsesEntities(t *testing.T) {
	fake := &fakeModels{generate: []fakeResponse{{
		resp: textResponse(`[{"text": "Kubernetes", "category": "misc", "start": 12}, {"text": "Google", "category": "ORG", "start": 30}]`),
	}}}

	entities, err := NewTagger(newTestClient(fake)).Tag(context.Background(), "worked with Kubernetes at Google")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}

	if entities[0].Text != "Kubernetes" || entities[0].Category != oracle.CategoryMiscellaneous {
		t.Fatalf("unexpected first entity: %+v", entities[0])
	}

	if entities[1].Category != oracle.CategoryOrganization || entities[1].Start != 30 {
		t.Fatalf("unexpected second entity: %+v", entities[1])
	}
}

func TestTaggerHandlesCodeBlock(t *testing.T) {
	fake := &fakeModels{generate: []fakeResponse{{
		resp: textResponse("```json\n[{\"text\": \"AWS\", \"category\": \"MISC\", \"start\": 0}]\n```"),
	}}}

	entities, err := NewTagger(newTestClient(fake)).Tag(context.Background(), "AWS experience")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entities) != 1 || entities[0].Text != "AWS" {
		t.Fatalf("unexpected entities: %+v", entities)
	}
}

func TestParseEntitiesSkipsBlankText(t *testing.T) {
	entities, err := parseEntities(`[{"text": "  ", "category": "MISC", "start": 0}, {"text": "Go", "category": "MISC", "start": 5}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entities) != 1 || entities[0].Text != "Go" {
		t.Fatalf("unexpected entities: %+v", entities)
	}
}

func TestParseEntitiesRejectsInvalidJSON(t *testing.T) {
	if _, err := parseEntities("not json"); err == nil {
		t.Fatal("expected parse error")
	}
}
