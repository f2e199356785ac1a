package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

type stubTagger struct {
	entities []oracle.Entity
	err      error
}

func (s *stubTagger) Tag(context.Context, string) ([]oracle.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entities, nil
}

func TestExtractFindsPatternSkills(t *testing.T) {
	e := NewSkillExtractor(nil, nil)

	skills, outcome := e.Extract(context.Background(), "resume_skills",
		"Senior engineer using Python, Docker and PostgreSQL with Agile teams")

	for _, want := range []string{"Python", "Docker", "PostgreSQL", "Agile"} {
		if !skills.Has(want) {
			t.Fatalf("expected %q in %v", want, skills.Sorted())
		}
	}

	if outcome.Fallback {
		t.Fatal("pattern-only extraction must not be a fallback")
	}
}

func TestExtractPreservesMatchedCase(t *testing.T) {
	e := NewSkillExtractor(nil, nil)

	skills, _ := e.Extract(context.Background(), "resume_skills",
		"Python expert, also listed as python in the skills section")

	if !skills.Has("Python") || !skills.Has("python") {
		t.Fatalf("expected both casings to survive, got %v", skills.Sorted())
	}
}

func TestExtractDeduplicatesExactMatches(t *testing.T) {
	e := NewSkillExtractor(nil, nil)

	skills, _ := e.Extract(context.Background(), "resume_skills",
		"Docker, Docker and more Docker")

	count := 0
	for _, skill := range skills.Sorted() {
		if skill == "Docker" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected a single Docker entry, got %v", skills.Sorted())
	}
}

func TestExtractAugmentsWithEntities(t *testing.T) {
	tagger := &stubTagger{entities: []oracle.Entity{
		{Text: "Terraform", Category: oracle.CategoryMiscellaneous, Start: 10},
		{Text: "Acme Corp", Category: oracle.CategoryOrganization, Start: 40},
		{Text: "Jo", Category: oracle.CategoryMiscellaneous, Start: 55},
		{Text: "Berlin", Category: oracle.CategoryLocation, Start: 60},
	}}
	e := NewSkillExtractor(tagger, nil)

	skills, outcome := e.Extract(context.Background(), "resume_skills", "infrastructure work")

	if !skills.Has("Terraform") || !skills.Has("Acme Corp") {
		t.Fatalf("expected ORG and MISC entities to be added, got %v", skills.Sorted())
	}

	if skills.Has("Jo") {
		t.Fatal("entities of length <= 2 must be skipped")
	}

	if skills.Has("Berlin") {
		t.Fatal("LOC entities must be skipped")
	}

	if outcome.Fallback {
		t.Fatal("successful tagging must not be a fallback")
	}
}

func TestExtractDegradesSilentlyOnTaggerFailure(t *testing.T) {
	tagger := &stubTagger{err: errors.New("model unavailable")}
	e := NewSkillExtractor(tagger, nil)

	skills, outcome := e.Extract(context.Background(), "job_skills",
		"Looking for Kubernetes and AWS experience")

	if !skills.Has("Kubernetes") || !skills.Has("AWS") {
		t.Fatalf("pattern matches must survive tagger failure, got %v", skills.Sorted())
	}

	if !outcome.Fallback {
		t.Fatal("tagger failure must be recorded as fallback")
	}

	if outcome.Step != "job_skills" {
		t.Fatalf("unexpected outcome step: %s", outcome.Step)
	}
}

func TestSkillSetOperations(t *testing.T) {
	resume := SkillSet{}
	for _, s := range []string{"Python", "AWS", "Docker"} {
		resume.Add(s)
	}
	job := SkillSet{}
	for _, s := range []string{"Python", "AWS", "Kubernetes"} {
		job.Add(s)
	}

	matched := resume.Intersect(job)
	missing := job.Difference(resume)

	for _, s := range matched.Sorted() {
		if missing.Has(s) {
			t.Fatalf("matched and missing must be disjoint, %q is in both", s)
		}
	}

	if got := len(matched) + len(missing); got != job.Len() {
		t.Fatalf("matched + missing must cover the job set: %d != %d", got, job.Len())
	}

	if !missing.Has("Kubernetes") {
		t.Fatalf("expected Kubernetes missing, got %v", missing.Sorted())
	}
}
