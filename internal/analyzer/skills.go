package analyzer

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

// skillPatterns are the fixed matching categories, applied in order:
// languages, frameworks, cloud/infra, databases, web/API, AI/ML, methodology.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|TypeScript|C\+\+|C#|Ruby|PHP|Go|Rust|Swift|Kotlin)\b`),
	regexp.MustCompile(`(?i)\b(?:React|Angular|Vue|Node\.js|Django|Flask|Spring|Laravel|Express)\b`),
	regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|Docker|Kubernetes|Jenkins|Git|Linux|Windows)\b`),
	regexp.MustCompile(`(?i)\b(?:MySQL|PostgreSQL|MongoDB|Redis|Elasticsearch|Oracle|SQLite)\b`),
	regexp.MustCompile(`(?i)\b(?:HTML|CSS|SASS|Bootstrap|Tailwind|jQuery|REST|GraphQL|API)\b`),
	regexp.MustCompile(`(?i)\b(?:Machine Learning|Deep Learning|AI|Data Science|NLP|Computer Vision)\b`),
	regexp.MustCompile(`(?i)\b(?:Agile|Scrum|DevOps|CI/CD|TDD|Microservices|Blockchain)\b`),
}

// minEntityLength filters out short tagger artifacts like "AI" fragments.
const minEntityLength = 2

// SkillExtractor derives skill sets from free text using the fixed pattern
// categories, optionally augmented by a named-entity tagger.
type SkillExtractor struct {
	tagger oracle.EntityTagger
	logger *zap.Logger
}

// NewSkillExtractor creates an extractor. The tagger may be nil, in which case
// only pattern matching is used.
func NewSkillExtractor(tagger oracle.EntityTagger, log *zap.Logger) *SkillExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &SkillExtractor{tagger: tagger, logger: log}
}

// Extract returns the skills found in text. Matches keep the case of the
// source text, so the same skill spelled differently yields distinct entries.
// A tagger failure degrades to pattern-only results and is reported through
// the outcome, never as an error.
func (e *SkillExtractor) Extract(ctx context.Context, step, text string) (SkillSet, Outcome) {
	skills := make(SkillSet)

	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			skills.Add(strings.TrimSpace(match))
		}
	}

	if e.tagger == nil {
		return skills, okOutcome(step)
	}

	entities, err := e.tagger.Tag(ctx, text)
	if err != nil {
		e.logger.Warn("entity tagger failed, keeping pattern matches only",
			zap.String("step", step),
			zap.Error(err),
		)
		return skills, fallbackOutcome(step, "entity tagger unavailable")
	}

	for _, entity := range entities {
		if entity.Category != oracle.CategoryOrganization && entity.Category != oracle.CategoryMiscellaneous {
			continue
		}
		if len(entity.Text) <= minEntityLength {
			continue
		}
		skills.Add(entity.Text)
	}

	return skills, okOutcome(step)
}
