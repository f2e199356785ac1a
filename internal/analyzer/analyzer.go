package analyzer

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

// ErrEmptyInput is returned when either input text is empty after trimming.
// It is the only error Analyze reports for well-formed calls; oracle failures
// degrade locally and never surface here.
var ErrEmptyInput = errors.New("resume text and job description must not be empty")

// Oracles bundles the model capabilities available to the pipeline. Any of
// them may be nil; the corresponding step then runs on its fallback.
type Oracles struct {
	Embedder   oracle.Embedder
	Tagger     oracle.EntityTagger
	Summarizer oracle.Summarizer
}

// Analyzer runs the full matching pipeline. It holds no per-request state and
// is safe for concurrent use.
type Analyzer struct {
	skills     *SkillExtractor
	scorer     *Scorer
	summarizer *Summarizer
	logger     *zap.Logger
}

// New creates an Analyzer from the provided oracles.
func New(oracles Oracles, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{
		skills:     NewSkillExtractor(oracles.Tagger, log),
		scorer:     NewScorer(oracles.Embedder, log),
		summarizer: NewSummarizer(oracles.Summarizer, log),
		logger:     log,
	}
}

// Analyze produces a complete MatchResult for the given texts. For valid
// input it always returns a fully populated result: every oracle-dependent
// step absorbs its own failures and records the degradation in Steps.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*MatchResult, error) {
	resumeText = strings.TrimSpace(resumeText)
	jobText = strings.TrimSpace(jobText)
	if resumeText == "" || jobText == "" {
		return nil, ErrEmptyInput
	}

	resumeSkills, resumeOutcome := a.skills.Extract(ctx, "resume_skills", resumeText)
	jobSkills, jobOutcome := a.skills.Extract(ctx, "job_skills", jobText)

	matched := resumeSkills.Intersect(jobSkills).Sorted()
	missing := jobSkills.Difference(resumeSkills).Sorted()

	a.logger.Debug("skill extraction completed",
		zap.Int("resume_skills", resumeSkills.Len()),
		zap.Int("job_skills", jobSkills.Len()),
		zap.Int("matched", len(matched)),
		zap.Int("missing", len(missing)),
	)

	score, scoreOutcome := a.scorer.Score(ctx, resumeText, jobText)
	summary, summaryOutcome := a.summarizer.Summarize(ctx, resumeText, jobText, score)

	result := &MatchResult{
		FitScore:               score,
		MatchedSkills:          matched,
		MissingSkills:          missing,
		HRSummary:              summary,
		MarketInsights:         MarketInsights(matched, missing),
		ImprovementSuggestions: Suggestions(missing, score),
		Steps:                  []Outcome{resumeOutcome, jobOutcome, scoreOutcome, summaryOutcome},
	}

	for _, step := range result.Steps {
		if !step.Fallback {
			continue
		}
		a.logger.Info("pipeline step degraded to fallback",
			zap.String("step", step.Step),
			zap.String("reason", step.Reason),
		)
	}

	a.logger.Info("analysis completed",
		zap.Float64("fit_score", score),
		zap.Int("matched_skills", len(matched)),
		zap.Int("missing_skills", len(missing)),
	)

	return result, nil
}
