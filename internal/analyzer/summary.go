package analyzer

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

const (
	summaryStep = "summary"

	// Budgets for the generative path: each excerpt is capped, and the whole
	// prompt is cut to promptLimit characters before it reaches the model.
	excerptLimit = 500
	promptLimit  = 1024

	summaryMinTokens = 50
	summaryMaxTokens = 150
)

// Summarizer produces the narrative HR assessment, preferring the generative
// oracle and falling back to deterministic score-band templates.
type Summarizer struct {
	oracle oracle.Summarizer
	logger *zap.Logger
}

// NewSummarizer creates a Summarizer. The oracle may be nil, in which case
// every summary uses the fallback templates.
func NewSummarizer(o oracle.Summarizer, log *zap.Logger) *Summarizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Summarizer{oracle: o, logger: log}
}

// Summarize returns a short human-readable assessment of the match.
func (s *Summarizer) Summarize(ctx context.Context, resumeText, jobText string, score float64) (string, Outcome) {
	if s.oracle == nil {
		return fallbackSummary(score), fallbackOutcome(summaryStep, "summarizer not configured")
	}

	prompt := buildSummaryPrompt(resumeText, jobText, score)

	summary, err := s.oracle.Summarize(ctx, prompt, summaryMinTokens, summaryMaxTokens)
	if err != nil {
		s.logger.Warn("summarizer oracle failed, using score-band template", zap.Error(err))
		return fallbackSummary(score), fallbackOutcome(summaryStep, "summarizer unavailable")
	}

	return summary, okOutcome(summaryStep)
}

func buildSummaryPrompt(resumeText, jobText string, score float64) string {
	prompt := fmt.Sprintf(
		"Job Match Analysis:\nFit Score: %s%%\n\nResume Summary: %s...\n\nJob Requirements: %s...\n\nProvide a professional HR summary of this candidate's suitability.",
		formatScore(score),
		truncateChars(resumeText, excerptLimit),
		truncateChars(jobText, excerptLimit),
	)

	return truncateChars(prompt, promptLimit)
}

// fallbackSummary selects a template by score band. The band boundaries
// (80/60/40) are shared with the suggestion generator and must not drift.
func fallbackSummary(score float64) string {
	formatted := formatScore(score)

	switch {
	case score >= 80:
		return fmt.Sprintf("Excellent candidate with %s%% compatibility. Strong alignment with job requirements.", formatted)
	case score >= 60:
		return fmt.Sprintf("Good candidate with %s%% compatibility. Meets most job requirements with some gaps.", formatted)
	case score >= 40:
		return fmt.Sprintf("Moderate fit with %s%% compatibility. Some relevant experience but significant gaps exist.", formatted)
	default:
		return fmt.Sprintf("Limited fit with %s%% compatibility. Major skill gaps need to be addressed.", formatted)
	}
}

// formatScore renders the score without trailing zeros, so 85.0 reads "85".
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func truncateChars(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit]
}
