package analyzer

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle"
)

const scoreStep = "similarity"

// Scorer converts two texts into a 0-100 fit score via embedding cosine
// similarity. Any embedding failure degrades to a zero score; scoring never
// fails the analysis.
type Scorer struct {
	embedder oracle.Embedder
	logger   *zap.Logger
}

// NewScorer creates a Scorer. The embedder may be nil, in which case every
// score degrades to zero.
func NewScorer(embedder oracle.Embedder, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{embedder: embedder, logger: log}
}

// Score returns the fit score for the resume against the job description.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string) (float64, Outcome) {
	if s.embedder == nil {
		return 0, fallbackOutcome(scoreStep, "embedder not configured")
	}

	resumeVec, err := s.embedder.Embed(ctx, resumeText)
	if err != nil {
		s.logger.Warn("resume embedding failed, scoring as zero", zap.Error(err))
		return 0, fallbackOutcome(scoreStep, "embedding unavailable")
	}

	jobVec, err := s.embedder.Embed(ctx, jobText)
	if err != nil {
		s.logger.Warn("job embedding failed, scoring as zero", zap.Error(err))
		return 0, fallbackOutcome(scoreStep, "embedding unavailable")
	}

	similarity, err := cosineSimilarity(resumeVec, jobVec)
	if err != nil {
		s.logger.Warn("cosine similarity failed, scoring as zero", zap.Error(err))
		return 0, fallbackOutcome(scoreStep, "degenerate embedding vectors")
	}

	// Negative similarity means semantic opposition, floored to "no fit".
	score := clamp(similarity*100, 0, 100)

	return round2(score), okOutcome(scoreStep)
}

func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, errors.New("vectors must be non-empty and of equal length")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, errors.New("zero-magnitude vector")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
