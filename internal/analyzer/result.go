// Package analyzer implements the resume / job description matching pipeline:
// skill extraction, similarity scoring, narrative summary, and derived
// suggestions.
package analyzer

import "sort"

// Outcome records whether a pipeline step used its oracle or degraded to a
// deterministic fallback. Degradation is never an error, but it is visible.
type Outcome struct {
	Step     string `json:"step"`
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
}

func okOutcome(step string) Outcome {
	return Outcome{Step: step}
}

func fallbackOutcome(step, reason string) Outcome {
	return Outcome{Step: step, Fallback: true, Reason: reason}
}

// MatchResult is the complete assessment produced for one analysis request.
// It is assembled once and not mutated afterwards.
type MatchResult struct {
	FitScore               float64           `json:"fit_score"`
	MatchedSkills          []string          `json:"matched_skills"`
	MissingSkills          []string          `json:"missing_skills"`
	HRSummary              string            `json:"hr_summary"`
	MarketInsights         map[string]string `json:"market_insights"`
	ImprovementSuggestions []string          `json:"improvement_suggestions"`
	Steps                  []Outcome         `json:"steps,omitempty"`
}

// SkillSet is a set of skill strings. Matched case is preserved, so "Python"
// and "python" are distinct members. Enumeration order is not part of the
// contract; Sorted exists for stable rendering.
type SkillSet map[string]struct{}

func (s SkillSet) Add(skill string) {
	s[skill] = struct{}{}
}

func (s SkillSet) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

func (s SkillSet) Len() int { return len(s) }

// Intersect returns the skills present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if other.Has(skill) {
			result.Add(skill)
		}
	}
	return result
}

// Difference returns the skills present in s but not in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if !other.Has(skill) {
			result.Add(skill)
		}
	}
	return result
}

// Sorted returns the members as a sorted slice.
func (s SkillSet) Sorted() []string {
	skills := make([]string, 0, len(s))
	for skill := range s {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}
