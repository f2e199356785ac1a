package analyzer

import (
	"fmt"
	"strings"
)

// Static market-insight values. These are placeholders, not computed from any
// market data source.
const (
	insightSalaryRange  = "$60,000 - $120,000"
	insightGrowthTrend  = "Growing 15% year-over-year"
	insightTopLocations = "San Francisco, New York, Austin, Seattle"

	defaultSkillPriority = "Continue developing current skills"

	// demandThreshold is the matched-skill count above which demand is High.
	demandThreshold = 5

	// maxSuggestedSkills caps how many missing skills are named in the
	// learning suggestion.
	maxSuggestedSkills = 3
)

// MarketInsights derives the insight fields from the matched and missing
// skill lists. Only demand_level and skill_priority are computed; the rest
// are static placeholders.
func MarketInsights(matched, missing []string) map[string]string {
	demand := "Moderate"
	if len(matched) > demandThreshold {
		demand = "High"
	}

	priority := defaultSkillPriority
	if len(missing) > 0 {
		priority = missing[0]
	}

	return map[string]string{
		"salary_range":   insightSalaryRange,
		"demand_level":   demand,
		"growth_trend":   insightGrowthTrend,
		"top_locations":  insightTopLocations,
		"skill_priority": priority,
	}
}

// Suggestions builds the ordered improvement list by conditional appends.
// The two score gates are independent: scores in [60,70) trigger neither the
// critical-gap block nor the confidence block.
func Suggestions(missing []string, score float64) []string {
	suggestions := make([]string, 0, 8)

	if score < 60 {
		suggestions = append(suggestions,
			"Consider taking online courses to fill critical skill gaps",
			"Update resume to better highlight relevant experience",
		)
	}

	if len(missing) > 0 {
		named := missing
		if len(named) > maxSuggestedSkills {
			named = named[:maxSuggestedSkills]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Focus on learning: %s", strings.Join(named, ", ")),
			"Build portfolio projects demonstrating these skills",
		)
	}

	if score >= 70 {
		suggestions = append(suggestions,
			"Your profile is strong - consider applying confidently",
			"Prepare for interviews focusing on your key strengths",
		)
	}

	suggestions = append(suggestions,
		"Network with professionals in this field",
		"Keep resume updated with latest projects and achievements",
	)

	return suggestions
}
