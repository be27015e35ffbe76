package matching

import (
	"fmt"
	"strings"
)

const (
	weakSkillThreshold   = 60
	maxGapSkillsListed   = 3
	maxKeywordsSuggested = 5

	impactQuantificationText = "Add more specific metrics and numbers to demonstrate the impact of your work. Include percentages, dollar amounts, user counts, or performance improvements."
	technicalDetailText      = "Provide more technical depth in your project descriptions. Mention specific technologies, architectures, and methodologies you used."
)

// generateImprovements emits suggestions in a fixed order. The last two
// records are always present.
func generateImprovements(skills []SkillMatch, missingSkills, matchedKeywords, missingKeywords []string) []ImprovementSuggestion {
	out := make([]ImprovementSuggestion, 0, 5)

	// First weak skill in ranked order, not the globally lowest.
	for _, s := range skills {
		if s.Score < weakSkillThreshold {
			out = append(out, ImprovementSuggestion{
				Category:   CategorySkillEnhancement,
				Suggestion: fmt.Sprintf("Strengthen your %s section by adding specific projects, metrics, and technologies used. Consider mentioning the scale and impact of your work.", s.Name),
				Impact:     ImpactHigh,
			})
			break
		}
	}

	if len(missingSkills) > 0 {
		out = append(out, ImprovementSuggestion{
			Category:   CategorySkillGaps,
			Suggestion: fmt.Sprintf("Consider adding experience with %s to better match job requirements. These skills appear in the job description but not in your resume.", strings.Join(head(missingSkills, maxGapSkillsListed), ", ")),
			Impact:     ImpactHigh,
		})
	}

	if len(missingKeywords) > len(matchedKeywords) {
		out = append(out, ImprovementSuggestion{
			Category:   CategoryKeywordOptimization,
			Suggestion: fmt.Sprintf("Include more industry-specific keywords such as %s. This will improve ATS compatibility and recruiter visibility.", strings.Join(head(missingKeywords, maxKeywordsSuggested), ", ")),
			Impact:     ImpactMedium,
		})
	}

	out = append(out,
		ImprovementSuggestion{
			Category:   CategoryImpactQuantification,
			Suggestion: impactQuantificationText,
			Impact:     ImpactHigh,
		},
		ImprovementSuggestion{
			Category:   CategoryTechnicalDetail,
			Suggestion: technicalDetailText,
			Impact:     ImpactMedium,
		},
	)
	return out
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
