package matching

import "math"

// Weights of the two inputs to the overall score.
const (
	SkillWeight   = 0.7
	KeywordWeight = 0.3
)

// overallScore blends the mean skill score with the keyword match ratio.
// An empty skill list contributes 0, as does an empty keyword set.
func overallScore(skills []SkillMatch, matchedKeywords, missingKeywords []string) int {
	avgSkill := 0.0
	if len(skills) > 0 {
		sum := 0
		for _, s := range skills {
			sum += s.Score
		}
		avgSkill = float64(sum) / float64(len(skills))
	}

	keywordRatio := 0.0
	if total := len(matchedKeywords) + len(missingKeywords); total > 0 {
		keywordRatio = float64(len(matchedKeywords)) / float64(total)
	}

	return int(math.Round(avgSkill*SkillWeight + keywordRatio*100*KeywordWeight))
}

func strongMatches(skills []SkillMatch) []SkillMatch {
	out := make([]SkillMatch, 0, len(skills))
	for _, s := range skills {
		if s.Score >= 80 {
			out = append(out, s)
		}
	}
	return out
}

func partialMatches(skills []SkillMatch) []SkillMatch {
	out := make([]SkillMatch, 0, len(skills))
	for _, s := range skills {
		if s.Score >= 40 && s.Score < 80 {
			out = append(out, s)
		}
	}
	return out
}
