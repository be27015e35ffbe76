package analyses

import (
	"math"

	"jobjotter/internal/matching"
)

const explanationListLimit = 5

// ScoreExplanation breaks the overall score into its weighted parts.
type ScoreExplanation struct {
	Components []ScoreComponent `json:"components"`
}

// ScoreComponent is one weighted input to the overall score. Score is on a
// 0-100 scale; Contribution is the points it adds to the overall score.
type ScoreComponent struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Score        float64  `json:"score"`
	Weight       float64  `json:"weight"`
	Contribution float64  `json:"contribution"`
	Helped       []string `json:"helped"`
	Dragged      []string `json:"dragged"`
}

// ExplainScore derives the skill and keyword components behind
// result.OverallScore. Their contributions sum to the unrounded score.
func ExplainScore(result matching.AnalysisResult) ScoreExplanation {
	var skillAvg float64
	if n := len(result.SkillMatches); n > 0 {
		total := 0
		for _, s := range result.SkillMatches {
			total += s.Score
		}
		skillAvg = float64(total) / float64(n)
	}

	var keywordPct float64
	if n := len(result.MatchedKeywords) + len(result.MissingKeywords); n > 0 {
		keywordPct = float64(len(result.MatchedKeywords)) / float64(n) * 100
	}

	var helped, dragged []string
	for _, s := range result.SkillMatches {
		switch {
		case s.Score >= 80:
			helped = append(helped, s.Name)
		case s.Score < 40:
			dragged = append(dragged, s.Name)
		}
	}

	return ScoreExplanation{Components: []ScoreComponent{
		{
			Key:          "skillMatch",
			Label:        "Skill Match",
			Score:        round1(skillAvg),
			Weight:       matching.SkillWeight,
			Contribution: round1(skillAvg * matching.SkillWeight),
			Helped:       limit(helped),
			Dragged:      limit(dragged),
		},
		{
			Key:          "keywordCoverage",
			Label:        "Keyword Coverage",
			Score:        round1(keywordPct),
			Weight:       matching.KeywordWeight,
			Contribution: round1(keywordPct * matching.KeywordWeight),
			Helped:       limit(result.MatchedKeywords),
			Dragged:      limit(result.MissingKeywords),
		},
	}}
}

func limit(items []string) []string {
	if len(items) > explanationListLimit {
		items = items[:explanationListLimit]
	}
	return append([]string{}, items...)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
