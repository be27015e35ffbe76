package analyses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobjotter/internal/matching"
)

func TestExplainScoreComponents(t *testing.T) {
	result := matching.AnalysisResult{
		OverallScore: 65,
		SkillMatches: []matching.SkillMatch{
			{Name: "go", Score: 90},
			{Name: "sql", Score: 60},
			{Name: "rust", Score: 30},
		},
		MatchedKeywords: []string{"api", "cloud", "testing"},
		MissingKeywords: []string{"mentoring"},
	}

	got := ExplainScore(result)
	require.Len(t, got.Components, 2)

	skills := got.Components[0]
	assert.Equal(t, "skillMatch", skills.Key)
	assert.Equal(t, 60.0, skills.Score)
	assert.Equal(t, 42.0, skills.Contribution)
	assert.Equal(t, []string{"go"}, skills.Helped)
	assert.Equal(t, []string{"rust"}, skills.Dragged)

	keywords := got.Components[1]
	assert.Equal(t, "keywordCoverage", keywords.Key)
	assert.Equal(t, 75.0, keywords.Score)
	assert.Equal(t, 22.5, keywords.Contribution)
	assert.Equal(t, []string{"api", "cloud", "testing"}, keywords.Helped)
	assert.Equal(t, []string{"mentoring"}, keywords.Dragged)
}

func TestExplainScoreEmptyResult(t *testing.T) {
	got := ExplainScore(matching.AnalysisResult{})
	require.Len(t, got.Components, 2)
	for _, c := range got.Components {
		assert.Zero(t, c.Score)
		assert.Zero(t, c.Contribution)
		assert.NotNil(t, c.Helped)
		assert.NotNil(t, c.Dragged)
	}
}

func TestExplainScoreCapsLists(t *testing.T) {
	result := matching.AnalysisResult{
		MissingKeywords: []string{"a", "b", "c", "d", "e", "f", "g"},
	}
	got := ExplainScore(result)
	assert.Len(t, got.Components[1].Dragged, explanationListLimit)
}

func TestExplainScoreAddsUpToEngineScore(t *testing.T) {
	engine := matching.New(matching.DefaultVocabulary())
	result := engine.Analyze(
		matching.ResumeData{FileName: "resume.txt", Content: "Senior Go engineer. 5 years building REST APIs with PostgreSQL and Docker."},
		matching.JobDescription{Content: "We need Go, Kubernetes and PostgreSQL experience building REST APIs in the cloud."},
	)

	got := ExplainScore(result)
	require.Len(t, got.Components, 2)
	assert.Equal(t, matching.SkillWeight, got.Components[0].Weight)
	assert.Equal(t, matching.KeywordWeight, got.Components[1].Weight)

	total := got.Components[0].Contribution + got.Components[1].Contribution
	assert.InDelta(t, float64(result.OverallScore), total, 0.6)
}
