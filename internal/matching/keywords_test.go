package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeKeywordsPartition(t *testing.T) {
	e := newTestEngine()
	matched, missing := e.analyzeKeywords(
		"agile teams, strong communication and mentoring",
		"we value agile delivery, communication, security and cloud skills",
	)
	assert.Equal(t, []string{"agile", "communication"}, matched)
	assert.Equal(t, []string{"cloud", "security"}, missing)
}

func TestAnalyzeKeywordsMutualContainment(t *testing.T) {
	e := New(Vocabulary{
		Skills:   []string{"go"},
		Keywords: []string{"api", "rest api"},
	})

	// The résumé only mentions "api", but "rest api" contains it, so both
	// JD keywords are reported as matched.
	matched, missing := e.analyzeKeywords("built an api gateway", "design a rest api")
	assert.Equal(t, []string{"api", "rest api"}, matched)
	assert.Empty(t, missing)
}

func TestAnalyzeKeywordsEmpty(t *testing.T) {
	e := newTestEngine()
	matched, missing := e.analyzeKeywords("", "")
	assert.NotNil(t, matched)
	assert.NotNil(t, missing)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestMissingSkillsCapAndOrder(t *testing.T) {
	e := newTestEngine()
	jd := strings.Join(e.Vocabulary().MissingSkills, ", ")

	got := e.missingSkills("", jd)
	assert.Equal(t, e.Vocabulary().MissingSkills[:8], got)

	got = e.missingSkills("machine learning and blockchain", "machine learning, blockchain, kafka")
	assert.Equal(t, []string{"kafka"}, got)
}
