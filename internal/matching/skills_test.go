package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillContextWindow(t *testing.T) {
	text := strings.Repeat("a", 150) + "docker" + strings.Repeat("b", 150)
	ctx := skillContext("docker", text)
	assert.Len(t, ctx, 206)
	assert.True(t, strings.HasPrefix(ctx, strings.Repeat("a", 100)+"docker"))

	assert.Equal(t, "", skillContext("docker", "no match here"))
	assert.Equal(t, "docker", skillContext("docker", "docker"))
}

func TestSkillContextCountsCharacters(t *testing.T) {
	text := strings.Repeat("é", 150) + "go" + strings.Repeat("•", 150)
	ctx := skillContext("go", text)
	assert.Equal(t, strings.Repeat("é", 100)+"go"+strings.Repeat("•", 100), ctx)
}

func TestMultibyteBulletsStayInsideWindow(t *testing.T) {
	resume := "senior " + strings.Repeat("•", 40) + " react"
	e := newTestEngine()
	got := e.extractSkillMatches(resume, "react")
	require.Len(t, got, 1)
	assert.Equal(t, "React", got[0].Name)
	assert.Equal(t, LevelSenior, got[0].ExperienceLevel)
	assert.Equal(t, 80, got[0].Score)
}

func TestFirstSentenceCountsCharacters(t *testing.T) {
	// 15 characters, 26 bytes.
	ctx := "ééééééééééé sql"
	assert.Equal(t, "fallback", firstSentence("sql", ctx, "fallback"))
}

func TestSkillContextUsesFirstOccurrence(t *testing.T) {
	text := "sql first. " + strings.Repeat("x ", 200) + "sql second"
	ctx := skillContext("sql", text)
	assert.True(t, strings.HasPrefix(ctx, "sql first"))
	assert.NotContains(t, ctx, "second")
}

func TestContextSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{name: "both_empty", a: "", b: "", want: 0},
		{name: "only_short_tokens", a: "go is fun", b: "go is ok", want: 0},
		{name: "identical", a: "build scalable services", b: "build scalable services", want: 30},
		{name: "half", a: "build scalable", b: "build services", want: 15},
		{name: "duplicates_counted", a: "react react react", b: "react developer team", want: 30},
		{name: "disjoint", a: "alpha bravo", b: "charlie delta", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contextSimilarity(tc.a, tc.b))
		})
	}
}

func TestExperienceLevel(t *testing.T) {
	assert.Equal(t, LevelSenior, experienceLevel("tech lead on go services"))
	assert.Equal(t, LevelSenior, experienceLevel("expert in kubernetes"))
	assert.Equal(t, LevelIntermediate, experienceLevel("3 years of terraform"))
	assert.Equal(t, LevelJunior, experienceLevel("used terraform once"))
	assert.Equal(t, LevelJunior, experienceLevel(""))
}

func TestExperienceBonus(t *testing.T) {
	assert.Equal(t, 10, experienceBonus("advanced python"))
	assert.Equal(t, 0, experienceBonus("python scripts"))
}

func TestFirstSentence(t *testing.T) {
	ctx := "short sql. we wrote a lot of sql queries for reporting! more text?"
	assert.Equal(t, "we wrote a lot of sql queries for reporting", firstSentence("sql", ctx, "fallback"))
	assert.Equal(t, "fallback", firstSentence("sql", "sql.", "fallback"))
	assert.Equal(t, "fallback", firstSentence("sql", "", "fallback"))
	// The skill itself is split on its dot, so it never matches a sentence.
	assert.Equal(t, "fallback", firstSentence("node.js", "built many backend services in node.js for clients", "fallback"))
}

func TestSkillSuggestions(t *testing.T) {
	assert.Len(t, skillSuggestions("go", 0, false, true), 2)
	assert.Len(t, skillSuggestions("go", 69, true, true), 3)
	assert.Empty(t, skillSuggestions("go", 70, true, true))
	assert.Empty(t, skillSuggestions("go", 30, true, false))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Rest api", displayName("rest api"))
	assert.Equal(t, "A/b testing", displayName("a/b testing"))
	assert.Equal(t, "Ux design", displayName("ux design"))
	assert.Equal(t, "", displayName(""))
}

func TestRelevanceFor(t *testing.T) {
	assert.Equal(t, RelevanceHigh, relevanceFor(70))
	assert.Equal(t, RelevanceMedium, relevanceFor(69))
	assert.Equal(t, RelevanceMedium, relevanceFor(40))
	assert.Equal(t, RelevanceLow, relevanceFor(39))
}

func TestExtractSkillMatchesCapAndTieOrder(t *testing.T) {
	e := newTestEngine()
	// Every skill present only in the résumé scores 30, so ranking falls
	// back to vocabulary order.
	resume := strings.Join(e.Vocabulary().Skills, " ; ")
	matches := e.extractSkillMatches(strings.ToLower(resume), "")

	assert.Len(t, matches, 12)
	for _, m := range matches {
		assert.Equal(t, 30, m.Score)
	}
	assert.Equal(t, "Javascript", matches[0].Name)
	assert.Equal(t, "Typescript", matches[1].Name)
	assert.Equal(t, "React", matches[2].Name)
}
