package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxSkillMatches = 12
	contextRadius   = 100
	minTokenRunes   = 3
	minSentenceLen  = 20

	baseBothScore       = 60
	resumeOnlyScore     = 30
	similarityWeight    = 30
	experienceBonusSize = 10
)

var (
	experienceBonusTerms = []string{"senior", "lead", "expert", "advanced", "years", "experience"}
	seniorTerms          = []string{"senior", "lead", "expert"}
	intermediateTerms    = []string{"years", "experience"}
)

// extractSkillMatches scores every vocabulary skill found in either text.
// Both texts must already be lower-cased.
func (e *Engine) extractSkillMatches(resumeText, jdText string) []SkillMatch {
	matches := make([]SkillMatch, 0, len(e.vocab.Skills))
	for _, skill := range e.vocab.Skills {
		inResume := strings.Contains(resumeText, skill)
		inJD := strings.Contains(jdText, skill)
		if !inResume && !inJD {
			continue
		}

		score := skillScore(skill, resumeText, jdText, inResume, inJD)
		resumeContext := skillContext(skill, resumeText)
		jdContext := skillContext(skill, jdText)

		matches = append(matches, SkillMatch{
			Name:            displayName(skill),
			Score:           score,
			Relevance:       relevanceFor(score),
			Evidence:        firstSentence(skill, resumeContext, fmt.Sprintf("Experience with %s mentioned in resume", skill)),
			JobRequirement:  firstSentence(skill, jdContext, fmt.Sprintf("%s required for this position", skill)),
			KeywordMatch:    keywordMatch(inResume, inJD),
			ContextMatch:    score,
			ExperienceLevel: experienceLevel(resumeContext),
			Suggestions:     skillSuggestions(skill, score, inResume, inJD),
			RelatedKeywords: e.relatedKeywords(skill),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxSkillMatches {
		matches = matches[:maxSkillMatches]
	}
	return matches
}

func skillScore(skill, resumeText, jdText string, inResume, inJD bool) int {
	switch {
	case !inResume:
		return 0
	case !inJD:
		return resumeOnlyScore
	}

	resumeContext := skillContext(skill, resumeText)
	jdContext := skillContext(skill, jdText)
	score := baseBothScore + contextSimilarity(resumeContext, jdContext) + experienceBonus(resumeContext)
	if score > 100 {
		score = 100
	}
	return score
}

// skillContext returns up to contextRadius characters on either side of
// the first occurrence of skill. Empty when the skill does not occur.
func skillContext(skill, text string) string {
	idx := strings.Index(text, skill)
	if idx < 0 {
		return ""
	}
	start := idx
	for n := 0; n < contextRadius && start > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	end := idx + len(skill)
	for n := 0; n < contextRadius && end < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return text[start:end]
}

// contextSimilarity counts tokens of the first context that also occur in
// the second (duplicates included) relative to the larger token set, scaled
// to similarityWeight.
func contextSimilarity(context1, context2 string) int {
	words1 := significantTokens(context1)
	words2 := significantTokens(context2)

	denom := len(words1)
	if len(words2) > denom {
		denom = len(words2)
	}
	if denom == 0 {
		return 0
	}

	present := make(map[string]struct{}, len(words2))
	for _, w := range words2 {
		present[w] = struct{}{}
	}
	common := 0
	for _, w := range words1 {
		if _, ok := present[w]; ok {
			common++
		}
	}
	return int(math.Round(float64(common) / float64(denom) * similarityWeight))
}

func significantTokens(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minTokenRunes {
			out = append(out, f)
		}
	}
	return out
}

func experienceBonus(resumeContext string) int {
	if containsAny(resumeContext, experienceBonusTerms) {
		return experienceBonusSize
	}
	return 0
}

func experienceLevel(resumeContext string) string {
	switch {
	case containsAny(resumeContext, seniorTerms):
		return LevelSenior
	case containsAny(resumeContext, intermediateTerms):
		return LevelIntermediate
	default:
		return LevelJunior
	}
}

// firstSentence picks the first sentence of context that mentions skill
// and is longer than minSentenceLen characters.
func firstSentence(skill, context, fallback string) string {
	sentences := strings.FieldsFunc(context, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, s := range sentences {
		if utf8.RuneCountInString(s) > minSentenceLen && strings.Contains(s, skill) {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}

func keywordMatch(inResume, inJD bool) int {
	switch {
	case inResume && inJD:
		return 100
	case inResume:
		return 50
	default:
		return 0
	}
}

func skillSuggestions(skill string, score int, inResume, inJD bool) []string {
	switch {
	case !inResume && inJD:
		return []string{
			fmt.Sprintf("Consider adding %s experience to your resume", skill),
			fmt.Sprintf("Highlight any projects or coursework involving %s", skill),
		}
	case inResume && inJD && score < 70:
		return []string{
			fmt.Sprintf("Provide more specific examples of %s usage", skill),
			fmt.Sprintf("Quantify your achievements with %s", skill),
			fmt.Sprintf("Mention the scale or complexity of %s projects", skill),
		}
	default:
		return []string{}
	}
}

func (e *Engine) relatedKeywords(skill string) []string {
	related := e.vocab.RelatedKeywords[strings.ToLower(skill)]
	out := make([]string, len(related))
	copy(out, related)
	return out
}

func displayName(skill string) string {
	r, size := utf8.DecodeRuneInString(skill)
	if size == 0 {
		return skill
	}
	return string(unicode.ToUpper(r)) + skill[size:]
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
