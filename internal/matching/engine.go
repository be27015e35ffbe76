// Package matching scores a résumé against a job description using fixed
// skill and keyword vocabularies. Matching is plain case-insensitive
// substring search; there is no tokenizer, stemming or model involved.
package matching

import (
	"strings"
	"time"
)

// Engine runs analyses against one vocabulary. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	vocab Vocabulary
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to stamp AnalysisDate.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New builds an Engine. Vocabulary terms are lower-cased and blank entries
// dropped; an empty skill list falls back to DefaultVocabulary.
func New(vocab Vocabulary, opts ...Option) *Engine {
	def := DefaultVocabulary()
	v := Vocabulary{
		Version:         vocab.Version,
		Skills:          normalizeTerms(vocab.Skills),
		Keywords:        normalizeTerms(vocab.Keywords),
		MissingSkills:   normalizeTerms(vocab.MissingSkills),
		RelatedKeywords: normalizeRelated(vocab.RelatedKeywords),
	}
	if len(v.Skills) == 0 {
		v = def
	}
	if v.Version == "" {
		v.Version = def.Version
	}

	e := &Engine{
		vocab: v,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Vocabulary returns the normalized vocabulary the engine scans for.
func (e *Engine) Vocabulary() Vocabulary {
	return e.vocab
}

// Analyze scores resume against jd. It never fails: empty inputs yield an
// empty breakdown with the two unconditional improvements.
func (e *Engine) Analyze(resume ResumeData, jd JobDescription) AnalysisResult {
	resumeText := strings.ToLower(resume.Content)
	jdText := strings.ToLower(jd.Content)

	skills := e.extractSkillMatches(resumeText, jdText)
	matched, missing := e.analyzeKeywords(resumeText, jdText)
	missingSkills := e.missingSkills(resumeText, jdText)

	return AnalysisResult{
		OverallScore:    overallScore(skills, matched, missing),
		SkillMatches:    skills,
		StrongMatches:   strongMatches(skills),
		PartialMatches:  partialMatches(skills),
		MissingSkills:   missingSkills,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Improvements:    generateImprovements(skills, missingSkills, matched, missing),
		AnalysisDate:    e.now(),
	}
}
