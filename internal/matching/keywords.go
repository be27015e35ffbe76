package matching

import "strings"

const maxMissingSkills = 8

// analyzeKeywords partitions the vocabulary keywords present in the job
// description into matched and missing.
//
// A JD keyword counts as matched when some résumé keyword contains it or is
// contained by it. That mutual containment is looser than equality: with a
// vocabulary holding both "api" and "rest api", a résumé mentioning only
// "api" also matches "rest api". The behavior is kept as-is.
func (e *Engine) analyzeKeywords(resumeText, jdText string) (matched, missing []string) {
	jdKeywords := presentTerms(e.vocab.Keywords, jdText)
	resumeKeywords := presentTerms(e.vocab.Keywords, resumeText)

	matched = make([]string, 0, len(jdKeywords))
	missing = make([]string, 0, len(jdKeywords))
	for _, keyword := range jdKeywords {
		if overlapsAny(keyword, resumeKeywords) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return matched, missing
}

// missingSkills lists skills the job description names that the résumé does not.
func (e *Engine) missingSkills(resumeText, jdText string) []string {
	out := make([]string, 0, maxMissingSkills)
	for _, skill := range e.vocab.MissingSkills {
		if len(out) == maxMissingSkills {
			break
		}
		if strings.Contains(jdText, skill) && !strings.Contains(resumeText, skill) {
			out = append(out, skill)
		}
	}
	return out
}

func presentTerms(vocabulary []string, text string) []string {
	out := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		if strings.Contains(text, term) {
			out = append(out, term)
		}
	}
	return out
}

func overlapsAny(keyword string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(c, keyword) || strings.Contains(keyword, c) {
			return true
		}
	}
	return false
}
