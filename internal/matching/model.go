package matching

import "time"

// Relevance bands derived from a skill score.
const (
	RelevanceHigh   = "high"
	RelevanceMedium = "medium"
	RelevanceLow    = "low"
)

// Impact levels carried by improvement suggestions.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Experience levels inferred from the résumé context around a skill.
const (
	LevelSenior       = "Senior"
	LevelIntermediate = "Intermediate"
	LevelJunior       = "Junior"
)

// Improvement categories, listed in generation order.
const (
	CategorySkillEnhancement     = "Skill Enhancement"
	CategorySkillGaps            = "Skill Gaps"
	CategoryKeywordOptimization  = "Keyword Optimization"
	CategoryImpactQuantification = "Impact Quantification"
	CategoryTechnicalDetail      = "Technical Detail"
)

// ResumeData is the extracted résumé text handed to the engine.
type ResumeData struct {
	FileName string    `json:"fileName"`
	Content  string    `json:"content"`
	ParsedAt time.Time `json:"parsedAt"`
}

// JobDescription is the raw posting text plus display metadata.
type JobDescription struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// SkillMatch scores a single vocabulary skill found in either document.
type SkillMatch struct {
	Name            string   `json:"name"`
	Score           int      `json:"score"`
	Relevance       string   `json:"relevance"`
	Evidence        string   `json:"evidence"`
	JobRequirement  string   `json:"jobRequirement"`
	KeywordMatch    int      `json:"keywordMatch"`
	ContextMatch    int      `json:"contextMatch"`
	ExperienceLevel string   `json:"experienceLevel"`
	Suggestions     []string `json:"suggestions"`
	RelatedKeywords []string `json:"relatedKeywords"`
}

// ImprovementSuggestion is one templated recommendation.
type ImprovementSuggestion struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// AnalysisResult is everything derived from one (résumé, job description) pair.
type AnalysisResult struct {
	OverallScore    int                     `json:"overallScore"`
	SkillMatches    []SkillMatch            `json:"skillMatches"`
	StrongMatches   []SkillMatch            `json:"strongMatches"`
	PartialMatches  []SkillMatch            `json:"partialMatches"`
	MissingSkills   []string                `json:"missingSkills"`
	MatchedKeywords []string                `json:"matchedKeywords"`
	MissingKeywords []string                `json:"missingKeywords"`
	Improvements    []ImprovementSuggestion `json:"improvements"`
	AnalysisDate    time.Time               `json:"analysisDate"`
}

func relevanceFor(score int) string {
	switch {
	case score >= 70:
		return RelevanceHigh
	case score >= 40:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}
