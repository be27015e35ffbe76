package analyses

import (
	"time"

	"jobjotter/internal/matching"
)

// Analysis is one stored run of the matching engine. Analyses are
// immutable once created.
type Analysis struct {
	ID                string                  `json:"id"`
	SessionID         string                  `json:"-"`
	DocumentID        string                  `json:"documentId,omitempty"`
	FileName          string                  `json:"fileName"`
	JobTitle          string                  `json:"jobTitle,omitempty"`
	Company           string                  `json:"company,omitempty"`
	JobDescription    string                  `json:"jobDescription"`
	VocabularyVersion string                  `json:"vocabularyVersion"`
	Result            matching.AnalysisResult `json:"result"`
	DurationMs        int64                   `json:"durationMs"`
	CreatedAt         time.Time               `json:"createdAt"`
}

// Job returns the job description the analysis was run against.
func (a Analysis) Job() matching.JobDescription {
	return matching.JobDescription{
		Content: a.JobDescription,
		Title:   a.JobTitle,
		Company: a.Company,
	}
}

// Request describes an analysis to run. The résumé comes either from a
// stored document or from inline text.
type Request struct {
	SessionID      string
	DocumentID     string
	ResumeText     string
	ResumeFileName string
	JobTitle       string
	Company        string
	JobDescription string
}

// Summary is the list view of an analysis.
type Summary struct {
	AnalysisID   string    `json:"analysisId"`
	DocumentID   string    `json:"documentId,omitempty"`
	FileName     string    `json:"fileName"`
	JobTitle     string    `json:"jobTitle,omitempty"`
	Company      string    `json:"company,omitempty"`
	OverallScore int       `json:"overallScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toSummary(a Analysis) Summary {
	return Summary{
		AnalysisID:   a.ID,
		DocumentID:   a.DocumentID,
		FileName:     a.FileName,
		JobTitle:     a.JobTitle,
		Company:      a.Company,
		OverallScore: a.Result.OverallScore,
		CreatedAt:    a.CreatedAt,
	}
}
