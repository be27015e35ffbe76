package analyses

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobjotter/internal/documents"
	"jobjotter/internal/matching"
	"jobjotter/internal/report"
	"jobjotter/internal/shared/metrics"
	"jobjotter/internal/shared/telemetry"
)

const (
	maxJobDescriptionRunes = 100_000
	maxResumeTextRunes     = 200_000
	manualInputFileName    = "Manual Input"
)

// DocumentSource resolves stored résumés for a session.
type DocumentSource interface {
	Get(ctx context.Context, sessionID, documentID string) (documents.Document, error)
}

// Service runs analyses and keeps their history.
type Service struct {
	Repo      Repo
	Documents DocumentSource
	Engine    *matching.Engine
	Now       func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Run scores the requested résumé against the job description and stores
// the result as a new analysis.
func (s *Service) Run(ctx context.Context, req Request) (Analysis, error) {
	metrics.IncAnalysisStarted()

	if err := validateRequest(req); err != nil {
		metrics.IncAnalysisFailed("invalid_input")
		return Analysis{}, err
	}

	resume, err := s.resolveResume(ctx, req)
	if err != nil {
		reason := "document_lookup"
		if errors.Is(err, ErrDocumentNotFound) {
			reason = "document_not_found"
		}
		metrics.IncAnalysisFailed(reason)
		return Analysis{}, err
	}

	job := matching.JobDescription{
		Content: req.JobDescription,
		Title:   strings.TrimSpace(req.JobTitle),
		Company: strings.TrimSpace(req.Company),
	}

	start := time.Now()
	result := s.Engine.Analyze(resume, job)
	elapsed := time.Since(start)

	analysis := Analysis{
		ID:                uuid.NewString(),
		SessionID:         req.SessionID,
		DocumentID:        req.DocumentID,
		FileName:          resume.FileName,
		JobTitle:          job.Title,
		Company:           job.Company,
		JobDescription:    job.Content,
		VocabularyVersion: s.Engine.Vocabulary().Version,
		Result:            result,
		DurationMs:        elapsed.Milliseconds(),
		CreatedAt:         s.now(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed("storage")
		return Analysis{}, fmt.Errorf("save analysis: %w", err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(elapsed.Microseconds()) / 1000)
	metrics.ObserveOverallScore(result.OverallScore)
	telemetry.Info("analysis.complete", map[string]any{
		"session_id":     analysis.SessionID,
		"analysis_id":    analysis.ID,
		"document_id":    analysis.DocumentID,
		"overall_score":  result.OverallScore,
		"skills_matched": len(result.SkillMatches),
		"missing_skills": len(result.MissingSkills),
		"duration_ms":    analysis.DurationMs,
	})
	return analysis, nil
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: session id required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return fmt.Errorf("%w: job description required", ErrInvalidInput)
	}
	if len([]rune(req.JobDescription)) > maxJobDescriptionRunes {
		return fmt.Errorf("%w: job description too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.DocumentID) == "" && strings.TrimSpace(req.ResumeText) == "" {
		return fmt.Errorf("%w: documentId or resumeText required", ErrInvalidInput)
	}
	if len([]rune(req.ResumeText)) > maxResumeTextRunes {
		return fmt.Errorf("%w: resume text too long", ErrInvalidInput)
	}
	return nil
}

func (s *Service) resolveResume(ctx context.Context, req Request) (matching.ResumeData, error) {
	if req.DocumentID != "" {
		doc, err := s.Documents.Get(ctx, req.SessionID, req.DocumentID)
		if err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				return matching.ResumeData{}, ErrDocumentNotFound
			}
			return matching.ResumeData{}, fmt.Errorf("load document: %w", err)
		}
		return doc.ResumeData(), nil
	}

	name := strings.TrimSpace(req.ResumeFileName)
	if name == "" {
		name = manualInputFileName
	}
	return matching.ResumeData{
		FileName: name,
		Content:  req.ResumeText,
		ParsedAt: s.now(),
	}, nil
}

// Get returns an analysis owned by the session.
func (s *Service) Get(ctx context.Context, sessionID, analysisID string) (Analysis, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(analysisID) == "" {
		return Analysis{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(analysisID); err != nil {
		return Analysis{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, sessionID, analysisID)
}

// List returns the session's analysis history, newest first.
func (s *Service) List(ctx context.Context, sessionID string, limit, offset int) ([]Summary, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.Repo.ListBySession(ctx, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(items))
	for _, a := range items {
		out = append(out, toSummary(a))
	}
	return out, nil
}

// Report renders the stored analysis as an HTML document.
func (s *Service) Report(ctx context.Context, sessionID, analysisID string) (Analysis, []byte, error) {
	analysis, err := s.Get(ctx, sessionID, analysisID)
	if err != nil {
		return Analysis{}, nil, err
	}

	var buf bytes.Buffer
	err = report.Render(&buf, report.Data{
		Result:      analysis.Result,
		Resume:      matching.ResumeData{FileName: analysis.FileName},
		Job:         analysis.Job(),
		GeneratedAt: s.now(),
	})
	if err != nil {
		return Analysis{}, nil, err
	}
	return analysis, buf.Bytes(), nil
}
