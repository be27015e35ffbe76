package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The engine result is stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, session_id, document_id, file_name, job_title, company, job_description, vocabulary_version, result, duration_ms, created_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (id, session_id, document_id, file_name, job_title, company, job_description, vocabulary_version, overall_score, result, duration_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	result, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}

	var documentID sql.NullString
	if analysis.DocumentID != "" {
		documentID = sql.NullString{String: analysis.DocumentID, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.SessionID,
		documentID,
		analysis.FileName,
		analysis.JobTitle,
		analysis.Company,
		analysis.JobDescription,
		analysis.VocabularyVersion,
		analysis.Result.OverallScore,
		result,
		analysis.DurationMs,
		analysis.CreatedAt,
	)
	return err
}

// GetByID fetches an analysis owned by the session.
func (r *PGRepo) GetByID(ctx context.Context, sessionID, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE session_id = $1 AND id = $2
LIMIT 1`
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, sessionID, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListBySession lists analyses newest first.
func (r *PGRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE session_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var documentID sql.NullString
	var result []byte
	err := row.Scan(
		&a.ID,
		&a.SessionID,
		&documentID,
		&a.FileName,
		&a.JobTitle,
		&a.Company,
		&a.JobDescription,
		&a.VocabularyVersion,
		&result,
		&a.DurationMs,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	a.DocumentID = documentID.String
	if err := json.Unmarshal(result, &a.Result); err != nil {
		return Analysis{}, fmt.Errorf("decode analysis %s result: %w", a.ID, err)
	}
	return a, nil
}

var _ Repo = (*PGRepo)(nil)
