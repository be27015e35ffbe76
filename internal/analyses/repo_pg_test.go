package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobjotter/internal/matching"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

var analysisRowColumns = []string{"id", "session_id", "document_id", "file_name", "job_title", "company", "job_description", "vocabulary_version", "result", "duration_ms", "created_at"}

func sampleResult() matching.AnalysisResult {
	return matching.AnalysisResult{
		OverallScore:    71,
		SkillMatches:    []matching.SkillMatch{{Name: "go", Score: 90, Relevance: matching.RelevanceHigh}},
		MatchedKeywords: []string{"api"},
		MissingKeywords: []string{"mentoring"},
		AnalysisDate:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Analysis{
		ID:                "an-1",
		SessionID:         "s1",
		FileName:          "Manual Input",
		JobDescription:    "Go engineer",
		VocabularyVersion: "builtin:v1",
		Result:            sampleResult(),
		DurationMs:        2,
		CreatedAt:         now,
	}
	payload, err := json.Marshal(a.Result)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(a.ID, a.SessionID, nil, a.FileName, "", "", a.JobDescription,
			a.VocabularyVersion, 71, payload, int64(2), now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(sampleResult())
	require.NoError(t, err)

	rows := sqlmock.NewRows(analysisRowColumns).
		AddRow("an-1", "s1", "doc-1", "cv.pdf", "Backend Engineer", "Acme", "Go engineer", "builtin:v1", payload, int64(3), now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM analyses")).
		WithArgs("s1", "an-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "s1", "an-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.DocumentID)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, 71, got.Result.OverallScore)
	assert.Equal(t, "go", got.Result.SkillMatches[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM analyses")).
		WithArgs("s1", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "s1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPGRepoListBySessionClampsLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(sampleResult())
	require.NoError(t, err)

	rows := sqlmock.NewRows(analysisRowColumns).
		AddRow("an-2", "s1", nil, "Manual Input", "", "", "jd", "builtin:v1", payload, int64(1), now).
		AddRow("an-1", "s1", "doc-1", "cv.pdf", "", "", "jd", "builtin:v1", payload, int64(1), now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("s1", 100, 0).
		WillReturnRows(rows)

	got, err := repo.ListBySession(context.Background(), "s1", 500, -3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].DocumentID)
	assert.Equal(t, "doc-1", got[1].DocumentID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoRejectsCorruptResult(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows(analysisRowColumns).
		AddRow("an-1", "s1", nil, "cv.pdf", "", "", "jd", "builtin:v1", []byte("{"), int64(1), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM analyses")).WillReturnRows(rows)

	_, err := repo.GetByID(context.Background(), "s1", "an-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode analysis an-1 result")
}
