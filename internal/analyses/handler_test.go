package analyses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobjotter/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService(t)

	r := gin.New()
	r.Use(middleware.Session())
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, session)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

type errorBody struct {
	Error struct {
		Code    string       `json:"code"`
		Message string       `json:"message"`
		Details []fieldIssue `json:"details"`
	} `json:"error"`
}

func TestCreateGetAndListAnalysis(t *testing.T) {
	r := newTestRouter(t)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyses", "s1", map[string]string{
		"resumeText":     sampleResume,
		"jobDescription": sampleJD,
		"jobTitle":       "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created analysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.Explanation.Components, 2)

	resp = doJSON(t, r, http.MethodGet, "/api/v1/analyses/"+created.ID, "s1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var fetched analysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, created.Result.OverallScore, fetched.Result.OverallScore)

	resp = doJSON(t, r, http.MethodGet, "/api/v1/analyses", "s1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list struct {
		Items []Summary `json:"items"`
		Limit int       `json:"limit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].AnalysisID)
	assert.Equal(t, 20, list.Limit)
}

func TestCreateAnalysisValidation(t *testing.T) {
	r := newTestRouter(t)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyses", "s1", map[string]string{
		"documentId": "not-a-uuid",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "validation_error", body.Error.Code)
	fields := map[string]string{}
	for _, d := range body.Error.Details {
		fields[d.Field] = d.Issue
	}
	assert.Equal(t, "must be a uuid", fields["documentId"])
	assert.Equal(t, "required", fields["jobDescription"])
}

func TestCreateAnalysisRejectsBadJSON(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateAnalysisUnknownDocument(t *testing.T) {
	r := newTestRouter(t)
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyses", "s1", map[string]string{
		"documentId":     "6f1c1c9e-3c55-4c77-9d2b-6a1f0e1e4a11",
		"jobDescription": sampleJD,
	})
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "document_not_found", body.Error.Code)
}

func TestGetAnalysisOtherSession(t *testing.T) {
	r := newTestRouter(t)
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyses", "s1", map[string]string{
		"resumeText":     sampleResume,
		"jobDescription": sampleJD,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created analysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doJSON(t, r, http.MethodGet, "/api/v1/analyses/"+created.ID, "s2", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAnalysisReportDownload(t *testing.T) {
	r := newTestRouter(t)
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyses", "s1", map[string]string{
		"resumeText":     sampleResume,
		"jobDescription": sampleJD,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created analysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doJSON(t, r, http.MethodGet, "/api/v1/analyses/"+created.ID+"/report?download=1", "s1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="resume-analysis-2026-06-02.html"`, resp.Header().Get("Content-Disposition"))
	assert.Contains(t, resp.Body.String(), "Resume Analysis Report")
}

func TestGetAnalysisMalformedIDIsNotFound(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/v1/analyses/not-a-uuid", "/api/v1/analyses/42/report"} {
		resp := doJSON(t, r, http.MethodGet, path, "s1", nil)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
	}
}
