package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobjotter/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.SetOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(func() { telemetry.Init(telemetry.Config{}) })

	router := gin.New()
	router.Use(RequestID(), Session(), Logging())
	router.GET("/test/:id", func(c *gin.Context) {
		c.Set(DocumentIDKey, "doc-1")
		c.Set(AnalysisIDKey, "analysis-1")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test/1", nil)
	req.Header.Set(SessionHeader, "session1")
	req.Header.Set("X-Request-Id", "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &payload))

	assert.Equal(t, "request.complete", payload["message"])
	assert.Equal(t, "req-1", payload["request_id"])
	assert.Equal(t, "session1", payload["session_id"])
	assert.Equal(t, "doc-1", payload["document_id"])
	assert.Equal(t, "analysis-1", payload["analysis_id"])
	assert.Equal(t, "/test/:id", payload["route"])
	assert.EqualValues(t, http.StatusOK, payload["status"])
	assert.Contains(t, payload, "duration_ms")
}

func TestLoggingSkipsOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.SetOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(func() { telemetry.Init(telemetry.Config{}) })

	router := gin.New()
	router.Use(Logging())
	router.OPTIONS("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/x", nil))

	assert.Zero(t, buf.Len())
}
