package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		analyzeOut, analyzeFormat, analyzeTitle, analyzeCompany, vocabularyFile = "", "json", "", "", ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAnalyzeJSON(t *testing.T) {
	t.Setenv("VOCABULARY_FILE", "")
	resume := writeFile(t, "cv.txt", "Go developer with Docker and Kubernetes experience building APIs.")
	jd := writeFile(t, "jd.txt", "We need a Go engineer who knows Docker, Kubernetes and AWS.")

	out, err := runCLI(t, "", "analyze", "--resume", resume, "--jd", jd, "--title", "Backend Engineer")
	require.NoError(t, err)

	var got analyzeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Extracted)
	assert.Equal(t, "cv.txt", got.Resume.FileName)
	assert.Equal(t, "Backend Engineer", got.Job.Title)
	assert.NotEmpty(t, got.Result.SkillMatches)
	assert.Len(t, got.Explanation.Components, 2)
}

func TestAnalyzeHTMLFromStdin(t *testing.T) {
	t.Setenv("VOCABULARY_FILE", "")
	resume := writeFile(t, "cv.md", "# Jane\nPython and SQL analyst")
	outFile := filepath.Join(t.TempDir(), "report.html")

	_, err := runCLI(t, "Looking for SQL and Python skills", "analyze", "-r", resume, "-j", "-", "-f", "html", "-o", outFile)
	require.NoError(t, err)

	html, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Resume Analysis Report")
	assert.Contains(t, string(html), "Resume: cv.md")
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	resume := writeFile(t, "cv.txt", "Go")
	jd := writeFile(t, "jd.txt", "Go")
	_, err := runCLI(t, "", "analyze", "--resume", resume, "--jd", jd, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestVocabularyPrintsYAML(t *testing.T) {
	t.Setenv("VOCABULARY_FILE", "")
	out, err := runCLI(t, "", "vocabulary")
	require.NoError(t, err)
	assert.Contains(t, out, "builtin:v1")
	assert.Contains(t, out, "- docker")
}
