package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"jobjotter/internal/analyses"
	"jobjotter/internal/bootstrap"
	"jobjotter/internal/extract"
	"jobjotter/internal/matching"
	"jobjotter/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a résumé file against a job description file",
	Long:  "Extract text from a résumé (PDF, DOCX, TXT or Markdown), score it against a job description and print the result as JSON or an HTML report.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJD      string
	analyzeTitle   string
	analyzeCompany string
	analyzeFormat  string
	analyzeOut     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the résumé file")
	analyzeCmd.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to the job description text file, or - for stdin")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title shown in the report")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company shown in the report")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "json", "Output format: json or html")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output file (default stdout)")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(analyzeCmd)
}

type analyzeOutput struct {
	Resume      matching.ResumeData       `json:"resume"`
	Job         matching.JobDescription   `json:"job"`
	Result      matching.AnalysisResult   `json:"result"`
	Explanation analyses.ScoreExplanation `json:"explanation"`
	Extracted   bool                      `json:"extracted"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(strings.TrimSpace(analyzeFormat))
	if format != "json" && format != "html" {
		return fmt.Errorf("unknown format %q (want json or html)", analyzeFormat)
	}

	vocab, err := bootstrap.LoadVocabulary(vocabularyPath())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resume, extracted, err := readResume(ctx, analyzeResume)
	if err != nil {
		return err
	}
	jdText, err := readJobDescription(cmd.InOrStdin(), analyzeJD)
	if err != nil {
		return err
	}
	if strings.TrimSpace(jdText) == "" {
		return fmt.Errorf("job description %s is empty", analyzeJD)
	}
	if !extracted {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not read text from %s; scoring placeholder text\n", analyzeResume)
	}

	job := matching.JobDescription{Content: jdText, Title: analyzeTitle, Company: analyzeCompany}
	result := matching.New(vocab).Analyze(resume, job)

	out := cmd.OutOrStdout()
	if analyzeOut != "" {
		f, err := os.Create(analyzeOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if format == "html" {
		return report.Render(out, report.Data{Result: result, Resume: resume, Job: job})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(analyzeOutput{
		Resume:      resume,
		Job:         job,
		Result:      result,
		Explanation: analyses.ExplainScore(result),
		Extracted:   extracted,
	})
}

// readResume extracts the résumé text. An unreadable file yields the
// placeholder text and extracted=false, the same as an API upload.
func readResume(ctx context.Context, path string) (matching.ResumeData, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return matching.ResumeData{}, false, fmt.Errorf("read résumé: %w", err)
	}
	name := filepath.Base(path)
	resume := matching.ResumeData{FileName: name, ParsedAt: time.Now().UTC()}

	text, err := extract.ExtractTextFromBytes(ctx, data, "", name)
	if err != nil || strings.TrimSpace(text) == "" {
		resume.Content = extract.FallbackText(name)
		return resume, false, nil
	}
	resume.Content = text
	return resume, true, nil
}

func readJobDescription(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read job description from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	return string(data), nil
}
