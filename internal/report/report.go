// Package report renders a finished analysis as a standalone, printable
// HTML document.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"jobjotter/internal/matching"
)

const (
	evidencePreviewRunes = 100
	keywordLimit         = 20
)

//go:embed report.html.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"scoreClass": scoreClass,
	"preview":    preview,
	"head":       head,
	"date":       func(t time.Time) string { return t.Format("January 2, 2006") },
}).Parse(reportTemplate))

// Data is everything a report shows.
type Data struct {
	Result      matching.AnalysisResult
	Resume      matching.ResumeData
	Job         matching.JobDescription
	GeneratedAt time.Time
}

// Render writes the HTML report for d to w.
func Render(w io.Writer, d Data) error {
	if d.GeneratedAt.IsZero() {
		d.GeneratedAt = d.Result.AnalysisDate
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func scoreClass(score int) string {
	switch {
	case score >= 80:
		return "score-excellent"
	case score >= 60:
		return "score-good"
	default:
		return "score-poor"
	}
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= evidencePreviewRunes {
		return s
	}
	return string(runes[:evidencePreviewRunes]) + "..."
}

func head(items []string) []string {
	if len(items) > keywordLimit {
		return items[:keywordLimit]
	}
	return items
}
