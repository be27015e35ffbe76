package documents

import (
	"time"

	"jobjotter/internal/matching"
)

// Document is an uploaded résumé plus the text extracted from it.
type Document struct {
	ID              string
	SessionID       string
	FileName        string
	MimeType        string
	SizeBytes       int64
	StorageProvider string
	StorageKey      string
	// Content is the extracted text, or placeholder text when extraction failed.
	Content         string
	ExtractionError string
	ParsedAt        time.Time
	CreatedAt       time.Time
}

// ResumeData converts the document into engine input.
func (d Document) ResumeData() matching.ResumeData {
	return matching.ResumeData{
		FileName: d.FileName,
		Content:  d.Content,
		ParsedAt: d.ParsedAt,
	}
}

// Extracted reports whether real text was pulled from the file.
func (d Document) Extracted() bool {
	return d.ExtractionError == ""
}

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID      string    `json:"documentId"`
	FileName        string    `json:"fileName"`
	MimeType        string    `json:"mimeType"`
	SizeBytes       int64     `json:"sizeBytes"`
	Extracted       bool      `json:"extracted"`
	ExtractionError string    `json:"extractionError,omitempty"`
	Content         string    `json:"content,omitempty"`
	ParsedAt        time.Time `json:"parsedAt"`
	UploadedAt      time.Time `json:"uploadedAt"`
}

func toResponse(doc Document, withContent bool) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:      doc.ID,
		FileName:        doc.FileName,
		MimeType:        doc.MimeType,
		SizeBytes:       doc.SizeBytes,
		Extracted:       doc.Extracted(),
		ExtractionError: doc.ExtractionError,
		ParsedAt:        doc.ParsedAt,
		UploadedAt:      doc.CreatedAt,
	}
	if withContent {
		resp.Content = doc.Content
	}
	return resp
}
