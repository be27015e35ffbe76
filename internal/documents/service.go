package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobjotter/internal/extract"
	"jobjotter/internal/shared/metrics"
	"jobjotter/internal/shared/storage/object"
	"jobjotter/internal/shared/telemetry"
	"jobjotter/internal/shared/util"
)

// errNoText marks a file that parsed but held no readable text.
var errNoText = errors.New("no text found in document")

// Service stores résumé uploads and their extracted text.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
	Now   func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Upload saves the file, extracts its text and records the document.
// A file whose text cannot be extracted is still stored; its Content holds
// placeholder text and ExtractionError says what went wrong.
func (s *Service) Upload(ctx context.Context, sessionID, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Document{}, fmt.Errorf("%w: session id required", ErrInvalidInput)
	}
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}

	stored, err := s.Store.Save(ctx, sessionID, fileName, r)
	if err != nil {
		if errors.Is(err, util.ErrInvalidFileName) {
			return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Document{}, fmt.Errorf("store upload: %w", err)
	}
	if stored.SizeBytes == 0 {
		return Document{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	doc := Document{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		FileName:        fileName,
		MimeType:        extract.NormalizeMimeType(stored.ContentType, fileName, nil),
		SizeBytes:       stored.SizeBytes,
		StorageProvider: s.Store.Provider(),
		StorageKey:      stored.Key,
	}

	text, err := extract.ExtractText(ctx, s.Store, stored.Key, stored.ContentType, fileName)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errNoText
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Document{}, ctxErr
		}
		metrics.IncExtraction("failed")
		telemetry.Warn("document.extract_failed", map[string]any{
			"session_id": sessionID,
			"file_name":  fileName,
			"mime_type":  stored.ContentType,
			"error":      err.Error(),
		})
		doc.Content = extract.FallbackText(fileName)
		doc.ExtractionError = err.Error()
	} else {
		metrics.IncExtraction("ok")
		doc.Content = text
	}

	now := s.now()
	doc.ParsedAt = now
	doc.CreatedAt = now

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("save document: %w", err)
	}

	telemetry.Info("document.uploaded", map[string]any{
		"session_id":  sessionID,
		"document_id": doc.ID,
		"size_bytes":  doc.SizeBytes,
		"mime_type":   doc.MimeType,
		"extracted":   doc.Extracted(),
	})
	return doc, nil
}

// Get returns a document owned by the session.
func (s *Service) Get(ctx context.Context, sessionID, documentID string) (Document, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(documentID) == "" {
		return Document{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(documentID); err != nil {
		return Document{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, sessionID, documentID)
}

// List returns the session's documents, newest first.
func (s *Service) List(ctx context.Context, sessionID string, limit, offset int) ([]Document, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListBySession(ctx, sessionID, limit, offset)
}
