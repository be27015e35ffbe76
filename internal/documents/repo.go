package documents

import "context"

// DocumentsRepo defines persistence operations for documents. Lookups are
// always scoped to a session.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, sessionID, documentID string) (Document, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Document, error)
}
