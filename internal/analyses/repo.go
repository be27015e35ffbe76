package analyses

import "context"

// Repo defines persistence operations for analyses. There is no update:
// a new analysis never rewrites an older one.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, sessionID, analysisID string) (Analysis, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Analysis, error)
}
