package analyses

import "errors"

var (
	ErrNotFound         = errors.New("analysis not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDocumentNotFound = errors.New("résumé document not found")
)
