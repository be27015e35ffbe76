package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service reports whether the API and its backing stores are usable.
type Service struct {
	DB                Pinger
	StoreProvider     string
	VocabularyVersion string
}

// Status is the health payload.
type Status struct {
	OK                bool   `json:"ok"`
	Database          string `json:"database"`
	ObjectStore       string `json:"objectStore"`
	VocabularyVersion string `json:"vocabularyVersion"`
}

// NewService constructs a health service. db may be nil when the API runs
// on in-memory repositories.
func NewService(db Pinger, storeProvider, vocabularyVersion string) *Service {
	return &Service{DB: db, StoreProvider: storeProvider, VocabularyVersion: vocabularyVersion}
}

// Check pings the database, if any. A failed ping marks the service unhealthy.
func (s *Service) Check(ctx context.Context) Status {
	st := Status{
		OK:                true,
		Database:          "memory",
		ObjectStore:       s.StoreProvider,
		VocabularyVersion: s.VocabularyVersion,
	}
	if s.DB == nil {
		return st
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		st.OK = false
		st.Database = "unreachable"
		return st
	}
	st.Database = "postgres"
	return st
}
