package ports

import (
	"time"

	"revenue-dashboard/internal/dashboard/core/graph"
)

// Session is one client's live instance of a dashboard.
type Session struct {
	ID        string
	Dashboard string
	Graph     *graph.Graph
	CreatedAt time.Time
}

type SessionStorePort interface {
	// Add stores s under s.ID. It may evict older sessions.
	Add(s *Session)
	// Get returns the session and refreshes nothing; expired or evicted
	// sessions are reported as missing.
	Get(id string) (*Session, bool)
	Len() int
}
