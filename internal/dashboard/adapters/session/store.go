package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"revenue-dashboard/internal/dashboard/core/ports"
	"revenue-dashboard/internal/platform/log"
)

// Store keeps sessions in a size-bounded LRU whose entries expire after ttl.
type Store struct {
	cache *expirable.LRU[string, *ports.Session]
}

func NewStore(capacity int, ttl time.Duration, logger *log.Logger) *Store {
	onEvict := func(id string, s *ports.Session) {
		logger.Debug("session evicted", "session", id, "dashboard", s.Dashboard)
	}
	return &Store{cache: expirable.NewLRU[string, *ports.Session](capacity, onEvict, ttl)}
}

func (s *Store) Add(sess *ports.Session) {
	s.cache.Add(sess.ID, sess)
}

func (s *Store) Get(id string) (*ports.Session, bool) {
	return s.cache.Get(id)
}

func (s *Store) Len() int {
	return s.cache.Len()
}

var _ ports.SessionStorePort = (*Store)(nil)
