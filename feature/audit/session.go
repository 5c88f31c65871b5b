package audit

import (
	"sync"
	"time"

	"audit-manager/feature/audit/models"

	"github.com/google/uuid"
)

// Session holds one finished audit run so its reports stay downloadable
// without re-uploading the source files. Sessions live in memory only and
// expire after the configured TTL.
type Session struct {
	ID        string
	CreatedAt time.Time
	Result    *models.ResultSet
}

// SessionStore is a TTL-bound in-memory session map.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewSessionStore creates a store whose sessions expire after ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Put stores a result set under a fresh session ID. Expired sessions are
// swept opportunistically on every insert, so the map cannot grow without
// bound even if nobody ever reads.
func (s *SessionStore) Put(result *models.ResultSet) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Result:    result,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, old := range s.sessions {
		if s.expired(old) {
			delete(s.sessions, id)
		}
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for id, or false if it never existed or has
// expired. Expired entries are removed on access.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.expired(sess) {
		s.Delete(id)
		return nil, false
	}
	return sess, true
}

// Delete discards a session early (the "clear results" action).
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// ExpiresAt returns when the session stops being downloadable.
func (s *SessionStore) ExpiresAt(sess *Session) time.Time {
	return sess.CreatedAt.Add(s.ttl)
}

func (s *SessionStore) expired(sess *Session) bool {
	return time.Since(sess.CreatedAt) > s.ttl
}
