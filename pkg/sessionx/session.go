// Package sessionx implements server-side session state: an opaque token
// store with terminal invalidation, cookie binding, and an HTTP gate for
// protected resources.
package sessionx

import (
	"sync"
	"time"

	"github.com/couriersync/couriersync/pkg/cryptox"
)

// DefaultTTL bounds how long a session stays valid without an explicit logout.
const DefaultTTL = 24 * time.Hour

// Session is server-held proof of a successful authentication. The ID is an
// opaque 256-bit random token; it carries no user data itself.
type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store holds active sessions keyed by opaque token. It is safe for
// concurrent use from multiple requests. Invalidation is terminal: once a
// session ID is removed it can never be revived, only replaced by a freshly
// generated one.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
	now      func() time.Time
}

// NewStore returns an empty session store. A ttl of zero means DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create allocates a new session bound to username. If prior is a live
// session ID (e.g. from a cookie presented on the login request), it is
// invalidated first so the identifier rotates on every authentication.
func (s *Store) Create(username, prior string) (Session, error) {
	id, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return Session{}, err
	}

	now := s.now()
	sess := Session{
		ID:        id,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	if prior != "" {
		delete(s.sessions, prior)
	}
	s.sessions[id] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get returns the session for id. Invalidated and expired sessions read as
// absent; there is no distinct expired state observable to callers.
func (s *Store) Get(id string) (Session, bool) {
	if id == "" {
		return Session{}, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.now().After(sess.ExpiresAt) {
		return Session{}, false
	}
	return sess, true
}

// Invalidate transitions the session to its terminal state. Invalidating an
// unknown or already-invalidated ID is a no-op.
func (s *Store) Invalidate(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// DeleteExpired removes sessions past their expiry and reports how many were
// dropped. Called periodically by housekeeping; Get already treats expired
// sessions as absent, so this only reclaims memory.
func (s *Store) DeleteExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
