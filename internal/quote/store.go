package quote

import (
	"context"
	"sync"
	"time"
)

// DefaultSessionTTL bounds how long an abandoned modal session is kept.
const DefaultSessionTTL = 30 * time.Minute

// Store keeps the form state of open quote modals.
type Store interface {
	Save(ctx context.Context, id string, snap Snapshot) error
	Load(ctx context.Context, id string) (Snapshot, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryStore is a process-local Store
type InMemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
}

type memorySession struct {
	snap      Snapshot
	expiresAt time.Time
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &InMemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memorySession),
	}
}

// Save stores snap and refreshes the session expiry
func (s *InMemoryStore) Save(ctx context.Context, id string, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.Draft = snap.Draft.clone()
	s.sessions[id] = memorySession{snap: snap, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Load returns the session or ErrSessionNotFound
func (s *InMemoryStore) Load(ctx context.Context, id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if !s.now().Before(sess.expiresAt) {
		delete(s.sessions, id)
		return Snapshot{}, ErrSessionNotFound
	}
	sess.snap.Draft = sess.snap.Draft.clone()
	return sess.snap, nil
}

// Delete drops the session. Missing sessions are not an error.
func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
