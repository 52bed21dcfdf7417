package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps server-side sessions keyed by an opaque cookie value.
type SessionStore interface {
	Create(ctx context.Context, id Identity) (string, error)
	Get(ctx context.Context, sessionID string) (Identity, bool, error)
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

// MemoryStore is a single-process SessionStore used in tests and local runs
// without Redis.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, id Identity) (string, error) {
	sid := uuid.NewString()

	s.mu.Lock()
	s.entries[sid] = memoryEntry{identity: id, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return sid, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return Identity{}, false, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return Identity{}, false, nil
	}
	return e.identity, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
