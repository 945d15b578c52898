// Package session provides the in-memory session store used in development
// and tests. Production deployments use the Redis-backed store.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// MemoryStore keeps sessions in a mutex-guarded map with lazy expiry:
// expired entries are dropped on access rather than by a sweeper goroutine,
// which is enough for a store that only ever serves single-process use.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session)}
}

func (m *MemoryStore) Create(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.Expired(time.Now().UTC()) {
		delete(m.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	clone := s
	return &clone, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error { return nil }
