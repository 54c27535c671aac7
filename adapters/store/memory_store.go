package store

import (
	"context"
	"sync"
	"time"

	"github.com/citizenchain/citizenauth/ports"
)

// MemoryStore is an in-memory implementation of the ReplayStore interface
type MemoryStore struct {
	consumed map[string]time.Time
	mu       sync.RWMutex
	now      func() time.Time
}

// NewMemoryStore creates a new in-memory replay store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		consumed: make(map[string]time.Time),
		now:      time.Now,
	}
}

var _ ports.ReplayStore = (*MemoryStore)(nil)

// MarkConsumed records requestID as used for ttl
func (s *MemoryStore) MarkConsumed(ctx context.Context, requestID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	s.consumed[requestID] = now.Add(ttl)
	return nil
}

// IsConsumed reports whether requestID was recorded and has not yet expired
func (s *MemoryStore) IsConsumed(ctx context.Context, requestID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiry, exists := s.consumed[requestID]
	if !exists {
		return false, nil
	}
	return !s.now().After(expiry), nil
}

// Len returns the number of recorded ids, expired ones included until the next sweep
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.consumed)
}

// sweep drops expired entries. Callers hold the write lock.
func (s *MemoryStore) sweep(now time.Time) {
	for id, expiry := range s.consumed {
		if now.After(expiry) {
			delete(s.consumed, id)
		}
	}
}
