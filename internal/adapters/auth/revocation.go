package auth

import (
	"sync"
	"time"
)

// MemoryRevocationStore is an in-process revocation set guarded by a mutex.
// Entries carry the revoked token's expiry so memory stays bounded: expired
// entries are dropped by Sweep and ignored by Contains.
type MemoryRevocationStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

// NewMemoryRevocationStore returns an empty revocation store.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{tokens: make(map[string]time.Time)}
}

// Add records a revoked token until expiresAt.
func (s *MemoryRevocationStore) Add(token string, expiresAt time.Time) {
	s.mu.Lock()
	s.tokens[token] = expiresAt
	s.mu.Unlock()
}

// Contains reports whether the token is revoked and not yet past its expiry.
func (s *MemoryRevocationStore) Contains(token string) bool {
	s.mu.RLock()
	expiresAt, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok && time.Now().Before(expiresAt)
}

// Sweep removes entries whose expiry is at or before now and returns the
// number removed.
func (s *MemoryRevocationStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, expiresAt := range s.tokens {
		if !expiresAt.After(now) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until stop is closed.
func (s *MemoryRevocationStore) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				s.Sweep(now)
			}
		}
	}()
}
