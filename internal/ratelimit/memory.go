package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a fixed-window counter kept per process. State is
// ephemeral: it resets on restart and is not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*window

	windowSize  time.Duration
	maxRequests int
	now         func() time.Time
}

func NewMemoryStore(windowSize time.Duration, maxRequests int) *MemoryStore {
	return &MemoryStore{
		entries:     make(map[string]*window),
		windowSize:  windowSize,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

func (s *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	w, ok := s.entries[key]
	if !ok || now.After(w.resetAt) {
		s.entries[key] = &window{count: 1, resetAt: now.Add(s.windowSize)}
		s.pruneLocked(now)
		return true, nil
	}

	if w.count >= s.maxRequests {
		return false, nil
	}

	w.count++
	return true, nil
}

// pruneLocked drops expired windows so the map stays bounded by the set
// of clients active within one window.
func (s *MemoryStore) pruneLocked(now time.Time) {
	if len(s.entries) < 10000 {
		return
	}
	for k, w := range s.entries {
		if now.After(w.resetAt) {
			delete(s.entries, k)
		}
	}
}
