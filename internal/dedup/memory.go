package dedup

import (
	"context"
	"sync"
)

// MemorySet is a process-local Set. Separate processes each keep their own
// copy, so the unique constraint on tweets.tweet_id stays the real guard
// when the service runs with more than one instance.
type MemorySet struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewMemorySet() *MemorySet {
	return &MemorySet{
		ids: make(map[string]struct{}),
	}
}

func (s *MemorySet) Seed(ctx context.Context, ids []string) error {
	s.mu.Lock()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	s.mu.Unlock()
	return nil
}

func (s *MemorySet) Contains(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	_, ok := s.ids[id]
	s.mu.RUnlock()
	return ok, nil
}

func (s *MemorySet) Add(ctx context.Context, id string) error {
	s.mu.Lock()
	s.ids[id] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *MemorySet) Reserve(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		return false, nil
	}
	s.ids[id] = struct{}{}
	return true, nil
}

func (s *MemorySet) Forget(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	for _, id := range ids {
		delete(s.ids, id)
	}
	s.mu.Unlock()
	return nil
}

func (s *MemorySet) Len(ctx context.Context) (int64, error) {
	s.mu.RLock()
	n := len(s.ids)
	s.mu.RUnlock()
	return int64(n), nil
}

func (s *MemorySet) Clear(ctx context.Context) error {
	s.mu.Lock()
	clear(s.ids)
	s.mu.Unlock()
	return nil
}
