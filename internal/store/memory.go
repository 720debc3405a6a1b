package store

import (
	"context"
	"sync"
)

// MemoryStore is a process-local KeyValue used by unit tests and available
// as a zero-dependency fallback.  Nothing survives a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	bc   *broadcaster
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}, bc: newBroadcaster()}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	// Copy out so callers can't mutate the stored snapshot.
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	s.data[key] = cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Notify(_ context.Context, channel string) error {
	s.bc.notify(channel)
	return nil
}

func (s *MemoryStore) Watch(ctx context.Context, channel string) (<-chan struct{}, error) {
	return s.bc.watch(ctx, channel), nil
}

func (s *MemoryStore) Close() error { return nil }
