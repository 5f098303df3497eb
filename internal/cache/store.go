package cache

import (
	"context"
	"sync"
)

// Store keeps view snapshots alongside a single monotonic generation
// counter. Mutating operations bump the generation; a snapshot written
// with an older generation than the one already stored is dropped, so the
// last completed fetch always wins.
type Store interface {
	Generation(ctx context.Context) (int64, error)
	BumpGeneration(ctx context.Context) (int64, error)
	// PutSnapshot stores data under key unless a newer generation is
	// already present. Returns false when the write was dropped as stale.
	PutSnapshot(ctx context.Context, key string, generation int64, data []byte) (bool, error)
	// GetSnapshot returns the stored data and its generation.
	GetSnapshot(ctx context.Context, key string) ([]byte, int64, error)
}

// ErrMiss is reported via the bool/empty conventions below; stores return
// (nil, 0, nil) on a missing key.

type memorySnapshot struct {
	generation int64
	data       []byte
}

// MemoryStore is an in-process Store used in tests and as a fallback when
// Redis is not configured.
type MemoryStore struct {
	mu         sync.Mutex
	generation int64
	snapshots  map[string]memorySnapshot
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string]memorySnapshot)}
}

func (s *MemoryStore) Generation(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation, nil
}

func (s *MemoryStore) BumpGeneration(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation, nil
}

func (s *MemoryStore) PutSnapshot(_ context.Context, key string, generation int64, data []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.snapshots[key]; ok && generation < existing.generation {
		return false, nil
	}
	s.snapshots[key] = memorySnapshot{generation: generation, data: data}
	return true, nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, key string) ([]byte, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.snapshots[key]
	if !ok {
		return nil, 0, nil
	}
	return snapshot.data, snapshot.generation, nil
}
