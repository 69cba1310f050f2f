package memory

import (
	"context"
	"sync"
	"time"

	"cattery-breeding/internal/ports/cache"
)

type item struct {
	value     []byte
	expiresAt time.Time // zero = sin expiración
}

type Store struct {
	mu    sync.RWMutex
	items map[string]item
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		items: make(map[string]item),
		now:   time.Now,
	}
}

var _ cache.Store = (*Store)(nil)

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil, cache.ErrMiss
	}
	if !it.expiresAt.IsZero() && !s.now().Before(it.expiresAt) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil, cache.ErrMiss
	}
	return append([]byte(nil), it.value...), nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	it := item{value: append([]byte(nil), value...)}
	if ttl > 0 {
		it.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = it
	return nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.items, k)
	}
	return nil
}
