package credential

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps credentials in process memory. Entries expire after the
// configured TTL and the least recently used entry is evicted at capacity.
type MemoryStore struct {
	cache *expirable.LRU[string, string]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultSize
	}
	return &MemoryStore{cache: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (s *MemoryStore) Load(_ context.Context, key string) (string, error) {
	token, ok := s.cache.Get(key)
	if !ok || token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *MemoryStore) Save(_ context.Context, key, token string) error {
	s.cache.Add(key, token)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

func (s *MemoryStore) Close() error {
	s.cache.Purge()
	return nil
}
