package adapter

import (
	"context"
	"time"

	"video-quiz/internal/domain"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 5 * time.Minute

// MemoryCacheAdapter is an in-process domain.Cache used when no Redis address
// is configured.
type MemoryCacheAdapter struct {
	store *gocache.Cache
}

func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		store: gocache.New(gocache.NoExpiration, memoryCleanupInterval),
	}
}

func (m *MemoryCacheAdapter) Get(_ context.Context, key string) (string, error) {
	value, ok := m.store.Get(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	s, ok := value.(string)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return s, nil
}

// Set stores value under key. A zero or negative expiration keeps the entry
// until it is deleted.
func (m *MemoryCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	m.store.Set(key, value, expiration)
	return nil
}

func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(context.Context) error {
	return nil
}

var _ domain.Cache = (*MemoryCacheAdapter)(nil)
