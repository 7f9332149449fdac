package cache

import (
	"context"
	"sync"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// MemoryCache is the default single-replica snapshot store.
type MemoryCache struct {
	m         sync.RWMutex
	snapshots map[string]*domain.CartSnapshot
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		snapshots: make(map[string]*domain.CartSnapshot),
	}
}

func (c *MemoryCache) Get(_ context.Context, customerID string) (*domain.CartSnapshot, error) {
	c.m.RLock()
	defer c.m.RUnlock()
	snapshot, ok := c.snapshots[customerID]
	if !ok {
		return nil, ErrCacheMiss
	}
	return snapshot, nil
}

func (c *MemoryCache) Set(_ context.Context, customerID string, snapshot *domain.CartSnapshot) error {
	c.m.Lock()
	defer c.m.Unlock()
	c.snapshots[customerID] = snapshot
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, customerID string) error {
	c.m.Lock()
	defer c.m.Unlock()
	delete(c.snapshots, customerID)
	return nil
}
