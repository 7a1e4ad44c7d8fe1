package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultTTL = 30 * time.Minute

// MemoryCache is an in-memory TTL cache bounded by entry count
type MemoryCache struct {
	mu         sync.RWMutex
	items      map[string]*cacheItem
	maxEntries int
	stats      CacheStats
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

type cacheItem struct {
	value  []byte
	expiry time.Time
}

// NewMemoryCache creates a cache holding at most maxEntries items (0 means
// unbounded) and sweeps expired items every cleanupInterval.
func NewMemoryCache(maxEntries int, cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	mc := &MemoryCache{
		items:      make(map[string]*cacheItem),
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.cleanupExpired(cleanupInterval)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	if time.Now().After(item.expiry) {
		_ = mc.Delete(ctx, key)
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&mc.stats.Hits, 1)
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	mc.mu.Lock()
	if _, exists := mc.items[key]; !exists {
		mc.makeRoomLocked()
	}
	mc.items[key] = &cacheItem{
		value:  value,
		expiry: time.Now().Add(ttl),
	}
	mc.mu.Unlock()

	atomic.AddInt64(&mc.stats.Sets, 1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() CacheStats {
	mc.mu.RLock()
	entries := len(mc.items)
	mc.mu.RUnlock()

	return CacheStats{
		Hits:       atomic.LoadInt64(&mc.stats.Hits),
		Misses:     atomic.LoadInt64(&mc.stats.Misses),
		Sets:       atomic.LoadInt64(&mc.stats.Sets),
		Evictions:  atomic.LoadInt64(&mc.stats.Evictions),
		Entries:    entries,
		MaxEntries: mc.maxEntries,
	}
}

// Stop shuts down the cleanup goroutine. Safe to call more than once.
func (mc *MemoryCache) Stop() {
	mc.stopOnce.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
}

// cleanupExpired removes expired items periodically
func (mc *MemoryCache) cleanupExpired(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpiredLocked(time.Now())
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpiredLocked(now time.Time) {
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}
}

// makeRoomLocked frees one slot when the cache is full: expired items go
// first, then the item closest to expiry.
func (mc *MemoryCache) makeRoomLocked() {
	if mc.maxEntries <= 0 || len(mc.items) < mc.maxEntries {
		return
	}

	mc.removeExpiredLocked(time.Now())

	for len(mc.items) >= mc.maxEntries {
		var oldestKey string
		var oldest time.Time
		for key, item := range mc.items {
			if oldestKey == "" || item.expiry.Before(oldest) {
				oldestKey = key
				oldest = item.expiry
			}
		}
		delete(mc.items, oldestKey)
		atomic.AddInt64(&mc.stats.Evictions, 1)
	}
}
