package tokenstore

import (
	"context"
	"sync"
)

// CachedStore is a read-through cache in front of another Store.
type CachedStore struct {
	next Store

	mu    sync.Mutex
	cache map[string]string
	// gen is bumped by every write, after the backend call returns. A Get
	// only caches what it read if no write completed meanwhile.
	gen uint64
}

func Cached(next Store) *CachedStore {
	return &CachedStore{next: next, cache: make(map[string]string)}
}

func (c *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	v, ok := c.cache[key]
	gen := c.gen
	c.mu.Unlock()
	if ok {
		return v, true, nil
	}

	v, ok, err := c.next.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}

	c.mu.Lock()
	if c.gen == gen {
		c.cache[key] = v
	}
	c.mu.Unlock()
	return v, true, nil
}

func (c *CachedStore) Set(ctx context.Context, key, value string) error {
	err := c.next.Set(ctx, key, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if err != nil {
		// the backend may or may not hold the new value now
		delete(c.cache, key)
		return err
	}
	c.cache[key] = value
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, key string) error {
	c.evict(key)
	err := c.next.Delete(ctx, key)
	c.evict(key)
	return err
}

func (c *CachedStore) Clear(ctx context.Context) error {
	c.evictAll()
	err := c.next.Clear(ctx)
	c.evictAll()
	return err
}

func (c *CachedStore) evict(key string) {
	c.mu.Lock()
	c.gen++
	delete(c.cache, key)
	c.mu.Unlock()
}

func (c *CachedStore) evictAll() {
	c.mu.Lock()
	c.gen++
	c.cache = make(map[string]string)
	c.mu.Unlock()
}

func (c *CachedStore) Close() error {
	return c.next.Close()
}
