package keycache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dtroode/notekeeper/internal/encryption"
	"github.com/dtroode/notekeeper/internal/model"
)

type keyStore interface {
	Get(ctx context.Context, cacheKey string) ([]byte, error)
	Insert(ctx context.Context, cacheKey string, wrapped []byte) error
}

var _ model.KeyCache = (*Cache)(nil)

// Cache is the durable key cache with an in-memory front.
type Cache struct {
	store   keyStore
	wrapKey *encryption.Key

	mu     sync.RWMutex
	loaded map[string]*encryption.Key
}

// New creates a Cache over store. wrapKey encrypts keys at rest.
func New(store keyStore, wrapKey *encryption.Key) *Cache {
	return &Cache{
		store:   store,
		wrapKey: wrapKey,
		loaded:  make(map[string]*encryption.Key),
	}
}

// Get returns the cached key for (id, owner), if any.
func (c *Cache) Get(ctx context.Context, id model.DocumentID, owner string) (*encryption.Key, bool, error) {
	cacheKey := model.CacheKey(id, owner)

	c.mu.RLock()
	key, ok := c.loaded[cacheKey]
	c.mu.RUnlock()
	if ok {
		return key, true, nil
	}

	wrapped, err := c.store.Get(ctx, cacheKey)
	if errors.Is(err, model.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	key, err = encryption.UnwrapKey(c.wrapKey, wrapped)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unwrap cached key %s: %w", cacheKey, err)
	}

	c.mu.Lock()
	if existing, ok := c.loaded[cacheKey]; ok {
		key = existing
	} else {
		c.loaded[cacheKey] = key
	}
	c.mu.Unlock()

	return key, true, nil
}

// Put stores key for (id, owner). An existing entry is left untouched.
func (c *Cache) Put(ctx context.Context, id model.DocumentID, owner string, key *encryption.Key) error {
	if key == nil {
		return errors.New("key is nil")
	}
	cacheKey := model.CacheKey(id, owner)

	c.mu.RLock()
	_, ok := c.loaded[cacheKey]
	c.mu.RUnlock()
	if ok {
		return nil
	}

	wrapped, err := encryption.WrapKey(c.wrapKey, key)
	if err != nil {
		return fmt.Errorf("failed to wrap key: %w", err)
	}
	if err := c.store.Insert(ctx, cacheKey, wrapped); err != nil {
		return err
	}

	c.mu.Lock()
	if _, ok := c.loaded[cacheKey]; !ok {
		c.loaded[cacheKey] = key
	}
	c.mu.Unlock()

	return nil
}
