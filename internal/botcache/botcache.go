//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package botcache provides a keyed get-or-create cache with explicit
// invalidation. The arena keeps one constructed bot per user in it and
// invalidates the entry when that user's preferences change, so the next
// turn gets a bot built from fresh preference state.
package botcache

import "sync"

// Cache lazily builds and retains one value per key.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]T
}

// New creates an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]T)}
}

// GetOrCreate returns the cached value for key, building and storing it
// first when absent. A failed build caches nothing.
func (c *Cache[T]) GetOrCreate(key string, build func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	c.entries[key] = v
	return v, nil
}

// Invalidate drops the cached value for key, if any.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
