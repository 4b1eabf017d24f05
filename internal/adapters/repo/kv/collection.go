package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/intechds/storefront/internal/domain"
)

// collection is one whole-document JSON value in the store. Every mutation
// is read-whole, modify, write-whole; mu serializes those cycles so two
// in-process writers cannot drop each other's changes. The remote store has
// no conditional write, so a second process can still lose updates.
type collection[T any] struct {
	store domain.KVStore
	key   string
	seed  func() T
	mu    sync.Mutex
}

func (c *collection[T]) load(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

func (c *collection[T]) loadLocked(ctx context.Context) (T, error) {
	var zero T
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return zero, err
	}
	if !ok {
		v := c.seed()
		if err := c.store.Set(ctx, c.key, v); err != nil {
			return zero, fmt.Errorf("seed %s: %w", c.key, err)
		}
		return v, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return v, nil
}

func (c *collection[T]) save(ctx context.Context, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Set(ctx, c.key, v)
}

// update runs fn inside the locked read-modify-write cycle and persists its
// result. fn may capture outputs; an error from fn aborts without writing.
func (c *collection[T]) update(ctx context.Context, fn func(T) (T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, next)
}
