package repository

import "sync"

// collection is a keyed, insertion-ordered set of entities of one type.
type collection[T any] struct {
	mu    sync.RWMutex
	key   func(T) string
	items map[string]T
	order []string
}

func newCollection[T any](key func(T) string) *collection[T] {
	return &collection[T]{key: key, items: map[string]T{}}
}

// add stores e unless its key is taken. The check and the insert happen
// under one lock.
func (c *collection[T]) add(e T) (T, bool) {
	k := c.key(e)
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[k]; ok {
		return existing, false
	}
	c.items[k] = e
	c.order = append(c.order, k)
	return e, true
}

func (c *collection[T]) get(k string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[k]
	return e, ok
}

// all returns the entities in insertion order.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.items[k])
	}
	return out
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, k := range c.order {
		if e := c.items[k]; match(e) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
