package tools

import (
	"sync"
)

// ConcurrentMap is a map safe for concurrent use
type ConcurrentMap[K comparable, V any] struct {
	m map[K]V
	sync.RWMutex
}

func NewConcurrentMap[K comparable, V any]() *ConcurrentMap[K, V] {
	return &ConcurrentMap[K, V]{
		m:       make(map[K]V),
		RWMutex: sync.RWMutex{},
	}
}

func (c *ConcurrentMap[K, V]) Get(k K) (V, bool) {
	c.RLock()
	defer c.RUnlock()
	v, ok := c.m[k]
	return v, ok
}

func (c *ConcurrentMap[K, V]) Set(k K, v V) {
	c.Lock()
	defer c.Unlock()
	c.m[k] = v
}

// LoadOrStore returns the value stored for k if any. Otherwise it stores v
// and returns it. The boolean is true if the value was already there.
func (c *ConcurrentMap[K, V]) LoadOrStore(k K, v V) (V, bool) {
	c.Lock()
	defer c.Unlock()
	if old, ok := c.m[k]; ok {
		return old, true
	}
	c.m[k] = v
	return v, false
}

// Len returns the number of entries
func (c *ConcurrentMap[K, V]) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.m)
}
