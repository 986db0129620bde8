// Package cache provides content-keyed caching of parse and render results.
// A Manager pairs two strategy instances (one for ASTs, one for rendered
// HTML) and tracks hit/miss/eviction statistics. Caching is sound because a
// fully parsed AST is immutable: a cached tree can be handed to any number
// of concurrent readers.
package cache

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Strategy names accepted by NewStrategy.
const (
	StrategyLRU  = "lru"
	StrategyLFU  = "lfu"
	StrategyNone = "none"
)

// DefaultCapacity is the per-strategy entry limit used when none is configured.
const DefaultCapacity = 256

// ErrUnknownStrategy is returned for unrecognized strategy names.
var ErrUnknownStrategy = errors.New("unknown cache strategy")

// Strategy is a bounded key/value store with an eviction policy.
// Implementations are not safe for concurrent use; the Manager serializes
// access.
type Strategy interface {
	Get(key string) (any, bool)
	Put(key string, value any)
	Len() int
	Evictions() uint64
	Clear()
}

// NewStrategy constructs a strategy by name. Capacity values below one fall
// back to DefaultCapacity.
func NewStrategy(name string, capacity int) (Strategy, error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	switch name {
	case StrategyLRU, "":
		return NewLRU(capacity), nil
	case StrategyLFU:
		return NewLFU(capacity), nil
	case StrategyNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// LRU evicts the least recently used entry once capacity is reached.
// The backing linked hash map keeps entries in recency order: a Get
// reinserts the key at the back, so the front is always the coldest entry.
type LRU struct {
	capacity  int
	entries   *linkedhashmap.Map
	evictions uint64
}

// NewLRU creates an LRU strategy bounded to capacity entries.
func NewLRU(capacity int) *LRU {
	return &LRU{capacity: capacity, entries: linkedhashmap.New()}
}

// Get returns the cached value and refreshes its recency.
func (c *LRU) Get(key string) (any, bool) {
	value, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	c.entries.Remove(key)
	c.entries.Put(key, value)
	return value, true
}

// Put inserts or refreshes an entry, evicting the coldest one if full.
func (c *LRU) Put(key string, value any) {
	if _, ok := c.entries.Get(key); ok {
		c.entries.Remove(key)
	} else if c.entries.Size() >= c.capacity {
		it := c.entries.Iterator()
		if it.First() {
			c.entries.Remove(it.Key())
			c.evictions++
		}
	}
	c.entries.Put(key, value)
}

// Len returns the current number of entries.
func (c *LRU) Len() int { return c.entries.Size() }

// Evictions returns the number of entries evicted so far.
func (c *LRU) Evictions() uint64 { return c.evictions }

// Clear removes all entries.
func (c *LRU) Clear() { c.entries.Clear() }

// LFU evicts the least frequently used entry once capacity is reached.
// Eviction scans for the minimum use count; with the small capacities used
// here that beats maintaining a frequency heap.
type LFU struct {
	capacity  int
	entries   map[string]*lfuEntry
	evictions uint64
}

type lfuEntry struct {
	value any
	uses  uint64
}

// NewLFU creates an LFU strategy bounded to capacity entries.
func NewLFU(capacity int) *LFU {
	return &LFU{capacity: capacity, entries: make(map[string]*lfuEntry)}
}

// Get returns the cached value and bumps its use count.
func (c *LFU) Get(key string) (any, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry.uses++
	return entry.value, true
}

// Put inserts or refreshes an entry, evicting the least used one if full.
func (c *LFU) Put(key string, value any) {
	if entry, ok := c.entries[key]; ok {
		entry.value = value
		entry.uses++
		return
	}

	if len(c.entries) >= c.capacity {
		var coldKey string
		var coldUses uint64
		first := true
		for key, entry := range c.entries {
			if first || entry.uses < coldUses {
				coldKey = key
				coldUses = entry.uses
				first = false
			}
		}
		delete(c.entries, coldKey)
		c.evictions++
	}

	c.entries[key] = &lfuEntry{value: value}
}

// Len returns the current number of entries.
func (c *LFU) Len() int { return len(c.entries) }

// Evictions returns the number of entries evicted so far.
func (c *LFU) Evictions() uint64 { return c.evictions }

// Clear removes all entries.
func (c *LFU) Clear() { c.entries = make(map[string]*lfuEntry) }

// None is the disabled strategy: it stores nothing.
type None struct{}

// Get always misses.
func (None) Get(string) (any, bool) { return nil, false }

// Put discards the value.
func (None) Put(string, any) {}

// Len is always zero.
func (None) Len() int { return 0 }

// Evictions is always zero.
func (None) Evictions() uint64 { return 0 }

// Clear does nothing.
func (None) Clear() {}
