package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Memory is a size-bounded LRU store with per-entry expiry
type Memory struct {
	mu         sync.Mutex
	ll         *list.List
	items      map[string]*list.Element
	maxBytes   int64
	bytes      int64
	defaultTTL time.Duration
	stats      Stats
	now        func() time.Time
}

type item struct {
	key     string
	entry   *Entry
	expires time.Time
	size    int64
}

// NewMemory creates a store holding at most maxSizeMB of bodies.
// Zero means unbounded.
func NewMemory(maxSizeMB int64, defaultTTL time.Duration) *Memory {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &Memory{
		ll:         list.New(),
		items:      make(map[string]*list.Element),
		maxBytes:   maxSizeMB * 1024 * 1024,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key string) (*Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		m.stats.Misses++
		return nil, false
	}

	it := el.Value.(*item)
	if m.now().After(it.expires) {
		m.remove(el)
		m.stats.Misses++
		return nil, false
	}

	m.ll.MoveToFront(el)
	m.stats.Hits++
	return it.entry, true
}

func (m *Memory) Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) {
	if entry == nil {
		return
	}
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	size := int64(len(key) + len(entry.Body))
	if m.maxBytes > 0 && size > m.maxBytes {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.remove(el)
	}

	el := m.ll.PushFront(&item{
		key:     key,
		entry:   entry,
		expires: m.now().Add(ttl),
		size:    size,
	})
	m.items[key] = el
	m.bytes += size

	for m.maxBytes > 0 && m.bytes > m.maxBytes {
		oldest := m.ll.Back()
		if oldest == nil {
			break
		}
		m.remove(oldest)
		m.stats.Evictions++
	}
}

// Stats returns cache statistics
func (m *Memory) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.stats
	stats.Entries = len(m.items)
	stats.Bytes = m.bytes
	stats.MaxBytes = m.maxBytes
	return stats
}

// remove must be called with mu held
func (m *Memory) remove(el *list.Element) {
	it := m.ll.Remove(el).(*item)
	delete(m.items, it.key)
	m.bytes -= it.size
}
