// Package cache provides a thread-safe memoizing cache with FIFO eviction.
package cache

import "sync"

// Memo caches the results of a pure function keyed by its input.
// Lookups of resident entries are lock-free; a missing entry is computed
// once per residency even when many goroutines ask for it at the same time.
// Failed computations are not cached.
type Memo[K comparable, V any] struct {
	entries sync.Map   // map[K]*entry[V]
	orderMu sync.Mutex // Protects order and size
	order   []K        // FIFO order for eviction
	size    int
	maxSize int // <= 0 means unbounded
}

type entry[V any] struct {
	once  sync.Once
	value V
	err   error
}

func (e *entry[V]) fill(compute func() (V, error)) bool {
	filled := false
	e.once.Do(func() {
		filled = true
		e.value, e.err = compute()
	})
	return filled
}

// New creates a Memo holding at most maxSize entries.
// A maxSize <= 0 disables eviction.
func New[K comparable, V any](maxSize int) *Memo[K, V] {
	return &Memo[K, V]{maxSize: maxSize}
}

// Get returns the cached value for key, calling compute to build it when
// it is not resident. The boolean reports whether the value came from the
// cache without calling compute.
func (m *Memo[K, V]) Get(key K, compute func() (V, error)) (V, bool, error) {
	// Fast path: lock-free lookup
	if e, ok := m.entries.Load(key); ok {
		ent := e.(*entry[V])
		hit := !ent.fill(compute)
		if ent.err != nil {
			m.entries.CompareAndDelete(key, ent)
		}
		return ent.value, hit, ent.err
	}

	fresh := &entry[V]{}
	e, loaded := m.entries.LoadOrStore(key, fresh)
	ent := e.(*entry[V])
	hit := !ent.fill(compute)
	if ent.err != nil {
		m.entries.CompareAndDelete(key, ent)
		return ent.value, false, ent.err
	}
	if !loaded {
		m.track(key)
	}
	return ent.value, hit, nil
}

// track records a newly stored key and evicts the oldest entries beyond
// the size bound.
func (m *Memo[K, V]) track(key K) {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	m.order = append(m.order, key)
	m.size++
	for m.maxSize > 0 && m.size > m.maxSize && len(m.order) > 0 {
		oldest := m.order[0]
		m.order = m.order[1:]
		m.entries.Delete(oldest)
		m.size--
	}
}

// Len returns the approximate number of cached entries.
func (m *Memo[K, V]) Len() int {
	m.orderMu.Lock()
	n := m.size
	m.orderMu.Unlock()
	return n
}

// Clear removes all cached entries.
func (m *Memo[K, V]) Clear() {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()
	for _, k := range m.order {
		m.entries.Delete(k)
	}
	m.order = m.order[:0]
	m.size = 0
}
