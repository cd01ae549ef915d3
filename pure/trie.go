package pure

import (
	"sync"
	"sync/atomic"
)

// Key is a pre-folded trie key: any comparable value. Inputs identified by
// fmt.Stringer are folded to fixed-width hash words before they reach the
// trie (see purefn), so the table never retains long key strings.
type Key = any

// Trie is a bounded memo table over composite keys. Entries live in one of
// two generations; when the live generation reaches maxSize, writes rotate
// to the other one, retiring it wholesale. Lookups consult both, so retired
// entries keep serving hits until the next rotation overwrites them.
type Trie[O any] struct {
	tables  [2]*sync.Map
	live    uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTrie returns a Trie bounded at maxSize entries per generation.
// Panics if maxSize is zero.
func NewTrie[O any](maxSize uint32) Trie[O] {
	if maxSize == 0 {
		panic("pure: trie maxSize must be greater than 0")
	}
	return Trie[O]{
		tables:  [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

// Load returns the value stored under keys, consulting the live generation
// first and falling back to the retired one. Panics on empty keys.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	live := t.live
	m, last := t.descend(t.tables[live], keys)
	v, ok := m.Load(last)
	if !ok {
		m, last = t.descend(t.tables[1-live], keys)
		if v, ok = m.Load(last); !ok {
			var zero O
			return zero, false
		}
	}
	return v.(O), true
}

// Store writes value under keys into the live generation, rotating
// generations first if the live one is full. Panics on empty keys.
func (t *Trie[O]) Store(keys []Key, value O) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		t.live = 1 - t.live
		t.tables[t.live] = &sync.Map{}
	}
	m, last := t.descend(t.tables[t.live], keys)
	m.Store(last, value)
	t.size.Add(1)
}

// descend walks all but the last key, materializing intermediate levels,
// and returns the leaf map together with the final key.
func (t *Trie[O]) descend(m *sync.Map, keys []Key) (*sync.Map, Key) {
	if len(keys) == 0 {
		panic("pure: trie keys must not be empty")
	}
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			level := &sync.Map{}
			m.Store(k, level)
			v = level
		}
		m = v.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}
