package dict

import (
	"github.com/npillmayer/pdict/maybe"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// table is the mutable hash table backing a family of versions. It is always used
// destructively. At any time it belongs to exactly one cell, its owner, and must
// never be reachable as the table of any other cell.
type table[K constraints.Ordered, V any] struct {
	entries   map[K]V
	sorted    []K         // cache of ascending keys, nil if stale
	owner     *cell[K, V] // back-pointer, checked on every transfer
	edits     uint64      // number of Add/Remove operations of the family
	rotations uint64      // number of ownership transfers along edit chains
}

func newTable[K constraints.Ordered, V any](capacity int) *table[K, V] {
	return &table[K, V]{entries: make(map[K]V, capacity)}
}

func (t *table[K, V]) get(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t *table[K, V]) lookup(key K) maybe.Maybe[V] {
	v, ok := t.entries[key]
	return maybe.Of(v, ok)
}

func (t *table[K, V]) containsKey(key K) bool {
	_, ok := t.entries[key]
	return ok
}

func (t *table[K, V]) size() int {
	return len(t.entries)
}

func (t *table[K, V]) put(key K, value V) {
	if _, ok := t.entries[key]; !ok {
		t.sorted = nil
	}
	t.entries[key] = value
}

func (t *table[K, V]) remove(key K) {
	if _, ok := t.entries[key]; ok {
		t.sorted = nil
		delete(t.entries, key)
	}
}

// restore binds key to the value of m, or unbinds key if m is Nothing.
func (t *table[K, V]) restore(key K, m maybe.Maybe[V]) {
	if v, ok := m.Get(); ok {
		t.put(key, v)
		return
	}
	t.remove(key)
}

// keys returns the keys in no particular order.
func (t *table[K, V]) keys() []K {
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// sortedKeys returns the keys in ascending order. The result is cached and must not
// be modified by the caller.
func (t *table[K, V]) sortedKeys() []K {
	if t.sorted == nil {
		t.sorted = t.keys()
		slices.Sort(t.sorted)
	}
	return t.sorted
}

// transfer hands the table over from one cell to another.
func (t *table[K, V]) transfer(from, to *cell[K, V]) {
	assertThat(t.owner == from, "table transfer from a cell not owning it")
	assertThat(to != nil && to != from, "table transfer to invalid cell")
	t.owner = to
}
