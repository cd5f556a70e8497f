package dict

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pdict/maybe"
	"golang.org/x/exp/constraints"
)

// Dict is a version of a persistent dictionary. The zero value is the empty dictionary
// and is ready to use:
//
//     var d dict.Dict[string, int]
//     d = d.Add("answer", 42)
//
// A Dict is a small handle and should be passed by value. Its mapping never changes
// after creation; only its internal representation does (see package doc).
type Dict[K constraints.Ordered, V any] struct {
	c *cell[K, V]
}

// Empty returns the empty dictionary. It is equivalent to the zero value of Dict.
func Empty[K constraints.Ordered, V any]() Dict[K, V] {
	return Dict[K, V]{}
}

// FromMap creates a dictionary holding the entries of m. m is copied.
func FromMap[K constraints.Ordered, V any](m map[K]V) Dict[K, V] {
	if len(m) == 0 {
		return Dict[K, V]{}
	}
	t := newTable[K, V](len(m))
	for k, v := range m {
		t.entries[k] = v
	}
	return Dict[K, V]{c: newOwner(t)}
}

// Stats holds counters for a family of versions, i.e. all the versions derived
// from one another.
type Stats struct {
	Size      int    // size of the version's mapping
	TableSize int    // size of the table, i.e. of the owner's mapping
	Edits     uint64 // number of Add/Remove operations which produced a new version
	Rotations uint64 // number of edits reversed while moving the table between versions
	Distance  int    // edits between this version and the owner
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for a dictionary without entries.
func (d Dict[K, V]) IsEmpty() bool {
	return d.Size() == 0
}

// Get returns the value associated with key. If key is not bound, the zero value for
// V will be returned, together with found=false.
func (d Dict[K, V]) Get(key K) (value V, found bool) {
	if d.c == nil {
		return
	}
	return d.c.resolve().get(key)
}

// Lookup is like Get, but returns the result as a Maybe.
func (d Dict[K, V]) Lookup(key K) maybe.Maybe[V] {
	v, found := d.Get(key)
	return maybe.Of(v, found)
}

// ContainsKey checks if key is bound.
func (d Dict[K, V]) ContainsKey(key K) bool {
	if d.c == nil {
		return false
	}
	return d.c.resolve().containsKey(key)
}

// Size returns the number of entries.
func (d Dict[K, V]) Size() int {
	if d.c == nil {
		return 0
	}
	return d.c.resolve().size()
}

// Keys returns the keys of d in ascending order. The slice belongs to the caller.
func (d Dict[K, V]) Keys() []K {
	if d.c == nil {
		return []K{}
	}
	sorted := d.c.resolve().sortedKeys()
	keys := make([]K, len(sorted))
	copy(keys, sorted)
	return keys
}

// Add returns a dictionary with key bound to value. If key is already bound in d, its
// value is replaced in the new version. d itself stays unchanged.
func (d Dict[K, V]) Add(key K, value V) Dict[K, V] {
	if d.c == nil {
		t := newTable[K, V](1)
		t.put(key, value)
		t.edits++
		return Dict[K, V]{c: newOwner(t)}
	}
	return Dict[K, V]{c: d.c.add(key, value)}
}

// Remove returns a dictionary without key. If key is not bound in d, d is returned.
func (d Dict[K, V]) Remove(key K) Dict[K, V] {
	if d.c == nil {
		return d
	}
	return Dict[K, V]{c: d.c.remove(key)}
}

// Touch makes d the owner of its family's table, so that subsequent queries on d
// are O(1). The mapping of d is not affected. Touch returns d.
func (d Dict[K, V]) Touch() Dict[K, V] {
	if d.c != nil {
		d.c.resolve()
	}
	return d
}

// Each calls f for every entry of d, in ascending order of keys, until f returns false.
// f may query other versions of d's family.
func (d Dict[K, V]) Each(f func(key K, value V) bool) {
	for _, k := range d.Keys() {
		v, ok := d.Get(k)
		assertThat(ok, "key %v vanished during iteration", k)
		if !f(k, v) {
			return
		}
	}
}

// Equal checks if d and other have the same mapping, comparing values with eq.
func (d Dict[K, V]) Equal(other Dict[K, V], eq func(V, V) bool) bool {
	if d.c == other.c {
		return true
	}
	keys := d.Keys()
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i], _ = d.Get(k)
	}
	if other.Size() != len(keys) {
		return false
	}
	for i, k := range keys { // d and other may be of the same family: query d no more
		v, ok := other.Get(k)
		if !ok || !eq(values[i], v) {
			return false
		}
	}
	return true
}

// Stats returns the counters of d's family. Stats does not rotate the table.
func (d Dict[K, V]) Stats() Stats {
	if d.c == nil {
		return Stats{}
	}
	o, dist, delta := d.c.findOwner()
	return Stats{
		Size:      o.table.size() + delta,
		TableSize: o.table.size(),
		Edits:     o.table.edits,
		Rotations: o.table.rotations,
		Distance:  dist,
	}
}

func (d Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	d.Each(func(k K, v V) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v:%v", k, v))
		return true
	})
	b.WriteByte('}')
	return b.String()
}
