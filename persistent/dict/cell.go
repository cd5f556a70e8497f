package dict

/*
Remarks:
--------

- A version of a dictionary is a handle to a cell. A cell is the mutable slot behind
  the handle: it is either the owner of the family's table or an edit relative to
  a newer cell. Cells are rewritten in place by the resolver only, and never in a way
  that changes the mapping they denote.

- Edges of the family graph always point towards the owner. Rotating ownership to a
  cell re-roots the graph at this cell, flipping every edge on the path.

- The zero Dict (nil cell) is the empty dictionary and never takes part in a family.

*/

import (
	"fmt"

	"github.com/npillmayer/pdict/internal/invariants"
	"github.com/npillmayer/pdict/maybe"
	"golang.org/x/exp/constraints"
)

type kind uint8

const (
	owner    kind = iota // holds the table
	inserted             // this.Add(key, x) == newer; value is this' binding of key, maybe absent
	removed              // this.Remove(key) == newer; value is the removed binding
)

func (k kind) String() string {
	switch k {
	case owner:
		return "owner"
	case inserted:
		return "inserted"
	case removed:
		return "removed"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

type cell[K constraints.Ordered, V any] struct {
	kind  kind
	table *table[K, V]   // kind == owner
	key   K              // kind != owner
	value maybe.Maybe[V] // kind != owner: binding of key in this cell's mapping
	newer *cell[K, V]    // kind != owner
}

func newOwner[K constraints.Ordered, V any](t *table[K, V]) *cell[K, V] {
	assertThat(t.owner == nil, "fresh owner for a table already owned")
	c := &cell[K, V]{kind: owner, table: t}
	t.owner = c
	return c
}

func (c *cell[K, V]) String() string {
	switch c.kind {
	case owner:
		return fmt.Sprintf("owner(#%d)", c.table.size())
	case inserted:
		if v, ok := c.value.Get(); ok {
			return fmt.Sprintf("inserted(%v, was %v)", c.key, v)
		}
		return fmt.Sprintf("inserted(%v, was absent)", c.key)
	}
	v, _ := c.value.Get()
	return fmt.Sprintf("removed(%v, was %v)", c.key, v)
}

// becomeOwner turns c into the owner of t, taking t over from cell from.
func (c *cell[K, V]) becomeOwner(t *table[K, V], from *cell[K, V]) {
	t.transfer(from, c)
	c.kind, c.table = owner, t
	c.newer = nil
	c.value = maybe.Nothing[V]()
}

// becomeEdit turns c, which must be an owner having lost its table already,
// into an edit node relative to newer.
func (c *cell[K, V]) becomeEdit(k kind, key K, value maybe.Maybe[V], newer *cell[K, V]) {
	assertThat(k != owner, "cell cannot become an edit of kind owner")
	assertThat(newer != nil && newer != c, "edit node must refer to another cell")
	assertThat(c.table == nil || c.table.owner != c, "cell still owns its table")
	c.kind, c.key, c.value, c.newer = k, key, value, newer
	c.table = nil
}

// --- Resolver --------------------------------------------------------------

// resolve makes c the owner of its family's table and returns the table.
// Owners resolve to themselves; otherwise the table is pulled backwards along
// the chain of edits from the current owner to c.
func (c *cell[K, V]) resolve() *table[K, V] {
	if c.kind == owner {
		return c.table
	}
	var path editPath[K, V]
	for n := c; n.kind != owner; n = n.newer {
		path = append(path, n)
	}
	tracer().Debugf("resolve: %d edit(s) between cell and owner", len(path))
	path.foldR(func(e *cell[K, V]) {
		e.rotate()
	})
	assertThat(c.kind == owner, "resolve did not make cell the owner")
	if invariants.Enabled {
		checkOwner(c)
	}
	return c.table
}

// rotate moves table ownership from c.newer, which must be the owner, to c.
// The table is patched in place to reflect c's mapping, and the former owner
// becomes the mirror edit relative to c.
func (c *cell[K, V]) rotate() {
	o := c.newer
	assertThat(o.kind == owner, "rotation requires the newer cell to be the owner")
	t := o.table
	cur := t.lookup(c.key) // o's binding of key
	switch c.kind {
	case inserted:
		assertThat(cur.IsJust(), "newer cell of an insertion lacks key %v", c.key)
	case removed:
		assertThat(cur.IsNothing(), "newer cell of a removal still has key %v", c.key)
		assertThat(c.value.IsJust(), "removal of %v did not retain the removed value", c.key)
	}
	key, value := c.key, c.value
	t.restore(key, value) // now t reflects c
	c.becomeOwner(t, o)
	if value.IsNothing() {
		o.becomeEdit(removed, key, cur, c) // o.Remove(key) == c
	} else {
		o.becomeEdit(inserted, key, cur, c) // o.Add(key, value) == c
	}
	t.rotations++
	tracer().Debugf("rotate: %s  ⇐  %s", c, o)
}

// add resolves c and performs an insertion: the table is updated, a new owner is
// minted for it, and c becomes an insertion relative to the new owner.
func (c *cell[K, V]) add(key K, value V) *cell[K, V] {
	t := c.resolve()
	prev := t.lookup(key)
	t.put(key, value)
	t.edits++
	n := &cell[K, V]{kind: owner, table: t}
	t.transfer(c, n)
	c.becomeEdit(inserted, key, prev, n)
	if invariants.Enabled {
		checkOwner(n)
	}
	return n
}

// remove resolves c and performs a removal. If key is not bound, c itself is returned.
func (c *cell[K, V]) remove(key K) *cell[K, V] {
	t := c.resolve()
	prev := t.lookup(key)
	if prev.IsNothing() {
		return c
	}
	t.remove(key)
	t.edits++
	n := &cell[K, V]{kind: owner, table: t}
	t.transfer(c, n)
	c.becomeEdit(removed, key, prev, n)
	if invariants.Enabled {
		checkOwner(n)
	}
	return n
}

// findOwner follows the chain of edits from c to the owner, without rotating.
// It returns the owner, the number of edits in between and the size of c's mapping
// relative to the owner's.
func (c *cell[K, V]) findOwner() (*cell[K, V], int, int) {
	d, delta := 0, 0
	n := c
	for n.kind != owner {
		delta += n.sizeDelta()
		n = n.newer
		d++
	}
	return n, d, delta
}

// sizeDelta is the size of an edit's mapping minus the size of its newer cell's mapping.
// The newer cell of an insertion binds the key, the newer cell of a removal does not.
func (c *cell[K, V]) sizeDelta() int {
	delta := 0
	if c.kind == inserted {
		delta--
	}
	if c.value.IsJust() {
		delta++
	}
	return delta
}

// --- Path ------------------------------------------------------------------

// editPath is a list of edit cells, starting at the cell to resolve and ending at
// the edit adjacent to the owner.
type editPath[K constraints.Ordered, V any] []*cell[K, V]

// foldR applies f to the cells of path, starting from the right, i.e. from the cell
// adjacent to the owner.
func (path editPath[K, V]) foldR(f func(*cell[K, V])) {
	for i := len(path) - 1; i >= 0; i-- {
		f(path[i])
	}
}
