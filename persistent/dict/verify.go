package dict

import (
	"fmt"

	"github.com/npillmayer/pdict/maybe"
	"golang.org/x/exp/constraints"
)

// Verify checks the internal representation of a set of versions. It returns an error
// describing the first violation found, or nil. Verify does not rotate any table.
//
// A violation always indicates a defect of this package, never a usage error. Verify
// is meant for tests and diagnostics; it is O(d) for every version at distance d from
// its owner.
func Verify[K constraints.Ordered, V any](versions ...Dict[K, V]) error {
	owners := make(map[*table[K, V]]*cell[K, V])
	for i, d := range versions {
		if d.c == nil {
			continue
		}
		path, err := chainOf(d.c)
		if err != nil {
			return fmt.Errorf("version #%d: %w", i, err)
		}
		o := path[len(path)-1]
		if other, ok := owners[o.table]; ok && other != o {
			return fmt.Errorf("version #%d: two owners for one table", i)
		}
		owners[o.table] = o
		if err := verifyEdits(path); err != nil {
			return fmt.Errorf("version #%d: %w", i, err)
		}
	}
	for _, o := range owners {
		if err := verifyTable(o); err != nil {
			return err
		}
	}
	return nil
}

// chainOf returns the cells from c up to and including the owner.
func chainOf[K constraints.Ordered, V any](c *cell[K, V]) ([]*cell[K, V], error) {
	var path []*cell[K, V]
	seen := make(map[*cell[K, V]]bool)
	for n := c; ; n = n.newer {
		if seen[n] {
			return nil, fmt.Errorf("cycle in edit chain at %s", n)
		}
		seen[n] = true
		path = append(path, n)
		switch n.kind {
		case owner:
			if n.table == nil {
				return nil, fmt.Errorf("owner without table")
			}
			if n.newer != nil {
				return nil, fmt.Errorf("owner refers to a newer cell")
			}
			if n.table.owner != n {
				return nil, fmt.Errorf("owner %s is not recorded as owner of its table", n)
			}
			return path, nil
		case inserted, removed:
			if n.table != nil {
				return nil, fmt.Errorf("edit %s holds a table", n)
			}
			if n.newer == nil {
				return nil, fmt.Errorf("edit %s without newer cell", n)
			}
		default:
			return nil, fmt.Errorf("cell of unknown %s", n.kind)
		}
	}
}

// verifyEdits replays a chain backwards from the owner and checks that every edit
// is consistent with the mapping of its newer cell.
func verifyEdits[K constraints.Ordered, V any](path []*cell[K, V]) error {
	t := path[len(path)-1].table
	overlay := make(map[K]maybe.Maybe[V]) // differences to t of the cell under inspection
	binds := func(key K) bool {
		if m, ok := overlay[key]; ok {
			return m.IsJust()
		}
		return t.containsKey(key)
	}
	for i := len(path) - 2; i >= 0; i-- {
		e := path[i]
		switch e.kind {
		case inserted:
			if !binds(e.key) {
				return fmt.Errorf("insertion %s: newer cell does not bind key", e)
			}
		case removed:
			if binds(e.key) {
				return fmt.Errorf("removal %s: newer cell still binds key", e)
			}
			if e.value.IsNothing() {
				return fmt.Errorf("removal of %v without removed value", e.key)
			}
		}
		overlay[e.key] = e.value
	}
	return nil
}

// verifyTable checks the owner back-pointer and the key cache of an owner's table.
func verifyTable[K constraints.Ordered, V any](o *cell[K, V]) error {
	t := o.table
	if t.owner != o {
		return fmt.Errorf("table owned by %s, expected %s", t.owner, o)
	}
	if t.sorted == nil {
		return nil
	}
	if len(t.sorted) != len(t.entries) {
		return fmt.Errorf("key cache has %d keys, table has %d entries", len(t.sorted), len(t.entries))
	}
	for i, k := range t.sorted {
		if i > 0 && !(t.sorted[i-1] < k) {
			return fmt.Errorf("key cache not strictly ascending at %v", k)
		}
		if !t.containsKey(k) {
			return fmt.Errorf("key cache contains unbound key %v", k)
		}
	}
	return nil
}

// checkOwner panics if the table of owner o is inconsistent. Called after every
// mutation if built with the 'invariants' tag.
func checkOwner[K constraints.Ordered, V any](o *cell[K, V]) {
	assertThat(o.kind == owner, "cell %s is not an owner", o)
	if err := verifyTable(o); err != nil {
		panic(fmt.Sprintf("dict: %v", err))
	}
}
