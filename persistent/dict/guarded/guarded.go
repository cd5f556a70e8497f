/*
Package guarded serializes access to a family of persistent dictionaries.

Versions of a dict.Dict share a mutable table, and queries rotate it between them.
Using versions of one family from more than one goroutine therefore requires a lock
covering the whole family. A guarded.Dict carries such a lock, and every version
derived from it shares the same lock:

    d := guarded.New[string, int]()
    e := d.Add("a", 1)    // e shares d's lock
    go func() { e.Get("a") }()
    d.Size()

Wrapping two versions of the same family with two calls of Wrap yields two distinct
locks and is not safe.
*/
package guarded

import (
	"sync"

	"github.com/npillmayer/pdict/maybe"
	"github.com/npillmayer/pdict/persistent/dict"
	"golang.org/x/exp/constraints"
)

// Dict is a version of a persistent dictionary, usable from concurrent goroutines.
// Unlike dict.Dict, the zero value is not usable: create a Dict with New or Wrap.
type Dict[K constraints.Ordered, V any] struct {
	mu *sync.Mutex
	d  dict.Dict[K, V]
}

// New returns an empty dictionary with a fresh lock.
func New[K constraints.Ordered, V any]() Dict[K, V] {
	return Wrap(dict.Empty[K, V]())
}

// Wrap puts a lock around d and its future derivations. No other goroutine may hold
// versions of d's family at the time of the call.
func Wrap[K constraints.Ordered, V any](d dict.Dict[K, V]) Dict[K, V] {
	return Dict[K, V]{mu: &sync.Mutex{}, d: d}
}

// Unwrap returns the underlying version. The caller is responsible for not using it
// concurrently with the other versions of the family.
func (g Dict[K, V]) Unwrap() dict.Dict[K, V] {
	return g.d
}

func (g Dict[K, V]) Get(key K) (V, bool) {
	defer g.lock()()
	return g.d.Get(key)
}

func (g Dict[K, V]) Lookup(key K) maybe.Maybe[V] {
	defer g.lock()()
	return g.d.Lookup(key)
}

func (g Dict[K, V]) ContainsKey(key K) bool {
	defer g.lock()()
	return g.d.ContainsKey(key)
}

func (g Dict[K, V]) Size() int {
	defer g.lock()()
	return g.d.Size()
}

func (g Dict[K, V]) Keys() []K {
	defer g.lock()()
	return g.d.Keys()
}

// Add returns a new version sharing g's lock.
func (g Dict[K, V]) Add(key K, value V) Dict[K, V] {
	defer g.lock()()
	return Dict[K, V]{mu: g.mu, d: g.d.Add(key, value)}
}

// Remove returns a new version sharing g's lock.
func (g Dict[K, V]) Remove(key K) Dict[K, V] {
	defer g.lock()()
	return Dict[K, V]{mu: g.mu, d: g.d.Remove(key)}
}

func (g Dict[K, V]) Touch() Dict[K, V] {
	defer g.lock()()
	g.d.Touch()
	return g
}

// lock acquires the family's lock and returns the function releasing it.
func (g Dict[K, V]) lock() func() {
	if g.mu == nil {
		panic("guarded: Dict not created by New or Wrap")
	}
	g.mu.Lock()
	return g.mu.Unlock
}

func (g Dict[K, V]) String() string {
	defer g.lock()()
	return g.d.String()
}
