/*
Package dict implements a persistent dictionary, i.e. a key/value map where every
modification produces a new version while all previous versions remain valid and
unchanged.

    v1 := dict.Empty[string, int]().Add("a", 1)
    v2 := v1.Add("b", 2)
    v3 := v2.Remove("a")
    v1.Keys()   // [a]
    v3.Keys()   // [b]

Rotating Ownership

Other than structural-sharing trees, versions of a dict share a single mutable
hash table. The version which holds the table is called the owner. Every other
version is represented as a single reversible edit (one key and at most one value)
relative to another version of the same family. Querying a version which is not
the owner pulls the table backwards along the chain of edits, reversing each edit
on the way; afterwards the queried version is the owner. Accessing the most recently
touched version therefore is as fast as accessing a Go map, and sweeping across
versions costs amortized O(1) per version. Alternating between two versions at edit
distance d costs O(d) per switch.

Touch resolves a version explicitly. Clients querying an old version repeatedly
may call it once up front.

Concurrency

Queries mutate the internal representation of a family, even if they leave every
version's mapping untouched. Versions of one family must not be used concurrently.
Package guarded wraps a family with a mutex for clients which need concurrent
access.

Invariants

Build with tag 'invariants' to check the representation after every operation.
Verify checks a set of versions on demand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dict

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.dict'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.dict")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dict: "+msg, msgargs...)
		panic(msg)
	}
}
