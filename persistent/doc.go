/*
Package persistent is the umbrella for persistent data structures: structures where
every modification yields a new version, leaving all earlier versions valid and
unchanged.

Sub-package dict implements a persistent dictionary which does not share structure
between versions, but a single mutable hash table. Only the most recently touched
version holds the table; all other versions are single reversible edits relative to
each other. This gives hash-table speed for the common case of working on the latest
version, while undo-style access to older versions stays cheap. Sub-package
dict/guarded adds a lock for concurrent clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
