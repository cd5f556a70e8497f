/*
Package invariants switches expensive consistency checks on or off at compile time.

Build or test with the 'invariants' tag to enable them:

    go test -tags invariants ./...

Without the tag, Enabled is a false constant and guarded code is eliminated by the compiler.
*/
package invariants
