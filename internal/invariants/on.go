//go:build invariants
// +build invariants

package invariants

// Enabled is true if the module has been built with the 'invariants' tag.
const Enabled = true
