package jshost

import (
	"slices"

	"github.com/ruffel/procenv"
)

// Marker is the global whose presence identifies the Deno runtime.
const Marker = "Deno"

// Globals reports which host globals are defined.
type Globals interface {
	Has(name string) bool
}

// GlobalsFunc adapts a function to Globals.
type GlobalsFunc func(name string) bool

// Has calls f(name).
func (f GlobalsFunc) Has(name string) bool {
	return f(name)
}

// Select picks the host family from the globals. It only inspects Marker and has no
// other effect. Node is the fallback when the marker is absent.
func Select(g Globals) procenv.Family {
	if g != nil && g.Has(Marker) {
		return procenv.FamilyDeno
	}

	return procenv.FamilyNode
}

// userArgs extracts the user arguments from a host argument vector.
// Under Node the vector is the one wasm_exec hands to the Go runtime, which starts with
// the program path; Deno.args is already filtered. The result is never nil.
func userArgs(family procenv.Family, argv []string) []string {
	skip := 0
	if family == procenv.FamilyNode {
		skip = 1
	}

	if len(argv) <= skip {
		return []string{}
	}

	return slices.Clone(argv[skip:])
}
