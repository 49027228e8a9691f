// Package sections contains all memtour demonstration sections.
// Import this package to register the sections with the tour registry:
//
//	import _ "github.com/groundwork-labs/memtour/pkg/tour/sections"
//
// Sections by topic:
//
// Values (copy semantics):
//   - VC01: Assignment - assignment copies the value, both bindings stay usable
//   - VC02: Functions - arguments are passed by value
//   - VC03: Returns - returning copies the value out
//
// Pointers (shared access):
//   - PT01: Read - reading a variable through a pointer
//   - PT02: Write - mutating a variable through a pointer
//   - PT03: Aliasing - many pointers to one variable
//
// Slices (views):
//   - SL01: Strings - string slices are views over immutable bytes
//   - SL02: Backing - byte-slice views share a backing array
//
// Practical:
//   - PR01: First Word - a view-returning helper and the mutation hazard
//
// Summary:
//   - SU01: Rules - the closing recap
package sections

// All sections are registered via init() functions in their respective
// files. This file exists for package documentation and so the package can
// be imported for its side effects.
