// Package tour provides the section registry and runner for the memtour
// walkthrough of Go's value, pointer, and slice semantics.
//
// # Architecture
//
// The tour package follows a small, layered design:
//
//  1. Root package (pkg/tour/): section contracts, registry, transcript, runner
//  2. Sections (pkg/tour/sections/): the demonstration content itself
//
// # Section Registration
//
// Sections are automatically registered via init() functions when their
// package is imported:
//
//	import _ "github.com/groundwork-labs/memtour/pkg/tour/sections"
//
// # Section Topics
//
//   - VC (values): assignment and function-call copy semantics
//   - PT (pointers): reading, writing, and aliasing through pointers
//   - SL (slices): views into backing arrays
//   - PR (practical): the first-word example tying the pieces together
//   - SU (summary): the closing rules recap
//
// # Using the Registry
//
// Query registered sections:
//
//	sections := tour.All()
//	section, ok := tour.ByID("VC01")
//	values := tour.ByTopic("values")
//
// # Running a Tour
//
// The Runner executes sections in canonical topic order and produces a
// Report whose transcript lines are stable across runs:
//
//	runner := tour.NewRunner()
//	report, err := runner.Run(ctx, tour.All())
package tour
