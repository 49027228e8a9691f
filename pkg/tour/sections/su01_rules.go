package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(SummaryRules)
}

// SummaryRules is the closing recap of everything the tour demonstrated.
var SummaryRules = tour.SectionDef{
	ID:          "SU01",
	Name:        "summary.rules",
	Topic:       "summary",
	Title:       "The rules",
	Description: "The closing recap of Go's value, pointer, and slice semantics.",
	Rationale: "Each rule restates one demonstration from the tour in a single " +
		"line, so the recap can stand alone as a reference.",
	Run: runSummaryRules,
}

func runSummaryRules(t *tour.Transcript) {
	t.Stepf("1. Every value is copied when assigned or passed; there is no owner to transfer")
	t.Stepf("2. Unreachable values are reclaimed by the garbage collector, not by scope-end cleanup")
	t.Stepf("3. A pointer grants access to a variable without copying it")
	t.Stepf("4. Any number of pointers may alias one variable; exclusivity is not enforced")
	t.Stepf("5. A write through one alias is visible through every other")
	t.Stepf("6. Slices and string slices are views: a small header over storage they do not own")
	t.Stepf("7. append reuses the backing array while capacity allows, then reallocates")
	t.Stepf("8. Memory safety rests on the garbage collector, the race detector, and author discipline")
}
