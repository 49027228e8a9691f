package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(PointerWrite)
}

// PointerWrite shows mutating a variable through a pointer.
var PointerWrite = tour.SectionDef{
	ID:          "PT02",
	Name:        "pointers.write",
	Topic:       "pointers",
	Title:       "Writing through a pointer",
	Description: "A function can mutate the caller's variable through a pointer.",
	Rationale: "Passing &s lets the callee assign through the pointer, and the " +
		"caller observes the change. This is how Go expresses out-parameters " +
		"and in-place mutation.",
	Contrast: "Ownership-checked languages require an exclusive mutable " +
		"reference for this; in Go any pointer is a write-capable pointer.",
	KeyExample: "appendWorld(&s)\n// s == \"hello, world\"",
	Run:        runPointerWrite,
}

func runPointerWrite(t *tour.Transcript) {
	t.Headingf("Example 2: Writing through a pointer")

	s := "hello"
	t.Stepf("Created string s: %q", s)

	appendWorld(&s)
	t.Stepf("After appendWorld(&s), s is now: %q", s)

	t.Notef("The function assigned through the pointer; the caller's variable changed")
	t.Notef("Strings stay immutable: the assignment swapped s's header to new backing bytes")
}
