package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(PointerRead)
}

// PointerRead shows reading a variable through a pointer.
var PointerRead = tour.SectionDef{
	ID:          "PT01",
	Name:        "pointers.read",
	Topic:       "pointers",
	Title:       "Reading through a pointer",
	Description: "A pointer grants access to a variable without copying it.",
	Rationale: "Taking &s hands a function the variable itself rather than a " +
		"copy. The function can read through the pointer and the caller keeps " +
		"full use of the variable afterwards.",
	Contrast: "This is the closest Go analog to an immutable borrow, except " +
		"nothing stops the holder from writing through the pointer too.",
	KeyExample: "n := stringLength(&s1)\n// s1 still usable",
	Run:        runPointerRead,
}

func runPointerRead(t *tour.Transcript) {
	t.Headingf("Example 1: Reading through a pointer")

	s1 := "hello"
	t.Stepf("Created string s1: %q", s1)

	n := stringLength(&s1)
	t.Stepf("Length of %q is %d bytes", s1, n)

	t.Notef("stringLength received &s1: access to the variable, not a copy of it")
	t.Notef("s1 is still usable; a pointer grants access without taking anything away")
}
