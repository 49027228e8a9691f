package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(AssignmentCopies)
}

// AssignmentCopies shows that assigning a string copies the value and
// leaves both bindings usable.
var AssignmentCopies = tour.SectionDef{
	ID:          "VC01",
	Name:        "values.assignment",
	Topic:       "values",
	Title:       "Assignment copies the value",
	Description: "Assigning one variable to another copies it; both remain usable.",
	Rationale: "Go has no single-owner rule: assignment duplicates the string " +
		"header (pointer and length) and the immutable backing bytes are shared. " +
		"Neither binding is invalidated and neither is responsible for cleanup.",
	Contrast: "In an ownership-checked language the assignment would move the " +
		"value and the first binding would become unusable at compile time.",
	KeyExample: "s1 := \"hello\"\ns2 := s1 // copy; s1 still usable",
	Run:        runAssignmentCopies,
}

func runAssignmentCopies(t *tour.Transcript) {
	t.Headingf("Example 1: Assignment copies the value")

	s1 := "hello"
	t.Stepf("Created s1: %q", s1)

	s2 := s1
	t.Stepf("Assigned s1 to s2: %q", s2)
	t.Stepf("Both bindings remain usable: s1=%q s2=%q", s1, s2)

	t.Notef("Assignment copied the string header; the backing bytes are shared and immutable")
	t.Notef("Nothing was invalidated: there is no owner to transfer")
	t.Blank()

	t.Stepf("When s1 and s2 go out of scope the backing bytes become unreachable")
	t.Notef("The garbage collector reclaims unreachable memory; no binding cleans up after the value")
}
