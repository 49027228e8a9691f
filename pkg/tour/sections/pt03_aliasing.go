package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(PointerAliasing)
}

// PointerAliasing shows that any number of pointers may alias one variable.
var PointerAliasing = tour.SectionDef{
	ID:          "PT03",
	Name:        "pointers.aliasing",
	Topic:       "pointers",
	Title:       "Aliasing",
	Description: "Many pointers may point at one variable; writes through one are visible through all.",
	Rationale: "Go places no compile-time limit on aliases. Within a single " +
		"goroutine that is safe and ordinary; across goroutines the race " +
		"detector and synchronization take over the job a borrow checker does " +
		"at compile time.",
	Contrast: "One mutable reference at a time, and never mixed with shared " +
		"references, is exactly the restriction Go chose not to enforce.",
	KeyExample: "r1, r2 := &s, &s\n*r1 = \"updated\" // *r2 sees it",
	Run:        runPointerAliasing,
}

func runPointerAliasing(t *tour.Transcript) {
	t.Headingf("Example 3: Aliasing")

	s := "multiple"
	t.Stepf("Created string s: %q", s)

	r1 := &s
	r2 := &s
	t.Stepf("Created two pointers to s: r1 and r2")
	t.Notef("Both aliases are legal; there is no exclusivity rule to violate")

	*r1 = "updated"
	t.Stepf("Wrote through r1; reading through r2 gives: %q", *r2)
	t.Stepf("Reading s directly gives: %q", s)

	t.Blank()
	t.Notef("Within one goroutine, aliased writes are well defined and ordered")
	t.Notef("Across goroutines the same pattern is a data race; synchronization and the race detector stand in for compile-time exclusivity")
}
