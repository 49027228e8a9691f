package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(StringSlices)
}

// StringSlices shows that slicing a string creates views, not copies.
var StringSlices = tour.SectionDef{
	ID:          "SL01",
	Name:        "slices.strings",
	Topic:       "slices",
	Title:       "String slices",
	Description: "Slicing a string yields views over the same immutable bytes.",
	Rationale: "s[0:5] builds a new header pointing into s's bytes. No bytes " +
		"move, nothing is owned by the view, and because string bytes are " +
		"immutable the views can never go stale.",
	Contrast: "A string slice is the one place Go gives the full borrow story " +
		"for free: shared, read-only views that the GC keeps valid.",
	KeyExample: "s := \"hello world\"\nhello, world := s[0:5], s[6:11]",
	Run:        runStringSlices,
}

func runStringSlices(t *tour.Transcript) {
	t.Headingf("Example: String slices")

	s := "hello world"
	t.Stepf("Created string s: %q", s)

	hello := s[0:5]
	world := s[6:11]
	t.Stepf("Created slices: %q and %q", hello, world)

	t.Notef("Each slice is a view onto a portion of s's bytes; nothing was copied")
	t.Notef("Views own no storage; the garbage collector keeps the backing bytes alive for them")
}
