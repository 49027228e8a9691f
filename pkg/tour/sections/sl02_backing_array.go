package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(BackingArrays)
}

// BackingArrays shows byte-slice views sharing one backing array.
var BackingArrays = tour.SectionDef{
	ID:          "SL02",
	Name:        "slices.backing",
	Topic:       "slices",
	Title:       "Slices share a backing array",
	Description: "Byte-slice views observe writes to their shared backing array.",
	Rationale: "A slice header is a pointer, a length, and a capacity. Subslices " +
		"point into the same array, so a write through any of them is visible " +
		"through all, until an append outgrows the capacity and reallocates.",
	Contrast: "Mutable storage with live shared views is precisely what a " +
		"borrow checker forbids; Go allows it and leaves the coordination to " +
		"the author.",
	KeyExample: "head := b[:5]\nb[0] = 'H' // head sees it",
	Run:        runBackingArrays,
}

func runBackingArrays(t *tour.Transcript) {
	t.Headingf("Example: One backing array, many views")

	// Fixed capacity keeps the narrated len/cap values stable.
	b := make([]byte, 0, 16)
	b = append(b, "hello world"...)
	t.Stepf("Created byte slice: %q (len=%d cap=%d)", b, len(b), cap(b))

	head := b[:5]
	t.Stepf("Took a view head = b[:5]: %q", head)

	b[0] = 'H'
	t.Stepf("Wrote b[0] = 'H'; the view sees it: %q", head)
	t.Notef("head and b share one backing array; a write through either is visible through both")
	t.Blank()

	grown := append(b, '!')
	t.Stepf("Appended within capacity: %q (len=%d cap=%d)", grown, len(grown), cap(grown))
	t.Notef("append reused the backing array because capacity allowed it")
	t.Notef("Once an append outgrows the capacity, it reallocates and the views part ways")
}
