package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(ReturningValues)
}

// ReturningValues shows that returning a value copies it to the caller.
var ReturningValues = tour.SectionDef{
	ID:          "VC03",
	Name:        "values.returns",
	Topic:       "values",
	Title:       "Returning values",
	Description: "Returning copies the value out; the argument is never consumed.",
	Rationale: "A function can hand a value to its caller by returning it. The " +
		"return copies the header out, and a value passed in and returned back " +
		"leaves the original argument as usable as before the call.",
	Contrast: "Where ownership is checked, returning is how a function gives a " +
		"value back; here it is an ordinary copy and the caller never lost anything.",
	KeyExample: "s3 := passThrough(s2)\n// s2 and s3 both usable",
	Run:        runReturningValues,
}

func runReturningValues(t *tour.Transcript) {
	t.Headingf("Example 3: Returning values")

	s1 := mintGreeting(t)
	t.Stepf("Received string from mintGreeting: %q", s1)

	s2 := "hello"
	t.Stepf("Created s2: %q", s2)

	s3 := passThrough(t, s2)
	t.Stepf("Passed s2 through and received s3: %q", s3)
	t.Stepf("s2 is still usable: %q", s2)

	t.Notef("The return copied the header out; passing s2 in consumed nothing")
	t.Notef("s1, s2, and s3 all become garbage together once unreachable")
}
