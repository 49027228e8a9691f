package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(FunctionArguments)
}

// FunctionArguments shows that arguments are passed by value.
var FunctionArguments = tour.SectionDef{
	ID:          "VC02",
	Name:        "values.functions",
	Topic:       "values",
	Title:       "Passing values to functions",
	Description: "Function arguments are copies; the caller's bindings are untouched.",
	Rationale: "Every Go argument is passed by value. A string argument copies " +
		"the header, an integer is copied outright, and in both cases the " +
		"caller can keep using its variable after the call.",
	Contrast: "In an ownership-checked language passing a heap value into a " +
		"function would transfer it, leaving the caller's binding unusable.",
	KeyExample: "s := \"hello world\"\nconsumeString(s)\n// s still usable here",
	Run:        runFunctionArguments,
}

func runFunctionArguments(t *tour.Transcript) {
	t.Headingf("Example 2: Passing values to functions")

	s := "hello world"
	t.Stepf("Created string s: %q", s)

	consumeString(t, s)
	t.Stepf("s is still usable after the call: %q", s)
	t.Notef("The function worked on its own copy of the header; the caller's binding is untouched")
	t.Blank()

	x := 5
	t.Stepf("Created integer x: %d", x)

	copyInt(t, x)
	t.Stepf("x is still usable after the call: %d", x)
	t.Notef("Arguments are always copies; for an int that is the whole value")
}
