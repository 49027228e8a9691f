package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

func init() {
	tour.Register(FirstWord)
}

// FirstWord is the practical example: a helper returning a view into its
// input, and what happens when the backing storage is mutated under it.
var FirstWord = tour.SectionDef{
	ID:          "PR01",
	Name:        "practical.firstword",
	Topic:       "practical",
	Title:       "First word",
	Description: "A view-returning helper, and the hazard of mutating under a live view.",
	Rationale: "firstWord returns s[:i], a view sharing the input's bytes. Over " +
		"a string that is always safe. Over a byte slice the same shape means a " +
		"later write to the storage silently changes what the view reads.",
	Contrast: "This exact interaction, a live view plus a mutation of its " +
		"storage, is the data-race shape ownership-checked languages reject at " +
		"compile time.",
	KeyExample: "word := firstWordBytes(data)\ndata[0] = 'J' // word now reads differently",
	Run:        runFirstWord,
}

func runFirstWord(t *tour.Transcript) {
	text := "The quick brown fox jumps over the lazy dog"
	t.Stepf("Original text: %q", text)

	word := firstWord(text)
	t.Stepf("First word: %q", word)
	t.Notef("The result is a view into text's bytes; immutable, so it can never change underneath us")
	t.Blank()

	t.Headingf("A live view over mutable storage")

	data := []byte("Hello world")
	t.Stepf("Created mutable bytes: %q", data)

	view := firstWordBytes(data)
	t.Stepf("First-word view: %q", view)

	data[0] = 'J'
	t.Stepf("Mutated data[0]; the view now reads: %q", view)
	t.Notef("The view's meaning changed without the view being touched")
	t.Notef("The fix is discipline: stop mutating while views are live, or copy the bytes out")

	copied := string(view)
	t.Stepf("Copied the view to a string: %q", copied)
	t.Notef("The copy has its own bytes; later writes to data cannot reach it")
}
