package sections

import "github.com/groundwork-labs/memtour/pkg/tour"

// consumeString receives its own copy of the string header. Whatever it
// does with the copy, the caller's binding is unaffected.
func consumeString(t *tour.Transcript, s string) {
	t.Stepf("Function received its own copy of: %q", s)
}

// copyInt receives a copy of the integer passed to it.
func copyInt(t *tour.Transcript, x int) {
	t.Stepf("Function received a copy of: %d", x)
}

// mintGreeting creates a string and returns it to the caller.
func mintGreeting(t *tour.Transcript) string {
	s := "yours"
	t.Stepf("Function created a string: %q", s)
	return s
}

// passThrough takes a string and returns it unchanged. The return copies
// the header out; the argument the caller passed is never consumed.
func passThrough(t *tour.Transcript, s string) string {
	t.Stepf("Function received: %q", s)
	return s
}

// stringLength reads a string through a pointer without copying it.
func stringLength(s *string) int {
	return len(*s)
}

// appendWorld mutates the caller's string through a pointer.
func appendWorld(s *string) {
	*s += ", world"
}

// firstWord returns a view of the first space-delimited word of s.
// The result shares s's backing bytes; nothing is copied.
func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}

// firstWordBytes is firstWord over a mutable byte slice. The returned
// slice is a live view into b's backing array.
func firstWordBytes(b []byte) []byte {
	for i, c := range b {
		if c == ' ' {
			return b[:i]
		}
	}
	return b
}
