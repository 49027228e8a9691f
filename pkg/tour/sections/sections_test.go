package sections

import (
	"strings"
	"testing"

	"github.com/groundwork-labs/memtour/pkg/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allIDs = []string{"VC01", "VC02", "VC03", "PT01", "PT02", "PT03", "SL01", "SL02", "PR01", "SU01"}

func TestAllSectionsRegistered(t *testing.T) {
	assert.Equal(t, len(allIDs), tour.Count())

	for _, id := range allIDs {
		s, ok := tour.ByID(id)
		require.True(t, ok, "section %s should be registered", id)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Topic)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
		assert.NotNil(t, s.Run, "section %s should have a run function", id)
	}
}

func TestCanonicalOrder(t *testing.T) {
	all := tour.All()
	require.Len(t, all, len(allIDs))

	ids := make([]string, 0, len(all))
	for _, s := range all {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, allIDs, ids)
}

func TestSectionsAreDeterministic(t *testing.T) {
	for _, s := range tour.All() {
		t.Run(s.ID, func(t *testing.T) {
			first := tour.NewTranscript()
			s.Run(first)
			second := tour.NewTranscript()
			s.Run(second)

			require.NotZero(t, first.Len())
			assert.Equal(t, first.Lines(), second.Lines())
		})
	}
}

// transcriptText flattens a section's transcript for content assertions.
func transcriptText(t *testing.T, id string) string {
	t.Helper()
	s, ok := tour.ByID(id)
	require.True(t, ok)

	tr := tour.NewTranscript()
	s.Run(tr)

	var sb strings.Builder
	for _, line := range tr.Lines() {
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestAssignmentCopies(t *testing.T) {
	text := transcriptText(t, "VC01")
	assert.Contains(t, text, `Created s1: "hello"`)
	assert.Contains(t, text, `s1="hello" s2="hello"`)
}

func TestFunctionArguments(t *testing.T) {
	text := transcriptText(t, "VC02")
	assert.Contains(t, text, `Function received its own copy of: "hello world"`)
	assert.Contains(t, text, "Function received a copy of: 5")
	assert.Contains(t, text, "x is still usable after the call: 5")
}

func TestReturningValues(t *testing.T) {
	text := transcriptText(t, "VC03")
	assert.Contains(t, text, `Function created a string: "yours"`)
	assert.Contains(t, text, `Passed s2 through and received s3: "hello"`)
	assert.Contains(t, text, `s2 is still usable: "hello"`)
}

func TestPointerRead(t *testing.T) {
	text := transcriptText(t, "PT01")
	assert.Contains(t, text, `Length of "hello" is 5 bytes`)
}

func TestPointerWrite(t *testing.T) {
	text := transcriptText(t, "PT02")
	assert.Contains(t, text, `s is now: "hello, world"`)
}

func TestPointerAliasing(t *testing.T) {
	text := transcriptText(t, "PT03")
	assert.Contains(t, text, `reading through r2 gives: "updated"`)
	assert.Contains(t, text, `Reading s directly gives: "updated"`)
}

func TestStringSlices(t *testing.T) {
	text := transcriptText(t, "SL01")
	assert.Contains(t, text, `Created slices: "hello" and "world"`)
}

func TestBackingArrays(t *testing.T) {
	text := transcriptText(t, "SL02")
	assert.Contains(t, text, `"hello world" (len=11 cap=16)`)
	assert.Contains(t, text, `the view sees it: "Hello"`)
	assert.Contains(t, text, `"Hello world!" (len=12 cap=16)`)
}

func TestFirstWordSection(t *testing.T) {
	text := transcriptText(t, "PR01")
	assert.Contains(t, text, `First word: "The"`)
	assert.Contains(t, text, `First-word view: "Hello"`)
	assert.Contains(t, text, `the view now reads: "Jello"`)
	assert.Contains(t, text, `Copied the view to a string: "Jello"`)
}

func TestSummaryRules(t *testing.T) {
	text := transcriptText(t, "SU01")
	for _, n := range []string{"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8."} {
		assert.Contains(t, text, n)
	}
}
