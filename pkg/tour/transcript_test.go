package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_RecordsLinesInOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Headingf("Example %d", 1)
	tr.Stepf("created %q", "hello")
	tr.Notef("nothing was copied")
	tr.Blank()

	lines := tr.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, 4, tr.Len())

	assert.Equal(t, Line{Kind: LineHeading, Text: "Example 1"}, lines[0])
	assert.Equal(t, Line{Kind: LineStep, Text: `created "hello"`}, lines[1])
	assert.Equal(t, Line{Kind: LineNote, Text: "nothing was copied"}, lines[2])
	assert.Equal(t, Line{Kind: LineBlank}, lines[3])
}

func TestTranscript_Empty(t *testing.T) {
	tr := NewTranscript()
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Lines())
}
