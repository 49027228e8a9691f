package commands

import (
	"encoding/json"
	"testing"

	"github.com/groundwork-labs/memtour/pkg/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsCommand_Flags(t *testing.T) {
	cmd := NewSectionsCommand()
	assert.Equal(t, "sections [section-id]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("topic"))
	assert.NotNil(t, cmd.Flags().Lookup("verbose"))
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}

func TestSectionsCommand_List(t *testing.T) {
	out, _, err := executeCommand(t, NewSectionsCommand())
	require.NoError(t, err)

	// Markdown list, grouped by title-cased topic
	assert.Contains(t, out, "# Tour Sections")
	assert.Contains(t, out, "## Values")
	assert.Contains(t, out, "## Pointers")
	assert.Contains(t, out, "**VC01**")
	assert.Contains(t, out, "`values.assignment`")
}

func TestSectionsCommand_ListVerbose(t *testing.T) {
	out, _, err := executeCommand(t, NewSectionsCommand(), "-V")
	require.NoError(t, err)

	s, ok := tour.ByID("VC01")
	require.True(t, ok)
	assert.Contains(t, out, s.Description)
}

func TestSectionsCommand_ListText(t *testing.T) {
	out, _, err := executeCommand(t, NewSectionsCommand(), "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Tour Sections")
	assert.Contains(t, out, "VC01")
	assert.Contains(t, out, "Use 'memtour sections <section-id>' for detailed documentation")
}

func TestSectionsCommand_ListJSON(t *testing.T) {
	out, _, err := executeCommand(t, NewSectionsCommand(), "--format", "json")
	require.NoError(t, err)

	var decoded SectionsJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, tour.Count(), decoded.Count)
	// Unlike list, the sections command keeps the full documentation
	assert.NotEmpty(t, decoded.Sections[0].Rationale)
}

func TestSectionsCommand_Show(t *testing.T) {
	out, _, err := executeCommand(t, NewSectionsCommand(), "PT03")
	require.NoError(t, err)

	s, ok := tour.ByID("PT03")
	require.True(t, ok)

	assert.Contains(t, out, "# PT03 - "+s.Title)
	assert.Contains(t, out, "## What This Shows")
	assert.Contains(t, out, "## Contrast")
	assert.Contains(t, out, "```go")
}

func TestSectionsCommand_ShowJSON(t *testing.T) {
	out, _, err := executeCommand(t, NewSectionsCommand(), "--format", "json", "SL02")
	require.NoError(t, err)

	var info tour.SectionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "SL02", info.ID)
	assert.Equal(t, "slices", info.Topic)
}

func TestSectionsCommand_ShowUnknown(t *testing.T) {
	_, _, err := executeCommand(t, NewSectionsCommand(), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `section "NOPE" not found`)
}

func TestSectionsCommand_TopicFilter(t *testing.T) {
	out, _, err := executeCommand(t, NewSectionsCommand(), "--topic", "practical")
	require.NoError(t, err)

	assert.Contains(t, out, "PR01")
	assert.NotContains(t, out, "VC01")
}
