package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"text", ModeText},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"json", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"bogus", ModeAuto},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseMode(tc.input))
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	buf := new(bytes.Buffer)

	t.Run("explicit modes pass through", func(t *testing.T) {
		for _, mode := range []Mode{ModeText, ModeMarkdown, ModeJSON} {
			r := NewRenderer(buf, buf, mode)
			assert.Equal(t, mode, r.EffectiveMode())
		}
	})

	t.Run("auto resolves to markdown when not a terminal", func(t *testing.T) {
		r := NewRenderer(buf, buf, ModeAuto)
		assert.Equal(t, ModeMarkdown, r.EffectiveMode())
	})
}

func TestRenderer_Writers(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeText)

	r.Println("hello")
	r.Printf("%d-%d\n", 1, 2)
	assert.Equal(t, "hello\n1-2\n", out.String())

	r.Error("boom")
	assert.Contains(t, errOut.String(), "boom")
	assert.NotContains(t, out.String(), "boom")
}

func TestRenderer_StatusHelpers(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeText)

	r.Success("done")
	r.Warning("careful")
	assert.Contains(t, out.String(), "done")
	assert.Contains(t, out.String(), "careful")
	assert.Empty(t, errOut.String())
}

func TestRenderer_JSON(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, out, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"n": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["n"])
	// Indented output
	assert.Contains(t, out.String(), "  \"n\": 3")
}

func TestNewRendererColor_NeverIsPlain(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRendererColor(out, out, ModeText, "never")

	r.Println(r.Styles().Header1.Render("PLAIN"))
	assert.Equal(t, "PLAIN\n", out.String())
}
