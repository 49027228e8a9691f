package tour

import "fmt"

// LineKind classifies a transcript line so renderers can style it without
// the sections knowing anything about terminals.
type LineKind string

const (
	// LineHeading is an example heading within a section.
	LineHeading LineKind = "heading"
	// LineStep narrates a single step the demonstration just performed.
	LineStep LineKind = "step"
	// LineNote is an aside explaining what the step showed.
	LineNote LineKind = "note"
	// LineBlank separates visual blocks.
	LineBlank LineKind = "blank"
)

// Line is one recorded transcript line.
type Line struct {
	Kind LineKind `json:"kind"`
	Text string   `json:"text,omitempty"`
}

// Transcript is an append-only recorder that section Run functions write
// to. It holds plain text only; styling and indentation are the renderer's
// business.
type Transcript struct {
	lines []Line
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Headingf records an example heading.
func (t *Transcript) Headingf(format string, args ...any) {
	t.append(LineHeading, format, args...)
}

// Stepf records a narrated step.
func (t *Transcript) Stepf(format string, args ...any) {
	t.append(LineStep, format, args...)
}

// Notef records an explanatory aside.
func (t *Transcript) Notef(format string, args ...any) {
	t.append(LineNote, format, args...)
}

// Blank records a separator line.
func (t *Transcript) Blank() {
	t.lines = append(t.lines, Line{Kind: LineBlank})
}

// Lines returns the recorded lines in order.
func (t *Transcript) Lines() []Line {
	return t.lines
}

// Len returns the number of recorded lines.
func (t *Transcript) Len() int {
	return len(t.lines)
}

func (t *Transcript) append(kind LineKind, format string, args ...any) {
	t.lines = append(t.lines, Line{Kind: kind, Text: fmt.Sprintf(format, args...)})
}
