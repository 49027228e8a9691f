// Package output provides mode-aware rendering for CLI commands.
//
// A Renderer resolves one of four modes: text (styled, for terminals),
// markdown (for piped output), json (machine-readable), and auto, which
// picks text on a TTY and markdown otherwise.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// ValidModes lists the accepted mode names. "md" is accepted as an alias
// for markdown when parsing.
var ValidModes = []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}

// ParseMode normalizes a mode string. Unknown values fall back to auto.
func ParseMode(s string) Mode {
	switch s {
	case "text":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Renderer writes command output in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer for the given writers and mode, with
// color resolved from the environment and terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererColor(out, errOut, mode, "auto")
}

// NewRendererColor creates a renderer with an explicit color setting:
// "always" forces styles on, "never" forces them off, anything else
// resolves from the environment and terminal.
func NewRendererColor(out, errOut io.Writer, mode Mode, color string) *Renderer {
	var styled bool
	switch color {
	case "always":
		styled = true
	case "never":
		styled = false
	default:
		styled = colorEnabled() && isTerminal(out)
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: NewStyles(styled),
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto based on whether stdout is a terminal:
// text when interactive, markdown when piped.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if isTerminal(r.out) {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the style set for styled text output.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the output writer.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// JSON writes v as indented JSON to the output writer.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Success writes a styled success line.
func (r *Renderer) Success(msg string) {
	_, _ = fmt.Fprintln(r.out, r.styles.Success.Render(msg))
}

// Warning writes a styled warning line.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.out, r.styles.Warning.Render(msg))
}

// Error writes a styled error line to the error writer.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render(msg))
}
