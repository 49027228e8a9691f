package tour

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// TourTitle is the banner title for the full walkthrough.
const TourTitle = "GO VALUE, POINTER, AND SLICE SEMANTICS"

// Report is the result of running a set of sections. Everything except
// RunID is byte-stable across runs for the same inputs.
type Report struct {
	RunID    string          `json:"run_id"`
	Title    string          `json:"title"`
	Sections []SectionResult `json:"sections"`
}

// SectionResult pairs a section's metadata with its recorded transcript.
type SectionResult struct {
	SectionInfo
	Lines []Line `json:"lines"`
}

// Runner executes sections and collects their transcripts.
type Runner struct {
	title string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTitle overrides the report title, e.g. from a lesson plan.
func WithTitle(title string) RunnerOption {
	return func(r *Runner) { r.title = title }
}

// NewRunner creates a runner with the default tour title.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{title: TourTitle}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the given sections in order and returns the report.
// Cancellation is checked between sections; a section itself never blocks.
func (r *Runner) Run(ctx context.Context, sections []SectionDef) (*Report, error) {
	report := &Report{
		RunID:    uuid.NewString(),
		Title:    r.title,
		Sections: make([]SectionResult, 0, len(sections)),
	}

	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("tour interrupted before %s: %w", section.ID, err)
		}
		if section.Run == nil {
			return nil, fmt.Errorf("section %s has no run function", section.ID)
		}

		transcript := NewTranscript()
		section.Run(transcript)
		report.Sections = append(report.Sections, SectionResult{
			SectionInfo: section.Info(),
			Lines:       transcript.Lines(),
		})
	}

	return report, nil
}

// Resolve maps section IDs to registered sections, preserving the given
// order. Unknown IDs are an error.
func Resolve(ids []string) ([]SectionDef, error) {
	sections := make([]SectionDef, 0, len(ids))
	for _, id := range ids {
		s, ok := ByID(id)
		if !ok {
			return nil, fmt.Errorf("section %q not found", id)
		}
		sections = append(sections, s)
	}
	return sections, nil
}
