package commands

import (
	"fmt"
	"strings"

	"github.com/groundwork-labs/memtour/internal/cli/output"
	"github.com/groundwork-labs/memtour/pkg/tour"
	_ "github.com/groundwork-labs/memtour/pkg/tour/sections" // register sections
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Plan   string // Path to a YAML lesson plan
	Topic  string // Restrict to one topic
	Format string // Output format override
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:   "run [section-id...]",
		Short: "Run the tour and print its transcript",
		Long: `Run the full tour, or a subset of sections, and print the annotated
transcript.

With no arguments the full tour runs in canonical order and prints the
same transcript on every invocation. Section IDs given as arguments run
in the given order. A YAML lesson plan can reorder or subset the tour.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run the full tour
  memtour run

  # Run two sections in a chosen order
  memtour run SL01 PT03

  # Run only the pointer sections
  memtour run --topic pointers

  # Run from a lesson plan
  memtour run --plan lesson.yaml

  # Machine-readable transcript
  memtour run --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Plan, "plan", "p", "", "Path to a YAML lesson plan")
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "Run only sections in the given topic")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func runTour(cmd *cobra.Command, args []string, opts *RunOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ParseMode(opts.Format))
	}

	sections, title, err := selectSections(args, opts, cfg.Plan, cfg.Sections)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		r.Warning("No sections selected")
		return nil
	}
	logger.Debug("running tour", "sections", len(sections))

	runner := tour.NewRunner(tour.WithTitle(title))
	report, err := runner.Run(cmd.Context(), sections)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeMarkdown:
		return renderReportMarkdown(r, report)
	default:
		return renderReportText(r, report, cfg.Width)
	}
}

// selectSections resolves which sections run, in order. Precedence:
// explicit IDs > --topic > --plan flag > configured plan > configured
// section subset > full registry.
func selectSections(args []string, opts *RunOptions, cfgPlan string, cfgSections []string) ([]tour.SectionDef, string, error) {
	title := tour.TourTitle

	switch {
	case len(args) > 0:
		sections, err := tour.Resolve(args)
		return sections, title, err

	case opts.Topic != "":
		sections := tour.ByTopic(opts.Topic)
		if len(sections) == 0 {
			return nil, "", fmt.Errorf("no sections in topic %q", opts.Topic)
		}
		return sections, title, nil

	case opts.Plan != "" || cfgPlan != "":
		path := opts.Plan
		if path == "" {
			path = cfgPlan
		}
		plan, err := tour.LoadPlan(path)
		if err != nil {
			return nil, "", err
		}
		if plan.Title != "" {
			title = plan.Title
		}
		sections, err := plan.Resolve()
		return sections, title, err

	case len(cfgSections) > 0:
		sections, err := tour.Resolve(cfgSections)
		return sections, title, err

	default:
		return tour.All(), title, nil
	}
}

const tourIntro = `This tour demonstrates Go's value, pointer, and slice semantics
through a series of small annotated examples.`

// renderReportText prints the report as a styled terminal transcript.
func renderReportText(r *output.Renderer, report *tour.Report, width int) error {
	styles := r.Styles()
	banner := strings.Repeat("=", 40)

	r.Println(styles.Header1.Render(banner))
	r.Println(styles.Header1.Render(report.Title))
	r.Println(styles.Header1.Render(banner))
	r.Println(tourIntro)
	r.Println("")

	currentTopic := ""
	sectionNum := 0
	for _, res := range report.Sections {
		if res.Topic != currentTopic {
			currentTopic = res.Topic
			heading := strings.ToUpper(tour.TopicTitle(currentTopic))
			if currentTopic == "summary" {
				r.Println(styles.Header1.Render(banner))
				r.Println(styles.Header1.Render(heading))
				r.Println(styles.Header1.Render(banner))
			} else {
				sectionNum++
				r.Println(styles.Header2.Render(fmt.Sprintf("SECTION %d: %s", sectionNum, heading)))
				r.Println(styles.Muted.Render(strings.Repeat("-", 42)))
			}
		}

		for _, line := range res.Lines {
			r.Println(renderLineText(styles, line, width))
		}
		r.Println("")
	}

	return nil
}

// renderLineText styles one transcript line for terminal output.
func renderLineText(styles *output.Styles, line tour.Line, width int) string {
	var text string
	switch line.Kind {
	case tour.LineHeading:
		return styles.Bold.Render(line.Text)
	case tour.LineStep:
		text = "  " + line.Text
	case tour.LineNote:
		text = "  Note: " + line.Text
	default:
		return ""
	}
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	if line.Kind == tour.LineNote {
		return styles.Muted.Render(text)
	}
	return text
}

// renderReportMarkdown prints the report as markdown.
func renderReportMarkdown(r *output.Renderer, report *tour.Report) error {
	r.Println("# " + report.Title)
	r.Println("")
	r.Println(tourIntro)
	r.Println("")

	currentTopic := ""
	sectionNum := 0
	for _, res := range report.Sections {
		if res.Topic != currentTopic {
			currentTopic = res.Topic
			if currentTopic == "summary" {
				r.Println("## Summary")
			} else {
				sectionNum++
				r.Printf("## Section %d: %s\n", sectionNum, tour.TopicTitle(currentTopic))
			}
			r.Println("")
		}

		r.Println("### " + res.Title)
		r.Println("")

		var sb strings.Builder
		transcriptMarkdown(&sb, res.Lines)
		r.Println(strings.TrimRight(sb.String(), "\n"))
		r.Println("")
	}

	return nil
}
