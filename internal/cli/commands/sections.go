package commands

import (
	"fmt"
	"strings"

	"github.com/groundwork-labs/memtour/internal/cli/output"
	"github.com/groundwork-labs/memtour/pkg/tour"
	_ "github.com/groundwork-labs/memtour/pkg/tour/sections" // register sections
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionsOptions holds options for the sections command.
type SectionsOptions struct {
	Topic   string // Filter by topic
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewSectionsCommand creates the sections command.
func NewSectionsCommand() *cobra.Command {
	opts := &SectionsOptions{}
	cmd := &cobra.Command{
		Use:   "sections [section-id]",
		Short: "Browse section documentation",
		Long: `List the tour's sections with their documentation.

Sections are grouped by topic (values, pointers, slices, practical).
Use --verbose for descriptions inline, or name a section for its full
documentation including the contrast notes and key example.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all sections
  memtour sections

  # Show details for one section
  memtour sections PT03

  # List pointer sections only
  memtour sections --topic pointers

  # Show full documentation
  memtour sections -V

  # Output as JSON
  memtour sections --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showSection(cmd, args[0], opts)
			}
			return listSectionDocs(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Topic, "topic", "", "Filter by topic")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listSectionDocs(cmd *cobra.Command, opts *SectionsOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ParseMode(opts.Format))
	}

	sections := tour.All()
	if opts.Topic != "" {
		sections = filterByTopic(sections, opts.Topic)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listSectionDocsJSON(r, sections)
	case output.ModeMarkdown:
		return listSectionDocsMarkdown(r, sections, opts.Verbose)
	default:
		return listSectionDocsText(r, sections, opts.Verbose)
	}
}

func filterByTopic(sections []tour.SectionDef, topic string) []tour.SectionDef {
	var filtered []tour.SectionDef
	for _, s := range sections {
		if s.Topic == topic {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func showSection(cmd *cobra.Command, sectionID string, opts *SectionsOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ParseMode(opts.Format))
	}

	section, ok := tour.ByID(sectionID)
	if !ok {
		return fmt.Errorf("section %q not found", sectionID)
	}
	info := section.Info()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showSectionMarkdown(r, info)
	default:
		return showSectionText(r, info)
	}
}

// listSectionDocsText outputs sections in styled text format.
func listSectionDocsText(r *output.Renderer, sections []tour.SectionDef, verbose bool) error {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Tour Sections (%d)", len(sections))))
	r.Println("")

	currentTopic := ""
	for _, s := range sections {
		if s.Topic != currentTopic {
			currentTopic = s.Topic
			r.Println(styles.Bold.Render("  " + titleCaser.String(currentTopic)))
		}

		r.Printf("    %s  %s - %s\n",
			styles.Muted.Render(s.ID),
			s.Name,
			s.Title,
		)

		if verbose {
			r.Println(styles.Muted.Render("        " + s.Description))
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'memtour sections <section-id>' for detailed documentation"))
	r.Println("")

	return nil
}

// listSectionDocsMarkdown outputs sections in markdown format.
func listSectionDocsMarkdown(r *output.Renderer, sections []tour.SectionDef, verbose bool) error {
	titleCaser := cases.Title(language.English)

	r.Println("# Tour Sections")
	r.Println("")

	currentTopic := ""
	for _, s := range sections {
		if s.Topic != currentTopic {
			currentTopic = s.Topic
			r.Println("## " + titleCaser.String(currentTopic))
			r.Println("")
		}

		r.Printf("- **%s** - %s (`%s`)\n", s.ID, s.Title, s.Name)
		if verbose {
			r.Println("  " + s.Description)
		}
	}

	r.Println("")
	return nil
}

// SectionsJSONOutput is the JSON output structure for the sections listing.
type SectionsJSONOutput struct {
	Sections []tour.SectionInfo `json:"sections"`
	Count    int                `json:"count"`
}

// listSectionDocsJSON outputs sections in JSON format.
func listSectionDocsJSON(r *output.Renderer, sections []tour.SectionDef) error {
	out := SectionsJSONOutput{Count: len(sections)}
	out.Sections = make([]tour.SectionInfo, 0, len(sections))
	for _, s := range sections {
		out.Sections = append(out.Sections, s.Info())
	}
	return r.JSON(out)
}

// showSectionText displays detailed section info in text format.
func showSectionText(r *output.Renderer, info tour.SectionInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", info.ID, info.Title)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Topic"), info.Topic)
	r.Printf("  %s: %s\n", styles.Bold.Render("Name"), info.Name)
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println(styles.Bold.Render("What This Shows"))
		r.Println("  " + info.Rationale)
		r.Println("")
	}

	if info.Contrast != "" {
		r.Println(styles.Bold.Render("Contrast"))
		r.Println("  " + info.Contrast)
		r.Println("")
	}

	if info.KeyExample != "" {
		r.Println(styles.Bold.Render("Key Example"))
		for _, line := range strings.Split(info.KeyExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	return nil
}

// showSectionMarkdown displays detailed section info in markdown format.
func showSectionMarkdown(r *output.Renderer, info tour.SectionInfo) error {
	r.Printf("# %s - %s\n\n", info.ID, info.Title)
	r.Printf("**Topic:** %s | **Name:** `%s`\n\n", info.Topic, info.Name)
	r.Println(info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println("## What This Shows")
		r.Println("")
		r.Println(info.Rationale)
		r.Println("")
	}

	if info.Contrast != "" {
		r.Println("## Contrast")
		r.Println("")
		r.Println(info.Contrast)
		r.Println("")
	}

	if info.KeyExample != "" {
		r.Println("## Key Example")
		r.Println("")
		r.Println("```go")
		r.Println(info.KeyExample)
		r.Println("```")
		r.Println("")
	}

	return nil
}
