package commands

import (
	"github.com/groundwork-labs/memtour/internal/cli/output"
	"github.com/groundwork-labs/memtour/pkg/tour"
	_ "github.com/groundwork-labs/memtour/pkg/tour/sections" // register sections
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Topic  string // Filter by topic
	Format string // Output format override
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered sections",
		Long: `List all registered sections in canonical tour order.

Text mode prints a table; markdown and json modes print the same data in
their respective formats.`,
		Example: `  # List all sections
  memtour list

  # List slice sections only
  memtour list --topic slices

  # Output as JSON
  memtour list --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listSections(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Topic, "topic", "", "Filter by topic")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// ListJSONOutput is the JSON output structure for the list command.
type ListJSONOutput struct {
	Sections []tour.SectionInfo `json:"sections"`
	Count    int                `json:"count"`
}

func listSections(cmd *cobra.Command, opts *ListOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ParseMode(opts.Format))
	}

	var sections []tour.SectionDef
	if opts.Topic != "" {
		sections = tour.ByTopic(opts.Topic)
	} else {
		sections = tour.All()
	}

	if r.EffectiveMode() == output.ModeJSON {
		out := ListJSONOutput{Count: len(sections)}
		out.Sections = make([]tour.SectionInfo, 0, len(sections))
		for _, s := range sections {
			info := s.Info()
			// Keep the listing compact; details live in the sections command
			info.Rationale, info.Contrast, info.KeyExample = "", "", ""
			out.Sections = append(out.Sections, info)
		}
		return r.JSON(out)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Topic", "Description"})
	for _, s := range sections {
		t.AppendRow(table.Row{s.ID, s.Name, s.Topic, s.Description})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}
