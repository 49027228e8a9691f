package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/groundwork-labs/memtour/pkg/tour"
	_ "github.com/groundwork-labs/memtour/pkg/tour/sections" // register sections
	"github.com/spf13/cobra"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Dir string // Output directory
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the tour as markdown files",
		Long: `Run the tour and write it out as a set of markdown files: one file
per section plus an index. The generated files are stable across runs.`,
		Example: `  # Export to the default directory
  memtour export

  # Export somewhere else
  memtour export --dir ./docs/tour`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "./memtour-docs", "Output directory")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	runner := tour.NewRunner()
	report, err := runner.Run(cmd.Context(), tour.All())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.Dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var index strings.Builder
	index.WriteString("# " + report.Title + "\n\n")
	index.WriteString(tourIntro + "\n\n")

	currentTopic := ""
	for _, res := range report.Sections {
		if res.Topic != currentTopic {
			currentTopic = res.Topic
			index.WriteString("## " + tour.TopicTitle(currentTopic) + "\n\n")
		}

		name := exportFileName(res.SectionInfo)
		index.WriteString(fmt.Sprintf("- [%s - %s](%s)\n", res.ID, res.Title, name))

		path := filepath.Join(opts.Dir, name)
		if err := os.WriteFile(path, []byte(sectionMarkdown(res)), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debug("wrote section", "path", path)
	}

	indexPath := filepath.Join(opts.Dir, "index.md")
	if err := os.WriteFile(indexPath, []byte(index.String()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", indexPath, err)
	}

	r.Success(fmt.Sprintf("Exported %d sections to %s", len(report.Sections), opts.Dir))
	return nil
}

// exportFileName derives a stable markdown file name for a section,
// e.g. "vc01_values_assignment.md".
func exportFileName(info tour.SectionInfo) string {
	name := strings.ToLower(info.ID) + "_" + strings.ReplaceAll(info.Name, ".", "_")
	return name + ".md"
}
