package commands

import (
	"strings"

	"github.com/groundwork-labs/memtour/pkg/tour"
)

// transcriptMarkdown renders a section's transcript lines as markdown.
func transcriptMarkdown(sb *strings.Builder, lines []tour.Line) {
	for _, line := range lines {
		switch line.Kind {
		case tour.LineHeading:
			sb.WriteString("**" + line.Text + "**\n\n")
		case tour.LineStep:
			sb.WriteString("- " + line.Text + "\n")
		case tour.LineNote:
			sb.WriteString("  - *" + line.Text + "*\n")
		case tour.LineBlank:
			sb.WriteString("\n")
		}
	}
}

// sectionMarkdown renders one section result as a standalone markdown
// document, used by the export command.
func sectionMarkdown(res tour.SectionResult) string {
	var sb strings.Builder

	sb.WriteString("# " + res.ID + " - " + res.Title + "\n\n")
	sb.WriteString("**Topic:** " + tour.TopicTitle(res.Topic) + " | **Name:** `" + res.Name + "`\n\n")
	sb.WriteString(res.Description + "\n\n")

	sb.WriteString("## Transcript\n\n")
	transcriptMarkdown(&sb, res.Lines)
	sb.WriteString("\n")

	if res.Rationale != "" {
		sb.WriteString("## What This Shows\n\n")
		sb.WriteString(res.Rationale + "\n\n")
	}

	if res.Contrast != "" {
		sb.WriteString("## Contrast\n\n")
		sb.WriteString(res.Contrast + "\n\n")
	}

	if res.KeyExample != "" {
		sb.WriteString("## Key Example\n\n")
		sb.WriteString("```go\n" + res.KeyExample + "\n```\n")
	}

	return sb.String()
}
