package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/groundwork-labs/memtour/pkg/tour"
	_ "github.com/groundwork-labs/memtour/pkg/tour/sections" // register sections
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewPresentCommand creates the present command.
func NewPresentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present",
		Short: "Step through the tour interactively",
		Long: `Present the tour one section at a time in an interactive terminal UI.

Left/right (or h/l) move between sections, up/down scroll the current
transcript, and q quits. Requires a terminal.`,
		Example: `  # Present the full tour
  memtour present`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPresent(cmd)
		},
	}
	return cmd
}

func runPresent(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("present requires an interactive terminal; use 'memtour run' instead")
	}

	runner := tour.NewRunner()
	report, err := runner.Run(cmd.Context(), tour.All())
	if err != nil {
		return err
	}
	if len(report.Sections) == 0 {
		return fmt.Errorf("no sections registered")
	}

	p := tea.NewProgram(newPresentModel(report), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// presentKeyMap defines the keybindings for the presentation UI.
type presentKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultPresentKeyMap() presentKeyMap {
	return presentKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "enter"),
			key.WithHelp("→/n", "next section"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "previous section"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// presentModel is the bubbletea model for the presentation UI.
type presentModel struct {
	report   *tour.Report
	index    int
	viewport viewport.Model
	keys     presentKeyMap
	width    int
	height   int
	ready    bool

	titleStyle   lipgloss.Style
	headingStyle lipgloss.Style
	noteStyle    lipgloss.Style
	footerStyle  lipgloss.Style
}

func newPresentModel(report *tour.Report) presentModel {
	return presentModel{
		report:       report,
		keys:         defaultPresentKeyMap(),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		headingStyle: lipgloss.NewStyle().Bold(true),
		noteStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		footerStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Init initializes the model.
func (m presentModel) Init() tea.Cmd {
	return nil
}

// chromeHeight is the number of lines used by the header and footer.
const chromeHeight = 4

// Update handles messages.
func (m presentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.viewport.SetContent(m.sectionContent())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.index < len(m.report.Sections)-1 {
				m.index++
				m.viewport.SetContent(m.sectionContent())
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.index > 0 {
				m.index--
				m.viewport.SetContent(m.sectionContent())
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// sectionContent renders the current section's transcript for the viewport.
func (m presentModel) sectionContent() string {
	res := m.report.Sections[m.index]

	var sb strings.Builder
	sb.WriteString(res.Description + "\n\n")
	for _, line := range res.Lines {
		switch line.Kind {
		case tour.LineHeading:
			sb.WriteString(m.headingStyle.Render(line.Text) + "\n")
		case tour.LineStep:
			sb.WriteString("  " + line.Text + "\n")
		case tour.LineNote:
			sb.WriteString(m.noteStyle.Render("  Note: "+line.Text) + "\n")
		case tour.LineBlank:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// View renders the UI.
func (m presentModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	res := m.report.Sections[m.index]
	header := m.titleStyle.Render(fmt.Sprintf("%s - %s", res.ID, res.Title))
	position := m.footerStyle.Render(fmt.Sprintf("Section %d/%d", m.index+1, len(m.report.Sections)))
	footer := m.footerStyle.Render("←/→ sections · ↑/↓ scroll · q quit")

	return header + "  " + position + "\n\n" + m.viewport.View() + "\n" + footer
}
