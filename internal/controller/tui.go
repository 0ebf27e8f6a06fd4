package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/dataobj/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var kindStyles = map[m.Kind]lipgloss.Style{
	m.KindString:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	m.KindInteger: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	m.KindFloat:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

// TUI implements UI with lipgloss styling and a Bubble Tea pager for output
// taller than the terminal.
type TUI struct {
	output io.Writer
	width  int
	height int
	run    func(tea.Model) error
}

var _ UI = (*TUI)(nil)

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.run = t.runProgram

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	return t
}

// DisplayRendered shows rendered objects, paging when they do not fit.
func (t *TUI) DisplayRendered(objects []RenderedObject) error {
	if t.needsPagination(len(objects)) {
		model := newObjectsModel(objects)
		model.width = t.width
		model.height = t.height

		return t.run(model)
	}

	var b strings.Builder
	for _, obj := range objects {
		b.WriteString(styleLine(obj))
		b.WriteString("\n")
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayTally shows the per-kind counts.
func (t *TUI) DisplayTally(tally m.Tally) error {
	lines := []string{headingStyle.Render("Data objects")}
	for _, kind := range m.Kinds {
		lines = append(lines, fmt.Sprintf("  %s %s",
			kindStyle(kind).Width(8).Render(string(kind)),
			accentStyle.Render(fmt.Sprintf("%d", tally.Count(kind))),
		))
	}

	lines = append(lines, fmt.Sprintf("  %s %s",
		mutedStyle.Width(8).Render("total"),
		accentStyle.Bold(true).Render(fmt.Sprintf("%d", tally.Total())),
	))

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// DisplayFindings shows validation findings.
func (t *TUI) DisplayFindings(total int, findings []m.Finding) error {
	if len(findings) == 0 {
		_, err := fmt.Fprintln(t.output, okStyle.Render(fmt.Sprintf("✓ All %d data objects are valid", total)))
		return err
	}

	lines := make([]string, 0, len(findings)+1)
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			mutedStyle.Render(fmt.Sprintf("#%d", f.Index)),
			kindStyle(f.Kind).Render(string(f.Kind)),
			f.Message,
		))
	}

	lines = append(lines, failStyle.Render(fmt.Sprintf("✗ %d finding(s) in %d data objects", len(findings), total)))

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

func (t *TUI) needsPagination(count int) bool {
	return t.height > 0 && count > t.height-objectsChromeHeight
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	_, err := program.Run()

	return err
}

func kindStyle(kind m.Kind) lipgloss.Style {
	if style, ok := kindStyles[kind]; ok {
		return style
	}

	return mutedStyle
}

func styleLine(obj RenderedObject) string {
	label, rest, found := strings.Cut(obj.Line, ":")
	if !found {
		return obj.Line
	}

	return kindStyle(obj.Kind).Bold(true).Render(label+":") + rest
}
