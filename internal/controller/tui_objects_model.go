package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// objectsChromeHeight is the number of rows used by the title, summary,
// borders, header and footer around the list.
const objectsChromeHeight = 9

type objectDelegate struct{}

func (d objectDelegate) Height() int  { return 1 }
func (d objectDelegate) Spacing() int { return 0 }
func (d objectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d objectDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	obj, ok := item.(objectItem)
	if !ok {
		return
	}

	indexStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6).Align(lipgloss.Right)
	lineStyle := kindStyle(obj.obj.Kind)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	if index == lm.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		indexStyle = selected.Width(6).Align(lipgloss.Right)
		lineStyle = selected
		descStyle = selected.Italic(true)
	}

	width := lm.Width() - 8 // index column (6) + spacing (2)
	text := truncateToWidth(obj.obj.Line, width)

	line := fmt.Sprintf("%s  %s", indexStyle.Render(fmt.Sprintf("%d", obj.obj.Index)), lineStyle.Render(text))
	if remaining := width - lipgloss.Width(text) - 3; remaining > 0 && obj.obj.Description != "" {
		line += "   " + descStyle.Render(truncateToWidth(obj.obj.Description, remaining))
	}

	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// objectsModel pages through rendered data objects.
type objectsModel struct {
	width    int
	height   int
	list     list.Model
	total    int
	quitting bool
}

func newObjectsModel(objects []RenderedObject) objectsModel {
	items := make([]list.Item, 0, len(objects))
	for _, obj := range objects {
		items = append(items, objectItem{obj: obj})
	}

	objList := list.New(items, objectDelegate{}, 80, 20)
	objList.SetShowPagination(false)
	objList.SetShowFilter(true)
	objList.SetShowHelp(false)
	objList.SetShowTitle(false)
	objList.SetShowStatusBar(false)
	objList.FilterInput.Placeholder = "Filter objects…"

	return objectsModel{
		list:  objList,
		total: len(objects),
	}
}

func (om objectsModel) Init() tea.Cmd {
	return nil
}

func (om objectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		om.width = msg.Width
		om.height = msg.Height

		return om, nil

	case tea.KeyMsg:
		if om.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				om.quitting = true
				return om, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	om.list, cmd = om.list.Update(msg)

	return om, cmd
}

func (om objectsModel) View() string {
	if om.quitting {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render("Data Objects")

	summary := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2).
		Render(fmt.Sprintf("Total: %s", accentStyle.Render(fmt.Sprintf("%d", om.total))))

	listHeight := om.height - objectsChromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := om.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	om.list.SetHeight(listHeight)
	om.list.SetWidth(listWidth)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%6s  %s", "#", "Object"))

	table := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, om.list.View()))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(om.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, table, footer)
}
