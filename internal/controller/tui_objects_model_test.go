package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestObjectItem_FilterValue(t *testing.T) {
	item := objectItem{obj: RenderedObject{Line: "Integer: 16 (32 bits)"}}
	if got := item.FilterValue(); got != "Integer: 16 (32 bits)" {
		t.Fatalf("FilterValue() = %q", got)
	}
}

func TestObjectsModel_View(t *testing.T) {
	om := newObjectsModel(sampleRendered())

	updated, cmd := om.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if cmd != nil {
		t.Fatalf("WindowSizeMsg returned a command")
	}

	om = updated.(objectsModel)
	if om.width != 100 || om.height != 30 {
		t.Fatalf("size = %dx%d, want 100x30", om.width, om.height)
	}

	view := om.View()
	for _, want := range []string{"Data Objects", "Total:", "3", "Hello", "16 (32 bits)", "q quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestObjectsModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		om := newObjectsModel(sampleRendered())

		updated, cmd := om.Update(key)
		if cmd == nil {
			t.Fatalf("key %q returned nil command, want tea.Quit", key.String())
		}

		if msg := cmd(); msg != (tea.QuitMsg{}) {
			t.Fatalf("key %q command produced %T, want tea.QuitMsg", key.String(), msg)
		}

		if view := updated.(objectsModel).View(); view != "" {
			t.Fatalf("View() after quit = %q, want empty", view)
		}
	}
}

func TestObjectsModel_NavigationKeepsRunning(t *testing.T) {
	om := newObjectsModel(sampleRendered())

	updated, _ := om.Update(tea.KeyMsg{Type: tea.KeyDown})
	om = updated.(objectsModel)

	if om.quitting {
		t.Fatalf("down key should not quit")
	}

	if om.list.Index() != 1 {
		t.Fatalf("list index = %d, want 1", om.list.Index())
	}
}
