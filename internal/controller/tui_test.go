package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/dataobj/internal/model"
)

func sampleRendered() []RenderedObject {
	return []RenderedObject{
		{Index: 0, Kind: m.KindString, Line: `String: "Hello" (utf-8)`, Description: "5 bytes of utf-8 text"},
		{Index: 1, Kind: m.KindInteger, Line: "Integer: 16 (32 bits)", Description: "32-bit signed integer"},
		{Index: 2, Kind: m.KindFloat, Line: "Float: 3.14 (ieee-754)", Description: "ieee-754 number"},
	}
}

func TestTUI_DisplayRendered_PrintsWhenNoTerminal(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	tui.run = func(tea.Model) error {
		t.Fatal("pager must not start without a terminal size")
		return nil
	}

	require.NoError(t, tui.DisplayRendered(sampleRendered()))

	output := buf.String()
	assert.Equal(t, 3, strings.Count(output, "\n"))
	assert.Contains(t, output, "String:")
	assert.Contains(t, output, `"Hello" (utf-8)`)
	assert.Contains(t, output, "Integer:")
	assert.Contains(t, output, "16 (32 bits)")
	assert.Contains(t, output, "3.14 (ieee-754)")
}

func TestTUI_DisplayRendered_PagesTallOutput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	tui.width = 80
	tui.height = 10

	objects := make([]RenderedObject, 0, 20)
	for i := range 20 {
		objects = append(objects, RenderedObject{Index: i, Kind: m.KindInteger, Line: fmt.Sprintf("Integer: %d (8 bits)", i)})
	}

	var started tea.Model
	tui.run = func(model tea.Model) error {
		started = model
		return nil
	}

	require.NoError(t, tui.DisplayRendered(objects))

	om, ok := started.(objectsModel)
	require.True(t, ok, "pager model = %T", started)
	assert.Equal(t, 20, om.total)
	assert.Equal(t, 10, om.height)
	assert.Empty(t, buf.String())
}

func TestTUI_DisplayRendered_PagerError(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})
	tui.height = 10
	tui.run = func(tea.Model) error { return errors.New("no tty") }

	objects := make([]RenderedObject, 5)
	assert.EqualError(t, tui.DisplayRendered(objects), "no tty")
}

func TestTUI_NeedsPagination(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})
	assert.False(t, tui.needsPagination(1000))

	tui.height = 12
	assert.False(t, tui.needsPagination(3))
	assert.True(t, tui.needsPagination(4))
}

func TestTUI_DisplayTally(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTUI(&buf).DisplayTally(m.Tally{Strings: 1, Integers: 2, Floats: 3}))

	output := buf.String()
	for _, want := range []string{"Data objects", "string", "integer", "float", "total", "6"} {
		assert.Contains(t, output, want)
	}
}

func TestTUI_DisplayFindings(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayFindings(3, nil))
	assert.Contains(t, buf.String(), "All 3 data objects are valid")

	buf.Reset()
	findings := []m.Finding{{Index: 2, Kind: m.KindFloat, Message: "value is not finite"}}
	require.NoError(t, tui.DisplayFindings(3, findings))
	assert.Contains(t, buf.String(), "#2")
	assert.Contains(t, buf.String(), "value is not finite")
	assert.Contains(t, buf.String(), "1 finding(s) in 3 data objects")
}

func TestStyleLine_WithoutLabel(t *testing.T) {
	obj := RenderedObject{Kind: m.KindString, Line: "no label here"}
	assert.Equal(t, "no label here", styleLine(obj))
}
