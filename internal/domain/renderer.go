// Package domain contains the operations run over data objects and the
// workflow that drives them.
package domain

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/dataobj/internal/model"
)

// Layout selects how Renderer formats a line.
type Layout int

// Available layouts.
const (
	// LayoutCompact prints `String: "Hello" (utf-8)`.
	LayoutCompact Layout = iota
	// LayoutAligned pads labels to a fixed column and prints floats with six
	// decimals: `Float:      3.140000  (ieee-754)`.
	LayoutAligned
)

const alignedLabelWidth = 12

// ErrUnknownLayout is returned by ParseLayout for unrecognized names.
var ErrUnknownLayout = errors.New("unknown layout")

// ParseLayout converts a layout name ("compact" or "aligned").
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "compact":
		return LayoutCompact, nil
	case "aligned":
		return LayoutAligned, nil
	default:
		return LayoutCompact, errors.Wrapf(ErrUnknownLayout, "%q", name)
	}
}

// String returns the layout name.
func (l Layout) String() string {
	if l == LayoutAligned {
		return "aligned"
	}

	return "compact"
}

// Renderer writes one human-readable line per data object.
type Renderer struct {
	out      io.Writer
	layout   Layout
	rendered int
	err      error
}

var _ m.Visitor = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, layout Layout) *Renderer {
	return &Renderer{out: out, layout: layout}
}

// VisitString renders a string object.
func (r *Renderer) VisitString(o m.StringObject) {
	r.writeLine("String:", strconv.Quote(o.Text()), o.Encoding())
}

// VisitInteger renders an integer object.
func (r *Renderer) VisitInteger(o m.IntegerObject) {
	r.writeLine("Integer:", strconv.FormatInt(o.Value(), 10), fmt.Sprintf("%d bits", o.WidthBits()))
}

// VisitFloat renders a float object.
func (r *Renderer) VisitFloat(o m.FloatObject) {
	value := strconv.FormatFloat(o.Value(), 'f', -1, 64)
	if r.layout == LayoutAligned {
		value = fmt.Sprintf("%f", o.Value())
	}

	r.writeLine("Float:", value, o.Representation())
}

// Rendered returns the number of lines written successfully.
func (r *Renderer) Rendered() int {
	return r.rendered
}

// Err returns the first write error. Once set, later objects are skipped.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) writeLine(label, value, detail string) {
	if r.err != nil {
		return
	}

	var line string
	if r.layout == LayoutAligned {
		line = fmt.Sprintf("%-*s%s  (%s)\n", alignedLabelWidth, label, value, detail)
	} else {
		line = fmt.Sprintf("%s %s (%s)\n", label, value, detail)
	}

	if _, err := io.WriteString(r.out, line); err != nil {
		r.err = errors.Wrap(err, "failed to write rendered object")
		return
	}

	r.rendered++
}
