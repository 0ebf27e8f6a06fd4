// Package controller provides output adapters for displaying data objects and
// the results of operations over them.
package controller

import (
	m "github.com/mouse-blink/dataobj/internal/model"
)

// RenderedObject is one rendered line together with what the UI needs to
// label it.
type RenderedObject struct {
	Index       int // position in the source sequence
	Kind        m.Kind
	Line        string
	Description string
}

// UI defines how operation results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayRendered(objects []RenderedObject) error
	DisplayTally(tally m.Tally) error
	DisplayFindings(total int, findings []m.Finding) error
}
