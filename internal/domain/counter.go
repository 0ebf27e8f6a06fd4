package domain

import (
	m "github.com/mouse-blink/dataobj/internal/model"
)

// Counter tallies data objects per kind.
type Counter struct {
	tally m.Tally
}

var _ m.Visitor = (*Counter)(nil)

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// VisitString counts a string object.
func (c *Counter) VisitString(m.StringObject) { c.tally.Strings++ }

// VisitInteger counts an integer object.
func (c *Counter) VisitInteger(m.IntegerObject) { c.tally.Integers++ }

// VisitFloat counts a float object.
func (c *Counter) VisitFloat(m.FloatObject) { c.tally.Floats++ }

// Tally returns the counts so far.
func (c *Counter) Tally() m.Tally {
	return c.tally
}
