package domain

import (
	m "github.com/mouse-blink/dataobj/internal/model"
)

// Exporter converts each data object into its serializable record.
type Exporter struct {
	records []m.Record
}

var _ m.Visitor = (*Exporter)(nil)

// NewExporter creates an empty Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// VisitString records a string object.
func (e *Exporter) VisitString(o m.StringObject) {
	e.records = append(e.records, m.Record{Kind: m.KindString, Text: o.Text(), Encoding: o.Encoding()})
}

// VisitInteger records an integer object.
func (e *Exporter) VisitInteger(o m.IntegerObject) {
	e.records = append(e.records, m.Record{Kind: m.KindInteger, Int: o.Value(), WidthBits: o.WidthBits()})
}

// VisitFloat records a float object.
func (e *Exporter) VisitFloat(o m.FloatObject) {
	e.records = append(e.records, m.Record{Kind: m.KindFloat, Float: o.Value(), Representation: o.Representation()})
}

// Records returns the records in visit order.
func (e *Exporter) Records() []m.Record {
	out := make([]m.Record, len(e.records))
	copy(out, e.records)

	return out
}
