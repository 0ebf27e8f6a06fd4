package domain

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/dataobj/internal/model"
)

// ErrInvalidObjects is returned by Validator.Err when any finding was recorded.
var ErrInvalidObjects = errors.New("invalid data objects")

var supportedWidths = map[int]bool{8: true, 16: true, 32: true, 64: true}

var supportedRepresentations = map[string]bool{"ieee-754": true, "decimal": true}

// Validator checks every data object against the rules for its kind and
// records a Finding for each violation.
type Validator struct {
	next     int
	findings []m.Finding
}

var _ m.Visitor = (*Validator)(nil)

// NewValidator creates a Validator whose first visited object has position
// offset.
func NewValidator(offset int) *Validator {
	return &Validator{next: offset}
}

// VisitString checks the encoding name and that the text is valid in it.
func (v *Validator) VisitString(o m.StringObject) {
	defer v.advance()

	switch o.Encoding() {
	case "utf-8":
		if !utf8.ValidString(o.Text()) {
			v.report(m.KindString, "text is not valid utf-8")
		}
	case "ascii":
		if r, ok := firstRuneAbove(o.Text(), 0x7F); ok {
			v.report(m.KindString, fmt.Sprintf("text contains non-ascii rune %U", r))
		}
	case "latin-1":
		if r, ok := firstRuneAbove(o.Text(), 0xFF); ok {
			v.report(m.KindString, fmt.Sprintf("text contains rune %U outside latin-1", r))
		}
	default:
		v.report(m.KindString, fmt.Sprintf("unsupported encoding %q", o.Encoding()))
	}
}

// VisitInteger checks the width and that the value fits in it.
func (v *Validator) VisitInteger(o m.IntegerObject) {
	defer v.advance()

	width := o.WidthBits()
	if !supportedWidths[width] {
		v.report(m.KindInteger, fmt.Sprintf("unsupported width %d bits", width))
		return
	}

	if width == 64 {
		return
	}

	limit := int64(1) << (width - 1)
	if o.Value() < -limit || o.Value() >= limit {
		v.report(m.KindInteger, fmt.Sprintf("value %d overflows %d bits", o.Value(), width))
	}
}

// VisitFloat checks the representation name and that the value is finite.
func (v *Validator) VisitFloat(o m.FloatObject) {
	defer v.advance()

	if !supportedRepresentations[o.Representation()] {
		v.report(m.KindFloat, fmt.Sprintf("unsupported representation %q", o.Representation()))
	}

	if math.IsNaN(o.Value()) || math.IsInf(o.Value(), 0) {
		v.report(m.KindFloat, "value is not finite")
	}
}

// Findings returns the recorded findings in visit order.
func (v *Validator) Findings() []m.Finding {
	out := make([]m.Finding, len(v.findings))
	copy(out, v.findings)

	return out
}

// Err returns ErrInvalidObjects wrapped with the number of findings, or nil.
func (v *Validator) Err() error {
	if len(v.findings) == 0 {
		return nil
	}

	return errors.Wrapf(ErrInvalidObjects, "%d finding(s)", len(v.findings))
}

func (v *Validator) report(kind m.Kind, msg string) {
	v.findings = append(v.findings, m.Finding{Index: v.next, Kind: kind, Message: msg})
}

func (v *Validator) advance() {
	v.next++
}

func firstRuneAbove(s string, limit rune) (rune, bool) {
	for _, r := range s {
		if r > limit {
			return r, true
		}
	}

	return 0, false
}
