package domain

import (
	"fmt"

	m "github.com/mouse-blink/dataobj/internal/model"
)

// Describer summarizes a data object in a few words for list views.
type Describer struct{}

var _ m.Folder[string] = Describer{}

// FoldString describes a string object by its length.
func (Describer) FoldString(o m.StringObject) string {
	return fmt.Sprintf("%d bytes of %s text", len(o.Text()), o.Encoding())
}

// FoldInteger describes an integer object by its width.
func (Describer) FoldInteger(o m.IntegerObject) string {
	return fmt.Sprintf("%d-bit signed integer", o.WidthBits())
}

// FoldFloat describes a float object by its representation.
func (Describer) FoldFloat(o m.FloatObject) string {
	return o.Representation() + " number"
}
