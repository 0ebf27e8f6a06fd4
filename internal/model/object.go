// Package model defines the closed set of immutable data objects and the
// visitor protocol used to run operations over them.
package model

// DataObject is one value out of the fixed set of data object kinds:
// StringObject, IntegerObject and FloatObject.
//
// Accept routes v to the single Visit method matching the object's own kind.
// The set is sealed by the unexported marker method; adding a kind means
// adding a method to Visitor and to every operation.
type DataObject interface {
	Accept(v Visitor)

	dataObject()
}

var (
	_ DataObject = StringObject{}
	_ DataObject = IntegerObject{}
	_ DataObject = FloatObject{}
)

// StringObject holds text together with the name of its encoding.
type StringObject struct {
	text     string
	encoding string
}

// NewString constructs a StringObject.
func NewString(text, encoding string) StringObject {
	return StringObject{text: text, encoding: encoding}
}

// Text returns the string payload.
func (o StringObject) Text() string { return o.text }

// Encoding returns the encoding name, e.g. "utf-8".
func (o StringObject) Encoding() string { return o.encoding }

// Accept calls v.VisitString with a copy of o.
func (o StringObject) Accept(v Visitor) { v.VisitString(o) }

func (StringObject) dataObject() {}

// IntegerObject holds a signed integer and the bit width it is declared with.
type IntegerObject struct {
	value     int64
	widthBits int
}

// NewInteger constructs an IntegerObject.
func NewInteger(value int64, widthBits int) IntegerObject {
	return IntegerObject{value: value, widthBits: widthBits}
}

// Value returns the integer payload.
func (o IntegerObject) Value() int64 { return o.value }

// WidthBits returns the declared width in bits.
func (o IntegerObject) WidthBits() int { return o.widthBits }

// Accept calls v.VisitInteger with a copy of o.
func (o IntegerObject) Accept(v Visitor) { v.VisitInteger(o) }

func (IntegerObject) dataObject() {}

// FloatObject holds a floating-point number and the name of its representation.
type FloatObject struct {
	value          float64
	representation string
}

// NewFloat constructs a FloatObject.
func NewFloat(value float64, representation string) FloatObject {
	return FloatObject{value: value, representation: representation}
}

// Value returns the floating-point payload.
func (o FloatObject) Value() float64 { return o.value }

// Representation returns the representation name, e.g. "ieee-754".
func (o FloatObject) Representation() string { return o.representation }

// Accept calls v.VisitFloat with a copy of o.
func (o FloatObject) Accept(v Visitor) { v.VisitFloat(o) }

func (FloatObject) dataObject() {}
