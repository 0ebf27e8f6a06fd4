package model

import (
	"github.com/cockroachdb/errors"
)

// ErrUnknownKind is returned when a record names a kind outside the fixed set.
var ErrUnknownKind = errors.New("unknown data object kind")

// Record is the flat, serializable form of one data object. Only the fields
// belonging to Kind are meaningful.
type Record struct {
	Kind           Kind
	Text           string
	Encoding       string
	Int            int64
	WidthBits      int
	Float          float64
	Representation string
}

// Object builds the data object described by r.
func (r Record) Object() (DataObject, error) {
	switch r.Kind {
	case KindString:
		return NewString(r.Text, r.Encoding), nil
	case KindInteger:
		return NewInteger(r.Int, r.WidthBits), nil
	case KindFloat:
		return NewFloat(r.Float, r.Representation), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", string(r.Kind))
	}
}

// DecodeRecords builds a sequence from records, keeping their order.
func DecodeRecords(records []Record) (Sequence, error) {
	objs := make([]DataObject, 0, len(records))

	for i, r := range records {
		o, err := r.Object()
		if err != nil {
			return Sequence{}, errors.Wrapf(err, "record %d", i)
		}

		objs = append(objs, o)
	}

	return NewSequence(objs...), nil
}

// Tally counts data objects per kind.
type Tally struct {
	Strings  int
	Integers int
	Floats   int
}

// Total returns the number of objects counted.
func (t Tally) Total() int {
	return t.Strings + t.Integers + t.Floats
}

// Add returns the sum of t and other.
func (t Tally) Add(other Tally) Tally {
	return Tally{
		Strings:  t.Strings + other.Strings,
		Integers: t.Integers + other.Integers,
		Floats:   t.Floats + other.Floats,
	}
}

// Count returns the count stored for kind.
func (t Tally) Count(kind Kind) int {
	switch kind {
	case KindString:
		return t.Strings
	case KindInteger:
		return t.Integers
	case KindFloat:
		return t.Floats
	default:
		return 0
	}
}

// Finding describes one data object that failed validation.
type Finding struct {
	Index   int // position in the source sequence, before any skip rule
	Kind    Kind
	Message string
}
