package model

import (
	"github.com/benbjohnson/immutable"
)

// Sequence is an ordered, read-only collection of data objects. Append and
// Slice return new sequences and leave the receiver untouched, so a Sequence
// can be shared between goroutines without locking.
//
// The zero value is an empty sequence.
type Sequence struct {
	list *immutable.List[DataObject]
}

// NewSequence builds a sequence holding objs in order.
func NewSequence(objs ...DataObject) Sequence {
	return Sequence{list: immutable.NewList(objs...)}
}

// SampleSequence returns the reference population used when no manifest is
// given.
func SampleSequence() Sequence {
	return NewSequence(
		NewString("Hello", "utf-8"),
		NewInteger(16, 32),
		NewFloat(3.14, "ieee-754"),
	)
}

// Len returns the number of objects.
func (s Sequence) Len() int {
	if s.list == nil {
		return 0
	}

	return s.list.Len()
}

// At returns the object at index i. It panics if i is out of range.
func (s Sequence) At(i int) DataObject {
	if s.list == nil {
		panic("model: index out of range on empty sequence")
	}

	return s.list.Get(i)
}

// Append returns a new sequence with objs added at the end.
func (s Sequence) Append(objs ...DataObject) Sequence {
	list := s.list
	if list == nil {
		list = immutable.NewList[DataObject]()
	}

	for _, o := range objs {
		list = list.Append(o)
	}

	return Sequence{list: list}
}

// Slice returns the objects in [start, end).
func (s Sequence) Slice(start, end int) Sequence {
	if s.list == nil || start == end {
		return Sequence{}
	}

	return Sequence{list: s.list.Slice(start, end)}
}

// Each calls fn for every object in order.
func (s Sequence) Each(fn func(i int, o DataObject)) {
	if s.list == nil {
		return
	}

	itr := s.list.Iterator()
	for !itr.Done() {
		i, o := itr.Next()
		fn(i, o)
	}
}

// Objects copies the sequence into a new slice.
func (s Sequence) Objects() []DataObject {
	objs := make([]DataObject, 0, s.Len())
	s.Each(func(_ int, o DataObject) {
		objs = append(objs, o)
	})

	return objs
}
