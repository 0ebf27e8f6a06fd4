package model

// Kind names one of the data object kinds. It is a label for reports and
// manifests; dispatch never looks at it.
type Kind string

const (
	// KindString labels StringObject.
	KindString Kind = "string"
	// KindInteger labels IntegerObject.
	KindInteger Kind = "integer"
	// KindFloat labels FloatObject.
	KindFloat Kind = "float"
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{KindString, KindInteger, KindFloat}

type kindFolder struct{}

func (kindFolder) FoldString(StringObject) Kind   { return KindString }
func (kindFolder) FoldInteger(IntegerObject) Kind { return KindInteger }
func (kindFolder) FoldFloat(FloatObject) Kind     { return KindFloat }

// KindOf returns the kind label of o.
func KindOf(o DataObject) Kind {
	return Fold[Kind](o, kindFolder{})
}
