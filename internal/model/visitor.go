package model

// Visitor is the contract every operation over data objects satisfies: one
// entry point per kind. Handlers receive a copy of the object and may only
// change the operation's own state.
//
// A type that implements Visitor directly must handle every kind. Embed
// NopVisitor to opt into ignoring kinds instead.
type Visitor interface {
	VisitString(o StringObject)
	VisitInteger(o IntegerObject)
	VisitFloat(o FloatObject)
}

// NopVisitor ignores every kind. Operations embed it and override only the
// kinds they care about; any kind left alone is skipped silently, which also
// hides a missing handler when a new kind is added. Operations that must
// cover every kind should not embed it.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

// VisitString does nothing.
func (NopVisitor) VisitString(StringObject) {}

// VisitInteger does nothing.
func (NopVisitor) VisitInteger(IntegerObject) {}

// VisitFloat does nothing.
func (NopVisitor) VisitFloat(FloatObject) {}

// Folder is an operation that produces a value of type R for each kind. It has
// no default: a Folder that misses a kind does not compile.
type Folder[R any] interface {
	FoldString(o StringObject) R
	FoldInteger(o IntegerObject) R
	FoldFloat(o FloatObject) R
}

// folding adapts a Folder to the Visitor protocol and captures the result of
// the one handler Accept invokes.
type folding[R any] struct {
	folder Folder[R]
	result R
}

func (f *folding[R]) VisitString(o StringObject)   { f.result = f.folder.FoldString(o) }
func (f *folding[R]) VisitInteger(o IntegerObject) { f.result = f.folder.FoldInteger(o) }
func (f *folding[R]) VisitFloat(o FloatObject)     { f.result = f.folder.FoldFloat(o) }

// Fold dispatches o to the matching method of f and returns its result.
func Fold[R any](o DataObject, f Folder[R]) R {
	adapter := &folding[R]{folder: f}
	o.Accept(adapter)

	return adapter.result
}

// FoldAll folds every object of seq in order.
func FoldAll[R any](seq Sequence, f Folder[R]) []R {
	results := make([]R, 0, seq.Len())
	seq.Each(func(_ int, o DataObject) {
		results = append(results, Fold(o, f))
	})

	return results
}
