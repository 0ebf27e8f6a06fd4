package controller

// List item types.
type objectItem struct {
	obj RenderedObject
}

func (o objectItem) FilterValue() string {
	return o.obj.Line
}
