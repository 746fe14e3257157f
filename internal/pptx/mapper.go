package pptx

// ShapeMapper resolves a source element id to the target document's
// shape id. When no mapping exists the element id is used verbatim as
// a placeholder reference.
type ShapeMapper interface {
	Resolve(elementID string) (string, bool)
}

// StaticMapper is a fixed element-id to shape-id table.
type StaticMapper map[string]string

// Resolve looks the element up in the table.
func (m StaticMapper) Resolve(elementID string) (string, bool) {
	spid, ok := m[elementID]
	return spid, ok
}

// shapeRef applies the mapper, falling back to the element id.
func shapeRef(mapper ShapeMapper, elementID string) string {
	if mapper != nil {
		if spid, ok := mapper.Resolve(elementID); ok {
			return spid
		}
	}
	return elementID
}
