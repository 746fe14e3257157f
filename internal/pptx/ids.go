package pptx

// IdAllocator hands out the monotonically increasing timing-node ids
// for one generated document. Scoped to a single conversion call;
// ids are never reused within a document.
type IdAllocator struct {
	next int
}

// NewIdAllocator starts counting at 1.
func NewIdAllocator() *IdAllocator { return &IdAllocator{next: 1} }

// Next returns the next unused id.
func (a *IdAllocator) Next() int {
	id := a.next
	a.next++
	return id
}
