package vexysvgo

// Cursor is offered to every enter callback and supports the three
// structural operations from §4.2: replace the current node with N nodes,
// remove it, or (for elements) skip visiting its children. At most one of
// Replace/Remove may be requested per visit; the last call wins.
type Cursor struct {
	replacement  []*Node
	removed      bool
	skipChildren bool
	revisit      bool
}

// Replace requests that the current node be replaced, in its parent's
// child list, by the given nodes (zero or more). The replacement nodes are
// not visited during this same pass unless Revisit is also called.
func (c *Cursor) Replace(nodes ...*Node) {
	c.replacement = nodes
	c.removed = false
}

// Remove requests that the current node be deleted from its parent.
func (c *Cursor) Remove() {
	c.removed = true
	c.replacement = nil
}

// SkipChildren requests that an element's children not be visited during
// this pass. It has no effect on non-element nodes.
func (c *Cursor) SkipChildren() {
	c.skipChildren = true
}

// Revisit requests that, if Replace was called, the replacement nodes be
// walked (enter/exit) during this same pass instead of being skipped.
func (c *Cursor) Revisit() {
	c.revisit = true
}
