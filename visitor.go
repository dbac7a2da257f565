package vexysvgo

// Visitor expresses a traversal as a set of optional callbacks, per §4.2.
// All methods may be left as the zero value of their type by embedding
// BaseVisitor; only the hooks a plugin cares about need to be implemented.
type Visitor interface {
	DocumentStart(doc *Document)
	DocumentEnd(doc *Document)

	EnterElement(n *Node, path *AncestorPath, c *Cursor)
	ExitElement(n *Node, path *AncestorPath)

	EnterText(n *Node, path *AncestorPath, c *Cursor)
	EnterComment(n *Node, path *AncestorPath, c *Cursor)
	EnterCData(n *Node, path *AncestorPath, c *Cursor)
	EnterPI(n *Node, path *AncestorPath, c *Cursor)
	EnterDoctype(n *Node, path *AncestorPath, c *Cursor)
}

// BaseVisitor provides no-op implementations of every Visitor method.
// Plugins embed it and override only what they need.
type BaseVisitor struct{}

func (BaseVisitor) DocumentStart(*Document)                        {}
func (BaseVisitor) DocumentEnd(*Document)                          {}
func (BaseVisitor) EnterElement(*Node, *AncestorPath, *Cursor)     {}
func (BaseVisitor) ExitElement(*Node, *AncestorPath)               {}
func (BaseVisitor) EnterText(*Node, *AncestorPath, *Cursor)        {}
func (BaseVisitor) EnterComment(*Node, *AncestorPath, *Cursor)     {}
func (BaseVisitor) EnterCData(*Node, *AncestorPath, *Cursor)       {}
func (BaseVisitor) EnterPI(*Node, *AncestorPath, *Cursor)          {}
func (BaseVisitor) EnterDoctype(*Node, *AncestorPath, *Cursor)     {}

// AncestorPath is a read-only stack of enclosing elements, root first,
// immediate parent last.
type AncestorPath struct {
	stack []*Node
}

// Len returns the number of ancestors (0 at the root element itself).
func (p *AncestorPath) Len() int { return len(p.stack) }

// At returns the ancestor at depth i (0 = outermost).
func (p *AncestorPath) At(i int) *Node { return p.stack[i] }

// Parent returns the immediate parent element, or nil if there is none.
func (p *AncestorPath) Parent() *Node {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// Attr walks from the immediate parent outward to the root looking for the
// first ancestor that carries the named attribute, implementing the
// inherited-property lookup pattern: the nearest explicit value wins.
func (p *AncestorPath) Attr(name string) (string, bool) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if v, ok := p.stack[i].Attrs.Get(name); ok {
			return v, true
		}
	}
	return "", false
}

func (p *AncestorPath) push(n *Node) *AncestorPath {
	return &AncestorPath{stack: append(append([]*Node(nil), p.stack...), n)}
}

// Walk performs a strictly depth-first, pre-order/post-order traversal of
// doc per §4.2: enter callbacks fire pre-order, exit callbacks post-order,
// siblings left to right in document order at the time their parent's enter
// returned. Mutations performed through the supplied Cursor are visible to
// the remainder of this same pass.
func Walk(doc *Document, v Visitor) {
	v.DocumentStart(doc)
	if doc.Root != nil {
		path := &AncestorPath{}
		walkNode(doc.Root, path, v)
	}
	v.DocumentEnd(doc)
}

func walkNode(n *Node, path *AncestorPath, v Visitor) {
	switch n.Kind {
	case KindElement:
		c := &Cursor{}
		v.EnterElement(n, path, c)
		if c.removed {
			applyLeafCursor(n, path, c)
			return
		}
		if c.replacement != nil {
			applyReplacement(n, c.replacement)
			if c.revisit {
				for _, r := range c.replacement {
					walkNode(r, path, v)
				}
			}
			return
		}
		if !c.skipChildren {
			childPath := path.push(n)
			for i := 0; i < len(n.Children); i++ {
				child := n.Children[i]
				before := len(n.Children)
				walkNode(child, childPath, v)
				// Account for structural edits made to n.Children by the
				// child's own cursor (replace/remove) so indices stay valid.
				delta := len(n.Children) - before
				i += delta
			}
		}
		v.ExitElement(n, path)

	case KindText:
		c := &Cursor{}
		v.EnterText(n, path, c)
		applyLeafCursor(n, path, c)

	case KindComment:
		c := &Cursor{}
		v.EnterComment(n, path, c)
		applyLeafCursor(n, path, c)

	case KindCData:
		c := &Cursor{}
		v.EnterCData(n, path, c)
		applyLeafCursor(n, path, c)

	case KindPI:
		c := &Cursor{}
		v.EnterPI(n, path, c)
		applyLeafCursor(n, path, c)

	case KindDoctype:
		c := &Cursor{}
		v.EnterDoctype(n, path, c)
		applyLeafCursor(n, path, c)
	}
}

func applyLeafCursor(n *Node, path *AncestorPath, c *Cursor) {
	parent := path.Parent()
	if parent == nil || (!c.removed && c.replacement == nil) {
		return
	}
	idx := parent.IndexOfChild(n)
	if idx < 0 {
		return
	}
	if c.removed {
		parent.RemoveChildAt(idx)
		return
	}
	applyReplacementAt(parent, idx, c.replacement)
}

func applyReplacement(n *Node, repl []*Node) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	idx := parent.IndexOfChild(n)
	if idx < 0 {
		return
	}
	applyReplacementAt(parent, idx, repl)
}

func applyReplacementAt(parent *Node, idx int, repl []*Node) {
	parent.RemoveChildAt(idx)
	for i, r := range repl {
		parent.InsertChild(idx+i, r)
	}
}
