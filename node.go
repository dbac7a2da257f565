package vexysvgo

// Kind identifies which variant of the closed Node tagged sum a Node holds.
type Kind int

const (
	// KindElement is a tagged element with attributes and children.
	KindElement Kind = iota
	// KindText is opaque text content; Node.IsWhitespace distinguishes
	// whitespace-only text from non-whitespace text.
	KindText
	// KindCData is a CDATA section, preserved verbatim on output.
	KindCData
	// KindComment is an XML comment.
	KindComment
	// KindPI is a processing instruction with a target and data.
	KindPI
	// KindDoctype is a raw DOCTYPE declaration.
	KindDoctype
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindCData:
		return "cdata"
	case KindComment:
		return "comment"
	case KindPI:
		return "pi"
	case KindDoctype:
		return "doctype"
	default:
		return "unknown"
	}
}

// Node is a single node in a Document tree. It is a closed tagged sum over
// Kind: which fields are meaningful depends on Kind.
type Node struct {
	Kind Kind

	// Element fields.
	Prefix   string // optional namespace prefix
	Local    string // local (unprefixed) element name
	Attrs    AttrList
	Children []*Node
	Void     bool // true if serialized as a self-closing/empty tag on input

	// Text/CData/Comment content.
	Content StringValue

	// PI fields.
	PITarget string
	PIData   StringValue

	// Doctype field.
	DoctypeDecl StringValue

	parent *Node
}

// Name returns the element's qualified name ("prefix:local", or just
// "local" if there is no prefix). Only meaningful for KindElement.
func (n *Node) Name() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// IsWhitespace reports whether a KindText node's content is entirely XML
// whitespace (space, tab, CR, LF).
func (n *Node) IsWhitespace() bool {
	if n.Kind != KindText {
		return false
	}
	s := n.Content.String()
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}

// NewElement creates a detached element node.
func NewElement(local string) *Node {
	return &Node{Kind: KindElement, Local: local}
}

// NewText creates a detached text node.
func NewText(content string) *Node {
	return &Node{Kind: KindText, Content: Owned(content)}
}

// NewComment creates a detached comment node.
func NewComment(content string) *Node {
	return &Node{Kind: KindComment, Content: Owned(content)}
}

// AppendChild appends a child node, setting its parent pointer. The caller
// is responsible for detaching child from any prior parent first.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// InsertChild inserts child at position i.
func (n *Node) InsertChild(i int, child *Node) {
	child.parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

// RemoveChildAt removes and returns the child at position i.
func (n *Node) RemoveChildAt(i int) *Node {
	child := n.Children[i]
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	child.parent = nil
	return child
}

// IndexOfChild returns the position of child among n's children, or -1.
func (n *Node) IndexOfChild(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Clone returns a deep, fully-owned copy of the subtree rooted at n,
// detached from any parent.
func (n *Node) Clone() *Node {
	clone := &Node{
		Kind:        n.Kind,
		Prefix:      n.Prefix,
		Local:       n.Local,
		Void:        n.Void,
		Content:     Owned(n.Content.String()),
		PITarget:    n.PITarget,
		PIData:      Owned(n.PIData.String()),
		DoctypeDecl: Owned(n.DoctypeDecl.String()),
	}
	attrs := n.Attrs.Clone()
	clone.Attrs = attrs
	for _, c := range n.Children {
		clone.AppendChild(c.Clone())
	}
	return clone
}

// WalkElements is a small helper for plugins that only care about
// descendant elements, in document order, without the full Visitor
// machinery; it is not re-entrant-safe against concurrent mutation.
func (n *Node) WalkElements(f func(*Node)) {
	for _, c := range n.Children {
		if c.Kind == KindElement {
			f(c)
			c.WalkElements(f)
		}
	}
}
