package vexysvgo

import "github.com/gwen-lg/vexy-svgo/cssengine"

// nodeElem adapts a *Node plus its AncestorPath to cssengine.Elem, so the
// selector engine can match against the document tree without cssengine
// importing this package back.
type nodeElem struct {
	n      *Node
	parent *Node
}

func (e nodeElem) TagName() string { return e.n.Local }

func (e nodeElem) AttrValue(name string) (string, bool) {
	return e.n.Attrs.Get(name)
}

func (e nodeElem) ParentElem() (cssengine.Elem, bool) {
	if e.parent == nil {
		return nil, false
	}
	return nodeElem{n: e.parent, parent: e.parent.Parent()}, true
}

func asElem(n *Node, path *AncestorPath) cssengine.Elem {
	return nodeElem{n: n, parent: path.Parent()}
}
