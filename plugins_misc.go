package vexysvgo

// This file groups the small, single-purpose cleanup plugins: the ones
// that remove one specific kind of node or attribute outright. The
// visitor plugins enter the node kind they care about, decide, and call
// Cursor.Remove (or delete attributes) when it doesn't belong in optimized
// output; removeDoctype and removeXMLProcInst are document plugins that
// clear the Document's own fields.

// --- removeDoctype ---

type removeDoctypePlugin struct{}

func (removeDoctypePlugin) Name() string  { return "removeDoctype" }
func (removeDoctypePlugin) Kind() PluginKind { return KindDocument }
func (removeDoctypePlugin) NewVisitor(map[string]any) (Visitor, *Report, error) { return nil, nil, nil }
func (removeDoctypePlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Doctype != nil {
		doc.Doctype = nil
		rep.Changed = 1
	}
	return rep, nil
}

// --- removeXMLProcInst ---

type removeXMLProcInstPlugin struct{}

func (removeXMLProcInstPlugin) Name() string     { return "removeXMLProcInst" }
func (removeXMLProcInstPlugin) Kind() PluginKind { return KindDocument }
func (removeXMLProcInstPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	return nil, nil, nil
}
func (removeXMLProcInstPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Prologue.Present {
		doc.Prologue = Prologue{}
		rep.Changed = 1
	}
	return rep, nil
}

// --- removeComments ---

type removeCommentsPlugin struct{}

func (removeCommentsPlugin) Name() string     { return "removeComments" }
func (removeCommentsPlugin) Kind() PluginKind { return KindVisitor }
func (removeCommentsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeCommentsPlugin) NewVisitor(_ map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeCommentsVisitor{rep: rep}, rep, nil
}

type removeCommentsVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeCommentsVisitor) EnterComment(n *Node, _ *AncestorPath, c *Cursor) {
	// A legal preservation comment starting with "!" is left alone, mirroring
	// the conventional "<!--! keep me -->" convention.
	if len(n.Content.String()) > 0 && n.Content.String()[0] == '!' {
		return
	}
	c.Remove()
	v.rep.Changed++
}

// --- removeMetadata ---

type removeMetadataPlugin struct{ BaseVisitor }

func (removeMetadataPlugin) Name() string                                         { return "removeMetadata" }
func (removeMetadataPlugin) Kind() PluginKind                                      { return KindVisitor }
func (removeMetadataPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (removeMetadataPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &elementNameRemoveVisitor{rep: rep, names: map[string]bool{"metadata": true}}, rep, nil
}

// --- removeDesc ---

type removeDescPlugin struct{}

func (removeDescPlugin) Name() string                                         { return "removeDesc" }
func (removeDescPlugin) Kind() PluginKind                                      { return KindVisitor }
func (removeDescPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (removeDescPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	removeAny := paramBool(params, "removeAny", false)
	return &removeDescVisitor{rep: rep, removeAny: removeAny}, rep, nil
}

type removeDescVisitor struct {
	BaseVisitor
	rep       *Report
	removeAny bool
}

func (v *removeDescVisitor) EnterElement(n *Node, _ *AncestorPath, c *Cursor) {
	if n.Local != "desc" {
		return
	}
	if v.removeAny {
		c.Remove()
		v.rep.Changed++
		return
	}
	// Default: only remove descriptions that look auto-generated or empty.
	text := textContent(n)
	if text == "" || text == "Created with Sketch." {
		c.Remove()
		v.rep.Changed++
	}
}

// --- removeTitle (SPEC_FULL supplement) ---

type removeTitlePlugin struct{}

func (removeTitlePlugin) Name() string                                         { return "removeTitle" }
func (removeTitlePlugin) Kind() PluginKind                                      { return KindVisitor }
func (removeTitlePlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (removeTitlePlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &elementNameRemoveVisitor{rep: rep, names: map[string]bool{"title": true}}, rep, nil
}

// --- removeScripts (SPEC_FULL supplement) ---

type removeScriptsPlugin struct{}

func (removeScriptsPlugin) Name() string                                         { return "removeScripts" }
func (removeScriptsPlugin) Kind() PluginKind                                      { return KindVisitor }
func (removeScriptsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (removeScriptsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeScriptsVisitor{rep: rep}, rep, nil
}

type removeScriptsVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeScriptsVisitor) EnterElement(n *Node, _ *AncestorPath, c *Cursor) {
	if n.Local == "script" {
		c.Remove()
		v.rep.Changed++
		return
	}
	for _, a := range n.Attrs.All() {
		if len(a.Name) >= 2 && a.Name[:2] == "on" {
			n.Attrs.Remove(a.Name)
			v.rep.Changed++
		}
	}
}

// --- removeStyleElement (SPEC_FULL supplement) ---

type removeStyleElementPlugin struct{}

func (removeStyleElementPlugin) Name() string { return "removeStyleElement" }
func (removeStyleElementPlugin) Kind() PluginKind { return KindVisitor }
func (removeStyleElementPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeStyleElementPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &elementNameRemoveVisitor{rep: rep, names: map[string]bool{"style": true}}, rep, nil
}

// --- removeEditorsNSData ---

var editorNamespacePrefixes = map[string]bool{
	"sodipodi": true, "inkscape": true, "sketch": true, "illustrator": true, "figma": true,
}

type removeEditorsNSDataPlugin struct{}

func (removeEditorsNSDataPlugin) Name() string { return "removeEditorsNSData" }
func (removeEditorsNSDataPlugin) Kind() PluginKind { return KindVisitor }
func (removeEditorsNSDataPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeEditorsNSDataPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeEditorsNSDataVisitor{rep: rep}, rep, nil
}

type removeEditorsNSDataVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeEditorsNSDataVisitor) EnterElement(n *Node, _ *AncestorPath, c *Cursor) {
	if editorNamespacePrefixes[n.Prefix] {
		c.Remove()
		v.rep.Changed++
		return
	}
	for _, a := range n.Attrs.All() {
		if prefix, _, ok := splitQName(a.Name); ok && editorNamespacePrefixes[prefix] {
			n.Attrs.Remove(a.Name)
			v.rep.Changed++
		}
	}
}

func splitQName(name string) (prefix, local string, ok bool) {
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return name[:i], name[i+1:], true
		}
	}
	return "", name, false
}

// elementNameRemoveVisitor removes every element whose local name is in
// names; shared by removeMetadata/removeTitle/removeStyleElement.
type elementNameRemoveVisitor struct {
	BaseVisitor
	rep   *Report
	names map[string]bool
}

func (v *elementNameRemoveVisitor) EnterElement(n *Node, _ *AncestorPath, c *Cursor) {
	if v.names[n.Local] {
		c.Remove()
		v.rep.Changed++
	}
}

func textContent(n *Node) string {
	var s string
	for _, c := range n.Children {
		if c.Kind == KindText || c.Kind == KindCData {
			s += c.Content.String()
		}
	}
	return s
}
