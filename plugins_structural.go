package vexysvgo

// Plugins that reshape the tree's structure rather than remove a single
// node kind: collapsing groups, pruning empty containers, and folding
// attributes up or down the tree. Grounded on the same Visitor/Cursor
// contract as plugins_misc.go.

var nonRenderedElements = map[string]bool{
	"hidden": true,
}

// --- removeHiddenElems ---

type removeHiddenElemsPlugin struct{}

func (removeHiddenElemsPlugin) Name() string     { return "removeHiddenElems" }
func (removeHiddenElemsPlugin) Kind() PluginKind { return KindVisitor }
func (removeHiddenElemsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeHiddenElemsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeHiddenElemsVisitor{rep: rep}, rep, nil
}

type removeHiddenElemsVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeHiddenElemsVisitor) EnterElement(n *Node, _ *AncestorPath, c *Cursor) {
	if w, ok := n.Attrs.Get("width"); ok && w == "0" {
		c.Remove()
		v.rep.Changed++
		return
	}
	if h, ok := n.Attrs.Get("height"); ok && h == "0" {
		c.Remove()
		v.rep.Changed++
		return
	}
	if disp, ok := n.Attrs.Get("display"); ok && disp == "none" && n.Local != "marker" {
		c.Remove()
		v.rep.Changed++
		return
	}
}

// --- removeEmptyContainers ---

var containerTags = map[string]bool{
	"g": true, "defs": true, "symbol": true, "marker": true, "mask": true,
	"pattern": true, "linearGradient": true, "radialGradient": true, "svg": false,
}

type removeEmptyContainersPlugin struct{}

func (removeEmptyContainersPlugin) Name() string     { return "removeEmptyContainers" }
func (removeEmptyContainersPlugin) Kind() PluginKind { return KindVisitor }
func (removeEmptyContainersPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeEmptyContainersPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeEmptyContainersVisitor{rep: rep}, rep, nil
}

type removeEmptyContainersVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeEmptyContainersVisitor) ExitElement(n *Node, path *AncestorPath) {
	if !containerTags[n.Local] || len(n.Children) != 0 {
		return
	}
	parent := path.Parent()
	if parent == nil {
		return
	}
	if idx := parent.IndexOfChild(n); idx >= 0 {
		parent.RemoveChildAt(idx)
		v.rep.Changed++
	}
}

// --- collapseGroups ---

type collapseGroupsPlugin struct{}

func (collapseGroupsPlugin) Name() string     { return "collapseGroups" }
func (collapseGroupsPlugin) Kind() PluginKind { return KindVisitor }
func (collapseGroupsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (collapseGroupsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &collapseGroupsVisitor{rep: rep}, rep, nil
}

type collapseGroupsVisitor struct {
	BaseVisitor
	rep *Report
}

// ExitElement runs post-order so a chain of nested single-child groups
// collapses bottom-up in one pass.
func (v *collapseGroupsVisitor) ExitElement(n *Node, path *AncestorPath) {
	if n.Local != "g" {
		return
	}
	parent := path.Parent()
	if parent == nil {
		return
	}
	if n.Attrs.Len() == 0 && len(n.Children) == 1 && n.Children[0].Kind == KindElement {
		only := n.Children[0]
		idx := parent.IndexOfChild(n)
		if idx < 0 {
			return
		}
		parent.RemoveChildAt(idx)
		parent.InsertChild(idx, only)
		v.rep.Changed++
		return
	}
	if len(n.Children) == 0 && n.Attrs.Len() == 0 {
		if idx := parent.IndexOfChild(n); idx >= 0 {
			parent.RemoveChildAt(idx)
			v.rep.Changed++
		}
	}
}

// --- moveElemsAttrsToGroup ---

type moveElemsAttrsToGroupPlugin struct{}

func (moveElemsAttrsToGroupPlugin) Name() string     { return "moveElemsAttrsToGroup" }
func (moveElemsAttrsToGroupPlugin) Kind() PluginKind { return KindVisitor }
func (moveElemsAttrsToGroupPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (moveElemsAttrsToGroupPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &moveElemsAttrsToGroupVisitor{rep: rep}, rep, nil
}

type moveElemsAttrsToGroupVisitor struct {
	BaseVisitor
	rep *Report
}

// ExitElement hoists an attribute shared identically by every element
// child of a group up onto the group itself, when the attribute is a
// presentation attribute safe to inherit.
func (v *moveElemsAttrsToGroupVisitor) ExitElement(n *Node, _ *AncestorPath) {
	if n.Local != "g" || len(n.Children) < 2 {
		return
	}
	var elems []*Node
	for _, c := range n.Children {
		if c.Kind == KindElement {
			elems = append(elems, c)
		} else if !(c.Kind == KindText && c.IsWhitespace()) {
			return
		}
	}
	if len(elems) < 2 {
		return
	}
	first := elems[0]
	for i := 0; i < first.Attrs.Len(); i++ {
		a := first.Attrs.At(i)
		if !inheritableAttrs[a.Name] {
			continue
		}
		shared := true
		for _, e := range elems[1:] {
			v2, ok := e.Attrs.Get(a.Name)
			if !ok || v2 != a.Value.String() {
				shared = false
				break
			}
		}
		if !shared {
			continue
		}
		n.Attrs.Set(a.Name, a.Value.String())
		for _, e := range elems {
			e.Attrs.Remove(a.Name)
		}
		v.rep.Changed++
	}
}

var inheritableAttrs = map[string]bool{
	"fill": true, "stroke": true, "stroke-width": true, "font-family": true,
	"font-size": true, "opacity": true, "fill-rule": true, "stroke-linecap": true,
	"stroke-linejoin": true, "color": true,
}

// --- moveGroupAttrsToElems ---

type moveGroupAttrsToElemsPlugin struct{}

func (moveGroupAttrsToElemsPlugin) Name() string     { return "moveGroupAttrsToElems" }
func (moveGroupAttrsToElemsPlugin) Kind() PluginKind { return KindVisitor }
func (moveGroupAttrsToElemsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (moveGroupAttrsToElemsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &moveGroupAttrsToElemsVisitor{rep: rep}, rep, nil
}

type moveGroupAttrsToElemsVisitor struct {
	BaseVisitor
	rep *Report
}

// EnterElement pushes a group's sole "transform" attribute down onto its
// single element child, when the group exists only to carry it.
func (v *moveGroupAttrsToElemsVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Local != "g" || n.Attrs.Len() != 1 {
		return
	}
	var only *Node
	count := 0
	for _, c := range n.Children {
		if c.Kind == KindElement {
			only = c
			count++
		}
	}
	if count != 1 {
		return
	}
	a := n.Attrs.At(0)
	if a.Name != "transform" {
		return
	}
	if existing, ok := only.Attrs.Get("transform"); ok {
		only.Attrs.Set("transform", a.Value.String()+" "+existing)
	} else {
		only.Attrs.Set("transform", a.Value.String())
	}
	n.Attrs.Remove("transform")
	v.rep.Changed++
}

// --- removeUnknownsAndDefaults ---

var elementDefaults = map[string]map[string]string{
	"svg":  {"x": "0", "y": "0"},
	"rect": {"x": "0", "y": "0", "rx": "0", "ry": "0"},
	"line": {"x1": "0", "y1": "0", "x2": "0", "y2": "0"},
}

type removeUnknownsAndDefaultsPlugin struct{}

func (removeUnknownsAndDefaultsPlugin) Name() string     { return "removeUnknownsAndDefaults" }
func (removeUnknownsAndDefaultsPlugin) Kind() PluginKind { return KindVisitor }
func (removeUnknownsAndDefaultsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeUnknownsAndDefaultsPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeUnknownsAndDefaultsVisitor{
		rep:                 rep,
		removeDefaultValues: paramBool(params, "removeDefaultValues", true),
	}, rep, nil
}

type removeUnknownsAndDefaultsVisitor struct {
	BaseVisitor
	rep                 *Report
	removeDefaultValues bool
}

func (v *removeUnknownsAndDefaultsVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if !v.removeDefaultValues {
		return
	}
	defaults, ok := elementDefaults[n.Local]
	if !ok {
		return
	}
	for name, def := range defaults {
		if val, present := n.Attrs.Get(name); present && val == def {
			n.Attrs.Remove(name)
			v.rep.Changed++
		}
	}
}

// --- sortAttrs ---

// attrOrderDefault is the default priority: id, width, height, x, y and
// viewBox first, then class, transform and the remaining geometry
// attributes. Attributes not listed sort after these, alphabetically.
var attrOrderDefault = []string{
	"id", "width", "height", "x", "y", "viewBox", "class", "transform",
	"cx", "cy", "r", "rx", "ry", "d", "points",
}

type sortAttrsPlugin struct{}

func (sortAttrsPlugin) Name() string     { return "sortAttrs" }
func (sortAttrsPlugin) Kind() PluginKind { return KindVisitor }
func (sortAttrsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (sortAttrsPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	order := paramStrings(params, "order")
	if order == nil {
		order = attrOrderDefault
	}
	rank := make(map[string]int, len(order))
	for i, n := range order {
		rank[n] = i
	}
	rep := &Report{}
	return &sortAttrsVisitor{rep: rep, rank: rank, fallback: len(order)}, rep, nil
}

type sortAttrsVisitor struct {
	BaseVisitor
	rep      *Report
	rank     map[string]int
	fallback int
}

func (v *sortAttrsVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Attrs.Len() < 2 {
		return
	}
	rankOf := func(name string) int {
		if r, ok := v.rank[name]; ok {
			return r
		}
		return v.fallback
	}
	n.Attrs.SortBy(func(a, b Attr) bool {
		ra, rb := rankOf(a.Name), rankOf(b.Name)
		if ra != rb {
			return ra < rb
		}
		return a.Name < b.Name
	})
	v.rep.Changed++
}

// --- sortDefsChildren ---

type sortDefsChildrenPlugin struct{}

func (sortDefsChildrenPlugin) Name() string     { return "sortDefsChildren" }
func (sortDefsChildrenPlugin) Kind() PluginKind { return KindVisitor }
func (sortDefsChildrenPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (sortDefsChildrenPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &sortDefsChildrenVisitor{rep: rep}, rep, nil
}

type sortDefsChildrenVisitor struct {
	BaseVisitor
	rep *Report
}

// EnterElement sorts a <defs>'s element children by reference frequency
// proxy (tag name, then id) to improve gzip locality, same rationale as
// upstream SVGO's sortDefsChildren.
func (v *sortDefsChildrenVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Local != "defs" || len(n.Children) < 2 {
		return
	}
	var positions []int
	var nodes []*Node
	for i, c := range n.Children {
		if c.Kind == KindElement {
			positions = append(positions, i)
			nodes = append(nodes, c)
		}
	}
	if len(nodes) < 2 {
		return
	}
	key := func(e *Node) string { return e.Local + "\x00" + e.Attrs.GetDefault("id", "") }
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && key(nodes[j]) < key(nodes[j-1]); j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
	changed := false
	for i, pos := range positions {
		if n.Children[pos] != nodes[i] {
			changed = true
			n.Children[pos] = nodes[i]
		}
	}
	if changed {
		v.rep.Changed++
	}
}

// --- removeNonInheritableGroupAttrs ---

// groupAffectingAttrs are presentation attributes that affect a <g>
// itself even though they are not inherited by its children (opacity and
// the compositing/clip properties apply to the group's rendered result as
// a whole).
var groupAffectingAttrs = map[string]bool{
	"clip-path": true, "mask": true, "filter": true, "opacity": true,
	"transform": true, "id": true, "class": true, "style": true,
}

// groupMeaninglessAttrs are presentation attributes that are neither
// inherited by a <g>'s children nor have any effect on the group itself;
// SVGO's removeNonInheritableGroupAttrs drops them.
var groupMeaninglessAttrs = map[string]bool{
	"stop-color": true, "stop-opacity": true, "marker-start": true,
	"marker-mid": true, "marker-end": true, "lighting-color": true,
	"flood-color": true, "flood-opacity": true,
}

type removeNonInheritableGroupAttrsPlugin struct{}

func (removeNonInheritableGroupAttrsPlugin) Name() string { return "removeNonInheritableGroupAttrs" }
func (removeNonInheritableGroupAttrsPlugin) Kind() PluginKind { return KindVisitor }
func (removeNonInheritableGroupAttrsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeNonInheritableGroupAttrsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeNonInheritableGroupAttrsVisitor{rep: rep}, rep, nil
}

type removeNonInheritableGroupAttrsVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeNonInheritableGroupAttrsVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Local != "g" {
		return
	}
	before := n.Attrs.Len()
	n.Attrs.RemoveIf(func(a Attr) bool {
		return groupMeaninglessAttrs[a.Name] && !groupAffectingAttrs[a.Name]
	})
	if n.Attrs.Len() != before {
		v.rep.Changed++
	}
}
