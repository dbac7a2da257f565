package vexysvgo

import (
	"strconv"
	"strings"
)

// Remaining §4.5/§4.9 cleanup plugins: numeric formatting, attribute
// whitespace trimming, viewBox/dimension reconciliation, and namespace
// pruning.

// --- cleanupAttrs ---

type cleanupAttrsPlugin struct{}

func (cleanupAttrsPlugin) Name() string     { return "cleanupAttrs" }
func (cleanupAttrsPlugin) Kind() PluginKind { return KindVisitor }
func (cleanupAttrsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (cleanupAttrsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &cleanupAttrsVisitor{rep: rep}, rep, nil
}

type cleanupAttrsVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *cleanupAttrsVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	for _, a := range n.Attrs.All() {
		raw := a.Value.String()
		collapsed := strings.Join(strings.Fields(raw), " ")
		trimmed := strings.TrimSpace(collapsed)
		if trimmed != raw {
			n.Attrs.Set(a.Name, trimmed)
			v.rep.Changed++
		}
	}
}

// --- cleanupNumericValues ---

type cleanupNumericValuesPlugin struct{}

func (cleanupNumericValuesPlugin) Name() string     { return "cleanupNumericValues" }
func (cleanupNumericValuesPlugin) Kind() PluginKind { return KindVisitor }
func (cleanupNumericValuesPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (cleanupNumericValuesPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &cleanupNumericValuesVisitor{
		rep:       rep,
		precision: paramInt(params, "floatPrecision", 3),
	}, rep, nil
}

var numericAttrs = map[string]bool{
	"x": true, "y": true, "width": true, "height": true, "cx": true, "cy": true,
	"r": true, "rx": true, "ry": true, "x1": true, "y1": true, "x2": true, "y2": true,
	"stroke-width": true, "opacity": true, "fill-opacity": true, "stroke-opacity": true,
}

type cleanupNumericValuesVisitor struct {
	BaseVisitor
	rep       *Report
	precision int
}

func (v *cleanupNumericValuesVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	for _, a := range n.Attrs.All() {
		if !numericAttrs[a.Name] {
			continue
		}
		raw := a.Value.String()
		out, ok := roundNumeric(raw, v.precision)
		if ok && out != raw {
			n.Attrs.Set(a.Name, out)
			v.rep.Changed++
		}
	}
}

func roundNumeric(s string, precision int) (string, bool) {
	unit := ""
	numPart := s
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == '-' || s[i] == '+' {
			numPart = s[:i+1]
			unit = s[i+1:]
			break
		}
	}
	f, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return s, false
	}
	out := strconv.FormatFloat(f, 'f', precision, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	if out == "" || out == "-0" {
		out = "0"
	}
	return out + unit, true
}

// --- removeUselessStrokeAndFill ---

type removeUselessStrokeAndFillPlugin struct{}

func (removeUselessStrokeAndFillPlugin) Name() string { return "removeUselessStrokeAndFill" }
func (removeUselessStrokeAndFillPlugin) Kind() PluginKind { return KindVisitor }
func (removeUselessStrokeAndFillPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeUselessStrokeAndFillPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeUselessStrokeAndFillVisitor{rep: rep}, rep, nil
}

type removeUselessStrokeAndFillVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeUselessStrokeAndFillVisitor) EnterElement(n *Node, path *AncestorPath, _ *Cursor) {
	stroke, hasStroke := n.Attrs.Get("stroke")
	if !hasStroke {
		stroke, hasStroke = path.Attr("stroke")
	}
	if hasStroke && stroke != "none" {
		width, hasWidth := n.Attrs.Get("stroke-width")
		if hasWidth && width == "0" {
			n.Attrs.Set("stroke", "none")
			n.Attrs.Remove("stroke-width")
			n.Attrs.RemoveIf(func(a Attr) bool {
				return strings.HasPrefix(a.Name, "stroke-") && a.Name != "stroke"
			})
			v.rep.Changed++
		}
	}
}

// --- cleanupEnableBackground ---

type cleanupEnableBackgroundPlugin struct{}

func (cleanupEnableBackgroundPlugin) Name() string { return "cleanupEnableBackground" }
func (cleanupEnableBackgroundPlugin) Kind() PluginKind { return KindVisitor }
func (cleanupEnableBackgroundPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (cleanupEnableBackgroundPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &cleanupEnableBackgroundVisitor{rep: rep}, rep, nil
}

type cleanupEnableBackgroundVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *cleanupEnableBackgroundVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Local != "svg" {
		return
	}
	// enable-background is only meaningful alongside a filter using
	// BackgroundImage/BackgroundAlpha. Filters are not inspected here, so the
	// attribute is removed from every <svg> element whether or not such a
	// filter uses it.
	if n.Attrs.Remove("enable-background") {
		v.rep.Changed++
	}
}

// --- removeEmptyText ---

type removeEmptyTextPlugin struct{}

func (removeEmptyTextPlugin) Name() string     { return "removeEmptyText" }
func (removeEmptyTextPlugin) Kind() PluginKind { return KindVisitor }
func (removeEmptyTextPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeEmptyTextPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeEmptyTextVisitor{rep: rep}, rep, nil
}

type removeEmptyTextVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeEmptyTextVisitor) EnterText(n *Node, path *AncestorPath, c *Cursor) {
	parent := path.Parent()
	if parent != nil && (parent.Local == "text" || parent.Local == "tspan" || parent.Local == "style") {
		return
	}
	if n.IsWhitespace() || n.Content.Len() == 0 {
		c.Remove()
		v.rep.Changed++
	}
}

// --- removeEmptyAttrs ---

type removeEmptyAttrsPlugin struct{}

func (removeEmptyAttrsPlugin) Name() string     { return "removeEmptyAttrs" }
func (removeEmptyAttrsPlugin) Kind() PluginKind { return KindVisitor }
func (removeEmptyAttrsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeEmptyAttrsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &removeEmptyAttrsVisitor{rep: rep}, rep, nil
}

type removeEmptyAttrsVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *removeEmptyAttrsVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	before := n.Attrs.Len()
	n.Attrs.RemoveIf(func(a Attr) bool {
		return a.Name != "id" && a.Value.String() == ""
	})
	if n.Attrs.Len() != before {
		v.rep.Changed++
	}
}

// --- removeUnusedNS ---

type removeUnusedNSPlugin struct{}

func (removeUnusedNSPlugin) Name() string     { return "removeUnusedNS" }
func (removeUnusedNSPlugin) Kind() PluginKind { return KindDocument }
func (removeUnusedNSPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	return nil, nil, nil
}
func (removeUnusedNSPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	usedPrefixes := map[string]bool{}
	doc.Root.WalkElements(func(n *Node) {
		if n.Prefix != "" {
			usedPrefixes[n.Prefix] = true
		}
		for _, a := range n.Attrs.All() {
			if prefix, _, ok := splitQName(a.Name); ok && prefix != "xmlns" {
				usedPrefixes[prefix] = true
			}
		}
	})
	n := doc.Root
	for _, a := range n.Attrs.All() {
		if prefix, local, ok := splitQName(a.Name); ok && prefix == "xmlns" {
			if !usedPrefixes[local] {
				n.Attrs.Remove(a.Name)
				rep.Changed++
			}
		}
	}
	return rep, nil
}

// --- removeViewBox ---

type removeViewBoxPlugin struct{}

func (removeViewBoxPlugin) Name() string     { return "removeViewBox" }
func (removeViewBoxPlugin) Kind() PluginKind { return KindDocument }
func (removeViewBoxPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	return nil, nil, nil
}
func (removeViewBoxPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	vb, ok := doc.Root.Attrs.Get("viewBox")
	if !ok {
		return rep, nil
	}
	fields := strings.Fields(strings.ReplaceAll(vb, ",", " "))
	if len(fields) != 4 {
		return rep, nil
	}
	w, wOK := doc.Root.Attrs.Get("width")
	h, hOK := doc.Root.Attrs.Get("height")
	if !wOK || !hOK {
		return rep, nil
	}
	if fields[0] == "0" && fields[1] == "0" && fields[2] == w && fields[3] == h {
		doc.Root.Attrs.Remove("viewBox")
		rep.Changed = 1
	}
	return rep, nil
}

// --- removeDimensions ---

type removeDimensionsPlugin struct{}

func (removeDimensionsPlugin) Name() string     { return "removeDimensions" }
func (removeDimensionsPlugin) Kind() PluginKind { return KindDocument }
func (removeDimensionsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	return nil, nil, nil
}
func (removeDimensionsPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil || !doc.Root.Attrs.Has("viewBox") {
		return rep, nil
	}
	if doc.Root.Attrs.Remove("width") {
		rep.Changed++
	}
	if doc.Root.Attrs.Remove("height") {
		rep.Changed++
	}
	return rep, nil
}
