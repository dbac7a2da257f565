package vexysvgo

import (
	"strconv"

	"github.com/gwen-lg/vexy-svgo/pathdata"
	"github.com/gwen-lg/vexy-svgo/transformconv"
)

func parseFloatAttr(n *Node, name string, def float64) float64 {
	v, ok := n.Attrs.Get(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// --- convertShapeToPath (§4.8) ---

type convertShapeToPathPlugin struct{}

func (convertShapeToPathPlugin) Name() string     { return "convertShapeToPath" }
func (convertShapeToPathPlugin) Kind() PluginKind { return KindVisitor }
func (convertShapeToPathPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (convertShapeToPathPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &convertShapeToPathVisitor{
		rep:          rep,
		convertArcs:  paramBool(params, "convertArcs", false),
	}, rep, nil
}

type convertShapeToPathVisitor struct {
	BaseVisitor
	rep         *Report
	convertArcs bool
}

func (v *convertShapeToPathVisitor) EnterElement(n *Node, _ *AncestorPath, c *Cursor) {
	var segs []pathdata.Segment
	switch n.Local {
	case "rect":
		segs = pathdata.FromRect(pathdata.Rect{
			X: parseFloatAttr(n, "x", 0), Y: parseFloatAttr(n, "y", 0),
			Width: parseFloatAttr(n, "width", 0), Height: parseFloatAttr(n, "height", 0),
			RX: parseFloatAttrSigned(n, "rx"), RY: parseFloatAttrSigned(n, "ry"),
		})
		n.Attrs.Remove("x")
		n.Attrs.Remove("y")
		n.Attrs.Remove("width")
		n.Attrs.Remove("height")
		n.Attrs.Remove("rx")
		n.Attrs.Remove("ry")
	case "line":
		segs = pathdata.FromLine(
			parseFloatAttr(n, "x1", 0), parseFloatAttr(n, "y1", 0),
			parseFloatAttr(n, "x2", 0), parseFloatAttr(n, "y2", 0),
		)
		n.Attrs.Remove("x1")
		n.Attrs.Remove("y1")
		n.Attrs.Remove("x2")
		n.Attrs.Remove("y2")
	case "polyline", "polygon":
		pts, err := pathdata.ParsePoints(n.Attrs.GetDefault("points", ""))
		if err != nil {
			return
		}
		segs, err = pathdata.FromPoly(pts, n.Local == "polygon")
		if err != nil {
			return
		}
		n.Attrs.Remove("points")
	case "circle":
		if !v.convertArcs {
			return
		}
		segs = pathdata.FromCircle(parseFloatAttr(n, "cx", 0), parseFloatAttr(n, "cy", 0), parseFloatAttr(n, "r", 0))
		n.Attrs.Remove("cx")
		n.Attrs.Remove("cy")
		n.Attrs.Remove("r")
	case "ellipse":
		if !v.convertArcs {
			return
		}
		segs = pathdata.FromEllipse(parseFloatAttr(n, "cx", 0), parseFloatAttr(n, "cy", 0),
			parseFloatAttr(n, "rx", 0), parseFloatAttr(n, "ry", 0))
		n.Attrs.Remove("cx")
		n.Attrs.Remove("cy")
		n.Attrs.Remove("rx")
		n.Attrs.Remove("ry")
	default:
		return
	}
	n.Local = "path"
	d := pathdata.Format(segs, pathdata.Options{FloatPrecision: 3})
	n.Attrs.Set("d", d)
	v.rep.Changed++
}

func parseFloatAttrSigned(n *Node, name string) float64 {
	v, ok := n.Attrs.Get(name)
	if !ok {
		return -1
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return -1
	}
	return f
}

// --- convertEllipseToCircle ---

type convertEllipseToCirclePlugin struct{}

func (convertEllipseToCirclePlugin) Name() string     { return "convertEllipseToCircle" }
func (convertEllipseToCirclePlugin) Kind() PluginKind { return KindVisitor }
func (convertEllipseToCirclePlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (convertEllipseToCirclePlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &convertEllipseToCircleVisitor{rep: rep}, rep, nil
}

type convertEllipseToCircleVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *convertEllipseToCircleVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Local != "ellipse" {
		return
	}
	rx, rxOK := n.Attrs.Get("rx")
	ry, ryOK := n.Attrs.Get("ry")
	auto := rx == "auto" || ry == "auto"
	if !auto && (!rxOK || !ryOK || rx != ry) {
		return
	}
	n.Local = "circle"
	r := rx
	if rx == "auto" {
		r = ry
	}
	n.Attrs.Remove("rx")
	n.Attrs.Remove("ry")
	n.Attrs.Set("r", r)
	v.rep.Changed++
}

// --- convertPathData (§4.8) ---

type convertPathDataPlugin struct{}

func (convertPathDataPlugin) Name() string     { return "convertPathData" }
func (convertPathDataPlugin) Kind() PluginKind { return KindVisitor }
func (convertPathDataPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (convertPathDataPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &convertPathDataVisitor{
		rep:       rep,
		precision: paramInt(params, "floatPrecision", 3),
	}, rep, nil
}

type convertPathDataVisitor struct {
	BaseVisitor
	rep       *Report
	precision int
}

func (v *convertPathDataVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Local != "path" {
		return
	}
	d, ok := n.Attrs.Get("d")
	if !ok {
		return
	}
	out, err := pathdata.Optimize(d, pathdata.Options{FloatPrecision: v.precision})
	if err != nil {
		return
	}
	if out != d {
		n.Attrs.Set("d", out)
		v.rep.Changed++
	}
}

// --- convertTransform (§4.9) ---

type convertTransformPlugin struct{}

func (convertTransformPlugin) Name() string     { return "convertTransform" }
func (convertTransformPlugin) Kind() PluginKind { return KindVisitor }
func (convertTransformPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (convertTransformPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &convertTransformVisitor{
		rep:       rep,
		precision: paramInt(params, "floatPrecision", 3),
	}, rep, nil
}

type convertTransformVisitor struct {
	BaseVisitor
	rep       *Report
	precision int
}

func (v *convertTransformVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	raw, ok := n.Attrs.Get("transform")
	if !ok {
		return
	}
	m, err := transformconv.Parse(raw)
	if err != nil {
		return
	}
	if m.IsIdentity() {
		n.Attrs.Remove("transform")
		v.rep.Changed++
		return
	}
	out := transformconv.Format(m, v.precision)
	if out != raw {
		n.Attrs.Set("transform", out)
		v.rep.Changed++
	}
}

// --- mergePaths (§4.8 supplement) ---

type mergePathsPlugin struct{}

func (mergePathsPlugin) Name() string     { return "mergePaths" }
func (mergePathsPlugin) Kind() PluginKind { return KindVisitor }
func (mergePathsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (mergePathsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &mergePathsVisitor{rep: rep}, rep, nil
}

type mergePathsVisitor struct {
	BaseVisitor
	rep *Report
}

// ExitElement merges consecutive sibling <path> elements that share every
// presentation attribute except "d" into a single path, since path data
// simply concatenates for non-overlapping fill rendering.
func (v *mergePathsVisitor) ExitElement(n *Node, _ *AncestorPath) {
	if len(n.Children) < 2 {
		return
	}
	out := n.Children[:0:0]
	var prevPath *Node
	for _, c := range n.Children {
		if c.Kind == KindElement && c.Local == "path" && prevPath != nil && prevPath.Attrs.Equal(&c.Attrs, "d") {
			d1 := prevPath.Attrs.GetDefault("d", "")
			d2 := c.Attrs.GetDefault("d", "")
			prevPath.Attrs.Set("d", d1+d2)
			v.rep.Changed++
			continue
		}
		out = append(out, c)
		if c.Kind == KindElement && c.Local == "path" {
			prevPath = c
		} else {
			prevPath = nil
		}
	}
	n.Children = out
}
