package vexysvgo

import (
	"strings"

	"github.com/gwen-lg/vexy-svgo/colorconv"
)

// convertColors (§4.7): canonicalizes every color-valued presentation
// attribute listed in colorAttrs to its shortest representation via
// colorconv. Colors inside "style" attributes and <style> elements are not
// rewritten.

var colorAttrs = map[string]bool{
	"fill": true, "stroke": true, "stop-color": true, "flood-color": true,
	"lighting-color": true, "color": true,
}

type convertColorsPlugin struct{}

func (convertColorsPlugin) Name() string     { return "convertColors" }
func (convertColorsPlugin) Kind() PluginKind { return KindVisitor }
func (convertColorsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (convertColorsPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &convertColorsVisitor{
		rep:          rep,
		shortenHex:   paramBool(params, "shortenHex", true),
		convertCase:  paramBool(params, "convertCase", true),
		currentColor: paramBool(params, "currentColor", false),
	}, rep, nil
}

type convertColorsVisitor struct {
	BaseVisitor
	rep          *Report
	shortenHex   bool
	convertCase  bool
	currentColor bool
}

func (v *convertColorsVisitor) EnterElement(n *Node, path *AncestorPath, _ *Cursor) {
	for _, a := range n.Attrs.All() {
		if !colorAttrs[a.Name] {
			continue
		}
		v.convertOne(n, path, a.Name, a.Value.String())
	}
}

func (v *convertColorsVisitor) convertOne(n *Node, path *AncestorPath, name, raw string) {
	if raw == "" || raw == "none" || raw == "transparent" || raw == "currentColor" {
		return
	}
	if len(raw) > 3 && raw[:3] == "url" {
		return
	}
	if !colorconv.IsColorLike(raw) {
		return
	}
	c, err := colorconv.Parse(raw)
	if err != nil {
		return
	}

	if v.currentColor && name != "color" && v.foldCurrentColor(n, path, name, c) {
		return
	}

	out := colorconv.Format(c)
	if !v.shortenHex {
		out = expandShortHex(out)
	}
	if !v.convertCase && out != raw && strings.EqualFold(out, raw) {
		// Only the hex digit case differs; convertCase=false leaves it as-is.
		return
	}
	if out != raw {
		n.Attrs.Set(name, out)
		v.rep.Changed++
	}
}

// foldCurrentColor replaces n's attribute named name with the literal
// "currentColor" when it matches the inherited "color" value, so the
// element tracks whatever color its context resolves to instead of
// repeating it. It reports whether it made the substitution, comparing
// parsed colors rather than raw text so "#f00" and "red" still match.
func (v *convertColorsVisitor) foldCurrentColor(n *Node, path *AncestorPath, name string, c colorconv.RGB) bool {
	inherited, ok := path.Attr("color")
	if !ok || !colorconv.IsColorLike(inherited) {
		return false
	}
	ic, err := colorconv.Parse(inherited)
	if err != nil || ic != c {
		return false
	}
	n.Attrs.Set(name, "currentColor")
	v.rep.Changed++
	return true
}

// expandShortHex undoes colorconv.Format's 3/4-digit hex shortening, for
// callers that asked for shortenHex=false.
func expandShortHex(s string) string {
	if (len(s) != 4 && len(s) != 5) || s[0] != '#' {
		return s
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, r := range s[1:] {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return b.String()
}
