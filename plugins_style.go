package vexysvgo

import (
	"strings"

	"github.com/gwen-lg/vexy-svgo/cssengine"
)

// Plugins covering §4.6: collecting/inlining/minifying <style> blocks and
// the "style" presentation attribute, wired to cssengine for declaration
// parsing and selector matching.

// --- mergeStyles ---

type mergeStylesPlugin struct{}

func (mergeStylesPlugin) Name() string     { return "mergeStyles" }
func (mergeStylesPlugin) Kind() PluginKind { return KindDocument }
func (mergeStylesPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) { return nil, nil, nil }

func (mergeStylesPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	var first *Node
	var bodies []string
	var toRemove []*Node
	doc.Root.WalkElements(func(n *Node) {
		if n.Local != "style" {
			return
		}
		if first == nil {
			first = n
		} else {
			toRemove = append(toRemove, n)
		}
		bodies = append(bodies, textContent(n))
	})
	if first == nil || len(bodies) < 2 {
		return rep, nil
	}
	merged := strings.Join(bodies, "\n")
	first.Children = nil
	first.AppendChild(NewText(merged))
	for _, n := range toRemove {
		if p := n.Parent(); p != nil {
			if idx := p.IndexOfChild(n); idx >= 0 {
				p.RemoveChildAt(idx)
			}
		}
	}
	rep.Changed = len(toRemove)
	return rep, nil
}

// --- inlineStyles ---

type inlineStylesPlugin struct{}

func (inlineStylesPlugin) Name() string     { return "inlineStyles" }
func (inlineStylesPlugin) Kind() PluginKind { return KindDocument }
func (inlineStylesPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) { return nil, nil, nil }

type styleRule struct {
	selectors []string
	body      string
}

// parseStyleRules splits a <style> body into selector-list/body pairs.
// Style rule blocks never nest, so a simple top-level '}' split suffices.
func parseStyleRules(css string) []styleRule {
	var rules []styleRule
	for _, chunk := range strings.Split(css, "}") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		open := strings.IndexByte(chunk, '{')
		if open < 0 {
			continue
		}
		selPart := strings.TrimSpace(chunk[:open])
		body := strings.TrimSpace(chunk[open+1:])
		if selPart == "" {
			continue
		}
		var sels []string
		for _, s := range strings.Split(selPart, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				sels = append(sels, s)
			}
		}
		rules = append(rules, styleRule{selectors: sels, body: body})
	}
	return rules
}

// inlinableSelector rejects selectors using pseudo-classes other than
// :not(), since the selector engine treats unknown pseudo-classes as no
// constraint at all, which would silently over-match (e.g. "a:hover").
func inlinableSelector(s string) bool {
	rest := s
	for {
		idx := strings.IndexByte(rest, ':')
		if idx < 0 {
			return true
		}
		if strings.HasPrefix(rest[idx:], ":not(") {
			rest = rest[idx+5:]
			continue
		}
		return false
	}
}

// cascadeWinner tracks, for one (element, property) pair, the declaration
// currently winning the CSS cascade: !important beats normal declarations,
// then higher specificity wins, then later source order wins.
type cascadeWinner struct {
	specificity [3]int
	important   bool
	order       int
	value       string
}

// beats reports whether a candidate declaration with the given importance,
// specificity and source order displaces the current winner w.
func (w cascadeWinner) beats(important bool, specificity [3]int, order int) bool {
	if important != w.important {
		return important
	}
	for i := range specificity {
		if specificity[i] != w.specificity[i] {
			return specificity[i] > w.specificity[i]
		}
	}
	return order > w.order
}

type styleNodeResult struct {
	node      *Node
	remaining []string
}

func (inlineStylesPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	var styleNodes []*Node
	doc.Root.WalkElements(func(n *Node) {
		if n.Local == "style" {
			styleNodes = append(styleNodes, n)
		}
	})

	winners := map[*Node]map[string]cascadeWinner{}
	order := 0
	var results []styleNodeResult

	for _, sn := range styleNodes {
		rules := parseStyleRules(textContent(sn))
		var remaining []string
		for _, rule := range rules {
			var keptSelectors []string
			decls := cssengine.ParseDeclarations(rule.body)
			for _, selStr := range rule.selectors {
				if !inlinableSelector(selStr) {
					keptSelectors = append(keptSelectors, selStr)
					continue
				}
				sel, err := cssengine.ParseSelector(selStr)
				if err != nil {
					keptSelectors = append(keptSelectors, selStr)
					continue
				}
				order++
				ids, classesAttrs, types := sel.Specificity()
				specificity := [3]int{ids, classesAttrs, types}
				matchCount := 0
				var walk func(n *Node, path *AncestorPath)
				walk = func(n *Node, path *AncestorPath) {
					if n.Kind == KindElement {
						if sel.Match(asElem(n, path)) {
							matchCount++
							props := winners[n]
							if props == nil {
								props = map[string]cascadeWinner{}
								winners[n] = props
							}
							for j, d := range decls {
								declOrder := order*1000 + j
								cur, ok := props[d.Property]
								if ok && !cur.beats(d.Important, specificity, declOrder) {
									continue
								}
								props[d.Property] = cascadeWinner{
									specificity: specificity,
									important:   d.Important,
									order:       declOrder,
									value:       d.Value,
								}
							}
						}
						for _, c := range n.Children {
							walk(c, path.push(n))
						}
					}
				}
				walk(doc.Root, &AncestorPath{})
				if matchCount == 0 {
					keptSelectors = append(keptSelectors, selStr)
				}
			}
			if len(keptSelectors) > 0 {
				remaining = append(remaining, strings.Join(keptSelectors, ", ")+" {"+rule.body+"}")
			}
		}
		results = append(results, styleNodeResult{node: sn, remaining: remaining})
	}

	for n, props := range winners {
		for prop, w := range props {
			n.Attrs.Set(prop, w.value)
			rep.Changed++
		}
	}

	for _, res := range results {
		if len(res.remaining) == 0 {
			if p := res.node.Parent(); p != nil {
				if idx := p.IndexOfChild(res.node); idx >= 0 {
					p.RemoveChildAt(idx)
				}
			}
		} else {
			res.node.Children = nil
			res.node.AppendChild(NewText(strings.Join(res.remaining, "\n")))
		}
	}
	return rep, nil
}

// --- minifyStyles ---

type minifyStylesPlugin struct{}

func (minifyStylesPlugin) Name() string     { return "minifyStyles" }
func (minifyStylesPlugin) Kind() PluginKind { return KindVisitor }
func (minifyStylesPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) { return nil, nil }
func (minifyStylesPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &minifyStylesVisitor{rep: rep}, rep, nil
}

type minifyStylesVisitor struct {
	BaseVisitor
	rep *Report
}

func (v *minifyStylesVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	if n.Local != "style" {
		return
	}
	body := textContent(n)
	decls := cssengine.ParseDeclarations(body)
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString("!important")
		}
	}
	minified := b.String()
	if minified == body {
		return
	}
	n.Children = nil
	n.AppendChild(NewText(minified))
	v.rep.Changed++
}

// --- convertStyleToAttrs ---

type convertStyleToAttrsPlugin struct{}

func (convertStyleToAttrsPlugin) Name() string     { return "convertStyleToAttrs" }
func (convertStyleToAttrsPlugin) Kind() PluginKind { return KindVisitor }
func (convertStyleToAttrsPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (convertStyleToAttrsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	rep := &Report{}
	return &convertStyleToAttrsVisitor{rep: rep}, rep, nil
}

type convertStyleToAttrsVisitor struct {
	BaseVisitor
	rep *Report
}

// EnterElement moves every non-!important declaration from a "style"
// attribute onto its own presentation attribute, except custom properties
// (names containing "--"), which stay in "style" along with the
// !important ones. This is done since an explicit
// attribute and an unimportant inline style have identical precedence
// once the style is gone, but the attribute form is usually shorter.
func (v *convertStyleToAttrsVisitor) EnterElement(n *Node, _ *AncestorPath, _ *Cursor) {
	raw, ok := n.Attrs.Get("style")
	if !ok {
		return
	}
	decls := cssengine.ParseDeclarations(raw)
	var kept []cssengine.Declaration
	for _, d := range decls {
		if d.Important || strings.Contains(d.Property, "--") {
			kept = append(kept, d)
			continue
		}
		n.Attrs.Set(d.Property, d.Value)
		v.rep.Changed++
	}
	if len(kept) == 0 {
		n.Attrs.Remove("style")
		return
	}
	var b strings.Builder
	for i, d := range kept {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString("!important")
		}
	}
	n.Attrs.Set("style", b.String())
}

// --- removeAttributesBySelector (§4.6 supplement) ---

type removeAttributesBySelectorPlugin struct{}

func (removeAttributesBySelectorPlugin) Name() string { return "removeAttributesBySelector" }
func (removeAttributesBySelectorPlugin) Kind() PluginKind { return KindVisitor }
func (removeAttributesBySelectorPlugin) ApplyDocument(*Document, map[string]any) (*Report, error) {
	return nil, nil
}
func (removeAttributesBySelectorPlugin) NewVisitor(params map[string]any) (Visitor, *Report, error) {
	selStr := paramString(params, "selector", "")
	attrs := paramStrings(params, "attributes")
	rep := &Report{}
	if selStr == "" || len(attrs) == 0 {
		return &BaseVisitor{}, rep, nil
	}
	sel, err := cssengine.ParseSelector(selStr)
	if err != nil {
		return nil, nil, err
	}
	return &removeAttributesBySelectorVisitor{rep: rep, sel: sel, attrs: attrs}, rep, nil
}

type removeAttributesBySelectorVisitor struct {
	BaseVisitor
	rep   *Report
	sel   cssengine.Selector
	attrs []string
}

func (v *removeAttributesBySelectorVisitor) EnterElement(n *Node, path *AncestorPath, _ *Cursor) {
	if !v.sel.Match(asElem(n, path)) {
		return
	}
	for _, a := range v.attrs {
		if n.Attrs.Remove(a) {
			v.rep.Changed++
		}
	}
}

// --- addAttributesToSVGElement ---

type addAttributesToSVGElementPlugin struct{}

func (addAttributesToSVGElementPlugin) Name() string { return "addAttributesToSVGElement" }
func (addAttributesToSVGElementPlugin) Kind() PluginKind { return KindDocument }
func (addAttributesToSVGElementPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	return nil, nil, nil
}
func (addAttributesToSVGElementPlugin) ApplyDocument(doc *Document, params map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	if attrs, ok := params["attributes"].(map[string]any); ok {
		for name, v := range attrs {
			if s, ok := v.(string); ok {
				doc.Root.Attrs.Set(name, s)
				rep.Changed++
			}
		}
	}
	return rep, nil
}

// --- addClassesToSVGElement ---

type addClassesToSVGElementPlugin struct{}

func (addClassesToSVGElementPlugin) Name() string { return "addClassesToSVGElement" }
func (addClassesToSVGElementPlugin) Kind() PluginKind { return KindDocument }
func (addClassesToSVGElementPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	return nil, nil, nil
}
func (addClassesToSVGElementPlugin) ApplyDocument(doc *Document, params map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	classes := paramStrings(params, "classNames")
	if len(classes) == 0 {
		return rep, nil
	}
	existing := strings.Fields(doc.Root.Attrs.GetDefault("class", ""))
	have := map[string]bool{}
	for _, c := range existing {
		have[c] = true
	}
	for _, c := range classes {
		if !have[c] {
			existing = append(existing, c)
			rep.Changed++
		}
	}
	if rep.Changed > 0 {
		doc.Root.Attrs.Set("class", strings.Join(existing, " "))
	}
	return rep, nil
}
