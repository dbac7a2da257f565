package vexysvgo

import (
	"fmt"
	"strings"
)

// id/reference plugins (§4.10) live in the root package rather than a
// standalone subpackage: they need to walk the whole Document to build a
// reference graph before rewriting any single node, and Document is a
// root-package type, so a separate package would import it straight back.

// collectIDRefs walks doc and returns every id definition's node plus every
// attribute value that references an id, either via "url(#id)" or via
// "href"/"xlink:href" = "#id".
func collectIDRefs(doc *Document) (defs map[string]*Node, refs map[string]int) {
	defs = map[string]*Node{}
	refs = map[string]int{}
	if doc.Root == nil {
		return
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == KindElement {
			if id, ok := n.Attrs.Get("id"); ok && id != "" {
				defs[id] = n
			}
			for _, a := range n.Attrs.All() {
				v := a.Value.String()
				if id, ok := urlFragment(v); ok {
					refs[id]++
				} else if (a.Name == "href" || strings.HasSuffix(a.Name, ":href")) && strings.HasPrefix(v, "#") {
					refs[v[1:]]++
				}
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(doc.Root)
	return
}

func urlFragment(v string) (string, bool) {
	if !strings.HasPrefix(v, "url(") || !strings.HasSuffix(v, ")") {
		return "", false
	}
	inner := strings.Trim(v[4:len(v)-1], `'" `)
	if !strings.HasPrefix(inner, "#") {
		return "", false
	}
	return inner[1:], true
}

// --- cleanupIds ---

type cleanupIdsPlugin struct{}

func (cleanupIdsPlugin) Name() string     { return "cleanupIds" }
func (cleanupIdsPlugin) Kind() PluginKind { return KindDocument }
func (cleanupIdsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) { return nil, nil, nil }

func (cleanupIdsPlugin) ApplyDocument(doc *Document, params map[string]any) (*Report, error) {
	rep := &Report{}
	_, refs := collectIDRefs(doc)
	minify := paramBool(params, "minify", true)
	remove := paramBool(params, "remove", true)
	preserve := paramStrings(params, "preserve")
	preservePrefixes := paramStrings(params, "preservePrefixes")

	preserveSet := make(map[string]bool, len(preserve))
	for _, id := range preserve {
		preserveSet[id] = true
	}
	isPreserved := func(id string) bool {
		if preserveSet[id] {
			return true
		}
		for _, prefix := range preservePrefixes {
			if prefix != "" && strings.HasPrefix(id, prefix) {
				return true
			}
		}
		return false
	}

	var unused []*Node
	var used []*Node
	doc.Root.WalkElements(func(n *Node) {
		id, ok := n.Attrs.Get("id")
		if !ok || id == "" || isPreserved(id) {
			return
		}
		if refs[id] > 0 {
			used = append(used, n)
		} else {
			unused = append(unused, n)
		}
	})

	if remove {
		for _, n := range unused {
			n.Attrs.Remove("id")
			rep.Changed++
		}
	}

	if minify {
		gen := newIDGenerator()
		for _, n := range used {
			old := n.Attrs.GetDefault("id", "")
			next := gen.next()
			if next == old {
				continue
			}
			renameID(doc, old, next)
			rep.Changed++
		}
	}
	return rep, nil
}

func renameID(doc *Document, old, next string) {
	doc.Root.WalkElements(func(n *Node) {
		if id, ok := n.Attrs.Get("id"); ok && id == old {
			n.Attrs.Set("id", next)
		}
		for _, a := range n.Attrs.All() {
			v := a.Value.String()
			if frag, ok := urlFragment(v); ok && frag == old {
				n.Attrs.Set(a.Name, fmt.Sprintf("url(#%s)", next))
			} else if (a.Name == "href" || strings.HasSuffix(a.Name, ":href")) && v == "#"+old {
				n.Attrs.Set(a.Name, "#"+next)
			}
		}
	})
}

// idGenerator produces the shortest possible sequence of id-safe names:
// a, b, ..., z, A, ..., Z, aa, ab, ...
type idGenerator struct{ n int }

func newIDGenerator() *idGenerator { return &idGenerator{} }

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (g *idGenerator) next() string {
	n := g.n
	g.n++
	if n < len(idAlphabet) {
		return string(idAlphabet[n])
	}
	var b []byte
	base := len(idAlphabet)
	for n >= 0 {
		b = append([]byte{idAlphabet[n%base]}, b...)
		n = n/base - 1
		if n < 0 {
			break
		}
	}
	return string(b)
}

// --- prefixIds ---

type prefixIdsPlugin struct{}

func (prefixIdsPlugin) Name() string     { return "prefixIds" }
func (prefixIdsPlugin) Kind() PluginKind { return KindDocument }
func (prefixIdsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) { return nil, nil, nil }

func (prefixIdsPlugin) ApplyDocument(doc *Document, params map[string]any) (*Report, error) {
	rep := &Report{}
	prefix := paramString(params, "prefix", "")
	if prefix == "" || doc.Root == nil {
		return rep, nil
	}
	var ids []string
	doc.Root.WalkElements(func(n *Node) {
		if id, ok := n.Attrs.Get("id"); ok && id != "" && !strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	})
	for _, id := range ids {
		renameID(doc, id, prefix+id)
		rep.Changed++
	}
	return rep, nil
}

// --- removeUselessDefs ---

type removeUselessDefsPlugin struct{}

func (removeUselessDefsPlugin) Name() string     { return "removeUselessDefs" }
func (removeUselessDefsPlugin) Kind() PluginKind { return KindDocument }
func (removeUselessDefsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) {
	return nil, nil, nil
}

// reusableDefsElems are the <defs> children that only matter when something
// references them by id; removeUselessDefs drops one that has no id or
// whose id nothing references. Other <defs> children are kept.
var reusableDefsElems = map[string]bool{
	"linearGradient": true, "radialGradient": true, "pattern": true,
	"clipPath": true, "mask": true, "marker": true, "symbol": true, "filter": true,
}

func (removeUselessDefsPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	_, refs := collectIDRefs(doc)
	doc.Root.WalkElements(func(defs *Node) {
		if defs.Local != "defs" {
			return
		}
		var kept []*Node
		for _, c := range defs.Children {
			if c.Kind == KindElement && reusableDefsElems[c.Local] {
				if id, ok := c.Attrs.Get("id"); !ok || id == "" || refs[id] == 0 {
					rep.Changed++
					continue
				}
			}
			kept = append(kept, c)
		}
		defs.Children = kept
	})
	return rep, nil
}

// --- reusePaths (SPEC_FULL supplement): replace groups of identical <path>
// elements with a single <path> in <defs> plus <use> references. ---

type reusePathsPlugin struct{}

func (reusePathsPlugin) Name() string     { return "reusePaths" }
func (reusePathsPlugin) Kind() PluginKind { return KindDocument }
func (reusePathsPlugin) NewVisitor(map[string]any) (Visitor, *Report, error) { return nil, nil, nil }

func (reusePathsPlugin) ApplyDocument(doc *Document, _ map[string]any) (*Report, error) {
	rep := &Report{}
	if doc.Root == nil {
		return rep, nil
	}
	byData := map[string][]*Node{}
	doc.Root.WalkElements(func(n *Node) {
		if n.Local != "path" || len(n.Children) != 0 {
			return
		}
		d, ok := n.Attrs.Get("d")
		if !ok || d == "" {
			return
		}
		byData[d] = append(byData[d], n)
	})

	gen := newIDGenerator()
	var defsNode *Node
	for _, c := range doc.Root.Children {
		if c.Kind == KindElement && c.Local == "defs" {
			defsNode = c
			break
		}
	}

	for d, nodes := range byData {
		if len(nodes) < 2 {
			continue
		}
		if defsNode == nil {
			defsNode = NewElement("defs")
			doc.Root.InsertChild(0, defsNode)
		}
		id := "reuse-" + gen.next()
		template := NewElement("path")
		template.Attrs.Set("id", id)
		template.Attrs.Set("d", d)
		defsNode.AppendChild(template)

		for _, n := range nodes {
			n.Local = "use"
			n.Attrs.Remove("d")
			n.Attrs.Set("href", "#"+id)
			rep.Changed++
		}
	}
	return rep, nil
}
