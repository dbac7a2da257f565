// Package testutil provides helpers for asserting against Document/Node
// trees in tests: a stable textual dump used for failure messages and
// golden-file comparisons, since go-spew's default struct dump follows
// unexported parent pointers and produces unusable, cyclic-looking output.
package testutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
)

// spewConfig omits pointer addresses and capacities and sorts map keys so
// dumps of leaf values (e.g. params maps) stay deterministic across runs.
var spewConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpNode renders n and its descendants as an indented outline, attributes
// sorted by name for determinism regardless of parse/attribute order.
func DumpNode(n *vexysvgo.Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *vexysvgo.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case vexysvgo.KindElement:
		fmt.Fprintf(b, "%s<%s%s>\n", indent, n.Name(), dumpAttrs(n))
	case vexysvgo.KindText:
		fmt.Fprintf(b, "%s#text %q\n", indent, n.Content.String())
	case vexysvgo.KindComment:
		fmt.Fprintf(b, "%s#comment %q\n", indent, n.Content.String())
	case vexysvgo.KindCData:
		fmt.Fprintf(b, "%s#cdata %q\n", indent, n.Content.String())
	case vexysvgo.KindPI:
		fmt.Fprintf(b, "%s#pi %s %q\n", indent, n.PITarget, n.PIData.String())
	case vexysvgo.KindDoctype:
		fmt.Fprintf(b, "%s#doctype %s\n", indent, n.DoctypeDecl.String())
	default:
		fmt.Fprintf(b, "%s#node(kind=%d)\n", indent, n.Kind)
	}
	for _, c := range n.Children {
		dumpNode(b, c, depth+1)
	}
}

func dumpAttrs(n *vexysvgo.Node) string {
	all := n.Attrs.All()
	if len(all) == 0 {
		return ""
	}
	names := make([]string, len(all))
	values := make(map[string]string, len(all))
	for i, a := range all {
		names[i] = a.Name
		values[a.Name] = a.Value.String()
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%q", name, values[name])
	}
	return b.String()
}

// DumpDocument renders a whole document: preamble, root, and trailer.
func DumpDocument(doc *vexysvgo.Document) string {
	var b strings.Builder
	for _, n := range doc.Preamble {
		dumpNode(&b, n, 0)
	}
	dumpNode(&b, doc.Root, 0)
	for _, n := range doc.Trailer {
		dumpNode(&b, n, 0)
	}
	return b.String()
}

// Sdump renders an arbitrary value (plugin params, reports, diagnostics)
// for use in test failure messages.
func Sdump(v any) string {
	return spewConfig.Sdump(v)
}
