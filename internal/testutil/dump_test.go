package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
)

func TestDumpNodeAttrOrderIndependent(t *testing.T) {
	a := vexysvgo.NewElement("rect")
	a.Attrs.Set("width", "10")
	a.Attrs.Set("height", "5")

	b := vexysvgo.NewElement("rect")
	b.Attrs.Set("height", "5")
	b.Attrs.Set("width", "10")

	assert.Equal(t, DumpNode(a), DumpNode(b))
}

func TestDumpNodeNesting(t *testing.T) {
	root := vexysvgo.NewElement("svg")
	g := vexysvgo.NewElement("g")
	g.AppendChild(vexysvgo.NewText("hi"))
	root.AppendChild(g)

	out := DumpNode(root)
	assert.Contains(t, out, "<svg>")
	assert.Contains(t, out, "<g>")
	assert.Contains(t, out, `#text "hi"`)
}

func TestSdump(t *testing.T) {
	out := Sdump(map[string]any{"floatPrecision": 3})
	assert.Contains(t, out, "floatPrecision")
}
