package cssengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations_Basic(t *testing.T) {
	decls := ParseDeclarations("fill: blue; stroke : red !important ;")
	require.Len(t, decls, 2)
	assert.Equal(t, "fill", decls[0].Property)
	assert.Equal(t, "blue", decls[0].Value)
	assert.False(t, decls[0].Important)
	assert.Equal(t, "stroke", decls[1].Property)
	assert.Equal(t, "red", decls[1].Value)
	assert.True(t, decls[1].Important)
}

func TestParseDeclarations_SkipsSemicolonInsideFunction(t *testing.T) {
	decls := ParseDeclarations(`background: url(data:image/png;base64,AAAA);`)
	require.Len(t, decls, 1)
	assert.Equal(t, "background", decls[0].Property)
	assert.Contains(t, decls[0].Value, "base64,AAAA")
}

type fakeElem struct {
	tag    string
	attrs  map[string]string
	parent *fakeElem
}

func (e *fakeElem) TagName() string { return e.tag }
func (e *fakeElem) AttrValue(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}
func (e *fakeElem) ParentElem() (Elem, bool) {
	if e.parent == nil {
		return nil, false
	}
	return e.parent, true
}

func TestSelector_ClassAndDescendant(t *testing.T) {
	root := &fakeElem{tag: "svg", attrs: map[string]string{}}
	g := &fakeElem{tag: "g", attrs: map[string]string{"class": "a b"}, parent: root}
	leaf := &fakeElem{tag: "rect", attrs: map[string]string{"id": "x"}, parent: g}

	sel, err := ParseSelector("g.a rect")
	require.NoError(t, err)
	assert.True(t, sel.Match(leaf))

	sel2, err := ParseSelector("g.c rect")
	require.NoError(t, err)
	assert.False(t, sel2.Match(leaf))
}

func TestSelector_ChildCombinatorAndNot(t *testing.T) {
	root := &fakeElem{tag: "svg"}
	leaf := &fakeElem{tag: "rect", attrs: map[string]string{"class": "keep"}, parent: root}

	sel, err := ParseSelector("svg > rect:not(.skip)")
	require.NoError(t, err)
	assert.True(t, sel.Match(leaf))

	leaf.attrs["class"] = "skip"
	assert.False(t, sel.Match(leaf))
}

func TestSelector_AttributeOperators(t *testing.T) {
	el := &fakeElem{tag: "a", attrs: map[string]string{"href": "https://example.com/page"}}
	sel, err := ParseSelector(`a[href^="https://"]`)
	require.NoError(t, err)
	assert.True(t, sel.Match(el))
}
