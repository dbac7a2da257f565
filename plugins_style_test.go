package vexysvgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runOnlyPlugin(t *testing.T, src, name string, params map[string]any) string {
	t.Helper()
	doc, err := ParseString(src)
	require.NoError(t, err)
	reg := NewDefaultRegistry()
	cfg := Config{JS2SVG: DefaultJS2SVG(), Plugins: []PluginDirective{{Name: name, Params: params}}}
	out, _, err := Run(context.Background(), doc, cfg, reg)
	require.NoError(t, err)
	return out
}

func TestInlineStylesHigherSpecificityWins(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><style>#b{fill:red}.a{fill:blue}</style><rect id="b" class="a"/></svg>`
	out := runOnlyPlugin(t, src, "inlineStyles", nil)
	assert.Contains(t, out, `fill="red"`)
	assert.NotContains(t, out, `fill="blue"`)
}

func TestInlineStylesImportantWinsOverSpecificity(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><style>.a{fill:blue!important}</style><rect class="a" fill="red"/></svg>`
	out := runOnlyPlugin(t, src, "inlineStyles", nil)
	assert.Contains(t, out, `fill="blue"`)
}

func TestInlineStylesLaterRuleWinsOnEqualSpecificity(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><style>.a{fill:blue}.a{fill:green}</style><rect class="a"/></svg>`
	out := runOnlyPlugin(t, src, "inlineStyles", nil)
	assert.Contains(t, out, `fill="green"`)
}
