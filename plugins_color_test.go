package vexysvgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertColorsFoldsCurrentColor(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g color="#ff0000"><rect fill="#ff0000"/></g></svg>`
	out := runOnlyPlugin(t, src, "convertColors", map[string]any{"currentColor": true})
	assert.Contains(t, out, `fill="currentColor"`)
}

func TestConvertColorsLeavesCurrentColorDisabledByDefault(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g color="#ff0000"><rect fill="#ff0000"/></g></svg>`
	out := runOnlyPlugin(t, src, "convertColors", nil)
	assert.NotContains(t, out, `fill="currentColor"`)
	assert.Contains(t, out, `fill="red"`)
}
