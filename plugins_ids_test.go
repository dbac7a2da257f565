package vexysvgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanupIdsPreservesListedAndPrefixedIds(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="keep-me"></linearGradient>
    <linearGradient id="icon-star"></linearGradient>
    <linearGradient id="drop-me"></linearGradient>
  </defs>
  <rect fill="url(#keep-me)"/>
  <rect fill="url(#icon-star)"/>
</svg>`
	out := runOnlyPlugin(t, src, "cleanupIds", map[string]any{
		"preserve":         []any{"keep-me"},
		"preservePrefixes": []any{"icon-"},
	})
	assert.Contains(t, out, `id="keep-me"`)
	assert.Contains(t, out, `id="icon-star"`)
	assert.Contains(t, out, `url(#keep-me)`)
	assert.Contains(t, out, `url(#icon-star)`)
	assert.NotContains(t, out, `id="drop-me"`)
}
