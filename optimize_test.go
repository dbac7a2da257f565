package vexysvgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">
  <!-- a comment -->
  <desc>Created with Sketch.</desc>
  <metadata>unused</metadata>
  <defs>
    <linearGradient id="unused-gradient"></linearGradient>
  </defs>
  <g id="group1" fill="#ff0000">
    <rect x="0" y="0" width="10.0000" height="10.0000" fill="#ff0000"></rect>
    <rect x="20" y="0" width="10" height="10" fill="#ff0000"></rect>
  </g>
  <circle cx="50" cy="50" r="0" />
</svg>
`

func optimizeDefault(t *testing.T, src string) (string, *OptimizeReport) {
	t.Helper()
	doc, err := ParseString(src)
	require.NoError(t, err)
	reg := NewDefaultRegistry()
	out, report, err := Run(context.Background(), doc, DefaultConfig(), reg)
	require.NoError(t, err)
	return out, report
}

func TestRunDefaultPresetShrinksAndWellFormed(t *testing.T) {
	out, report := optimizeDefault(t, sampleSVG)

	assert.Less(t, len(out), len(sampleSVG))
	assert.Greater(t, report.BytesBefore, report.BytesAfter)

	reparsed, err := ParseString(out)
	require.NoError(t, err)
	assert.NotNil(t, reparsed.Root)
	assert.Equal(t, "svg", reparsed.Root.Local)
}

func TestRunDefaultPresetRemovesCruft(t *testing.T) {
	out, _ := optimizeDefault(t, sampleSVG)

	assert.NotContains(t, out, "<?xml")
	assert.NotContains(t, out, "Sketch")
	assert.NotContains(t, out, "a comment")
	assert.NotContains(t, out, "<metadata")
	assert.NotContains(t, out, "unused-gradient")
}

func TestRunSecondPassNeverGrows(t *testing.T) {
	once, _ := optimizeDefault(t, sampleSVG)
	twice, report := optimizeDefault(t, once)
	assert.LessOrEqual(t, len(twice), len(once))
	assert.NotNil(t, report)
}

func TestRunMultipassNeverGrows(t *testing.T) {
	doc, err := ParseString(sampleSVG)
	require.NoError(t, err)
	reg := NewDefaultRegistry()

	cfg := DefaultConfig()
	cfg.Multipass = true
	out, report, err := Run(context.Background(), doc, cfg, reg)
	require.NoError(t, err)
	assert.LessOrEqual(t, report.BytesAfter, report.BytesBefore)
	assert.NotEmpty(t, out)
}

func TestRunUnknownPluginIsConfigError(t *testing.T) {
	doc, err := ParseString(sampleSVG)
	require.NoError(t, err)
	reg := NewDefaultRegistry()

	cfg := DefaultConfig()
	cfg.Plugins = []PluginDirective{{Name: "doesNotExist"}}
	_, _, err = Run(context.Background(), doc, cfg, reg)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestRunDisablingAPresetMemberKeepsIt(t *testing.T) {
	doc, err := ParseString(sampleSVG)
	require.NoError(t, err)
	reg := NewDefaultRegistry()

	disabled := false
	cfg := DefaultConfig()
	cfg.Plugins = append(cfg.Plugins, PluginDirective{Name: "removeComments", Enabled: &disabled})

	out, _, err := Run(context.Background(), doc, cfg, reg)
	require.NoError(t, err)
	assert.Contains(t, out, "a comment")
}
