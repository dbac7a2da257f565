package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.FloatPrecision)
	assert.False(t, cfg.Multipass)
	assert.Len(t, cfg.Plugins, 1)
	assert.Equal(t, "preset-default", cfg.Plugins[0].Name)
}

func TestParseOverrides(t *testing.T) {
	const doc = `
multipass: true
floatPrecision: 2
js2svg:
  pretty: true
  indent: 4
  eol: crlf
plugins:
  - removeDoctype
  - name: cleanupIds
    params:
      minify: false
  - name: removeComments
    enabled: false
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.True(t, cfg.Multipass)
	assert.Equal(t, 2, cfg.FloatPrecision)
	assert.True(t, cfg.JS2SVG.Pretty)
	assert.Equal(t, 4, cfg.JS2SVG.Indent)
	assert.EqualValues(t, "crlf", cfg.JS2SVG.EOL)

	require.Len(t, cfg.Plugins, 3)
	assert.Equal(t, "removeDoctype", cfg.Plugins[0].Name)
	assert.Nil(t, cfg.Plugins[0].Enabled)

	assert.Equal(t, "cleanupIds", cfg.Plugins[1].Name)
	assert.Equal(t, false, cfg.Plugins[1].Params["minify"])

	assert.Equal(t, "removeComments", cfg.Plugins[2].Name)
	require.NotNil(t, cfg.Plugins[2].Enabled)
	assert.False(t, *cfg.Plugins[2].Enabled)
}

func TestParseJSON(t *testing.T) {
	const doc = `{"multipass": true, "plugins": ["removeDoctype", "removeComments"]}`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.True(t, cfg.Multipass)
	require.Len(t, cfg.Plugins, 2)
	assert.Equal(t, "removeComments", cfg.Plugins[1].Name)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("plugins: [\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/vexysvgo.yaml")
	assert.Error(t, err)
}
