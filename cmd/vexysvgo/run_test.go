package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
)

func TestGatherInputsInlineString(t *testing.T) {
	cliCfg := NewConfig()
	cliCfg.InlineSVG = `<svg xmlns="http://www.w3.org/2000/svg"></svg>`

	inputs, err := gatherInputs(cliCfg, nil)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, cliCfg.InlineSVG, string(inputs[0].source))
	assert.Empty(t, inputs[0].path)
}

func TestGatherInputsMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.svg")
	b := filepath.Join(dir, "b.svg")
	require.NoError(t, os.WriteFile(a, []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), 0o644))

	cliCfg := NewConfig()
	inputs, err := gatherInputs(cliCfg, []string{a, b})
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, a, inputs[0].output)
	assert.Equal(t, b, inputs[1].output)
}

func TestOptimizeOneToStdoutLikeOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.svg")

	cliCfg := NewConfig()
	in := inputFile{
		source: []byte(`<svg xmlns="http://www.w3.org/2000/svg"><!-- drop me --><rect width="10" height="10"/></svg>`),
		output: out,
	}
	vcfg := vexysvgo.DefaultConfig()
	reg := vexysvgo.NewDefaultRegistry()

	err := optimizeOne(context.Background(), in, vcfg, reg, cliCfg)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "drop me")
}
