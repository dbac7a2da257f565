package transformconv

import (
	"testing"

	"github.com/gwen-lg/vexy-svgo/pathdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Translate(t *testing.T) {
	m, err := Parse("translate(10, 20)")
	require.NoError(t, err)
	assert.InDelta(t, 1, m.A, 1e-9)
	assert.InDelta(t, 10, m.E, 1e-9)
	assert.InDelta(t, 20, m.F, 1e-9)
}

func TestParse_FoldsConsecutiveFunctions(t *testing.T) {
	m, err := Parse("translate(10,0) scale(2)")
	require.NoError(t, err)
	p := m.Apply(pathdata.Point{X: 1, Y: 1})
	assert.InDelta(t, 12, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)
}

func TestFormat_PrefersDecomposedTranslate(t *testing.T) {
	m, err := Parse("translate(5, 0)")
	require.NoError(t, err)
	assert.Equal(t, "translate(5)", Format(m, 3))
}

func TestFormat_IdentityIsEmpty(t *testing.T) {
	assert.Equal(t, "", Format(Identity, 3))
}

func TestFormat_ShearNeedsMatrix(t *testing.T) {
	m, err := Parse("skewX(30)")
	require.NoError(t, err)
	out := Format(m, 3)
	assert.Contains(t, out, "matrix(")
}

