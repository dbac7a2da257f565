package colorconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_NamedToHex(t *testing.T) {
	c, err := Parse("blue")
	require.NoError(t, err)
	assert.Equal(t, "#00f", Format(c))
}

func TestFormat_HexToNamedWhenStrictlyShorter(t *testing.T) {
	c, err := Parse("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, "red", Format(c))
}

func TestFormat_TieGoesToHex(t *testing.T) {
	c, err := Parse("blue")
	require.NoError(t, err)
	assert.Equal(t, "#00f", Format(c))
}

func TestParse_RGBFunc(t *testing.T) {
	c, err := Parse("rgb(255, 0, 0)")
	require.NoError(t, err)
	assert.Equal(t, RGB{0xff, 0, 0, 1}, c)
}

func TestParse_HSLFunc(t *testing.T) {
	c, err := Parse("hsl(0, 100%, 50%)")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), c.B)
}

func TestParse_ShortHexExpansion(t *testing.T) {
	c, err := Parse("#0f0")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 0xff, 0, 1}, c)
}

func TestParse_InvalidReturnsErrInvalid(t *testing.T) {
	_, err := Parse("not-a-color")
	require.Error(t, err)
	var target *ErrInvalid
	assert.ErrorAs(t, err, &target)
}

func TestFormat_AlphaKeepsHexAlpha(t *testing.T) {
	c := RGB{R: 0x11, G: 0x22, B: 0x33, A: 0.5}
	assert.Equal(t, "#11223380", Format(c))
}
