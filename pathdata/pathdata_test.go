package pathdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_SquareSeed(t *testing.T) {
	// Seed scenario 4: a square traced with absolute commands collapses to
	// relative horizontal/vertical shorthand.
	out, err := Optimize("M 10.00000 10.0 L 20 10 L 20 20 L 10 20 Z", Options{FloatPrecision: 1})
	require.NoError(t, err)
	assert.Equal(t, "M10 10h10v10h-10z", out)
}

func TestTokenize_ImplicitLineto(t *testing.T) {
	segs, err := Tokenize("M 0 0 10 10 20 20")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, OpMoveTo, segs[0].Op)
	assert.Equal(t, OpLineTo, segs[1].Op)
	assert.Equal(t, OpLineTo, segs[2].Op)
}

func TestTokenize_ArcFlagsAbutNumbers(t *testing.T) {
	// Arc flags may abut neighboring numbers without whitespace.
	segs, err := Tokenize("M0 0A5 5 0 0110 10")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	arc := segs[1]
	require.Equal(t, OpArc, arc.Op)
	assert.Equal(t, 5.0, arc.ArcRX())
	assert.Equal(t, 5.0, arc.ArcRY())
	assert.False(t, arc.ArcLargeArc())
	assert.True(t, arc.ArcSweep())
	assert.Equal(t, 10.0, arc.ArcEndX())
	assert.Equal(t, 10.0, arc.ArcEndY())
}

func TestTokenize_MalformedMissingMoveto(t *testing.T) {
	_, err := Tokenize("L 10 10")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0, 2))
	assert.Equal(t, ".5", FormatNumber(0.5, 2))
	assert.Equal(t, "-.5", FormatNumber(-0.5, 2))
	assert.Equal(t, "10", FormatNumber(10.00001, 2))
	assert.Equal(t, "1.23", FormatNumber(1.2349, 2))
}

func TestRemoveUseless_DropsTrailingCloseAtStart(t *testing.T) {
	segs, err := Tokenize("M0 0L10 0L10 10L0 10L0 0Z")
	require.NoError(t, err)
	out := removeUseless(segs)
	assert.Equal(t, "MLLLL", Atoms(out))
}

func TestFromRect_NoRadius(t *testing.T) {
	segs := FromRect(Rect{X: 0, Y: 0, Width: 10, Height: 10, RX: -1, RY: -1})
	assert.Equal(t, "MHVHZ", Atoms(segs))
}

func TestFromCircle(t *testing.T) {
	segs := FromCircle(5, 5, 5)
	assert.Equal(t, "MAAZ", Atoms(segs))
}

func TestParsePoints(t *testing.T) {
	pts, err := ParsePoints("0,0 10,0 10,10")
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, Point{X: 10, Y: 10}, pts[2])
}
