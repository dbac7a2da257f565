// Package transformconv implements §4.8's convertTransform: parsing a
// `transform` attribute's function list, folding every function in it
// into a single matrix, and re-rendering whichever function form
// (matrix vs a retained primitive) serializes shortest.
//
// The function-list tokenizing follows the same flat comma/whitespace
// splitting approach as colorconv's color-function parsing, grounded on
// pgavlin-svg2/util.go's cssTokens helper; pgavlin-svg2's own `Transform`
// type is a bare unparsed string, so the matrix algebra here is new.
package transformconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gwen-lg/vexy-svgo/pathdata"
)

// Matrix is a 2D affine transform in SVG's column-major a,b,c,d,e,f form:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Matrix struct{ A, B, C, D, E, F float64 }

// Identity is the neutral transform.
var Identity = Matrix{A: 1, D: 1}

// IsIdentity reports whether m has no visible effect, within a small
// epsilon to absorb floating point round-trip error.
func (m Matrix) IsIdentity() bool {
	const eps = 1e-9
	return near(m.A, 1, eps) && near(m.B, 0, eps) && near(m.C, 0, eps) &&
		near(m.D, 1, eps) && near(m.E, 0, eps) && near(m.F, 0, eps)
}

func near(a, b, eps float64) bool { return math.Abs(a-b) < eps }

// Multiply returns the matrix product m*n: applied to a point, m*n means n
// is applied first and m second (p' = m*(n*p)), matching the left-to-right
// reading of an SVG transform list ("A B" composes as matrixA.Multiply
// (matrixB) only once A's own matrix already reflects everything to its
// left — see Parse, which folds left to right accordingly).
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms point p by m.
func (m Matrix) Apply(p pathdata.Point) pathdata.Point {
	return pathdata.Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ErrInvalid is returned for a transform value that doesn't parse.
type ErrInvalid struct{ Value string }

func (e *ErrInvalid) Error() string { return fmt.Sprintf("transformconv: invalid transform %q", e.Value) }

// Parse parses a `transform` attribute's function list and folds it to a
// single composed Matrix, per §4.8's "apply when losslessly representable"
// rule — every SVG transform function is an affine map, so composition is
// always lossless here. The result is not applied to path data by this
// package.
func Parse(s string) (Matrix, error) {
	m := Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		name, args, tail, err := readFunc(rest)
		if err != nil {
			return Matrix{}, err
		}
		fm, err := funcMatrix(name, args)
		if err != nil {
			return Matrix{}, err
		}
		m = m.Multiply(fm)
		rest = strings.TrimSpace(tail)
	}
	return m, nil
}

func readFunc(s string) (name string, args []float64, tail string, err error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", nil, "", &ErrInvalid{s}
	}
	name = strings.TrimSpace(s[:open])
	close := strings.IndexByte(s[open:], ')')
	if close < 0 {
		return "", nil, "", &ErrInvalid{s}
	}
	close += open
	inner := s[open+1 : close]
	for _, f := range strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	}) {
		v, perr := strconv.ParseFloat(f, 64)
		if perr != nil {
			return "", nil, "", &ErrInvalid{s}
		}
		args = append(args, v)
	}
	return name, args, s[close+1:], nil
}

func funcMatrix(name string, args []float64) (Matrix, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return Matrix{}, fmt.Errorf("transformconv: matrix() wants 6 args, got %d", len(args))
		}
		return Matrix{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, nil
	case "translate":
		if len(args) == 1 {
			return Matrix{A: 1, D: 1, E: args[0]}, nil
		}
		if len(args) == 2 {
			return Matrix{A: 1, D: 1, E: args[0], F: args[1]}, nil
		}
	case "scale":
		if len(args) == 1 {
			return Matrix{A: args[0], D: args[0]}, nil
		}
		if len(args) == 2 {
			return Matrix{A: args[0], D: args[1]}, nil
		}
	case "rotate":
		rad := args[0] * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		base := Matrix{A: cos, B: sin, C: -sin, D: cos}
		if len(args) == 1 {
			return base, nil
		}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			m := Matrix{A: 1, D: 1, E: cx, F: cy}
			m = m.Multiply(base)
			m = m.Multiply(Matrix{A: 1, D: 1, E: -cx, F: -cy})
			return m, nil
		}
	case "skewX":
		if len(args) == 1 {
			return Matrix{A: 1, D: 1, C: math.Tan(args[0] * math.Pi / 180)}, nil
		}
	case "skewY":
		if len(args) == 1 {
			return Matrix{A: 1, D: 1, B: math.Tan(args[0] * math.Pi / 180)}, nil
		}
	}
	return Matrix{}, fmt.Errorf("transformconv: %s() takes unexpected argument count %d", name, len(args))
}

// Decomposed holds translate/scale/rotate components. Format does not use
// it; it works from the name and arguments Decompose returns.
type Decomposed struct {
	Translate *[2]float64
	Scale     *[2]float64
	Rotate    *float64
}

// Decompose attempts to express m as a single translate/scale/rotate
// primitive when it is exactly one of those (no shear, no combination);
// returns ok=false when m needs the general matrix() form.
func Decompose(m Matrix) (name string, args []float64, ok bool) {
	const eps = 1e-9
	switch {
	case near(m.A, 1, eps) && near(m.B, 0, eps) && near(m.C, 0, eps) && near(m.D, 1, eps):
		if near(m.F, 0, eps) {
			return "translate", []float64{m.E}, true
		}
		return "translate", []float64{m.E, m.F}, true
	case near(m.B, 0, eps) && near(m.C, 0, eps) && near(m.E, 0, eps) && near(m.F, 0, eps):
		if near(m.A, m.D, eps) {
			return "scale", []float64{m.A}, true
		}
		return "scale", []float64{m.A, m.D}, true
	case near(m.E, 0, eps) && near(m.F, 0, eps) && near(m.A, m.D, eps) &&
		near(m.C, -m.B, eps) && near(m.A*m.A+m.B*m.B, 1, 1e-6):
		angle := math.Atan2(m.B, m.A) * 180 / math.Pi
		return "rotate", []float64{angle}, true
	}
	return "", nil, false
}

// Format renders m in whichever form serializes shortest: a decomposed
// primitive when m reduces to exactly one, otherwise matrix(), with
// numbers rendered at the given precision. The identity renders as "".
func Format(m Matrix, precision int) string {
	matrixForm := formatFunc("matrix", []float64{m.A, m.B, m.C, m.D, m.E, m.F}, precision)
	if m.IsIdentity() {
		return ""
	}
	if name, args, ok := Decompose(m); ok {
		primForm := formatFunc(name, args, precision)
		if len(primForm) < len(matrixForm) {
			return primForm
		}
	}
	return matrixForm
}

func formatFunc(name string, args []float64, precision int) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = pathdata.FormatNumber(a, precision)
	}
	return name + "(" + strings.Join(parts, " ") + ")"
}
