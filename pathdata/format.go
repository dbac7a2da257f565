package pathdata

import (
	"math"
	"strconv"
	"strings"
)

// Point is a 2D coordinate.
type Point struct{ X, Y float64 }

// FormatNumber renders v at the given decimal precision using SVGO's
// canonical numeric style (§4.5 step 6): strip the leading zero of a
// fraction, strip trailing fractional zeros, and omit the decimal point
// entirely when the value is integral.
func FormatNumber(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	rounded := roundTo(v, precision)
	if rounded == 0 {
		rounded = 0 // normalize -0
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if precision >= 0 {
		s = strconv.FormatFloat(rounded, 'f', precision, 64)
		s = trimTrailingZeros(s)
	}
	return compactLeadingZero(s)
}

func roundTo(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// compactLeadingZero strips a redundant leading "0" before the decimal
// point ("0.5" -> ".5", "-0.5" -> "-.5").
func compactLeadingZero(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if strings.HasPrefix(s, "0.") && len(s) > 2 {
		s = s[1:]
	} else if s == "0" {
		// keep as "0"
	}
	if neg && s != "0" {
		return "-" + s
	}
	return s
}

// tokenHasDot reports whether a formatted numeric token contains a decimal
// point.
func tokenHasDot(s string) bool {
	return strings.ContainsRune(s, '.')
}

// tokenWriter assembles a path-data string from a stream of command-letter
// and numeric tokens, applying the separator-elision rules from §4.5 step 6:
// no space is emitted before a negative number, and none is needed between
// two numbers when the join point is unambiguous to re-tokenize (a new
// fraction may abut a number that itself already contains a decimal point).
type tokenWriter struct {
	b           strings.Builder
	lastWasNum  bool
	lastHadDot  bool
	lastWasFlag bool
}

func (w *tokenWriter) writeOp(op byte) {
	w.b.WriteByte(op)
	w.lastWasNum = false
}

func (w *tokenWriter) writeFlag(v bool) {
	// A flag may abut another flag, but not a preceding ordinary number,
	// which would otherwise absorb the flag digit on re-tokenizing.
	if w.lastWasNum && !w.lastWasFlag {
		w.b.WriteByte(' ')
	}
	if v {
		w.b.WriteByte('1')
	} else {
		w.b.WriteByte('0')
	}
	w.lastWasNum = true
	w.lastHadDot = false
	w.lastWasFlag = true
}

func (w *tokenWriter) writeNumber(tok string) {
	if w.lastWasNum {
		needSep := true
		if strings.HasPrefix(tok, "-") {
			needSep = false
		} else if strings.HasPrefix(tok, ".") && w.lastHadDot {
			needSep = false
		}
		if needSep {
			w.b.WriteByte(' ')
		}
	}
	w.b.WriteString(tok)
	w.lastWasNum = true
	w.lastHadDot = tokenHasDot(tok)
	w.lastWasFlag = false
}

func (w *tokenWriter) String() string { return w.b.String() }
