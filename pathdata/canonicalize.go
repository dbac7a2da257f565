package pathdata

import "strings"

// Options configures Optimize.
type Options struct {
	// FloatPrecision is the decimal precision for coordinates (§3,
	// default 3).
	FloatPrecision int
}

// Optimize tokenizes d, canonicalizes the command sequence, and reformats
// it, implementing the ordered steps of §4.5 ("Canonicalization steps, in
// order inside convertPathData"): 1 (implicit lineto) is already satisfied
// by Tokenize; this function performs 3-6 (representation choice, useless-
// command removal, letter collapsing, numeric formatting). Step 2 (transform
// application) is not performed here.
func Optimize(d string, opts Options) (string, error) {
	segs, err := Tokenize(d)
	if err != nil {
		return "", err
	}
	segs = removeUseless(segs)
	return Format(segs, opts), nil
}

// removeUseless implements §4.5 step 4: consecutive M collapses to the
// last, zero-length segments are dropped, and a trailing Z is dropped when
// the subpath already ends at its start point.
func removeUseless(segs []Segment) []Segment {
	if len(segs) == 0 {
		return segs
	}

	out := make([]Segment, 0, len(segs))
	var cur, subStart Point
	haveCur := false

	for i, s := range segs {
		switch s.Op {
		case OpMoveTo:
			// Consecutive M (possibly the very first segment, or directly
			// following a prior M with nothing drawn in between) collapses
			// to the last.
			if len(out) > 0 && out[len(out)-1].Op == OpMoveTo {
				out = out[:len(out)-1]
			}
			next := absoluteEnd(s, cur, haveCur)
			cur, subStart, haveCur = next, next, true
			out = append(out, s)
			continue

		case OpClose:
			// Drop a close that ends the path or is immediately followed by
			// a moveto, when the subpath already ends at its start point.
			if haveCur && cur == subStart && (i == len(segs)-1 || segs[i+1].Op == OpMoveTo) {
				cur = subStart
				continue
			}
			out = append(out, s)
			cur = subStart
			continue
		}

		next := absoluteEnd(s, cur, haveCur)
		if haveCur && next == cur && s.Op != OpArc {
			// Zero-length segment: skip it (arcs can be zero-displacement
			// but non-degenerate when rx/ry differ from 0; keep those).
			continue
		}
		out = append(out, s)
		cur, haveCur = next, true
	}

	return out
}

// absoluteEnd returns the absolute end point of segment s given the current
// point cur (only meaningful once haveCur is true; the very first M is
// always absolute-equivalent to its own argument).
func absoluteEnd(s Segment, cur Point, haveCur bool) Point {
	var dx, dy float64
	switch s.Op {
	case OpHorizontal:
		dx = s.Args[0]
		if s.Relative {
			return Point{cur.X + dx, cur.Y}
		}
		return Point{dx, cur.Y}
	case OpVertical:
		dy = s.Args[0]
		if s.Relative {
			return Point{cur.X, cur.Y + dy}
		}
		return Point{cur.X, dy}
	case OpClose:
		return cur
	default:
		n := len(s.Args)
		x, y := s.Args[n-2], s.Args[n-1]
		if s.Relative && haveCur {
			return Point{cur.X + x, cur.Y + y}
		}
		if s.Relative {
			return Point{x, y}
		}
		return Point{x, y}
	}
}

// Format serializes a canonical Segment sequence to a `d` string, choosing
// the shorter of the absolute/relative representation for each segment,
// promoting L to H/V and C/Q to their smooth shorthand S/T where lossless,
// collapsing repeated command letters, and formatting numbers per
// FormatNumber (§4.5 steps 3, 5, 6).
func Format(segs []Segment, opts Options) string {
	var w tokenWriter
	var cur, subStart Point
	haveCur := false

	var prevOp Op
	var prevRelForLetter bool
	haveLetter := false

	var prevCubicCtrl2 *Point
	var prevQuadCtrl *Point

	emitLetter := func(op Op, relative bool) {
		letter := byte(op)
		if relative {
			letter = letter - 'A' + 'a'
		}
		if haveLetter && op == prevOp && relative == prevRelForLetter {
			return // collapsed into the previous command letter (step 5)
		}
		w.writeOp(letter)
		prevOp, prevRelForLetter, haveLetter = op, relative, true
	}

	fmtNum := func(v float64) string { return FormatNumber(v, opts.FloatPrecision) }

	for _, s := range segs {
		switch s.Op {
		case OpClose:
			// Z/z are equivalent (no arguments to be relative to); always
			// emit lowercase, matching convention.
			emitLetter(OpClose, true)
			cur = subStart
			prevCubicCtrl2, prevQuadCtrl = nil, nil
			continue
		case OpMoveTo:
			end := Point{s.Args[0], s.Args[1]}
			abs, rel := end, Point{end.X - cur.X, end.Y - cur.Y}
			if !haveCur {
				rel = abs
			}
			// The very first moveto of a path has no current point to be
			// relative to, so it is always written absolute.
			useRel := haveCur && shorterPair(fmtNum, abs, rel)
			emitLetter(OpMoveTo, useRel)
			writePoint(&w, fmtNum, abs, rel, useRel)
			cur, subStart, haveCur = abs, abs, true
			prevCubicCtrl2, prevQuadCtrl = nil, nil
			continue
		}

		end := absoluteEnd(s, cur, haveCur)

		switch s.Op {
		case OpLineTo:
			// The representation (absolute vs relative) is chosen once for
			// the whole point, comparing the combined length of both
			// coordinates; H/V collapsing is then applied within whichever
			// space was chosen, not decided independently per axis (an
			// axis-aligned move keeps the representation its full-point
			// comparison picked, even if the other axis would, alone,
			// prefer the opposite one).
			abs, rel := end, Point{end.X - cur.X, end.Y - cur.Y}
			if !haveCur {
				rel = abs
			}
			useRel := shorterPair(fmtNum, abs, rel)
			chosen := abs
			if useRel {
				chosen = rel
			}
			switch {
			case end.Y == cur.Y && haveCur:
				emitLetter(OpHorizontal, useRel)
				w.writeNumber(fmtNum(chosen.X))
			case end.X == cur.X && haveCur:
				emitLetter(OpVertical, useRel)
				w.writeNumber(fmtNum(chosen.Y))
			default:
				emitLetter(OpLineTo, useRel)
				writePoint(&w, fmtNum, abs, rel, useRel)
			}
			prevCubicCtrl2, prevQuadCtrl = nil, nil

		case OpHorizontal:
			absX := end.X
			relX := end.X - cur.X
			useRel := shorterScalar(fmtNum, absX, relX)
			emitLetter(OpHorizontal, useRel)
			writeScalar(&w, fmtNum, absX, relX, useRel)
			prevCubicCtrl2, prevQuadCtrl = nil, nil

		case OpVertical:
			absY := end.Y
			relY := end.Y - cur.Y
			useRel := shorterScalar(fmtNum, absY, relY)
			emitLetter(OpVertical, useRel)
			writeScalar(&w, fmtNum, absY, relY, useRel)
			prevCubicCtrl2, prevQuadCtrl = nil, nil

		case OpCubic:
			c1 := Point{s.Args[0], s.Args[1]}
			c2 := Point{s.Args[2], s.Args[3]}
			c1abs, c2abs, endAbs := toAbs(c1, cur, s.Relative), toAbs(c2, cur, s.Relative), end

			op := OpCubic
			if prevCubicCtrl2 != nil && reflects(*prevCubicCtrl2, cur, c1abs) {
				op = OpSmoothCubic
			}

			if op == OpSmoothCubic {
				writeCurveShort(&w, emitLetter, fmtNum, OpSmoothCubic, cur, c2abs, endAbs, haveCur)
			} else {
				writeCurveFull(&w, emitLetter, fmtNum, OpCubic, cur, c1abs, c2abs, endAbs, haveCur)
			}
			c2v := c2abs
			prevCubicCtrl2 = &c2v
			prevQuadCtrl = nil

		case OpSmoothCubic:
			c2 := Point{s.Args[0], s.Args[1]}
			c2abs, endAbs := toAbs(c2, cur, s.Relative), end
			writeCurveShort(&w, emitLetter, fmtNum, OpSmoothCubic, cur, c2abs, endAbs, haveCur)
			c2v := c2abs
			prevCubicCtrl2 = &c2v
			prevQuadCtrl = nil

		case OpQuadratic:
			c1 := Point{s.Args[0], s.Args[1]}
			c1abs, endAbs := toAbs(c1, cur, s.Relative), end

			op := OpQuadratic
			if prevQuadCtrl != nil && reflects(*prevQuadCtrl, cur, c1abs) {
				op = OpSmoothQuadratic
			}
			if op == OpSmoothQuadratic {
				writeCurveShort(&w, emitLetter, fmtNum, OpSmoothQuadratic, cur, Point{}, endAbs, haveCur)
			} else {
				writeQuadFull(&w, emitLetter, fmtNum, cur, c1abs, endAbs, haveCur)
			}
			c1v := c1abs
			prevQuadCtrl = &c1v
			prevCubicCtrl2 = nil

		case OpSmoothQuadratic:
			endAbs := end
			writeCurveShort(&w, emitLetter, fmtNum, OpSmoothQuadratic, cur, Point{}, endAbs, haveCur)
			prevQuadCtrl = nil
			prevCubicCtrl2 = nil

		case OpArc:
			writeArc(&w, emitLetter, fmtNum, cur, s, end, haveCur)
			prevCubicCtrl2, prevQuadCtrl = nil, nil
		}

		cur, haveCur = end, true
	}

	return w.String()
}

func toAbs(p, cur Point, relative bool) Point {
	if relative {
		return Point{cur.X + p.X, cur.Y + p.Y}
	}
	return p
}

// reflects reports whether candidate is (approximately) the point
// reflection of ctrl through pivot, i.e. the smooth-curve continuation
// condition for S/T.
func reflects(ctrl, pivot, candidate Point) bool {
	const eps = 1e-6
	rx := 2*pivot.X - ctrl.X
	ry := 2*pivot.Y - ctrl.Y
	return abs(rx-candidate.X) < eps && abs(ry-candidate.Y) < eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// shorterPair and shorterScalar favor the relative form on a length tie:
// ties are broken toward relative throughout this file, matching the
// convention of every other representation choice below.

func shorterPair(fmtNum func(float64) string, abs, rel Point) bool {
	absLen := len(fmtNum(abs.X)) + len(fmtNum(abs.Y))
	relLen := len(fmtNum(rel.X)) + len(fmtNum(rel.Y))
	return relLen <= absLen
}

func shorterScalar(fmtNum func(float64) string, absV, relV float64) bool {
	return len(fmtNum(relV)) <= len(fmtNum(absV))
}

func writePoint(w *tokenWriter, fmtNum func(float64) string, absP, relP Point, useRel bool) {
	p := absP
	if useRel {
		p = relP
	}
	w.writeNumber(fmtNum(p.X))
	w.writeNumber(fmtNum(p.Y))
}

func writeScalar(w *tokenWriter, fmtNum func(float64) string, absV, relV float64, useRel bool) {
	v := absV
	if useRel {
		v = relV
	}
	w.writeNumber(fmtNum(v))
}

type emitLetterFunc func(op Op, relative bool)

func writeCurveFull(w *tokenWriter, emit emitLetterFunc, fmtNum func(float64) string, op Op, cur, c1, c2, end Point, haveCur bool) {
	rel := Point{c1.X - cur.X, c1.Y - cur.Y}
	rel2 := Point{c2.X - cur.X, c2.Y - cur.Y}
	relEnd := Point{end.X - cur.X, end.Y - cur.Y}
	useRel := haveCur && (len(fmtNum(rel.X))+len(fmtNum(rel.Y))+len(fmtNum(rel2.X))+len(fmtNum(rel2.Y))+len(fmtNum(relEnd.X))+len(fmtNum(relEnd.Y)) <=
		len(fmtNum(c1.X))+len(fmtNum(c1.Y))+len(fmtNum(c2.X))+len(fmtNum(c2.Y))+len(fmtNum(end.X))+len(fmtNum(end.Y)))
	emit(op, useRel)
	if useRel {
		w.writeNumber(fmtNum(rel.X))
		w.writeNumber(fmtNum(rel.Y))
		w.writeNumber(fmtNum(rel2.X))
		w.writeNumber(fmtNum(rel2.Y))
		w.writeNumber(fmtNum(relEnd.X))
		w.writeNumber(fmtNum(relEnd.Y))
	} else {
		w.writeNumber(fmtNum(c1.X))
		w.writeNumber(fmtNum(c1.Y))
		w.writeNumber(fmtNum(c2.X))
		w.writeNumber(fmtNum(c2.Y))
		w.writeNumber(fmtNum(end.X))
		w.writeNumber(fmtNum(end.Y))
	}
}

func writeQuadFull(w *tokenWriter, emit emitLetterFunc, fmtNum func(float64) string, cur, c1, end Point, haveCur bool) {
	rel := Point{c1.X - cur.X, c1.Y - cur.Y}
	relEnd := Point{end.X - cur.X, end.Y - cur.Y}
	useRel := haveCur && (len(fmtNum(rel.X))+len(fmtNum(rel.Y))+len(fmtNum(relEnd.X))+len(fmtNum(relEnd.Y)) <=
		len(fmtNum(c1.X))+len(fmtNum(c1.Y))+len(fmtNum(end.X))+len(fmtNum(end.Y)))
	emit(OpQuadratic, useRel)
	if useRel {
		w.writeNumber(fmtNum(rel.X))
		w.writeNumber(fmtNum(rel.Y))
		w.writeNumber(fmtNum(relEnd.X))
		w.writeNumber(fmtNum(relEnd.Y))
	} else {
		w.writeNumber(fmtNum(c1.X))
		w.writeNumber(fmtNum(c1.Y))
		w.writeNumber(fmtNum(end.X))
		w.writeNumber(fmtNum(end.Y))
	}
}

// writeCurveShort emits the S/T smooth-shorthand forms, which only carry a
// (possibly absent, for T) second control point and the end point.
func writeCurveShort(w *tokenWriter, emit emitLetterFunc, fmtNum func(float64) string, op Op, cur, c2, end Point, haveCur bool) {
	relEnd := Point{end.X - cur.X, end.Y - cur.Y}
	if op == OpSmoothQuadratic {
		useRel := haveCur && len(fmtNum(relEnd.X))+len(fmtNum(relEnd.Y)) <= len(fmtNum(end.X))+len(fmtNum(end.Y))
		emit(op, useRel)
		writePoint(w, fmtNum, end, relEnd, useRel)
		return
	}
	rel2 := Point{c2.X - cur.X, c2.Y - cur.Y}
	useRel := haveCur && (len(fmtNum(rel2.X))+len(fmtNum(rel2.Y))+len(fmtNum(relEnd.X))+len(fmtNum(relEnd.Y)) <=
		len(fmtNum(c2.X))+len(fmtNum(c2.Y))+len(fmtNum(end.X))+len(fmtNum(end.Y)))
	emit(op, useRel)
	if useRel {
		w.writeNumber(fmtNum(rel2.X))
		w.writeNumber(fmtNum(rel2.Y))
		w.writeNumber(fmtNum(relEnd.X))
		w.writeNumber(fmtNum(relEnd.Y))
	} else {
		w.writeNumber(fmtNum(c2.X))
		w.writeNumber(fmtNum(c2.Y))
		w.writeNumber(fmtNum(end.X))
		w.writeNumber(fmtNum(end.Y))
	}
}

func writeArc(w *tokenWriter, emit emitLetterFunc, fmtNum func(float64) string, cur Point, s Segment, end Point, haveCur bool) {
	rx, ry, xrot := s.ArcRX(), s.ArcRY(), s.ArcXRot()
	large, sweep := s.ArcLargeArc(), s.ArcSweep()
	absEnd := end
	relEnd := Point{end.X - cur.X, end.Y - cur.Y}
	useRel := haveCur && len(fmtNum(relEnd.X))+len(fmtNum(relEnd.Y)) <= len(fmtNum(absEnd.X))+len(fmtNum(absEnd.Y))
	emit(OpArc, useRel)
	w.writeNumber(fmtNum(rx))
	w.writeNumber(fmtNum(ry))
	w.writeNumber(fmtNum(xrot))
	w.writeFlag(large)
	w.writeFlag(sweep)
	p := absEnd
	if useRel {
		p = relEnd
	}
	w.writeNumber(fmtNum(p.X))
	w.writeNumber(fmtNum(p.Y))
}

// Atoms returns the canonical uppercase letters used across segs, for
// diagnostics/tests.
func Atoms(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte(byte(s.Op))
	}
	return b.String()
}
