package pathdata

import "fmt"

// Rect describes a rect element's geometry as needed by FromRect.
type Rect struct {
	X, Y, Width, Height float64
	RX, RY              float64 // negative means "unspecified"
}

// FromRect converts a <rect> to equivalent path-data segments. Rounded
// corners (rx/ry) produce arc segments; everything else is straight lines,
// per §4.6 convertShapeToPath.
func FromRect(r Rect) []Segment {
	rx, ry := r.RX, r.RY
	if rx < 0 && ry < 0 {
		rx, ry = 0, 0
	} else if rx < 0 {
		rx = ry
	} else if ry < 0 {
		ry = rx
	}
	if rx > r.Width/2 {
		rx = r.Width / 2
	}
	if ry > r.Height/2 {
		ry = r.Height / 2
	}

	if rx <= 0 || ry <= 0 {
		return []Segment{
			{Op: OpMoveTo, Args: []float64{r.X, r.Y}},
			{Op: OpHorizontal, Args: []float64{r.X + r.Width}},
			{Op: OpVertical, Args: []float64{r.Y + r.Height}},
			{Op: OpHorizontal, Args: []float64{r.X}},
			{Op: OpClose},
		}
	}

	return []Segment{
		{Op: OpMoveTo, Args: []float64{r.X + rx, r.Y}},
		{Op: OpHorizontal, Args: []float64{r.X + r.Width - rx}},
		{Op: OpArc, Args: []float64{rx, ry, 0, 0, 1, r.X + r.Width, r.Y + ry}},
		{Op: OpVertical, Args: []float64{r.Y + r.Height - ry}},
		{Op: OpArc, Args: []float64{rx, ry, 0, 0, 1, r.X + r.Width - rx, r.Y + r.Height}},
		{Op: OpHorizontal, Args: []float64{r.X + rx}},
		{Op: OpArc, Args: []float64{rx, ry, 0, 0, 1, r.X, r.Y + r.Height - ry}},
		{Op: OpVertical, Args: []float64{r.Y + ry}},
		{Op: OpArc, Args: []float64{rx, ry, 0, 0, 1, r.X + rx, r.Y}},
		{Op: OpClose},
	}
}

// FromCircle converts a <circle> to two-arc path data, per §4.6.
func FromCircle(cx, cy, r float64) []Segment {
	return FromEllipse(cx, cy, r, r)
}

// FromEllipse converts an <ellipse> to two-arc path data: a moveto at the
// leftmost point, then two half-ellipse arcs, per §4.6.
func FromEllipse(cx, cy, rx, ry float64) []Segment {
	return []Segment{
		{Op: OpMoveTo, Args: []float64{cx - rx, cy}},
		{Op: OpArc, Args: []float64{rx, ry, 0, 1, 0, cx + rx, cy}},
		{Op: OpArc, Args: []float64{rx, ry, 0, 1, 0, cx - rx, cy}},
		{Op: OpClose},
	}
}

// FromLine converts a <line> to a single-segment open path, per §4.6.
func FromLine(x1, y1, x2, y2 float64) []Segment {
	return []Segment{
		{Op: OpMoveTo, Args: []float64{x1, y1}},
		{Op: OpLineTo, Args: []float64{x2, y2}},
	}
}

// FromPoly converts a <polyline>/<polygon> point list to path data; close
// determines whether a trailing Z is appended (true for polygon).
func FromPoly(points []Point, close bool) ([]Segment, error) {
	if len(points) == 0 {
		return nil, nil
	}
	segs := make([]Segment, 0, len(points)+1)
	segs = append(segs, Segment{Op: OpMoveTo, Args: []float64{points[0].X, points[0].Y}})
	for _, p := range points[1:] {
		segs = append(segs, Segment{Op: OpLineTo, Args: []float64{p.X, p.Y}})
	}
	if close {
		segs = append(segs, Segment{Op: OpClose})
	}
	return segs, nil
}

// ParsePoints parses a `points` attribute value ("x1,y1 x2,y2 ...") into
// Points, per the polyline/polygon grammar.
func ParsePoints(s string) ([]Point, error) {
	t := &tokenizer{s: s}
	var pts []Point
	t.skipWSComma()
	for !t.eof() {
		x, err := t.readNumber()
		if err != nil {
			return nil, fmt.Errorf("%w: points: %v", ErrMalformed, err)
		}
		t.skipWSComma()
		y, err := t.readNumber()
		if err != nil {
			return nil, fmt.Errorf("%w: points: %v", ErrMalformed, err)
		}
		pts = append(pts, Point{X: x, Y: y})
		t.skipWSComma()
	}
	return pts, nil
}
