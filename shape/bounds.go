package shape

import (
	"math"

	"github.com/gogpu/swf"
)

// Bounds computes the bounding box of a record list, including the extrema
// of quadratic curves. The pen starts at the origin and move-to points
// count as part of the shape. An empty list yields the zero rectangle.
func Bounds(records []swf.ShapeRecord) swf.Rectangle {
	bounds := swf.InvalidRect()
	var cursor swf.Point
	for _, rec := range records {
		switch rec := rec.(type) {
		case swf.StyleChange:
			if rec.MoveTo != nil {
				cursor = *rec.MoveTo
				bounds = bounds.Encompass(cursor)
			}
		case swf.StraightEdge:
			cursor = cursor.Add(rec.Delta)
			bounds = bounds.Encompass(cursor)
		case swf.CurvedEdge:
			control := cursor.Add(rec.Control)
			anchor := control.Add(rec.Anchor)
			bounds = bounds.Union(QuadraticBounds(cursor, control, anchor, 0))
			cursor = anchor
		}
	}
	if !bounds.Valid() {
		return swf.Rectangle{}
	}
	return bounds
}

// QuadraticBounds returns the box of the curve from start through control
// to anchor, grown by half the stroke width.
func QuadraticBounds(start, control, anchor swf.Point, strokeWidth swf.Twips) swf.Rectangle {
	bounds := swf.InvalidRect().Encompass(start).Encompass(anchor)

	if t, ok := extremum(start.X, control.X, anchor.X); ok {
		bounds = bounds.Encompass(quadraticAt(start, control, anchor, t))
	}
	if t, ok := extremum(start.Y, control.Y, anchor.Y); ok {
		bounds = bounds.Encompass(quadraticAt(start, control, anchor, t))
	}
	return bounds.Grow(strokeWidth / 2)
}

// extremum returns the parameter of the axis extremum when the control
// coordinate lies outside the endpoint range.
func extremum(from, ctrl, to swf.Twips) (float64, bool) {
	if ctrl >= min(from, to) && ctrl <= max(from, to) {
		return 0, false
	}
	denom := float64(from - 2*ctrl + to)
	if denom == 0 {
		return 0, false
	}
	t := float64(from-ctrl) / denom
	return math.Max(0, math.Min(1, t)), true
}

func quadraticAt(p0, p1, p2 swf.Point, t float64) swf.Point {
	mt := 1 - t
	at := func(a, b, c swf.Twips) swf.Twips {
		return swf.Twips(math.Round(mt*mt*float64(a) + 2*mt*t*float64(b) + t*t*float64(c)))
	}
	return swf.Point{X: at(p0.X, p1.X, p2.X), Y: at(p0.Y, p1.Y, p2.Y)}
}
