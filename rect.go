package swf

import "math"

// Rectangle is an axis-aligned box in twips. A rectangle whose max is
// below its min on either axis is invalid and acts as the empty box.
type Rectangle struct {
	XMin, XMax Twips
	YMin, YMax Twips
}

// InvalidRect returns the identity for Union and Encompass.
func InvalidRect() Rectangle {
	return Rectangle{
		XMin: math.MaxInt32, XMax: math.MinInt32,
		YMin: math.MaxInt32, YMax: math.MinInt32,
	}
}

// Rect creates a rectangle from its corners.
func Rect(xmin, ymin, xmax, ymax Twips) Rectangle {
	return Rectangle{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// Valid reports whether r encloses at least one point.
func (r Rectangle) Valid() bool {
	return r.XMin <= r.XMax && r.YMin <= r.YMax
}

// Width returns the horizontal extent, or 0 for invalid rectangles.
func (r Rectangle) Width() Twips {
	if !r.Valid() {
		return 0
	}
	return r.XMax - r.XMin
}

// Height returns the vertical extent, or 0 for invalid rectangles.
func (r Rectangle) Height() Twips {
	if !r.Valid() {
		return 0
	}
	return r.YMax - r.YMin
}

// Encompass grows r to include p.
func (r Rectangle) Encompass(p Point) Rectangle {
	r.XMin = min(r.XMin, p.X)
	r.XMax = max(r.XMax, p.X)
	r.YMin = min(r.YMin, p.Y)
	r.YMax = max(r.YMax, p.Y)
	return r
}

// Union returns the smallest rectangle containing r and o.
// Invalid operands are ignored.
func (r Rectangle) Union(o Rectangle) Rectangle {
	if !o.Valid() {
		return r
	}
	if !r.Valid() {
		return o
	}
	return Rectangle{
		XMin: min(r.XMin, o.XMin), XMax: max(r.XMax, o.XMax),
		YMin: min(r.YMin, o.YMin), YMax: max(r.YMax, o.YMax),
	}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Grow expands r by d on every side.
func (r Rectangle) Grow(d Twips) Rectangle {
	if !r.Valid() {
		return r
	}
	return Rectangle{XMin: r.XMin - d, XMax: r.XMax + d, YMin: r.YMin - d, YMax: r.YMax + d}
}
