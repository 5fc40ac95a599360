package swf

import "math"

// TwipsPerPixel is the number of twips in one pixel.
const TwipsPerPixel = 20

// Twips is the SWF coordinate unit, 1/20 of a pixel.
type Twips int32

// TwipsFromPixels converts a pixel value to twips, rounding to nearest.
func TwipsFromPixels(px float64) Twips {
	return Twips(math.Round(px * TwipsPerPixel))
}

// Pixels returns the value in pixels.
func (t Twips) Pixels() float64 {
	return float64(t) / TwipsPerPixel
}

// Point is a position or delta in twips.
type Point struct {
	X, Y Twips
}

// Pt is a convenience function to create a Point.
func Pt(x, y Twips) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Half returns the point with both coordinates halved, truncating toward zero.
func (p Point) Half() Point {
	return Point{X: p.X / 2, Y: p.Y / 2}
}

// Pixels returns the point in pixel space.
func (p Point) Pixels() (x, y float64) {
	return p.X.Pixels(), p.Y.Pixels()
}
