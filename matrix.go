package swf

import "math"

// Matrix is a SWF affine transformation. The scale/skew terms are
// unitless and the translation is in twips:
//
//	| A  C  Tx |
//	| B  D  Ty |
//
// This represents the transformation:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Matrix struct {
	A, B, C, D float64
	Tx, Ty     Twips
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y Twips) Matrix {
	return Matrix{A: 1, D: 1, Tx: x, Ty: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		Tx: roundTwips(m.A*float64(other.Tx)+m.C*float64(other.Ty)) + m.Tx,
		Ty: roundTwips(m.B*float64(other.Tx)+m.D*float64(other.Ty)) + m.Ty,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	x, y := float64(p.X), float64(p.Y)
	return Point{
		X: roundTwips(m.A*x+m.C*y) + m.Tx,
		Y: roundTwips(m.B*x+m.D*y) + m.Ty,
	}
}

// TransformRect returns the axis-aligned bounds of r after transformation.
// Invalid rectangles are returned unchanged.
func (m Matrix) TransformRect(r Rectangle) Rectangle {
	if !r.Valid() {
		return r
	}
	out := InvalidRect()
	for _, p := range [4]Point{
		{r.XMin, r.YMin}, {r.XMax, r.YMin},
		{r.XMin, r.YMax}, {r.XMax, r.YMax},
	} {
		out = out.Encompass(m.TransformPoint(p))
	}
	return out
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	tx, ty := float64(m.Tx), float64(m.Ty)
	return Matrix{
		A: a, B: b, C: c, D: d,
		Tx: roundTwips(-(a*tx + c*ty)),
		Ty: roundTwips(-(b*tx + d*ty)),
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Lerp interpolates element-wise between m and o with weights a and b
// (a + b == 1). Translation is rounded to whole twips.
func (m Matrix) Lerp(o Matrix, a, b float64) Matrix {
	return Matrix{
		A:  m.A*a + o.A*b,
		B:  m.B*a + o.B*b,
		C:  m.C*a + o.C*b,
		D:  m.D*a + o.D*b,
		Tx: LerpTwips(m.Tx, o.Tx, a, b),
		Ty: LerpTwips(m.Ty, o.Ty, a, b),
	}
}

// LerpTwips blends two twip values, rounding to nearest.
func LerpTwips(start, end Twips, a, b float64) Twips {
	return roundTwips(float64(start)*a + float64(end)*b)
}

func roundTwips(v float64) Twips {
	return Twips(math.Round(v))
}
