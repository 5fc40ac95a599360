package swf

// CharacterID identifies a character within one movie's library.
type CharacterID uint16

// Depth is the z-order key of a display object within its parent.
type Depth int32

// FillStyle is one entry of a shape's fill style list. The concrete types
// are SolidFill, LinearGradientFill, RadialGradientFill,
// FocalGradientFill and BitmapFill.
type FillStyle interface {
	isFillStyle()
}

// SolidFill fills with a single color.
type SolidFill struct {
	Color Color
}

// LinearGradientFill fills with a gradient along the x axis of the
// gradient square (-16384..16384 twips) mapped through Gradient.Matrix.
type LinearGradientFill struct {
	Gradient Gradient
}

// RadialGradientFill fills with a gradient radiating from the center of
// the gradient square.
type RadialGradientFill struct {
	Gradient Gradient
}

// FocalGradientFill is a radial gradient whose focal point is moved along
// the x axis; FocalPoint is in -1..1.
type FocalGradientFill struct {
	Gradient   Gradient
	FocalPoint float64
}

// BitmapFill fills with a bitmap character.
type BitmapFill struct {
	ID        CharacterID
	Matrix    Matrix
	Smoothed  bool
	Repeating bool
}

func (SolidFill) isFillStyle()          {}
func (LinearGradientFill) isFillStyle() {}
func (RadialGradientFill) isFillStyle() {}
func (FocalGradientFill) isFillStyle()  {}
func (BitmapFill) isFillStyle()         {}

// GradientSpread is the spread mode of a gradient outside 0..255.
type GradientSpread uint8

const (
	SpreadPad GradientSpread = iota
	SpreadReflect
	SpreadRepeat
)

// GradientInterpolation selects the color space gradients blend in.
type GradientInterpolation uint8

const (
	InterpolationRGB GradientInterpolation = iota
	InterpolationLinearRGB
)

// Gradient is a list of color stops plus the mapping from shape space.
type Gradient struct {
	Matrix        Matrix
	Spread        GradientSpread
	Interpolation GradientInterpolation
	Records       []GradientRecord
}

// GradientRecord is one gradient stop. Ratio is 0..255.
type GradientRecord struct {
	Ratio uint8
	Color Color
}

// LineCap is the end cap style of a stroke.
type LineCap uint8

const (
	CapRound LineCap = iota
	CapNone
	CapSquare
)

// LineJoin is the corner style of a stroke.
type LineJoin uint8

const (
	JoinRound LineJoin = iota
	JoinBevel
	JoinMiter
)

// LineStyle describes a stroke.
type LineStyle struct {
	Width        Twips
	Fill         FillStyle
	StartCap     LineCap
	EndCap       LineCap
	Join         LineJoin
	MiterLimit   float64
	NoHScale     bool
	NoVScale     bool
	PixelHinting bool
	NoClose      bool
}

// Color returns the stroke color when the stroke is a solid fill, or the
// first gradient stop otherwise.
func (ls *LineStyle) Color() Color {
	return FillColor(ls.Fill)
}

// FillColor returns a representative color for a fill style: the color of
// a solid fill, or the first stop of a gradient. Bitmaps yield opaque black.
func FillColor(f FillStyle) Color {
	switch f := f.(type) {
	case SolidFill:
		return f.Color
	case LinearGradientFill:
		return firstStop(f.Gradient)
	case RadialGradientFill:
		return firstStop(f.Gradient)
	case FocalGradientFill:
		return firstStop(f.Gradient)
	default:
		return Color{A: 255}
	}
}

func firstStop(g Gradient) Color {
	if len(g.Records) == 0 {
		return Color{}
	}
	return g.Records[0].Color
}

// ShapeStyles groups the fill and line style lists active for a layer.
type ShapeStyles struct {
	FillStyles []FillStyle
	LineStyles []LineStyle
}

// ShapeRecord is one record of a shape's edge list. The concrete types are
// StyleChange, StraightEdge and CurvedEdge.
type ShapeRecord interface {
	isShapeRecord()
}

// StyleChange moves the pen and/or selects styles. Nil fields are unchanged.
// Style indices are 1-based; 0 selects no style.
type StyleChange struct {
	MoveTo     *Point
	FillStyle0 *uint32
	FillStyle1 *uint32
	LineStyle  *uint32
	NewStyles  *ShapeStyles
}

// StraightEdge draws a line by Delta from the pen.
type StraightEdge struct {
	Delta Point
}

// CurvedEdge draws a quadratic curve. Both deltas are relative: Control
// from the pen, Anchor from the control point.
type CurvedEdge struct {
	Control Point
	Anchor  Point
}

func (StyleChange) isShapeRecord()  {}
func (StraightEdge) isShapeRecord() {}
func (CurvedEdge) isShapeRecord()   {}

// ShapeFlags are the DefineShape4 / DefineMorphShape2 flags.
type ShapeFlags uint8

const (
	ShapeScalingStrokes    ShapeFlags = 1 << 0
	ShapeNonScalingStrokes ShapeFlags = 1 << 1
	ShapeNonZeroWinding    ShapeFlags = 1 << 2
)

// Shape is a parsed DefineShape tag, or one keyframe of a morph shape.
type Shape struct {
	Version     uint8
	ID          CharacterID
	ShapeBounds Rectangle
	EdgeBounds  Rectangle
	Flags       ShapeFlags
	Styles      ShapeStyles
	Records     []ShapeRecord
}

// DefineMorphShape is a parsed DefineMorphShape tag. Start and End share
// their style and record topology; the runtime interpolates between them.
type DefineMorphShape struct {
	Version uint8
	ID      CharacterID
	Flags   ShapeFlags
	Start   Shape
	End     Shape
}

func ptr[T any](v T) *T { return &v }

// Uint32Ptr returns a pointer to v, for building StyleChange records.
func Uint32Ptr(v uint32) *uint32 { return ptr(v) }
