package swf

import (
	"fmt"
	"math"
)

// Filter is a bitmap filter attached to a display object by PlaceObject3.
// The concrete types are BlurFilter, DropShadowFilter, GlowFilter,
// BevelFilter, GradientFilter, ConvolutionFilter and ColorMatrixFilter.
// Rendering filters is the job of the host renderer; the runtime only
// parses, stores and compares them.
type Filter interface {
	isFilter()
}

// BlurFilter blurs the object with a box blur applied Passes times.
type BlurFilter struct {
	BlurX, BlurY float64
	Passes       uint8
}

// DropShadowFilter casts a shadow offset by Angle and Distance.
type DropShadowFilter struct {
	Color           Color
	BlurX, BlurY    float64
	Angle, Distance float64
	Strength        float64
	Inner           bool
	Knockout        bool
	CompositeSource bool
	Passes          uint8
}

// GlowFilter draws a colored glow around (or inside) the object.
type GlowFilter struct {
	Color           Color
	BlurX, BlurY    float64
	Strength        float64
	Inner           bool
	Knockout        bool
	CompositeSource bool
	Passes          uint8
}

// BevelFilter lights and shades the object's edges.
type BevelFilter struct {
	ShadowColor     Color
	HighlightColor  Color
	BlurX, BlurY    float64
	Angle, Distance float64
	Strength        float64
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

// GradientFilter is a gradient glow (Bevel false) or gradient bevel.
type GradientFilter struct {
	Bevel           bool
	Records         []GradientRecord
	BlurX, BlurY    float64
	Angle, Distance float64
	Strength        float64
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

// ConvolutionFilter applies a MatrixX by MatrixY kernel.
type ConvolutionFilter struct {
	MatrixX, MatrixY uint8
	Divisor, Bias    float32
	Matrix           []float32
	DefaultColor     Color
	Clamp            bool
	PreserveAlpha    bool
}

// ColorMatrixFilter applies a 4x5 color matrix.
type ColorMatrixFilter struct {
	Matrix [20]float32
}

func (*BlurFilter) isFilter()        {}
func (*DropShadowFilter) isFilter()  {}
func (*GlowFilter) isFilter()        {}
func (*BevelFilter) isFilter()       {}
func (*GradientFilter) isFilter()    {}
func (*ConvolutionFilter) isFilter() {}
func (*ColorMatrixFilter) isFilter() {}

var identityColorMatrix = [20]float32{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// FilterImpotent reports whether f has no visible effect and can be skipped.
func FilterImpotent(f Filter) bool {
	switch f := f.(type) {
	case *BlurFilter:
		return f.Passes == 0 || (f.BlurX <= 1 && f.BlurY <= 1)
	case *ColorMatrixFilter:
		return f.Matrix == identityColorMatrix
	default:
		return false
	}
}

// FilterDestRect returns the area a filter paints into when applied to
// source. Filters that do not grow their source return it unchanged.
func FilterDestRect(f Filter, source Rectangle) Rectangle {
	if !source.Valid() {
		return source
	}
	switch f := f.(type) {
	case *BlurFilter:
		return growBlur(source, f.BlurX, f.BlurY, f.Passes)
	case *GlowFilter:
		return growBlur(source, f.BlurX, f.BlurY, f.Passes)
	case *DropShadowFilter:
		r := growBlur(source, f.BlurX, f.BlurY, f.Passes)
		return r.Union(offsetRect(r, f.Angle, f.Distance))
	case *BevelFilter:
		r := growBlur(source, f.BlurX, f.BlurY, f.Passes)
		return r.Union(offsetRect(r, f.Angle, f.Distance)).Union(offsetRect(r, f.Angle, -f.Distance))
	default:
		return source
	}
}

func growBlur(r Rectangle, bx, by float64, passes uint8) Rectangle {
	dx := TwipsFromPixels(math.Floor(bx) * float64(passes) / 2)
	dy := TwipsFromPixels(math.Floor(by) * float64(passes) / 2)
	return Rectangle{XMin: r.XMin - dx, XMax: r.XMax + dx, YMin: r.YMin - dy, YMax: r.YMax + dy}
}

func offsetRect(r Rectangle, angle, distance float64) Rectangle {
	dx := TwipsFromPixels(math.Cos(angle) * distance)
	dy := TwipsFromPixels(math.Sin(angle) * distance)
	return Rectangle{XMin: r.XMin + dx, XMax: r.XMax + dx, YMin: r.YMin + dy, YMax: r.YMax + dy}
}

// ReadFilters reads a FILTERLIST.
func (r *Reader) ReadFilters() ([]Filter, error) {
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	filters := make([]Filter, 0, n)
	for range n {
		f, err := r.readFilter()
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// filterReader accumulates the first error so the fixed-layout filter
// records read as straight-line code.
type filterReader struct {
	r   *Reader
	err error
}

func (fr *filterReader) u8() uint8 {
	if fr.err != nil {
		return 0
	}
	v, err := fr.r.ReadU8()
	fr.err = err
	return v
}

func (fr *filterReader) fixed16() float64 {
	if fr.err != nil {
		return 0
	}
	v, err := fr.r.ReadFixed16()
	fr.err = err
	return v
}

func (fr *filterReader) fixed8() float64 {
	if fr.err != nil {
		return 0
	}
	v, err := fr.r.ReadFixed8()
	fr.err = err
	return v
}

func (fr *filterReader) f32() float32 {
	if fr.err != nil {
		return 0
	}
	v, err := fr.r.ReadF32()
	fr.err = err
	return v
}

func (fr *filterReader) rgba() Color {
	if fr.err != nil {
		return Color{}
	}
	v, err := fr.r.ReadRGBA()
	fr.err = err
	return v
}

func (r *Reader) readFilter() (Filter, error) {
	fr := &filterReader{r: r}
	id := fr.u8()
	if fr.err != nil {
		return nil, fr.err
	}
	var f Filter
	switch id {
	case 0:
		d := &DropShadowFilter{Color: fr.rgba()}
		d.BlurX, d.BlurY = fr.fixed16(), fr.fixed16()
		d.Angle, d.Distance = fr.fixed16(), fr.fixed16()
		d.Strength = fr.fixed8()
		flags := fr.u8()
		d.Inner, d.Knockout, d.CompositeSource = flags&0x80 != 0, flags&0x40 != 0, flags&0x20 != 0
		d.Passes = flags & 0x1f
		f = d
	case 1:
		b := &BlurFilter{}
		b.BlurX, b.BlurY = fr.fixed16(), fr.fixed16()
		b.Passes = fr.u8() >> 3
		f = b
	case 2:
		g := &GlowFilter{Color: fr.rgba()}
		g.BlurX, g.BlurY = fr.fixed16(), fr.fixed16()
		g.Strength = fr.fixed8()
		flags := fr.u8()
		g.Inner, g.Knockout, g.CompositeSource = flags&0x80 != 0, flags&0x40 != 0, flags&0x20 != 0
		g.Passes = flags & 0x1f
		f = g
	case 3:
		b := &BevelFilter{ShadowColor: fr.rgba(), HighlightColor: fr.rgba()}
		b.BlurX, b.BlurY = fr.fixed16(), fr.fixed16()
		b.Angle, b.Distance = fr.fixed16(), fr.fixed16()
		b.Strength = fr.fixed8()
		flags := fr.u8()
		b.Inner, b.Knockout, b.CompositeSource = flags&0x80 != 0, flags&0x40 != 0, flags&0x20 != 0
		b.OnTop = flags&0x10 != 0
		b.Passes = flags & 0x0f
		f = b
	case 4, 7:
		g := &GradientFilter{Bevel: id == 7}
		n := int(fr.u8())
		g.Records = make([]GradientRecord, n)
		for i := range g.Records {
			g.Records[i].Color = fr.rgba()
		}
		for i := range g.Records {
			g.Records[i].Ratio = fr.u8()
		}
		g.BlurX, g.BlurY = fr.fixed16(), fr.fixed16()
		g.Angle, g.Distance = fr.fixed16(), fr.fixed16()
		g.Strength = fr.fixed8()
		flags := fr.u8()
		g.Inner, g.Knockout, g.CompositeSource = flags&0x80 != 0, flags&0x40 != 0, flags&0x20 != 0
		g.OnTop = flags&0x10 != 0
		g.Passes = flags & 0x0f
		f = g
	case 5:
		c := &ConvolutionFilter{MatrixX: fr.u8(), MatrixY: fr.u8()}
		c.Divisor, c.Bias = fr.f32(), fr.f32()
		c.Matrix = make([]float32, int(c.MatrixX)*int(c.MatrixY))
		for i := range c.Matrix {
			c.Matrix[i] = fr.f32()
		}
		c.DefaultColor = fr.rgba()
		flags := fr.u8()
		c.Clamp, c.PreserveAlpha = flags&0x02 != 0, flags&0x01 != 0
		f = c
	case 6:
		c := &ColorMatrixFilter{}
		for i := range c.Matrix {
			c.Matrix[i] = fr.f32()
		}
		f = c
	default:
		return nil, fmt.Errorf("filter id %d: %w", id, ErrInvalidData)
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return f, nil
}
