package swf

import "math"

// Color is a straight (non-premultiplied) RGBA color.
type Color struct {
	R, G, B, A uint8
}

// ColorFromRGBA unpacks a 0xRRGGBBAA value.
func ColorFromRGBA(v uint32) Color {
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// RGBA implements image/color.Color with premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 255
	g = uint32(c.G) * a / 255
	b = uint32(c.B) * a / 255
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// Lerp blends c toward o with weights a and b. Channels saturate.
func (c Color) Lerp(o Color, a, b float64) Color {
	return Color{
		R: saturateU8(a*float64(c.R) + b*float64(o.R)),
		G: saturateU8(a*float64(c.G) + b*float64(o.G)),
		B: saturateU8(a*float64(c.B) + b*float64(o.B)),
		A: saturateU8(a*float64(c.A) + b*float64(o.A)),
	}
}

// saturateU8 truncates toward zero and clamps to [0, 255].
func saturateU8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// ColorTransform is a per-channel multiply followed by an add. Add terms
// are in 0..255 channel units.
type ColorTransform struct {
	RMult, GMult, BMult, AMult float64
	RAdd, GAdd, BAdd, AAdd     int16
}

// IdentityColorTransform returns the transform that leaves colors unchanged.
func IdentityColorTransform() ColorTransform {
	return ColorTransform{RMult: 1, GMult: 1, BMult: 1, AMult: 1}
}

// IsIdentity reports whether ct leaves colors unchanged.
func (ct ColorTransform) IsIdentity() bool {
	return ct == IdentityColorTransform()
}

// Concat returns ct applied after child.
func (ct ColorTransform) Concat(child ColorTransform) ColorTransform {
	return ColorTransform{
		RMult: ct.RMult * child.RMult,
		GMult: ct.GMult * child.GMult,
		BMult: ct.BMult * child.BMult,
		AMult: ct.AMult * child.AMult,
		RAdd:  clampI16(ct.RMult*float64(child.RAdd) + float64(ct.RAdd)),
		GAdd:  clampI16(ct.GMult*float64(child.GAdd) + float64(ct.GAdd)),
		BAdd:  clampI16(ct.BMult*float64(child.BAdd) + float64(ct.BAdd)),
		AAdd:  clampI16(ct.AMult*float64(child.AAdd) + float64(ct.AAdd)),
	}
}

// Apply transforms c.
func (ct ColorTransform) Apply(c Color) Color {
	return Color{
		R: saturateU8(float64(c.R)*ct.RMult + float64(ct.RAdd)),
		G: saturateU8(float64(c.G)*ct.GMult + float64(ct.GAdd)),
		B: saturateU8(float64(c.B)*ct.BMult + float64(ct.BAdd)),
		A: saturateU8(float64(c.A)*ct.AMult + float64(ct.AAdd)),
	}
}

func clampI16(v float64) int16 {
	return int16(max(math.MinInt16, min(math.MaxInt16, math.Round(v))))
}
