package swf

import "strconv"

// BlendMode is the compositing mode of a display object. The zero value
// is BlendNormal.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendLayer
	BlendMultiply
	BlendScreen
	BlendLighten
	BlendDarken
	BlendDifference
	BlendAdd
	BlendSubtract
	BlendInvert
	BlendAlpha
	BlendErase
	BlendOverlay
	BlendHardLight
)

// BlendModeFromByte decodes a PlaceObject3 blend mode byte, where both 0
// and 1 mean Normal. Unknown values decode as Normal.
func BlendModeFromByte(b uint8) BlendMode {
	if b <= 1 || b > 14 {
		return BlendNormal
	}
	return BlendMode(b - 1)
}

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	switch mode {
	case BlendNormal:
		return "Normal"
	case BlendLayer:
		return "Layer"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendLighten:
		return "Lighten"
	case BlendDarken:
		return "Darken"
	case BlendDifference:
		return "Difference"
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	case BlendInvert:
		return "Invert"
	case BlendAlpha:
		return "Alpha"
	case BlendErase:
		return "Erase"
	case BlendOverlay:
		return "Overlay"
	case BlendHardLight:
		return "HardLight"
	default:
		return "BlendMode(" + strconv.Itoa(int(mode)) + ")"
	}
}
