package display

import "github.com/gogpu/swf"

// Transform is the placement of a display object relative to its parent.
type Transform struct {
	Matrix         swf.Matrix
	ColorTransform swf.ColorTransform
}

// IdentityTransform returns the transform that changes nothing.
func IdentityTransform() Transform {
	return Transform{
		Matrix:         swf.Identity(),
		ColorTransform: swf.IdentityColorTransform(),
	}
}

// Concat returns the transform of an object placed with child inside an
// object placed with t.
func (t Transform) Concat(child Transform) Transform {
	return Transform{
		Matrix:         t.Matrix.Multiply(child.Matrix),
		ColorTransform: t.ColorTransform.Concat(child.ColorTransform),
	}
}
