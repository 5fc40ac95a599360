// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swf"
)

func component(src, dst gputypes.BlendFactor, op gputypes.BlendOperation) gputypes.BlendComponent {
	return gputypes.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: op}
}

// BlendState returns the fixed-function blend state that composites a
// premultiplied layer with mode. Modes that need the destination color in
// the shader (Overlay, HardLight, Difference, Alpha and Erase with
// non-trivial masks) report false and fall back to premultiplied
// source-over.
func BlendState(mode swf.BlendMode) (gputypes.BlendState, bool) {
	over := component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha, gputypes.BlendOperationAdd)
	switch mode {
	case swf.BlendNormal, swf.BlendLayer:
		return gputypes.BlendState{Color: over, Alpha: over}, true
	case swf.BlendMultiply:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorDst, gputypes.BlendFactorOneMinusSrcAlpha, gputypes.BlendOperationAdd),
			Alpha: over,
		}, true
	case swf.BlendScreen:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc, gputypes.BlendOperationAdd),
			Alpha: over,
		}, true
	case swf.BlendLighten:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationMax),
			Alpha: over,
		}, true
	case swf.BlendDarken:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationMin),
			Alpha: over,
		}, true
	case swf.BlendAdd:
		add := component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationAdd)
		return gputypes.BlendState{Color: add, Alpha: add}, true
	case swf.BlendSubtract:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationReverseSubtract),
			Alpha: over,
		}, true
	case swf.BlendInvert:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOneMinusDst, gputypes.BlendFactorOneMinusSrcAlpha, gputypes.BlendOperationAdd),
			Alpha: over,
		}, true
	case swf.BlendAlpha:
		keep := component(gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha, gputypes.BlendOperationAdd)
		return gputypes.BlendState{Color: keep, Alpha: keep}, true
	case swf.BlendErase:
		erase := component(gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha, gputypes.BlendOperationAdd)
		return gputypes.BlendState{Color: erase, Alpha: erase}, true
	default:
		return gputypes.BlendState{Color: over, Alpha: over}, false
	}
}
