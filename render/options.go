// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/swf"

// Option configures a Rasterizer.
type Option func(*options)

type options struct {
	scale      float64
	flipX      bool
	flipY      bool
	background *swf.Color
}

func defaultOptions() options {
	return options{scale: 1}
}

// WithScale sets the number of target pixels per stage pixel.
// Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(o *options) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithFlipX mirrors the output horizontally.
func WithFlipX(flip bool) Option {
	return func(o *options) {
		o.flipX = flip
	}
}

// WithFlipY mirrors the output vertically, for targets whose rows run
// bottom to top.
func WithFlipY(flip bool) Option {
	return func(o *options) {
		o.flipY = flip
	}
}

// WithBackground overrides the movie's background color. The target is
// cleared to it before each frame.
func WithBackground(c swf.Color) Option {
	return func(o *options) {
		o.background = &c
	}
}
