// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/swf/display"

// Renderer draws a display tree into a target.
//
// Renderers are NOT thread-safe. Each renderer should be used from a
// single goroutine.
type Renderer interface {
	// Render draws root and its descendants. The tree is not modified and
	// can be rendered any number of times.
	Render(target RenderTarget, root display.Object) error
}

var _ Renderer = (*Rasterizer)(nil)
