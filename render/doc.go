// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns a display tree into pixels.
//
// Walk visits every visible object in render order with its transform,
// blend mode and bounds resolved against its ancestors. Renderers build
// on it: Rasterizer is a CPU renderer drawing into a RenderTarget, and
// BlendState maps blend modes to fixed-function GPU blend states for
// renderers that composite on the GPU.
//
// # Usage
//
//	lib, sprite := library.Preload(swf.NewSlice(movie))
//	root := display.NewRoot(lib, sprite)
//	root.EnterFrame(lib)
//
//	target := render.NewPixmapTarget(550, 400)
//	if err := render.NewRasterizer(lib).Render(target, root); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinates
//
// Display objects are placed in twips. The rasterizer maps the stage
// origin to the target origin at one pixel per 20 twips, scaled by
// WithScale.
package render
