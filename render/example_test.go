// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/display"
	"github.com/gogpu/swf/internal/swftest"
	"github.com/gogpu/swf/library"
	"github.com/gogpu/swf/render"
)

// ExampleWalk lists the objects of a frame in the order they are drawn.
func ExampleWalk() {
	box := swftest.Box{XMax: 200, YMax: 200}
	m, err := swf.Parse(swftest.Movie(10, 1,
		swftest.DefineShape(1, box, 255, 0, 0),
		swftest.PlaceObject(swftest.Place{Depth: 5, ID: 1}),
		swftest.PlaceObject(swftest.Place{Depth: 2, ID: 1, Name: "back"}),
		swftest.ShowFrame(),
	))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	lib, sprite := library.Preload(swf.NewSlice(m))
	root := display.NewRoot(lib, sprite)
	root.EnterFrame(lib)

	render.Walk(root, lib, func(it *render.Item) bool {
		if it.Level > 0 {
			fmt.Println(it.Depth, it.Object.Base().Name(), it.Bounds.Width().Pixels())
		}
		return true
	})
	// Output:
	// 2 back 10
	// 5 instance1 10
}

// ExampleRasterizer renders the first frame into an image.
func ExampleRasterizer() {
	box := swftest.Box{XMax: 200, YMax: 200}
	m, err := swf.Parse(swftest.Movie(10, 1,
		swftest.DefineShape(1, box, 255, 0, 0),
		swftest.PlaceObject(swftest.Place{Depth: 1, ID: 1}),
		swftest.ShowFrame(),
	))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	lib, sprite := library.Preload(swf.NewSlice(m))
	root := display.NewRoot(lib, sprite)
	root.EnterFrame(lib)

	target := render.NewPixmapTarget(20, 20)
	if err := render.NewRasterizer(lib).Render(target, root); err != nil {
		fmt.Println("render failed:", err)
		return
	}
	fmt.Println(target.GetPixel(5, 5), target.GetPixel(15, 15))
	// Output:
	// {255 0 0 255} {0 0 0 0}
}
