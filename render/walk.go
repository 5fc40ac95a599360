// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/swf"
	"github.com/gogpu/swf/display"
	"github.com/gogpu/swf/library"
)

// Item is one display object as seen by a renderer, with its placement
// resolved against every ancestor.
type Item struct {
	Object      display.Object
	Character   library.Character
	CharacterID swf.CharacterID
	Depth       swf.Depth
	ClipDepth   swf.Depth

	// Level is the nesting depth below the walk root, which is level 0.
	Level int

	// Transform maps the object's local space to the root's parent space.
	Transform display.Transform

	// BlendMode is the object's own mode unless an ancestor composites
	// with a mode other than Normal, in which case that mode applies.
	BlendMode swf.BlendMode

	Filters []swf.Filter

	// Bounds is the object's self bounds in root space. Movie clips have
	// no content of their own and report an invalid rectangle.
	Bounds swf.Rectangle
}

// Walk visits root and every visible descendant in render order, depth
// first. Invisible objects are skipped together with their children.
// Returning false from visit stops the walk.
func Walk(root display.Object, lib *library.Library, visit func(*Item) bool) {
	w := walker{lib: lib, visit: visit, stack: NewTransformStack()}
	w.walk(root, 0, swf.BlendNormal)
}

type walker struct {
	lib   *library.Library
	visit func(*Item) bool
	stack *TransformStack
	done  bool
}

func (w *walker) walk(obj display.Object, level int, inherited swf.BlendMode) {
	b := obj.Base()
	if !b.Visible() {
		return
	}
	w.stack.Push(b.Transform())
	defer w.stack.Pop()

	blend := b.BlendMode()
	if inherited != swf.BlendNormal {
		blend = inherited
	}
	tr := w.stack.Transform()
	item := &Item{
		Object:      obj,
		CharacterID: obj.CharacterID(),
		Depth:       b.Depth(),
		ClipDepth:   b.ClipDepth(),
		Level:       level,
		Transform:   tr,
		BlendMode:   blend,
		Filters:     b.Filters(),
		Bounds:      swf.InvalidRect(),
	}
	if w.lib != nil {
		item.Character, _ = w.lib.Character(item.CharacterID)
	}
	if self := display.SelfBounds(obj); self.Valid() {
		item.Bounds = tr.Matrix.TransformRect(self)
	}
	if !w.visit(item) {
		w.done = true
		return
	}

	mc, ok := obj.(*display.MovieClip)
	if !ok {
		return
	}
	for _, child := range mc.Container().RenderList() {
		w.walk(child, level+1, blend)
		if w.done {
			return
		}
	}
}

// TransformStack accumulates transforms while descending a display tree.
// The zero value is not usable; create one with NewTransformStack.
type TransformStack struct {
	stack []display.Transform
}

// NewTransformStack returns a stack holding only the identity transform.
func NewTransformStack() *TransformStack {
	return &TransformStack{stack: []display.Transform{display.IdentityTransform()}}
}

// Push concatenates t onto the current transform.
func (s *TransformStack) Push(t display.Transform) {
	s.stack = append(s.stack, s.Transform().Concat(t))
}

// Pop discards the most recent Push. Popping more than was pushed is a
// programming error and panics.
func (s *TransformStack) Pop() {
	if len(s.stack) <= 1 {
		panic("render: transform stack underflow")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Transform returns the accumulated transform.
func (s *TransformStack) Transform() display.Transform {
	return s.stack[len(s.stack)-1]
}

// Len returns the number of pushed transforms.
func (s *TransformStack) Len() int { return len(s.stack) - 1 }
