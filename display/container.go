package display

import (
	"slices"

	"github.com/gogpu/swf"
)

// Container holds the children of a movie clip, indexed by depth and
// ordered for drawing.
//
// Render order is not depth order. A child placed on an empty depth is
// drawn just below the next higher occupied depth, and a child replacing
// another takes its place in the drawing order.
type Container struct {
	depths   []swf.Depth // sorted
	children map[swf.Depth]Object
	render   []Object
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.render) }

// ChildByDepth returns the child at depth, or nil.
func (c *Container) ChildByDepth(depth swf.Depth) Object {
	return c.children[depth]
}

// RenderList returns the children in drawing order, back to front. The
// slice is owned by the container and must not be modified.
func (c *Container) RenderList() []Object { return c.render }

// Depths returns the occupied depths in ascending order.
func (c *Container) Depths() []swf.Depth { return slices.Clone(c.depths) }

// ReplaceAtDepth puts child at depth and returns the previous occupant,
// or nil.
func (c *Container) ReplaceAtDepth(depth swf.Depth, child Object) Object {
	if c.children == nil {
		c.children = make(map[swf.Depth]Object)
	}
	child.Base().SetDepth(depth)
	prev, replaced := c.children[depth]
	c.children[depth] = child

	if replaced {
		if i := c.renderIndex(prev); i >= 0 {
			c.render[i] = child
		} else {
			swf.Logger().Warn("replaced child missing from render list", "depth", depth)
			if debugContainer {
				panic("display: replaced child missing from render list")
			}
			c.render = append(c.render, child)
		}
		return prev
	}

	i, _ := slices.BinarySearch(c.depths, depth)
	c.depths = slices.Insert(c.depths, i, depth)
	if i+1 < len(c.depths) {
		above := c.children[c.depths[i+1]]
		if j := c.renderIndex(above); j >= 0 {
			c.render = slices.Insert(c.render, j, child)
			return nil
		}
	}
	c.render = append(c.render, child)
	return nil
}

// RemoveChild removes the child at depth and returns it.
func (c *Container) RemoveChild(depth swf.Depth) (Object, bool) {
	child, ok := c.children[depth]
	if !ok {
		return nil, false
	}
	delete(c.children, depth)
	if i, found := slices.BinarySearch(c.depths, depth); found {
		c.depths = slices.Delete(c.depths, i, i+1)
	}
	if i := c.renderIndex(child); i >= 0 {
		c.render = slices.Delete(c.render, i, i+1)
	}
	return child, true
}

func (c *Container) renderIndex(child Object) int {
	return slices.Index(c.render, child)
}

func (c *Container) clone() Container {
	out := Container{
		depths:   slices.Clone(c.depths),
		children: make(map[swf.Depth]Object, len(c.children)),
		render:   make([]Object, len(c.render)),
	}
	for i, child := range c.render {
		cp := Clone(child)
		out.render[i] = cp
		out.children[cp.Base().Depth()] = cp
	}
	return out
}
