package display

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/swf"
)

func graphicAt(depth swf.Depth) *Graphic {
	g := &Graphic{base: newBase(), id: swf.CharacterID(depth)}
	g.base.depth = depth
	return g
}

func renderDepths(c *Container) []swf.Depth {
	var out []swf.Depth
	for _, child := range c.RenderList() {
		out = append(out, child.Base().Depth())
	}
	return out
}

func checkContainer(t *testing.T, c *Container) {
	t.Helper()
	depths := c.Depths()
	if len(c.RenderList()) != len(depths) || c.Len() != len(depths) {
		t.Fatalf("render list has %d entries for %d depths", len(c.RenderList()), len(depths))
	}
	if !slices.IsSorted(depths) {
		t.Fatalf("Depths() = %v, not sorted", depths)
	}
	if len(slices.Compact(slices.Clone(depths))) != len(depths) {
		t.Fatalf("Depths() = %v has duplicates", depths)
	}
	for _, d := range depths {
		child := c.ChildByDepth(d)
		if child == nil || child.Base().Depth() != d {
			t.Fatalf("ChildByDepth(%d) = %v", d, child)
		}
		if !slices.Contains(c.RenderList(), child) {
			t.Fatalf("child at depth %d missing from render list", d)
		}
	}
}

func TestContainer_DepthUniqueness(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var c Container
	for range 2000 {
		depth := swf.Depth(rng.IntN(32))
		if rng.IntN(3) == 0 {
			c.RemoveChild(depth)
		} else {
			c.ReplaceAtDepth(depth, graphicAt(depth))
		}
		checkContainer(t, &c)
	}
}

func TestContainer_InsertBeforeNextHigher(t *testing.T) {
	tests := []struct {
		name  string
		order []swf.Depth
		want  []swf.Depth
	}{
		{"ascending", []swf.Depth{1, 2, 3}, []swf.Depth{1, 2, 3}},
		{"descending", []swf.Depth{5, 3}, []swf.Depth{3, 5}},
		{"between", []swf.Depth{1, 10, 5}, []swf.Depth{1, 5, 10}},
		{"highest appends", []swf.Depth{4, 2, 9}, []swf.Depth{2, 4, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Container
			for _, d := range tt.order {
				if prev := c.ReplaceAtDepth(d, graphicAt(d)); prev != nil {
					t.Fatalf("ReplaceAtDepth(%d) returned a previous occupant", d)
				}
			}
			if got := renderDepths(&c); !slices.Equal(got, tt.want) {
				t.Errorf("render order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainer_InsertionPositionLaw(t *testing.T) {
	for d := swf.Depth(0); d < 20; d++ {
		for above := d + 1; above <= 20; above++ {
			var c Container
			c.ReplaceAtDepth(above, graphicAt(above))
			c.ReplaceAtDepth(above+5, graphicAt(above+5))
			child := graphicAt(d)
			c.ReplaceAtDepth(d, child)

			render := c.RenderList()
			i := slices.Index(render, Object(child))
			j := slices.Index(render, c.ChildByDepth(above))
			if i != j-1 {
				t.Fatalf("depth %d at index %d, neighbor %d at %d", d, i, above, j)
			}
		}
	}
}

func TestContainer_ReplaceKeepsRenderPosition(t *testing.T) {
	var c Container
	for _, d := range []swf.Depth{1, 2, 3} {
		c.ReplaceAtDepth(d, graphicAt(d))
	}
	old := c.ChildByDepth(2)
	repl := graphicAt(2)
	repl.id = 99

	if prev := c.ReplaceAtDepth(2, repl); prev != old {
		t.Fatalf("ReplaceAtDepth() returned %v, want the old occupant", prev)
	}
	if c.RenderList()[1] != Object(repl) {
		t.Errorf("replacement not at the old render position: %v", renderDepths(&c))
	}
	checkContainer(t, &c)
}

func TestContainer_RemoveChild(t *testing.T) {
	var c Container
	c.ReplaceAtDepth(1, graphicAt(1))
	c.ReplaceAtDepth(2, graphicAt(2))

	if _, ok := c.RemoveChild(7); ok {
		t.Error("RemoveChild(7) on an empty depth reported true")
	}
	got, ok := c.RemoveChild(1)
	if !ok || got.Base().Depth() != 1 {
		t.Fatalf("RemoveChild(1) = %v, %v", got, ok)
	}
	if c.ChildByDepth(1) != nil {
		t.Error("depth 1 still occupied")
	}
	if d := renderDepths(&c); !slices.Equal(d, []swf.Depth{2}) {
		t.Errorf("render order = %v, want [2]", d)
	}
}
