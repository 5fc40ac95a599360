package display

import (
	"fmt"
	"slices"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/library"
	"github.com/gogpu/swf/morph"
)

// Object is a display object: *Graphic, *MovieClip or *MorphShape.
type Object interface {
	// Base returns the shared state of the object.
	Base() *Base

	// CharacterID returns the library character the object was created
	// from.
	CharacterID() swf.CharacterID

	isObject()
}

// Graphic is an instance of a static shape.
type Graphic struct {
	base   Base
	id     swf.CharacterID
	shape  *swf.Shape
	bounds swf.Rectangle
}

// NewGraphic returns an instance of g.
func NewGraphic(g *library.Graphic) *Graphic {
	return &Graphic{base: newBase(), id: g.ID, shape: g.Shape, bounds: g.Bounds}
}

func (g *Graphic) Base() *Base                  { return &g.base }
func (g *Graphic) CharacterID() swf.CharacterID { return g.id }

// Shape returns the shape definition.
func (g *Graphic) Shape() *swf.Shape { return g.shape }

// MorphShape is an instance of a shape tween at some ratio.
type MorphShape struct {
	base      Base
	character *library.MorphShape
	ratio     uint16
}

// NewMorphShape returns an instance of m at ratio 0.
func NewMorphShape(m *library.MorphShape) *MorphShape {
	return &MorphShape{base: newBase(), character: m}
}

func (m *MorphShape) Base() *Base                  { return &m.base }
func (m *MorphShape) CharacterID() swf.CharacterID { return m.character.ID }

// Ratio returns the tween position, 0 for the start shape and
// morph.MaxRatio for the end shape.
func (m *MorphShape) Ratio() uint16 { return m.ratio }

// SetRatio sets the tween position.
func (m *MorphShape) SetRatio(ratio uint16) {
	if m.ratio != ratio {
		m.ratio = ratio
		m.base.invalidateCache()
	}
}

// Frame returns the interpolated shape at the current ratio.
func (m *MorphShape) Frame() *morph.Frame {
	return m.character.Frame(m.ratio)
}

func (*Graphic) isObject()    {}
func (*MovieClip) isObject()  {}
func (*MorphShape) isObject() {}

// SelfBounds returns the untransformed bounds of obj's own content. Movie
// clips have no content of their own and return an invalid rectangle.
func SelfBounds(obj Object) swf.Rectangle {
	switch o := obj.(type) {
	case *Graphic:
		return o.bounds
	case *MorphShape:
		return o.Frame().Bounds
	case *MovieClip:
		return swf.InvalidRect()
	default:
		panic(fmt.Sprintf("display: unknown object type %T", obj))
	}
}

// EnterFrame advances obj by one tick. Only movie clips have a timeline.
func EnterFrame(obj Object, lib *library.Library) {
	if mc, ok := obj.(*MovieClip); ok {
		mc.EnterFrame(lib)
	}
}

// ReplaceWith swaps the character behind obj for id, keeping the depth,
// name and transform. Graphics accept graphics and morph shapes accept
// morph shapes; anything else is logged and ignored. Movie clips keep
// their timeline.
func ReplaceWith(obj Object, lib *library.Library, id swf.CharacterID) {
	switch o := obj.(type) {
	case *Graphic:
		g, ok := lib.Graphic(id)
		if !ok {
			swf.Logger().Error("replace: expected a graphic", "id", id, "depth", o.base.depth)
			return
		}
		o.id, o.shape, o.bounds = g.ID, g.Shape, g.Bounds
		o.base.invalidateCache()
	case *MorphShape:
		m, ok := lib.MorphShape(id)
		if !ok {
			swf.Logger().Error("replace: expected a morph shape", "id", id, "depth", o.base.depth)
			return
		}
		o.character = m
		o.base.invalidateCache()
	case *MovieClip:
		swf.Logger().Debug("replace: movie clips keep their character", "id", id, "depth", o.base.depth)
	}
}

// Clone returns a deep copy of obj. Library definitions are shared.
func Clone(obj Object) Object {
	switch o := obj.(type) {
	case *Graphic:
		c := *o
		c.base = o.base.clone()
		return &c
	case *MorphShape:
		c := *o
		c.base = o.base.clone()
		return &c
	case *MovieClip:
		return o.clone()
	default:
		panic(fmt.Sprintf("display: unknown object type %T", obj))
	}
}

// Instantiate creates an instance of character id as placed by po on
// frame placeFrame of its parent, and runs its first frame. Unnamed
// instances are given a generated name. It returns nil, after logging,
// when id is not defined or cannot be displayed.
func Instantiate(lib *library.Library, id swf.CharacterID, po *swf.PlaceObject, placeFrame uint16, version uint8) Object {
	as3 := lib.Movie() != nil && lib.Movie().IsAS3()
	return instantiate(lib, id, po, placeFrame, version, as3, nil)
}

// instantiate places id below the clips in ancestors, outermost first.
// A sprite that is already one of its ancestors, or that would nest
// deeper than the library allows, is not created.
func instantiate(lib *library.Library, id swf.CharacterID, po *swf.PlaceObject, placeFrame uint16, version uint8, as3 bool, ancestors []swf.CharacterID) Object {
	c, ok := lib.Character(id)
	if !ok {
		swf.Logger().Error("unable to instantiate character", "id", id, "depth", po.Depth)
		return nil
	}
	var obj Object
	switch c := c.(type) {
	case *library.Sprite:
		if slices.Contains(ancestors, c.ID) {
			swf.Logger().Error("recursive sprite placement", "id", id, "depth", po.Depth)
			return nil
		}
		if len(ancestors) > lib.MaxNesting() {
			swf.Logger().Error("sprite nesting limit reached", "id", id, "depth", po.Depth, "limit", lib.MaxNesting())
			return nil
		}
		mc := NewMovieClip(c, as3)
		mc.ancestors = append(slices.Clone(ancestors), c.ID)
		obj = mc
	case *library.Graphic:
		obj = NewGraphic(c)
	case *library.MorphShape:
		obj = NewMorphShape(c)
	default:
		swf.Logger().Error("character is not displayable", "id", id, "type", fmt.Sprintf("%T", c))
		return nil
	}

	b := obj.Base()
	b.SetDepth(po.Depth)
	b.SetPlaceFrame(placeFrame)
	ApplyPlaceObject(obj, po, version)
	if len(po.Name) > 0 && lib.Movie() != nil {
		b.SetName(lib.Movie().DecodeString(po.Name))
	} else {
		b.SetName(lib.NextInstanceName())
	}
	EnterFrame(obj, lib)
	return obj
}
