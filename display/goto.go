package display

import "github.com/gogpu/swf"

// GotoPlaceObject is the combined effect of the PlaceObject tags a goto
// skips over at one depth.
type GotoPlaceObject struct {
	// Frame is the frame of the last tag that placed or replaced a
	// character.
	Frame uint16

	Place swf.PlaceObject

	// Index orders commands by the first tag seen at their depth.
	Index int

	// TagStart and TagLength locate the first tag body in the clip's
	// slice, for re-reading when the placement is queued.
	TagStart  int
	TagLength int
	Version   uint8
}

// NewGotoPlaceObject captures po as read on frame. When rewinding, a
// placement of a new character fills every field it leaves unset with
// its default, so the instance does not keep state from a later frame.
func NewGotoPlaceObject(frame uint16, po *swf.PlaceObject, rewind bool, index int) GotoPlaceObject {
	g := GotoPlaceObject{Frame: frame, Place: *po, Index: index, Version: po.Version}
	if rewind && po.Kind == swf.PlaceNew {
		p := &g.Place
		if p.Matrix == nil {
			m := swf.Identity()
			p.Matrix = &m
		}
		if p.ColorTransform == nil {
			ct := swf.IdentityColorTransform()
			p.ColorTransform = &ct
		}
		if p.Ratio == nil {
			p.Ratio = new(uint16)
		}
		if p.BlendMode == nil {
			p.BlendMode = new(swf.BlendMode)
		}
		if p.CacheAsBitmap == nil {
			p.CacheAsBitmap = new(bool)
		}
		if p.BackgroundColor == nil {
			p.BackgroundColor = new(swf.Color)
		}
		if !p.HasFilters {
			p.HasFilters = true
			p.Filters = nil
		}
	}
	return g
}

// Depth returns the depth the command applies to.
func (g *GotoPlaceObject) Depth() swf.Depth { return g.Place.Depth }

// Merge folds a later command at the same depth into g. A Modify keeps
// the earlier action; any other action replaces it and moves Frame
// forward. Every field next sets overwrites the merged value.
func (g *GotoPlaceObject) Merge(next *GotoPlaceObject) {
	cur, n := &g.Place, &next.Place
	if n.Kind != swf.PlaceModify {
		cur.Kind = n.Kind
		cur.ID = n.ID
		g.Frame = next.Frame
	}
	if n.Matrix != nil {
		cur.Matrix = n.Matrix
	}
	if n.ColorTransform != nil {
		cur.ColorTransform = n.ColorTransform
	}
	if n.Ratio != nil {
		cur.Ratio = n.Ratio
	}
	if n.BlendMode != nil {
		cur.BlendMode = n.BlendMode
	}
	if n.CacheAsBitmap != nil {
		cur.CacheAsBitmap = n.CacheAsBitmap
	}
	if n.Visible != nil {
		cur.Visible = n.Visible
	}
	if n.BackgroundColor != nil {
		cur.BackgroundColor = n.BackgroundColor
	}
	if n.HasFilters {
		cur.HasFilters = true
		cur.Filters = n.Filters
	}
}
