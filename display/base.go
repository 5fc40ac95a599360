package display

import (
	"slices"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/swf"
)

// Base is the state every display object carries.
type Base struct {
	placeFrame uint16
	depth      swf.Depth
	clipDepth  swf.Depth
	name       string
	transform  Transform
	blendMode  swf.BlendMode
	filters    []swf.Filter

	cachePreference bool
	cache           *BitmapCache
	visible         bool
	background      *swf.Color
}

// BitmapCache marks an object that renders through an offscreen bitmap.
// Dirty is set whenever the cached pixels stop matching the object.
type BitmapCache struct {
	Dirty bool
}

func newBase() Base {
	return Base{
		transform: IdentityTransform(),
		visible:   true,
	}
}

// PlaceFrame returns the frame of the parent timeline the object was
// placed on.
func (b *Base) PlaceFrame() uint16 { return b.placeFrame }

// SetPlaceFrame sets the frame the object was placed on.
func (b *Base) SetPlaceFrame(frame uint16) { b.placeFrame = frame }

// Depth returns the depth of the object in its parent.
func (b *Base) Depth() swf.Depth { return b.depth }

// SetDepth sets the depth of the object.
func (b *Base) SetDepth(depth swf.Depth) { b.depth = depth }

// ClipDepth returns the highest depth masked by the object, or 0 when
// the object is not a mask.
func (b *Base) ClipDepth() swf.Depth { return b.clipDepth }

// SetClipDepth sets the clip depth.
func (b *Base) SetClipDepth(depth swf.Depth) { b.clipDepth = depth }

// Name returns the instance name.
func (b *Base) Name() string { return b.name }

// SetName sets the instance name.
func (b *Base) SetName(name string) { b.name = name }

// Transform returns the matrix and color transform of the object.
func (b *Base) Transform() Transform { return b.transform }

// Matrix returns the object's matrix.
func (b *Base) Matrix() swf.Matrix { return b.transform.Matrix }

// SetMatrix sets the object's matrix.
func (b *Base) SetMatrix(m swf.Matrix) { b.transform.Matrix = m }

// ColorTransform returns the object's color transform.
func (b *Base) ColorTransform() swf.ColorTransform { return b.transform.ColorTransform }

// SetColorTransform sets the object's color transform.
func (b *Base) SetColorTransform(ct swf.ColorTransform) { b.transform.ColorTransform = ct }

// BlendMode returns the object's blend mode.
func (b *Base) BlendMode() swf.BlendMode { return b.blendMode }

// SetBlendMode sets the blend mode and reports whether it changed.
func (b *Base) SetBlendMode(mode swf.BlendMode) bool {
	changed := b.blendMode != mode
	b.blendMode = mode
	return changed
}

// Filters returns the object's filter list. The slice must not be
// modified.
func (b *Base) Filters() []swf.Filter { return b.filters }

// SetFilters replaces the filter list and reports whether it changed. A
// change invalidates the bitmap cache and re-evaluates whether one is
// needed.
func (b *Base) SetFilters(filters []swf.Filter) bool {
	if len(filters) == 0 && len(b.filters) == 0 {
		return false
	}
	if cmp.Equal(filters, b.filters) {
		return false
	}
	b.filters = slices.Clone(filters)
	b.invalidateCache()
	b.recheckCache()
	return true
}

// CacheAsBitmap reports the cache-as-bitmap preference set by the
// timeline.
func (b *Base) CacheAsBitmap() bool { return b.cachePreference }

// SetCacheAsBitmap sets the cache-as-bitmap preference.
func (b *Base) SetCacheAsBitmap(v bool) {
	b.cachePreference = v
	b.recheckCache()
}

// BitmapCache returns the bitmap cache, or nil when the object draws
// directly. An object is cached when it has filters or the preference
// is set.
func (b *Base) BitmapCache() *BitmapCache { return b.cache }

func (b *Base) recheckCache() {
	need := b.cachePreference || len(b.filters) > 0
	switch {
	case need && b.cache == nil:
		b.cache = &BitmapCache{Dirty: true}
	case !need:
		b.cache = nil
	}
}

func (b *Base) invalidateCache() {
	if b.cache != nil {
		b.cache.Dirty = true
	}
}

// Visible reports whether the object is drawn.
func (b *Base) Visible() bool { return b.visible }

// SetVisible sets the visibility flag.
func (b *Base) SetVisible(v bool) { b.visible = v }

// OpaqueBackground returns the background color drawn behind the
// object, if any.
func (b *Base) OpaqueBackground() (swf.Color, bool) {
	if b.background == nil {
		return swf.Color{}, false
	}
	return *b.background, true
}

// SetOpaqueBackground sets the background color. Nil removes it.
func (b *Base) SetOpaqueBackground(c *swf.Color) {
	switch {
	case c == nil && b.background == nil:
		return
	case c == nil:
		b.background = nil
	default:
		if b.background != nil && *b.background == *c {
			return
		}
		bg := *c
		b.background = &bg
	}
	b.invalidateCache()
}

func (b *Base) clone() Base {
	c := *b
	c.filters = slices.Clone(b.filters)
	if b.cache != nil {
		cache := *b.cache
		c.cache = &cache
	}
	if b.background != nil {
		bg := *b.background
		c.background = &bg
	}
	return c
}

// ApplyPlaceObject copies the fields set in po onto obj. Fields po leaves
// unset keep their current value. Visibility and the opaque background
// are only honored for SWF 11 and later.
func ApplyPlaceObject(obj Object, po *swf.PlaceObject, version uint8) {
	b := obj.Base()
	if po.Matrix != nil {
		b.SetMatrix(*po.Matrix)
	}
	if po.ColorTransform != nil {
		b.SetColorTransform(*po.ColorTransform)
	}
	if po.Ratio != nil {
		if ms, ok := obj.(*MorphShape); ok {
			ms.SetRatio(*po.Ratio)
		}
	}
	if po.BlendMode != nil {
		b.SetBlendMode(*po.BlendMode)
	}
	if po.ClipDepth != nil {
		b.SetClipDepth(*po.ClipDepth)
	}
	if po.CacheAsBitmap != nil {
		b.SetCacheAsBitmap(*po.CacheAsBitmap)
	}
	if version >= 11 {
		if po.Visible != nil {
			b.SetVisible(*po.Visible)
		}
		if po.BackgroundColor != nil {
			if c := *po.BackgroundColor; c.A > 0 {
				c.A = 255
				b.SetOpaqueBackground(&c)
			} else {
				b.SetOpaqueBackground(nil)
			}
		}
	}
	if po.HasFilters {
		b.SetFilters(po.Filters)
	}
}
