package library

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/morph"
)

// Character is a definition registered in a Library. The concrete types
// are *Sprite, *Graphic, *MorphShape and *Bitmap.
type Character interface {
	CharacterID() swf.CharacterID
	isCharacter()
}

// Sprite is a movie clip template: a nested timeline that has not been
// instantiated yet. The root timeline of a movie is a Sprite with ID 0.
type Sprite struct {
	ID          swf.CharacterID
	Slice       swf.Slice
	TotalFrames uint16

	// Labels maps frame label names to 1-based frame numbers.
	Labels map[string]uint16

	// preloadFrame counts ShowFrame tags seen while preloading.
	preloadFrame uint16
}

// Graphic is a static shape.
type Graphic struct {
	ID     swf.CharacterID
	Shape  *swf.Shape
	Bounds swf.Rectangle
}

// MorphShape is a shape tween. Frames caches interpolated shapes by ratio.
type MorphShape struct {
	ID     swf.CharacterID
	Start  *swf.Shape
	End    *swf.Shape
	Frames *morph.Cache
}

// Frame returns the interpolated shape at ratio, from the cache when
// possible.
func (m *MorphShape) Frame(ratio uint16) *morph.Frame {
	if m.Frames == nil {
		return morph.BuildFrame(m.Start, m.End, ratio)
	}
	return m.Frames.Frame(m.ID, m.Start, m.End, ratio)
}

// Bitmap is a compressed bitmap definition. Exactly one of JPEG and
// Lossless is set.
type Bitmap struct {
	ID            swf.CharacterID
	Width, Height int
	JPEG          *swf.DefineBitsJPEG
	Lossless      *swf.DefineBitsLossless
}

// Format returns the payload format.
func (b *Bitmap) Format() swf.BitmapFormat {
	if b.Lossless != nil {
		return swf.BitmapLossless
	}
	return b.JPEG.Format
}

func (s *Sprite) CharacterID() swf.CharacterID     { return s.ID }
func (g *Graphic) CharacterID() swf.CharacterID    { return g.ID }
func (m *MorphShape) CharacterID() swf.CharacterID { return m.ID }
func (b *Bitmap) CharacterID() swf.CharacterID     { return b.ID }

func (*Sprite) isCharacter()     {}
func (*Graphic) isCharacter()    {}
func (*MorphShape) isCharacter() {}
func (*Bitmap) isCharacter()     {}

// FrameLabel returns the frame number of a label.
func (s *Sprite) FrameLabel(name string) (uint16, bool) {
	f, ok := s.Labels[name]
	return f, ok
}

const skinPrefix = "skin_"

// SkinFrames returns the labels starting with "skin_", keyed by the rest
// of the label.
func (s *Sprite) SkinFrames() map[string]uint16 {
	skins := make(map[string]uint16)
	for name, frame := range s.Labels {
		if rest, ok := strings.CutPrefix(name, skinPrefix); ok {
			skins[rest] = frame
		}
	}
	return skins
}

// Animation is a frame range introduced by a label. It runs until the
// frame before the next label, or the end of the timeline.
type Animation struct {
	Name   string
	Start  uint16
	Length uint16
}

// End returns the last frame of the animation.
func (a Animation) End() uint16 {
	return a.Start + a.Length - 1
}

// Animations splits the timeline at its labels. The result is ordered by
// start frame, then name.
func (s *Sprite) Animations() []Animation {
	anims := make([]Animation, 0, len(s.Labels))
	for name, frame := range s.Labels {
		anims = append(anims, Animation{Name: name, Start: frame})
	}
	slices.SortFunc(anims, func(a, b Animation) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	for i := range anims {
		end := s.TotalFrames + 1
		for _, next := range anims[i+1:] {
			if next.Start > anims[i].Start {
				end = next.Start
				break
			}
		}
		anims[i].Length = max(end, anims[i].Start+1) - anims[i].Start
	}
	return anims
}
