package library

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gogpu/swf"
)

// Preload reads every definition in slice into a new library and returns
// it with the timeline template of the slice itself (ID 0). Malformed tags
// are logged and skipped.
func Preload(slice swf.Slice, opts ...PreloadOption) (*Library, *Sprite) {
	movie := slice.Movie()
	lib := New(movie, opts...)
	root := &Sprite{
		Slice:       slice,
		TotalFrames: movie.NumFrames(),
		Labels:      make(map[string]uint16),
	}
	lib.preloadSprite(root, 0)
	return lib, root
}

func (l *Library) preloadSprite(s *Sprite, nesting int) {
	r := s.Slice.ReadFrom(0)
	complete, err := swf.DecodeTags(r, func(r *swf.Reader, code swf.TagCode, _ int) (swf.ControlFlow, error) {
		switch code {
		case swf.TagDefineShape:
			return swf.Continue, l.defineShape(r, 1)
		case swf.TagDefineShape2:
			return swf.Continue, l.defineShape(r, 2)
		case swf.TagDefineShape3:
			return swf.Continue, l.defineShape(r, 3)
		case swf.TagDefineShape4:
			return swf.Continue, l.defineShape(r, 4)
		case swf.TagDefineMorphShape:
			return swf.Continue, l.defineMorphShape(r, 1)
		case swf.TagDefineMorphShape2:
			return swf.Continue, l.defineMorphShape(r, 2)
		case swf.TagDefineBitsJPEG2:
			return swf.Continue, l.defineBitsJPEG(r, 2)
		case swf.TagDefineBitsJPEG3:
			return swf.Continue, l.defineBitsJPEG(r, 3)
		case swf.TagDefineBitsJPEG4:
			return swf.Continue, l.defineBitsJPEG(r, 4)
		case swf.TagDefineBitsLossless:
			return swf.Continue, l.defineBitsLossless(r, 1)
		case swf.TagDefineBitsLossless2:
			return swf.Continue, l.defineBitsLossless(r, 2)
		case swf.TagDefineSprite:
			return swf.Continue, l.defineSprite(s, r, nesting)
		case swf.TagFrameLabel:
			fl := r.ReadFrameLabel()
			s.Labels[l.movie.DecodeString(fl.Label)] = s.preloadFrame + 1
		case swf.TagShowFrame:
			s.preloadFrame++
		case swf.TagEnd:
			return swf.Exit, nil
		}
		return swf.Continue, nil
	})
	if !complete || err != nil {
		swf.Logger().Debug("sprite tag stream truncated", "id", s.ID, "err", err)
	}
}

func (l *Library) defineShape(r *swf.Reader, version uint8) error {
	shape, err := r.ReadDefineShape(version)
	if err != nil {
		return err
	}
	l.Register(shape.ID, &Graphic{ID: shape.ID, Shape: shape, Bounds: shape.ShapeBounds})
	return nil
}

func (l *Library) defineMorphShape(r *swf.Reader, version uint8) error {
	def, err := r.ReadDefineMorphShape(version)
	if err != nil {
		return err
	}
	l.Register(def.ID, &MorphShape{ID: def.ID, Start: &def.Start, End: &def.End})
	return nil
}

func (l *Library) defineSprite(parent *Sprite, r *swf.Reader, nesting int) error {
	id, err := r.ReadU16()
	if err != nil {
		return err
	}
	frames, err := r.ReadU16()
	if err != nil {
		return err
	}
	s := &Sprite{
		ID:          swf.CharacterID(id),
		Slice:       parent.Slice.ResizeToReader(r, r.Len()),
		TotalFrames: frames,
		Labels:      make(map[string]uint16),
	}
	if nesting+1 > l.opts.maxNesting {
		swf.Logger().Warn("sprite nesting limit reached", "id", id, "limit", l.opts.maxNesting)
		s.Slice = swf.EmptySlice(l.movie)
	} else {
		l.preloadSprite(s, nesting+1)
	}
	l.Register(s.ID, s)
	return nil
}

func (l *Library) defineBitsJPEG(r *swf.Reader, version uint8) error {
	def, err := r.ReadDefineBitsJPEG(version)
	if err != nil {
		return err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(def.Data))
	if err != nil {
		return fmt.Errorf("bitmap %d %v header: %w", def.ID, def.Format, err)
	}
	l.Register(def.ID, &Bitmap{ID: def.ID, Width: cfg.Width, Height: cfg.Height, JPEG: def})
	return nil
}

func (l *Library) defineBitsLossless(r *swf.Reader, version uint8) error {
	def, err := r.ReadDefineBitsLossless(version)
	if err != nil {
		return err
	}
	l.Register(def.ID, &Bitmap{ID: def.ID, Width: int(def.Width), Height: int(def.Height), Lossless: def})
	return nil
}
