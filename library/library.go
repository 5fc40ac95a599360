package library

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/morph"
)

var (
	// ErrNotFound is returned for character ids with no definition.
	ErrNotFound = errors.New("library: character not found")

	// ErrNotBitmap is returned when a non-bitmap id is decoded as a bitmap.
	ErrNotBitmap = errors.New("library: character is not a bitmap")
)

// Library holds the character definitions of one movie.
//
// Definitions are registered during Preload and read afterwards by any
// number of instances. The decoded-bitmap cache and the instance name
// counter are safe for concurrent use; Register is not, and must not be
// called once instances are running.
type Library struct {
	movie      *swf.Movie
	characters map[swf.CharacterID]Character
	opts       options

	bitmaps  *lru.Cache
	decodeMu sync.Mutex
	morphs   *morph.Cache

	instances atomic.Uint32
}

// New returns an empty library for movie.
func New(movie *swf.Movie, opts ...PreloadOption) *Library {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bitmaps, err := lru.New(o.bitmapCacheSize)
	if err != nil {
		// lru.New only fails for non-positive sizes, which the option rejects.
		panic(fmt.Sprintf("library: bitmap cache: %v", err))
	}
	return &Library{
		movie:      movie,
		characters: make(map[swf.CharacterID]Character),
		opts:       o,
		bitmaps:    bitmaps,
		morphs:     morph.NewCache(o.morphCacheSize),
	}
}

// Movie returns the movie the library belongs to.
func (l *Library) Movie() *swf.Movie { return l.movie }

// MaxNesting returns how many sprites deep definitions and instances
// may nest.
func (l *Library) MaxNesting() int { return l.opts.maxNesting }

// Len returns the number of registered characters.
func (l *Library) Len() int { return len(l.characters) }

// Register stores c under id, replacing any earlier definition.
func (l *Library) Register(id swf.CharacterID, c Character) {
	if _, dup := l.characters[id]; dup {
		swf.Logger().Debug("character redefined", "id", id)
		l.morphs.Forget(id)
	}
	if m, ok := c.(*MorphShape); ok && m.Frames == nil {
		m.Frames = l.morphs
	}
	l.characters[id] = c
}

// Character returns the definition registered under id.
func (l *Library) Character(id swf.CharacterID) (Character, bool) {
	c, ok := l.characters[id]
	return c, ok
}

// IDs returns the registered ids in ascending order.
func (l *Library) IDs() []swf.CharacterID {
	ids := make([]swf.CharacterID, 0, len(l.characters))
	for id := range l.characters {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Sprite returns the movie clip template registered under id.
func (l *Library) Sprite(id swf.CharacterID) (*Sprite, bool) {
	s, ok := l.characters[id].(*Sprite)
	return s, ok
}

// Graphic returns the shape registered under id.
func (l *Library) Graphic(id swf.CharacterID) (*Graphic, bool) {
	g, ok := l.characters[id].(*Graphic)
	return g, ok
}

// MorphShape returns the morph shape registered under id.
func (l *Library) MorphShape(id swf.CharacterID) (*MorphShape, bool) {
	m, ok := l.characters[id].(*MorphShape)
	return m, ok
}

// Bitmap returns the compressed bitmap registered under id.
func (l *Library) Bitmap(id swf.CharacterID) (*Bitmap, bool) {
	b, ok := l.characters[id].(*Bitmap)
	return b, ok
}

// DecodeBitmap returns the decoded pixels of bitmap id. Decoded images are
// kept in an LRU cache; callers must not modify them.
func (l *Library) DecodeBitmap(id swf.CharacterID) (image.Image, error) {
	if img, ok := l.bitmaps.Get(id); ok {
		return img.(image.Image), nil
	}
	c, ok := l.characters[id]
	if !ok {
		return nil, fmt.Errorf("bitmap %d: %w", id, ErrNotFound)
	}
	b, ok := c.(*Bitmap)
	if !ok {
		return nil, fmt.Errorf("bitmap %d: %w", id, ErrNotBitmap)
	}

	l.decodeMu.Lock()
	defer l.decodeMu.Unlock()
	if img, ok := l.bitmaps.Get(id); ok {
		return img.(image.Image), nil
	}
	img, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("bitmap %d: %w", id, err)
	}
	l.bitmaps.Add(id, img)
	return img, nil
}

// NextInstanceName returns a fresh name for an unnamed instance:
// "instance1", "instance2" and so on.
func (l *Library) NextInstanceName() string {
	return fmt.Sprintf("instance%d", l.instances.Add(1))
}

// Purge drops every decoded bitmap and interpolated morph frame. The
// definitions stay registered and are decoded again on demand.
func (l *Library) Purge() {
	l.bitmaps.Purge()
	l.morphs.Reset()
}

// MorphCacheStats reports the hit statistics of the shared morph cache.
func (l *Library) MorphCacheStats() morph.CacheStats {
	return l.morphs.Stats()
}
