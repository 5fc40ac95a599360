// Package player drives the root timeline of a movie as a set of named
// animations.
//
// Every frame label of the root timeline starts an animation that runs
// until the next label. A Player plays one animation at a time, once or
// looping, and reports completion and labeled frames through callbacks.
package player

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/display"
	"github.com/gogpu/swf/library"
)

// ErrUnknownAnimation is returned when playing a name that has no label.
var ErrUnknownAnimation = errors.New("player: unknown animation")

// defaultFrameRate is used for movies that declare a frame rate of zero.
const defaultFrameRate = 24

// Player plays the root timeline of a movie.
type Player struct {
	lib  *library.Library
	root *display.MovieClip

	anims  map[string]library.Animation
	order  []library.Animation
	events map[uint16][]string

	looping bool
	speed   float64
	paused  bool

	// current is the animation being played; "" plays the whole timeline.
	current   string
	frame     uint16
	total     uint16
	completed bool
	elapsed   time.Duration

	onComplete func(name string)
	onFrame    func(label string)
}

// New creates a player for the root timeline sprite of lib and shows the
// first frame of the selected animation.
func New(lib *library.Library, sprite *library.Sprite, opts ...Option) (*Player, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Player{
		lib:     lib,
		root:    display.NewRoot(lib, sprite),
		anims:   make(map[string]library.Animation),
		order:   sprite.Animations(),
		events:  make(map[uint16][]string),
		looping: o.looping,
		speed:   o.speed,
	}
	for _, a := range p.order {
		p.anims[a.Name] = a
		p.events[a.Start] = append(p.events[a.Start], a.Name)
	}
	if err := p.Play(o.animation); err != nil {
		return nil, err
	}
	return p, nil
}

// Root returns the root movie clip.
func (p *Player) Root() *display.MovieClip { return p.root }

// Library returns the character library the player instantiates from.
func (p *Player) Library() *library.Library { return p.lib }

// Animations returns the named animations ordered by start frame.
func (p *Player) Animations() []library.Animation { return slices.Clone(p.order) }

// Current returns the name of the animation being played, "" for the
// whole timeline.
func (p *Player) Current() string { return p.current }

// Frame returns the 1-based position within the current animation.
func (p *Player) Frame() uint16 { return p.frame }

// TotalFrames returns the length of the current animation.
func (p *Player) TotalFrames() uint16 { return p.total }

// Play rewinds to the first frame of the named animation. An empty name
// plays the whole timeline.
func (p *Player) Play(name string) error {
	start, total := uint16(1), p.root.TotalFrames()
	if name != "" {
		a, ok := p.anims[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
		}
		start, total = a.Start, a.Length
	}
	swf.Logger().Debug("play", "animation", name, "start", start, "frames", total)

	p.current = name
	p.total = max(total, 1)
	p.rewind(start)
	return nil
}

func (p *Player) rewind(start uint16) {
	p.root.GotoFrame(p.lib, start, false)
	p.frame = 1
	p.completed = false
	p.fireFrame()
}

// Looping reports whether the animation restarts after its last frame.
func (p *Player) Looping() bool { return p.looping }

// SetLooping sets whether the animation restarts after its last frame.
func (p *Player) SetLooping(looping bool) { p.looping = looping }

// Speed returns the playback speed multiplier.
func (p *Player) Speed() float64 { return p.speed }

// SetSpeed sets the playback speed multiplier used by Update.
// Non-positive values are ignored.
func (p *Player) SetSpeed(speed float64) {
	if speed > 0 {
		p.speed = speed
	}
}

// Paused reports whether Update is suspended.
func (p *Player) Paused() bool { return p.paused }

// SetPaused suspends or resumes Update. Advance is not affected.
func (p *Player) SetPaused(paused bool) { p.paused = paused }

// OnComplete sets the function called once when a non-looping animation
// has shown its last frame and another tick arrives.
func (p *Player) OnComplete(fn func(name string)) { p.onComplete = fn }

// OnFrame sets the function called for each label on a frame as the
// frame is shown.
func (p *Player) OnFrame(fn func(label string)) { p.onFrame = fn }

// Completed reports whether the completion event has fired for the
// current animation.
func (p *Player) Completed() bool { return p.completed }

func (p *Player) atEnd() bool { return p.frame >= p.total }

// Advance runs one tick. At the end of the animation a looping player
// rewinds to the first frame and a non-looping one stays on the last
// frame, firing the completion event once.
func (p *Player) Advance() {
	if p.atEnd() {
		if !p.looping {
			if !p.completed {
				p.completed = true
				if p.onComplete != nil {
					p.onComplete(p.current)
				}
			}
			return
		}
		start := uint16(1)
		if p.current != "" {
			start = p.anims[p.current].Start
		}
		p.rewind(start)
		return
	}

	p.root.EnterFrame(p.lib)
	p.frame++
	p.fireFrame()
}

func (p *Player) fireFrame() {
	if p.onFrame == nil {
		return
	}
	for _, label := range p.events[p.root.CurrentFrame()] {
		p.onFrame(label)
	}
}

// FrameDuration returns the time one frame is shown at speed 1.
func (p *Player) FrameDuration() time.Duration {
	rate := float64(defaultFrameRate)
	if m := p.lib.Movie(); m != nil && m.FrameRate() > 0 {
		rate = m.FrameRate()
	}
	return time.Duration(float64(time.Second) / rate)
}

// Update advances the player by dt of wall time scaled by the speed
// multiplier, running as many ticks as have elapsed. It returns the
// number of ticks run.
func (p *Player) Update(dt time.Duration) int {
	if p.paused {
		return 0
	}
	p.elapsed += time.Duration(float64(dt) * p.speed)
	frame := p.FrameDuration()
	ticks := 0
	for p.elapsed >= frame {
		p.elapsed -= frame
		p.Advance()
		ticks++
	}
	return ticks
}
