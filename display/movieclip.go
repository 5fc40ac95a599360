package display

import (
	"cmp"
	"maps"
	"slices"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/library"
)

// NextFrame is what the next tick of a playing clip does.
type NextFrame uint8

const (
	// NextFrameNext runs the following frame.
	NextFrameNext NextFrame = iota

	// NextFrameFirst loops back to frame 1.
	NextFrameFirst

	// NextFrameSame does nothing; single-frame clips never re-run.
	NextFrameSame
)

// MovieClip is an instance of a sprite or of the root timeline.
//
// Frames are numbered from 1. A new clip is on frame 0 until its first
// EnterFrame.
type MovieClip struct {
	base Base
	id   swf.CharacterID

	slice        swf.Slice
	totalFrames  uint16
	currentFrame uint16
	labels       map[string]uint16
	tagStreamPos int

	container Container
	playing   bool
	as3       bool
	queued    map[swf.Depth]*QueuedTagList

	// ancestors holds the sprite ids from the outermost clip down to
	// this one.
	ancestors []swf.CharacterID
}

// NewMovieClip returns a playing instance of s. When as3 is set, the clip
// and the clips it places defer PlaceObject tags to the end of the frame.
func NewMovieClip(s *library.Sprite, as3 bool) *MovieClip {
	return &MovieClip{
		base:        newBase(),
		id:          s.ID,
		slice:       s.Slice,
		totalFrames: s.TotalFrames,
		labels:      s.Labels,
		playing:     true,
		as3:         as3,
		ancestors:   []swf.CharacterID{s.ID},
	}
}

// NewRoot returns an instance of the root timeline of lib's movie. It has
// not run any frame yet.
func NewRoot(lib *library.Library, root *library.Sprite, opts ...Option) *MovieClip {
	o := options{as3: lib.Movie() != nil && lib.Movie().IsAS3()}
	for _, opt := range opts {
		opt(&o)
	}
	return NewMovieClip(root, o.as3)
}

func (mc *MovieClip) Base() *Base                  { return &mc.base }
func (mc *MovieClip) CharacterID() swf.CharacterID { return mc.id }

// Container returns the children of the clip.
func (mc *MovieClip) Container() *Container { return &mc.container }

// CurrentFrame returns the current frame, or 0 before the first frame
// has run.
func (mc *MovieClip) CurrentFrame() uint16 { return mc.currentFrame }

// TotalFrames returns the number of frames in the timeline.
func (mc *MovieClip) TotalFrames() uint16 { return mc.totalFrames }

// IsPlaying reports whether EnterFrame advances the timeline.
func (mc *MovieClip) IsPlaying() bool { return mc.playing }

// IsAS3 reports whether placements are deferred to the end of the frame.
func (mc *MovieClip) IsAS3() bool { return mc.as3 }

// Play resumes the timeline. Clips with a single frame stay stopped.
func (mc *MovieClip) Play() {
	if mc.totalFrames > 1 {
		mc.playing = true
	}
}

// Stop pauses the timeline.
func (mc *MovieClip) Stop() { mc.playing = false }

// FrameLabel returns the frame a label names.
func (mc *MovieClip) FrameLabel(name string) (uint16, bool) {
	f, ok := mc.labels[name]
	return f, ok
}

// FrameLabels returns a copy of the label table.
func (mc *MovieClip) FrameLabels() map[string]uint16 {
	return maps.Clone(mc.labels)
}

// DetermineNextFrame reports what the next tick of the clip does.
func (mc *MovieClip) DetermineNextFrame() NextFrame {
	switch {
	case mc.currentFrame < mc.totalFrames:
		return NextFrameNext
	case mc.totalFrames > 1:
		return NextFrameFirst
	default:
		return NextFrameSame
	}
}

// EnterFrame advances the clip by one tick. Children run first, in
// reverse drawing order, then the clip's own timeline if it is playing,
// then any placements deferred during the frame in tag order.
func (mc *MovieClip) EnterFrame(lib *library.Library) {
	children := mc.container.RenderList()
	for i := len(children) - 1; i >= 0; i-- {
		EnterFrame(children[i], lib)
	}
	if mc.playing {
		mc.runFrameInternal(lib, true)
	}
	if mc.as3 {
		for _, tag := range mc.unqueue(QueuedPlace) {
			mc.runQueuedTag(lib, tag)
		}
	}
}

// GotoFrame moves the timeline to frame and plays or stops it. Frame 0
// means frame 1; frames past the end go to the last frame.
func (mc *MovieClip) GotoFrame(lib *library.Library, frame uint16, stop bool) {
	if stop {
		mc.Stop()
	} else {
		mc.Play()
	}
	frame = max(frame, 1)
	if frame != mc.currentFrame {
		mc.runGoto(lib, frame, false)
	}
}

// GotoLabel is GotoFrame for a labeled frame. It reports false, and does
// nothing, when the label does not exist.
func (mc *MovieClip) GotoLabel(lib *library.Library, label string, stop bool) bool {
	frame, ok := mc.FrameLabel(label)
	if !ok {
		return false
	}
	mc.GotoFrame(lib, frame, stop)
	return true
}

// FindClip returns the first descendant clip with the given instance
// name, searching depth first in drawing order.
func (mc *MovieClip) FindClip(name string) (*MovieClip, bool) {
	for _, child := range mc.container.RenderList() {
		c, ok := child.(*MovieClip)
		if !ok {
			continue
		}
		if c.base.name == name {
			return c, true
		}
		if found, ok := c.FindClip(name); ok {
			return found, true
		}
	}
	return nil, false
}

func (mc *MovieClip) runFrameInternal(lib *library.Library, runDisplayActions bool) {
	next := mc.DetermineNextFrame()
	if next == NextFrameFirst {
		mc.runGoto(lib, 1, true)
		return
	}

	placeFrame := mc.currentFrame
	if next == NextFrameNext {
		placeFrame++
	}
	r := mc.slice.ReadFrom(mc.tagStreamPos)
	complete, err := swf.DecodeTags(r, func(tr *swf.Reader, code swf.TagCode, length int) (swf.ControlFlow, error) {
		if code == swf.TagShowFrame {
			return swf.Exit, nil
		}
		if !runDisplayActions {
			return swf.Continue, nil
		}
		if v := swf.PlaceObjectVersion(code); v != 0 {
			if mc.as3 {
				return swf.Continue, mc.queuePlaceObject(tr, v, length)
			}
			return swf.Continue, mc.placeObject(lib, tr, v, placeFrame)
		}
		if v := swf.RemoveObjectVersion(code); v != 0 {
			if mc.as3 {
				return swf.Continue, mc.queueRemoveObject(tr, v, length)
			}
			return swf.Continue, mc.removeObject(tr, v)
		}
		return swf.Continue, nil
	})
	if !complete || err != nil {
		swf.Logger().Debug("clip tag stream truncated", "id", mc.id, "frame", mc.currentFrame, "err", err)
	}

	for _, tag := range mc.unqueue(QueuedRemove) {
		mc.runQueuedTag(lib, tag)
	}
	mc.tagStreamPos = r.Offset()
	if next == NextFrameNext {
		mc.currentFrame++
	}
}

func (mc *MovieClip) placeObject(lib *library.Library, r *swf.Reader, version uint8, placeFrame uint16) error {
	po, err := r.ReadPlaceObject(version)
	if err != nil {
		return err
	}
	swfVersion := mc.slice.Version()
	switch po.Kind {
	case swf.PlaceNew:
		if child := instantiate(lib, po.ID, po, placeFrame, swfVersion, mc.as3, mc.ancestors); child != nil {
			mc.container.ReplaceAtDepth(po.Depth, child)
		}
	case swf.PlaceReplace:
		if child := mc.container.ChildByDepth(po.Depth); child != nil {
			ReplaceWith(child, lib, po.ID)
			ApplyPlaceObject(child, po, swfVersion)
			child.Base().SetPlaceFrame(placeFrame)
		}
	case swf.PlaceModify:
		if child := mc.container.ChildByDepth(po.Depth); child != nil {
			ApplyPlaceObject(child, po, swfVersion)
		}
	}
	return nil
}

func (mc *MovieClip) removeObject(r *swf.Reader, version uint8) error {
	ro, err := r.ReadRemoveObject(version)
	if err != nil {
		return err
	}
	mc.container.RemoveChild(ro.Depth)
	return nil
}

func (mc *MovieClip) queuePlaceObject(r *swf.Reader, version uint8, length int) error {
	start := r.Offset()
	po, err := r.ReadPlaceObject(version)
	if err != nil {
		return err
	}
	mc.queueAdd(po.Depth, QueuedTag{Action: QueuedPlace, Version: version, Start: start, Length: length})
	return nil
}

func (mc *MovieClip) queueRemoveObject(r *swf.Reader, version uint8, length int) error {
	start := r.Offset()
	ro, err := r.ReadRemoveObject(version)
	if err != nil {
		return err
	}
	mc.queueList(ro.Depth).QueueRemove(QueuedTag{Action: QueuedRemove, Version: version, Start: start, Length: length})
	return nil
}

func (mc *MovieClip) queueAdd(depth swf.Depth, tag QueuedTag) {
	if !mc.queueList(depth).QueueAdd(tag) {
		swf.Logger().Warn("failed to place object: add already queued", "depth", depth, "offset", tag.Start)
	}
}

func (mc *MovieClip) queueList(depth swf.Depth) *QueuedTagList {
	if mc.queued == nil {
		mc.queued = make(map[swf.Depth]*QueuedTagList)
	}
	q, ok := mc.queued[depth]
	if !ok {
		q = &QueuedTagList{}
		mc.queued[depth] = q
	}
	return q
}

// unqueue takes the pending tags of one action from every depth, in tag
// order.
func (mc *MovieClip) unqueue(action QueuedAction) []QueuedTag {
	var tags []QueuedTag
	for depth, q := range mc.queued {
		var (
			tag QueuedTag
			ok  bool
		)
		if action == QueuedPlace {
			tag, ok = q.UnqueueAdd()
		} else {
			tag, ok = q.UnqueueRemove()
		}
		if ok {
			tags = append(tags, tag)
		}
		if q.State() == QueueNone {
			delete(mc.queued, depth)
		}
	}
	slices.SortFunc(tags, func(a, b QueuedTag) int { return cmp.Compare(a.Start, b.Start) })
	return tags
}

func (mc *MovieClip) runQueuedTag(lib *library.Library, tag QueuedTag) {
	r, err := mc.slice.ReadFrom(tag.Start).Sub(tag.Length)
	if err == nil {
		if tag.Action == QueuedPlace {
			err = mc.placeObject(lib, r, tag.Version, mc.currentFrame)
		} else {
			err = mc.removeObject(r, tag.Version)
		}
	}
	if err != nil {
		swf.Logger().Error("error running queued tag", "offset", tag.Start, "err", err)
	}
}

func (mc *MovieClip) runGoto(lib *library.Library, frame uint16, implicit bool) {
	// Tags still queued from the frame being left stay queued; an
	// implicit loop runs them alongside the adds it queues.
	rewind := frame <= mc.currentFrame
	if rewind {
		mc.tagStreamPos = 0
		mc.currentFrame = 0
	}

	var (
		commands []GotoPlaceObject
		index    int
		framePos = mc.tagStreamPos
		clamped  = min(frame, mc.totalFrames)
		r        = mc.slice.ReadFrom(mc.tagStreamPos)
	)
	for mc.currentFrame < clamped && !r.Empty() {
		mc.currentFrame++
		framePos = r.Offset()
		complete, err := swf.DecodeTags(r, func(tr *swf.Reader, code swf.TagCode, length int) (swf.ControlFlow, error) {
			if code == swf.TagShowFrame {
				return swf.Exit, nil
			}
			if v := swf.PlaceObjectVersion(code); v != 0 {
				index++
				return swf.Continue, mc.gotoPlaceObject(tr, v, length, &commands, rewind, index)
			}
			if v := swf.RemoveObjectVersion(code); v != 0 {
				return swf.Continue, mc.gotoRemoveObject(tr, v, &commands, rewind)
			}
			return swf.Continue, nil
		})
		if !complete || err != nil {
			swf.Logger().Debug("clip tag stream truncated", "id", mc.id, "frame", mc.currentFrame, "err", err)
		}
	}
	hitTarget := mc.currentFrame == frame

	if rewind {
		var stale []swf.Depth
		for _, child := range mc.container.RenderList() {
			if child.Base().PlaceFrame() > frame {
				stale = append(stale, child.Base().Depth())
			}
		}
		for _, depth := range stale {
			mc.container.RemoveChild(depth)
		}
	}

	slices.SortFunc(commands, func(a, b GotoPlaceObject) int { return cmp.Compare(a.Index, b.Index) })
	for i := range commands {
		if commands[i].Frame < frame {
			mc.runGotoCommand(lib, &commands[i], rewind, implicit)
		}
	}
	if hitTarget {
		// Step back and run the target frame without display actions, so
		// the bookmark and frame counter land after it.
		mc.currentFrame--
		mc.tagStreamPos = framePos
		mc.runFrameInternal(lib, false)
	} else {
		mc.currentFrame = clamped
		mc.tagStreamPos = r.Offset()
	}
	for i := range commands {
		if commands[i].Frame >= frame {
			mc.runGotoCommand(lib, &commands[i], rewind, implicit)
		}
	}
}

func (mc *MovieClip) gotoPlaceObject(r *swf.Reader, version uint8, length int, commands *[]GotoPlaceObject, rewind bool, index int) error {
	start := r.Offset()
	po, err := r.ReadPlaceObject(version)
	if err != nil {
		return err
	}
	g := NewGotoPlaceObject(mc.currentFrame, po, rewind, index)
	g.TagStart, g.TagLength = start, length
	if i := slices.IndexFunc(*commands, func(c GotoPlaceObject) bool { return c.Depth() == po.Depth }); i >= 0 {
		(*commands)[i].Merge(&g)
	} else {
		*commands = append(*commands, g)
	}
	return nil
}

func (mc *MovieClip) gotoRemoveObject(r *swf.Reader, version uint8, commands *[]GotoPlaceObject, rewind bool) error {
	ro, err := r.ReadRemoveObject(version)
	if err != nil {
		return err
	}
	cmds := *commands
	if i := slices.IndexFunc(cmds, func(c GotoPlaceObject) bool { return c.Depth() == ro.Depth }); i >= 0 {
		last := len(cmds) - 1
		cmds[i] = cmds[last]
		*commands = cmds[:last]
	}
	if !rewind {
		mc.container.RemoveChild(ro.Depth)
	}
	return nil
}

func (mc *MovieClip) runGotoCommand(lib *library.Library, g *GotoPlaceObject, rewind, implicit bool) {
	depth := g.Depth()
	child := mc.container.ChildByDepth(depth)
	if mc.as3 && implicit && child == nil {
		// The queued add re-reads only the first tag captured for the
		// depth. Fields merged in from later tags of the scan are not
		// applied, matching a first pass through the frame.
		mc.queueAdd(depth, QueuedTag{Action: QueuedPlace, Version: g.Version, Start: g.TagStart, Length: g.TagLength})
		return
	}

	version := mc.slice.Version()
	po := &g.Place
	switch {
	case child != nil && (rewind || po.Kind == swf.PlaceModify):
		ApplyPlaceObject(child, po, version)
	case child != nil && po.Kind == swf.PlaceReplace:
		ReplaceWith(child, lib, po.ID)
		ApplyPlaceObject(child, po, version)
		child.Base().SetPlaceFrame(g.Frame)
	case po.Kind == swf.PlaceNew || po.Kind == swf.PlaceReplace:
		if obj := instantiate(lib, po.ID, po, g.Frame, version, mc.as3, mc.ancestors); obj != nil {
			mc.container.ReplaceAtDepth(depth, obj)
		}
	default:
		swf.Logger().Warn("unhandled goto command", "depth", depth, "kind", po.Kind)
	}
}

func (mc *MovieClip) clone() *MovieClip {
	c := *mc
	c.base = mc.base.clone()
	c.container = mc.container.clone()
	if mc.queued != nil {
		c.queued = make(map[swf.Depth]*QueuedTagList, len(mc.queued))
		for depth, q := range mc.queued {
			cp := *q
			c.queued[depth] = &cp
		}
	}
	return &c
}
