// Package display holds instantiated characters: the display objects a
// movie clip places on its timeline, the depth container that orders
// them, and the timeline engine that steps and seeks clips.
//
// # Objects
//
// An Object is one of *Graphic, *MovieClip or *MorphShape. The set is
// closed; code that needs variant behavior uses the dispatch functions
// SelfBounds, EnterFrame, ReplaceWith and Clone, or a type switch.
//
// # Timelines
//
// A MovieClip replays its tag stream one frame per EnterFrame call and
// jumps with GotoFrame. Seeking backward rebuilds the display list from
// the first frame; seeking forward merges the PlaceObject tags of the
// skipped frames per depth and applies each depth once.
//
// Movies flagged as ActionScript 3 defer PlaceObject tags until the
// children of a clip have run their own frame, matching Flash Player's
// construction order. NewRoot takes the flag from the movie header unless
// WithAS3 overrides it.
//
// # Concurrency
//
// A tree of display objects must not be used from more than one
// goroutine at a time. Any number of trees may share one Library.
package display
