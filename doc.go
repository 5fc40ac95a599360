// Package swf decodes SWF (Shockwave Flash) movies and provides the
// primitives shared by the runtime packages.
//
// # Overview
//
// A movie is loaded once, decompressed and kept in memory. Its tag stream
// is read through a Reader, either directly or through Slices that view
// the nested tag streams of sprites. The subpackages build the runtime on
// top of these primitives:
//
//   - library: one-pass preload of character definitions
//   - display: display objects, depth lists and the timeline engine
//   - morph, shape: morph interpolation and shape distillation
//   - render: render-order walk and a software rasterizer
//   - player: named animations, looping and frame timing
//
// # Quick Start
//
//	movie, err := swf.Load(f)
//	if err != nil {
//	    return err
//	}
//	lib, root := library.Preload(swf.NewSlice(movie))
//	clip := display.NewRoot(lib, root)
//	for range 10 {
//	    clip.EnterFrame(lib)
//	}
//
// # Coordinate System
//
// All geometry is in twips (1/20 pixel) with the origin at the top-left
// and Y increasing down, as stored in the file.
//
// # Errors
//
// Parsing functions return errors wrapping the sentinels in errors.go.
// The decode loop recovers from malformed tags by logging and skipping
// them; see SetLogger.
package swf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
