package swf

import "strconv"

// TagCode identifies the type of a SWF tag record.
type TagCode uint16

// Tag codes understood by the runtime. Everything else is skipped by
// DecodeTags without reaching the handler.
const (
	// TagEnd terminates a tag stream (main movie or sprite).
	TagEnd TagCode = 0

	// TagShowFrame ends the current frame.
	TagShowFrame TagCode = 1

	// TagDefineShape defines a shape with RGB fills.
	TagDefineShape TagCode = 2

	// TagPlaceObject places a character (id, depth, matrix, optional cxform).
	TagPlaceObject TagCode = 4

	// TagRemoveObject removes the character at a depth (id, depth).
	TagRemoveObject TagCode = 5

	// TagSetBackgroundColor sets the stage color (RGB).
	TagSetBackgroundColor TagCode = 9

	// TagDefineBitsLossless defines a zlib-compressed bitmap without alpha.
	TagDefineBitsLossless TagCode = 20

	// TagDefineBitsJPEG2 defines a JPEG (or PNG/GIF) bitmap with its own tables.
	TagDefineBitsJPEG2 TagCode = 21

	// TagDefineShape2 extends DefineShape with large style counts.
	TagDefineShape2 TagCode = 22

	// TagPlaceObject2 places, moves or replaces a character with flags.
	TagPlaceObject2 TagCode = 26

	// TagRemoveObject2 removes the character at a depth.
	TagRemoveObject2 TagCode = 28

	// TagDefineShape3 extends DefineShape2 with RGBA colors.
	TagDefineShape3 TagCode = 32

	// TagDefineBitsJPEG3 adds a zlib-compressed alpha plane to JPEG2.
	TagDefineBitsJPEG3 TagCode = 35

	// TagDefineBitsLossless2 defines a zlib-compressed bitmap with alpha.
	TagDefineBitsLossless2 TagCode = 36

	// TagDefineSprite defines a movie clip with its own tag stream.
	TagDefineSprite TagCode = 39

	// TagFrameLabel names the current frame.
	TagFrameLabel TagCode = 43

	// TagDefineMorphShape defines a shape tween between two keyframes.
	TagDefineMorphShape TagCode = 46

	// TagPlaceObject3 adds filters, blend modes and bitmap caching.
	TagPlaceObject3 TagCode = 70

	// TagFileAttributes carries the AS3 and network flags.
	TagFileAttributes TagCode = 69

	// TagDefineShape4 adds edge bounds and focal gradients.
	TagDefineShape4 TagCode = 83

	// TagDefineMorphShape2 adds edge bounds and extended line styles.
	TagDefineMorphShape2 TagCode = 84

	// TagDefineBitsJPEG4 adds a deblocking filter parameter to JPEG3.
	TagDefineBitsJPEG4 TagCode = 90

	// TagPlaceObject4 adds AMF metadata to PlaceObject3.
	TagPlaceObject4 TagCode = 94
)

// Known reports whether the runtime has a use for tags of this code.
func (c TagCode) Known() bool {
	switch c {
	case TagEnd, TagShowFrame, TagDefineShape, TagPlaceObject, TagRemoveObject,
		TagSetBackgroundColor, TagDefineBitsLossless, TagDefineBitsJPEG2,
		TagDefineShape2, TagPlaceObject2, TagRemoveObject2, TagDefineShape3,
		TagDefineBitsJPEG3, TagDefineBitsLossless2, TagDefineSprite, TagFrameLabel,
		TagDefineMorphShape, TagPlaceObject3, TagFileAttributes, TagDefineShape4,
		TagDefineMorphShape2, TagDefineBitsJPEG4, TagPlaceObject4:
		return true
	}
	return false
}

// String returns a human-readable name for the tag code.
func (c TagCode) String() string {
	switch c {
	case TagEnd:
		return "End"
	case TagShowFrame:
		return "ShowFrame"
	case TagDefineShape:
		return "DefineShape"
	case TagPlaceObject:
		return "PlaceObject"
	case TagRemoveObject:
		return "RemoveObject"
	case TagSetBackgroundColor:
		return "SetBackgroundColor"
	case TagDefineBitsLossless:
		return "DefineBitsLossless"
	case TagDefineBitsJPEG2:
		return "DefineBitsJPEG2"
	case TagDefineShape2:
		return "DefineShape2"
	case TagPlaceObject2:
		return "PlaceObject2"
	case TagRemoveObject2:
		return "RemoveObject2"
	case TagDefineShape3:
		return "DefineShape3"
	case TagDefineBitsJPEG3:
		return "DefineBitsJPEG3"
	case TagDefineBitsLossless2:
		return "DefineBitsLossless2"
	case TagDefineSprite:
		return "DefineSprite"
	case TagFrameLabel:
		return "FrameLabel"
	case TagDefineMorphShape:
		return "DefineMorphShape"
	case TagPlaceObject3:
		return "PlaceObject3"
	case TagFileAttributes:
		return "FileAttributes"
	case TagDefineShape4:
		return "DefineShape4"
	case TagDefineMorphShape2:
		return "DefineMorphShape2"
	case TagDefineBitsJPEG4:
		return "DefineBitsJPEG4"
	case TagPlaceObject4:
		return "PlaceObject4"
	default:
		return "Tag(" + strconv.Itoa(int(c)) + ")"
	}
}
