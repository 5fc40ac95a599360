package swf

import "fmt"

// PlaceKind says what a PlaceObject tag does at its depth.
type PlaceKind uint8

const (
	// PlaceNew puts a new instance of ID at an empty depth.
	PlaceNew PlaceKind = iota

	// PlaceReplace swaps the character of the object at the depth for ID.
	PlaceReplace

	// PlaceModify updates properties of the object at the depth.
	PlaceModify
)

// String returns a human-readable name for the kind.
func (k PlaceKind) String() string {
	switch k {
	case PlaceNew:
		return "Place"
	case PlaceReplace:
		return "Replace"
	case PlaceModify:
		return "Modify"
	default:
		return fmt.Sprintf("PlaceKind(%d)", uint8(k))
	}
}

// PlaceObject is a parsed PlaceObject1-4 tag. Optional fields are nil
// when the tag does not set them.
type PlaceObject struct {
	Version uint8
	Kind    PlaceKind
	ID      CharacterID // for PlaceNew and PlaceReplace
	Depth   Depth

	Matrix         *Matrix
	ColorTransform *ColorTransform
	Ratio          *uint16
	Name           []byte // raw bytes, decoded with the movie encoding
	ClipDepth      *Depth
	ClassName      []byte

	Filters         []Filter
	HasFilters      bool
	BlendMode       *BlendMode
	CacheAsBitmap   *bool
	Visible         *bool
	BackgroundColor *Color
}

// ReadPlaceObject reads the body of a PlaceObject tag of the given version
// (1 for PlaceObject, 2 for PlaceObject2 and so on).
func (r *Reader) ReadPlaceObject(version uint8) (*PlaceObject, error) {
	if version == 1 {
		return r.readPlaceObject1()
	}
	po := &PlaceObject{Version: version}

	flags, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	var flags2 uint8
	if version >= 3 {
		if flags2, err = r.ReadU8(); err != nil {
			return nil, err
		}
	}
	depth, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	po.Depth = Depth(depth)

	var (
		hasClipDepth = flags&0x40 != 0
		hasName      = flags&0x20 != 0
		hasRatio     = flags&0x10 != 0
		hasCxform    = flags&0x08 != 0
		hasMatrix    = flags&0x04 != 0
		move         = flags&0x02 != 0
		hasCharacter = flags&0x01 != 0

		hasBackground = flags2&0x40 != 0
		hasVisible    = flags2&0x20 != 0
		hasImage      = flags2&0x10 != 0
		hasClassName  = flags2&0x08 != 0
		cacheAsBitmap = flags2&0x04 != 0
		hasBlendMode  = flags2&0x02 != 0
		hasFilterList = flags2&0x01 != 0
	)

	if version >= 3 && (hasClassName || (hasImage && hasCharacter)) {
		po.ClassName = r.ReadCString()
	}
	switch {
	case hasCharacter:
		id, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		po.ID = CharacterID(id)
		po.Kind = PlaceNew
		if move {
			po.Kind = PlaceReplace
		}
	case move:
		po.Kind = PlaceModify
	default:
		return nil, fmt.Errorf("place object at depth %d has neither move nor character: %w", depth, ErrInvalidData)
	}
	if hasMatrix {
		m, err := r.ReadMatrix()
		if err != nil {
			return nil, err
		}
		po.Matrix = &m
	}
	if hasCxform {
		ct, err := r.ReadColorTransform(true)
		if err != nil {
			return nil, err
		}
		po.ColorTransform = &ct
	}
	if hasRatio {
		ratio, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		po.Ratio = &ratio
	}
	if hasName {
		po.Name = r.ReadCString()
	}
	if hasClipDepth {
		cd, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		po.ClipDepth = ptr(Depth(cd))
	}
	if version < 3 {
		return po, nil
	}

	if hasFilterList {
		if po.Filters, err = r.ReadFilters(); err != nil {
			return nil, fmt.Errorf("filters: %w", err)
		}
		po.HasFilters = true
	}
	if hasBlendMode {
		b, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		po.BlendMode = ptr(BlendModeFromByte(b))
	}
	if cacheAsBitmap {
		// Older encoders set the flag without writing the byte.
		cached := true
		if !r.Empty() {
			b, _ := r.ReadU8()
			cached = b != 0
		}
		po.CacheAsBitmap = &cached
	}
	if hasVisible {
		b, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		po.Visible = ptr(b != 0)
	}
	if hasBackground {
		c, err := r.ReadRGBA()
		if err != nil {
			return nil, err
		}
		po.BackgroundColor = &c
	}
	// Clip actions and PlaceObject4 AMF data are not interpreted.
	return po, nil
}

func (r *Reader) readPlaceObject1() (*PlaceObject, error) {
	id, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	depth, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	m, err := r.ReadMatrix()
	if err != nil {
		return nil, err
	}
	po := &PlaceObject{
		Version: 1,
		Kind:    PlaceNew,
		ID:      CharacterID(id),
		Depth:   Depth(depth),
		Matrix:  &m,
	}
	if !r.Empty() {
		ct, err := r.ReadColorTransform(false)
		if err != nil {
			return nil, err
		}
		po.ColorTransform = &ct
	}
	return po, nil
}

// PlaceObjectVersion returns the PlaceObject version encoded by a tag
// code, or 0 if code is not a PlaceObject tag.
func PlaceObjectVersion(code TagCode) uint8 {
	switch code {
	case TagPlaceObject:
		return 1
	case TagPlaceObject2:
		return 2
	case TagPlaceObject3:
		return 3
	case TagPlaceObject4:
		return 4
	default:
		return 0
	}
}

// RemoveObject is a parsed RemoveObject or RemoveObject2 tag. ID is only
// present in version 1 tags.
type RemoveObject struct {
	ID    *CharacterID
	Depth Depth
}

// ReadRemoveObject reads the body of a RemoveObject (version 1) or
// RemoveObject2 (version 2) tag.
func (r *Reader) ReadRemoveObject(version uint8) (*RemoveObject, error) {
	ro := &RemoveObject{}
	if version == 1 {
		id, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		ro.ID = ptr(CharacterID(id))
	}
	depth, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	ro.Depth = Depth(depth)
	return ro, nil
}

// RemoveObjectVersion returns 1 for RemoveObject, 2 for RemoveObject2 and
// 0 otherwise.
func RemoveObjectVersion(code TagCode) uint8 {
	switch code {
	case TagRemoveObject:
		return 1
	case TagRemoveObject2:
		return 2
	default:
		return 0
	}
}

// FrameLabel is a parsed FrameLabel tag.
type FrameLabel struct {
	Label  []byte
	Anchor bool
}

// ReadFrameLabel reads the body of a FrameLabel tag.
func (r *Reader) ReadFrameLabel() *FrameLabel {
	fl := &FrameLabel{Label: r.ReadCString()}
	if b, err := r.ReadU8(); err == nil {
		fl.Anchor = b != 0
	}
	return fl
}
