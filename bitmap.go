package swf

import (
	"bytes"
	"fmt"
)

// BitmapFormat identifies the payload of a bitmap definition.
type BitmapFormat uint8

const (
	BitmapJPEG BitmapFormat = iota
	BitmapPNG
	BitmapGIF
	BitmapLossless
)

// String returns a human-readable name for the format.
func (f BitmapFormat) String() string {
	switch f {
	case BitmapJPEG:
		return "JPEG"
	case BitmapPNG:
		return "PNG"
	case BitmapGIF:
		return "GIF"
	case BitmapLossless:
		return "Lossless"
	default:
		return fmt.Sprintf("BitmapFormat(%d)", uint8(f))
	}
}

// SniffBitmapFormat inspects the leading bytes of a DefineBitsJPEG payload.
func SniffBitmapFormat(data []byte) BitmapFormat {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return BitmapPNG
	case bytes.HasPrefix(data, []byte("GIF89a")), bytes.HasPrefix(data, []byte("GIF87a")):
		return BitmapGIF
	default:
		return BitmapJPEG
	}
}

// DefineBitsJPEG is a parsed DefineBitsJPEG2/3/4 tag. Data is the embedded
// image file and Alpha the zlib-compressed alpha plane (JPEG3/4 only).
type DefineBitsJPEG struct {
	Version    uint8
	ID         CharacterID
	Format     BitmapFormat
	Data       []byte
	Alpha      []byte
	Deblocking float64
}

// ReadDefineBitsJPEG reads the body of a DefineBitsJPEG tag. Version is 2, 3
// or 4.
func (r *Reader) ReadDefineBitsJPEG(version uint8) (*DefineBitsJPEG, error) {
	id, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	b := &DefineBitsJPEG{Version: version, ID: CharacterID(id)}
	if version == 2 {
		b.Data = stripErroneousJPEGHeader(r.ReadToEnd())
		b.Format = SniffBitmapFormat(b.Data)
		return b, nil
	}
	alphaOffset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if version >= 4 {
		if b.Deblocking, err = r.ReadFixed8(); err != nil {
			return nil, err
		}
	}
	if b.Data, err = r.ReadBytes(int(alphaOffset)); err != nil {
		return nil, fmt.Errorf("bitmap %d image data: %w", id, err)
	}
	b.Data = stripErroneousJPEGHeader(b.Data)
	b.Format = SniffBitmapFormat(b.Data)
	b.Alpha = r.ReadToEnd()
	return b, nil
}

// Some encoders write an extra end-of-image/start-of-image pair in front
// of the real JPEG stream.
func stripErroneousJPEGHeader(data []byte) []byte {
	if bytes.HasPrefix(data, []byte{0xff, 0xd9, 0xff, 0xd8}) {
		return data[4:]
	}
	return data
}

// Lossless bitmap pixel formats.
const (
	LosslessColorMapped8 uint8 = 3
	LosslessRGB15        uint8 = 4
	LosslessRGB32        uint8 = 5
)

// DefineBitsLossless is a parsed DefineBitsLossless or DefineBitsLossless2
// tag. Data is the zlib stream holding the color table (if any) followed
// by the pixel rows.
type DefineBitsLossless struct {
	Version        uint8
	ID             CharacterID
	Format         uint8
	Width, Height  uint16
	ColorTableSize int
	Data           []byte
}

// ReadDefineBitsLossless reads the body of a DefineBitsLossless tag. Version
// is 1 or 2 (with alpha).
func (r *Reader) ReadDefineBitsLossless(version uint8) (*DefineBitsLossless, error) {
	id, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	b := &DefineBitsLossless{Version: version, ID: CharacterID(id)}
	if b.Format, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if b.Width, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if b.Height, err = r.ReadU16(); err != nil {
		return nil, err
	}
	switch b.Format {
	case LosslessColorMapped8:
		n, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		b.ColorTableSize = int(n) + 1
	case LosslessRGB15, LosslessRGB32:
	default:
		return nil, fmt.Errorf("bitmap %d lossless format %d: %w", id, b.Format, ErrInvalidData)
	}
	b.Data = r.ReadToEnd()
	return b, nil
}
