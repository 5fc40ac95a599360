package swf

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reader is a cursor over SWF data. It reads little-endian integers,
// bit-packed fields and the composite records shared by many tags.
// Bit reads keep a partially consumed byte; any byte-level read
// discards the remaining bits first, matching the SWF alignment rules.
type Reader struct {
	data    []byte
	pos     int
	base    int
	version uint8

	bitBuf  byte
	bitLeft uint8
}

// NewReader returns a reader over data for a movie of the given SWF version.
func NewReader(data []byte, version uint8) *Reader {
	return &Reader{data: data, version: version}
}

// Version returns the SWF version the reader decodes for.
func (r *Reader) Version() uint8 { return r.version }

// Pos returns the byte offset of the cursor from the start of the data.
func (r *Reader) Pos() int { return r.pos }

// Offset returns the cursor position relative to the reader this one was
// carved from with Sub, so tag bodies can be located in their stream.
func (r *Reader) Offset() int { return r.base + r.pos }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.data) - r.pos }

// Empty reports whether all bytes have been consumed.
func (r *Reader) Empty() bool { return r.pos >= len(r.data) }

// Remaining returns the unread bytes without copying.
func (r *Reader) Remaining() []byte { return r.data[r.pos:] }

// Seek moves the cursor to an absolute offset, clamped to the data.
func (r *Reader) Seek(pos int) {
	r.align()
	r.pos = max(0, min(pos, len(r.data)))
}

// SeekEnd moves the cursor to the end of the data.
func (r *Reader) SeekEnd() {
	r.Seek(len(r.data))
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	r.align()
	if n < 0 || n > r.Len() {
		return fmt.Errorf("skip %d bytes: %w", n, ErrTruncated)
	}
	r.pos += n
	return nil
}

// Sub returns a reader over the next n bytes and advances past them.
func (r *Reader) Sub(n int) (*Reader, error) {
	base := r.Offset()
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return &Reader{data: b, base: base, version: r.version}, nil
}

func (r *Reader) align() {
	r.bitLeft = 0
}

// ReadBytes returns the next n bytes without copying.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	r.align()
	if n < 0 || n > r.Len() {
		return nil, fmt.Errorf("read %d bytes: %w", n, ErrTruncated)
	}
	b := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadToEnd returns all unread bytes and moves to the end.
func (r *Reader) ReadToEnd() []byte {
	r.align()
	b := r.data[r.pos:]
	r.pos = len(r.data)
	return b
}

// ReadU8 reads an unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	r.align()
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("read u8: %w", ErrTruncated)
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadFixed8 reads an 8.8 signed fixed-point value.
func (r *Reader) ReadFixed8() (float64, error) {
	v, err := r.ReadI16()
	return float64(v) / 256, err
}

// ReadFixed16 reads a 16.16 signed fixed-point value.
func (r *Reader) ReadFixed16() (float64, error) {
	v, err := r.ReadU32()
	return float64(int32(v)) / 65536, err
}

// ReadF32 reads a little-endian IEEE float.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return math.Float32frombits(v), err
}

// ReadCString reads a null-terminated string and returns its raw bytes
// without the terminator. A missing terminator consumes the rest.
func (r *Reader) ReadCString() []byte {
	r.align()
	rest := r.data[r.pos:]
	for i, c := range rest {
		if c == 0 {
			r.pos += i + 1
			return rest[:i:i]
		}
	}
	r.pos = len(r.data)
	return rest
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (bool, error) {
	if r.bitLeft == 0 {
		if r.pos >= len(r.data) {
			return false, fmt.Errorf("read bit: %w", ErrTruncated)
		}
		r.bitBuf = r.data[r.pos]
		r.pos++
		r.bitLeft = 8
	}
	r.bitLeft--
	return r.bitBuf&(1<<r.bitLeft) != 0, nil
}

// ReadUB reads an n-bit unsigned value (n <= 32).
func (r *Reader) ReadUB(n uint) (uint32, error) {
	var v uint32
	for range n {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// ReadSB reads an n-bit two's complement value (n <= 32).
func (r *Reader) ReadSB(n uint) (int32, error) {
	if n == 0 {
		return 0, nil
	}
	v, err := r.ReadUB(n)
	if err != nil {
		return 0, err
	}
	shift := 32 - n
	return int32(v<<shift) >> shift, nil
}

// ReadFB reads an n-bit signed 16.16 fixed-point value.
func (r *Reader) ReadFB(n uint) (float64, error) {
	v, err := r.ReadSB(n)
	return float64(v) / 65536, err
}

// ReadRect reads a RECT record.
func (r *Reader) ReadRect() (Rectangle, error) {
	r.align()
	defer r.align()
	n, err := r.ReadUB(5)
	if err != nil {
		return Rectangle{}, err
	}
	var v [4]int32
	for i := range v {
		if v[i], err = r.ReadSB(uint(n)); err != nil {
			return Rectangle{}, err
		}
	}
	return Rectangle{XMin: Twips(v[0]), XMax: Twips(v[1]), YMin: Twips(v[2]), YMax: Twips(v[3])}, nil
}

// ReadMatrix reads a MATRIX record.
func (r *Reader) ReadMatrix() (Matrix, error) {
	r.align()
	defer r.align()
	m := Identity()
	hasScale, err := r.ReadBit()
	if err != nil {
		return m, err
	}
	if hasScale {
		n, err := r.ReadUB(5)
		if err != nil {
			return m, err
		}
		if m.A, err = r.ReadFB(uint(n)); err != nil {
			return m, err
		}
		if m.D, err = r.ReadFB(uint(n)); err != nil {
			return m, err
		}
	}
	hasRotate, err := r.ReadBit()
	if err != nil {
		return m, err
	}
	if hasRotate {
		n, err := r.ReadUB(5)
		if err != nil {
			return m, err
		}
		if m.B, err = r.ReadFB(uint(n)); err != nil {
			return m, err
		}
		if m.C, err = r.ReadFB(uint(n)); err != nil {
			return m, err
		}
	}
	n, err := r.ReadUB(5)
	if err != nil {
		return m, err
	}
	tx, err := r.ReadSB(uint(n))
	if err != nil {
		return m, err
	}
	ty, err := r.ReadSB(uint(n))
	if err != nil {
		return m, err
	}
	m.Tx, m.Ty = Twips(tx), Twips(ty)
	return m, nil
}

// ReadColorTransform reads a CXFORM record (withAlpha false) or a
// CXFORMWITHALPHA record.
func (r *Reader) ReadColorTransform(withAlpha bool) (ColorTransform, error) {
	r.align()
	defer r.align()
	ct := IdentityColorTransform()
	hasAdd, err := r.ReadBit()
	if err != nil {
		return ct, err
	}
	hasMult, err := r.ReadBit()
	if err != nil {
		return ct, err
	}
	bits, err := r.ReadUB(4)
	if err != nil {
		return ct, err
	}
	channels := 3
	if withAlpha {
		channels = 4
	}
	read := func() ([4]int32, error) {
		var v [4]int32
		for i := range channels {
			var err error
			if v[i], err = r.ReadSB(uint(bits)); err != nil {
				return v, err
			}
		}
		return v, nil
	}
	if hasMult {
		v, err := read()
		if err != nil {
			return ct, err
		}
		ct.RMult, ct.GMult, ct.BMult = float64(v[0])/256, float64(v[1])/256, float64(v[2])/256
		if withAlpha {
			ct.AMult = float64(v[3]) / 256
		}
	}
	if hasAdd {
		v, err := read()
		if err != nil {
			return ct, err
		}
		ct.RAdd, ct.GAdd, ct.BAdd = int16(v[0]), int16(v[1]), int16(v[2])
		if withAlpha {
			ct.AAdd = int16(v[3])
		}
	}
	return ct, nil
}

// ReadRGB reads a 3-byte color with opaque alpha.
func (r *Reader) ReadRGB() (Color, error) {
	b, err := r.ReadBytes(3)
	if err != nil {
		return Color{}, err
	}
	return Color{R: b[0], G: b[1], B: b[2], A: 255}, nil
}

// ReadRGBA reads a 4-byte RGBA color.
func (r *Reader) ReadRGBA() (Color, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return Color{}, err
	}
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// ReadARGB reads a 4-byte ARGB color.
func (r *Reader) ReadARGB() (Color, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return Color{}, err
	}
	return Color{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
}

// ReadTagHeader reads a RECORDHEADER and returns the tag code and the
// declared body length.
func (r *Reader) ReadTagHeader() (TagCode, int, error) {
	v, err := r.ReadU16()
	if err != nil {
		return 0, 0, err
	}
	code := TagCode(v >> 6)
	length := int(v & 0x3f)
	if length == 0x3f {
		l, err := r.ReadU32()
		if err != nil {
			return 0, 0, err
		}
		if l > math.MaxInt32 {
			return 0, 0, fmt.Errorf("tag %v length %d: %w", code, l, ErrInvalidData)
		}
		length = int(l)
	}
	return code, length, nil
}
