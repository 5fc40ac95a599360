package swf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding"
)

// DefaultMaxUncompressedSize bounds the declared size of a movie unless
// overridden with WithMaxUncompressedSize.
const DefaultMaxUncompressedSize = 256 << 20

// Compression is the compression scheme named by the file signature.
type Compression uint8

const (
	CompressionNone Compression = iota // FWS
	CompressionZlib                    // CWS
	CompressionLZMA                    // ZWS
)

// String returns the file signature for the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "FWS"
	case CompressionZlib:
		return "CWS"
	case CompressionLZMA:
		return "ZWS"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Header is the fixed SWF header.
type Header struct {
	Compression        Compression
	Version            uint8
	UncompressedLength uint32
	StageSize          Rectangle
	FrameRate          float64
	NumFrames          uint16
}

// FileAttributes flags.
const (
	AttrUseDirectBlit uint32 = 1 << 6
	AttrUseGPU        uint32 = 1 << 5
	AttrHasMetadata   uint32 = 1 << 4
	AttrIsAS3         uint32 = 1 << 3
	AttrUseNetwork    uint32 = 1 << 0
)

// Movie is a fully decompressed SWF. It is immutable once built and may
// be shared between any number of slices and instances.
type Movie struct {
	header     Header
	attributes uint32
	background *Color
	data       []byte
	encoding   encoding.Encoding
}

// LoadOption configures Load and Parse.
type LoadOption func(*loadOptions)

type loadOptions struct {
	maxSize  int
	encoding string
}

func defaultLoadOptions() loadOptions {
	return loadOptions{maxSize: DefaultMaxUncompressedSize}
}

// WithMaxUncompressedSize rejects movies whose declared uncompressed size
// exceeds n bytes.
func WithMaxUncompressedSize(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxSize = n
	}
}

// WithEncoding overrides the text encoding derived from the SWF version.
// The name is a WHATWG label such as "shift_jis".
func WithEncoding(name string) LoadOption {
	return func(o *loadOptions) {
		o.encoding = name
	}
}

// Load reads a complete SWF file from r.
func Load(r io.Reader, opts ...LoadOption) (*Movie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("swf: read: %w", err)
	}
	return Parse(data, opts...)
}

// Parse decodes a complete SWF file held in memory. CWS files are
// inflated; ZWS files are rejected with ErrUnsupportedCompression.
func Parse(data []byte, opts ...LoadOption) (*Movie, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("swf: header: %w", ErrTruncated)
	}

	var h Header
	switch string(data[:3]) {
	case "FWS":
		h.Compression = CompressionNone
	case "CWS":
		h.Compression = CompressionZlib
	case "ZWS":
		return nil, fmt.Errorf("swf: LZMA: %w", ErrUnsupportedCompression)
	default:
		return nil, fmt.Errorf("swf: %q: %w", data[:3], ErrInvalidSignature)
	}
	h.Version = data[3]
	h.UncompressedLength = binary.LittleEndian.Uint32(data[4:8])
	if int64(h.UncompressedLength) > int64(o.maxSize) {
		return nil, fmt.Errorf("swf: declared size %d: %w", h.UncompressedLength, ErrTooLarge)
	}

	body, err := decompress(h, data[8:])
	if err != nil {
		return nil, err
	}
	if want := int(h.UncompressedLength) - 8; len(body) != want {
		Logger().Warn("uncompressed length mismatch", "declared", want, "actual", len(body))
	}

	r := NewReader(body, h.Version)
	if h.StageSize, err = r.ReadRect(); err != nil {
		return nil, fmt.Errorf("swf: stage size: %w", err)
	}
	rate, err := r.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("swf: frame rate: %w", err)
	}
	h.FrameRate = float64(rate) / 256
	if h.NumFrames, err = r.ReadU16(); err != nil {
		return nil, fmt.Errorf("swf: frame count: %w", err)
	}

	m := NewMovie(h, r.Remaining())
	if o.encoding != "" {
		enc, err := LookupEncoding(o.encoding)
		if err != nil {
			return nil, err
		}
		m.encoding = enc
	}
	return m, nil
}

func decompress(h Header, data []byte) ([]byte, error) {
	if h.Compression == CompressionNone {
		return data, nil
	}
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("swf: zlib: %w", err)
	}
	defer zr.Close()

	size := max(int(h.UncompressedLength)-8, 0)
	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := io.Copy(buf, io.LimitReader(zr, int64(size))); err != nil {
		// A truncated stream still yields a playable prefix.
		if buf.Len() == 0 {
			return nil, fmt.Errorf("swf: zlib: %w", err)
		}
		Logger().Warn("truncated compressed movie", "read", buf.Len(), "err", err)
	}
	return buf.Bytes(), nil
}

// NewMovie builds a movie from a header and its already decompressed tag
// stream (the bytes following the frame count). FileAttributes and
// SetBackgroundColor are picked up from the first frame.
func NewMovie(h Header, data []byte) *Movie {
	m := &Movie{
		header:   h,
		data:     data,
		encoding: EncodingForVersion(h.Version),
	}
	m.scanAttributes()
	return m
}

func (m *Movie) scanAttributes() {
	r := NewReader(m.data, m.header.Version)
	complete, err := DecodeTags(r, func(r *Reader, code TagCode, _ int) (ControlFlow, error) {
		switch code {
		case TagFileAttributes:
			v, err := r.ReadU32()
			if err != nil {
				// Some encoders write a single flags byte.
				b, err := r.ReadU8()
				if err != nil {
					return Continue, err
				}
				v = uint32(b)
			}
			m.attributes = v
		case TagSetBackgroundColor:
			c, err := r.ReadRGB()
			if err != nil {
				return Continue, err
			}
			m.background = &c
		case TagShowFrame, TagEnd:
			return Exit, nil
		}
		return Continue, nil
	})
	if !complete || err != nil {
		Logger().Debug("header tag scan truncated", "err", err)
	}
}

// Header returns the SWF header.
func (m *Movie) Header() Header { return m.header }

// Version returns the SWF version.
func (m *Movie) Version() uint8 { return m.header.Version }

// FrameRate returns the frames per second of the root timeline.
func (m *Movie) FrameRate() float64 { return m.header.FrameRate }

// NumFrames returns the declared frame count of the root timeline.
func (m *Movie) NumFrames() uint16 { return m.header.NumFrames }

// StageSize returns the stage rectangle.
func (m *Movie) StageSize() Rectangle { return m.header.StageSize }

// Attributes returns the FileAttributes flags, 0 if the tag is absent.
func (m *Movie) Attributes() uint32 { return m.attributes }

// IsAS3 reports whether the movie declares ActionScript 3 semantics.
func (m *Movie) IsAS3() bool { return m.attributes&AttrIsAS3 != 0 }

// UseNetwork reports the FileAttributes network sandbox flag.
func (m *Movie) UseNetwork() bool { return m.attributes&AttrUseNetwork != 0 }

// BackgroundColor returns the stage color set in the first frame.
func (m *Movie) BackgroundColor() (Color, bool) {
	if m.background == nil {
		return Color{}, false
	}
	return *m.background, true
}

// Data returns the tag stream. The caller must not modify it.
func (m *Movie) Data() []byte { return m.data }

// Encoding returns the text encoding of strings in the movie.
func (m *Movie) Encoding() encoding.Encoding { return m.encoding }

// DecodeString decodes raw string bytes from the movie.
func (m *Movie) DecodeString(b []byte) string {
	return DecodeString(m.encoding, b)
}
