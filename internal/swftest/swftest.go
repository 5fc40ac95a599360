// Package swftest builds SWF byte streams for tests.
package swftest

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/zlib"
)

// Tag codes used by the builders.
const (
	codeEnd                = 0
	codeShowFrame          = 1
	codeDefineShape        = 2
	codeRemoveObject       = 5
	codeSetBackground      = 9
	codeDefineBitsLossless = 20
	codePlaceObject2       = 26
	codeRemoveObject2      = 28
	codeDefineShape3       = 32
	codeDefineSprite       = 39
	codeFrameLabel         = 43
	codeDefineMorphShape   = 46
	codeFileAttributes     = 69
	codePlaceObject3       = 70
)

// Tag encodes a tag record with the given code and body, choosing the
// long header form when needed.
func Tag(code uint16, body []byte) []byte {
	var out []byte
	if len(body) < 0x3f {
		out = binary.LittleEndian.AppendUint16(out, code<<6|uint16(len(body)))
	} else {
		out = binary.LittleEndian.AppendUint16(out, code<<6|0x3f)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	}
	return append(out, body...)
}

// LongTag encodes a tag with the long header form regardless of size.
func LongTag(code uint16, body []byte) []byte {
	out := binary.LittleEndian.AppendUint16(nil, code<<6|0x3f)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

// Concat joins byte slices.
func Concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// End returns an End tag.
func End() []byte { return Tag(codeEnd, nil) }

// ShowFrame returns a ShowFrame tag.
func ShowFrame() []byte { return Tag(codeShowFrame, nil) }

// FrameLabel returns a FrameLabel tag.
func FrameLabel(name string) []byte {
	return Tag(codeFrameLabel, append([]byte(name), 0))
}

// FileAttributes returns a FileAttributes tag.
func FileAttributes(flags uint32) []byte {
	return Tag(codeFileAttributes, binary.LittleEndian.AppendUint32(nil, flags))
}

// SetBackgroundColor returns a SetBackgroundColor tag.
func SetBackgroundColor(r, g, b byte) []byte {
	return Tag(codeSetBackground, []byte{r, g, b})
}

// RemoveObject returns a RemoveObject (version 1) tag.
func RemoveObject(id, depth uint16) []byte {
	body := binary.LittleEndian.AppendUint16(nil, id)
	return Tag(codeRemoveObject, binary.LittleEndian.AppendUint16(body, depth))
}

// RemoveObject2 returns a RemoveObject2 tag.
func RemoveObject2(depth uint16) []byte {
	return Tag(codeRemoveObject2, binary.LittleEndian.AppendUint16(nil, depth))
}

// DefineSprite returns a DefineSprite tag wrapping the given tags. An End
// tag is appended.
func DefineSprite(id, frames uint16, tags ...[]byte) []byte {
	var w BitWriter
	w.U16(id)
	w.U16(frames)
	w.Raw(Concat(tags...)...)
	w.Raw(End()...)
	return Tag(codeDefineSprite, w.Bytes())
}

// Rect returns an encoded RECT.
func Rect(xmin, xmax, ymin, ymax int32) []byte {
	var w BitWriter
	w.Rect(xmin, xmax, ymin, ymax)
	return w.Bytes()
}

// Box is a rectangle in twips.
type Box struct {
	XMin, YMin, XMax, YMax int32
}

// writeBoxEdges writes a move to the box origin (with the given fill
// style selection) followed by four straight edges and an end record.
func writeBoxEdges(w *BitWriter, b Box, fillBits uint, fill1 uint32) {
	w.Bit(false) // style change
	w.Bit(false) // new styles
	w.Bit(false) // line style
	w.Bit(fillBits > 0)
	w.Bit(false) // fill style 0
	w.Bit(true)  // move to
	n := SBits(b.XMin, b.YMin)
	w.UB(uint32(n), 5)
	w.SB(b.XMin, n)
	w.SB(b.YMin, n)
	if fillBits > 0 {
		w.UB(fill1, fillBits)
	}
	w.straight(b.XMax-b.XMin, 0)
	w.straight(0, b.YMax-b.YMin)
	w.straight(b.XMin-b.XMax, 0)
	w.straight(0, b.YMin-b.YMax)
	w.Bit(false)
	w.UB(0, 5)
}

func (w *BitWriter) straight(dx, dy int32) {
	n := max(SBits(dx, dy), 2)
	w.Bit(true) // edge
	w.Bit(true) // straight
	w.UB(uint32(n-2), 4)
	w.Bit(true) // general line
	w.SB(dx, n)
	w.SB(dy, n)
}

// Curve appends a curved edge record.
func (w *BitWriter) Curve(cx, cy, ax, ay int32) {
	n := max(SBits(cx, cy, ax, ay), 2)
	w.Bit(true)
	w.Bit(false)
	w.UB(uint32(n-2), 4)
	w.SB(cx, n)
	w.SB(cy, n)
	w.SB(ax, n)
	w.SB(ay, n)
}

// DefineShape returns a DefineShape tag for a rectangle filled with an
// opaque RGB color. The declared bounds equal the rectangle.
func DefineShape(id uint16, b Box, r, g, bl byte) []byte {
	var w BitWriter
	w.U16(id)
	w.Rect(b.XMin, b.XMax, b.YMin, b.YMax)
	w.Byte(1)
	w.Raw(0x00, r, g, bl)
	w.Byte(0)
	w.UB(1, 4)
	w.UB(0, 4)
	writeBoxEdges(&w, b, 1, 1)
	return Tag(codeDefineShape, w.Bytes())
}

// DefineShape3 returns a DefineShape3 tag for a rectangle with an RGBA
// fill and a solid line style of the given width.
func DefineShape3(id uint16, b Box, fill [4]byte, lineWidth uint16, line [4]byte) []byte {
	var w BitWriter
	w.U16(id)
	w.Rect(b.XMin-int32(lineWidth), b.XMax+int32(lineWidth), b.YMin-int32(lineWidth), b.YMax+int32(lineWidth))
	w.Byte(1)
	w.Raw(0x00, fill[0], fill[1], fill[2], fill[3])
	w.Byte(1)
	w.U16(lineWidth)
	w.Raw(line[:]...)
	w.UB(1, 4)
	w.UB(1, 4)
	// Select fill 1 and line 1 on the move.
	w.Bit(false)
	w.Bit(false) // new styles
	w.Bit(true)  // line style
	w.Bit(true)  // fill style 1
	w.Bit(false) // fill style 0
	w.Bit(true)  // move to
	n := SBits(b.XMin, b.YMin)
	w.UB(uint32(n), 5)
	w.SB(b.XMin, n)
	w.SB(b.YMin, n)
	w.UB(1, 1)
	w.UB(1, 1)
	w.straight(b.XMax-b.XMin, 0)
	w.straight(0, b.YMax-b.YMin)
	w.straight(b.XMin-b.XMax, 0)
	w.straight(0, b.YMin-b.YMax)
	w.Bit(false)
	w.UB(0, 5)
	return Tag(codeDefineShape3, w.Bytes())
}

// DefineMorphShape returns a DefineMorphShape tag morphing between two
// rectangles with solid RGBA fills.
func DefineMorphShape(id uint16, start, end Box, startColor, endColor [4]byte) []byte {
	var w BitWriter
	w.U16(id)
	w.Rect(start.XMin, start.XMax, start.YMin, start.YMax)
	w.Rect(end.XMin, end.XMax, end.YMin, end.YMax)

	var styles BitWriter
	styles.Byte(1)
	styles.Raw(0x00)
	styles.Raw(startColor[:]...)
	styles.Raw(endColor[:]...)
	styles.Byte(0)
	styles.UB(1, 4)
	styles.UB(0, 4)
	writeBoxEdges(&styles, start, 1, 1)
	startPart := styles.Bytes()

	var endEdges BitWriter
	endEdges.UB(0, 4)
	endEdges.UB(0, 4)
	writeBoxEdges(&endEdges, end, 0, 0)

	w.U32(uint32(len(startPart)))
	w.Raw(startPart...)
	w.Raw(endEdges.Bytes()...)
	return Tag(codeDefineMorphShape, w.Bytes())
}

// DefineBitsLossless returns a DefineBitsLossless tag holding a 24-bit
// image where every pixel has the given color.
func DefineBitsLossless(id, width, height uint16, r, g, b byte) []byte {
	var px bytes.Buffer
	for range int(width) * int(height) {
		px.Write([]byte{0, r, g, b})
	}
	var w BitWriter
	w.U16(id)
	w.Byte(5)
	w.U16(width)
	w.U16(height)
	w.Raw(Deflate(px.Bytes())...)
	return Tag(codeDefineBitsLossless, w.Bytes())
}

// Deflate zlib-compresses data.
func Deflate(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

// Place describes a PlaceObject2 or PlaceObject3 tag. ID zero means the
// tag carries no character.
type Place struct {
	Depth     uint16
	ID        uint16
	Move      bool
	Matrix    *Mat
	CxForm    *CxForm
	Ratio     *uint16
	Name      string
	ClipDepth uint16

	// PlaceObject3 fields. Any of them being set selects PlaceObject3.
	BlendMode  uint8
	Cache      *bool
	Visible    *bool
	Background *[4]byte
	BlurX      float64 // a single blur filter when non-zero
}

func (p Place) version3() bool {
	return p.BlendMode != 0 || p.Cache != nil || p.Visible != nil || p.Background != nil || p.BlurX != 0
}

// PlaceObject returns the encoded PlaceObject2 or PlaceObject3 tag.
func PlaceObject(p Place) []byte {
	var flags byte
	if p.ClipDepth != 0 {
		flags |= 0x40
	}
	if p.Name != "" {
		flags |= 0x20
	}
	if p.Ratio != nil {
		flags |= 0x10
	}
	if p.CxForm != nil {
		flags |= 0x08
	}
	if p.Matrix != nil {
		flags |= 0x04
	}
	if p.Move {
		flags |= 0x02
	}
	if p.ID != 0 {
		flags |= 0x01
	}
	var w BitWriter
	w.Byte(flags)
	v3 := p.version3()
	if v3 {
		var flags2 byte
		if p.Background != nil {
			flags2 |= 0x40
		}
		if p.Visible != nil {
			flags2 |= 0x20
		}
		if p.Cache != nil {
			flags2 |= 0x04
		}
		if p.BlendMode != 0 {
			flags2 |= 0x02
		}
		if p.BlurX != 0 {
			flags2 |= 0x01
		}
		w.Byte(flags2)
	}
	w.U16(p.Depth)
	if p.ID != 0 {
		w.U16(p.ID)
	}
	if p.Matrix != nil {
		w.Matrix(*p.Matrix)
	}
	if p.CxForm != nil {
		w.CxForm(*p.CxForm)
	}
	if p.Ratio != nil {
		w.U16(*p.Ratio)
	}
	if p.Name != "" {
		w.Raw(append([]byte(p.Name), 0)...)
	}
	if p.ClipDepth != 0 {
		w.U16(p.ClipDepth)
	}
	if !v3 {
		return Tag(codePlaceObject2, w.Bytes())
	}
	if p.BlurX != 0 {
		w.Byte(1) // one filter
		w.Byte(1) // blur
		fixed := uint32(int32(p.BlurX * 65536))
		w.U32(fixed)
		w.U32(fixed)
		w.Byte(1 << 3) // one pass
	}
	if p.BlendMode != 0 {
		w.Byte(p.BlendMode)
	}
	if p.Cache != nil {
		w.Byte(boolByte(*p.Cache))
	}
	if p.Visible != nil {
		w.Byte(boolByte(*p.Visible))
	}
	if p.Background != nil {
		w.Raw(p.Background[:]...)
	}
	return Tag(codePlaceObject3, w.Bytes())
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// U16 returns a pointer to v.
func U16(v uint16) *uint16 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Movie returns an uncompressed SWF file with a 550x400 stage at 24 fps.
func Movie(version uint8, frames uint16, tags ...[]byte) []byte {
	body := movieBody(frames, tags...)
	out := []byte{'F', 'W', 'S', version}
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)+8))
	return append(out, body...)
}

// CompressedMovie is Movie with a zlib-compressed body.
func CompressedMovie(version uint8, frames uint16, tags ...[]byte) []byte {
	body := movieBody(frames, tags...)
	out := []byte{'C', 'W', 'S', version}
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)+8))
	return append(out, Deflate(body)...)
}

func movieBody(frames uint16, tags ...[]byte) []byte {
	var w BitWriter
	w.Rect(0, 550*20, 0, 400*20)
	w.U16(24 << 8)
	w.U16(frames)
	w.Raw(Concat(tags...)...)
	w.Raw(End()...)
	return w.Bytes()
}
