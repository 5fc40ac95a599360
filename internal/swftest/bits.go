package swftest

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// BitWriter writes SWF bit-packed fields, most significant bit first.
type BitWriter struct {
	buf  []byte
	cur  byte
	used uint8
}

// Bit writes a single bit.
func (w *BitWriter) Bit(b bool) {
	if b {
		w.cur |= 1 << (7 - w.used)
	}
	w.used++
	if w.used == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur, w.used = 0, 0
	}
}

// UB writes the low n bits of v.
func (w *BitWriter) UB(v uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		w.Bit(v&(1<<uint(i)) != 0)
	}
}

// SB writes v as an n-bit two's complement value.
func (w *BitWriter) SB(v int32, n uint) {
	w.UB(uint32(v), n)
}

// Align pads the current byte with zero bits.
func (w *BitWriter) Align() {
	if w.used > 0 {
		w.buf = append(w.buf, w.cur)
		w.cur, w.used = 0, 0
	}
}

// Byte writes an aligned byte.
func (w *BitWriter) Byte(b byte) {
	w.Align()
	w.buf = append(w.buf, b)
}

// Raw writes aligned bytes.
func (w *BitWriter) Raw(b ...byte) {
	w.Align()
	w.buf = append(w.buf, b...)
}

// U16 writes an aligned little-endian uint16.
func (w *BitWriter) U16(v uint16) {
	w.Align()
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// U32 writes an aligned little-endian uint32.
func (w *BitWriter) U32(v uint32) {
	w.Align()
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Bytes aligns and returns the written data.
func (w *BitWriter) Bytes() []byte {
	w.Align()
	return w.buf
}

// Len returns the number of whole bytes written, counting a partial byte.
func (w *BitWriter) Len() int {
	if w.used > 0 {
		return len(w.buf) + 1
	}
	return len(w.buf)
}

// SBits returns the number of bits needed to hold every value as SB.
func SBits(vs ...int32) uint {
	n := uint(0)
	for _, v := range vs {
		if v < 0 {
			v = ^v
		}
		if v == 0 {
			continue
		}
		n = max(n, uint(bits.Len32(uint32(v)))+1)
	}
	return n
}

// Rect writes a RECT record.
func (w *BitWriter) Rect(xmin, xmax, ymin, ymax int32) {
	w.Align()
	n := SBits(xmin, xmax, ymin, ymax)
	w.UB(uint32(n), 5)
	w.SB(xmin, n)
	w.SB(xmax, n)
	w.SB(ymin, n)
	w.SB(ymax, n)
	w.Align()
}

// Matrix writes a MATRIX record.
func (w *BitWriter) Matrix(m Mat) {
	w.Align()
	fixed := func(f float64) int32 { return int32(math.Round(f * 65536)) }
	hasScale := m.A != 1 || m.D != 1
	w.Bit(hasScale)
	if hasScale {
		a, d := fixed(m.A), fixed(m.D)
		n := SBits(a, d)
		w.UB(uint32(n), 5)
		w.SB(a, n)
		w.SB(d, n)
	}
	hasRotate := m.B != 0 || m.C != 0
	w.Bit(hasRotate)
	if hasRotate {
		b, c := fixed(m.B), fixed(m.C)
		n := SBits(b, c)
		w.UB(uint32(n), 5)
		w.SB(b, n)
		w.SB(c, n)
	}
	n := SBits(m.TX, m.TY)
	w.UB(uint32(n), 5)
	w.SB(m.TX, n)
	w.SB(m.TY, n)
	w.Align()
}

// CxForm writes a CXFORMWITHALPHA record.
func (w *BitWriter) CxForm(c CxForm) {
	w.Align()
	mult := [4]int32{int32(c.Mult[0] * 256), int32(c.Mult[1] * 256), int32(c.Mult[2] * 256), int32(c.Mult[3] * 256)}
	n := SBits(append(mult[:], c.Add[:]...)...)
	w.Bit(true)
	w.Bit(true)
	w.UB(uint32(n), 4)
	for _, v := range mult {
		w.SB(v, n)
	}
	for _, v := range c.Add {
		w.SB(v, n)
	}
	w.Align()
}

// Mat is a MATRIX with translation in twips.
type Mat struct {
	A, B, C, D float64
	TX, TY     int32
}

// Translate returns a translation matrix.
func Translate(tx, ty int32) Mat {
	return Mat{A: 1, D: 1, TX: tx, TY: ty}
}

// CxForm is a color transform with multipliers in 0..1 units.
type CxForm struct {
	Mult [4]float64
	Add  [4]int32
}
