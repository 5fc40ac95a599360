package swf

import (
	"errors"
	"testing"

	"github.com/gogpu/swf/internal/swftest"
)

func TestReader_Integers(t *testing.T) {
	r := NewReader([]byte{0x01, 0x34, 0x12, 0xfe, 0xff, 0x78, 0x56, 0x34, 0x12}, 10)
	u8, _ := r.ReadU8()
	u16, _ := r.ReadU16()
	i16, _ := r.ReadI16()
	u32, _ := r.ReadU32()
	if u8 != 1 || u16 != 0x1234 || i16 != -2 || u32 != 0x12345678 {
		t.Errorf("got %d %#x %d %#x", u8, u16, i16, u32)
	}
	if !r.Empty() {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if _, err := r.ReadU8(); !errors.Is(err, ErrTruncated) {
		t.Errorf("read past end: err = %v, want ErrTruncated", err)
	}
}

func TestReader_Bits(t *testing.T) {
	// 101 11110 then a byte-aligned read.
	r := NewReader([]byte{0b10111110, 0x7f}, 10)
	ub, _ := r.ReadUB(3)
	sb, _ := r.ReadSB(5)
	if ub != 5 {
		t.Errorf("ReadUB(3) = %d, want 5", ub)
	}
	if sb != -2 {
		t.Errorf("ReadSB(5) = %d, want -2", sb)
	}
	if b, _ := r.ReadU8(); b != 0x7f {
		t.Errorf("aligned ReadU8() = %#x, want 0x7f", b)
	}
}

func TestReader_PartialByteDiscarded(t *testing.T) {
	r := NewReader([]byte{0xff, 0x02}, 10)
	if _, err := r.ReadBit(); err != nil {
		t.Fatal(err)
	}
	if b, _ := r.ReadU8(); b != 0x02 {
		t.Errorf("ReadU8() after a bit read = %#x, want 0x02", b)
	}
}

func TestReader_Fixed(t *testing.T) {
	r := NewReader([]byte{0x80, 0x01, 0x00, 0x80, 0x02, 0x00}, 10)
	f8, _ := r.ReadFixed8()
	f16, _ := r.ReadFixed16()
	if f8 != 1.5 {
		t.Errorf("ReadFixed8() = %v, want 1.5", f8)
	}
	if f16 != 2.5 {
		t.Errorf("ReadFixed16() = %v, want 2.5", f16)
	}
}

func TestReader_CString(t *testing.T) {
	r := NewReader([]byte("abc\x00def"), 10)
	if got := string(r.ReadCString()); got != "abc" {
		t.Errorf("ReadCString() = %q, want abc", got)
	}
	if got := string(r.ReadCString()); got != "def" {
		t.Errorf("unterminated ReadCString() = %q, want def", got)
	}
}

func TestReader_Rect(t *testing.T) {
	r := NewReader(swftest.Rect(-20, 11000, 0, 8000), 10)
	got, err := r.ReadRect()
	if err != nil {
		t.Fatal(err)
	}
	if want := Rect(-20, 0, 11000, 8000); got != want {
		t.Errorf("ReadRect() = %+v, want %+v", got, want)
	}
}

func TestReader_Matrix(t *testing.T) {
	tests := []struct {
		name string
		in   swftest.Mat
		want Matrix
	}{
		{"translate", swftest.Translate(100, -40), Translate(100, -40)},
		{"scale", swftest.Mat{A: 2, D: 0.5}, Matrix{A: 2, D: 0.5}},
		{"rotate", swftest.Mat{A: 1, B: 0.5, C: -0.5, D: 1, TX: 3}, Matrix{A: 1, B: 0.5, C: -0.5, D: 1, Tx: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w swftest.BitWriter
			w.Matrix(tt.in)
			got, err := NewReader(w.Bytes(), 10).ReadMatrix()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ReadMatrix() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReader_ColorTransform(t *testing.T) {
	var w swftest.BitWriter
	w.CxForm(swftest.CxForm{Mult: [4]float64{0.5, 1, 1, 0.25}, Add: [4]int32{10, 0, -10, 0}})
	got, err := NewReader(w.Bytes(), 10).ReadColorTransform(true)
	if err != nil {
		t.Fatal(err)
	}
	want := ColorTransform{RMult: 0.5, GMult: 1, BMult: 1, AMult: 0.25, RAdd: 10, BAdd: -10}
	if got != want {
		t.Errorf("ReadColorTransform() = %+v, want %+v", got, want)
	}
}

func TestReader_TagHeader(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantCode TagCode
		wantLen  int
	}{
		{"short", swftest.Tag(uint16(TagShowFrame), nil), TagShowFrame, 0},
		{"short body", swftest.Tag(uint16(TagFrameLabel), []byte("x\x00")), TagFrameLabel, 2},
		{"long form", swftest.LongTag(uint16(TagFrameLabel), []byte("y\x00")), TagFrameLabel, 2},
		{"long body", swftest.Tag(uint16(TagDefineShape), make([]byte, 100)), TagDefineShape, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, n, err := NewReader(tt.data, 10).ReadTagHeader()
			if err != nil {
				t.Fatal(err)
			}
			if code != tt.wantCode || n != tt.wantLen {
				t.Errorf("ReadTagHeader() = (%v, %d), want (%v, %d)", code, n, tt.wantCode, tt.wantLen)
			}
		})
	}
}

func TestReader_SubOffsets(t *testing.T) {
	r := NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 10)
	_ = r.Skip(2)
	sub, err := r.Sub(4)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = sub.ReadU8()
	if sub.Offset() != 3 {
		t.Errorf("sub.Offset() = %d, want 3", sub.Offset())
	}
	if r.Offset() != 6 {
		t.Errorf("r.Offset() = %d, want 6", r.Offset())
	}
	if _, err := r.Sub(10); !errors.Is(err, ErrTruncated) {
		t.Errorf("oversized Sub: err = %v, want ErrTruncated", err)
	}
}

func TestDecodeTags(t *testing.T) {
	t.Run("reaches end", func(t *testing.T) {
		data := swftest.Concat(swftest.ShowFrame(), swftest.ShowFrame())
		var n int
		ok, err := DecodeTags(NewReader(data, 10), func(*Reader, TagCode, int) (ControlFlow, error) {
			n++
			return Continue, nil
		})
		if !ok || err != nil || n != 2 {
			t.Errorf("DecodeTags() = (%v, %v) after %d tags, want (true, nil) after 2", ok, err, n)
		}
	})

	t.Run("exit leaves reader after tag", func(t *testing.T) {
		data := swftest.Concat(swftest.ShowFrame(), swftest.End(), swftest.ShowFrame())
		r := NewReader(data, 10)
		ok, _ := DecodeTags(r, func(_ *Reader, code TagCode, _ int) (ControlFlow, error) {
			if code == TagEnd {
				return Exit, nil
			}
			return Continue, nil
		})
		if !ok {
			t.Error("DecodeTags() = false, want true")
		}
		if r.Pos() != 4 {
			t.Errorf("Pos() = %d, want 4", r.Pos())
		}
	})

	t.Run("unknown tags skipped", func(t *testing.T) {
		data := swftest.Concat(swftest.Tag(1000, []byte{1, 2, 3}), swftest.ShowFrame())
		var codes []TagCode
		_, _ = DecodeTags(NewReader(data, 10), func(_ *Reader, code TagCode, _ int) (ControlFlow, error) {
			codes = append(codes, code)
			return Continue, nil
		})
		if len(codes) != 1 || codes[0] != TagShowFrame {
			t.Errorf("handled %v, want [ShowFrame]", codes)
		}
	})

	t.Run("handler error continues", func(t *testing.T) {
		data := swftest.Concat(swftest.FrameLabel("a"), swftest.ShowFrame())
		var n int
		ok, _ := DecodeTags(NewReader(data, 10), func(_ *Reader, code TagCode, _ int) (ControlFlow, error) {
			n++
			if code == TagFrameLabel {
				return Continue, ErrInvalidData
			}
			return Continue, nil
		})
		if !ok || n != 2 {
			t.Errorf("ok=%v n=%d, want true and 2", ok, n)
		}
	})

	t.Run("truncated tag", func(t *testing.T) {
		tag := swftest.Tag(uint16(TagFrameLabel), []byte("abcdef\x00"))
		data := swftest.Concat(swftest.ShowFrame(), tag[:len(tag)-3])
		r := NewReader(data, 10)
		var n int
		ok, err := DecodeTags(r, func(*Reader, TagCode, int) (ControlFlow, error) {
			n++
			return Continue, nil
		})
		if ok || err != nil {
			t.Errorf("DecodeTags() = (%v, %v), want (false, nil)", ok, err)
		}
		if n != 1 {
			t.Errorf("handled %d tags, want 1", n)
		}
		if !r.Empty() {
			t.Error("reader not moved to end")
		}
	})

	t.Run("body bounded to tag", func(t *testing.T) {
		data := swftest.Concat(swftest.FrameLabel("ab"), swftest.ShowFrame())
		_, _ = DecodeTags(NewReader(data, 10), func(r *Reader, code TagCode, length int) (ControlFlow, error) {
			if code == TagFrameLabel && (r.Len() != 3 || length != 3) {
				t.Errorf("body Len() = %d length = %d, want 3", r.Len(), length)
			}
			return Continue, nil
		})
	})
}

func BenchmarkDecodeTags(b *testing.B) {
	var tags [][]byte
	for range 256 {
		tags = append(tags, swftest.FrameLabel("frame"), swftest.ShowFrame())
	}
	data := swftest.Concat(tags...)
	for b.Loop() {
		_, _ = DecodeTags(NewReader(data, 10), func(*Reader, TagCode, int) (ControlFlow, error) {
			return Continue, nil
		})
	}
}
