package swf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/swf/internal/swftest"
)

func boxRecords(x0, y0, x1, y1 Twips, fill1 *uint32) []ShapeRecord {
	move := Pt(x0, y0)
	return []ShapeRecord{
		StyleChange{MoveTo: &move, FillStyle1: fill1},
		StraightEdge{Delta: Pt(x1-x0, 0)},
		StraightEdge{Delta: Pt(0, y1-y0)},
		StraightEdge{Delta: Pt(x0-x1, 0)},
		StraightEdge{Delta: Pt(0, y0-y1)},
	}
}

func TestReadDefineShape(t *testing.T) {
	r, code := tagBody(t, swftest.DefineShape(3, swftest.Box{XMin: 20, YMin: 40, XMax: 220, YMax: 140}, 0xff, 0x80, 0x00))
	if code != TagDefineShape {
		t.Fatalf("code = %v", code)
	}
	s, err := r.ReadDefineShape(1)
	if err != nil {
		t.Fatalf("ReadDefineShape() error = %v", err)
	}
	if s.ID != 3 || s.Version != 1 {
		t.Errorf("ID %d version %d", s.ID, s.Version)
	}
	if want := Rect(20, 40, 220, 140); s.ShapeBounds != want || s.EdgeBounds != want {
		t.Errorf("bounds = %+v / %+v, want %+v", s.ShapeBounds, s.EdgeBounds, want)
	}
	wantStyles := ShapeStyles{
		FillStyles: []FillStyle{SolidFill{Color: Color{R: 0xff, G: 0x80, A: 0xff}}},
		LineStyles: []LineStyle{},
	}
	if diff := cmp.Diff(wantStyles, s.Styles); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(boxRecords(20, 40, 220, 140, Uint32Ptr(1)), s.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDefineShape3_LineStyle(t *testing.T) {
	tag := swftest.DefineShape3(4, swftest.Box{XMax: 100, YMax: 100}, [4]byte{1, 2, 3, 128}, 40, [4]byte{9, 9, 9, 255})
	r, _ := tagBody(t, tag)
	s, err := r.ReadDefineShape(3)
	if err != nil {
		t.Fatalf("ReadDefineShape() error = %v", err)
	}
	if len(s.Styles.LineStyles) != 1 {
		t.Fatalf("len(LineStyles) = %d, want 1", len(s.Styles.LineStyles))
	}
	ls := s.Styles.LineStyles[0]
	if ls.Width != 40 || ls.Color() != (Color{9, 9, 9, 255}) {
		t.Errorf("line style = %+v", ls)
	}
	if got := FillColor(s.Styles.FillStyles[0]); got != (Color{1, 2, 3, 128}) {
		t.Errorf("fill color = %v", got)
	}
	sc := s.Records[0].(StyleChange)
	if sc.LineStyle == nil || *sc.LineStyle != 1 || sc.FillStyle1 == nil || *sc.FillStyle1 != 1 {
		t.Errorf("style change = %+v", sc)
	}
}

func TestReadDefineShape_Curve(t *testing.T) {
	var w swftest.BitWriter
	w.U16(1)
	w.Rect(0, 100, 0, 100)
	w.Byte(0) // fills
	w.Byte(0) // lines
	w.UB(0, 4)
	w.UB(0, 4)
	w.Curve(50, -50, 50, 50)
	w.Bit(false)
	w.UB(0, 5)
	s, err := NewReader(w.Bytes(), 10).ReadDefineShape(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []ShapeRecord{CurvedEdge{Control: Pt(50, -50), Anchor: Pt(50, 50)}}
	if diff := cmp.Diff(want, s.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDefineMorphShape(t *testing.T) {
	start := swftest.Box{XMax: 100, YMax: 100}
	end := swftest.Box{XMin: 100, YMin: 100, XMax: 300, YMax: 300}
	tag := swftest.DefineMorphShape(6, start, end, [4]byte{255, 0, 0, 255}, [4]byte{0, 0, 255, 128})
	r, code := tagBody(t, tag)
	if code != TagDefineMorphShape {
		t.Fatalf("code = %v", code)
	}
	m, err := r.ReadDefineMorphShape(1)
	if err != nil {
		t.Fatalf("ReadDefineMorphShape() error = %v", err)
	}
	if m.ID != 6 || m.Start.ID != 6 || m.End.ID != 6 {
		t.Errorf("ids = %d %d %d", m.ID, m.Start.ID, m.End.ID)
	}
	if m.Start.ShapeBounds != Rect(0, 0, 100, 100) || m.End.ShapeBounds != Rect(100, 100, 300, 300) {
		t.Errorf("bounds = %+v / %+v", m.Start.ShapeBounds, m.End.ShapeBounds)
	}
	if got := FillColor(m.Start.Styles.FillStyles[0]); got != (Color{255, 0, 0, 255}) {
		t.Errorf("start fill = %v", got)
	}
	if got := FillColor(m.End.Styles.FillStyles[0]); got != (Color{0, 0, 255, 128}) {
		t.Errorf("end fill = %v", got)
	}
	if diff := cmp.Diff(boxRecords(0, 0, 100, 100, Uint32Ptr(1)), m.Start.Records); diff != "" {
		t.Errorf("start records mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(boxRecords(100, 100, 300, 300, nil), m.End.Records); diff != "" {
		t.Errorf("end records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDefineShape_Truncated(t *testing.T) {
	tag := swftest.DefineShape(3, swftest.Box{XMax: 100, YMax: 100}, 1, 2, 3)
	r, _ := tagBody(t, tag)
	body := r.Remaining()
	if _, err := NewReader(body[:len(body)-4], 10).ReadDefineShape(1); err == nil {
		t.Error("ReadDefineShape() on a truncated body returned nil error")
	}
}
