package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/swf"
)

func move(x, y swf.Twips) swf.StyleChange {
	p := swf.Pt(x, y)
	return swf.StyleChange{MoveTo: &p}
}

func line(dx, dy swf.Twips) swf.StraightEdge {
	return swf.StraightEdge{Delta: swf.Pt(dx, dy)}
}

func red() swf.FillStyle  { return swf.SolidFill{Color: swf.Color{R: 255, A: 255}} }
func blue() swf.FillStyle { return swf.SolidFill{Color: swf.Color{B: 255, A: 255}} }

// square draws a 100 twip square from (x, y) clockwise.
func square(x, y swf.Twips) []swf.ShapeRecord {
	return []swf.ShapeRecord{move(x, y), line(100, 0), line(0, 100), line(-100, 0), line(0, -100)}
}

func TestDistill_SingleFill(t *testing.T) {
	first := move(0, 0)
	first.FillStyle1 = swf.Uint32Ptr(1)
	records := append([]swf.ShapeRecord{first}, square(0, 0)[1:]...)

	s := &swf.Shape{
		ID:      7,
		Styles:  swf.ShapeStyles{FillStyles: []swf.FillStyle{red()}},
		Records: records,
	}
	d := Distill(s)
	if d.ID != 7 {
		t.Errorf("ID = %d, want 7", d.ID)
	}
	if len(d.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(d.Paths))
	}
	want := []Command{
		MoveTo{swf.Pt(0, 0)},
		LineTo{swf.Pt(100, 0)},
		LineTo{swf.Pt(100, 100)},
		LineTo{swf.Pt(0, 100)},
		LineTo{swf.Pt(0, 0)},
	}
	if diff := cmp.Diff(want, d.Paths[0].Commands); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if d.Paths[0].Rule != EvenOdd {
		t.Errorf("Rule = %v, want EvenOdd", d.Paths[0].Rule)
	}
	if d.Paths[0].IsStroke() {
		t.Error("fill reported as stroke")
	}
}

func TestDistill_NonZeroWinding(t *testing.T) {
	first := move(0, 0)
	first.FillStyle1 = swf.Uint32Ptr(1)
	s := &swf.Shape{
		Flags:   swf.ShapeNonZeroWinding,
		Styles:  swf.ShapeStyles{FillStyles: []swf.FillStyle{red()}},
		Records: append([]swf.ShapeRecord{first}, square(0, 0)[1:]...),
	}
	d := Distill(s)
	if len(d.Paths) != 1 || d.Paths[0].Rule != NonZero {
		t.Fatalf("paths = %+v, want one NonZero path", d.Paths)
	}
}

func TestDistill_LinksOutOfOrderSegments(t *testing.T) {
	// The square is drawn as two halves, the second half first.
	sc1 := move(100, 100)
	sc1.FillStyle1 = swf.Uint32Ptr(1)
	sc2 := move(0, 0)
	records := []swf.ShapeRecord{
		sc1, line(-100, 0), line(0, -100),
		sc2, line(100, 0), line(0, 100),
	}
	s := &swf.Shape{
		Styles:  swf.ShapeStyles{FillStyles: []swf.FillStyle{red()}},
		Records: records,
	}
	d := Distill(s)
	if len(d.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(d.Paths))
	}
	moves := 0
	for _, c := range d.Paths[0].Commands {
		if _, ok := c.(MoveTo); ok {
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("got %d subpaths, want the halves linked into 1", moves)
	}
	if n := len(d.Paths[0].Commands); n != 5 {
		t.Errorf("len(Commands) = %d, want 5", n)
	}
}

func TestDistill_FillStyle0Flipped(t *testing.T) {
	first := move(0, 0)
	first.FillStyle0 = swf.Uint32Ptr(1)
	s := &swf.Shape{
		Styles:  swf.ShapeStyles{FillStyles: []swf.FillStyle{red()}},
		Records: append([]swf.ShapeRecord{first}, square(0, 0)[1:]...),
	}
	d := Distill(s)
	if len(d.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(d.Paths))
	}
	want := []Command{
		MoveTo{swf.Pt(0, 0)},
		LineTo{swf.Pt(0, 100)},
		LineTo{swf.Pt(100, 100)},
		LineTo{swf.Pt(100, 0)},
		LineTo{swf.Pt(0, 0)},
	}
	if diff := cmp.Diff(want, d.Paths[0].Commands); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDistill_FillsBeforeStrokes(t *testing.T) {
	first := move(0, 0)
	first.FillStyle1 = swf.Uint32Ptr(2)
	first.LineStyle = swf.Uint32Ptr(1)
	s := &swf.Shape{
		Styles: swf.ShapeStyles{
			FillStyles: []swf.FillStyle{red(), blue()},
			LineStyles: []swf.LineStyle{{Width: 20, Fill: red()}},
		},
		Records: append([]swf.ShapeRecord{first}, square(0, 0)[1:]...),
	}
	d := Distill(s)
	if len(d.Paths) != 2 {
		t.Fatalf("len(Paths) = %d, want 2", len(d.Paths))
	}
	if d.Paths[0].IsStroke() || d.Paths[0].Fill != blue() {
		t.Errorf("Paths[0] = %+v, want the blue fill", d.Paths[0])
	}
	if !d.Paths[1].IsStroke() || d.Paths[1].Line.Width != 20 {
		t.Errorf("Paths[1] = %+v, want the stroke", d.Paths[1])
	}
	if !d.Paths[1].Closed {
		t.Error("stroke around a square should be closed")
	}
}

func TestDistill_OpenStroke(t *testing.T) {
	first := move(0, 0)
	first.LineStyle = swf.Uint32Ptr(1)
	s := &swf.Shape{
		Styles:  swf.ShapeStyles{LineStyles: []swf.LineStyle{{Width: 20}}},
		Records: []swf.ShapeRecord{first, line(100, 0), line(0, 100)},
	}
	d := Distill(s)
	if len(d.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(d.Paths))
	}
	if d.Paths[0].Closed {
		t.Error("open stroke reported closed")
	}
}

func TestDistill_StrokesAreNotLinked(t *testing.T) {
	first := move(0, 0)
	first.LineStyle = swf.Uint32Ptr(1)
	records := []swf.ShapeRecord{first, line(100, 0), move(100, 0), line(0, 100)}
	s := &swf.Shape{
		Styles:  swf.ShapeStyles{LineStyles: []swf.LineStyle{{Width: 20}}},
		Records: records,
	}
	if got := len(Distill(s).Paths); got != 2 {
		t.Errorf("len(Paths) = %d, want one per stroke segment", got)
	}
}

func TestDistill_InvalidStyleIgnored(t *testing.T) {
	first := move(0, 0)
	first.FillStyle1 = swf.Uint32Ptr(5)
	s := &swf.Shape{
		Styles:  swf.ShapeStyles{FillStyles: []swf.FillStyle{red()}},
		Records: append([]swf.ShapeRecord{first}, square(0, 0)[1:]...),
	}
	if got := len(Distill(s).Paths); got != 0 {
		t.Errorf("len(Paths) = %d, want 0 for an out of range style", got)
	}
}

func TestDistill_NewStylesFlushLayer(t *testing.T) {
	first := move(0, 0)
	first.FillStyle1 = swf.Uint32Ptr(1)
	second := move(200, 0)
	second.NewStyles = &swf.ShapeStyles{FillStyles: []swf.FillStyle{blue()}}
	second.FillStyle1 = swf.Uint32Ptr(1)

	var records []swf.ShapeRecord
	records = append(records, first)
	records = append(records, square(0, 0)[1:]...)
	records = append(records, second)
	records = append(records, square(200, 0)[1:]...)

	s := &swf.Shape{
		Styles:  swf.ShapeStyles{FillStyles: []swf.FillStyle{red()}},
		Records: records,
	}
	d := Distill(s)
	if len(d.Paths) != 2 {
		t.Fatalf("len(Paths) = %d, want 2", len(d.Paths))
	}
	if d.Paths[0].Fill != red() || d.Paths[1].Fill != blue() {
		t.Errorf("fills = %v, %v; want red then blue", d.Paths[0].Fill, d.Paths[1].Fill)
	}
}

func TestDistill_Curve(t *testing.T) {
	first := move(0, 0)
	first.LineStyle = swf.Uint32Ptr(1)
	s := &swf.Shape{
		Styles: swf.ShapeStyles{LineStyles: []swf.LineStyle{{Width: 20}}},
		Records: []swf.ShapeRecord{
			first,
			swf.CurvedEdge{Control: swf.Pt(50, -50), Anchor: swf.Pt(50, 50)},
		},
	}
	d := Distill(s)
	want := []Command{
		MoveTo{swf.Pt(0, 0)},
		QuadTo{Control: swf.Pt(50, -50), Point: swf.Pt(100, 0)},
	}
	if len(d.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(d.Paths))
	}
	if diff := cmp.Diff(want, d.Paths[0].Commands); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name    string
		records []swf.ShapeRecord
		want    swf.Rectangle
	}{
		{
			name: "empty",
			want: swf.Rectangle{},
		},
		{
			name:    "square",
			records: square(10, 20),
			want:    swf.Rect(10, 20, 110, 120),
		},
		{
			name:    "edges from origin",
			records: []swf.ShapeRecord{line(50, 0), line(0, -30)},
			want:    swf.Rect(50, -30, 50, 0),
		},
		{
			name: "curve extremum",
			records: []swf.ShapeRecord{
				move(0, 0),
				swf.CurvedEdge{Control: swf.Pt(50, -100), Anchor: swf.Pt(50, 100)},
			},
			want: swf.Rect(0, -50, 100, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bounds(tt.records); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuadraticBounds_StrokeWidth(t *testing.T) {
	got := QuadraticBounds(swf.Pt(0, 0), swf.Pt(50, 0), swf.Pt(100, 0), 20)
	want := swf.Rect(-10, -10, 110, 10)
	if got != want {
		t.Errorf("QuadraticBounds() = %+v, want %+v", got, want)
	}
}

func BenchmarkDistill(b *testing.B) {
	first := move(0, 0)
	first.FillStyle1 = swf.Uint32Ptr(1)
	first.LineStyle = swf.Uint32Ptr(1)
	var records []swf.ShapeRecord
	records = append(records, first)
	for i := range 64 {
		records = append(records, square(swf.Twips(i*10), 0)...)
	}
	s := &swf.Shape{
		Styles: swf.ShapeStyles{
			FillStyles: []swf.FillStyle{red()},
			LineStyles: []swf.LineStyle{{Width: 20}},
		},
		Records: records,
	}
	for b.Loop() {
		Distill(s)
	}
}
