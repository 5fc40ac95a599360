package swf

import (
	"math"
	"testing"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(10, 20), Pt(10, 20)},
		{"translate", Translate(5, -5), Pt(10, 20), Pt(15, 15)},
		{"scale", Scale(2, 0.5), Pt(10, 20), Pt(20, 10)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(10, 0), Pt(0, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_Multiply(t *testing.T) {
	// Scale first, then translate.
	m := Translate(100, 0).Multiply(Scale(2, 2))
	if got := m.TransformPoint(Pt(10, 10)); got != Pt(120, 20) {
		t.Errorf("got %v, want (120, 20)", got)
	}
	// Translate first, then scale.
	m = Scale(2, 2).Multiply(Translate(100, 0))
	if got := m.TransformPoint(Pt(10, 10)); got != Pt(220, 20) {
		t.Errorf("got %v, want (220, 20)", got)
	}
}

func TestMatrix_Invert(t *testing.T) {
	m := Translate(40, -20).Multiply(Scale(2, 4))
	p := Pt(30, 50)
	if got := m.Invert().TransformPoint(m.TransformPoint(p)); got != p {
		t.Errorf("round trip = %v, want %v", got, p)
	}
	if !Scale(0, 0).Invert().IsIdentity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestMatrix_TransformRect(t *testing.T) {
	r := Rect(0, 0, 100, 50)
	got := Rotate(math.Pi / 2).TransformRect(r)
	if want := Rect(-50, 0, 0, 100); got != want {
		t.Errorf("TransformRect() = %+v, want %+v", got, want)
	}
	if inv := InvalidRect(); Translate(5, 5).TransformRect(inv) != inv {
		t.Error("invalid rectangle should pass through")
	}
}

func TestMatrix_Lerp(t *testing.T) {
	a := Matrix{A: 1, D: 1, Tx: 0}
	b := Matrix{A: 3, D: 1, Tx: 101}
	got := a.Lerp(b, 0.5, 0.5)
	if got.A != 2 || got.Tx != 51 {
		t.Errorf("Lerp() = %+v, want A 2 and Tx 51", got)
	}
}

func TestRectangle(t *testing.T) {
	if InvalidRect().Valid() {
		t.Error("InvalidRect() is valid")
	}
	r := InvalidRect().Encompass(Pt(10, 20)).Encompass(Pt(-5, 40))
	if r != Rect(-5, 20, 10, 40) {
		t.Errorf("Encompass = %+v", r)
	}
	if u := r.Union(InvalidRect()); u != r {
		t.Errorf("Union with invalid = %+v", u)
	}
	if u := InvalidRect().Union(r); u != r {
		t.Errorf("invalid Union = %+v", u)
	}
	if r.Width() != 15 || r.Height() != 20 {
		t.Errorf("size = %d x %d", r.Width(), r.Height())
	}
	if InvalidRect().Width() != 0 {
		t.Error("invalid width should be 0")
	}
	if !r.Contains(Pt(0, 30)) || r.Contains(Pt(11, 30)) {
		t.Error("Contains")
	}
}

func TestTwips(t *testing.T) {
	if TwipsFromPixels(1.5) != 30 {
		t.Errorf("TwipsFromPixels(1.5) = %d", TwipsFromPixels(1.5))
	}
	if Twips(25).Pixels() != 1.25 {
		t.Errorf("Pixels() = %v", Twips(25).Pixels())
	}
	if Pt(10, -10).Half() != Pt(5, -5) {
		t.Errorf("Half() = %v", Pt(10, -10).Half())
	}
}
