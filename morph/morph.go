// Package morph interpolates DefineMorphShape characters.
//
// A morph shape stores a start and an end keyframe with identical style and
// edge topology. BuildFrame blends them at a ratio in 0..65535; Cache keeps
// the results keyed by character and ratio so timelines that revisit a ratio
// do not rebuild it.
package morph

import (
	"github.com/gogpu/swf"
	"github.com/gogpu/swf/shape"
)

// MaxRatio is the ratio of the end keyframe.
const MaxRatio = 65535

// Frame is a morph shape blended at one ratio.
type Frame struct {
	Ratio  uint16
	Shape  *swf.Shape
	Bounds swf.Rectangle
}

// BuildFrame blends start and end at ratio. Ratio 0 reproduces the start
// geometry and MaxRatio the end geometry.
func BuildFrame(start, end *swf.Shape, ratio uint16) *Frame {
	b := float64(ratio) / MaxRatio
	a := 1 - b
	l := lerper{a: a, b: b}

	styles := swf.ShapeStyles{
		FillStyles: l.fills(start.Styles.FillStyles, end.Styles.FillStyles),
		LineStyles: l.lines(start.Styles.LineStyles, end.Styles.LineStyles),
	}
	records := l.records(start.Records, end.Records)
	bounds := shape.Bounds(records)

	return &Frame{
		Ratio: ratio,
		Shape: &swf.Shape{
			Version:     4,
			Flags:       swf.ShapeScalingStrokes,
			ShapeBounds: bounds,
			EdgeBounds:  bounds,
			Styles:      styles,
			Records:     records,
		},
		Bounds: bounds,
	}
}

type lerper struct {
	a, b float64
}

func (l lerper) twips(s, e swf.Twips) swf.Twips {
	return swf.LerpTwips(s, e, l.a, l.b)
}

func (l lerper) point(s, e swf.Point) swf.Point {
	return swf.Point{X: l.twips(s.X, e.X), Y: l.twips(s.Y, e.Y)}
}

func (l lerper) fills(start, end []swf.FillStyle) []swf.FillStyle {
	out := make([]swf.FillStyle, len(start))
	for i, s := range start {
		if i < len(end) {
			out[i] = l.fill(s, end[i])
		} else {
			out[i] = s
		}
	}
	return out
}

func (l lerper) fill(start, end swf.FillStyle) swf.FillStyle {
	switch s := start.(type) {
	case swf.SolidFill:
		if e, ok := end.(swf.SolidFill); ok {
			return swf.SolidFill{Color: s.Color.Lerp(e.Color, l.a, l.b)}
		}
	case swf.LinearGradientFill:
		if e, ok := end.(swf.LinearGradientFill); ok {
			return swf.LinearGradientFill{Gradient: l.gradient(s.Gradient, e.Gradient)}
		}
	case swf.RadialGradientFill:
		if e, ok := end.(swf.RadialGradientFill); ok {
			return swf.RadialGradientFill{Gradient: l.gradient(s.Gradient, e.Gradient)}
		}
	case swf.FocalGradientFill:
		if e, ok := end.(swf.FocalGradientFill); ok {
			return swf.FocalGradientFill{
				Gradient:   l.gradient(s.Gradient, e.Gradient),
				FocalPoint: s.FocalPoint*l.a + e.FocalPoint*l.b,
			}
		}
	case swf.BitmapFill:
		if e, ok := end.(swf.BitmapFill); ok {
			s.Matrix = s.Matrix.Lerp(e.Matrix, l.a, l.b)
			return s
		}
	}
	swf.Logger().Warn("morph fill styles do not match", "start", start, "end", end)
	return start
}

func (l lerper) gradient(start, end swf.Gradient) swf.Gradient {
	g := swf.Gradient{
		Matrix:        start.Matrix.Lerp(end.Matrix, l.a, l.b),
		Spread:        start.Spread,
		Interpolation: start.Interpolation,
		Records:       make([]swf.GradientRecord, len(start.Records)),
	}
	for i, s := range start.Records {
		if i >= len(end.Records) {
			g.Records[i] = s
			continue
		}
		e := end.Records[i]
		g.Records[i] = swf.GradientRecord{
			Ratio: uint8(float64(s.Ratio)*l.a + float64(e.Ratio)*l.b),
			Color: s.Color.Lerp(e.Color, l.a, l.b),
		}
	}
	return g
}

func (l lerper) lines(start, end []swf.LineStyle) []swf.LineStyle {
	out := make([]swf.LineStyle, len(start))
	for i, s := range start {
		if i < len(end) {
			s.Width = l.twips(s.Width, end[i].Width)
			s.Fill = l.fill(s.Fill, end[i].Fill)
		}
		out[i] = s
	}
	return out
}

// records walks both edge lists in step. Style changes may appear on only
// one side, so each side keeps its own pen and blended move-to points are
// derived from both.
func (l lerper) records(start, end []swf.ShapeRecord) []swf.ShapeRecord {
	out := make([]swf.ShapeRecord, 0, len(start))
	var startPen, endPen swf.Point
	i, j := 0, 0
	for i < len(start) && j < len(end) {
		s, e := start[i], end[j]
		sc, sIsStyle := s.(swf.StyleChange)
		ec, eIsStyle := e.(swf.StyleChange)

		switch {
		case sIsStyle && eIsStyle:
			rec := sc
			if sc.MoveTo != nil || ec.MoveTo != nil {
				if sc.MoveTo != nil {
					startPen = *sc.MoveTo
				}
				if ec.MoveTo != nil {
					endPen = *ec.MoveTo
				}
				p := l.point(startPen, endPen)
				rec.MoveTo = &p
			}
			out = append(out, rec)
			i++
			j++

		case sIsStyle:
			rec := sc
			if sc.MoveTo != nil {
				startPen = *sc.MoveTo
				p := l.point(startPen, endPen)
				rec.MoveTo = &p
			}
			out = append(out, rec)
			i++

		case eIsStyle:
			rec := ec
			if ec.MoveTo != nil {
				endPen = *ec.MoveTo
				p := l.point(startPen, endPen)
				rec.MoveTo = &p
			}
			out = append(out, rec)
			j++

		default:
			out = append(out, l.edge(s, e, startPen, endPen))
			startPen = advance(startPen, s)
			endPen = advance(endPen, e)
			i++
			j++
		}
	}
	return out
}

// edge blends a pair of edges. Straight edges paired with curves become
// curves with their control point at the midpoint.
func (l lerper) edge(start, end swf.ShapeRecord, startPen, endPen swf.Point) swf.ShapeRecord {
	pen := l.point(startPen, endPen)

	if s, ok := start.(swf.StraightEdge); ok {
		if e, ok := end.(swf.StraightEdge); ok {
			anchor := l.point(startPen.Add(s.Delta), endPen.Add(e.Delta))
			return swf.StraightEdge{Delta: anchor.Sub(pen)}
		}
	}

	sControl, sAnchor := curvePoints(startPen, start)
	eControl, eAnchor := curvePoints(endPen, end)
	control := l.point(sControl, eControl)
	anchor := l.point(sAnchor, eAnchor)
	return swf.CurvedEdge{Control: control.Sub(pen), Anchor: anchor.Sub(control)}
}

// curvePoints returns the absolute control and anchor of an edge starting
// at pen. Straight edges get a control point halfway along.
func curvePoints(pen swf.Point, rec swf.ShapeRecord) (control, anchor swf.Point) {
	switch rec := rec.(type) {
	case swf.CurvedEdge:
		control = pen.Add(rec.Control)
		return control, control.Add(rec.Anchor)
	case swf.StraightEdge:
		return pen.Add(rec.Delta.Half()), pen.Add(rec.Delta)
	}
	return pen, pen
}

func advance(pen swf.Point, rec swf.ShapeRecord) swf.Point {
	switch rec := rec.(type) {
	case swf.StraightEdge:
		return pen.Add(rec.Delta)
	case swf.CurvedEdge:
		return pen.Add(rec.Control).Add(rec.Anchor)
	}
	return pen
}
