package shape

import "github.com/gogpu/swf"

// Command is a single element of a distilled path. The concrete types are
// MoveTo, LineTo and QuadTo.
type Command interface {
	isCommand()
	// End returns the pen position after the command.
	End() swf.Point
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point swf.Point
}

func (MoveTo) isCommand()       {}
func (c MoveTo) End() swf.Point { return c.Point }

// LineTo draws a line to a point.
type LineTo struct {
	Point swf.Point
}

func (LineTo) isCommand()       {}
func (c LineTo) End() swf.Point { return c.Point }

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control swf.Point
	Point   swf.Point
}

func (QuadTo) isCommand()       {}
func (c QuadTo) End() swf.Point { return c.Point }

// FillRule selects how overlapping subpaths of a fill combine.
type FillRule uint8

const (
	// EvenOdd is the SWF default.
	EvenOdd FillRule = iota
	// NonZero is selected by the DefineShape4 flag.
	NonZero
)

// String returns the name of the rule.
func (r FillRule) String() string {
	if r == NonZero {
		return "NonZero"
	}
	return "EvenOdd"
}

// DrawPath is one fill or stroke of a distilled shape. Fills set Fill and
// are always closed; strokes set Line and may be open.
type DrawPath struct {
	Fill     swf.FillStyle
	Line     *swf.LineStyle
	Rule     FillRule
	Closed   bool
	Commands []Command
}

// IsStroke reports whether p is a stroke.
func (p *DrawPath) IsStroke() bool {
	return p.Line != nil
}

// point is a path vertex; control points of quadratic curves are flagged.
type point struct {
	swf.Point
	control bool
}

// segment is a continuous run of edges. Fill segments are directed, stroke
// segments are not.
type segment struct {
	points []point
}

func newSegment(start swf.Point) segment {
	return segment{points: []point{{Point: start}}}
}

func (s *segment) reset(start swf.Point) {
	s.points = append(s.points[:0], point{Point: start})
}

// flip reverses the segment. Fill style 0 marks the negative side of an
// edge, so its segments are flipped before linking with fill style 1.
func (s *segment) flip() {
	for i, j := 0, len(s.points)-1; i < j; i, j = i+1, j-1 {
		s.points[i], s.points[j] = s.points[j], s.points[i]
	}
}

func (s *segment) empty() bool {
	return len(s.points) <= 1
}

func (s *segment) start() swf.Point { return s.points[0].Point }
func (s *segment) end() swf.Point   { return s.points[len(s.points)-1].Point }

func (s *segment) closed() bool {
	return s.start() == s.end()
}

func (s *segment) clone() segment {
	return segment{points: append([]point(nil), s.points...)}
}

// appendCommands appends the segment as a MoveTo followed by its edges.
func (s *segment) appendCommands(cmds []Command) []Command {
	cmds = append(cmds, MoveTo{Point: s.points[0].Point})
	for i := 1; i < len(s.points); i++ {
		p := s.points[i]
		if p.control && i+1 < len(s.points) {
			cmds = append(cmds, QuadTo{Control: p.Point, Point: s.points[i+1].Point})
			i++
			continue
		}
		cmds = append(cmds, LineTo{Point: p.Point})
	}
	return cmds
}
