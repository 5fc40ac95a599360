package shape

import "github.com/gogpu/swf"

// Distilled is a shape converted to draw paths, ready for a tessellator or
// rasterizer.
type Distilled struct {
	ID          swf.CharacterID
	ShapeBounds swf.Rectangle
	EdgeBounds  swf.Rectangle
	Paths       []DrawPath
}

// Distill links the edge records of s into fill and stroke paths.
//
// Within each layer (a run of records sharing one style list) fills are
// emitted first, one path per fill style in style order, followed by one
// path per stroke segment in line style order.
func Distill(s *swf.Shape) Distilled {
	c := newConverter(s)
	c.run(s.Records)
	return Distilled{
		ID:          s.ID,
		ShapeBounds: s.ShapeBounds,
		EdgeBounds:  s.EdgeBounds,
		Paths:       c.paths,
	}
}

// pendingPath collects the segments of one style, linking them as they
// arrive since SWF edges come in arbitrary order.
type pendingPath struct {
	segments []segment
}

// add links seg onto existing segments that share an endpoint with it.
// Both ends of seg may link.
func (p *pendingPath) add(seg segment) {
	if seg.empty() {
		return
	}
	startOpen, endOpen := true, true
	for i := 0; (startOpen || endOpen) && i < len(p.segments); {
		other := &p.segments[i]
		switch {
		case startOpen && other.end() == seg.start():
			other.points = append(other.points, seg.points[1:]...)
			seg = p.swapRemove(i)
			startOpen = false
		case endOpen && seg.end() == other.start():
			seg.points = append(seg.points, other.points[1:]...)
			p.swapRemove(i)
			endOpen = false
		default:
			i++
		}
	}
	p.segments = append(p.segments, seg)
}

func (p *pendingPath) swapRemove(i int) segment {
	s := p.segments[i]
	last := len(p.segments) - 1
	p.segments[i] = p.segments[last]
	p.segments = p.segments[:last]
	return s
}

// activePath is the segment being drawn with one of the three current
// styles.
type activePath struct {
	styleID uint32
	seg     segment
}

func (a *activePath) flushFill(start swf.Point, pending []pendingPath, flip bool) {
	if a.styleID > 0 && !a.seg.empty() {
		seg := a.seg.clone()
		if flip {
			seg.flip()
		}
		pending[a.styleID-1].add(seg)
	}
	a.seg.reset(start)
}

func (a *activePath) flushStroke(start swf.Point, pending []pendingPath) {
	if a.styleID > 0 && !a.seg.empty() {
		pending[a.styleID-1].segments = append(pending[a.styleID-1].segments, a.seg.clone())
	}
	a.seg.reset(start)
}

type converter struct {
	cursor swf.Point
	rule   FillRule

	fillStyles []swf.FillStyle
	lineStyles []swf.LineStyle

	fill0, fill1, line activePath

	fills   []pendingPath
	strokes []pendingPath

	paths []DrawPath
}

func newConverter(s *swf.Shape) *converter {
	c := &converter{
		fillStyles: s.Styles.FillStyles,
		lineStyles: s.Styles.LineStyles,
		fill0:      activePath{seg: newSegment(swf.Point{})},
		fill1:      activePath{seg: newSegment(swf.Point{})},
		line:       activePath{seg: newSegment(swf.Point{})},
		fills:      make([]pendingPath, len(s.Styles.FillStyles)),
		strokes:    make([]pendingPath, len(s.Styles.LineStyles)),
	}
	if s.Flags&swf.ShapeNonZeroWinding != 0 {
		c.rule = NonZero
	}
	return c
}

func (c *converter) run(records []swf.ShapeRecord) {
	for _, rec := range records {
		switch rec := rec.(type) {
		case swf.StyleChange:
			c.styleChange(rec)
		case swf.StraightEdge:
			c.cursor = c.cursor.Add(rec.Delta)
			c.visit(false)
		case swf.CurvedEdge:
			c.cursor = c.cursor.Add(rec.Control)
			c.visit(true)
			c.cursor = c.cursor.Add(rec.Anchor)
			c.visit(false)
		}
	}
	c.flushLayer()
}

func (c *converter) styleChange(sc swf.StyleChange) {
	if sc.MoveTo != nil {
		c.cursor = *sc.MoveTo
		c.flushPaths()
	}
	if sc.NewStyles != nil {
		c.flushLayer()
		c.fillStyles = sc.NewStyles.FillStyles
		c.lineStyles = sc.NewStyles.LineStyles
		c.fills = resize(c.fills, len(c.fillStyles))
		c.strokes = resize(c.strokes, len(c.lineStyles))
	}
	// Style 0 means none; ids past the end of the list are treated as 0.
	numFills, numLines := uint32(len(c.fillStyles)), uint32(len(c.lineStyles))
	if sc.FillStyle1 != nil {
		c.fill1.flushFill(c.cursor, c.fills, false)
		c.fill1.styleID = validStyle(*sc.FillStyle1, numFills)
	}
	if sc.FillStyle0 != nil {
		c.fill0.flushFill(c.cursor, c.fills, true)
		c.fill0.styleID = validStyle(*sc.FillStyle0, numFills)
	}
	if sc.LineStyle != nil {
		c.line.flushStroke(c.cursor, c.strokes)
		c.line.styleID = validStyle(*sc.LineStyle, numLines)
	}
}

func validStyle(id, n uint32) uint32 {
	if id <= n {
		return id
	}
	return 0
}

func resize(p []pendingPath, n int) []pendingPath {
	if n <= len(p) {
		return p[:n]
	}
	return append(p, make([]pendingPath, n-len(p))...)
}

func (c *converter) visit(control bool) {
	p := point{Point: c.cursor, control: control}
	if c.fill1.styleID > 0 {
		c.fill1.seg.points = append(c.fill1.seg.points, p)
	}
	if c.fill0.styleID > 0 {
		c.fill0.seg.points = append(c.fill0.seg.points, p)
	}
	if c.line.styleID > 0 {
		c.line.seg.points = append(c.line.seg.points, p)
	}
}

// flushPaths moves the active segments into the pending lists when the pen
// is lifted.
func (c *converter) flushPaths() {
	c.fill1.flushFill(c.cursor, c.fills, false)
	c.fill0.flushFill(c.cursor, c.fills, true)
	c.line.flushStroke(c.cursor, c.strokes)
}

// flushLayer emits the pending paths of the current layer.
func (c *converter) flushLayer() {
	c.flushPaths()

	for i := range c.fills {
		path := &c.fills[i]
		if len(path.segments) == 0 {
			continue
		}
		var cmds []Command
		for j := range path.segments {
			cmds = path.segments[j].appendCommands(cmds)
		}
		c.paths = append(c.paths, DrawPath{
			Fill:     c.fillStyles[i],
			Rule:     c.rule,
			Closed:   true,
			Commands: cmds,
		})
		path.segments = nil
	}

	for i := range c.strokes {
		path := &c.strokes[i]
		for j := range path.segments {
			seg := &path.segments[j]
			if seg.empty() {
				continue
			}
			c.paths = append(c.paths, DrawPath{
				Line:     &c.lineStyles[i],
				Closed:   seg.closed(),
				Commands: seg.appendCommands(nil),
			})
		}
		path.segments = nil
	}
}
